package k8s

import (
	"context"
	"fmt"
	"log/slog"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

// Adapter implements the cluster ports on top of client-go.
type Adapter struct {
	logger           *slog.Logger
	clientset        kubernetes.Interface
	metricsClientset metricsv.Interface
}

// New creates a new K8s adapter. metricsClientset may be nil when metrics-server
// is not installed; WorkloadUsageQuery then reports the usage as unavailable.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	metricsClientset metricsv.Interface,
) *Adapter {
	return &Adapter{
		logger:           logger,
		clientset:        clientset,
		metricsClientset: metricsClientset,
	}
}

var (
	_ reconciler.ClusterRepository   = (*Adapter)(nil)
	_ reconciler.NodeAddressProvider = (*Adapter)(nil)
)

func (a *Adapter) PingQuery(_ context.Context) error {
	info, err := a.clientset.Discovery().ServerVersion()
	if err != nil {
		return fmt.Errorf("get server version: %w", err)
	}

	a.logger.Debug("cluster api reachable", "version", info.GitVersion)

	return nil
}

func (a *Adapter) ApplyDeploymentCommand(
	ctx context.Context,
	spec reconciler.WorkloadSpec,
) (reconciler.ApplyAction, error) {
	desired, err := toDeployment(spec)
	if err != nil {
		return reconciler.ActionFailed, fmt.Errorf("build deployment: %w", err)
	}

	deployments := a.clientset.AppsV1().Deployments(spec.Namespace)

	current, err := deployments.Get(ctx, desired.Name, metav1.GetOptions{})
	if err != nil {
		if !apierrors.IsNotFound(err) {
			return reconciler.ActionFailed, fmt.Errorf("get deployment: %w", err)
		}

		if _, err = deployments.Create(ctx, desired, metav1.CreateOptions{FieldManager: reconciler.FieldManager}); err != nil {
			return reconciler.ActionFailed, fmt.Errorf("create deployment: %w", err)
		}

		return reconciler.ActionCreated, nil
	}

	if deploymentUpToDate(current, desired) {
		return reconciler.ActionUnchanged, nil
	}

	updated := mergeDeployment(current, desired)

	if _, err = deployments.Update(ctx, updated, metav1.UpdateOptions{FieldManager: reconciler.FieldManager}); err != nil {
		return reconciler.ActionFailed, fmt.Errorf("update deployment: %w", err)
	}

	return reconciler.ActionConfigured, nil
}

func (a *Adapter) ApplyServiceCommand(
	ctx context.Context,
	spec reconciler.WorkloadSpec,
) (reconciler.ApplyAction, error) {
	desired := toService(spec)
	services := a.clientset.CoreV1().Services(spec.Namespace)

	current, err := services.Get(ctx, desired.Name, metav1.GetOptions{})
	if err != nil {
		if !apierrors.IsNotFound(err) {
			return reconciler.ActionFailed, fmt.Errorf("get service: %w", err)
		}

		if _, err = services.Create(ctx, desired, metav1.CreateOptions{FieldManager: reconciler.FieldManager}); err != nil {
			return reconciler.ActionFailed, fmt.Errorf("create service: %w", err)
		}

		return reconciler.ActionCreated, nil
	}

	if serviceUpToDate(current, desired) {
		return reconciler.ActionUnchanged, nil
	}

	updated := mergeService(current, desired)

	if _, err = services.Update(ctx, updated, metav1.UpdateOptions{FieldManager: reconciler.FieldManager}); err != nil {
		return reconciler.ActionFailed, fmt.Errorf("update service: %w", err)
	}

	return reconciler.ActionConfigured, nil
}

func (a *Adapter) GetDeploymentStatusQuery(
	ctx context.Context,
	namespace,
	name string,
) (declared, ready int32, err error) {
	deployment, err := a.clientset.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return 0, 0, fmt.Errorf("get deployment %s/%s: %w", namespace, name, errDeploymentNotFound)
		}

		return 0, 0, fmt.Errorf("get deployment %s/%s: %w", namespace, name, err)
	}

	declared, ready = replicaCounts(deployment)

	return declared, ready, nil
}

func (a *Adapter) ListServicesQuery(
	ctx context.Context,
	namespace,
	labelSelector string,
) ([]reconciler.Service, error) {
	serviceList, err := a.clientset.CoreV1().Services(namespace).List(
		ctx,
		metav1.ListOptions{
			LabelSelector: labelSelector,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	services := make([]reconciler.Service, 0, len(serviceList.Items))
	for i := range serviceList.Items {
		services = append(services, toDomainService(&serviceList.Items[i]))
	}

	return services, nil
}

// NodeAddressQuery returns the InternalIP of the first node that has one.
func (a *Adapter) NodeAddressQuery(ctx context.Context) (string, error) {
	nodeList, err := a.clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return "", fmt.Errorf("list nodes: %w", err)
	}

	for i := range nodeList.Items {
		if address := nodeAddress(&nodeList.Items[i], corev1.NodeInternalIP); address != "" {
			return address, nil
		}
	}

	return "", fmt.Errorf("list nodes: %w", errNodeAddressNotFound)
}

func (a *Adapter) WorkloadUsageQuery(
	ctx context.Context,
	namespace,
	labelSelector string,
) (*reconciler.PodUsage, error) {
	if a.metricsClientset == nil {
		return nil, fmt.Errorf("list pod metrics: %w", errMetricsAPIDisabled)
	}

	metricsList, err := a.metricsClientset.MetricsV1beta1().PodMetricses(namespace).List(
		ctx,
		metav1.ListOptions{
			LabelSelector: labelSelector,
		},
	)
	if err != nil {
		switch {
		case apierrors.IsNotFound(err):
			return nil, fmt.Errorf("list pod metrics: %w", errPodMetricsNotFound)
		case apierrors.IsTooManyRequests(err):
			return nil, fmt.Errorf("list pod metrics: %w", errTooManyRequests)
		}

		return nil, fmt.Errorf("list pod metrics: %w", err)
	}

	return toDomainPodUsage(ctx, a.logger, metricsList.Items), nil
}

// replicaCounts reports only ready pods of the current rollout: nothing is
// ready until the controller has observed the latest spec, and pods still
// running an old template do not count.
func replicaCounts(deployment *appsv1.Deployment) (declared, ready int32) {
	declared = 1
	if deployment.Spec.Replicas != nil {
		declared = *deployment.Spec.Replicas
	}

	if deployment.Status.ObservedGeneration < deployment.Generation {
		return declared, 0
	}

	return declared, min(deployment.Status.ReadyReplicas, deployment.Status.UpdatedReplicas)
}
