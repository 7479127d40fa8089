package k8s

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apiequality "k8s.io/apimachinery/pkg/api/equality"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"

	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

const portName = "http"

func toDeployment(spec reconciler.WorkloadSpec) (*appsv1.Deployment, error) {
	resources, err := toResourceRequirements(spec.Resources)
	if err != nil {
		return nil, err
	}

	replicas := spec.Replicas

	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.Name,
			Namespace: spec.Namespace,
			Labels:    spec.Labels(),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{
				MatchLabels: spec.Labels(),
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: spec.Labels(),
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{toContainer(spec, resources)},
				},
			},
		},
	}, nil
}

func toContainer(spec reconciler.WorkloadSpec, resources corev1.ResourceRequirements) corev1.Container {
	return corev1.Container{
		Name:            spec.Name,
		Image:           spec.Image,
		ImagePullPolicy: corev1.PullPolicy(spec.ImagePullPolicy),
		Ports: []corev1.ContainerPort{
			{
				Name:          portName,
				ContainerPort: spec.ContainerPort,
				Protocol:      corev1.ProtocolTCP,
			},
		},
		Resources: resources,
	}
}

func toResourceRequirements(in reconciler.Resources) (corev1.ResourceRequirements, error) {
	requests, err := toResourceList(in.Requests)
	if err != nil {
		return corev1.ResourceRequirements{}, fmt.Errorf("requests: %w", err)
	}

	limits, err := toResourceList(in.Limits)
	if err != nil {
		return corev1.ResourceRequirements{}, fmt.Errorf("limits: %w", err)
	}

	return corev1.ResourceRequirements{
		Requests: requests,
		Limits:   limits,
	}, nil
}

func toResourceList(in reconciler.ResourceList) (corev1.ResourceList, error) {
	out := corev1.ResourceList{}

	for name, value := range map[corev1.ResourceName]string{
		corev1.ResourceCPU:    in.CPU,
		corev1.ResourceMemory: in.Memory,
	} {
		if value == "" {
			continue
		}

		quantity, err := resource.ParseQuantity(value)
		if err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", name, value, err)
		}

		out[name] = quantity
	}

	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}

// deploymentUpToDate compares only the fields this tool manages, so defaults
// filled in by the API server do not cause an update on every run.
func deploymentUpToDate(current, desired *appsv1.Deployment) bool {
	currentReplicas, _ := replicaCounts(current)
	if currentReplicas != *desired.Spec.Replicas {
		return false
	}

	if !containsLabels(current.Labels, desired.Labels) ||
		!containsLabels(current.Spec.Template.Labels, desired.Spec.Template.Labels) {
		return false
	}

	want := desired.Spec.Template.Spec.Containers[0]

	got, ok := findContainer(current.Spec.Template.Spec.Containers, want.Name)
	if !ok {
		return false
	}

	if got.Image != want.Image {
		return false
	}

	if want.ImagePullPolicy != "" && got.ImagePullPolicy != want.ImagePullPolicy {
		return false
	}

	if !hasContainerPort(got.Ports, want.Ports[0].ContainerPort) {
		return false
	}

	return apiequality.Semantic.DeepEqual(got.Resources, want.Resources)
}

// mergeDeployment applies the managed fields of desired onto a copy of current.
// The selector is immutable and is left as is.
func mergeDeployment(current, desired *appsv1.Deployment) *appsv1.Deployment {
	updated := current.DeepCopy()
	updated.Labels = mergeLabels(updated.Labels, desired.Labels)
	updated.Spec.Replicas = desired.Spec.Replicas
	updated.Spec.Template.Labels = mergeLabels(updated.Spec.Template.Labels, desired.Spec.Template.Labels)

	want := desired.Spec.Template.Spec.Containers[0]
	containers := updated.Spec.Template.Spec.Containers

	for i := range containers {
		if containers[i].Name != want.Name {
			continue
		}

		containers[i].Image = want.Image
		containers[i].ImagePullPolicy = want.ImagePullPolicy
		containers[i].Ports = want.Ports
		containers[i].Resources = want.Resources

		return updated
	}

	updated.Spec.Template.Spec.Containers = append(containers, want)

	return updated
}

func toService(spec reconciler.WorkloadSpec) *corev1.Service {
	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.EffectiveServiceName(),
			Namespace: spec.Namespace,
			Labels:    spec.Labels(),
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeNodePort,
			Selector: spec.Labels(),
			Ports: []corev1.ServicePort{
				{
					Name:       portName,
					Protocol:   corev1.ProtocolTCP,
					Port:       spec.EffectiveServicePort(),
					TargetPort: intstr.FromInt32(spec.ContainerPort),
					NodePort:   spec.NodePort,
				},
			},
		},
	}
}

// serviceUpToDate ignores the node port unless one was requested explicitly,
// since the API server allocates it otherwise.
func serviceUpToDate(current, desired *corev1.Service) bool {
	if !containsLabels(current.Labels, desired.Labels) ||
		current.Spec.Type != desired.Spec.Type ||
		!maps.Equal(current.Spec.Selector, desired.Spec.Selector) ||
		len(current.Spec.Ports) != len(desired.Spec.Ports) {
		return false
	}

	for i, want := range desired.Spec.Ports {
		got := current.Spec.Ports[i]

		if got.Name != want.Name ||
			got.Port != want.Port ||
			got.TargetPort != want.TargetPort ||
			got.Protocol != want.Protocol {
			return false
		}

		if want.NodePort != 0 && got.NodePort != want.NodePort {
			return false
		}
	}

	return true
}

// mergeService keeps the allocated cluster IPs and node ports of current.
func mergeService(current, desired *corev1.Service) *corev1.Service {
	updated := current.DeepCopy()
	updated.Labels = mergeLabels(updated.Labels, desired.Labels)
	updated.Spec.Type = desired.Spec.Type
	updated.Spec.Selector = desired.Spec.Selector

	ports := make([]corev1.ServicePort, 0, len(desired.Spec.Ports))

	for _, want := range desired.Spec.Ports {
		if want.NodePort == 0 {
			want.NodePort = allocatedNodePort(current.Spec.Ports, want.Name)
		}

		ports = append(ports, want)
	}

	updated.Spec.Ports = ports

	return updated
}

func allocatedNodePort(ports []corev1.ServicePort, name string) int32 {
	for i := range ports {
		if ports[i].Name == name {
			return ports[i].NodePort
		}
	}

	if len(ports) == 1 {
		return ports[0].NodePort
	}

	return 0
}

func toDomainService(svc *corev1.Service) reconciler.Service {
	out := reconciler.Service{
		Name:  svc.Name,
		Ports: make([]reconciler.ServicePort, 0, len(svc.Spec.Ports)),
	}

	for i := range svc.Spec.Ports {
		out.Ports = append(out.Ports, reconciler.ServicePort{
			Name:     svc.Spec.Ports[i].Name,
			Port:     svc.Spec.Ports[i].Port,
			NodePort: svc.Spec.Ports[i].NodePort,
		})
	}

	return out
}

func nodeAddress(node *corev1.Node, addressType corev1.NodeAddressType) string {
	for _, address := range node.Status.Addresses {
		if address.Type == addressType && address.Address != "" {
			return address.Address
		}
	}

	return ""
}

func toDomainPodUsage(
	ctx context.Context,
	logger *slog.Logger,
	items []metricsv1beta1.PodMetrics,
) *reconciler.PodUsage {
	usage := &reconciler.PodUsage{Pods: len(items)}

	for i := range items {
		for j := range items[i].Containers {
			container := &items[i].Containers[j]

			cpu := container.Usage.Cpu()
			memory := container.Usage.Memory()

			if cpu == nil || memory == nil {
				logger.WarnContext(ctx, "container usage is incomplete, skipping",
					"pod", items[i].Name,
					"namespace", items[i].Namespace,
					"container", container.Name,
				)

				continue
			}

			usage.CPUMillis += cpu.MilliValue()
			usage.MemoryBytes += memory.Value()

			logger.DebugContext(ctx, "container usage",
				"pod", items[i].Name,
				"container", container.Name,
				"cpu", cpu.String(),
				"memory", memory.String(),
			)
		}
	}

	return usage
}

func findContainer(containers []corev1.Container, name string) (corev1.Container, bool) {
	for i := range containers {
		if containers[i].Name == name {
			return containers[i], true
		}
	}

	return corev1.Container{}, false
}

func hasContainerPort(ports []corev1.ContainerPort, port int32) bool {
	for i := range ports {
		if ports[i].ContainerPort == port {
			return true
		}
	}

	return false
}

func containsLabels(have, want map[string]string) bool {
	for k, v := range want {
		if have[k] != v {
			return false
		}
	}

	return true
}

func mergeLabels(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	maps.Copy(out, base)
	maps.Copy(out, extra)

	return out
}
