package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

// DefaultWorkload is the sample workload reconciled when no spec file is given.
func DefaultWorkload() reconciler.WorkloadSpec {
	return reconciler.WorkloadSpec{
		Name:            "my-docker-app",
		Namespace:       reconciler.DefaultNamespace,
		Image:           "my-docker-app:latest",
		ImagePullPolicy: "Never",
		Replicas:        1,
		ContainerPort:   5000,
		ServiceName:     "my-docker-service",
		ServicePort:     5000,
		Resources: reconciler.Resources{
			Requests: reconciler.ResourceList{CPU: "100m", Memory: "128Mi"},
			Limits:   reconciler.ResourceList{CPU: "200m", Memory: "256Mi"},
		},
	}
}

// loadWorkload layers the workload file and the per-field overrides over DefaultWorkload.
func loadWorkload(v *viper.Viper, path string) (reconciler.WorkloadSpec, error) {
	spec := DefaultWorkload()

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
		if err != nil {
			return reconciler.WorkloadSpec{}, fmt.Errorf("read workload file: %w", err)
		}

		if err := yaml.UnmarshalStrict(data, &spec); err != nil {
			return reconciler.WorkloadSpec{}, fmt.Errorf("parse workload file %s: %w", path, err)
		}
	}

	if v.IsSet(keyWorkloadName) {
		spec.Name = v.GetString(keyWorkloadName)
	}

	if v.IsSet(keyWorkloadNamespace) {
		spec.Namespace = v.GetString(keyWorkloadNamespace)
	}

	if v.IsSet(keyWorkloadImage) {
		spec.Image = v.GetString(keyWorkloadImage)
	}

	if v.IsSet(keyWorkloadReplicas) {
		spec.Replicas = v.GetInt32(keyWorkloadReplicas)
	}

	if err := spec.Validate(); err != nil {
		return reconciler.WorkloadSpec{}, fmt.Errorf("workload: %w", err)
	}

	return spec, nil
}
