package prometheus

import (
	"fmt"

	"github.com/prometheus/common/model"

	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

func toDomainSamples(value model.Value) ([]reconciler.Sample, error) {
	switch v := value.(type) {
	case nil:
		return []reconciler.Sample{}, nil
	case model.Vector:
		samples := make([]reconciler.Sample, 0, len(v))
		for _, s := range v {
			samples = append(samples, reconciler.Sample{
				Labels: toLabels(s.Metric),
				Value:  float64(s.Value),
			})
		}

		return samples, nil
	case *model.Scalar:
		return []reconciler.Sample{{
			Labels: map[string]string{},
			Value:  float64(v.Value),
		}}, nil
	case model.Matrix:
		// Only the most recent point of every series is of interest.
		samples := make([]reconciler.Sample, 0, len(v))
		for _, stream := range v {
			if len(stream.Values) == 0 {
				continue
			}

			samples = append(samples, reconciler.Sample{
				Labels: toLabels(stream.Metric),
				Value:  float64(stream.Values[len(stream.Values)-1].Value),
			})
		}

		return samples, nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedResultType, value.Type())
	}
}

func toLabels(metric model.Metric) map[string]string {
	labels := make(map[string]string, len(metric))
	for name, value := range metric {
		labels[string(name)] = string(value)
	}

	return labels
}
