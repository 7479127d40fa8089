package cli

import (
	"time"

	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

// JSON view models. Errors are flattened to strings and absent parts stay nil.

type reportView struct {
	ID            string        `json:"id"`
	Workload      string        `json:"workload"`
	StartedAt     time.Time     `json:"startedAt"`
	DurationMS    int64         `json:"durationMs"`
	PrometheusURL string        `json:"prometheusUrl"`
	Image         *imageView    `json:"image,omitempty"`
	Apply         applyView     `json:"apply"`
	Poll          *pollView     `json:"poll,omitempty"`
	Status        statusView    `json:"status"`
	Endpoint      *endpointView `json:"endpoint"`
	Metrics       metricsView   `json:"metrics"`
	Usage         *usageView    `json:"usage,omitempty"`
	UsageError    string        `json:"usageError,omitempty"`
}

type imageView struct {
	Image  string `json:"image"`
	Built  bool   `json:"built"`
	Loaded bool   `json:"loaded"`
	Error  string `json:"error,omitempty"`
}

type applyView struct {
	OK      bool          `json:"ok"`
	Partial bool          `json:"partial"`
	Objects []outcomeView `json:"objects"`
}

type outcomeView struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Action string `json:"action"`
	Error  string `json:"error,omitempty"`
}

type pollView struct {
	State      string          `json:"state"`
	Attempts   int             `json:"attempts"`
	Resolution *resolutionView `json:"resolution,omitempty"`
	LastError  string          `json:"lastError,omitempty"`
}

type resolutionView struct {
	Resolved bool   `json:"resolved"`
	Reason   string `json:"reason"`
	Error    string `json:"error,omitempty"`
}

type statusView struct {
	Name      string `json:"name"`
	Declared  int32  `json:"declared"`
	Ready     int32  `json:"ready"`
	Converged bool   `json:"converged"`
}

type endpointView struct {
	URL      string `json:"url"`
	Fallback bool   `json:"fallback"`
}

type metricsView struct {
	PrometheusURL string                           `json:"prometheusUrl,omitempty"`
	Values        reconciler.MetricsSnapshot       `json:"values"`
	Errors        map[reconciler.MetricName]string `json:"errors,omitempty"`
}

type usageView struct {
	Pods        int   `json:"pods"`
	CPUMillis   int64 `json:"cpuMillis"`
	MemoryBytes int64 `json:"memoryBytes"`
}

type setupView struct {
	PrometheusURL string `json:"prometheusUrl"`
}

func toReportView(r *reconciler.Report) reportView {
	view := reportView{
		ID:            r.ID,
		Workload:      r.Workload,
		StartedAt:     r.StartedAt,
		DurationMS:    r.Duration.Milliseconds(),
		PrometheusURL: r.PrometheusURL,
		Apply:         toApplyView(r.Apply),
		Status:        toStatusView(r.Status),
		Endpoint:      toEndpointView(r.Endpoint),
		Metrics:       toMetricsView("", r.Metrics),
		UsageError:    errString(r.UsageErr),
	}

	if r.Image != nil {
		view.Image = &imageView{
			Image:  r.Image.Image,
			Built:  r.Image.Built,
			Loaded: r.Image.Loaded,
			Error:  errString(r.Image.Err),
		}
	}

	if r.Usage != nil {
		view.Usage = &usageView{
			Pods:        r.Usage.Pods,
			CPUMillis:   r.Usage.CPUMillis,
			MemoryBytes: r.Usage.MemoryBytes,
		}
	}

	if r.Poll != nil {
		poll := toPollView(*r.Poll)
		view.Poll = &poll
	}

	return view
}

func toApplyView(r reconciler.ApplyResult) applyView {
	view := applyView{
		OK:      r.OK(),
		Partial: r.Partial(),
		Objects: make([]outcomeView, 0, len(r.Outcomes)),
	}

	for _, o := range r.Outcomes {
		view.Objects = append(view.Objects, outcomeView{
			Kind:   o.Kind,
			Name:   o.Name,
			Action: string(o.Action),
			Error:  errString(o.Err),
		})
	}

	return view
}

func toPollView(p reconciler.PollResult) pollView {
	view := pollView{
		State:     string(p.State),
		Attempts:  p.Attempts,
		LastError: errString(p.LastErr),
	}

	if p.Resolution != nil {
		view.Resolution = &resolutionView{
			Resolved: p.Resolution.Resolved,
			Reason:   string(p.Resolution.Reason),
			Error:    errString(p.Resolution.Err),
		}
	}

	return view
}

func toStatusView(s reconciler.DeploymentStatus) statusView {
	return statusView{
		Name:      s.Name,
		Declared:  s.Declared,
		Ready:     s.Ready,
		Converged: s.Converged,
	}
}

func toEndpointView(e *reconciler.ServiceEndpoint) *endpointView {
	if e == nil {
		return nil
	}

	return &endpointView{URL: e.URL(), Fallback: e.Fallback}
}

// toMetricsView fills absent names so every field is rendered, and keeps the
// cause of each unavailable value under errors.
func toMetricsView(promURL string, s reconciler.MetricsSnapshot) metricsView {
	view := metricsView{
		PrometheusURL: promURL,
		Values:        make(reconciler.MetricsSnapshot, len(metricNames)),
	}

	for _, name := range metricNames {
		v := s.Get(name)
		view.Values[name] = v

		if msg := errString(v.Err); msg != "" {
			if view.Errors == nil {
				view.Errors = make(map[reconciler.MetricName]string)
			}

			view.Errors[name] = msg
		}
	}

	return view
}

func errString(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
