package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/skillcoder/workload-reconciler/internal/config"
	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

const (
	bytesPerMiB       = 1 << 20
	durationPrecision = time.Millisecond
)

var metricNames = []reconciler.MetricName{
	reconciler.MetricCPU,
	reconciler.MetricMemory,
	reconciler.MetricDisk,
	reconciler.MetricPods,
}

// Renderer writes command results as colored text or JSON.
type Renderer struct {
	out    io.Writer
	format string
}

// NewRenderer creates a renderer; any format other than JSON renders text.
func NewRenderer(out io.Writer, format string) *Renderer {
	return &Renderer{out: out, format: format}
}

// Report renders a full reconciliation report.
func (r *Renderer) Report(report *reconciler.Report) error {
	if r.format == config.OutputJSON {
		return r.json(toReportView(report))
	}

	n := notifier{w: r.out}

	n.titlef("Reconciliation of %s", report.Workload)

	if img := report.Image; img != nil {
		if img.OK() {
			n.successf("image %s built and loaded", img.Image)
		} else {
			n.errorf("image %s: %v", img.Image, img.Err)
		}
	}

	for _, o := range report.Apply.Outcomes {
		if o.Applied() {
			n.successf("%s %s %s", o.Kind, o.Name, o.Action)
		} else {
			n.errorf("%s %s %s: %v", o.Kind, o.Name, o.Action, o.Err)
		}
	}

	if report.Apply.Partial() {
		n.warningf("workload partially applied, objects left as is")
	}

	r.writePoll(n, report.Poll, report.Status)

	if report.Endpoint != nil {
		r.writeEndpoint(n, *report.Endpoint)
	}

	n.infof("prometheus %s", report.PrometheusURL)
	r.writeMetrics(n, report.Metrics)

	if report.Usage != nil {
		n.infof("usage %d pods, %dm cpu, %dMi memory",
			report.Usage.Pods, report.Usage.CPUMillis, report.Usage.MemoryBytes/bytesPerMiB)
	}

	n.activityf("finished in %s (cycle %s)", report.Duration.Round(durationPrecision), report.ID)

	return nil
}

// Setup renders the outcome of an environment check.
func (r *Renderer) Setup(promURL string) error {
	if r.format == config.OutputJSON {
		return r.json(setupView{PrometheusURL: promURL})
	}

	n := notifier{w: r.out}
	n.successf("cluster reachable")
	n.successf("prometheus reachable at %s", promURL)

	return nil
}

// Status renders a single deployment check.
func (r *Renderer) Status(result reconciler.PollResult) error {
	if r.format == config.OutputJSON {
		return r.json(struct {
			Poll     pollView      `json:"poll"`
			Status   statusView    `json:"status"`
			Endpoint *endpointView `json:"endpoint"`
		}{
			Poll:     toPollView(result),
			Status:   toStatusView(result.Status),
			Endpoint: toEndpointView(result.Status.Endpoint),
		})
	}

	n := notifier{w: r.out}

	r.writePoll(n, &result, result.Status)

	if result.Status.Endpoint != nil {
		r.writeEndpoint(n, *result.Status.Endpoint)
	}

	return nil
}

// Metrics renders a metrics snapshot.
func (r *Renderer) Metrics(snapshot reconciler.MetricsSnapshot, promURL string) error {
	if r.format == config.OutputJSON {
		return r.json(toMetricsView(promURL, snapshot))
	}

	n := notifier{w: r.out}
	n.infof("prometheus %s", promURL)
	r.writeMetrics(n, snapshot)

	return nil
}

func (r *Renderer) writePoll(n notifier, poll *reconciler.PollResult, status reconciler.DeploymentStatus) {
	switch {
	case poll == nil:
		n.warningf("deployment %s not checked", status.Name)
	case poll.State == reconciler.StateConverged:
		n.successf("deployment %s ready %d/%d after %d checks",
			status.Name, status.Ready, status.Declared, poll.Attempts)
	case poll.LastErr != nil:
		n.warningf("deployment %s %s, ready %d/%d after %d checks: %v",
			status.Name, poll.State, status.Ready, status.Declared, poll.Attempts, poll.LastErr)
	default:
		n.warningf("deployment %s %s, ready %d/%d after %d checks",
			status.Name, poll.State, status.Ready, status.Declared, poll.Attempts)
	}
}

func (r *Renderer) writeEndpoint(n notifier, endpoint reconciler.ServiceEndpoint) {
	if endpoint.Fallback {
		n.warningf("endpoint %s (fallback)", endpoint.URL())

		return
	}

	n.infof("endpoint %s", endpoint.URL())
}

func (r *Renderer) writeMetrics(n notifier, snapshot reconciler.MetricsSnapshot) {
	for _, name := range metricNames {
		value := snapshot.Get(name)
		if !value.Available {
			n.warningf("%s unavailable: %v", name, value.Err)

			continue
		}

		n.infof("%s %s", name, formatMetric(name, value.Value))
	}
}

func formatMetric(name reconciler.MetricName, v float64) string {
	if name == reconciler.MetricPods {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}
