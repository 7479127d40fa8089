package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

var (
	errInvalidDuration = errors.New("invalid duration")
	errBelowMinimum    = errors.New("below minimum")
	errUnknownValue    = errors.New("unknown value")
)

// Output formats of the reconciliation report.
const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	KubeConfig string
	KubeMaster string
	LogLevel   string
	LogFormat  string
	Output     string

	WorkloadFile string
	Workload     reconciler.WorkloadSpec

	PollAttempts int
	PollInterval time.Duration
	QueryTimeout time.Duration

	PrometheusURL         string
	PrometheusFallbackURL string
	MonitoringNamespace   string
	PrometheusSelector    string
	PodPhase              string
	FallbackNodeAddress   string

	ManageCluster    bool
	MinikubeBinary   string
	MinikubeProfile  string
	MinikubeDriver   string
	MinikubeMemoryMB int
	MinikubeCPUs     int

	SkipImage    bool
	BuildContext string
	Dockerfile   string

	PushgatewayURL string
}

// RegisterFlags adds a flag for every config key to flags. Flag values take
// precedence over env vars once the flag is set on the command line.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(keyKubeConfig, "", "path to kubeconfig file")
	flags.String(keyKubeMaster, "", "Kubernetes API server URL")
	flags.String(keyLogLevel, "info", "log level: debug, info, warn, error")
	flags.String(keyLogFormat, "text", "log format: json or text")
	flags.StringP(keyOutput, "o", OutputText, "report output: text or json")

	flags.StringP(keyWorkloadFile, "f", "", "workload spec file (YAML or JSON)")
	flags.String(keyWorkloadName, "", "workload name")
	flags.String(keyWorkloadNamespace, "", "workload namespace")
	flags.String(keyWorkloadImage, "", "workload container image")
	flags.Int32(keyWorkloadReplicas, 0, "workload replica count")

	flags.Int(keyPollAttempts, reconciler.DefaultPollAttempts, "deployment status checks before giving up")
	flags.Duration(keyPollInterval, reconciler.DefaultPollInterval, "pause between deployment status checks")
	flags.Duration(keyQueryTimeout, reconciler.DefaultQueryTimeout, "deadline of each monitoring query")

	flags.String(keyPrometheusURL, "", "Prometheus base URL, skips discovery when set")
	flags.String(keyPrometheusFallbackURL, reconciler.DefaultPrometheusFallbackURL,
		"Prometheus URL used when discovery fails")
	flags.String(keyMonitoringNamespace, reconciler.DefaultMonitoringNamespace, "namespace of the monitoring stack")
	flags.String(keyPrometheusSelector, reconciler.DefaultPrometheusSelector, "label selector of the Prometheus service")
	flags.String(keyPodPhase, reconciler.DefaultPodPhase, "pod phase counted by the pods metric")
	flags.String(keyFallbackNodeAddress, reconciler.DefaultFallbackNodeAddress,
		"node address used when the cluster cannot report one")

	flags.Bool(keyManageCluster, true, "start minikube when needed and load the image into it")
	flags.String(keyMinikubeBinary, "minikube", "minikube binary")
	flags.String(keyMinikubeProfile, "", "minikube profile")
	flags.String(keyMinikubeDriver, "", "minikube driver")
	flags.Int(keyMinikubeMemoryMB, defaultMinikubeMemoryMB, "minikube memory in MB")
	flags.Int(keyMinikubeCPUs, defaultMinikubeCPUs, "minikube CPUs")

	flags.Bool(keySkipImage, false, "skip building and loading the workload image")
	flags.String(keyBuildContext, ".", "docker build context directory")
	flags.String(keyDockerfile, "Dockerfile", "Dockerfile path relative to the build context")

	flags.String(keyPushgatewayURL, "", "Pushgateway URL for cycle metrics")
}

const (
	defaultMinikubeMemoryMB = 4096
	defaultMinikubeCPUs     = 2
)

// Load reads the configuration from env vars and, when flags is not nil,
// from the command line flags registered with RegisterFlags.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v, err := newViper(envPrefix, flags)
	if err != nil {
		return nil, err
	}

	if err := v.BindEnv(keyKubeConfig, envKey(envPrefix, keyKubeConfig), envKeyKubeConfigFallback); err != nil {
		return nil, fmt.Errorf("bind %s: %w", keyKubeConfig, err)
	}

	if err := v.BindEnv(keyKubeMaster, envKey(envPrefix, keyKubeMaster), envKeyKubeMasterFallback); err != nil {
		return nil, fmt.Errorf("bind %s: %w", keyKubeMaster, err)
	}

	setDefaults(v)

	cfg := &Config{
		KubeConfig:            v.GetString(keyKubeConfig),
		KubeMaster:            v.GetString(keyKubeMaster),
		LogLevel:              v.GetString(keyLogLevel),
		LogFormat:             v.GetString(keyLogFormat),
		Output:                v.GetString(keyOutput),
		WorkloadFile:          v.GetString(keyWorkloadFile),
		PollAttempts:          v.GetInt(keyPollAttempts),
		PrometheusURL:         v.GetString(keyPrometheusURL),
		PrometheusFallbackURL: v.GetString(keyPrometheusFallbackURL),
		MonitoringNamespace:   v.GetString(keyMonitoringNamespace),
		PrometheusSelector:    v.GetString(keyPrometheusSelector),
		PodPhase:              v.GetString(keyPodPhase),
		FallbackNodeAddress:   v.GetString(keyFallbackNodeAddress),
		ManageCluster:         v.GetBool(keyManageCluster),
		MinikubeBinary:        v.GetString(keyMinikubeBinary),
		MinikubeProfile:       v.GetString(keyMinikubeProfile),
		MinikubeDriver:        v.GetString(keyMinikubeDriver),
		MinikubeMemoryMB:      v.GetInt(keyMinikubeMemoryMB),
		MinikubeCPUs:          v.GetInt(keyMinikubeCPUs),
		SkipImage:             v.GetBool(keySkipImage),
		BuildContext:          v.GetString(keyBuildContext),
		Dockerfile:            v.GetString(keyDockerfile),
		PushgatewayURL:        v.GetString(keyPushgatewayURL),
	}

	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		return nil, fmt.Errorf("%s: %w: %q", keyOutput, errUnknownValue, cfg.Output)
	}

	if cfg.PollAttempts < envMinPollAttempts {
		return nil, fmt.Errorf("%s: %w: %d < %d", keyPollAttempts, errBelowMinimum, cfg.PollAttempts, envMinPollAttempts)
	}

	if cfg.PollInterval, err = parseDuration(v, keyPollInterval, envMinPollInterval); err != nil {
		return nil, err
	}

	if cfg.QueryTimeout, err = parseDuration(v, keyQueryTimeout, envMinQueryTimeout); err != nil {
		return nil, err
	}

	if cfg.Workload, err = loadWorkload(v, cfg.WorkloadFile); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Options maps the config onto the reconciliation pipeline options.
func (c *Config) Options() reconciler.Options {
	return reconciler.Options{
		PollAttempts:          c.PollAttempts,
		PollInterval:          c.PollInterval,
		QueryTimeout:          c.QueryTimeout,
		FallbackNodeAddress:   c.FallbackNodeAddress,
		MonitoringNamespace:   c.MonitoringNamespace,
		PrometheusSelector:    c.PrometheusSelector,
		PrometheusURL:         c.PrometheusURL,
		PrometheusFallbackURL: c.PrometheusFallbackURL,
		PodPhase:              c.PodPhase,
		SkipImage:             c.SkipImage || !c.ManageCluster,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyOutput, OutputText)
	v.SetDefault(keyPollAttempts, reconciler.DefaultPollAttempts)
	v.SetDefault(keyPollInterval, reconciler.DefaultPollInterval.String())
	v.SetDefault(keyQueryTimeout, reconciler.DefaultQueryTimeout.String())
	v.SetDefault(keyPrometheusFallbackURL, reconciler.DefaultPrometheusFallbackURL)
	v.SetDefault(keyMonitoringNamespace, reconciler.DefaultMonitoringNamespace)
	v.SetDefault(keyPrometheusSelector, reconciler.DefaultPrometheusSelector)
	v.SetDefault(keyPodPhase, reconciler.DefaultPodPhase)
	v.SetDefault(keyFallbackNodeAddress, reconciler.DefaultFallbackNodeAddress)
	v.SetDefault(keyManageCluster, true)
	v.SetDefault(keyMinikubeBinary, "minikube")
	v.SetDefault(keyMinikubeMemoryMB, defaultMinikubeMemoryMB)
	v.SetDefault(keyMinikubeCPUs, defaultMinikubeCPUs)
	v.SetDefault(keyBuildContext, ".")
	v.SetDefault(keyDockerfile, "Dockerfile")
}

func newViper(prefix string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	return v, nil
}

func envKey(prefix, key string) string {
	return prefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// parseDuration reads key as a duration with explicit units and enforces minValue.
func parseDuration(v *viper.Viper, key string, minValue time.Duration) (time.Duration, error) {
	raw := v.GetString(key)

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %q: %w", key, errInvalidDuration, raw, err)
	}

	if d < minValue {
		return 0, fmt.Errorf("%s: %w: %s < %s", key, errBelowMinimum, d, minValue)
	}

	return d, nil
}
