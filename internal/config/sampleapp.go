package config

import "time"

type SampleAppConfig struct {
	LogLevel        string
	LogFormat       string
	HTTPPort        string
	MetricsPort     string
	ShutdownTimeout time.Duration
	PingerInterval  time.Duration
}

// LoadSampleApp reads the sample workload configuration from SAMPLEAPP_* env vars.
func LoadSampleApp() (*SampleAppConfig, error) {
	v, err := newViper(sampleAppEnvPrefix, nil)
	if err != nil {
		return nil, err
	}

	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "json")
	v.SetDefault(keySampleAppHTTPPort, "5000")
	v.SetDefault(keySampleAppMetricsPort, "9100")
	v.SetDefault(keySampleAppShutdownTimeout, "10s")
	v.SetDefault(keySampleAppPingerInterval, "5s")

	cfg := &SampleAppConfig{
		LogLevel:    v.GetString(keyLogLevel),
		LogFormat:   v.GetString(keyLogFormat),
		HTTPPort:    v.GetString(keySampleAppHTTPPort),
		MetricsPort: v.GetString(keySampleAppMetricsPort),
	}

	if cfg.ShutdownTimeout, err = parseDuration(v, keySampleAppShutdownTimeout, envMinShutdownTimeout); err != nil {
		return nil, err
	}

	if cfg.PingerInterval, err = parseDuration(v, keySampleAppPingerInterval, envMinPingerInterval); err != nil {
		return nil, err
	}

	return cfg, nil
}
