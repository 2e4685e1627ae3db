package constants

const (
	// ConfigName is the base name of the config file (without extension).
	ConfigName = "config"

	// ConfigFormat is the config file format viper should expect.
	ConfigFormat = "yaml"

	// ServiceName is the default service identifier used in logs and telemetry.
	ServiceName = "carelink_backend"
)
