package pprof

// Config of the profiling server, it is only started by the serve command
type Config struct {
	// Enabled is the flag to enable/disable the profiling server
	Enabled bool `mapstructure:"Enabled"`
	// Host is the address to bind the profiling server
	Host string `mapstructure:"Host"`
	// Port is the port to bind the profiling server
	Port int `mapstructure:"Port"`
}
