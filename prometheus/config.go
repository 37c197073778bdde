package prometheus

import (
	"net"
	"strconv"
)

// Config of the metrics endpoint served by the serve command
type Config struct {
	Enabled bool   `mapstructure:"Enabled"`
	Host    string `mapstructure:"Host"`
	Port    int    `mapstructure:"Port"`
}

// Address is the host:port the metrics server listens on
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
