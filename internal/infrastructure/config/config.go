package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	RemoteModeHTTP   = "http"
	RemoteModeMemory = "memory"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Remote     Remote
	Prometheus Prometheus
	Theme      Theme
}

type HTTPServer struct {
	Address string
	Port    int
}

type Remote struct {
	BaseURL string
	Mode    string
	// Zero leaves the transport default in place.
	Timeout time.Duration
}

type Prometheus struct {
	Address string
	Port    int
}

type Theme struct {
	Interval  time.Duration
	Autostart bool
}

func MustLoad() *Config {
	cfg, err := Load(viper.New(), "./config")
	if err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}
	return cfg
}

// Load reads config.yaml from the given paths. A missing file leaves the defaults in place.
func Load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("POSTSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 8080)

	v.SetDefault("remote.base_url", "https://jsonplaceholder.typicode.com/posts")
	v.SetDefault("remote.mode", RemoteModeHTTP)
	v.SetDefault("remote.timeout", time.Duration(0))

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9103)

	v.SetDefault("theme.interval", 3*time.Second)
	v.SetDefault("theme.autostart", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address: v.GetString("http_server.address"),
			Port:    v.GetInt("http_server.port"),
		},
		Remote: Remote{
			BaseURL: strings.TrimRight(v.GetString("remote.base_url"), "/"),
			Mode:    v.GetString("remote.mode"),
			Timeout: v.GetDuration("remote.timeout"),
		},
		Prometheus: Prometheus{
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
		Theme: Theme{
			Interval:  v.GetDuration("theme.interval"),
			Autostart: v.GetBool("theme.autostart"),
		},
	}

	switch config.Remote.Mode {
	case RemoteModeHTTP, RemoteModeMemory:
	default:
		return nil, fmt.Errorf("remote.mode must be %q or %q, got %q", RemoteModeHTTP, RemoteModeMemory, config.Remote.Mode)
	}

	return config, nil
}
