package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/aurelia-jewels/reports-manager/internal/api/http"
	"github.com/aurelia-jewels/reports-manager/internal/apisrv/auth"
	"github.com/aurelia-jewels/reports-manager/internal/backend"
	"github.com/aurelia-jewels/reports-manager/internal/reportsnapshot"
	"github.com/aurelia-jewels/reports-manager/internal/store"
	"github.com/aurelia-jewels/reports-manager/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB       store.Config          `mapstructure:"mysql"`
	Logger   log.Config            `mapstructure:"logger"`
	HTTP     httpapi.Config        `mapstructure:"http"`
	Auth     auth.Config           `mapstructure:"auth"`
	Backend  backend.Config        `mapstructure:"backend"`
	Snapshot reportsnapshot.Config `mapstructure:"snapshot"`

	// BackendToken is the service token used against the platform API. It
	// seeds the session object at startup.
	BackendToken string `mapstructure:"backend_token"`
}

// LoadConfig loads the configuration from a file and/or environment
// variables. Environment variables take precedence over config file values.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/aurelia-reports-manager")
		viper.AddConfigPath("/etc/aurelia-reports-manager")
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	return &config, nil
}

// bindEnvVars binds environment variables to config keys so flat names like
// MYSQL_DSN work alongside the config file.
func bindEnvVars() {
	// MySQL
	viper.BindEnv("mysql.dsn", "MYSQL_DSN")
	viper.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	viper.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Auth
	viper.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	viper.BindEnv("auth.master_password", "AUTH_MASTER_PASSWORD")
	viper.BindEnv("auth.password_hasher_salt_size", "AUTH_PASSWORD_HASHER_SALT_SIZE")
	viper.BindEnv("auth.password_hasher_iterations", "AUTH_PASSWORD_HASHER_ITERATIONS")
	viper.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")

	// Platform API
	viper.BindEnv("backend.base_url", "BACKEND_BASE_URL")
	viper.BindEnv("backend.http_timeout", "BACKEND_HTTP_TIMEOUT")
	viper.BindEnv("backend_token", "BACKEND_TOKEN")

	// Snapshot worker
	viper.BindEnv("snapshot.worker_interval", "SNAPSHOT_WORKER_INTERVAL")
}
