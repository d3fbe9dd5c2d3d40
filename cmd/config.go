package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"hrvalidation/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envAuthHost         = "AUTH_SERVICE_HOST"
	envAuthPort         = "AUTH_SERVICE_PORT"
	envDepartmentHost   = "DEPARTMENT_SERVICE_HOST"
	envDepartmentPort   = "DEPARTMENT_SERVICE_PORT"
	envGRPCTimeout      = "GRPC_TIMEOUT"
	envMaxRetries       = "GRPC_MAX_RETRIES"
	envRetryDelay       = "GRPC_RETRY_DELAY"
	envEnableValidation = "ENABLE_GRPC_VALIDATION"
	envCacheTTL         = "CACHE_TTL"
	envRedisAddr        = "REDIS_ADDR"
	envHTTPPort         = "SERVICE_PORT_HTTP"
	envConfigPath       = "CONFIG_PATH"
)

// Config holds the full service configuration: endpoints of the sibling services,
// retry/timeout budget, the validation on/off switch, cache settings and the HTTP
// listening port. Loaded once by LoadConfig and read-only afterwards.
type Config struct {
	HTTPPort         int
	Auth             domain.ServiceEndpoint
	Department       domain.ServiceEndpoint
	MaxRetries       int
	RetryDelay       time.Duration
	EnableValidation bool
	CacheTTL         time.Duration
	RedisAddr        string // empty — use the in-memory cache
}

// yamlConfig is the root struct for the optional CONFIG_PATH file: per-service
// host/port overrides applied between the defaults and the env variables.
type yamlConfig struct {
	Services map[string]yamlService `yaml:"services"`
}

// yamlService is one service entry (host, port).
type yamlService struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// loadYAMLConfig reads and unmarshals the endpoints file at path.
//
// Called only from LoadConfig when CONFIG_PATH is set.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the service config in three layers: built-in defaults
// (localhost:50052 auth, localhost:50051 department, 5s timeout, 3 retries, 0.5s
// delay, validation on, 300s cache TTL, HTTP on 8080), then the optional YAML file at
// CONFIG_PATH, then environment variables. A missing variable never fails startup; an
// invalid value does.
//
// Returns: (*Config, nil) on success; (nil, error) on unreadable YAML or unparsable
// numeric/boolean values.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		HTTPPort: 8080,
		Auth: domain.ServiceEndpoint{
			Name:    domain.ServiceAuth,
			Host:    "localhost",
			Port:    50052,
			Timeout: 5 * time.Second,
		},
		Department: domain.ServiceEndpoint{
			Name:    domain.ServiceDepartment,
			Host:    "localhost",
			Port:    50051,
			Timeout: 5 * time.Second,
		},
		MaxRetries:       3,
		RetryDelay:       500 * time.Millisecond,
		EnableValidation: true,
		CacheTTL:         300 * time.Second,
	}

	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, err := filepath.Abs(configPath)
			if err != nil {
				return nil, err
			}
			configPath = abs
		}
		raw, err := loadYAMLConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
		for name, svc := range raw.Services {
			var endpoint *domain.ServiceEndpoint
			switch domain.ServiceName(strings.TrimSpace(name)) {
			case domain.ServiceAuth:
				endpoint = &cfg.Auth
			case domain.ServiceDepartment:
				endpoint = &cfg.Department
			default:
				return nil, fmt.Errorf("config %s: unknown service %q", configPath, name)
			}
			if host := strings.TrimSpace(svc.Host); host != "" {
				endpoint.Host = host
			}
			if svc.Port != 0 {
				if svc.Port < 1 || svc.Port > 65535 {
					return nil, fmt.Errorf("config %s: service %q port must be 1-65535, got %d", configPath, name, svc.Port)
				}
				endpoint.Port = svc.Port
			}
		}
	}

	if v := os.Getenv(envAuthHost); v != "" {
		cfg.Auth.Host = v
	}
	if err := overridePort(envAuthPort, &cfg.Auth.Port); err != nil {
		return nil, err
	}
	if v := os.Getenv(envDepartmentHost); v != "" {
		cfg.Department.Host = v
	}
	if err := overridePort(envDepartmentPort, &cfg.Department.Port); err != nil {
		return nil, err
	}
	if err := overridePort(envHTTPPort, &cfg.HTTPPort); err != nil {
		return nil, err
	}

	if v := os.Getenv(envGRPCTimeout); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("%s must be a positive integer (seconds), got %q", envGRPCTimeout, v)
		}
		timeout := time.Duration(seconds) * time.Second
		cfg.Auth.Timeout = timeout
		cfg.Department.Timeout = timeout
	}

	if v := os.Getenv(envMaxRetries); v != "" {
		retries, err := strconv.Atoi(v)
		if err != nil || retries < 1 {
			return nil, fmt.Errorf("%s must be a positive integer, got %q", envMaxRetries, v)
		}
		cfg.MaxRetries = retries
	}

	if v := os.Getenv(envRetryDelay); v != "" {
		seconds, err := strconv.ParseFloat(v, 64)
		if err != nil || seconds < 0 {
			return nil, fmt.Errorf("%s must be a non-negative number (seconds), got %q", envRetryDelay, v)
		}
		cfg.RetryDelay = time.Duration(seconds * float64(time.Second))
	}

	if v := os.Getenv(envEnableValidation); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be a boolean, got %q", envEnableValidation, v)
		}
		cfg.EnableValidation = enabled
	}

	if v := os.Getenv(envCacheTTL); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("%s must be a positive integer (seconds), got %q", envCacheTTL, v)
		}
		cfg.CacheTTL = time.Duration(seconds) * time.Second
	}

	cfg.RedisAddr = strings.TrimSpace(os.Getenv(envRedisAddr))

	return cfg, nil
}

// overridePort applies an env port variable over the current value, validating range.
//
// Called only from LoadConfig.
func overridePort(envName string, port *int) error {
	v := os.Getenv(envName)
	if v == "" {
		return nil
	}
	p, err := strconv.Atoi(v)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("%s must be a valid port (1-65535), got %q", envName, v)
	}
	*port = p
	return nil
}
