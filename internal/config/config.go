package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Platform struct {
		BaseURL        string `yaml:"base_url"`
		TenantKey      string `yaml:"tenant_key"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"platform"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Session struct {
		Secret        string `yaml:"secret"`
		TTLHours      int    `yaml:"ttl_hours"`
		SecureCookie  bool   `yaml:"secure_cookie"`
		SignInMax     int    `yaml:"signin_max_attempts"`
		SignInWindow  int    `yaml:"signin_window_minutes"`
		AllowedOrigin string `yaml:"allowed_origin"`
	} `yaml:"session"`
	Live struct {
		TicketSigningKey string `yaml:"ticket_signing_key"`
		TicketTTLSeconds int    `yaml:"ticket_ttl_seconds"`
		TickSeconds      int    `yaml:"tick_seconds"`
	} `yaml:"live"`
	Storage struct {
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		BaseURL   string `yaml:"base_url"`
	} `yaml:"storage"`
	Push struct {
		CredentialsFile string `yaml:"credentials_file"`
	} `yaml:"push"`
	Home struct {
		CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
	} `yaml:"home"`
}

func LoadConfig() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	// Secrets may live in the environment instead of the file.
	envOverride(&cfg.Platform.TenantKey, "PLATFORM_TENANT_KEY")
	envOverride(&cfg.Redis.Password, "REDIS_PASSWORD")
	envOverride(&cfg.Session.Secret, "SESSION_SECRET")
	envOverride(&cfg.Live.TicketSigningKey, "WS_TICKET_KEY")
	envOverride(&cfg.Storage.AccessKey, "S3_ACCESS_KEY")
	envOverride(&cfg.Storage.SecretKey, "S3_SECRET_KEY")

	cfg.applyDefaults()
	return cfg
}

func envOverride(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func (c *Config) applyDefaults() {
	if c.Platform.TimeoutSeconds <= 0 {
		c.Platform.TimeoutSeconds = 10
	}
	if c.Session.TTLHours <= 0 {
		c.Session.TTLHours = 72
	}
	if c.Session.SignInMax <= 0 {
		c.Session.SignInMax = 5
	}
	if c.Session.SignInWindow <= 0 {
		c.Session.SignInWindow = 15
	}
	if c.Live.TicketTTLSeconds <= 0 {
		c.Live.TicketTTLSeconds = 60
	}
	if c.Live.TickSeconds <= 0 {
		c.Live.TickSeconds = 5
	}
	if c.Home.CacheTTLSeconds <= 0 {
		c.Home.CacheTTLSeconds = 60
	}
}

func (c Config) PlatformTimeout() time.Duration {
	return time.Duration(c.Platform.TimeoutSeconds) * time.Second
}

func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLHours) * time.Hour
}

func (c Config) SignInWindow() time.Duration {
	return time.Duration(c.Session.SignInWindow) * time.Minute
}

func (c Config) TicketTTL() time.Duration {
	return time.Duration(c.Live.TicketTTLSeconds) * time.Second
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Live.TickSeconds) * time.Second
}

func (c Config) HomeCacheTTL() time.Duration {
	return time.Duration(c.Home.CacheTTLSeconds) * time.Second
}
