package auth

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds session and identity provider settings. It is read from
// config/auth.yaml with environment overrides for secrets.
type Config struct {
	SessionSecret  string `yaml:"session_secret"`
	CookieName     string `yaml:"cookie_name"`
	CookieSecure   bool   `yaml:"cookie_secure"`
	SessionTTL     string `yaml:"session_ttl"`
	IdentityLogin  string `yaml:"identity_login_url"`
	IdentityLogout string `yaml:"identity_logout_url"`

	sessionTTL time.Duration
}

// LoadConfig reads the auth configuration file and applies environment
// overrides. A missing file is fine when the required values come from the
// environment.
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		CookieName: "peakform_session",
		SessionTTL: "720m",
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse auth config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read auth config %s: %w", path, err)
	}

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		config.SessionSecret = secret
	}
	if name := os.Getenv("SESSION_COOKIE_NAME"); name != "" {
		config.CookieName = name
	}
	if login := os.Getenv("IDENTITY_LOGIN_URL"); login != "" {
		config.IdentityLogin = login
	}
	if logout := os.Getenv("IDENTITY_LOGOUT_URL"); logout != "" {
		config.IdentityLogout = logout
	}
	if ttl := os.Getenv("SESSION_TTL_MINUTES"); ttl != "" {
		config.SessionTTL = ttl + "m"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks required fields and parses the session TTL
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("auth config: session_secret is required")
	}
	if c.IdentityLogin == "" {
		return fmt.Errorf("auth config: identity_login_url is required")
	}
	ttl, err := time.ParseDuration(c.SessionTTL)
	if err != nil || ttl <= 0 {
		return fmt.Errorf("auth config: invalid session_ttl %q", c.SessionTTL)
	}
	c.sessionTTL = ttl
	return nil
}

// TTL returns the parsed session lifetime
func (c *Config) TTL() time.Duration {
	return c.sessionTTL
}
