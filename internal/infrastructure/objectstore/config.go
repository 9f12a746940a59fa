package objectstore

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	DriverMinio = "minio"
	DriverS3    = "s3"

	DefaultSessionTTL = 23 * time.Hour
)

type Config struct {
	Driver        string `yaml:"driver"`
	Endpoint      string `yaml:"endpoint"`
	Region        string `yaml:"region"`
	UseSSL        bool   `yaml:"use_ssl"`
	Bucket        string `yaml:"bucket"`
	PublicBaseURL string `yaml:"public_base_url"`
	CDNDomain     string `yaml:"cdn_domain"`
	SessionTTL    int64  `yaml:"session_ttl_in_minutes"`
	Timeout       int64  `yaml:"timeout_in_ms"`

	AccessKey string `env:"STORAGE_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_SECRET_KEY"`
}

func (c *Config) Scheme() string {
	if c.UseSSL {
		return "https"
	}

	return "http"
}

func (c *Config) EndpointURL() string {
	if strings.Contains(c.Endpoint, "://") {
		return c.Endpoint
	}

	return fmt.Sprintf("%s://%s", c.Scheme(), c.Endpoint)
}

func (c *Config) TTL() time.Duration {
	if c.SessionTTL <= 0 {
		return DefaultSessionTTL
	}

	return time.Duration(c.SessionTTL) * time.Minute
}

// WithTimeout bounds a single remote call. A zero timeout only adds cancellation.
func (c *Config) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, time.Duration(c.Timeout)*time.Millisecond)
}

// PublicURL routes through the CDN domain when one is configured.
func (c *Config) PublicURL(key string) string {
	key = strings.TrimLeft(key, "/")

	if c.CDNDomain != "" {
		domain := strings.TrimSuffix(c.CDNDomain, "/")
		if !strings.Contains(domain, "://") {
			domain = "https://" + domain
		}

		return domain + "/" + key
	}

	base := strings.TrimSuffix(c.PublicBaseURL, "/")
	if base == "" {
		base = strings.TrimSuffix(c.EndpointURL(), "/") + "/" + c.Bucket
	}

	return base + "/" + key
}
