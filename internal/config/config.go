package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. Every field can
// be set in the YAML file and overridden by its environment variable.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the default level of the environment when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits the size of request bodies
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS, "*" allows any
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
		// EnablePprof mounts the pprof handlers under /debug/pprof
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"directorybolt" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"directorybolt" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"directorybolt" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections is the number of connections kept open in the pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair used for AutoBolt worker tokens
	JWT struct {
		// PrivateKeyPath is the PEM encoded RSA private key used to sign tokens
		PrivateKeyPath string `env:"JWT_PRIVATE_KEY_PATH" env-default:"jwt.key" yaml:"privateKeyPath"`
		// PublicKeyPath is the PEM encoded RSA public key used to verify tokens
		PublicKeyPath string `env:"JWT_PUBLIC_KEY_PATH" env-default:"jwt.pub" yaml:"publicKeyPath"`
		// Issuer is set on issued tokens and required on verified ones
		Issuer string `env:"JWT_ISSUER" env-default:"directorybolt" yaml:"issuer"`
	} `yaml:"jwt"`

	// Auth configures customer sessions and staff credentials
	Auth struct {
		// SessionTTL is how long a login session stays valid
		SessionTTL time.Duration `env:"AUTH_SESSION_TTL" env-default:"168h" yaml:"sessionTTL"`
		// BcryptCost is the bcrypt work factor for new password hashes
		BcryptCost int `env:"AUTH_BCRYPT_COST" env-default:"12" yaml:"bcryptCost"`
		// MinPasswordLength is the shortest accepted password
		MinPasswordLength int `env:"AUTH_MIN_PASSWORD_LENGTH" env-default:"8" yaml:"minPasswordLength"`
		// AdminAPIKey is accepted for admin routes when the database cannot be reached
		AdminAPIKey string `env:"AUTH_ADMIN_API_KEY" yaml:"adminApiKey"`
		// AdminUsername and AdminPassword are the fallback admin basic credentials
		AdminUsername string `env:"AUTH_ADMIN_USERNAME" yaml:"adminUsername"`
		AdminPassword string `env:"AUTH_ADMIN_PASSWORD" yaml:"adminPassword"`
		// StaffAPIKey is accepted for staff routes when the database cannot be reached
		StaffAPIKey string `env:"AUTH_STAFF_API_KEY" yaml:"staffApiKey"`
		// StaffUsername and StaffPassword are the fallback staff basic credentials
		StaffUsername string `env:"AUTH_STAFF_USERNAME" yaml:"staffUsername"`
		StaffPassword string `env:"AUTH_STAFF_PASSWORD" yaml:"staffPassword"`
	} `yaml:"auth"`

	// Queue configures the AutoBolt submission queue and the background workers
	Queue struct {
		// StaleAfter is how long a job may stay in processing before it is requeued
		StaleAfter time.Duration `env:"QUEUE_STALE_AFTER" env-default:"2h" yaml:"staleAfter"`
		// MaxAttempts is how many claims a job gets before it fails
		MaxAttempts int `env:"QUEUE_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// RequeueInterval is how often stale jobs are looked for
		RequeueInterval time.Duration `env:"QUEUE_REQUEUE_INTERVAL" env-default:"5m" yaml:"requeueInterval"`
		// SessionPurgeInterval is how often expired sessions are deleted
		SessionPurgeInterval time.Duration `env:"QUEUE_SESSION_PURGE_INTERVAL" env-default:"1h" yaml:"sessionPurgeInterval"`
		// MaxWorkers is the concurrency of the background job queue
		MaxWorkers int `env:"QUEUE_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
	} `yaml:"queue"`

	// Payments configures the hosted checkout
	Payments struct {
		// SecretKey is the Stripe API secret key
		SecretKey string `env:"STRIPE_SECRET_KEY" yaml:"secretKey"`
		// WebhookSecret verifies Stripe-Signature headers
		WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET" yaml:"webhookSecret"`
		// WebhookTolerance is the accepted age of a signed webhook
		WebhookTolerance time.Duration `env:"STRIPE_WEBHOOK_TOLERANCE" env-default:"5m" yaml:"webhookTolerance"`
		// Currency of checkout line items
		Currency string `env:"PAYMENTS_CURRENCY" env-default:"usd" yaml:"currency"`
		// SuccessURL is where the checkout redirects after payment
		SuccessURL string `env:"PAYMENTS_SUCCESS_URL" env-default:"http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}" yaml:"successUrl"` //nolint: lll
		// CancelURL is where the checkout redirects when abandoned
		CancelURL string `env:"PAYMENTS_CANCEL_URL" env-default:"http://localhost:3000/pricing" yaml:"cancelUrl"`
		// Prices maps a tier to a Stripe price id. Tiers without one are charged
		// their list price with inline price data.
		Prices map[string]string `env:"PAYMENTS_PRICES" env-separator:"," yaml:"prices"`
	} `yaml:"payments"`

	// Analytics configures the event buffer
	Analytics struct {
		// BatchSize triggers a flush once this many events are buffered
		BatchSize int `env:"ANALYTICS_BATCH_SIZE" env-default:"100" yaml:"batchSize"`
		// FlushInterval is the longest time events stay buffered
		FlushInterval time.Duration `env:"ANALYTICS_FLUSH_INTERVAL" env-default:"10s" yaml:"flushInterval"`
		// MaxBuffer caps the buffer while the sink is failing; the oldest events are dropped
		MaxBuffer int `env:"ANALYTICS_MAX_BUFFER" env-default:"10000" yaml:"maxBuffer"`
	} `yaml:"analytics"`

	// Audit configures the directory URL audit
	Audit struct {
		// Concurrency is the number of URLs checked in parallel
		Concurrency int `env:"AUDIT_CONCURRENCY" env-default:"20" yaml:"concurrency"`
		// Timeout applies to the main URL check
		Timeout time.Duration `env:"AUDIT_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// SubmissionTimeout applies to the submission URL check
		SubmissionTimeout time.Duration `env:"AUDIT_SUBMISSION_TIMEOUT" env-default:"5s" yaml:"submissionTimeout"`
		// UserAgent is sent with every request
		UserAgent string `env:"AUDIT_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36" yaml:"userAgent"` //nolint: lll
	} `yaml:"audit"`

	// Monitor configures submission form capture
	Monitor struct {
		// Headless runs Chrome without a window
		Headless bool `env:"MONITOR_HEADLESS" env-default:"true" yaml:"headless"`
		// NavigationTimeout bounds loading one page
		NavigationTimeout time.Duration `env:"MONITOR_NAVIGATION_TIMEOUT" env-default:"45s" yaml:"navigationTimeout"`
		// SettleDelay is waited after load for scripts to render forms
		SettleDelay time.Duration `env:"MONITOR_SETTLE_DELAY" env-default:"1500ms" yaml:"settleDelay"`
		// Interval schedules periodic monitoring, zero disables it
		Interval time.Duration `env:"MONITOR_INTERVAL" env-default:"0s" yaml:"interval"`
		// Concurrency is the number of pages captured in parallel by the CLI
		Concurrency int `env:"MONITOR_CONCURRENCY" env-default:"2" yaml:"concurrency"`
	} `yaml:"monitor"`

	// Blob configures where reports and capture artifacts are written
	Blob struct {
		// Driver is "local" or "gcs"
		Driver string `env:"BLOB_DRIVER" env-default:"local" yaml:"driver"`
		// LocalDir is the root directory of the local driver
		LocalDir string `env:"BLOB_LOCAL_DIR" env-default:"./artifacts" yaml:"localDir"`
		// Bucket is the GCS bucket of the gcs driver
		Bucket string `env:"BLOB_BUCKET" yaml:"bucket"`
		// Prefix is prepended to every GCS object name
		Prefix string `env:"BLOB_PREFIX" yaml:"prefix"`
	} `yaml:"blob"`

	// Events configures where form change events are published
	Events struct {
		// Driver is "log" or "pubsub"
		Driver string `env:"EVENTS_DRIVER" env-default:"log" yaml:"driver"`
		// ProjectID is the GCP project of the pubsub driver
		ProjectID string `env:"EVENTS_PROJECT_ID" yaml:"projectId"`
		// Topic is the pubsub topic change events are published to
		Topic string `env:"EVENTS_TOPIC" env-default:"directory-form-changes" yaml:"topic"`
	} `yaml:"events"`

	// SEO configures the domain authority provider
	SEO struct {
		// BaseURL of the URL metrics API
		BaseURL string `env:"SEO_BASE_URL" env-default:"https://lsapi.seomoz.com" yaml:"baseUrl"`
		// AccessID and SecretKey authenticate against the API
		AccessID  string `env:"SEO_ACCESS_ID" yaml:"accessId"`
		SecretKey string `env:"SEO_SECRET_KEY" yaml:"secretKey"`
		// Timeout bounds a single API call
		Timeout time.Duration `env:"SEO_TIMEOUT" env-default:"15s" yaml:"timeout"`
		// StaleAfter is the age after which a directory is enriched again
		StaleAfter time.Duration `env:"SEO_STALE_AFTER" env-default:"720h" yaml:"staleAfter"`
		// RateLimitBackoff is how long to wait after a rate limited call that
		// did not say when the window resets
		RateLimitBackoff time.Duration `env:"SEO_RATE_LIMIT_BACKOFF" env-default:"1m" yaml:"rateLimitBackoff"`
	} `yaml:"seo"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config
// struct. An empty path reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
