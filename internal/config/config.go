// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Twilio     TwilioConfig     `mapstructure:"twilio"`
	Gateway    GatewayConfig    `mapstructure:"gateway"`
	Webhook    WebhookConfig    `mapstructure:"webhook"`
	Trigger    TriggerConfig    `mapstructure:"trigger"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Engine     EngineConfig     `mapstructure:"engine"`
	AMQP       AMQPConfig       `mapstructure:"amqp"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type TwilioConfig struct {
	AccountSID         string `mapstructure:"account_sid"`
	AuthToken          string `mapstructure:"auth_token"`
	ValidateSignatures bool   `mapstructure:"validate_signatures"`
}

type GatewayConfig struct {
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
	DialTimeout    int                  `mapstructure:"dial_timeout"`
	VoicemailMax   int                  `mapstructure:"voicemail_max_seconds"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// WebhookConfig describes how the provider reaches this service.
type WebhookConfig struct {
	PublicBaseURL string `mapstructure:"public_base_url"`
	DedupeTTL     int    `mapstructure:"dedupe_ttl_seconds"`
}

// TriggerConfig authenticates the external sweep caller.
type TriggerConfig struct {
	SharedSecret string `mapstructure:"shared_secret"`
}

type SchedulerConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	InitialSweepCron  string `mapstructure:"initial_sweep_cron"`
	ReminderSweepCron string `mapstructure:"reminder_sweep_cron"`
	CampaignDrainCron string `mapstructure:"campaign_drain_cron"`
	SweepTimeout      int    `mapstructure:"sweep_timeout_seconds"`
}

// EngineConfig holds the defaults every tenant inherits unless overridden.
type EngineConfig struct {
	BatchSize        int             `mapstructure:"batch_size"`
	ReviewDelayHours int             `mapstructure:"review_delay_hours"`
	Reminder1Delay   time.Duration   `mapstructure:"reminder_1_delay"`
	Reminder2Delay   time.Duration   `mapstructure:"reminder_2_delay"`
	DedupWindow      time.Duration   `mapstructure:"dedup_window"`
	Templates        TemplatesConfig `mapstructure:"templates"`
}

type TemplatesConfig struct {
	Arrival      string `mapstructure:"arrival"`
	Cancellation string `mapstructure:"cancellation"`
	Review       string `mapstructure:"review"`
	Reminder1    string `mapstructure:"reminder_1"`
	Reminder2    string `mapstructure:"reminder_2"`
	MissedCall   string `mapstructure:"missed_call"`
}

type AMQPConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.db", 0)
	v.SetDefault("twilio.validate_signatures", true)
	v.SetDefault("gateway.dial_timeout", 20)
	v.SetDefault("gateway.voicemail_max_seconds", 120)
	v.SetDefault("gateway.circuit_breaker.max_requests", 3)
	v.SetDefault("gateway.circuit_breaker.interval", 60)
	v.SetDefault("gateway.circuit_breaker.timeout", 60)
	v.SetDefault("gateway.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("gateway.circuit_breaker.consecutive_fails", 5)
	v.SetDefault("webhook.dedupe_ttl_seconds", 86400)
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.initial_sweep_cron", "@every 5m")
	v.SetDefault("scheduler.reminder_sweep_cron", "@hourly")
	v.SetDefault("scheduler.campaign_drain_cron", "@every 5m")
	v.SetDefault("scheduler.sweep_timeout_seconds", 240)
	v.SetDefault("engine.batch_size", 50)
	v.SetDefault("engine.review_delay_hours", 2)
	v.SetDefault("engine.reminder_1_delay", "72h")
	v.SetDefault("engine.reminder_2_delay", "96h")
	v.SetDefault("engine.dedup_window", "2160h")
	v.SetDefault("amqp.exchange", "crewreach.events")
	v.SetDefault("middleware.rate_limit", 100)
	v.SetDefault("middleware.rate_limit_burst", 1000)
	v.SetDefault("middleware.enable_cors", true)
	v.SetDefault("middleware.allowed_origins", []string{"*"})
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if c.Webhook.PublicBaseURL == "" {
		return fmt.Errorf("webhook.public_base_url is required")
	}
	if c.Engine.BatchSize <= 0 {
		return fmt.Errorf("engine.batch_size must be positive, got %d", c.Engine.BatchSize)
	}
	if c.Engine.Reminder1Delay <= 0 || c.Engine.Reminder2Delay <= 0 {
		return fmt.Errorf("engine reminder delays must be positive")
	}
	return nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// GetURL returns the PostgreSQL URL form used by golang-migrate.
func (d *DatabaseConfig) GetURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}
