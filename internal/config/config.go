package config

import (
	"fmt"
	"time"
)

type Config struct {
	HTTP          HTTPConfig          `yaml:"http"`
	Rod           RodConfig           `yaml:"rod"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit"`
	Scrape        ScrapeConfig        `yaml:"scrape"`
	Storage       StorageConfig       `yaml:"storage"`
	Scheduler     SchedulerConfig     `yaml:"scheduler"`
	Observability ObservabilityConfig `yaml:"observability"`
	SourcesFile   string              `yaml:"sources_file"`
}

type HTTPConfig struct {
	UserAgent      string `yaml:"user_agent"`
	TotalTimeoutMS int    `yaml:"total_timeout_ms"`
}

type RodConfig struct {
	Enabled          bool   `yaml:"enabled"`
	ChromePath       string `yaml:"chrome_path"`
	PageTimeoutS     int    `yaml:"page_timeout_s"`
	WaitLoadTimeoutS int    `yaml:"wait_load_timeout_s"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type ScrapeConfig struct {
	MaxPostingsPerSource  int `yaml:"max_postings_per_source"`
	ApplicationWindowDays int `yaml:"application_window_days"`
}

type StorageConfig struct {
	Driver           string `yaml:"driver"`
	DSN              string `yaml:"dsn"`
	CommandTimeoutMS int    `yaml:"command_timeout_ms"`
}

type SchedulerConfig struct {
	ScanIntervalM int `yaml:"scan_interval_m"`
	RetentionDays int `yaml:"retention_days"`
}

type ObservabilityConfig struct {
	LogPath    string `yaml:"log_path"`
	LogLevel   string `yaml:"log_level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// applyDefaults fills in values the file may omit. Required fields
// (storage driver, DSN for mssql) stay empty and fail validation.
func (c *Config) applyDefaults() {
	if c.HTTP.UserAgent == "" {
		// Sites reject default client identities; look like a desktop browser.
		c.HTTP.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}
	if c.HTTP.TotalTimeoutMS <= 0 {
		c.HTTP.TotalTimeoutMS = 15000
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		c.RateLimit.RequestsPerSecond = 1
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = 1
	}
	if c.Scrape.MaxPostingsPerSource <= 0 {
		c.Scrape.MaxPostingsPerSource = 3
	}
	if c.Scrape.ApplicationWindowDays <= 0 {
		c.Scrape.ApplicationWindowDays = 30
	}
	if c.Storage.CommandTimeoutMS <= 0 {
		c.Storage.CommandTimeoutMS = 5000
	}
	if c.Scheduler.ScanIntervalM <= 0 {
		c.Scheduler.ScanIntervalM = 5
	}
	if c.Scheduler.RetentionDays <= 0 {
		c.Scheduler.RetentionDays = 60
	}
	if c.Observability.LogLevel == "" {
		c.Observability.LogLevel = "info"
	}
	if c.Observability.MaxSizeMB <= 0 {
		c.Observability.MaxSizeMB = 50
	}
	if c.Observability.MaxBackups <= 0 {
		c.Observability.MaxBackups = 5
	}
}

// Validation
func (c *Config) Validate() error {
	if c.Storage.Driver != "mssql" && c.Storage.Driver != "memory" {
		return fmt.Errorf("storage.driver must be 'mssql' or 'memory'")
	}
	if c.Storage.Driver == "mssql" && c.Storage.DSN == "" {
		return fmt.Errorf("storage.dsn is required for driver 'mssql'")
	}
	if c.Rod.Enabled {
		if c.Rod.PageTimeoutS <= 0 {
			return fmt.Errorf("rod.page_timeout_s must be > 0 when rod.enabled is true")
		}
		if c.Rod.WaitLoadTimeoutS <= 0 {
			return fmt.Errorf("rod.wait_load_timeout_s must be > 0 when rod.enabled is true")
		}
	}
	switch c.Observability.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("observability.log_level must be one of debug, info, warn, error")
	}
	return nil
}

// Getters
func (c *Config) GetTotalTimeout() time.Duration {
	return time.Duration(c.HTTP.TotalTimeoutMS) * time.Millisecond
}

func (c *Config) GetCommandTimeout() time.Duration {
	return time.Duration(c.Storage.CommandTimeoutMS) * time.Millisecond
}

func (c *Config) GetScanInterval() time.Duration {
	return time.Duration(c.Scheduler.ScanIntervalM) * time.Minute
}

func (c *Config) GetApplicationWindow() time.Duration {
	return time.Duration(c.Scrape.ApplicationWindowDays) * 24 * time.Hour
}

func (c *Config) GetRodPageTimeout() time.Duration {
	return time.Duration(c.Rod.PageTimeoutS) * time.Second
}

func (c *Config) GetRodWaitLoadTimeout() time.Duration {
	return time.Duration(c.Rod.WaitLoadTimeoutS) * time.Second
}
