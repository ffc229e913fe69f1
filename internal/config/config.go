package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Collector struct {
		UserAgent         string        `yaml:"user_agent"`
		RequestTimeout    time.Duration `yaml:"request_timeout" default:"30s"`
		MaxJobsPerSource  int           `yaml:"max_jobs_per_source" default:"100"`
		TotalJobLimit     int           `yaml:"total_job_limit" default:"500"`
		RateLimits        map[string]int `yaml:"rate_limits"` // requests per minute, keyed by source
		GreenhouseBaseURL string        `yaml:"greenhouse_base_url" default:"https://boards-api.greenhouse.io/v1/boards"`
		LeverBaseURL      string        `yaml:"lever_base_url" default:"https://api.lever.co/v0/postings"`
		RemoteOKBaseURL   string        `yaml:"remoteok_base_url" default:"https://remoteok.com/api"`
	} `yaml:"collector"`

	Matching struct {
		MaxResults int `yaml:"max_results" default:"20"`
	} `yaml:"matching"`

	Sessions struct {
		Backend string        `yaml:"backend" default:"memory"` // memory or redis
		TTL     time.Duration `yaml:"ttl" default:"24h"`
	} `yaml:"sessions"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`

	Storage struct {
		DataDir string `yaml:"data_dir" default:"data"`
	} `yaml:"storage"`

	Scheduler struct {
		Enabled     bool   `yaml:"enabled" default:"false"`
		RefreshSpec string `yaml:"refresh_spec" default:"0 */6 * * *"` // cron spec
	} `yaml:"scheduler"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	// Expand ${VAR} syntax
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	// Expand $VAR syntax (but avoid replacing ${VAR} that was already processed)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Collector.RequestTimeout = 30 * time.Second
	config.Collector.MaxJobsPerSource = 100
	config.Collector.TotalJobLimit = 500
	config.Collector.UserAgent = "Resumi/1.0 (Job Recommendation Engine)"
	config.Collector.RateLimits = map[string]int{
		"greenhouse": 60,
		"lever":      60,
		"remoteok":   10,
	}
	config.Collector.GreenhouseBaseURL = "https://boards-api.greenhouse.io/v1/boards"
	config.Collector.LeverBaseURL = "https://api.lever.co/v0/postings"
	config.Collector.RemoteOKBaseURL = "https://remoteok.com/api"

	config.Matching.MaxResults = 20

	config.Sessions.Backend = "memory"
	config.Sessions.TTL = 24 * time.Hour

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.Storage.DataDir = "data"

	config.Scheduler.Enabled = false
	config.Scheduler.RefreshSpec = "0 */6 * * *"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		c.Storage.DataDir = dataDir
	}

	if backend := os.Getenv("SESSION_BACKEND"); backend != "" {
		c.Sessions.Backend = backend
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			c.Sessions.TTL = d
		}
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Redis.Timeout = timeout
		}
	}

	if maxJobs := os.Getenv("COLLECTOR_MAX_JOBS_PER_SOURCE"); maxJobs != "" {
		if n, err := strconv.Atoi(maxJobs); err == nil {
			c.Collector.MaxJobsPerSource = n
		}
	}

	if timeout := os.Getenv("COLLECTOR_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Collector.RequestTimeout = d
		}
	}

	if maxResults := os.Getenv("MATCHING_MAX_RESULTS"); maxResults != "" {
		if n, err := strconv.Atoi(maxResults); err == nil {
			c.Matching.MaxResults = n
		}
	}

	if enabled := os.Getenv("SCHEDULER_ENABLED"); enabled != "" {
		c.Scheduler.Enabled = enabled == "true" || enabled == "1"
	}

	if spec := os.Getenv("SCHEDULER_REFRESH_SPEC"); spec != "" {
		c.Scheduler.RefreshSpec = spec
	}
}

// RateLimitFor returns the configured requests-per-minute budget for a
// source, falling back to a conservative default.
func (c *Config) RateLimitFor(source string) int {
	if limit, ok := c.Collector.RateLimits[source]; ok && limit > 0 {
		return limit
	}
	return 30
}
