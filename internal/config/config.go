package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultAuthSecret is the development fallback for the token signing key.
// It must never be used in production; main logs a warning when it is active.
const DefaultAuthSecret = "fallback-dev-secret"

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		Path string
	}
	Auth struct {
		Secret          string
		TokenTTLMinutes int
	}
	Stocks struct {
		BaseURL string
		APIKey  string
	}
	Advisor struct {
		BaseURL string
		APIKey  string
		Model   string
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("FINANCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8000")
	v.SetDefault("database.path", "data/finance.db")
	v.SetDefault("auth.secret", DefaultAuthSecret)
	v.SetDefault("auth.tokenttlminutes", 30)
	v.SetDefault("stocks.baseurl", "https://api.twelvedata.com")
	v.SetDefault("stocks.apikey", "")
	v.SetDefault("advisor.baseurl", "https://api.openai.com/v1")
	v.SetDefault("advisor.apikey", "")
	v.SetDefault("advisor.model", "gpt-4o")

	// variable names kept from earlier deployments
	_ = v.BindEnv("auth.secret", "FINANCE_AUTH_SECRET", "SECRET1")
	_ = v.BindEnv("advisor.apikey", "FINANCE_ADVISOR_APIKEY", "OPENAI_API_KEY")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		partsIndex := strings.Index(line, "=")
		if partsIndex <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:partsIndex])
		value := strings.TrimSpace(line[partsIndex+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
