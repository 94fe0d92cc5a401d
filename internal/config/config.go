// Load envs from .env
// Load YAML config
// Override secrets from env
// Provide default values

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

// Platform holds everything a platform client needs to build its requests.
type Platform struct {
	Title          string            `yaml:"title"`
	BaseURL        string            `yaml:"base_url"`
	Credential     string            `yaml:"credential" env:"SECRET_KEY_SUPERJOB_API"`
	UserAgent      string            `yaml:"user_agent"`
	Filters        map[string]string `yaml:"filters"`
	SearchTemplate string            `yaml:"search_template"`
	TargetCurrency string            `yaml:"target_currency"`
	PageSize       int               `yaml:"page_size"`
}

type Config struct {
	Languages []string `yaml:"languages"`
	//Platforms
	HeadHunter Platform `yaml:"headhunter"`
	SuperJob   Platform `yaml:"superjob"`
	//Output
	ResultsDir string        `yaml:"results_dir"`
	Locale     string        `yaml:"locale"`
	Timeout    time.Duration `yaml:"timeout"`
	//Optional telegram delivery
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

// Load reads the configuration and stops the process if it is unusable.
func Load() *Config {
	_ = godotenv.Load()

	path := os.Getenv("VACANCY_STATS_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := LoadFile(path)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	return cfg
}

// LoadFile builds a Config from the YAML file at path (a missing file is not
// an error), the process environment and the built-in defaults.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not read %s: %w", path, err)
		}
		log.Printf("ℹ️ No config file at %s, using defaults", path)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	//Override with env vars
	if key := os.Getenv("SECRET_KEY_SUPERJOB_API"); key != "" {
		cfg.SuperJob.Credential = key
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	applyDefaults(cfg)

	// The SuperJob key is deliberately not checked here: a missing key
	// surfaces as an authentication failure from the API itself.
	return cfg, nil
}

// TelegramEnabled reports whether both telegram settings are present.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func applyDefaults(cfg *Config) {
	if len(cfg.Languages) == 0 {
		cfg.Languages = []string{"Python", "C", "C++", "Java", "JavaScript", "PHP", "C#", "Swift", "Scala", "Go"}
	}

	hh := &cfg.HeadHunter
	setDefault(&hh.Title, "HeadHunter Moscow")
	setDefault(&hh.BaseURL, "https://api.hh.ru/vacancies")
	setDefault(&hh.UserAgent, "HH-User-Agent")
	setDefault(&hh.SearchTemplate, "Программист %s")
	setDefault(&hh.TargetCurrency, "RUR")
	if hh.Filters == nil {
		hh.Filters = map[string]string{"period": "30", "area": "1"}
	}

	sj := &cfg.SuperJob
	setDefault(&sj.Title, "SuperJob Moscow")
	setDefault(&sj.BaseURL, "https://api.superjob.ru/2.0/vacancies/")
	setDefault(&sj.SearchTemplate, "%s")
	setDefault(&sj.TargetCurrency, "rub")
	if sj.Filters == nil {
		sj.Filters = map[string]string{"town": "4", "catalogues": "48"}
	}
	if sj.PageSize <= 0 {
		sj.PageSize = 100
	}

	setDefault(&cfg.ResultsDir, "logs")
	setDefault(&cfg.Locale, "en")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Minute
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
