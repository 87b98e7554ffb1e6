package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Analysis modes. A deployment serves exactly one of them on /zodiac-analysis.
const (
	ModeBatch  = "batch"
	ModeSingle = "single"
)

// LLM providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all configuration values.
type Config struct {
	AppPort         string        `mapstructure:"APP_PORT"`
	Env             string        `mapstructure:"ENV"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	Debug           bool          `mapstructure:"DEBUG"`
	AnalysisMode    string        `mapstructure:"ANALYSIS_MODE"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	// LLM provider configuration.
	LLMProvider   string        `mapstructure:"LLM_PROVIDER"`
	OpenAIAPIKey  string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `mapstructure:"OPENAI_BASE_URL"`
	GeminiAPIKey  string        `mapstructure:"GEMINI_API_KEY"`
	FastModel     string        `mapstructure:"FAST_MODEL"`
	DeepModel     string        `mapstructure:"DEEP_MODEL"`
	LLMTimeout    time.Duration `mapstructure:"LLM_TIMEOUT"`

	// Origins allowed to call the API from a browser.
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

var AppConfig Config

// LoadConfig reads config.yaml (if present) and the environment into AppConfig.
func LoadConfig() error {
	cfg, err := load(viper.New())
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

func load(v *viper.Viper) (Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()

	// Set default values.
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEBUG", false)
	v.SetDefault("ANALYSIS_MODE", ModeBatch)
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	v.SetDefault("LLM_PROVIDER", ProviderOpenAI)
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("GEMINI_API_KEY", "")
	// Model defaults depend on the provider; see defaultModels.
	v.SetDefault("FAST_MODEL", "")
	v.SetDefault("DEEP_MODEL", "")
	v.SetDefault("LLM_TIMEOUT", 120*time.Second)
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{
		"http://localhost:5173",
		"http://192.168.0.182:5173",
		"https://tonyluong1368.github.io",
	})

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSAllowedOrigins = trimOrigins(cfg.CORSAllowedOrigins)

	fast, deep := defaultModels(cfg.LLMProvider)
	if cfg.FastModel == "" {
		cfg.FastModel = fast
	}
	if cfg.DeepModel == "" {
		cfg.DeepModel = deep
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.AnalysisMode {
	case ModeBatch, ModeSingle:
	default:
		return fmt.Errorf("invalid ANALYSIS_MODE %q (want %q or %q)", c.AnalysisMode, ModeBatch, ModeSingle)
	}

	switch c.LLMProvider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=%s", ProviderOpenAI)
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=%s", ProviderGemini)
		}
	default:
		return fmt.Errorf("invalid LLM_PROVIDER %q", c.LLMProvider)
	}

	if c.FastModel == "" || c.DeepModel == "" {
		return fmt.Errorf("FAST_MODEL and DEEP_MODEL must not be empty")
	}
	if c.LLMProvider == ProviderGemini {
		for _, m := range []string{c.FastModel, c.DeepModel} {
			if !isGeminiModel(m) {
				return fmt.Errorf("model %q is not a Gemini model id (LLM_PROVIDER=%s)", m, ProviderGemini)
			}
		}
	}

	for _, o := range c.CORSAllowedOrigins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("invalid CORS origin %q: must start with http:// or https://", o)
		}
	}
	return nil
}

// defaultModels returns the fast and deep model ids used when FAST_MODEL or
// DEEP_MODEL is unset.
func defaultModels(provider string) (fast, deep string) {
	if provider == ProviderGemini {
		return "gemini-1.5-flash", "gemini-1.5-pro"
	}
	return "gpt-3.5-turbo-1106", "gpt-4-1106-preview"
}

func isGeminiModel(model string) bool {
	return strings.HasPrefix(model, "gemini-") || strings.HasPrefix(model, "models/gemini-")
}

// trimOrigins drops blanks left over from splitting a comma list.
func trimOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
