package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	LLM        LLMConfig
	Generation GenerationConfig
	Extraction ExtractionConfig
	Logging    LoggingConfig
}

type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	MaxTokens   int
	TimeoutSec  int
}

type GenerationConfig struct {
	MaxQuestions      int
	DefaultDifficulty string
	MinTextLength     int
	MinConceptLength  int
}

type ExtractionConfig struct {
	MaxFileSizeBytes int64
	FetchTimeoutSec  int
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

// Load reads configuration from cfgFile when given, otherwise from the
// default search paths. Environment variables with the QUIZFORGE prefix
// override file values; a missing config file is fine, defaults apply.
func Load(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("/etc/quizforge")
	}

	viper.SetEnvPrefix("QUIZFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-3.5-turbo")
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.maxTokens", 500)
	viper.SetDefault("llm.timeoutSec", 30)

	viper.SetDefault("generation.maxQuestions", 50)
	viper.SetDefault("generation.defaultDifficulty", "medium")
	viper.SetDefault("generation.minTextLength", 100)
	viper.SetDefault("generation.minConceptLength", 50)

	viper.SetDefault("extraction.maxFileSizeBytes", 10485760)
	viper.SetDefault("extraction.fetchTimeoutSec", 10)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputPath", "stderr")
}
