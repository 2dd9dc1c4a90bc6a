package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Mode          string `mapstructure:"mode"`
	Port          int    `mapstructure:"port"`
	AllowedOrigin string `mapstructure:"allowed_origin"`
	Secret        string `mapstructure:"secret"`

	ReadLimit    int64         `mapstructure:"read_limit"`
	PingPeriod   time.Duration `mapstructure:"ping_period"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	SendBuffer   int           `mapstructure:"send_buffer"`

	TypingTTL    time.Duration `mapstructure:"typing_ttl"`
	MsgRateLimit int           `mapstructure:"msg_rate_limit"`
	MsgRateEvery time.Duration `mapstructure:"msg_rate_every"`

	HFAPIURL        string        `mapstructure:"hf_api_url"`
	HFAPIToken      string        `mapstructure:"hf_api_token"`
	KeywordAPIURL   string        `mapstructure:"keyword_api_url"`
	UpstreamTimeout time.Duration `mapstructure:"upstream_timeout"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)

	v.SetConfigFile(fileName)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("mode", "release")
	v.SetDefault("port", 3001)
	v.SetDefault("allowed_origin", "*")
	v.SetDefault("read_limit", 32768)
	v.SetDefault("ping_period", "54s")
	v.SetDefault("write_timeout", "5s")
	v.SetDefault("send_buffer", 32)
	v.SetDefault("typing_ttl", "0s")
	v.SetDefault("msg_rate_limit", 0)
	v.SetDefault("msg_rate_every", "10s")
	v.SetDefault("hf_api_url", "https://api-inference.huggingface.co/models/google/flan-t5-large")
	v.SetDefault("hf_api_token", "")
	v.SetDefault("secret", "")
	v.SetDefault("keyword_api_url", "http://localhost:5001/api/hf-keywords")
	v.SetDefault("upstream_timeout", "10s")

	v.SetEnvPrefix("relay")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("config file not found (%s), using defaults\n", fileName)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
