package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	InviteSecret   string `env:"INVITE_SECRET"`
	InviteTTLHours int    `env:"INVITE_TTL_HOURS" envDefault:"168"`

	TieBreakPolicy string `env:"TIE_BREAK_POLICY" envDefault:"priority"`
	MatchTiers     string `env:"MATCH_TIERS" envDefault:"90:excellent,80:strong,70:good,60:moderate"`
	MatchTierFloor string `env:"MATCH_TIER_FLOOR" envDefault:"needs work"`

	SubmitRateWindowSeconds int `env:"SUBMIT_RATE_WINDOW_SECONDS" envDefault:"60"`
	SubmitRateMax           int `env:"SUBMIT_RATE_MAX" envDefault:"20"`

	LLMAPIKey  string `env:"LLM_API_KEY"`
	LLMBaseURL string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel   string `env:"LLM_MODEL" envDefault:"gpt-5.1"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InviteTTL devuelve la vigencia de los tokens de invitación.
func (c *Config) InviteTTL() time.Duration {
	if c.InviteTTLHours <= 0 {
		return 168 * time.Hour
	}
	return time.Duration(c.InviteTTLHours) * time.Hour
}

// SubmitRateWindow devuelve la ventana del limitador de envíos.
func (c *Config) SubmitRateWindow() time.Duration {
	if c.SubmitRateWindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.SubmitRateWindowSeconds) * time.Second
}
