package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuracion del servicio.
type Config struct {
	HTTPPort                string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL             string `env:"DATABASE_URL,required,notEmpty"`
	DBMaxConns              int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	JWTSecret               string `env:"JWT_SECRET"`
	RedisAddr               string `env:"REDIS_ADDR"`
	RedisPassword           string `env:"REDIS_PASSWORD"`
	RedisDB                 int    `env:"REDIS_DB" envDefault:"0"`
	AnalysisCacheTTLMinutes int    `env:"ANALYSIS_CACHE_TTL_MINUTES" envDefault:"60"`
	AnalyzeRatePerMinute    int    `env:"ANALYZE_RATE_PER_MINUTE" envDefault:"30"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
