package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// sqlite (padrão, arquivo local único) ou postgres
	DBDriver string
	DBUrl    string

	JWTSecret  string
	ServerPort string

	// Zona do salão; datas e lembretes são calculados nela
	Timezone string
}

func Load() *Config {
	// .env é opcional; variáveis já exportadas têm precedência
	_ = godotenv.Load()

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBUrl:      getEnv("DATABASE_URL", "salon.db"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Timezone:   getEnv("SALON_TZ", "America/Sao_Paulo"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
