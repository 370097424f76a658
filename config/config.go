package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config lê uma variável de ambiente, carregando o .env quando existir.
func Config(key string) string {
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}
