package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	DBPath        string
	SessionSecret string
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from the environment, after loading a local .env
// file if one exists. An empty SESSION_SECRET gets a random one, which means
// existing session cookies stop validating after a restart. An empty
// ADMIN_PASSWORD is left empty; the auth service generates one when it
// actually seeds the admin.
func Load() *Config {
	_ = godotenv.Load()

	secret := getEnv("SESSION_SECRET", "")
	if secret == "" {
		secret = randomSecret()
	}

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "data/eduprep.db"),
		SessionSecret: secret,
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
