package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort          string
	AppMode          string
	TelegramAPIBase  string
	LoginBotToken    string
	LoginChatID      string
	RegisterBotToken string
	RegisterChatID   string
	KeepAlive        bool
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		AppMode:          getEnv("APP_MODE", "debug"),
		TelegramAPIBase:  getEnv("TELEGRAM_API_BASE", "https://api.telegram.org"),
		LoginBotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		LoginChatID:      getEnv("TELEGRAM_CHAT_ID", ""),
		RegisterBotToken: getEnv("TELEGRAM_REGISTER_BOT_TOKEN", ""),
		RegisterChatID:   getEnv("TELEGRAM_REGISTER_CHAT_ID", ""),
		KeepAlive:        getEnvAsBool("KEEPALIVE_ENABLED", true),
	}
}

// LoginNotifierConfigured reports whether the login alert pair is complete.
// Only presence is exposed, never the values.
func (c *Config) LoginNotifierConfigured() bool {
	return c.LoginBotToken != "" && c.LoginChatID != ""
}

// RegisterNotifierConfigured reports whether the registration alert pair is complete.
func (c *Config) RegisterNotifierConfigured() bool {
	return c.RegisterBotToken != "" && c.RegisterChatID != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
