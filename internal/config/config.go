package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"os"
)

type Config struct {
	BotToken string
	DbPath   string
	HTTPAddr string
}

func Load() (c Config, err error) {
	// .env is optional, plain environment variables work too.
	_ = godotenv.Load()

	c = Config{
		BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		DbPath:   os.Getenv("DATABASE_URL"),
		HTTPAddr: os.Getenv("HTTP_ADDR"),
	}

	if c.BotToken == "" {
		return c, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if c.DbPath == "" {
		c.DbPath = "todo.db"
	}
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8000"
	}

	return c, nil
}
