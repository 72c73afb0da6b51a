package apiserver

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Redis ...
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

//Config ...
type Config struct {
	BindAddr        string `toml:"bind_addr"`
	LogLevel        string `toml:"log_level"`
	Store           string `toml:"store"` // memory, postgres or redis
	DatabaseURL     string `toml:"database_url"`
	Redis           Redis  `toml:"Redis"`
	JwtSignKey      string `toml:"jwtsignkey"`
	NotificationURL string `toml:"notification_url"` // empty: notifications are only logged
}

// NewConfig ...
func NewConfig() *Config {
	return &Config{
		BindAddr: ":8080",
		LogLevel: "debug",
		Store:    "memory",
		Redis: Redis{
			Addr: "localhost:6379",
		},
	}
}

// Validate ...
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(
		c,
		validation.Field(&c.BindAddr, validation.Required),
		validation.Field(&c.Store, validation.In("memory", "postgres", "redis")),
		validation.Field(&c.JwtSignKey, validation.Required),
		validation.Field(&c.NotificationURL, is.URL),
	); err != nil {
		return err
	}

	if c.Store == "postgres" && c.DatabaseURL == "" {
		return errors.New("database_url is required for the postgres store")
	}

	return nil
}
