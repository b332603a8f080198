// Package config reads pochi's runtime settings from the environment,
// optionally seeded from a .env file. Settings are grouped into the three
// surfaces the application actually configures: the HTTP app, Postgres
// and Redis.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Init seeds the process environment from a .env file when one exists.
// A missing file is fine; deployed environments inject real variables.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// App is the HTTP-facing configuration.
type App struct {
	Port        string
	CORSOrigins string
	Currency    string
	Env         string
}

// Production reports whether the app runs against live traffic.
func (a App) Production() bool {
	return a.Env == "production"
}

func LoadApp() App {
	return App{
		Port:        lookup("PORT", "3000"),
		CORSOrigins: lookup("CORS_ORIGINS", "http://localhost:5173"),
		Currency:    lookup("CURRENCY", "KES"),
		Env:         lookup("ENV", "development"),
	}
}

// Database carries the Postgres connection settings.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the settings as the keyword connection string the gorm
// postgres driver expects.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

func LoadDatabase() Database {
	return Database{
		Host:     lookup("DB_HOST", "localhost"),
		Port:     lookup("DB_PORT", "5432"),
		User:     lookup("DB_USER", "postgres"),
		Password: lookup("DB_PASSWORD", "postgres"),
		Name:     lookup("DB_NAME", "pochi"),
		SSLMode:  lookup("DB_SSLMODE", "disable"),
	}
}

// Redis carries the cache connection settings.
type Redis struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func LoadRedis() Redis {
	return Redis{
		Host:     lookup("REDIS_HOST", "localhost"),
		Port:     lookup("REDIS_PORT", "6379"),
		Password: lookup("REDIS_PASSWORD", ""),
		DB:       lookupInt("REDIS_DB", 0),
	}
}

func lookup(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func lookupInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return i
}
