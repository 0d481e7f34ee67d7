package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	BookingDBURI  string
	CacheHost     string
	CachePort     string
	JaegerAddress string
}

func NewConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	return &Config{
		Port:          os.Getenv("BOOKING_SERVICE_PORT"),
		BookingDBURI:  os.Getenv("MONGODB_URI"),
		CacheHost:     os.Getenv("BOOKING_CACHE_HOST"),
		CachePort:     os.Getenv("BOOKING_CACHE_PORT"),
		JaegerAddress: os.Getenv("JAEGER_ADDRESS"),
	}
}
