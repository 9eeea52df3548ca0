package app

import "os"

type Config struct {
	Env         string
	Port        string
	DBURI       string
	TokenSecret string
	StripeKey   string
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func LoadConfig() Config {
	return Config{
		Env:         getEnv("APP_ENV", "dev"),
		Port:        getEnv("PORT", "5000"),
		DBURI:       getEnv("DB_URI", "mongodb://localhost:27017"),
		TokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeKey:   os.Getenv("STRIPE_ST"),
	}
}
