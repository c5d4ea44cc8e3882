package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	MongoURI               string
	Port                   string
	DBName                 string
	SurveysCollection      string
	CertificatesCollection string
	UsersCollection        string
	AuditCollection        string
	JWTSecret              string
	TokenTTL               time.Duration
	ReadTimeout            time.Duration
	WriteTimeout           time.Duration
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		MongoURI:               getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Port:                   getEnv("PORT", "8080"),
		DBName:                 getEnv("DB_NAME", "gacp_db"),
		SurveysCollection:      getEnv("COLLECTION_SURVEYS", "surveys"),
		CertificatesCollection: getEnv("COLLECTION_CERTIFICATES", "certificates"),
		UsersCollection:        getEnv("COLLECTION_USERS", "users"),
		AuditCollection:        getEnv("COLLECTION_AUDIT", "survey_audit"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		TokenTTL:               getEnvDuration("TOKEN_TTL", 24*time.Hour),
		ReadTimeout:            getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:           getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Accept duration strings like "30s" as well as bare seconds
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
