package config

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/pem"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osbbhub/complex-service/internal/utils"
)

const AppName = "complex-service"

type Config struct {
	AppName string
	AppPort string

	DBUrl          string
	MigrationsPath string

	RSAPrivateKey *rsa.PrivateKey
	RSAPublicKey  *rsa.PublicKey

	TokenExpiry      time.Duration
	VisitorRetention time.Duration
}

// LoadConfig pulls everything from environment variables and fails fast
// on anything missing or unparsable.
func LoadConfig() *Config {
	cfg := &Config{
		AppName:        AppName,
		AppPort:        requireEnv("APP_PORT"),
		DBUrl:          requireEnv("DB_URL"),
		MigrationsPath: envOrDefault("MIGRATIONS_PATH", "file://migrations"),
	}

	cfg.RSAPrivateKey = loadPrivateKey(requireEnv("RSA_PRIVATE_KEY_BASE64"))
	cfg.RSAPublicKey = loadPublicKey(requireEnv("RSA_PUBLIC_KEY_BASE64"))

	cfg.TokenExpiry = time.Duration(envIntOrDefault("TOKEN_EXPIRY_MINUTES", 60)) * time.Minute
	cfg.VisitorRetention = time.Duration(envIntOrDefault("VISITOR_RETENTION_DAYS", 90)) * 24 * time.Hour

	utils.Logger.Info("Loaded config for app: ", cfg.AppName)
	return cfg
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Logger.Fatalf("%s env var is missing", key)
	}
	return v
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		utils.Logger.WithError(err).Fatalf("%s must be an integer", key)
	}
	return n
}

func loadPrivateKey(b64 string) *rsa.PrivateKey {
	keyPEM, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to decode base64 private key")
	}
	block, _ := pem.Decode(keyPEM)
	if block == nil {
		utils.Logger.Fatal("Failed to decode PEM block for private key")
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(keyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA private key")
	}
	return key
}

func loadPublicKey(b64 string) *rsa.PublicKey {
	keyPEM, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to decode base64 public key")
	}
	block, _ := pem.Decode(keyPEM)
	if block == nil {
		utils.Logger.Fatal("Failed to decode PEM block for public key")
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM(keyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}
	return key
}
