package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds bearer token and password hashing configuration.
type AuthConfig struct {
	// JWTSecret is the HMAC key used to sign bearer tokens.
	JWTSecret string
	// TokenTTL is how long an issued token stays valid.
	TokenTTL time.Duration
	// Issuer is written to the iss claim.
	Issuer string
	// BcryptCost is the work factor for password hashes.
	BcryptCost int
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret:  GetEnv("JWT_SECRET", ""),
		TokenTTL:   GetEnvDuration("JWT_TTL", 30*24*time.Hour),
		Issuer:     GetEnv("JWT_ISSUER", "leaderboard"),
		BcryptCost: GetEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TokenTTL must be greater than 0")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BcryptCost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
