package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// loadDotEnv copies variables from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("ignoring %s: %v", path, err)
	}
}

// parseEnv overlays Config with environment variables.
//
// Recognised variables:
//
//	PORT                     HTTP port; becomes ":<PORT>"
//	HTTP_ADDR                full HTTP bind address (wins over PORT)
//	GRPC_ADDR                gRPC health endpoint address
//	DATABASE_DSN             PostgreSQL DSN
//	SECRET_KEY               token signing secret
//	TOKEN_TTL                token validity, Go duration ("24h")
//	LOG_LEVEL                debug, info, warn, error
//	ENFORCE_PARENT_EXISTS    bool
//	CASCADE_DELETE_CHILDREN  bool
//	AUTH_RATE_LIMIT          int, requests per minute
//	REDIS_ADDR               Redis address for the rate limiter
//	REDIS_PASSWORD           Redis password
//	REDIS_DB                 Redis database number
func parseEnv(cfg *Config) {
	if port, ok := lookup("PORT"); ok {
		cfg.EndpointAddrHTTP = ":" + strings.TrimPrefix(port, ":")
	}
	getString("HTTP_ADDR", &cfg.EndpointAddrHTTP)
	getString("GRPC_ADDR", &cfg.EndpointAddrGRPC)
	getString("DATABASE_DSN", &cfg.DatabaseDSN)
	getString("SECRET_KEY", &cfg.SecretKey)
	getString("LOG_LEVEL", &cfg.LogLevel)
	getString("REDIS_ADDR", &cfg.RateLimitRedisAddr)
	getString("REDIS_PASSWORD", &cfg.RateLimitRedisPassword)

	if v, ok := lookup("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.AccessTokenValidityDuration = d
		} else {
			log.Printf("invalid value for TOKEN_TTL: %v", err)
		}
	}

	getBool("ENFORCE_PARENT_EXISTS", &cfg.EnforceParentExists)
	getBool("CASCADE_DELETE_CHILDREN", &cfg.CascadeDeleteChildren)
	getInt("AUTH_RATE_LIMIT", &cfg.AuthRateLimit)
	getInt("REDIS_DB", &cfg.RateLimitRedisDB)
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func getString(key string, dst *string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

func getBool(key string, dst *bool) {
	v, ok := lookup(key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid value for %s: %v", key, err)
		return
	}
	*dst = parsed
}

func getInt(key string, dst *int) {
	v, ok := lookup(key)
	if !ok {
		return
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid value for %s: %v", key, err)
		return
	}
	*dst = parsed
}
