package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/filekeeper/internal/flagx"
	"github.com/dmitrijs2005/filekeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Pointer and
// zero-valued fields that are absent from the file leave Config untouched.
// Durations accept both "24h" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP            string          `json:"endpoint_addr_http"`
	EndpointAddrGRPC            string          `json:"endpoint_addr_grpc"`
	DatabaseDSN                 string          `json:"database_dsn"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	LogLevel                    string          `json:"log_level"`
	EnforceParentExists         *bool           `json:"enforce_parent_exists"`
	CascadeDeleteChildren       *bool           `json:"cascade_delete_children"`
	AuthRateLimit               *int            `json:"auth_rate_limit"`
	RateLimitRedisAddr          string          `json:"rate_limit_redis_addr"`
	RateLimitRedisPassword      string          `json:"rate_limit_redis_password"`
	RateLimitRedisDB            *int            `json:"rate_limit_redis_db"`
}

// parseJson loads the file named by -c/-config, if any, and copies the
// fields it sets into config. It panics when the file cannot be read or
// parsed, since the server cannot start from a broken config.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.RateLimitRedisAddr, c.RateLimitRedisAddr)
	setString(&config.RateLimitRedisPassword, c.RateLimitRedisPassword)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.EnforceParentExists != nil {
		config.EnforceParentExists = *c.EnforceParentExists
	}
	if c.CascadeDeleteChildren != nil {
		config.CascadeDeleteChildren = *c.CascadeDeleteChildren
	}
	if c.AuthRateLimit != nil {
		config.AuthRateLimit = *c.AuthRateLimit
	}
	if c.RateLimitRedisDB != nil {
		config.RateLimitRedisDB = *c.RateLimitRedisDB
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
