package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	SERVER_PORT  string
	SERVICE_NAME string
	LOG_LEVEL    string
	OTEL_URL     string
	WORKER_POOL  string

	DB_URI                   string
	DB_NAME                  string
	DB_MAXPOOLSIZE           uint64
	DB_MINPOOLSIZE           uint64
	DB_MAXIDLETIME_INMINUTES int
	PROBE_TIMEOUT_IN_SECONDS int

	LOCAL_DB_PATH string

	DEFAULT_BASE_RATE float64
	ADMIN_PASSWORD    string

	ETH_RPC_ENDPOINTS      []string
	RPC_TIMEOUT_IN_SECONDS int

	EMAIL_ENABLED     bool
	EMAIL_API_URL     string
	EMAIL_SERVICE_ID  string
	EMAIL_TEMPLATE_ID string
	EMAIL_PUBLIC_KEY  string
	OPS_NOTIFY_EMAIL  string

	REDIS_ADDR                    string
	REDIS_PASSWORD                string
	REDIS_DB                      int
	REDIS_ENABLE_TLS              bool
	REDIS_CONNECT_TIMEOUT_SECONDS int
	REDIS_CERT_CONTENT            string
	LOAN_CACHE_ENABLED            bool
	LOAN_CACHE_TTL_IN_SECONDS     int
)

type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	EnableTLS      bool          `yaml:"enable_tls"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
	CertContent    string        `yaml:"cert_content"`
}

// LoadEnv loads the environment variables from a .env file
func LoadEnv() error {
	err := godotenv.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	LoadEnvValues()

	return nil
}

func LoadEnvValues() {
	SERVER_PORT = GetEnv("SERVER_PORT", "8080")
	SERVICE_NAME = GetEnv("SERVICE_NAME", "etherlend")
	LOG_LEVEL = GetEnv("LOG_LEVEL", "INFO")
	OTEL_URL = GetEnv("OTEL_URL", "")
	WORKER_POOL = GetEnv("WORKER_POOL", "5")

	DB_URI = GetEnv("DB_URI", "mongodb://localhost:27017")
	DB_NAME = GetEnv("DB_NAME", "etherlend")
	DB_MAXPOOLSIZE, _ = strconv.ParseUint(GetEnv("DB_MAXPOOLSIZE", "100"), 10, 64)
	DB_MINPOOLSIZE, _ = strconv.ParseUint(GetEnv("DB_MINPOOLSIZE", "10"), 10, 64)
	DB_MAXIDLETIME_INMINUTES, _ = strconv.Atoi(GetEnv("DB_MAXIDLETIME_INMINUTES", "5"))
	PROBE_TIMEOUT_IN_SECONDS, _ = strconv.Atoi(GetEnv("PROBE_TIMEOUT_IN_SECONDS", "6"))

	LOCAL_DB_PATH = GetEnv("LOCAL_DB_PATH", "./data/etherlend-local")

	DEFAULT_BASE_RATE, _ = strconv.ParseFloat(GetEnv("DEFAULT_BASE_RATE", "7.50"), 64)
	ADMIN_PASSWORD = GetEnv("ADMIN_PASSWORD", "")

	endpoints := GetEnv("ETH_RPC_ENDPOINTS", "https://eth.llamarpc.com,https://rpc.ankr.com/eth,https://cloudflare-eth.com")
	ETH_RPC_ENDPOINTS = strings.Split(endpoints, ",")
	RPC_TIMEOUT_IN_SECONDS, _ = strconv.Atoi(GetEnv("RPC_TIMEOUT_IN_SECONDS", "10"))

	EMAIL_ENABLED, _ = strconv.ParseBool(GetEnv("EMAIL_ENABLED", "false"))
	EMAIL_API_URL = GetEnv("EMAIL_API_URL", "https://api.emailjs.com/api/v1.0/email/send")
	EMAIL_SERVICE_ID = GetEnv("EMAIL_SERVICE_ID", "")
	EMAIL_TEMPLATE_ID = GetEnv("EMAIL_TEMPLATE_ID", "")
	EMAIL_PUBLIC_KEY = GetEnv("EMAIL_PUBLIC_KEY", "")
	OPS_NOTIFY_EMAIL = GetEnv("OPS_NOTIFY_EMAIL", "")

	REDIS_ADDR = GetEnv("REDIS_ADDR", "localhost:6379")
	REDIS_PASSWORD = GetEnv("REDIS_PASSWORD", "")
	REDIS_DB, _ = strconv.Atoi(GetEnv("REDIS_DB", "0"))
	REDIS_ENABLE_TLS, _ = strconv.ParseBool(GetEnv("REDIS_ENABLE_TLS", "false"))
	REDIS_CONNECT_TIMEOUT_SECONDS, _ = strconv.Atoi(GetEnv("REDIS_CONNECT_TIMEOUT_SECONDS", "5"))
	REDIS_CERT_CONTENT = GetEnv("REDIS_CERT_CONTENT", "")
	LOAN_CACHE_ENABLED, _ = strconv.ParseBool(GetEnv("LOAN_CACHE_ENABLED", "false"))
	LOAN_CACHE_TTL_IN_SECONDS, _ = strconv.Atoi(GetEnv("LOAN_CACHE_TTL_IN_SECONDS", "30"))
}

// GetRedisConfig returns a RedisConfig struct populated from environment variables
func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:           REDIS_ADDR,
		Password:       REDIS_PASSWORD,
		DB:             REDIS_DB,
		EnableTLS:      REDIS_ENABLE_TLS,
		ConnectTimeout: time.Duration(REDIS_CONNECT_TIMEOUT_SECONDS) * time.Second,
		CertContent:    REDIS_CERT_CONTENT,
	}
}

// GetEnv fetches the value of an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}
