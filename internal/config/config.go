package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv  string
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	// "flat" or "tiered"; see internal/policy.
	MinInvestPolicy string
	// "severe" (-1.0) or "mild" (-0.5); see internal/trust.
	TrustPenalty string

	RatesBaseURL string
	RatesTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	// .env is a local-dev convenience; absent in real deployments.
	_ = godotenv.Load()

	return &Config{
		AppEnv:  getenv("APP_ENV", "dev"),
		AppPort: getenv("APP_PORT", "8080"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "peerlend"),
		MySQLUser: getenv("MYSQL_USER", "peerlend"),
		MySQLPass: getenv("MYSQL_PASS", "peerlend"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getint("REDIS_DB", 0),

		IdempTTLSecs: getint("IDEMPOTENCY_TTL_SECONDS", 300),

		MinInvestPolicy: getenv("MIN_INVEST_POLICY", "tiered"),
		TrustPenalty:    getenv("TRUST_LOW_SUCCESS_PENALTY", "severe"),

		RatesBaseURL: getenv("RATES_BASE_URL", ""),
		RatesTTLSecs: getint("RATES_TTL_SECONDS", 3600),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.MinInvestPolicy {
	case "flat", "tiered":
	default:
		return fmt.Errorf("invalid MIN_INVEST_POLICY %q", c.MinInvestPolicy)
	}
	switch c.TrustPenalty {
	case "severe", "mild":
	default:
		return fmt.Errorf("invalid TRUST_LOW_SUCCESS_PENALTY %q", c.TrustPenalty)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
