package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	AppPort     string
	LogLevel    string
	CORSOrigins []string

	// demo user directory store
	UserStoreDriver string
	SQLiteDSN       string
	MySQLHost       string
	MySQLPort       string
	MySQLDB         string
	MySQLUser       string
	MySQLPass       string

	// empty RedisAddr disables request replay
	RedisAddr    string
	RedisDB      int
	IdempTTLSecs int

	// 0 → random seed per process
	RandSeed int64
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// Load reads the environment, after merging a .env file if one exists.
func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		UserStoreDriver: strings.ToLower(getenv("USER_STORE_DRIVER", DriverSQLite)),
		SQLiteDSN:       getenv("SQLITE_DSN", "file:demo_users?mode=memory&cache=shared"),
		MySQLHost:       getenv("MYSQL_HOST", "mysql"),
		MySQLPort:       getenv("MYSQL_PORT", "3306"),
		MySQLDB:         getenv("MYSQL_DB", "cibil_demo"),
		MySQLUser:       getenv("MYSQL_USER", "cibil"),
		MySQLPass:       getenv("MYSQL_PASS", "cibil"),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		IdempTTLSecs: 300,
	}
	c.CORSOrigins = splitList(getenv("CORS_ORIGINS", "*"))
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	if v := os.Getenv("RAND_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.RandSeed = n
		}
	}
	return c
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", c.AppPort, err)
	}
	switch c.UserStoreDriver {
	case DriverSQLite:
		if c.SQLiteDSN == "" {
			return errors.New("missing SQLITE_DSN")
		}
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	default:
		return fmt.Errorf("unsupported USER_STORE_DRIVER %q", c.UserStoreDriver)
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("invalid IDEMPOTENCY_TTL_SECONDS %d", c.IdempTTLSecs)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

func (c *Config) ReplayEnabled() bool { return c.RedisAddr != "" }
