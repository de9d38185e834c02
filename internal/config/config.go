package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"studentloan-backend/internal/domain/period"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppPort string

	DBDriver    string // mysql | postgres
	MySQLHost   string
	MySQLPort   string
	MySQLDB     string
	MySQLUser   string
	MySQLPass   string
	PostgresDSN string

	RedisAddr    string
	RedisDB      int
	IdempTTLSecs int
	CacheTTL     time.Duration

	JWTSecret string

	KafkaBrokers []string
	KafkaTopic   string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Region    string
	S3UseSSL    bool

	AcademicYear       string
	Term               string
	SubmissionsEnabled bool
	CatalogLabelsFile  string

	LogLevel  string
	LogFormat string
	LogFile   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("MYSQL_HOST", "mysql")
	v.SetDefault("MYSQL_PORT", "3306")
	v.SetDefault("MYSQL_DB", "studentloan")
	v.SetDefault("MYSQL_USER", "studentloan")
	v.SetDefault("MYSQL_PASS", "studentloan")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("IDEMPOTENCY_TTL_SECONDS", 300)
	v.SetDefault("PROCESS_CACHE_TTL", "1h")
	v.SetDefault("KAFKA_TOPIC", "studentloan.phase-approved")
	v.SetDefault("S3_BUCKET", "loan-documents")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_USE_SSL", false)
	v.SetDefault("SUBMISSIONS_ENABLED", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Load reads an optional .env file, then the environment. Environment
// variables win over the file.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("config: load %s: %w", f, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: stat %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return &Config{
		AppPort: v.GetString("APP_PORT"),

		DBDriver:    strings.ToLower(v.GetString("DB_DRIVER")),
		MySQLHost:   v.GetString("MYSQL_HOST"),
		MySQLPort:   v.GetString("MYSQL_PORT"),
		MySQLDB:     v.GetString("MYSQL_DB"),
		MySQLUser:   v.GetString("MYSQL_USER"),
		MySQLPass:   v.GetString("MYSQL_PASS"),
		PostgresDSN: v.GetString("POSTGRES_DSN"),

		RedisAddr:    v.GetString("REDIS_ADDR"),
		RedisDB:      v.GetInt("REDIS_DB"),
		IdempTTLSecs: v.GetInt("IDEMPOTENCY_TTL_SECONDS"),
		CacheTTL:     v.GetDuration("PROCESS_CACHE_TTL"),

		JWTSecret: v.GetString("JWT_SECRET"),

		KafkaBrokers: splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:   v.GetString("KAFKA_TOPIC"),

		S3Endpoint:  v.GetString("S3_ENDPOINT"),
		S3AccessKey: v.GetString("S3_ACCESS_KEY"),
		S3SecretKey: v.GetString("S3_SECRET_KEY"),
		S3Bucket:    v.GetString("S3_BUCKET"),
		S3Region:    v.GetString("S3_REGION"),
		S3UseSSL:    v.GetBool("S3_USE_SSL"),

		AcademicYear:       v.GetString("ACADEMIC_YEAR"),
		Term:               v.GetString("TERM"),
		SubmissionsEnabled: v.GetBool("SUBMISSIONS_ENABLED"),
		CatalogLabelsFile:  v.GetString("CATALOG_LABELS_FILE"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		LogFile:   v.GetString("LOG_FILE"),
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
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
	switch c.DBDriver {
	case "mysql":
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("missing POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.AcademicYear == "" || c.Term == "" {
		return errors.New("missing current period (ACADEMIC_YEAR/TERM)")
	}
	if c.S3Endpoint != "" && (c.S3AccessKey == "" || c.S3SecretKey == "") {
		return errors.New("S3_ENDPOINT set without S3_ACCESS_KEY/S3_SECRET_KEY")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "postgres" {
		return c.PostgresDSN
	}
	return c.MySQLDSN()
}

// Settings is the portal configuration handed to the usecases.
func (c *Config) Settings() period.Settings {
	return period.Settings{
		Current:            period.Period{AcademicYear: c.AcademicYear, Term: c.Term},
		SubmissionsEnabled: c.SubmissionsEnabled,
	}
}
