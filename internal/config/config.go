// Package config loads and validates the runtime configuration for the
// analytics pipeline. Configuration comes from the environment (optionally a
// .env file for local runs); the recognized variables are exactly the ones
// enumerated here, nothing else.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything both binaries need: the database the entities are
// extracted from and the object-storage location results are exported to.
type Config struct {
	// DBKind selects the source adapter: "mysql" (default) or "postgres".
	DBKind     string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	// S3Bucket is the export bucket; S3Prefix namespaces the on-demand
	// handler's JSON objects inside it.
	S3Bucket string
	S3Prefix string

	// OutputPath is the batch job's base key for analytics/ and raw/
	// partitions, relative to the bucket root.
	OutputPath string

	Region string

	// MetricsBackend is "pushgateway" or "none"; PushgatewayURL is the base
	// URL metrics are pushed to at end of run.
	MetricsBackend string
	PushgatewayURL string
}

// Load reads the .env file if present and returns a Config populated from the
// environment with local-development defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using system env vars")
	}

	return &Config{
		DBKind:     getEnv("DB_KIND", "mysql"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 3306),
		DBUser:     getEnv("DB_USER", "admin"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "ecommerce"),

		S3Bucket:   getEnv("S3_BUCKET", ""),
		S3Prefix:   getEnv("S3_PREFIX", "analytics"),
		OutputPath: getEnv("S3_OUTPUT_PATH", "datalake"),

		Region: getEnv("AWS_REGION", "us-east-1"),

		MetricsBackend: getEnv("METRICS_BACKEND", "none"),
		PushgatewayURL: getEnv("PUSHGATEWAY_URL", "http://localhost:9091"),
	}
}

// MySQLDSN returns the go-sql-driver connection string. parseTime is required
// so DATE/DATETIME columns scan into time.Time.
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// PostgresDSN returns the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
