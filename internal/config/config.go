package config

import (
	"fmt"
	"os"
	"strconv"
)

// 支持的数据库驱动
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config 应用配置
type Config struct {
	Env         string
	Port        string
	DBDriver    string
	DatabaseURL string
	PageSize    int
	SeedFile    string
	LogLevel    string
	LogFormat   string
}

// Load 加载配置
func Load() (*Config, error) {
	driver := getEnv("DB_DRIVER", DriverSQLite)

	var dbURL string
	switch driver {
	case DriverSQLite:
		dbURL = getEnv("SQLITE_PATH", "movies.db")
	case DriverPostgres:
		dbUser := getEnv("DB_USER", "postgres")
		dbPass := getEnv("DB_PASSWORD", "postgres")
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbName := getEnv("DB_NAME", "movies")
		dbSSL := getEnv("DB_SSLMODE", "disable")

		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %q", driver)
	}

	// DATABASE_URL 优先于拼接出的连接串
	dbURL = getEnv("DATABASE_URL", dbURL)

	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "4567"),
		DBDriver:    driver,
		DatabaseURL: dbURL,
		PageSize:    getEnvInt("PAGE_SIZE", 2),
		SeedFile:    getEnv("SEED_FILE", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "console"),
	}, nil
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt 读取正整数，非法值回退默认值
func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
