package config

import (
	"os"            // For environment variables
	"path/filepath" // For generated file locations
	"strconv"       // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Supported record store backends
const (
	DriverMongo  = "mongo"  // MongoDB document collection
	DriverMySQL  = "mysql"  // MySQL through GORM
	DriverMemory = "memory" // Process-local store, lost on exit
)

// Config holds the application configuration
type Config struct {
	AppPort         string // Application port
	StoreDriver     string // Record store backend
	MongoURI        string // MongoDB connection string
	MongoDB         string // MongoDB database name
	MongoCollection string // MongoDB collection name
	DBUser          string // MySQL user
	DBPassword      string // MySQL password
	DBHost          string // MySQL host
	DBPort          string // MySQL port
	DBName          string // MySQL database name
	RedisAddr       string // Redis server address, empty disables the summary cache
	RedisPass       string // Redis password
	RedisDB         int    // Redis database number
	OutputDir       string // Directory for the generated CSV
	StaticDir       string // Directory for the generated charts
	IsProd          bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:         getEnv("PORT", "5000"),                            // Application port
		StoreDriver:     getEnv("STORE_DRIVER", DriverMongo),               // Record store backend
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017/"), // MongoDB connection string
		MongoDB:         getEnv("MONGO_DB", "survey_db"),                   // MongoDB database name
		MongoCollection: getEnv("MONGO_COLLECTION", "participants"),        // MongoDB collection name
		DBUser:          os.Getenv("DB_USER"),                              // MySQL user
		DBPassword:      os.Getenv("DB_PASSWORD"),                          // MySQL password
		DBHost:          os.Getenv("DB_HOST"),                              // MySQL host
		DBPort:          os.Getenv("DB_PORT"),                              // MySQL port
		DBName:          os.Getenv("DB_NAME"),                              // MySQL database name
		RedisAddr:       os.Getenv("REDIS_ADDR"),                           // Redis server address
		RedisPass:       os.Getenv("REDIS_PASS"),                           // Redis password
		RedisDB:         redisDB,                                           // Redis database number
		OutputDir:       getEnv("OUTPUT_DIR", "."),                         // CSV directory
		StaticDir:       getEnv("STATIC_DIR", "static"),                    // Chart directory
		IsProd:          os.Getenv("IS_PROD") == "true",                    // Is production environment
	}
}

// MySQLDSN builds the Data Source Name for the MySQL backend
func (c *Config) MySQLDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// CSVPath is where the report CSV is written
func (c *Config) CSVPath() string {
	return filepath.Join(c.OutputDir, "results.csv")
}

// IncomeChartPath is where the top incomes chart is written
func (c *Config) IncomeChartPath() string {
	return filepath.Join(c.StaticDir, "income_by_age.png")
}

// GenderChartPath is where the spending by gender chart is written
func (c *Config) GenderChartPath() string {
	return filepath.Join(c.StaticDir, "gender_spending.png")
}

// getEnv returns the variable's value or fallback when unset or empty
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
