package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	JWTSecret    string // secret used to sign JWTs
	AccessTTLMin int    // access token time‑to‑live in minutes

	StorageDriver string // persistence driver: "redis", "mysql" or "memory"

	RedisAddr     string // redis host:port (redis driver)
	RedisPassword string // optional redis password
	RedisDB       int    // redis database number

	DBUser string // database username (mysql driver)
	DBPass string // database password (optional)
	DBHost string // database host address
	DBPort string // database port number
	DBName string // database name

	RabbitURL string // AMQP broker URL for broadcast events (optional)

	AdminUser     string // username of the fixed admin account
	AdminPassHash string // optional bcrypt hash overriding the built-in admin password

	SuggestAPIURL string // chat-completions endpoint for event suggestions
	SuggestAPIKey string // bearer key for the suggestion endpoint
	SuggestModel  string // model name sent with suggestion requests
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file is honoured when present so local development does
// not require exporting variables by hand.  Only JWT_SECRET is strictly
// required; everything else falls back to a development default.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}
	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "8080"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: getenvInt("ACCESS_TOKEN_TTL_MIN", 60),

		StorageDriver: getenv("STORAGE_DRIVER", "redis"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getenvInt("REDIS_DB", 0),

		DBUser: getenv("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: getenv("DB_HOST", "localhost"),
		DBPort: getenv("DB_PORT", "3306"),
		DBName: getenv("DB_NAME", "campus_events"),

		RabbitURL: os.Getenv("RABBITMQ_URL"),

		AdminUser:     getenv("ADMIN_USER", "campusjive"),
		AdminPassHash: os.Getenv("ADMIN_PASS_HASH"),

		SuggestAPIURL: os.Getenv("SUGGEST_API_URL"),
		SuggestAPIKey: os.Getenv("SUGGEST_API_KEY"),
		SuggestModel:  getenv("SUGGEST_MODEL", "gpt-4o-mini"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of an environment variable, or the given default
// when the variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvInt is like getenv() but converts the retrieved string into an
// integer.  Invalid values fall back to the default rather than aborting.
func getenvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("invalid int for %s: %q, using %d", key, s, def)
		return def
	}
	return n
}
