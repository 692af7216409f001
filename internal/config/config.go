package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host           string
	Port           string
	AllowedOrigins []string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Kafka struct {
	Brokers   []string
	MailTopic string
}

type TMDB struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Auth struct {
	JWTSecret string
}

type RSVP struct {
	Secret   string
	TokenTTL time.Duration
	// Public URL the RSVP links in invitation mails point at.
	PublicBaseURL string
}

type RateLimit struct {
	DefaultLimit  int
	DefaultWindow time.Duration
	APILimit      int
	APIWindow     time.Duration
}

type Mail struct {
	From string
}

type Config struct {
	Env       string
	HTTP      HTTPServer
	Redis     RedisCache
	Postgres  Postgres
	Kafka     Kafka
	TMDB      TMDB
	Auth      Auth
	RSVP      RSVP
	RateLimit RateLimit
	Mail      Mail
}

const (
	logtag = "[config]"

	envLocal = "local"
)

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	env := getenv("ENV", envLocal)
	cfg := &Config{
		Env:       env,
		HTTP:      *newHTTP(),
		Redis:     *newRedis(),
		Postgres:  *newPostgres(),
		Kafka:     *newKafka(),
		TMDB:      *newTMDB(),
		Auth:      *newAuth(env),
		RSVP:      *newRSVP(env),
		RateLimit: *newRateLimit(),
		Mail:      *newMail(),
	}

	if err := cfg.validate(); err != nil {
		log.Fatalf("%s %v", logtag, err)
	}

	log.Printf("%s backend config loaded, env=%s", logtag, cfg.Env)
	return cfg
}

// Identity bearers and RSVP links must not be forgeable with one key.
func (c *Config) validate() error {
	if c.Auth.JWTSecret == c.RSVP.Secret {
		return errors.New("JWT_SECRET and RSVP_SECRET must differ")
	}
	return nil
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host,
		p.Port,
		p.User,
		p.Password,
		p.DBName,
		p.SSLMode,
	)
}

// URL is the form golang-migrate expects.
func (p Postgres) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port:           getenv("HTTP_PORT", "8080"),
		Host:           getenv("HTTP_HOST", "localhost"),
		AllowedOrigins: getenvList("HTTP_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getsecret("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getsecret("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "movienight"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newKafka() *Kafka {
	return &Kafka{
		Brokers:   getenvList("KAFKA_BROKERS", ""),
		MailTopic: getenv("KAFKA_MAIL_TOPIC", "mail_outbox"),
	}
}

func newTMDB() *TMDB {
	return &TMDB{
		BaseURL: getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		APIKey:  getsecret("TMDB_API_KEY", ""),
		Timeout: getenvDuration("TMDB_TIMEOUT", 5*time.Second),
	}
}

func newAuth(env string) *Auth {
	return &Auth{
		JWTSecret: mustSigningSecret(env, "JWT_SECRET", "local-jwt-secret"),
	}
}

func newRSVP(env string) *RSVP {
	return &RSVP{
		Secret:        mustSigningSecret(env, "RSVP_SECRET", "local-rsvp-secret"),
		TokenTTL:      getenvDuration("RSVP_TOKEN_TTL", 30*24*time.Hour),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:8080/api/v1"),
	}
}

func newRateLimit() *RateLimit {
	return &RateLimit{
		DefaultLimit:  getenvInt("RATE_LIMIT_DEFAULT", 100),
		DefaultWindow: getenvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Hour),
		APILimit:      getenvInt("RATE_LIMIT_API", 1000),
		APIWindow:     getenvDuration("RATE_LIMIT_API_WINDOW", time.Hour),
	}
}

func newMail() *Mail {
	return &Mail{
		From: getenv("MAIL_FROM", "no-reply@movienight.local"),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

// Same as getenv but never echoes the value.
func getsecret(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value\n", logtag, key)
		return defaultValue
	}
	fmt.Printf("%s %s is set\n", logtag, key)
	return val
}

func mustSigningSecret(env, key, localDefault string) string {
	val, err := signingSecret(os.Getenv, env, key, localDefault)
	if err != nil {
		log.Fatalf("%s %v", logtag, err)
	}
	return val
}

// signingSecret falls back to localDefault only when env is local.
func signingSecret(lookup func(string) string, env, key, localDefault string) (string, error) {
	if val := lookup(key); val != "" {
		fmt.Printf("%s %s is set\n", logtag, key)
		return val, nil
	}
	if env != envLocal {
		return "", fmt.Errorf("%s is required when ENV=%s", key, env)
	}
	fmt.Printf("%s %s undefined. Using local default value\n", logtag, key)
	return localDefault, nil
}

func getenvList(key, defaultValue string) []string {
	raw := getenv(key, defaultValue)
	out := make([]string, 0)
	for _, s := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getenvInt(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("%s %s is not an int. Using default value %d\n", logtag, key, defaultValue)
		return defaultValue
	}
	return v
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	v, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Printf("%s %s is not a duration. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return v
}
