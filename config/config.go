package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig   `yaml:"logging"`
	Port        int             `yaml:"port"`
	GeminiModel string          `yaml:"gemini_model"`
	Twitter     TwitterConfig   `yaml:"twitter"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
	Article     ArticleConfig   `yaml:"article"`
	MongoDBName string          `yaml:"mongo_db_name"`

	// HTTPTimeoutSeconds bounds every outbound call (generation and publish).
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds"`

	// Secrets and endpoints come from the environment (.env in development).
	GeminiApiKey string `yaml:"-"`
	MongoURI     string `yaml:"-"`
	RedisAddr    string `yaml:"-"`
	KafkaBrokers string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// TwitterConfig holds the posting-side settings. The four signing credentials
// are environment-only; Username is used to build tweet URLs.
type TwitterConfig struct {
	Username string `yaml:"username"`
	APIBase  string `yaml:"api_base"`

	ConsumerKey       string `yaml:"-"`
	ConsumerSecret    string `yaml:"-"`
	AccessToken       string `yaml:"-"`
	AccessTokenSecret string `yaml:"-"`
}

// RateLimitConfig defines the publish quota. Backend selects the counter
// implementation: "memory" (default) or "redis".
type RateLimitConfig struct {
	MaxTweets   int    `yaml:"max_tweets"`
	WindowHours int    `yaml:"window_hours"`
	Backend     string `yaml:"backend"`
}

type ArticleConfig struct {
	// RenderJS enables headless-Chrome rendering for source URLs whose
	// content is built client-side.
	RenderJS bool `yaml:"render_js"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	c.GeminiApiKey = os.Getenv("GEMINI_API_KEY")
	c.Twitter.ConsumerKey = os.Getenv("TWITTER_API_KEY")
	c.Twitter.ConsumerSecret = os.Getenv("TWITTER_API_SECRET")
	c.Twitter.AccessToken = os.Getenv("TWITTER_ACCESS_TOKEN")
	c.Twitter.AccessTokenSecret = os.Getenv("TWITTER_ACCESS_TOKEN_SECRET")
	c.MongoURI = os.Getenv("MONGO_URI")
	c.RedisAddr = os.Getenv("REDIS_ADDR")
	c.KafkaBrokers = os.Getenv("KAFKA_BROKERS")

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if c.Port == 0 {
		c.Port = 3000
	}
	if c.RateLimit.MaxTweets == 0 {
		c.RateLimit.MaxTweets = 17
	}
	if c.RateLimit.WindowHours == 0 {
		c.RateLimit.WindowHours = 24
	}
	if c.HTTPTimeoutSeconds == 0 {
		c.HTTPTimeoutSeconds = 60
	}

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
