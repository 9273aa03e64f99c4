package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const (
	DefaultBaseURL    = "https://jessster-476efeac7498.herokuapp.com"
	DefaultCDNBaseURL = "https://res.cloudinary.com/dbm8xbouw/"
	DefaultAPIAddr    = ":8080"
)

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Gateway    GatewayConfig    `yaml:"gateway"`
	TokenStore TokenStoreConfig `yaml:"token_store"`
	API        APIConfig        `yaml:"api"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// GatewayConfig describes the single backend origin the gateway talks to.
type GatewayConfig struct {
	BaseURL    string        `yaml:"base_url"`
	CDNBaseURL string        `yaml:"cdn_base_url"`
	Timeout    time.Duration `yaml:"timeout"`

	// StrictRegistration treats a non-201 registration reply as a failure.
	// The backend has historically been answered leniently, so it is off by default.
	StrictRegistration bool `yaml:"strict_registration"`
}

// TokenStoreConfig selects where the auth token and authenticated flag are persisted.
type TokenStoreConfig struct {
	// Backend is one of memory, file, mongo, redis. Empty means memory.
	Backend string `yaml:"backend"`

	FilePath string `yaml:"file_path"`

	MongoURI    string `yaml:"mongo_uri"`
	MongoDBName string `yaml:"mongo_db_name"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	KeyPrefix     string `yaml:"key_prefix"`
}

type APIConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

var config *AppConfig

// Load reads .env and config.yaml from the discovered base path and applies
// environment overrides. A missing config.yaml is not an error; defaults apply.
func Load() (*AppConfig, error) {
	base := GetBasePath()
	_ = godotenv.Load(filepath.Join(base, ENV_FILE))

	var c AppConfig
	data, err := os.ReadFile(filepath.Join(base, CONFIG_FILE))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	applyEnv(&c)
	applyDefaults(&c)
	return &c, nil
}

func InitApp() {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	config = c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyEnv(c *AppConfig) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("JESSSTER_BASE_URL"); v != "" {
		c.Gateway.BaseURL = v
	}
	if v := os.Getenv("JESSSTER_CDN_URL"); v != "" {
		c.Gateway.CDNBaseURL = v
	}
	if v := os.Getenv("JESSSTER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Gateway.Timeout = d
		}
	}
	if v := os.Getenv("JESSSTER_STRICT_REGISTRATION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Gateway.StrictRegistration = b
		}
	}
	if v := os.Getenv("TOKEN_STORE"); v != "" {
		c.TokenStore.Backend = v
	}
	if v := os.Getenv("TOKEN_STORE_FILE"); v != "" {
		c.TokenStore.FilePath = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.TokenStore.MongoURI = v
	}
	if v := os.Getenv("MONGO_DB_NAME"); v != "" {
		c.TokenStore.MongoDBName = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.TokenStore.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.TokenStore.RedisPassword = v
	}
	if v := os.Getenv("API_ADDR"); v != "" {
		c.API.Addr = v
	}
	if v := os.Getenv("API_ALLOWED_ORIGINS"); v != "" {
		c.API.AllowedOrigins = strings.Split(v, ",")
	}
}

func applyDefaults(c *AppConfig) {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Gateway.BaseURL == "" {
		c.Gateway.BaseURL = DefaultBaseURL
	}
	if c.Gateway.CDNBaseURL == "" {
		c.Gateway.CDNBaseURL = DefaultCDNBaseURL
	}
	if c.TokenStore.Backend == "" {
		c.TokenStore.Backend = "memory"
	}
	if c.TokenStore.MongoDBName == "" {
		c.TokenStore.MongoDBName = "jessster"
	}
	if c.TokenStore.KeyPrefix == "" {
		c.TokenStore.KeyPrefix = "jessster:"
	}
	if c.API.Addr == "" {
		c.API.Addr = DefaultAPIAddr
	}
	if len(c.API.AllowedOrigins) == 0 {
		c.API.AllowedOrigins = []string{"*"}
	}
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
