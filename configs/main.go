package configs

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

const (
	productionServer  = "https://cloud.coiled.io"
	developmentServer = "http://localhost:8000"
)

type Config struct {
	viper      *viper.Viper
	configPath string
}

type Configs struct {
	rootConfigs   *Config
	CoiledToken   string
	CoiledServer  string
	CoiledRetries string
}

func IsDevMode() bool {
	environment, exists := os.LookupEnv("COILED_ENV")
	return exists && environment == "develop"
}

func (c *Configs) CreatePathIfNotExist(path string) error {
	dir := filepath.Dir(path)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, 0700)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Configs) save(config *Config) error {
	err := c.CreatePathIfNotExist(config.configPath)
	if err != nil {
		return err
	}
	return config.viper.WriteConfig()
}

// GetServer resolves the API server: environment, then config file, then defaults
func (c *Configs) GetServer() string {
	if c.CoiledServer != "" {
		return c.CoiledServer
	}
	if server := c.rootConfigs.viper.GetString("server"); server != "" {
		return server
	}
	if IsDevMode() {
		return developmentServer
	}
	return productionServer
}

func (c *Configs) SetServer(server string) error {
	c.rootConfigs.viper.Set("server", server)
	return c.save(c.rootConfigs)
}

// GetRetries is the number of times a failed request is retried. Zero unless configured.
func (c *Configs) GetRetries() int {
	if c.CoiledRetries != "" {
		if n, err := strconv.Atoi(c.CoiledRetries); err == nil && n >= 0 {
			return n
		}
	}
	if n := c.rootConfigs.viper.GetInt("retries"); n > 0 {
		return n
	}
	return 0
}

func (c *Configs) ConfigPath() string {
	return c.rootConfigs.configPath
}

func New() *Configs {
	// Root configs stored in root (~/.coiled)
	// Includes token, account and server
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return NewWithPath(filepath.Join(home, ".coiled", "config.json"))
}

func NewWithPath(rootPath string) *Configs {
	rootViper := viper.New()
	rootViper.SetConfigFile(rootPath)
	rootViper.ReadInConfig()

	return &Configs{
		rootConfigs: &Config{
			viper:      rootViper,
			configPath: rootPath,
		},
		CoiledToken:   os.Getenv("COILED_TOKEN"),
		CoiledServer:  os.Getenv("COILED_SERVER"),
		CoiledRetries: os.Getenv("COILED_RETRIES"),
	}
}
