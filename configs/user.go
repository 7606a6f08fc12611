package configs

import (
	"github.com/coiled/coiled-examples/cli/entity"
	"github.com/coiled/coiled-examples/cli/errors"
)

// GetUserConfigs returns the stored credentials. COILED_TOKEN wins over the file.
func (c *Configs) GetUserConfigs() (*entity.UserConfig, error) {
	cfg := &entity.UserConfig{
		Token:   c.rootConfigs.viper.GetString("user.token"),
		Account: c.rootConfigs.viper.GetString("user.account"),
	}
	if c.CoiledToken != "" {
		cfg.Token = c.CoiledToken
	}
	if cfg.Token == "" {
		return nil, errors.UserConfigNotFound
	}
	return cfg, nil
}

func (c *Configs) SetUserConfigs(cfg *entity.UserConfig) error {
	c.rootConfigs.viper.Set("user.token", cfg.Token)
	c.rootConfigs.viper.Set("user.account", cfg.Account)
	return c.save(c.rootConfigs)
}

func (c *Configs) GetRootConfigs() *entity.RootConfig {
	v := c.rootConfigs.viper
	return &entity.RootConfig{
		User: entity.UserConfig{
			Token:   v.GetString("user.token"),
			Account: v.GetString("user.account"),
		},
		Server:  c.GetServer(),
		Retries: c.GetRetries(),
	}
}
