package controller

import (
	"context"
	"fmt"

	"github.com/coiled/coiled-examples/cli/entity"
	CLIErrors "github.com/coiled/coiled-examples/cli/errors"
	"github.com/coiled/coiled-examples/cli/ui"
)

func (c *Controller) GetUser(ctx context.Context) (*entity.User, error) {
	if _, err := c.cfg.GetUserConfigs(); err != nil {
		return nil, err
	}
	return c.gtwy.GetUser(ctx)
}

// Login checks token against the service and saves it with the user's
// default account
func (c *Controller) Login(ctx context.Context, token string, account string) (*entity.User, error) {
	user, err := c.gtwy.GetUserWithToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, CLIErrors.LoginFailed
	}
	if account == "" {
		account = user.Username
		if len(user.Accounts) > 0 {
			account = user.Accounts[0]
		}
	}
	err = c.cfg.SetUserConfigs(&entity.UserConfig{
		Token:   token,
		Account: account,
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Controller) Logout(ctx context.Context) error {
	// Logout by wiping user configs
	userCfg, err := c.cfg.GetUserConfigs()
	if err != nil || userCfg.Token == "" {
		fmt.Printf("🚪  %s\n", ui.YellowText("Already logged out"))
		return nil
	}
	err = c.cfg.SetUserConfigs(&entity.UserConfig{})
	if err != nil {
		return err
	}
	fmt.Printf("👋 %s\n", ui.YellowText("Logged out"))
	return nil
}
