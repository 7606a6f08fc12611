package controller

import (
	"fmt"
	"strings"

	"github.com/pkg/browser"

	"github.com/coiled/coiled-examples/cli/constants"
	"github.com/coiled/coiled-examples/cli/ui"
)

// DocsURL resolves a docs shortcut, filling in the account where the url needs one
func (c *Controller) DocsURL(shortcut string) (string, bool) {
	url, ok := constants.DocsURLMap[shortcut]
	if !ok {
		return "", false
	}
	if strings.Contains(url, "%s") {
		account := ""
		if user, err := c.cfg.GetUserConfigs(); err == nil {
			account = user.Account
		}
		url = fmt.Sprintf(url, account)
	}
	return url, true
}

// OpenInBrowser opens the shortcut's url, or lists the shortcuts when none is given
func (c *Controller) OpenInBrowser(args []string) error {
	if len(args) == 0 {
		fmt.Print(c.shortcutList())
		return nil
	}
	url, ok := c.DocsURL(args[0])
	if !ok {
		return fmt.Errorf("%s %s", ui.RedText("Unknown shortcut"), ui.Bold(args[0]))
	}
	return browser.OpenURL(url)
}

func (c *Controller) shortcutList() string {
	shortcuts := make(map[string]string, len(constants.DocsURLMap))
	for name := range constants.DocsURLMap {
		url, _ := c.DocsURL(name)
		shortcuts[name] = url
	}
	return ui.KeyValues(shortcuts)
}
