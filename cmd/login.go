package cmd

import (
	"context"
	"fmt"

	"github.com/coiled/coiled-examples/cli/controller"
	"github.com/coiled/coiled-examples/cli/entity"
	"github.com/coiled/coiled-examples/cli/ui"
)

func (h *Handler) Login(ctx context.Context, req *entity.CommandRequest) error {
	token, err := req.Cmd.Flags().GetString("token")
	if err != nil {
		return err
	}
	account, err := req.Cmd.Flags().GetString("account")
	if err != nil {
		return err
	}
	server, err := req.Cmd.Flags().GetString("server")
	if err != nil {
		return err
	}
	if server != "" {
		if err := h.cfg.SetServer(server); err != nil {
			return err
		}
		// The gateway endpoint is fixed at construction
		h.ctrl = controller.New(h.cfg, h.logger)
	}
	if token == "" {
		token, err = ui.PromptToken()
		if err != nil {
			return err
		}
	}

	user, err := h.ctrl.Login(ctx, token, account)
	if err != nil {
		return err
	}

	fmt.Printf("\n🎉 Logged in as %s (%s)\n", ui.Bold(user.Username), user.Email)
	return nil
}

func (h *Handler) Logout(ctx context.Context, req *entity.CommandRequest) error {
	return h.ctrl.Logout(ctx)
}

func (h *Handler) Whoami(ctx context.Context, req *entity.CommandRequest) error {
	user, err := h.ctrl.GetUser(ctx)
	if err != nil {
		return err
	}

	userText := user.Username
	if user.Email != "" {
		userText = fmt.Sprintf("%s (%s)", user.Username, user.Email)
	}
	fmt.Println(fmt.Sprintf("👋 Hey, %s", ui.MagentaText(userText)))

	root := h.cfg.GetRootConfigs()
	details := map[string]string{
		"server": root.Server,
		"config": h.cfg.ConfigPath(),
	}
	if root.User.Account != "" {
		details["account"] = root.User.Account
	}
	if root.Retries > 0 {
		details["retries"] = fmt.Sprint(root.Retries)
	}
	fmt.Print(ui.KeyValues(details))
	return nil
}
