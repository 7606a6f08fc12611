package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/coiled/coiled-examples/cli/entity"
	CLIErrors "github.com/coiled/coiled-examples/cli/errors"
	"github.com/coiled/coiled-examples/cli/ui"
)

func (h *Handler) SoftwareCreate(ctx context.Context, req *entity.CommandRequest) error {
	flags := req.Cmd.Flags()
	container, err := flags.GetString("container")
	if err != nil {
		return err
	}
	channels, err := flags.GetStringSlice("channel")
	if err != nil {
		return err
	}
	dependencies, err := flags.GetStringSlice("dependency")
	if err != nil {
		return err
	}
	pip, err := flags.GetStringSlice("pip")
	if err != nil {
		return err
	}

	createReq := &entity.CreateSoftwareEnvironmentRequest{
		Name:      req.Args[0],
		Container: container,
		Pip:       pip,
	}
	if len(channels) > 0 || len(dependencies) > 0 {
		createReq.Conda = &entity.CondaSpec{
			Channels:     channels,
			Dependencies: dependencies,
		}
	}

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: fmt.Sprintf("Building software environment %s", createReq.Name),
	})
	env, err := h.ctrl.CreateSoftwareEnvironment(ctx, createReq)
	if err != nil {
		ui.StopSpinner("")
		return err
	}
	ui.StopSpinner(fmt.Sprintf("📦 Built software environment %s", ui.MagentaText(env.Name)))
	return nil
}

func (h *Handler) SoftwareDelete(ctx context.Context, req *entity.CommandRequest) error {
	name := req.Args[0]
	err := h.ctrl.DeleteSoftwareEnvironment(ctx, name)
	if errors.Is(err, CLIErrors.ErrNotFound) {
		fmt.Printf("🤷 No software environment named %s\n", ui.MagentaText(name))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("🧹 Removed software environment %s\n", ui.MagentaText(name))
	return nil
}

func (h *Handler) SoftwareList(ctx context.Context, req *entity.CommandRequest) error {
	envs, err := h.ctrl.ListSoftwareEnvironments(ctx)
	if err != nil {
		return err
	}
	if len(envs) == 0 {
		fmt.Println("No software environments yet. Run", ui.Bold("coiled quickstart"))
		return nil
	}

	rows := make(map[string]string, len(envs))
	for _, env := range envs {
		rows[env.Name] = fmt.Sprintf("%s %s", env.Container, ui.GrayText(env.State))
	}
	fmt.Print(ui.KeyValues(rows))
	return nil
}
