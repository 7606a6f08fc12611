package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/coiled/coiled-examples/cli/entity"
	"github.com/coiled/coiled-examples/cli/errors"
	"github.com/coiled/coiled-examples/cli/ui"
)

func (h *Handler) Quickstart(ctx context.Context, req *entity.CommandRequest) error {
	return h.provision(ctx, entity.Quickstart())
}

func (h *Handler) Provision(ctx context.Context, req *entity.CommandRequest) error {
	path, err := req.Cmd.Flags().GetString("file")
	if err != nil {
		return err
	}
	if path == "" {
		return errors.ManifestNotSpecified
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	manifest, err := entity.DecodeManifest(f)
	if err != nil {
		return fmt.Errorf("%s %s: %v", ui.RedText("Invalid manifest"), ui.Bold(path), err)
	}
	return h.provision(ctx, manifest)
}

func (h *Handler) provision(ctx context.Context, manifest *entity.Manifest) error {
	result, err := h.ctrl.Provision(ctx, manifest)
	if err != nil {
		return err
	}

	fmt.Printf("🎉 Job configuration %s is ready\n", ui.GreenText(result.JobConfiguration.Name))
	fmt.Print(ui.KeyValues(map[string]string{
		"software": result.Software.Name,
		"command":  joinCommand(result.JobConfiguration.Command),
		"ports":    joinPorts(result.JobConfiguration.Ports),
	}))
	fmt.Print(ui.UnorderedList(result.JobConfiguration.Files))
	return nil
}
