package cmd

import (
	"context"
	"fmt"

	"github.com/coiled/coiled-examples/cli/constants"
	"github.com/coiled/coiled-examples/cli/entity"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Println(fmt.Sprintf("coiled version %s", constants.Version))
	if constants.Version != "source" {
		latest, err := h.ctrl.GetLatestVersion(ctx)
		if err != nil {
			return err
		}
		if latest != "" && latest != constants.Version {
			fmt.Println("A newer version of the CLI is available, please update to:", latest)
		}
	}
	return nil
}
