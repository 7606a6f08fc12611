package cmd

import (
	"context"

	"github.com/coiled/coiled-examples/cli/entity"
)

func (h *Handler) Docs(ctx context.Context, req *entity.CommandRequest) error {
	return h.ctrl.OpenInBrowser(req.Args)
}
