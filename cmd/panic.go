package cmd

import (
	"context"

	"github.com/coiled/coiled-examples/cli/entity"
)

func (h *Handler) Panic(ctx context.Context, panicErr string, stacktrace string, command string, args []string) error {
	return h.ctrl.SendPanic(ctx, &entity.PanicRequest{
		Command:    command,
		PanicError: panicErr,
		Stacktrace: stacktrace,
		Args:       args,
	})
}
