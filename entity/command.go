package entity

import (
	"context"

	"github.com/spf13/cobra"
)

type CommandRequest struct {
	Cmd  *cobra.Command
	Args []string
}

type CobraFunction func(cmd *cobra.Command, args []string) error

type HandlerFunction func(context.Context, *CommandRequest) error

type PanicFunction func(ctx context.Context, panicErr string, stacktrace string, command string, args []string) error
