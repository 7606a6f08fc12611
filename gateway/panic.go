package gateway

import (
	"context"

	gql "github.com/machinebox/graphql"

	"github.com/coiled/coiled-examples/cli/entity"
	"github.com/coiled/coiled-examples/cli/errors"
)

func (g *Gateway) SendPanic(ctx context.Context, req *entity.PanicRequest) (bool, error) {
	gqlReq := gql.NewRequest(`
		mutation($command: String!, $args: [String!], $panicErr: String!, $stacktrace: String) {
			sendTelemetry(command: $command, args: $args, panicErr: $panicErr, stacktrace: $stacktrace)
		}
	`)
	// panics are reported without credentials when not logged in
	if err := g.authorize(gqlReq); err != nil {
		gqlReq.Header.Set("x-source", CLI_SOURCE_HEADER)
	}

	gqlReq.Var("command", req.Command)
	gqlReq.Var("args", req.Args)
	gqlReq.Var("panicErr", req.PanicError)
	gqlReq.Var("stacktrace", req.Stacktrace)

	var resp struct {
		Status bool `json:"sendTelemetry"`
	}
	if err := g.run(ctx, g.gqlClient, gqlReq, &resp); err != nil {
		return false, errors.TelemetryFailed
	}
	return resp.Status, nil
}
