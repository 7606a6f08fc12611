package gateway

import (
	"context"

	gql "github.com/machinebox/graphql"

	"github.com/coiled/coiled-examples/cli/entity"
	"github.com/coiled/coiled-examples/cli/errors"
)

const meQuery = `
	query {
		me {
			username
			email
			accounts
		}
	}
`

func (g *Gateway) GetUser(ctx context.Context) (*entity.User, error) {
	gqlReq := gql.NewRequest(meQuery)
	if err := g.authorize(gqlReq); err != nil {
		return nil, err
	}
	return g.me(ctx, gqlReq)
}

// GetUserWithToken checks a token before it is saved
func (g *Gateway) GetUserWithToken(ctx context.Context, token string) (*entity.User, error) {
	gqlReq := gql.NewRequest(meQuery)
	g.authorizeWithToken(gqlReq, token)
	user, err := g.me(ctx, gqlReq)
	if err != nil {
		return nil, errors.LoginFailed
	}
	return user, nil
}

func (g *Gateway) me(ctx context.Context, gqlReq *gql.Request) (*entity.User, error) {
	var resp struct {
		User *entity.User `json:"me"`
	}
	if err := g.run(ctx, g.gqlClient, gqlReq, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, errors.LoginFailed
	}
	return resp.User, nil
}
