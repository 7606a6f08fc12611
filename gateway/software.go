package gateway

import (
	"context"

	gql "github.com/machinebox/graphql"
	pkgerrors "github.com/pkg/errors"

	"github.com/coiled/coiled-examples/cli/entity"
	"github.com/coiled/coiled-examples/cli/errors"
)

// DeleteSoftwareEnvironment removes the named environment. A missing
// environment is reported as errors.ErrNotFound.
func (g *Gateway) DeleteSoftwareEnvironment(ctx context.Context, name string) error {
	gqlReq := gql.NewRequest(`
		mutation($name: String!) {
			deleteSoftwareEnvironment(name: $name)
		}
	`)
	gqlReq.Var("name", name)

	if err := g.authorize(gqlReq); err != nil {
		return err
	}

	var resp struct {
		Deleted bool `json:"deleteSoftwareEnvironment"`
	}
	if err := g.run(ctx, g.gqlClient, gqlReq, &resp); err != nil {
		if IsNotFound(err) {
			return pkgerrors.Wrap(errors.ErrNotFound, name)
		}
		return pkgerrors.Wrap(err, errors.SoftwareDeleteFailed.Error())
	}
	return nil
}

func (g *Gateway) CreateSoftwareEnvironment(ctx context.Context, req *entity.CreateSoftwareEnvironmentRequest) (*entity.SoftwareEnvironment, error) {
	gqlReq := gql.NewRequest(`
		mutation($name: String!, $container: String!, $conda: CondaSpecInput, $pip: [String!]) {
			createSoftwareEnvironment(name: $name, container: $container, conda: $conda, pip: $pip) {
				id
				name
				container
				state
				conda {
					channels
					dependencies
				}
				pip
			}
		}
	`)
	gqlReq.Var("name", req.Name)
	gqlReq.Var("container", req.Container)
	gqlReq.Var("conda", req.Conda)
	gqlReq.Var("pip", req.Pip)

	if err := g.authorize(gqlReq); err != nil {
		return nil, err
	}

	var resp struct {
		Software *entity.SoftwareEnvironment `json:"createSoftwareEnvironment"`
	}
	if err := g.run(ctx, g.gqlClient, gqlReq, &resp); err != nil {
		return nil, pkgerrors.Wrap(err, errors.SoftwareCreateFailed.Error())
	}
	if resp.Software == nil {
		return nil, pkgerrors.Wrap(errors.EmptyResponse, errors.SoftwareCreateFailed.Error())
	}
	return resp.Software, nil
}

func (g *Gateway) ListSoftwareEnvironments(ctx context.Context) ([]*entity.SoftwareEnvironment, error) {
	gqlReq := gql.NewRequest(`
		query {
			softwareEnvironments {
				id
				name
				container
				state
			}
		}
	`)

	if err := g.authorize(gqlReq); err != nil {
		return nil, err
	}

	var resp struct {
		Software []*entity.SoftwareEnvironment `json:"softwareEnvironments"`
	}
	if err := g.run(ctx, g.gqlClient, gqlReq, &resp); err != nil {
		return nil, errors.ProblemFetchingSoftware
	}
	return resp.Software, nil
}
