package gateway

import (
	"context"

	gql "github.com/machinebox/graphql"
	pkgerrors "github.com/pkg/errors"

	"github.com/coiled/coiled-examples/cli/entity"
	"github.com/coiled/coiled-examples/cli/errors"
)

// CreateJobConfiguration registers the job configuration and uploads its
// files in the same multipart request, one "files" part per file.
func (g *Gateway) CreateJobConfiguration(ctx context.Context, req *entity.CreateJobConfigurationRequest, uploads []entity.UploadFile) (*entity.JobConfiguration, error) {
	gqlReq := gql.NewRequest(`
		mutation($name: String!, $software: String!, $command: [String!]!, $files: [String!], $ports: [Int!], $description: String, $cpu: Int, $memory: String) {
			createJobConfiguration(name: $name, software: $software, command: $command, files: $files, ports: $ports, description: $description, cpu: $cpu, memory: $memory) {
				id
				name
				software
				command
				files
				ports
				description
			}
		}
	`)
	gqlReq.Var("name", req.Name)
	gqlReq.Var("software", req.Software)
	gqlReq.Var("command", req.Command)
	gqlReq.Var("files", req.Files)
	gqlReq.Var("ports", req.Ports)
	gqlReq.Var("description", req.Description)
	if req.Cpu > 0 {
		gqlReq.Var("cpu", req.Cpu)
	}
	if req.Memory != "" {
		gqlReq.Var("memory", req.Memory)
	}
	for _, upload := range uploads {
		gqlReq.File("files", upload.Path, upload.Content)
	}

	if err := g.authorize(gqlReq); err != nil {
		return nil, err
	}

	var resp struct {
		JobConfiguration *entity.JobConfiguration `json:"createJobConfiguration"`
	}
	if err := g.run(ctx, g.fileClient, gqlReq, &resp); err != nil {
		return nil, pkgerrors.Wrap(err, errors.JobConfigCreateFailed.Error())
	}
	if resp.JobConfiguration == nil {
		return nil, pkgerrors.Wrap(errors.EmptyResponse, errors.JobConfigCreateFailed.Error())
	}
	return resp.JobConfiguration, nil
}

func (g *Gateway) ListJobConfigurations(ctx context.Context) ([]*entity.JobConfiguration, error) {
	gqlReq := gql.NewRequest(`
		query {
			jobConfigurations {
				id
				name
				software
				command
				files
				ports
				description
			}
		}
	`)

	if err := g.authorize(gqlReq); err != nil {
		return nil, err
	}

	var resp struct {
		JobConfigurations []*entity.JobConfiguration `json:"jobConfigurations"`
	}
	if err := g.run(ctx, g.gqlClient, gqlReq, &resp); err != nil {
		return nil, errors.ProblemFetchingJobConfigs
	}
	return resp.JobConfigurations, nil
}

func (g *Gateway) DeleteJobConfiguration(ctx context.Context, name string) error {
	gqlReq := gql.NewRequest(`
		mutation($name: String!) {
			deleteJobConfiguration(name: $name)
		}
	`)
	gqlReq.Var("name", name)

	if err := g.authorize(gqlReq); err != nil {
		return err
	}

	var resp struct {
		Deleted bool `json:"deleteJobConfiguration"`
	}
	if err := g.run(ctx, g.gqlClient, gqlReq, &resp); err != nil {
		if IsNotFound(err) {
			return pkgerrors.Wrap(errors.ErrNotFound, name)
		}
		return err
	}
	return nil
}
