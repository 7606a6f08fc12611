package gateway_test

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coiled/coiled-examples/cli/entity"
	"github.com/coiled/coiled-examples/cli/errors"
	"github.com/coiled/coiled-examples/cli/gateway"
)

func quickstartSoftware() *entity.CreateSoftwareEnvironmentRequest {
	return entity.Quickstart().SoftwareRequest()
}

func TestDeleteMissingSoftwareIsNotFound(t *testing.T) {
	fake, cfg := newFakeCoiled(t)
	g := newGateway(cfg)

	err := g.DeleteSoftwareEnvironment(context.Background(), "coiled-examples/quickstart-notebook")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "deleteSoftwareEnvironment", calls[0].Operation)
	assert.Equal(t, "coiled-examples/quickstart-notebook", calls[0].Variables["name"])
}

func TestRequestHeaders(t *testing.T) {
	fake, cfg := newFakeCoiled(t)
	g := newGateway(cfg)

	_, err := g.ListSoftwareEnvironments(context.Background())
	require.NoError(t, err)

	header := fake.Calls()[0].Header
	assert.Equal(t, "Token secret", header.Get("Authorization"))
	assert.Equal(t, gateway.CLI_SOURCE_HEADER, header.Get("x-source"))
	assert.Len(t, header.Get("x-request-id"), 36)
}

func TestCreateAndDeleteSoftware(t *testing.T) {
	fake, cfg := newFakeCoiled(t)
	g := newGateway(cfg)
	ctx := context.Background()

	env, err := g.CreateSoftwareEnvironment(ctx, quickstartSoftware())
	require.NoError(t, err)
	assert.Equal(t, "coiled-examples/quickstart-notebook", env.Name)
	assert.Equal(t, "coiled/notebook:latest", env.Container)
	require.NotNil(t, env.Conda)
	assert.Equal(t, []string{"conda-forge"}, env.Conda.Channels)
	assert.Equal(t, []string{"coiled==0.0.25"}, env.Conda.Dependencies)

	envs, err := g.ListSoftwareEnvironments(ctx)
	require.NoError(t, err)
	require.Len(t, envs, 1)

	require.NoError(t, g.DeleteSoftwareEnvironment(ctx, env.Name))
	envs, err = g.ListSoftwareEnvironments(ctx)
	require.NoError(t, err)
	assert.Empty(t, envs)

	conda := fake.Calls()[0].Variables["conda"].(map[string]interface{})
	assert.Equal(t, []interface{}{"coiled==0.0.25"}, conda["dependencies"])
}

func TestCreateSoftwareTwiceFails(t *testing.T) {
	_, cfg := newFakeCoiled(t)
	g := newGateway(cfg)
	ctx := context.Background()

	_, err := g.CreateSoftwareEnvironment(ctx, quickstartSoftware())
	require.NoError(t, err)
	_, err = g.CreateSoftwareEnvironment(ctx, quickstartSoftware())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.False(t, stderrors.Is(err, errors.ErrNotFound))
}

func TestCreateJobConfigurationUploadsFiles(t *testing.T) {
	fake, cfg := newFakeCoiled(t)
	g := newGateway(cfg)
	ctx := context.Background()

	_, err := g.CreateSoftwareEnvironment(ctx, quickstartSoftware())
	require.NoError(t, err)

	req := entity.Quickstart().JobRequest()
	uploads := []entity.UploadFile{
		{Path: "quickstart.ipynb", Content: strings.NewReader(`{"cells": []}`)},
		{Path: "workspace.json", Content: strings.NewReader(`{}`)},
		{Path: "run.sh", Content: strings.NewReader("jupyter lab\n")},
	}
	job, err := g.CreateJobConfiguration(ctx, req, uploads)
	require.NoError(t, err)
	assert.Equal(t, "coiled/quickstart", job.Name)
	assert.Equal(t, "coiled-examples/quickstart-notebook", job.Software)
	assert.Equal(t, []string{"/bin/bash", "run.sh"}, job.Command)
	assert.Equal(t, []int{8888}, job.Ports)

	calls := fake.Calls()
	last := calls[len(calls)-1]
	assert.Equal(t, "createJobConfiguration", last.Operation)
	assert.Equal(t, map[string]string{
		"quickstart.ipynb": `{"cells": []}`,
		"workspace.json":   `{}`,
		"run.sh":           "jupyter lab\n",
	}, last.Files)
	assert.Equal(t, "Token secret", last.Header.Get("Authorization"))
	_, hasCpu := last.Variables["cpu"]
	assert.False(t, hasCpu)
}

func TestCreateJobConfigurationWithoutSoftware(t *testing.T) {
	_, cfg := newFakeCoiled(t)
	g := newGateway(cfg)

	_, err := g.CreateJobConfiguration(context.Background(), entity.Quickstart().JobRequest(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestJobConfigurations(t *testing.T) {
	_, cfg := newFakeCoiled(t)
	g := newGateway(cfg)
	ctx := context.Background()

	_, err := g.CreateSoftwareEnvironment(ctx, quickstartSoftware())
	require.NoError(t, err)
	_, err = g.CreateJobConfiguration(ctx, entity.Quickstart().JobRequest(), nil)
	require.NoError(t, err)

	jobs, err := g.ListJobConfigurations(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Quickly launch a Dask cluster on the cloud with Coiled", jobs[0].Description)

	require.NoError(t, g.DeleteJobConfiguration(ctx, "coiled/quickstart"))
	err = g.DeleteJobConfiguration(ctx, "coiled/quickstart")
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))
}

func TestMissingToken(t *testing.T) {
	fake, cfg := newFakeCoiled(t)
	cfg.CoiledToken = ""
	g := newGateway(cfg)

	err := g.DeleteSoftwareEnvironment(context.Background(), "anything")
	assert.Equal(t, errors.TokenNotSet, err)
	assert.Empty(t, fake.Calls())
}

func TestGetUserWithToken(t *testing.T) {
	_, cfg := newFakeCoiled(t)
	cfg.CoiledToken = ""
	g := newGateway(cfg)
	ctx := context.Background()

	user, err := g.GetUserWithToken(ctx, "secret")
	require.NoError(t, err)
	assert.Equal(t, "dask", user.Username)
	assert.Equal(t, []string{"dask", "coiled-examples"}, user.Accounts)

	_, err = g.GetUserWithToken(ctx, "wrong")
	assert.Equal(t, errors.LoginFailed, err)
}

func TestNullUserIsLoginFailed(t *testing.T) {
	fake, cfg := newFakeCoiled(t)
	fake.nulls["me"] = true
	g := newGateway(cfg)
	ctx := context.Background()

	user, err := g.GetUserWithToken(ctx, "secret")
	assert.Nil(t, user)
	assert.Equal(t, errors.LoginFailed, err)

	user, err = g.GetUser(ctx)
	assert.Nil(t, user)
	assert.Equal(t, errors.LoginFailed, err)
}

func TestNullSoftwareEnvironmentIsAnError(t *testing.T) {
	fake, cfg := newFakeCoiled(t)
	fake.nulls["createSoftwareEnvironment"] = true
	g := newGateway(cfg)

	env, err := g.CreateSoftwareEnvironment(context.Background(), quickstartSoftware())
	assert.Nil(t, env)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.EmptyResponse))
	assert.Contains(t, err.Error(), errors.SoftwareCreateFailed.Error())
}

func TestNullJobConfigurationIsAnError(t *testing.T) {
	fake, cfg := newFakeCoiled(t)
	fake.nulls["createJobConfiguration"] = true
	g := newGateway(cfg)
	ctx := context.Background()

	_, err := g.CreateSoftwareEnvironment(ctx, quickstartSoftware())
	require.NoError(t, err)

	job, err := g.CreateJobConfiguration(ctx, entity.Quickstart().JobRequest(), nil)
	assert.Nil(t, job)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.EmptyResponse))
	assert.Contains(t, err.Error(), errors.JobConfigCreateFailed.Error())
}

func TestSendPanic(t *testing.T) {
	fake, cfg := newFakeCoiled(t)
	cfg.CoiledToken = ""
	g := newGateway(cfg)

	ok, err := g.SendPanic(context.Background(), &entity.PanicRequest{
		Command:    "quickstart",
		PanicError: "boom",
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "boom", fake.Calls()[0].Variables["panicErr"])
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, gateway.IsNotFound(nil))
	assert.True(t, gateway.IsNotFound(stderrors.New("graphql: Software environment x not found")))
	assert.False(t, gateway.IsNotFound(stderrors.New("graphql: already exists")))
}
