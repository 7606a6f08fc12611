package controller

import (
	"context"
	"io/ioutil"

	"github.com/stretchr/testify/mock"

	"github.com/coiled/coiled-examples/cli/entity"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) DeleteSoftwareEnvironment(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *mockGateway) CreateSoftwareEnvironment(ctx context.Context, req *entity.CreateSoftwareEnvironmentRequest) (*entity.SoftwareEnvironment, error) {
	args := m.Called(ctx, req)
	env, _ := args.Get(0).(*entity.SoftwareEnvironment)
	return env, args.Error(1)
}

func (m *mockGateway) ListSoftwareEnvironments(ctx context.Context) ([]*entity.SoftwareEnvironment, error) {
	args := m.Called(ctx)
	envs, _ := args.Get(0).([]*entity.SoftwareEnvironment)
	return envs, args.Error(1)
}

// CreateJobConfiguration hands the mock the uploaded contents keyed by path,
// the readers are closed once the real call returns
func (m *mockGateway) CreateJobConfiguration(ctx context.Context, req *entity.CreateJobConfigurationRequest, uploads []entity.UploadFile) (*entity.JobConfiguration, error) {
	contents := map[string]string{}
	for _, upload := range uploads {
		b, err := ioutil.ReadAll(upload.Content)
		if err != nil {
			return nil, err
		}
		contents[upload.Path] = string(b)
	}
	args := m.Called(ctx, req, contents)
	job, _ := args.Get(0).(*entity.JobConfiguration)
	return job, args.Error(1)
}

func (m *mockGateway) ListJobConfigurations(ctx context.Context) ([]*entity.JobConfiguration, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]*entity.JobConfiguration)
	return jobs, args.Error(1)
}

func (m *mockGateway) DeleteJobConfiguration(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *mockGateway) GetUser(ctx context.Context) (*entity.User, error) {
	args := m.Called(ctx)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockGateway) GetUserWithToken(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockGateway) SendPanic(ctx context.Context, req *entity.PanicRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

func (m *mockGateway) methods() []string {
	methods := []string{}
	for _, call := range m.Calls {
		methods = append(methods, call.Method)
	}
	return methods
}
