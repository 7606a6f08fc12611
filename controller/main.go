package controller

import (
	"context"

	"github.com/google/go-github/github"
	"go.uber.org/zap"

	"github.com/coiled/coiled-examples/cli/configs"
	"github.com/coiled/coiled-examples/cli/entity"
	"github.com/coiled/coiled-examples/cli/gateway"
)

// Gateway is the remote service the controller drives
type Gateway interface {
	DeleteSoftwareEnvironment(ctx context.Context, name string) error
	CreateSoftwareEnvironment(ctx context.Context, req *entity.CreateSoftwareEnvironmentRequest) (*entity.SoftwareEnvironment, error)
	ListSoftwareEnvironments(ctx context.Context) ([]*entity.SoftwareEnvironment, error)
	CreateJobConfiguration(ctx context.Context, req *entity.CreateJobConfigurationRequest, uploads []entity.UploadFile) (*entity.JobConfiguration, error)
	ListJobConfigurations(ctx context.Context) ([]*entity.JobConfiguration, error)
	DeleteJobConfiguration(ctx context.Context, name string) error
	GetUser(ctx context.Context) (*entity.User, error)
	GetUserWithToken(ctx context.Context, token string) (*entity.User, error)
	SendPanic(ctx context.Context, req *entity.PanicRequest) (bool, error)
}

type Controller struct {
	gtwy   Gateway
	cfg    *configs.Configs
	ghc    *github.Client
	logger *zap.Logger
	// Workdir is where job configuration files are read from
	Workdir string
}

func New(cfg *configs.Configs, logger *zap.Logger) *Controller {
	return NewWithGateway(gateway.New(cfg, logger), cfg, logger)
}

func NewWithGateway(gtwy Gateway, cfg *configs.Configs, logger *zap.Logger) *Controller {
	return &Controller{
		gtwy:    gtwy,
		cfg:     cfg,
		ghc:     github.NewClient(nil),
		logger:  logger,
		Workdir: ".",
	}
}
