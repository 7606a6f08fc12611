package cmd

import (
	"go.uber.org/zap"

	"github.com/coiled/coiled-examples/cli/configs"
	"github.com/coiled/coiled-examples/cli/controller"
)

type Handler struct {
	ctrl   *controller.Controller
	cfg    *configs.Configs
	logger *zap.Logger
}

func New(logger *zap.Logger) *Handler {
	cfg := configs.New()
	return &Handler{
		ctrl:   controller.New(cfg, logger),
		cfg:    cfg,
		logger: logger,
	}
}
