package controller

import (
	"context"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/coiled/coiled-examples/cli/constants"
	"github.com/coiled/coiled-examples/cli/entity"
	CLIErrors "github.com/coiled/coiled-examples/cli/errors"
)

// coiledRequirement reports whether dep names the coiled package and
// whether it pins an exact version
func coiledRequirement(dep string) (isCoiled bool, pinned bool) {
	dep = strings.ToLower(strings.TrimSpace(dep))
	if i := strings.Index(dep, "::"); i >= 0 {
		dep = dep[i+2:]
	}
	end := strings.IndexAny(dep, "=<>!~[ ")
	if end < 0 {
		return dep == "coiled", false
	}
	if dep[:end] != "coiled" {
		return false, false
	}
	rest := strings.TrimSpace(dep[end:])
	return true, strings.HasPrefix(rest, "=")
}

func withoutLoosePins(deps []string) []string {
	kept := make([]string, 0, len(deps))
	for _, dep := range deps {
		if isCoiled, pinned := coiledRequirement(dep); isCoiled && !pinned {
			continue
		}
		kept = append(kept, dep)
	}
	return kept
}

// EnsureCoiledPin returns a copy of req whose dependencies pin coiled.
// Unpinned coiled requirements are replaced by constants.CoiledPin.
func EnsureCoiledPin(req *entity.CreateSoftwareEnvironmentRequest) *entity.CreateSoftwareEnvironmentRequest {
	for _, dep := range req.Dependencies() {
		if _, pinned := coiledRequirement(dep); pinned {
			return req
		}
	}

	pinned := *req
	switch {
	case req.Conda != nil:
		pinned.Conda = &entity.CondaSpec{
			Channels:     append([]string{}, req.Conda.Channels...),
			Dependencies: append(withoutLoosePins(req.Conda.Dependencies), constants.CoiledPin),
		}
		pinned.Pip = withoutLoosePins(req.Pip)
	case len(req.Pip) > 0:
		pinned.Pip = append(withoutLoosePins(req.Pip), constants.CoiledPin)
	default:
		pinned.Conda = &entity.CondaSpec{
			Channels:     []string{"conda-forge"},
			Dependencies: []string{constants.CoiledPin},
		}
	}
	return &pinned
}

func validateSoftware(req *entity.CreateSoftwareEnvironmentRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return CLIErrors.SoftwareNameRequired
	}
	if strings.TrimSpace(req.Container) == "" {
		return CLIErrors.ContainerRequired
	}
	return nil
}

// DeleteSoftwareEnvironment removes the environment, errors.ErrNotFound if there was none
func (c *Controller) DeleteSoftwareEnvironment(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return CLIErrors.SoftwareNameRequired
	}
	c.logger.Debug("deleting software environment", zap.String("name", name))
	return c.gtwy.DeleteSoftwareEnvironment(ctx, name)
}

// CreateSoftwareEnvironment builds a software environment, pinning coiled
// into its dependencies when the request does not
func (c *Controller) CreateSoftwareEnvironment(ctx context.Context, req *entity.CreateSoftwareEnvironmentRequest) (*entity.SoftwareEnvironment, error) {
	if err := validateSoftware(req); err != nil {
		return nil, err
	}
	req = EnsureCoiledPin(req)
	c.logger.Debug("creating software environment",
		zap.String("name", req.Name),
		zap.String("container", req.Container),
		zap.Strings("dependencies", req.Dependencies()),
	)
	env, err := c.gtwy.CreateSoftwareEnvironment(ctx, req)
	if err != nil {
		return nil, err
	}
	if env == nil {
		return nil, pkgerrors.Wrap(CLIErrors.EmptyResponse, CLIErrors.SoftwareCreateFailed.Error())
	}
	return env, nil
}

func (c *Controller) ListSoftwareEnvironments(ctx context.Context) ([]*entity.SoftwareEnvironment, error) {
	return c.gtwy.ListSoftwareEnvironments(ctx)
}
