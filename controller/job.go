package controller

import (
	"context"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/coiled/coiled-examples/cli/bundle"
	"github.com/coiled/coiled-examples/cli/entity"
	CLIErrors "github.com/coiled/coiled-examples/cli/errors"
	"github.com/coiled/coiled-examples/cli/ui"
)

// PrepareJobConfiguration validates req against the working directory and
// returns the files to upload. req.Files is replaced by the resolved list.
func (c *Controller) PrepareJobConfiguration(req *entity.CreateJobConfigurationRequest) (*bundle.Bundle, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, CLIErrors.JobConfigNameRequired
	}
	if strings.TrimSpace(req.Software) == "" {
		return nil, CLIErrors.SoftwareNameRequired
	}
	if len(req.Command) == 0 {
		return nil, CLIErrors.CommandRequired
	}
	for _, port := range req.Ports {
		if port < 1 || port > 65535 {
			return nil, CLIErrors.InvalidPort(port)
		}
	}

	b, err := bundle.Resolve(c.Workdir, req.Files)
	if err != nil {
		return nil, err
	}
	for _, file := range bundle.CommandFiles(c.Workdir, req.Command) {
		if !b.Contains(file) {
			return nil, CLIErrors.CommandFileMissing(file)
		}
	}
	req.Files = b.Paths()
	return b, nil
}

func (c *Controller) createJobConfiguration(ctx context.Context, req *entity.CreateJobConfigurationRequest, b *bundle.Bundle) (*entity.JobConfiguration, error) {
	progress := ui.StartProgress(b.TotalSize())
	defer progress.Finish()

	uploads := make([]entity.UploadFile, 0, len(b.Files))
	for _, f := range b.Files {
		content, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer content.Close()
		uploads = append(uploads, entity.UploadFile{
			Path:    f.Path,
			Content: progress.Wrap(content),
		})
	}

	c.logger.Debug("creating job configuration",
		zap.String("name", req.Name),
		zap.String("software", req.Software),
		zap.Strings("command", req.Command),
		zap.Strings("files", req.Files),
		zap.Ints("ports", req.Ports),
	)
	job, err := c.gtwy.CreateJobConfiguration(ctx, req, uploads)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, pkgerrors.Wrap(CLIErrors.EmptyResponse, CLIErrors.JobConfigCreateFailed.Error())
	}
	return job, nil
}

// CreateJobConfiguration uploads the listed files and registers the job configuration
func (c *Controller) CreateJobConfiguration(ctx context.Context, req *entity.CreateJobConfigurationRequest) (*entity.JobConfiguration, error) {
	b, err := c.PrepareJobConfiguration(req)
	if err != nil {
		return nil, err
	}
	return c.createJobConfiguration(ctx, req, b)
}

// PackJobConfiguration writes the files req would upload to w as a tar.gz
func (c *Controller) PackJobConfiguration(req *entity.CreateJobConfigurationRequest, w io.Writer) (*bundle.Bundle, error) {
	b, err := c.PrepareJobConfiguration(req)
	if err != nil {
		return nil, err
	}
	return b, b.Archive(w)
}

func (c *Controller) ListJobConfigurations(ctx context.Context) ([]*entity.JobConfiguration, error) {
	return c.gtwy.ListJobConfigurations(ctx)
}

func (c *Controller) DeleteJobConfiguration(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return CLIErrors.JobConfigNameRequired
	}
	return c.gtwy.DeleteJobConfiguration(ctx, name)
}
