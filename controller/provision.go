package controller

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/coiled/coiled-examples/cli/entity"
	CLIErrors "github.com/coiled/coiled-examples/cli/errors"
	"github.com/coiled/coiled-examples/cli/ui"
)

/* Provision replaces the manifest's software environment and registers its
   job configuration against it:
   1. delete the environment, a missing one is fine
   2. create the environment under the same name
   3. create the job configuration with software set to that name
   Everything that can be checked locally is checked before step 1. A failed
   step ends the run and later steps are not attempted.
*/
func (c *Controller) Provision(ctx context.Context, m *entity.Manifest) (*entity.ProvisionResult, error) {
	softwareReq := m.SoftwareRequest()
	if err := validateSoftware(softwareReq); err != nil {
		return nil, err
	}
	softwareReq = EnsureCoiledPin(softwareReq)

	jobReq := m.JobRequest()
	jobReq.Software = softwareReq.Name
	b, err := c.PrepareJobConfiguration(jobReq)
	if err != nil {
		return nil, err
	}

	name := softwareReq.Name
	logger := c.logger.With(zap.String("software", name), zap.String("job", jobReq.Name))

	ui.StartSpinner(&ui.SpinnerCfg{Message: fmt.Sprintf("Removing software environment %s", name)})
	err = c.DeleteSoftwareEnvironment(ctx, name)
	if err != nil && !errors.Is(err, CLIErrors.ErrNotFound) {
		ui.StopSpinner("")
		return nil, err
	}
	logger.Debug("software environment removed", zap.Bool("existed", err == nil))
	ui.StopSpinner(fmt.Sprintf("🧹 Removed software environment %s", ui.MagentaText(name)))

	ui.StartSpinner(&ui.SpinnerCfg{Message: fmt.Sprintf("Building software environment %s", name)})
	software, err := c.CreateSoftwareEnvironment(ctx, softwareReq)
	if err != nil {
		ui.StopSpinner("")
		return nil, err
	}
	logger.Debug("software environment created", zap.String("id", software.Id), zap.String("state", software.State))
	ui.StopSpinner(fmt.Sprintf("📦 Built software environment %s", ui.MagentaText(name)))

	fmt.Printf("⬆️  Uploading %d files for %s\n", len(b.Files), ui.MagentaText(jobReq.Name))
	job, err := c.createJobConfiguration(ctx, jobReq, b)
	if err != nil {
		return nil, err
	}
	logger.Debug("job configuration created", zap.String("id", job.Id))

	return &entity.ProvisionResult{
		Software:         software,
		JobConfiguration: job,
	}, nil
}
