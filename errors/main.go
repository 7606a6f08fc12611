package errors

import (
	"fmt"

	"github.com/coiled/coiled-examples/cli/ui"
)

type CoiledError error

var (
	UserConfigNotFound        CoiledError = fmt.Errorf("%s\nRun %s", ui.RedText("Not logged in."), ui.Bold("coiled login"))
	TokenNotSet               CoiledError = fmt.Errorf("%s\nRun %s or set %s in your environment.", ui.RedText("No API token found."), ui.Bold("coiled login"), ui.Bold("COILED_TOKEN"))
	LoginFailed               CoiledError = fmt.Errorf("%s", ui.RedText("Login failed, the token was rejected"))
	ErrNotFound               CoiledError = fmt.Errorf("%s", ui.RedText("Not found"))
	SoftwareNameRequired      CoiledError = fmt.Errorf("%s", ui.RedText("A software environment name is required"))
	ContainerRequired         CoiledError = fmt.Errorf("%s", ui.RedText("A container image is required to build a software environment"))
	JobConfigNameRequired     CoiledError = fmt.Errorf("%s", ui.RedText("A job configuration name is required"))
	CommandRequired           CoiledError = fmt.Errorf("%s\nRun %s", ui.RedText("Specify a command for the job configuration."), ui.Bold("coiled job-config create NAME --command \"/bin/bash run.sh\""))
	ManifestNotSpecified      CoiledError = fmt.Errorf("%s\nRun %s", ui.RedText("Specify a manifest to provision from."), ui.Bold("coiled provision -f coiled.yaml"))
	SoftwareCreateFailed      CoiledError = fmt.Errorf("%s", ui.RedText("There was a problem creating the software environment."))
	SoftwareDeleteFailed      CoiledError = fmt.Errorf("%s", ui.RedText("There was a problem deleting the software environment."))
	JobConfigCreateFailed     CoiledError = fmt.Errorf("%s", ui.RedText("There was a problem creating the job configuration."))
	ProblemFetchingSoftware   CoiledError = fmt.Errorf("%s", ui.RedText("There was a problem fetching your software environments."))
	ProblemFetchingJobConfigs CoiledError = fmt.Errorf("%s", ui.RedText("There was a problem fetching your job configurations."))
	EmptyResponse             CoiledError = fmt.Errorf("%s", ui.RedText("The service answered without a result."))
	TelemetryFailed           CoiledError = fmt.Errorf("%s", ui.RedText("Something went wrong and the crash report could not be sent either."))
)

func FileNotFound(path string) CoiledError {
	return fmt.Errorf("%s %s", ui.RedText("File not found:"), ui.Bold(path))
}

func FileOutsideWorkdir(path string) CoiledError {
	return fmt.Errorf("%s %s", ui.RedText("Files must be inside the working directory:"), ui.Bold(path))
}

func CommandFileMissing(path string) CoiledError {
	return fmt.Errorf("%s %s %s", ui.RedText("The command uses"), ui.Bold(path), ui.RedText("but it is not in the file list"))
}

func CommandPanicked(command string) CoiledError {
	return fmt.Errorf("%s %s", ui.RedText("Something went wrong running"), ui.Bold("coiled "+command))
}

func InvalidPort(port int) CoiledError {
	return fmt.Errorf("%s %d", ui.RedText("Invalid port:"), port)
}
