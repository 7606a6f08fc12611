package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coiled/coiled-examples/cli/cmd"
	"github.com/coiled/coiled-examples/cli/constants"
	"github.com/coiled/coiled-examples/cli/entity"
	"github.com/coiled/coiled-examples/cli/errors"
)

var logLevel = zap.NewAtomicLevelAt(zap.WarnLevel)

var rootCmd = &cobra.Command{
	Use:           "coiled",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "☁️ Coiled examples. Dask in the cloud.",
	Long:          "Provision Coiled software environments and job configurations\n\n Docs: https://docs.coiled.io",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logLevel.SetLevel(zap.DebugLevel)
		}
	},
}

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = logLevel
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

/* contextualize converts a HandlerFunction to a cobra function.
   The context is cancelled on SIGINT/SIGTERM. A panic is reported through
   panicFn and returned as an error.
*/
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(stop)
		go func() {
			select {
			case <-stop:
				cancel()
			case <-ctx.Done():
			}
		}()

		defer func() {
			if r := recover(); r != nil {
				panicFn(ctx, fmt.Sprint(r), string(debug.Stack()), cmd.Name(), args)
				err = errors.CommandPanicked(cmd.Name())
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		return fn(ctx, req)
	}
}

func addJobConfigFlags(c *cobra.Command) {
	c.Flags().String("software", "", "Software environment the job runs in")
	c.Flags().String("command", "", "Command to launch, e.g. \"/bin/bash run.sh\"")
	c.Flags().StringSlice("file", []string{}, "File or directory to upload (repeatable)")
	c.Flags().IntSlice("port", []int{}, "Port to expose (repeatable)")
	c.Flags().String("description", "", "Description shown in the Coiled UI")
	c.Flags().Int("cpu", 0, "Number of CPUs")
	c.Flags().String("memory", "", "Memory, e.g. \"8 GiB\"")
	c.MarkFlagRequired("software")
	c.MarkFlagRequired("command")
}

func init() {
	logger := newLogger()
	// Initializes all commands
	handler := cmd.New(logger)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log requests to stderr")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "quickstart",
		Short: "Recreate the quickstart notebook environment and job configuration",
		RunE:  contextualize(handler.Quickstart, handler.Panic),
	})

	provisionCmd := &cobra.Command{
		Use:   "provision",
		Short: "Recreate a software environment and job configuration from a manifest",
		RunE:  contextualize(handler.Provision, handler.Panic),
	}
	provisionCmd.Flags().StringP("file", "f", "", "Manifest file (YAML)")
	rootCmd.AddCommand(provisionCmd)

	softwareCmd := &cobra.Command{
		Use:   "software",
		Short: "Manage software environments",
	}
	softwareCreateCmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a software environment",
		Args:  cobra.ExactArgs(1),
		RunE:  contextualize(handler.SoftwareCreate, handler.Panic),
	}
	softwareCreateCmd.Flags().String("container", "", "Base container image")
	softwareCreateCmd.MarkFlagRequired("container")
	softwareCreateCmd.Flags().StringSlice("channel", []string{}, "Conda channel (repeatable)")
	softwareCreateCmd.Flags().StringSlice("dependency", []string{}, "Pinned conda dependency (repeatable)")
	softwareCreateCmd.Flags().StringSlice("pip", []string{}, "Pinned pip dependency (repeatable)")
	softwareCmd.AddCommand(softwareCreateCmd)
	softwareCmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a software environment",
		Args:  cobra.ExactArgs(1),
		RunE:  contextualize(handler.SoftwareDelete, handler.Panic),
	})
	softwareCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show your software environments",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.SoftwareList, handler.Panic),
	})
	rootCmd.AddCommand(softwareCmd)

	jobConfigCmd := &cobra.Command{
		Use:     "job-config",
		Aliases: []string{"job"},
		Short:   "Manage job configurations",
	}
	jobConfigCreateCmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a job configuration, uploading its files",
		Args:  cobra.ExactArgs(1),
		RunE:  contextualize(handler.JobConfigCreate, handler.Panic),
	}
	addJobConfigFlags(jobConfigCreateCmd)
	jobConfigCmd.AddCommand(jobConfigCreateCmd)
	jobConfigPackCmd := &cobra.Command{
		Use:   "pack NAME",
		Short: "Write the files a job configuration would upload to a tarball",
		Args:  cobra.ExactArgs(1),
		RunE:  contextualize(handler.JobConfigPack, handler.Panic),
	}
	addJobConfigFlags(jobConfigPackCmd)
	jobConfigPackCmd.Flags().StringP("output", "o", "job.tar.gz", "Output path")
	jobConfigCmd.AddCommand(jobConfigPackCmd)
	jobConfigCmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a job configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  contextualize(handler.JobConfigDelete, handler.Panic),
	})
	jobConfigCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show your job configurations",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.JobConfigList, handler.Panic),
	})
	rootCmd.AddCommand(jobConfigCmd)

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Coiled with an API token",
		RunE:  contextualize(handler.Login, handler.Panic),
	}
	loginCmd.Flags().String("token", "", "API token, prompted for when missing")
	loginCmd.Flags().String("account", "", "Account to use, defaults to your first account")
	loginCmd.Flags().String("server", "", "Save a different Coiled server, e.g. a staging deployment")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Logout of Coiled",
		RunE:  contextualize(handler.Logout, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "whoami",
		Short: "Show the currently logged in user",
		RunE:  contextualize(handler.Whoami, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "docs [shortcut]",
		Short: "Open Coiled docs in the browser",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Docs, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get version of the CLI",
		RunE:  contextualize(handler.Version, handler.Panic),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown command") {
			suggStr := "\nS"

			suggestions := rootCmd.SuggestionsFor(os.Args[1])
			if len(suggestions) > 0 {
				suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
			}

			fmt.Println(fmt.Sprintf("Unknown command \"%s\" for \"%s\".%s"+
				"ee \"coiled --help\" for available commands.",
				os.Args[1], rootCmd.CommandPath(), suggStr))
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
