package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/coiled/coiled-examples/cli/entity"
	CLIErrors "github.com/coiled/coiled-examples/cli/errors"
	"github.com/coiled/coiled-examples/cli/ui"
)

func jobConfigurationRequest(req *entity.CommandRequest) (*entity.CreateJobConfigurationRequest, error) {
	flags := req.Cmd.Flags()
	software, err := flags.GetString("software")
	if err != nil {
		return nil, err
	}
	commandStr, err := flags.GetString("command")
	if err != nil {
		return nil, err
	}
	files, err := flags.GetStringSlice("file")
	if err != nil {
		return nil, err
	}
	ports, err := flags.GetIntSlice("port")
	if err != nil {
		return nil, err
	}
	description, err := flags.GetString("description")
	if err != nil {
		return nil, err
	}
	cpu, err := flags.GetInt("cpu")
	if err != nil {
		return nil, err
	}
	memory, err := flags.GetString("memory")
	if err != nil {
		return nil, err
	}

	command, err := splitCommand(commandStr)
	if err != nil {
		return nil, err
	}

	return &entity.CreateJobConfigurationRequest{
		Name:        req.Args[0],
		Software:    software,
		Command:     command,
		Files:       files,
		Ports:       ports,
		Description: description,
		Cpu:         cpu,
		Memory:      memory,
	}, nil
}

func (h *Handler) JobConfigCreate(ctx context.Context, req *entity.CommandRequest) error {
	createReq, err := jobConfigurationRequest(req)
	if err != nil {
		return err
	}

	job, err := h.ctrl.CreateJobConfiguration(ctx, createReq)
	if err != nil {
		return err
	}
	fmt.Printf("🎉 Job configuration %s is ready\n", ui.GreenText(job.Name))
	return nil
}

func (h *Handler) JobConfigPack(ctx context.Context, req *entity.CommandRequest) error {
	createReq, err := jobConfigurationRequest(req)
	if err != nil {
		return err
	}
	output, err := req.Cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	bundle, err := h.ctrl.PackJobConfiguration(createReq, f)
	if err != nil {
		return err
	}
	fmt.Printf("📦 Packed %d files into %s\n", len(bundle.Files), ui.Bold(output))
	fmt.Print(ui.UnorderedList(bundle.Paths()))
	return nil
}

func (h *Handler) JobConfigDelete(ctx context.Context, req *entity.CommandRequest) error {
	name := req.Args[0]
	err := h.ctrl.DeleteJobConfiguration(ctx, name)
	if errors.Is(err, CLIErrors.ErrNotFound) {
		fmt.Printf("🤷 No job configuration named %s\n", ui.MagentaText(name))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("🧹 Removed job configuration %s\n", ui.MagentaText(name))
	return nil
}

func (h *Handler) JobConfigList(ctx context.Context, req *entity.CommandRequest) error {
	jobs, err := h.ctrl.ListJobConfigurations(ctx)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		fmt.Printf("%s %s\n", ui.MagentaText(job.Name), ui.GrayText("on "+job.Software))
		fmt.Print(ui.PrefixLines(ui.KeyValues(map[string]string{
			"command": joinCommand(job.Command),
			"ports":   joinPorts(job.Ports),
			"files":   ui.Truncate(fmt.Sprint(job.Files), 60),
		}), "    "))
		if job.Description != "" {
			fmt.Print(ui.PrefixLines(ui.Paragraph(job.Description), "    "))
		}
	}
	return nil
}
