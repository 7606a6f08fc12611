package cmd

import (
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

func joinCommand(command []string) string {
	return shellquote.Join(command...)
}

func joinPorts(ports []int) string {
	s := make([]string, 0, len(ports))
	for _, port := range ports {
		s = append(s, strconv.Itoa(port))
	}
	return strings.Join(s, ", ")
}

// splitCommand turns the --command flag into an argument vector
func splitCommand(command string) ([]string, error) {
	return shellquote.Split(command)
}
