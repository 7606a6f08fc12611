package ui

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

func PromptText(text string) (string, error) {
	prompt := promptui.Prompt{
		Label: text,
	}
	return prompt.Run()
}

func PromptToken() (string, error) {
	prompt := promptui.Prompt{
		Label: "API token (https://cloud.coiled.io/profile)",
		Mask:  '*',
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("Token cannot be empty")
			}
			return nil
		},
	}
	token, err := prompt.Run()
	return strings.TrimSpace(token), err
}

// PromptConfirm asks to confirm a destructive action by retyping name
func PromptConfirm(name string) error {
	validate := func(input string) error {
		if name != input {
			return errors.New("Nope")
		}
		return nil
	}
	prompt := promptui.Prompt{
		Label:    "Confirm by typing " + name,
		Validate: validate,
	}
	_, err := prompt.Run()
	return err
}
