package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

type CloudSpinner []string

var (
	CloudEmojis CloudSpinner = []string{"🌤", "⛅", "🌥", "☁️", "🌦", "🌧"}
)

type SpinnerCfg struct {
	Message  string
	Tokens   []string
	Duration time.Duration
}

var s *spinner.Spinner

// StartSpinner animates while a blocking call runs. Without a terminal it
// prints the message once instead.
func StartSpinner(cfg *SpinnerCfg) {
	if !SupportsANSICodes() {
		if cfg.Message != "" {
			fmt.Println(cfg.Message)
		}
		return
	}
	if cfg.Tokens == nil {
		cfg.Tokens = CloudEmojis
	}
	if cfg.Duration.Microseconds() == 0 {
		cfg.Duration = time.Duration(100) * time.Millisecond
	}
	s = spinner.New(cfg.Tokens, cfg.Duration)
	s.Writer = os.Stdout

	if cfg.Message != "" {
		s.Suffix = " " + cfg.Message
	}

	s.Start()
}

func StopSpinner(msg string) {
	if s == nil {
		if msg != "" {
			fmt.Println(msg)
		}
		return
	}
	if msg != "" {
		s.FinalMSG = msg + "\n"
	}

	s.Stop()
	s = nil
}
