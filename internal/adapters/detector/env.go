// Package detector inspects the process environment to pick a log format.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Format is the log rendering format.
type Format int

const (
	// FormatPretty renders colored, human-readable lines.
	FormatPretty Format = iota
	// FormatActions renders GitHub Actions workflow commands.
	FormatActions
	// FormatJSON renders one JSON object per line.
	FormatJSON
)

// Environment describes where the process runs.
type Environment struct {
	GitHubActions bool
	CI            bool
	TTY           bool
	Debug         bool
}

// DetectEnvironment reads the CI markers, runner debug flag and stderr TTY state.
func DetectEnvironment() Environment {
	return detect(os.Getenv, term.IsTerminal(int(os.Stderr.Fd())))
}

func detect(getenv func(string) string, tty bool) Environment {
	ci := getenv("CI")
	return Environment{
		GitHubActions: getenv("GITHUB_ACTIONS") == "true",
		CI:            ci == "true" || ci == "1",
		TTY:           tty,
		Debug:         getenv("RUNNER_DEBUG") == "1" || getenv("SETUPJS_DEBUG") == "1",
	}
}

// ResolveFormat applies a user override to the detected environment.
// userFlag is one of "auto", "pretty", "actions", "json", or empty.
func ResolveFormat(env Environment, userFlag string) Format {
	switch userFlag {
	case "pretty":
		return FormatPretty
	case "actions":
		return FormatActions
	case "json":
		return FormatJSON
	}
	if env.GitHubActions {
		return FormatActions
	}
	return FormatPretty
}
