// Package output builds termenv outputs with one color policy for every log format.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns the color profile for log output.
// NO_COLOR forces plain text. CI logs are not terminals but render ANSI colors,
// so a CI environment gets the basic ANSI profile instead of terminal detection.
func Profile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if isCI() {
		return termenv.ANSI
	}
	return termenv.EnvColorProfile()
}

func isCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1" || os.Getenv("GITHUB_ACTIONS") == "true"
}

// New creates a termenv.Output for w using Profile.
func New(w io.Writer) *termenv.Output {
	return NewWithProfile(w, Profile)
}

// NewWithProfile creates a termenv.Output with a custom profile selector.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(profileFn()), termenv.WithTTY(true))
}
