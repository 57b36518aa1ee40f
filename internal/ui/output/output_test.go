package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/setupjs/internal/ui/output"
)

func TestProfile(t *testing.T) {
	t.Run("NO_COLOR forces ascii", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		t.Setenv("CI", "true")
		assert.Equal(t, termenv.Ascii, output.Profile())
	})

	t.Run("CI uses ansi", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("CI", "true")
		assert.Equal(t, termenv.ANSI, output.Profile())
	})

	t.Run("GitHub Actions uses ansi", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("CI", "")
		t.Setenv("GITHUB_ACTIONS", "true")
		assert.Equal(t, termenv.ANSI, output.Profile())
	})
}

func TestNew(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf)

	_, _ = out.WriteString(out.String("plain").Foreground(termenv.ANSIRed).String())
	assert.Equal(t, "plain", buf.String())
}

func TestNewWithProfile_Nil(t *testing.T) {
	out := output.NewWithProfile(nil, func() termenv.Profile { return termenv.Ascii })
	assert.NotNil(t, out)
}
