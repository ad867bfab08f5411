package color_test

import (
	"os"
	"testing"

	"github.com/ruping/ruping-setup/internal/color"
)

func TestProfile(t *testing.T) {
	tests := []struct {
		name        string
		noColorFlag bool
		env         map[string]string
		want        bool
	}{
		{name: "enabled by default", want: true},
		{name: "disabled by flag", noColorFlag: true, want: false},
		{name: "disabled by NO_COLOR", env: map[string]string{"NO_COLOR": "1"}, want: false},
		{name: "disabled by empty NO_COLOR", env: map[string]string{"NO_COLOR": ""}, want: false},
		{name: "disabled by CLICOLOR=0", env: map[string]string{"CLICOLOR": "0"}, want: false},
		{name: "enabled by CLICOLOR=1", env: map[string]string{"CLICOLOR": "1"}, want: true},
		{name: "disabled by dumb terminal", env: map[string]string{"TERM": "dumb"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Start from a clean slate so the host environment cannot
			// influence the outcome. t.Setenv registers restoration.
			for _, k := range []string{"NO_COLOR", "CLICOLOR", "TERM"} {
				t.Setenv(k, "")
				os.Unsetenv(k)
			}

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if got := color.Profile(tt.noColorFlag); got != tt.want {
				t.Errorf("Profile(%v) = %v, want %v", tt.noColorFlag, got, tt.want)
			}
		})
	}
}

func TestNewThemeWithoutColor(t *testing.T) {
	theme := color.NewTheme(false)

	if theme.Error.Render("failed") != "failed" {
		t.Error("colorless theme must not emit ANSI codes")
	}
}
