package display

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/qfxrenamer/internal/config"
	"github.com/backmassage/qfxrenamer/internal/term"
)

func TestPluralize(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"zero", 0, "0 files"},
		{"one", 1, "1 file"},
		{"many", 12, "12 files"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pluralize(tt.n, "file", "files"))
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0ms"},
		{"sub-second", 250 * time.Millisecond, "250ms"},
		{"exactly one second", time.Second, "1.0s"},
		{"fractional", 2500 * time.Millisecond, "2.5s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatElapsed(tt.d))
		})
	}
}

func TestPrintBanner_NoColor(t *testing.T) {
	term.Configure(config.ColorNever)
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.NotContains(t, buf.String(), "\033[")
	assert.NotEmpty(t, buf.String())
}
