package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/bodo-run/stop-nagging/pkg/errors"
	"github.com/bodo-run/stop-nagging/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_UnmarshalText(t *testing.T) {
	tests := []struct {
		input string
		want  ui.Format
	}{
		{"auto", ui.FormatAuto},
		{"", ui.FormatAuto},
		{"term", ui.FormatTerminal},
		{"Terminal", ui.FormatTerminal},
		{" text ", ui.FormatText},
		{"plain", ui.FormatText},
		{"JSON", ui.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := ui.Format(-1)
			require.NoError(t, f.UnmarshalText([]byte(tt.input)))
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestFormat_UnmarshalTextRejectsUnknown(t *testing.T) {
	f := ui.FormatText
	err := f.UnmarshalText([]byte("yaml"))

	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "unknown format: yaml")
	assert.Equal(t, ui.FormatText, f, "failed decode leaves the value alone")
}

func TestFormat_TextRoundTrip(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		text, err := f.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, f.String(), string(text))

		var back ui.Format
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, f, back)
	}

	_, err := ui.Format(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "unknown", ui.Format(9).String())
}

func TestFormat_Resolve(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() { _ = r.Close() }()
	defer func() { _ = w.Close() }()

	t.Run("explicit formats are kept", func(t *testing.T) {
		assert.Equal(t, ui.FormatJSON, ui.FormatJSON.Resolve(w))
		assert.Equal(t, ui.FormatTerminal, ui.FormatTerminal.Resolve(&bytes.Buffer{}))
	})

	t.Run("buffer is text", func(t *testing.T) {
		assert.Equal(t, ui.FormatText, ui.FormatAuto.Resolve(&bytes.Buffer{}))
	})

	t.Run("pipe is text", func(t *testing.T) {
		assert.Equal(t, ui.FormatText, ui.FormatAuto.Resolve(w))
	})

	t.Run("no destinations is text", func(t *testing.T) {
		assert.Equal(t, ui.FormatText, ui.FormatAuto.Resolve())
	})

	t.Run("NO_COLOR forces text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.FormatAuto.Resolve(os.Stdout, os.Stderr))
	})
}
