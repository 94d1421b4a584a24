package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("Pantai Kuta\n"))

	got, err := GetSimpleText(reader, "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "Pantai Kuta", got)
	assert.Equal(t, "Name\n> ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(reader, "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetSimpleText_EmptyInputIsEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "Name", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetDefaultedText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty keeps current", "\n", "Bali"},
		{"new value wins", "Lombok\n", "Lombok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			reader := bufio.NewReader(strings.NewReader(tt.input))

			got, err := GetDefaultedText(reader, "Location", "Bali", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Location [Bali]")
		})
	}
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) {
		return []byte("secret1"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret1"), pw)
	assert.Contains(t, out.String(), "Enter password:")
}

func TestGetPassword_ReadError(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) {
		return nil, errors.New("not a terminal")
	}

	_, err := GetPassword(io.Discard)
	require.Error(t, err)
}
