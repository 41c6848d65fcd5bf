package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  ann@example.com \n"), "Email?", &out)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", got)
	assert.Equal(t, "Email?\n> ", out.String())
}

func TestGetSimpleText_EOFAfterInput(t *testing.T) {
	got, err := GetSimpleText(rdr("lastline"), "x", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	_, err := GetSimpleText(rdr(""), "x", &bytes.Buffer{})
	require.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("pw"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("pw"), pw)
	assert.Equal(t, "Enter password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(&bytes.Buffer{})
	require.Error(t, err)
}

func TestGetFields(t *testing.T) {
	got, err := GetFields(rdr("a=1\n b=2 \n\nignored=3\n"), "Fields", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a=1", "b=2"}, got)
}

func TestGetFields_EOF(t *testing.T) {
	got, err := GetFields(rdr("a=1\nb=2"), "Fields", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a=1", "b=2"}, got)
}
