package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "mines.log")))
	err := cmd.Execute()
	return out.String(), err
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets", "--board", "cols=30&rows=16&mines=99")
	require.NoError(t, err)

	for _, want := range []string{"beginner", "intermediate", "expert", "custom", "24", "99", "30"} {
		assert.Contains(t, out, want)
	}
}

func TestDealCommand(t *testing.T) {
	args := []string{"deal", "--seed", "5", "--board", "cols=4&rows=3&mines=2", "-n", "2"}
	out, err := execute(t, args...)
	require.NoError(t, err)

	again, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed dealt different boards")

	assert.Equal(t, 2, strings.Count(out, "# custom 4x3/2\n"))
	assert.Equal(t, 4, strings.Count(out, "M"))
}

func TestDealCommandOpen(t *testing.T) {
	out, err := execute(t, "deal", "--seed", "5", "--board", "cols=3&rows=3&mines=8", "--open", "1,1")
	require.NoError(t, err)

	// the only safe cell is the one that was opened
	want := "# custom 3x3/8\n" +
		"M M M\n" +
		"M 8 M\n" +
		"M M M\n" +
		"\n" +
		"- - -\n" +
		"- 8 -\n" +
		"- - -\n"
	assert.Equal(t, want, out)
}

func TestDealCommandErrors(t *testing.T) {
	_, err := execute(t, "deal", "--open", "4")
	assert.Error(t, err)

	_, err = execute(t, "deal", "--open", "9,9")
	assert.ErrorIs(t, err, mines.ErrOutOfBounds)

	_, err = execute(t, "deal", "-n", "0")
	assert.Error(t, err)

	_, err = execute(t, "deal", "--board", "nightmare")
	assert.Error(t, err)
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    mines.Position
		wantErr bool
	}{
		{in: "4,4", want: mines.Position{Row: 4, Col: 4}},
		{in: " 0, 12", want: mines.Position{Row: 0, Col: 12}},
		{in: "4", wantErr: true},
		{in: "a,1", wantErr: true},
		{in: "1,b", wantErr: true},
	}
	for _, test := range tests {
		got, err := parsePosition(test.in)
		if test.wantErr {
			assert.Error(t, err, test.in)
			continue
		}
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got)
	}
}

func TestCreateRand(t *testing.T) {
	a, b := createRand(9), createRand(9)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}
