package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, dir, text string) string {
	t.Helper()

	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	var (
		dir    = t.TempDir()
		input  = writeInput(t, dir, "Բարև, բարև աշխարհ։\nԲԱՐԵՎ 2024 աշխարհ բարև")
		output = filepath.Join(dir, "output.txt")
	)

	require.NoError(t, run(input, output, 49))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "բարև 3\nաշխարհ 2\nբարեվ 1\n", string(data))

	// a second run over the same input is byte-identical
	again := filepath.Join(dir, "again.txt")
	require.NoError(t, run(input, again, 49))

	data2, err := os.ReadFile(again)
	require.NoError(t, err)
	assert.Equal(t, data, data2)
}

func TestRun_Truncate(t *testing.T) {
	t.Parallel()

	var (
		dir    = t.TempDir()
		input  = writeInput(t, dir, "աշխարհ աշխատանք")
		output = filepath.Join(dir, "output.txt")
	)

	require.NoError(t, run(input, output, 3))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "աշխ 2\n", string(data))
}

func TestRun_EmptyInput(t *testing.T) {
	t.Parallel()

	var (
		dir    = t.TempDir()
		input  = writeInput(t, dir, "")
		output = filepath.Join(dir, "output.txt")
	)

	require.NoError(t, run(input, output, 49))

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	var (
		dir    = t.TempDir()
		input  = writeInput(t, dir, "բարև")
		output = filepath.Join(dir, "output.txt")
	)

	for _, tcase := range []*struct {
		Name      string
		Input     string
		Output    string
		MaxLength int
	}{
		{"no-input-flag", "", output, 49},
		{"no-output-flag", input, "", 49},
		{"bad-max-length", input, output, 0},
		{"missing-input", filepath.Join(dir, "missing.txt"), output, 49},
		{"unwritable-output", input, filepath.Join(dir, "no", "such", "dir.txt"), 49},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			assert.Error(t, run(tcase.Input, tcase.Output, tcase.MaxLength))

			_, err := os.Stat(output)
			assert.True(t, os.IsNotExist(err), "output must not be created")
		})
	}
}
