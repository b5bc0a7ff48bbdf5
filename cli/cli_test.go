package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/polyquine/cli"
	"github.com/byte4ever/polyquine/langdata"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := cli.Run(
		&stdout, &stderr,
		func(code int) {
			t.Fatalf("unexpected exit(%d)", code)
		},
		args...,
	)

	return result{
		stdout: stdout.String(),
		stderr: stderr.String(),
		err:    err,
	}
}

func golden(t *testing.T, name string) string {
	t.Helper()

	raw, err := os.ReadFile( //nolint:gosec // test file
		filepath.Join("..", "langdata", "testdata", name),
	)
	require.NoError(t, err)

	return string(raw)
}

func TestRun_emits_selected_language(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flag   string
		golden string
	}{
		{flag: "--cpp", golden: "cpp.golden"},
		{flag: "--python", golden: "python.golden"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.flag, func(t *testing.T) {
			t.Parallel()

			res := run(t, tt.flag)

			require.NoError(t, res.err)
			assert.Equal(t, golden(t, tt.golden), res.stdout)
			assert.Empty(t, res.stderr)
		})
	}
}

func TestRun_language_selection_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		reason string
		flags  []string
	}{
		{
			name:   "neither",
			args:   nil,
			reason: "one language flag is required",
			flags:  []string{"cpp", "python"},
		},
		{
			name:   "both",
			args:   []string{"--cpp", "--python"},
			reason: "only one language flag may be given",
			flags:  []string{"cpp", "python"},
		},
		{
			name:   "both reversed",
			args:   []string{"--python", "--cpp"},
			reason: "only one language flag may be given",
			flags:  []string{"cpp", "python"},
		},
		{
			name:   "neither with other flags",
			args:   []string{"--format", "json"},
			reason: "one language flag is required",
			flags:  []string{"cpp", "python"},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := run(t, tt.args...)

			var ue *cli.UsageError

			require.ErrorAs(t, res.err, &ue)
			assert.Equal(t, tt.reason, ue.Reason)
			assert.Equal(t, tt.flags, ue.Flags)
			assert.Empty(t, res.stdout)
			assert.Contains(t, res.stderr, "--cpp")
			assert.Contains(t, res.stderr, "--python")
		})
	}
}

func TestRun_unknown_flag(t *testing.T) {
	t.Parallel()

	res := run(t, "--scheme")

	var ue *cli.UsageError

	require.ErrorAs(t, res.err, &ue)
	assert.Contains(t, res.stderr, "polyquine: error:")
	assert.Empty(t, res.stdout)
}

func TestRun_bad_format(t *testing.T) {
	t.Parallel()

	res := run(t, "--cpp", "--format", "yaml")

	var ue *cli.UsageError

	require.ErrorAs(t, res.err, &ue)
}

func TestRun_json_format(t *testing.T) {
	t.Parallel()

	res := run(t, "--python", "--format", "json")
	require.NoError(t, res.err)

	var lines []string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &lines))

	var want bytes.Buffer
	for _, line := range lines {
		want.WriteString(line + "\n")
	}

	assert.Equal(t, golden(t, "python.golden"), want.String())
}

func TestRun_verify(t *testing.T) {
	t.Parallel()

	res := run(t, "--cpp", "--verify")

	require.NoError(t, res.err)
	assert.Equal(t, golden(t, "cpp.golden"), res.stdout)
}

func TestRun_version(t *testing.T) {
	t.Parallel()

	res := run(t, "--version")

	require.NoError(t, res.err)
	assert.Equal(t, "Multi-Language Quine v1.0\n", res.stdout)
}

func TestRun_output_file(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "quine.py")

	res := run(t, "--python", "-o", outPath, "--executable")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)

	got, err := os.ReadFile(outPath) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, golden(t, "python.golden"), string(got))

	info, err := os.Stat(outPath)
	require.NoError(t, err)

	// Owner executable bit must be set.
	assert.NotZero(t, info.Mode()&0o100)
}

func TestRun_output_file_truncates(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "quine.cpp")
	require.NoError(t, os.WriteFile(
		outPath, bytes.Repeat([]byte("x"), 1<<16), 0o600,
	))

	res := run(t, "--cpp", "--output", outPath)
	require.NoError(t, res.err)

	got, err := os.ReadFile(outPath) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, golden(t, "cpp.golden"), string(got))
}

func TestRun_executable_requires_output(t *testing.T) {
	t.Parallel()

	res := run(t, "--cpp", "--executable")

	var ue *cli.UsageError

	require.ErrorAs(t, res.err, &ue)
	assert.Equal(t, []string{"executable"}, ue.Flags)
}

func TestRun_output_in_missing_directory(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "missing", "quine.cpp")

	res := run(t, "--cpp", "-o", outPath)

	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "opening output")
}

func TestUsageError_message(t *testing.T) {
	t.Parallel()

	ue := &cli.UsageError{
		Flags:  []string{"cpp", "python"},
		Reason: "only one language flag may be given",
	}

	assert.Equal(
		t,
		"only one language flag may be given: --cpp, --python",
		ue.Error(),
	)
	assert.Equal(t, "plain", (&cli.UsageError{Reason: "plain"}).Error())
}

func TestCheckSelectors(t *testing.T) {
	t.Parallel()

	mf, err := langdata.Load()
	require.NoError(t, err)

	require.NoError(t, cli.CheckSelectorsForTest(mf))
}

func TestCheckSelectors_unknown_flag(t *testing.T) {
	t.Parallel()

	const manifest = `version: v1
languages:
  - tag: SCHEME
    flag: scheme
    blocks: {pre: a, classes: b, var: c, post: d}
`

	mf, err := langdata.LoadFS(
		fstest.MapFS{"quine.yaml": {Data: []byte(manifest)}},
		"quine.yaml",
	)
	require.NoError(t, err)

	err = cli.CheckSelectorsForTest(mf)

	require.ErrorIs(t, err, cli.ErrUnselectableLanguage)
	assert.Contains(t, err.Error(), "--scheme")
}

func TestRun_debug(t *testing.T) {
	t.Parallel()

	res := run(t, "--python", "--debug")

	require.NoError(t, res.err)
	assert.Equal(t, golden(t, "python.golden"), res.stdout)
	assert.Contains(t, res.stderr, "level=DEBUG")
	assert.Contains(t, res.stderr, `msg="emitted quine"`)
	assert.Contains(t, res.stderr, "lang=PYTHON")
}

func TestRun_without_debug_logs_nothing(t *testing.T) {
	t.Parallel()

	res := run(t, "--cpp")

	require.NoError(t, res.err)
	assert.NotContains(t, res.stderr, "emitted quine")
}
