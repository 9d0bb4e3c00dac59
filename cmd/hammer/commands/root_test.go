package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reoring/hammer"
	"github.com/reoring/hammer/cmd/hammer/commands"
	"github.com/reoring/hammer/jsonschema"
	"github.com/reoring/hammer/schema"
)

var testDataDir string

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	testDataDir = filepath.Join(dir, "testdata")
}

const simpleDraft4 = `{
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "number", "optional": true}
	},
	"required": ["name"]
}`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	tc := commands.NewRootCmd("test_hammer", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

func TestConvertCmd(t *testing.T) {
	stdout, stderr, err := run(t, "convert", filepath.Join(testDataDir, "simple.yaml"))
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.JSONEq(t, simpleDraft4, stdout)

	// Key order follows declaration order.
	assert.Less(t, strings.Index(stdout, `"name"`), strings.Index(stdout, `"age"`))
}

func TestConvertCmdFlags(t *testing.T) {
	stdout, _, err := run(t, "convert", filepath.Join(testDataDir, "simple.yaml"),
		"--draft", "3", "--no-types", "--annotations", "--schema-uri")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"$schema": "http://json-schema.org/draft-03/schema#",
		"properties": {
			"name": {"required": true},
			"age": {"optional": true}
		},
		"required": true,
		"title": "Simple"
	}`, stdout)
}

func TestConvertCmdYAML(t *testing.T) {
	stdout, _, err := run(t, "convert", "--format", "yaml", "--check",
		filepath.Join(testDataDir, "simple.yaml"),
		filepath.Join(testDataDir, "friends.json"),
	)
	require.NoError(t, err)

	dec := yaml.NewDecoder(strings.NewReader(stdout))
	var first, second map[string]any
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	assert.Equal(t, "object", first["type"])
	assert.Equal(t, "array", second["type"])
	assert.Equal(t, []any{"friend"}, second["required"])
}

func TestConvertCmdOutput(t *testing.T) {
	outDir := t.TempDir()

	outFile := filepath.Join(outDir, "single", "simple.json")
	stdout, stderr, err := run(t, "convert", filepath.Join(testDataDir, "simple.yaml"), "--output", outFile)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	outData, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.JSONEq(t, simpleDraft4, string(outData))

	multiDir := filepath.Join(outDir, "multi")
	_, _, err = run(t, "convert", "-o", multiDir,
		filepath.Join(testDataDir, "simple.yaml"),
		filepath.Join(testDataDir, "friends.json"),
	)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(multiDir, "simple.schema.json"))
	assert.FileExists(t, filepath.Join(multiDir, "friends.schema.json"))
}

func TestConvertCmdMatchesLibrary(t *testing.T) {
	file := filepath.Join(testDataDir, "friends.json")

	stdout, _, err := run(t, "convert", file)
	require.NoError(t, err)

	root, err := schema.LoadFile(file)
	require.NoError(t, err)
	doc, err := hammer.ToJSONSchema(root)
	require.NoError(t, err)
	want, err := doc.JSON()
	require.NoError(t, err)

	assert.Equal(t, string(want)+"\n", stdout)
	assert.Contains(t, stdout, `"minItems": 2`)
	assert.Contains(t, stdout, `"maximum": 9999`)
}

func TestConvertCmdErrors(t *testing.T) {
	tcs := map[string]struct {
		wantErr error
		args    []string
	}{
		"unsupported draft": {
			args:    []string{"convert", "--draft", "7", filepath.Join(testDataDir, "simple.yaml")},
			wantErr: hammer.ErrUnsupportedDraft,
		},
		"unknown format": {
			args:    []string{"convert", "--format", "toml", filepath.Join(testDataDir, "simple.yaml")},
			wantErr: commands.ErrInvalidArgument,
		},
		"unknown kind": {
			args:    []string{"convert", filepath.Join(testDataDir, "unknown_kind.yaml")},
			wantErr: hammer.ErrInvalid,
		},
		"draft 3 check": {
			args:    []string{"convert", "--draft", "3", "--check", filepath.Join(testDataDir, "simple.yaml")},
			wantErr: jsonschema.ErrDraftNotCheckable,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, _, err := run(t, "convert")
	require.Error(t, err)
}

func TestCheckCmd(t *testing.T) {
	simple := filepath.Join(testDataDir, "simple.yaml")
	friends := filepath.Join(testDataDir, "friends.json")

	stdout, _, err := run(t, "check", simple, friends)
	require.NoError(t, err)
	assert.Equal(t, "ok\t"+simple+"\nok\t"+friends+"\n", stdout)

	_, _, err = run(t, "check", filepath.Join(testDataDir, "broken.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sequence needs exactly one item")
}

func TestKindsCmd(t *testing.T) {
	stdout, _, err := run(t, "kinds")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Contains(t, lines, "kind:mapping")
	assert.Contains(t, lines, "kind:tuple")
	assert.Contains(t, lines, "type:schema.IntType")
	assert.IsNonDecreasing(t, lines)

	_, _, err = run(t, "kinds", "--draft", "5")
	assert.ErrorIs(t, err, hammer.ErrUnsupportedDraft)
}

func TestRootCmdArgs(t *testing.T) {
	tcs := map[string]struct {
		wantErr   error
		logLevel  string
		logFormat string
	}{
		"default config": {
			logLevel:  "warn",
			logFormat: "text",
		},
		"json format": {
			logLevel:  "info",
			logFormat: "json",
		},
		"logfmt debug": {
			logLevel:  "debug",
			logFormat: "logfmt",
		},
		"invalid log level": {
			logLevel:  "invalid",
			logFormat: "text",
			wantErr:   commands.ErrLogHandlerFailed,
		},
		"invalid log format": {
			logLevel:  "warn",
			logFormat: "invalid",
			wantErr:   commands.ErrLogHandlerFailed,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := run(t, "--log_level", tc.logLevel, "--log_format", tc.logFormat, "version")

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Regexp(t, `\d+\.\d+\.\d+`, stdout)
			}
		})
	}
}

func TestRootCmdArgPointers(t *testing.T) {
	args := commands.NewRootArgs()

	assert.Empty(t, args.GetLogLevel())
	assert.Empty(t, args.GetLogFormat())
}
