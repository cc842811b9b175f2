package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test data constants
const (
	testTemplateContent = "Hello, [[$user]]!"
	testDataYAML        = "values:\n  user: Alice\n"
	testExpectedOutput  = "Hello, Alice!"
)

// setupTestData creates template and data files in a temp directory.
func setupTestData(t *testing.T) (templatePath, dataPath string) {
	t.Helper()
	tmpDir := t.TempDir()

	templatePath = filepath.Join(tmpDir, "template.txt")
	require.NoError(t, os.WriteFile(templatePath, []byte(testTemplateContent), 0o644))

	dataPath = filepath.Join(tmpDir, "data.yaml")
	require.NoError(t, os.WriteFile(dataPath, []byte(testDataYAML), 0o644))

	return templatePath, dataPath
}

// ==================== run() dispatch tests ====================

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run(nil, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitOK, exitCode)
	assert.Contains(t, stdout.String(), CmdNameRender)
	assert.Contains(t, stdout.String(), CmdNameVersion)
}

func TestRun_HelpCommand(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{CmdNameHelp}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitOK, exitCode)
	assert.Contains(t, stdout.String(), CmdNameRender)
}

func TestRun_VersionCommand(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{CmdNameVersion}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitOK, exitCode)
	assert.Contains(t, stdout.String(), MsgVersionPrefix+Version)
}

func TestRun_UnknownCommand(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{"bogus"}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitUsage, exitCode)
	assert.Contains(t, stderr.String(), MsgUnknownCmd+"bogus")
}

// ==================== render command tests ====================

func TestRender_FromStdin(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	stdin := strings.NewReader("plain text, no spans")

	exitCode := runRender(nil, stdin, stdout, stderr)

	assert.Equal(t, ExitOK, exitCode)
	assert.Equal(t, "plain text, no spans", stdout.String())
}

func TestRender_TemplateFileWithData(t *testing.T) {
	templatePath, dataPath := setupTestData(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{
		FlagTemplateShort, templatePath,
		FlagDataShort, dataPath,
	}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitOK, exitCode)
	assert.Equal(t, testExpectedOutput, stdout.String())
}

func TestRender_StdinWithData(t *testing.T) {
	_, dataPath := setupTestData(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	stdin := strings.NewReader("greetings, [[$user]]")

	exitCode := runRender([]string{
		FlagData, dataPath,
	}, stdin, stdout, stderr)

	assert.Equal(t, ExitOK, exitCode)
	assert.Equal(t, "greetings, Alice", stdout.String())
}

func TestRender_CustomDelimiters(t *testing.T) {
	tmpDir := t.TempDir()
	dataPath := filepath.Join(tmpDir, "data.yaml")
	data := "values:\n  user: Alice\ndelimiters:\n  left: \"<<\"\n  right: \">>\"\n"
	require.NoError(t, os.WriteFile(dataPath, []byte(data), 0o644))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	stdin := strings.NewReader("hi <<$user>>, [[$user]] stays put")

	exitCode := runRender([]string{FlagDataShort, dataPath}, stdin, stdout, stderr)

	assert.Equal(t, ExitOK, exitCode)
	assert.Equal(t, "hi Alice, [[$user]] stays put", stdout.String())
}

func TestRender_SearchPath(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "greeting"), []byte("hello [[$user]]"), 0o644))
	_, dataPath := setupTestData(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{
		FlagPathShort, tmpDir,
		FlagTemplateShort, "greeting",
		FlagDataShort, dataPath,
	}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitOK, exitCode)
	assert.Equal(t, "hello Alice", stdout.String())
}

func TestRender_OutputFile(t *testing.T) {
	templatePath, dataPath := setupTestData(t)
	outDir := t.TempDir()
	outPath := filepath.Join(outDir, "result.txt")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{
		FlagTemplateShort, templatePath,
		FlagDataShort, dataPath,
		FlagOutputShort, outPath,
	}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitOK, exitCode)
	assert.Empty(t, stdout.String())

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, testExpectedOutput, string(content))
}

func TestRender_OutputNamePlaceholder(t *testing.T) {
	templatePath, dataPath := setupTestData(t)
	outDir := t.TempDir()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{
		FlagTemplateShort, templatePath,
		FlagDataShort, dataPath,
		FlagOutputShort, filepath.Join(outDir, "{name}.out"),
	}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitOK, exitCode)

	// template.txt renders to template.out
	content, err := os.ReadFile(filepath.Join(outDir, "template.out"))
	require.NoError(t, err)
	assert.Equal(t, testExpectedOutput, string(content))
}

func TestRender_StdinNamePlaceholder(t *testing.T) {
	outDir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	stdin := strings.NewReader("from stdin")

	exitCode := runRender([]string{
		FlagOutputShort, filepath.Join(outDir, "{name}.out"),
	}, stdin, stdout, stderr)

	assert.Equal(t, ExitOK, exitCode)

	content, err := os.ReadFile(filepath.Join(outDir, StdinTemplateName+".out"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(content))
}

func TestRender_MissingTemplateFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{
		FlagTemplateShort, filepath.Join(t.TempDir(), "absent.txt"),
	}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitError, exitCode)
	assert.Contains(t, stderr.String(), MsgErrorPrefix)
}

func TestRender_UnregisteredTag(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	stdin := strings.NewReader("broken [[#span]]")

	exitCode := runRender(nil, stdin, stdout, stderr)

	assert.Equal(t, ExitError, exitCode)
	assert.Contains(t, stderr.String(), MsgErrorPrefix)
}

func TestRender_BadDataFile(t *testing.T) {
	tmpDir := t.TempDir()
	dataPath := filepath.Join(tmpDir, "data.yaml")
	require.NoError(t, os.WriteFile(dataPath, []byte("values: [unclosed"), 0o644))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{FlagDataShort, dataPath}, strings.NewReader("x"), stdout, stderr)

	assert.Equal(t, ExitError, exitCode)
}

// ==================== flag parsing tests ====================

func TestParseRenderArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts, err := parseRenderArgs(nil)
		require.NoError(t, err)
		assert.Equal(t, FlagDefaultTemplate, opts.template)
		assert.Equal(t, FlagDefaultOutput, opts.output)
		assert.Empty(t, opts.dataFile)
		assert.Empty(t, opts.paths)
	})

	t.Run("long flags", func(t *testing.T) {
		opts, err := parseRenderArgs([]string{
			FlagTemplate, "t.txt",
			FlagData, "d.yaml",
			FlagOutput, "o.txt",
			FlagPath, "dir1",
			FlagPath, "dir2",
		})
		require.NoError(t, err)
		assert.Equal(t, "t.txt", opts.template)
		assert.Equal(t, "d.yaml", opts.dataFile)
		assert.Equal(t, "o.txt", opts.output)
		assert.Equal(t, []string{"dir1", "dir2"}, opts.paths)
	})

	t.Run("missing flag value", func(t *testing.T) {
		_, err := parseRenderArgs([]string{FlagTemplateShort})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgMissingFlagValue)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := parseRenderArgs([]string{"--bogus"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownFlag)
	})
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "template", baseName("/tmp/dir/template.txt"))
	assert.Equal(t, "template", baseName("template.txt"))
	assert.Equal(t, "template", baseName("template"))
	assert.Equal(t, "greeting", baseName("sub/greeting"))
}
