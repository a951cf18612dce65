package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/codemap/core/config"
	"github.com/tristendillon/codemap/core/models"
	"github.com/tristendillon/codemap/core/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		analyzeID, analyzeMode, analyzeStdout = "", "", false
		graphID, watchID = "", ""
		force = false
		logfile, logLevel, verbose = "", "info", false
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestProjectID(t *testing.T) {
	id, err := projectID("given", "/tmp/whatever")
	require.NoError(t, err)
	assert.Equal(t, "given", id)

	id, err = projectID("", filepath.Join(t.TempDir(), "shop"))
	require.NoError(t, err)
	assert.Equal(t, "shop", id)
}

func TestStoreRelPath(t *testing.T) {
	root := t.TempDir()

	rel, ok := storeRelPath(root, filepath.Join(root, "out", "analysis"))
	assert.True(t, ok)
	assert.Equal(t, "out/analysis", rel)

	_, ok = storeRelPath(root, filepath.Join(filepath.Dir(root), "elsewhere"))
	assert.False(t, ok)
}

func TestAnalyzeAndGraphCommands(t *testing.T) {
	project := testutil.WriteTree(t, map[string]string{
		"package.json": `{"dependencies": {"react": "^18.0.0"}}`,
		"src/App.jsx":  "export default function App() {}\n",
	})
	t.Chdir(t.TempDir())

	out, err := run(t, "analyze", project, "--id", "shop", "--stdout")
	require.NoError(t, err)

	var result models.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, models.NodeApplication, result.ProjectType)
	assert.FileExists(t, filepath.Join("analysis", "shop_analysis.json"))

	out, err = run(t, "graph", project, "--id", "shop")
	require.NoError(t, err)
	assert.Contains(t, out, "shop:")
	assert.FileExists(t, filepath.Join("analysis", "shop_workflow_graph.json"))

	_, err = run(t, "simple-graph", "shop")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join("analysis", "shop_simple_graph.json"))
}

func TestAnalyzeRejectsUnknownMode(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := run(t, "analyze", ".", "--mode", "fuzzy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuzzy")
}

func TestAnalyzeMissingPath(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := run(t, "analyze", "does-not-exist")
	require.Error(t, err)
}

func TestInitWritesConfigOnce(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully wrote")
	require.FileExists(t, filepath.Join(dir, config.FileName))

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("detector:\n  mode: coverage\n"), 0o644))
	out, err = run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	cfg, err := config.LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, config.ModeCoverage, cfg.Detector.Mode)
}

func TestLogfileIsClosedAfterRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codemap.log")

	_, err := run(t, "--logfile", path, "--log-level", "warn", "version")
	require.NoError(t, err)
	assert.Nil(t, logHandle)
	assert.FileExists(t, path)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Codemap v")
}
