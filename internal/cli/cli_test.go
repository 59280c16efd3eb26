package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/rootplot/internal/domain"
)

const sampleArchive = "../infra/yamlarchive/testdata/run1.yaml"

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// rows splits ls output into whitespace separated cells.
func rows(out string) [][]string {
	var rs [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		rs = append(rs, strings.Fields(line))
	}
	return rs
}

var sectorRows = [][]string{
	{"hEffSector_W0", "TEfficiency", "1"},
	{"hTiming", "TH1F", "1"},
}

func TestLsRoot(t *testing.T) {
	out, _, err := execute(t, "ls", sampleArchive)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"summary", "TH1F", "2"},
		{"DQM/", "TDirectoryFile", "1"},
	}, rows(out))
}

func TestLsAllCycles(t *testing.T) {
	out, _, err := execute(t, "ls", "--all", sampleArchive)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"summary", "TH1F", "1"},
		{"summary", "TH1F", "2"},
		{"DQM/", "TDirectoryFile", "1"},
	}, rows(out))
}

func TestLsFolder(t *testing.T) {
	out, _, err := execute(t, "ls", sampleArchive, "DQM/Sector")
	require.NoError(t, err)
	require.Equal(t, sectorRows, rows(out))
	require.NotContains(t, out, "│")
}

func TestLsMissingFolder(t *testing.T) {
	_, _, err := execute(t, "ls", sampleArchive, "Nope")
	require.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)
}

func TestPrintPrettyRun(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	run := domain.RunArtifact{
		ConfigPath: "plots.json",
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		Jobs: []domain.JobResult{
			{
				Name: "timing", Comment: "two runs", Inputs: 2,
				Groups: []domain.GroupResult{{Name: "hTiming", Objects: 2, Files: []string{"plots/timing.png", "plots/timing.pdf"}}},
			},
			{Name: "eff", Inputs: 1, Error: "boom"},
		},
		Error: "boom",
	}

	var buf bytes.Buffer
	require.NoError(t, printRun(&buf, run, "abc", "pretty"))
	newGolden(t).Assert(t, "run_pretty", buf.Bytes())
}

func TestPrintRunRejectsFormat(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, printRun(&buf, domain.RunArtifact{}, "", "xml"))

	_, _, err := execute(t, "plots.json", "--format", "xml")
	require.ErrorContains(t, err, "unsupported format")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "rootplot ")
	require.Contains(t, out, "commit=none")
}

func TestInitValidateAndRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, _, err := execute(t, "init")
	require.NoError(t, err)
	require.Contains(t, out, "Initialized rootplot project")
	require.FileExists(t, filepath.Join(dir, "rootplot.yaml"))

	out, _, err = execute(t, "validate", "plots.json")
	require.NoError(t, err)
	require.Contains(t, out, "- timing (2 input(s))")
	require.Contains(t, out, "OK")

	out, _, err = execute(t, "plots.json", "--fast", "-v", "0", "--format", "json")
	require.NoError(t, err)

	var payload struct {
		RunID string             `json:"run_id"`
		Run   domain.RunArtifact `json:"run"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Empty(t, payload.RunID)
	require.Len(t, payload.Run.Jobs, 2)
	require.Equal(t, 3, payload.Run.FileCount())

	for _, p := range []string{
		"plots/timing.png",
		"plots/timing.pdf",
		"plots/efficiency/hEffSector_W0.png",
	} {
		info, err := os.Stat(filepath.Join(dir, p))
		require.NoError(t, err, p)
		require.Positive(t, info.Size(), p)
	}
	require.NoDirExists(t, filepath.Join(dir, "runs"))
}

func TestRunJobFilterAndManifest(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := execute(t, "init")
	require.NoError(t, err)

	out, _, err := execute(t, "plots.json", "-f", "-v", "0", "--job", "efficiency", "--manifest", "runs")
	require.NoError(t, err)
	require.Contains(t, out, "[OK] efficiency")
	require.NotContains(t, out, "timing")
	require.Contains(t, out, "Run ID:")

	entries, err := os.ReadDir(filepath.Join(dir, "runs"))
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	require.NoFileExists(t, filepath.Join(dir, "plots", "timing.png"))
}

func TestRunUnknownJob(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := execute(t, "init")
	require.NoError(t, err)

	_, _, err = execute(t, "plots.json", "-v", "0", "--job", "nope")
	require.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)
}

func TestConvertToSQLite(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "run1.db")
	out, _, err := execute(t, "convert", sampleArchive, dst, "-v", "0")
	require.NoError(t, err)
	require.Contains(t, out, "object(s) written")

	out, _, err = execute(t, "ls", dst, "DQM/Sector")
	require.NoError(t, err)
	require.Equal(t, sectorRows, rows(out))

	out, _, err = execute(t, "ls", "-a", dst)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"summary", "TH1F", "1"},
		{"summary", "TH1F", "2"},
		{"DQM/", "TDirectoryFile", "1"},
	}, rows(out))
}

func TestBrowseWarnsWhenLoggingFails(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, errOut, err := execute(t, "browse", "missing.yaml", "--log-file", filepath.Join(blocker, "rootplot.log"))
	require.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)
	require.Contains(t, errOut, "warning: logging disabled")
}

func TestPrintErrorHints(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, &domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: "plots.json"})
	require.Equal(t, "Error: config.load: invalid_config [plots.json]\ntip: `rootplot validate CONFIG` lists every config problem\n", buf.String())

	buf.Reset()
	printError(&buf, errors.New("boom"))
	require.Equal(t, "Error: boom\n", buf.String())
}
