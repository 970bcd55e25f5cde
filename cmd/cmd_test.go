package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/batch"
	"github.com/spigell/resume-analyzer/internal/roles"
	"github.com/spigell/resume-analyzer/internal/taxonomy"
)

const (
	testJob    = "DevOps Engineer. Required skills: Kubernetes, Docker, Terraform, AWS."
	testResume = "Jane Doe\njane@example.com\nSKILLS\nDocker, Python\n5 years of experience\nBachelor of Science"
)

func newSession(t *testing.T) (*session, *bytes.Buffer) {
	t.Helper()

	a := analysis.New(taxonomy.Default(), roles.DefaultRequirementConfig(), nil)
	result, err := a.Analyze(analysis.Input{Name: "jane.txt", ResumeText: testResume, JobText: testJob})
	require.NoError(t, err)

	var out bytes.Buffer
	return &session{out: &out, logger: zap.NewNop(), result: result}, &out
}

func TestHandleAction(t *testing.T) {
	t.Parallel()

	t.Run("print report", func(t *testing.T) {
		t.Parallel()
		s, out := newSession(t)
		require.NoError(t, s.handleAction(PromptPrintReport))
		assert.Contains(t, out.String(), "Job Role: DevOps Engineer")
	})

	t.Run("skill gaps", func(t *testing.T) {
		t.Parallel()
		s, out := newSession(t)
		require.NoError(t, s.handleAction(PromptSkillGaps))
		assert.Contains(t, out.String(), "Kubernetes [Critical]")
	})

	t.Run("certifications", func(t *testing.T) {
		t.Parallel()
		s, out := newSession(t)
		require.NoError(t, s.handleAction(PromptCertifications))
		assert.Contains(t, out.String(), "(DevOps Engineer, ")
	})

	t.Run("exit", func(t *testing.T) {
		t.Parallel()
		s, _ := newSession(t)
		assert.ErrorIs(t, s.handleAction(PromptExit), errExit)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		s, _ := newSession(t)
		assert.EqualError(t, s.handleAction("dance"), "invalid action: dance")
	})
}

func TestSaveReport(t *testing.T) {
	t.Parallel()

	s, _ := newSession(t)
	path := filepath.Join(t.TempDir(), "report.txt")
	s.reportFile = path

	require.NoError(t, s.handleAction(PromptSaveReport))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s.result.Report+"\n", string(data))
}

func TestSaveReportAsksForPath(t *testing.T) {
	t.Parallel()

	s, _ := newSession(t)
	path := filepath.Join(t.TempDir(), "asked.txt")
	s.askPath = func() (string, error) { return path, nil }

	require.NoError(t, s.handleAction(PromptSaveReport))
	assert.Equal(t, path, s.reportFile)
	assert.FileExists(t, path)

	s.reportFile = ""
	s.askPath = func() (string, error) { return "", errors.New("interrupted") }
	assert.EqualError(t, s.handleAction(PromptSaveReport), "interrupted")
}

func TestDumpToTmpFile(t *testing.T) {
	t.Parallel()

	s, _ := newSession(t)
	filename, err := dumpToTmpFile(s.result)
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(filename) })

	data, err := os.ReadFile(filename)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "jane.txt", decoded["name"])
	assert.Contains(t, decoded, "ats_checklist")
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{name: "nil", config: nil, wantErr: true},
		{name: "valid", config: &Config{Batch: &BatchConfig{Workers: 2, Format: "csv"}}},
		{name: "missing batch", config: &Config{}, wantErr: true},
		{name: "bad format", config: &Config{Batch: &BatchConfig{Format: "xml"}}, wantErr: true},
		{name: "too many workers", config: &Config{Batch: &BatchConfig{Workers: 1000, Format: "json"}}, wantErr: true},
		{name: "empty skill", config: &Config{Skills: []string{"Go", ""}, Batch: &BatchConfig{Format: "json"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateConfig(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadTables(t *testing.T) {
	t.Parallel()

	tables, err := loadTables("")
	require.NoError(t, err)
	assert.Same(t, taxonomy.Default(), tables)

	_, err = loadTables(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	overlay := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("default-skills:\n  - Go\n  - Rust\n"), 0o600))

	tables, err = loadTables(overlay)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, tables.DefaultSkills())
}

func TestWriteRows(t *testing.T) {
	t.Parallel()

	rows := []batch.Row{{Name: "a.pdf", ATS: 70}, {Name: "b.pdf", ATS: 30}}

	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf, "json", rows))

	var decoded struct {
		Rows    []batch.Row   `json:"rows"`
		Summary batch.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rows, decoded.Rows)
	assert.Equal(t, 2, decoded.Summary.Total)

	buf.Reset()
	require.NoError(t, writeRows(&buf, "csv", rows))
	assert.True(t, strings.HasPrefix(buf.String(), "Resume,ATS Score,"))

	assert.Error(t, writeRows(&buf, "xml", rows))
}
