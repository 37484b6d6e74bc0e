package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"feedback-dashboard/internal/config"
	"feedback-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
		assert.NotEmpty(t, cmd.Short, cmd.Name())
	}
	assert.True(t, names["serve"])
	assert.True(t, names["report"])
	assert.True(t, names["classify"])
	assert.NotNil(t, reportCmd.Flags().Lookup("output"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	dataset := filepath.Join(dir, "feedback.csv")
	require.NoError(t, os.WriteFile(dataset, []byte("Sentiment_Label\nPositive\nPositive\nNegative\nNeutral\nPositive\n"), 0o644))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("insights:\n  dir: "+dir+"\nlogging:\n  level: error\n"), 0o600))
	chartPath := filepath.Join(dir, "sentiment.png")
	exportPath := filepath.Join(dir, "counts.csv")

	out, err := runCLI(t, "report", "--config", cfgPath, "--file", dataset, "--output", "json", "--chart", chartPath, "--export", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"total": 5`)
	assert.Contains(t, out, `"percentage": 60`)
	assert.FileExists(t, chartPath)

	exported, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Equal(t, "Sentiment,Count\nPositive,3\nNegative,1\nNeutral,1\n", string(exported))
}

func TestReportCommandMissingDataset(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "report", "--config", filepath.Join(dir, "none.yaml"), "--file", filepath.Join(dir, "absent.csv"), "--chart", "", "--export", "")
	require.Error(t, err)
	assert.True(t, model.IsMissingDataset(err))
}

func TestClassifyCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("classifier:\n  seed: 3\nlogging:\n  level: error\n"), 0o600))

	out, err := runCLI(t, "classify", "--config", cfgPath, "late", "delivery")
	require.NoError(t, err)
	assert.Contains(t, out, "label:")
	assert.Contains(t, out, "Summary: Customer feels")
}

func TestServeFailsWithoutDefaultDataset(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Dataset.Path = filepath.Join(dir, "absent.csv")
	cfg.Store.DSN = filepath.Join(dir, "feedback.db")
	cfg.Upload.ArchiveDir = filepath.Join(dir, "uploads")
	cfg.Insights.Dir = dir
	cfg.Insights.Watch = false

	err := serve(context.Background(), &cfg, zap.NewNop())
	require.Error(t, err)
	assert.True(t, model.IsMissingDataset(err))
	assert.NoFileExists(t, cfg.Store.DSN)
	assert.NoDirExists(t, cfg.Upload.ArchiveDir)
}

func TestServeFailsWithMalformedDefaultDataset(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Dataset.Path = filepath.Join(dir, "feedback.csv")
	cfg.Store.DSN = filepath.Join(dir, "feedback.db")
	cfg.Upload.ArchiveDir = filepath.Join(dir, "uploads")
	cfg.Insights.Dir = dir
	cfg.Insights.Watch = false
	require.NoError(t, os.WriteFile(cfg.Dataset.Path, []byte("Feedback_ID,Feedback_Text\n1,hi\n"), 0o644))

	err := serve(context.Background(), &cfg, zap.NewNop())
	require.Error(t, err)
	assert.True(t, model.IsMalformedTable(err))
	assert.NoFileExists(t, cfg.Store.DSN)
	assert.NoDirExists(t, cfg.Upload.ArchiveDir)
}
