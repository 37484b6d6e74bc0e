package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager organizes files written by the service into per-ID directories
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateOutputDir creates the directory holding files for id
func (om *OutputManager) CreateOutputDir(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("invalid output id: %q", id)
	}
	dir := filepath.Join(om.BaseOutputDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return dir, nil
}

// GetOutputFilePath generates a full path for an output file
func (om *OutputManager) GetOutputFilePath(id, fileName string) (string, error) {
	dir, err := om.CreateOutputDir(id)
	if err != nil {
		return "", err
	}

	// Clean the filename to remove any path separators
	cleanFileName := filepath.Base(filepath.Clean("/" + fileName))
	if cleanFileName == "/" || cleanFileName == "." {
		cleanFileName = "upload.csv"
	}

	return filepath.Join(dir, cleanFileName), nil
}

// Save writes data to fileName under id's directory and returns the path
func (om *OutputManager) Save(id, fileName string, data []byte) (string, error) {
	path, err := om.GetOutputFilePath(id, fileName)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// FileType determines the file type based on extension
func FileType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".png":
		return "png"
	case ".txt":
		return "text"
	default:
		return "unknown"
	}
}

// EnsureOutputDirExists ensures the base output directory exists
func (om *OutputManager) EnsureOutputDirExists() error {
	return os.MkdirAll(om.BaseOutputDir, 0755)
}
