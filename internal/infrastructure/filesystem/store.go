package filesystem

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	domain "osmcad/internal/domain/conversion"
)

// Store manages uploaded inputs and produced drawing artifacts on disk.
type Store struct {
	UploadsDir string
	OutputsDir string
}

// NewStore creates a filesystem adapter with configured roots.
func NewStore(uploadsDir, outputsDir string) *Store {
	return &Store{UploadsDir: uploadsDir, OutputsDir: outputsDir}
}

// EnsureDirs creates the filesystem roots used by the service.
func (s *Store) EnsureDirs() error {
	if err := os.MkdirAll(s.UploadsDir, 0o755); err != nil {
		return err
	}
	return os.MkdirAll(s.OutputsDir, 0o755)
}

// ResolveInput validates a request-supplied input name and returns the full
// path inside the uploads root. Absolute paths are taken as-is so callers
// can convert files staged elsewhere.
func (s *Store) ResolveInput(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", errors.New("invalid file name")
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value), nil
	}

	full := filepath.Join(s.UploadsDir, filepath.FromSlash(value))
	if !isWithinDir(s.UploadsDir, full) {
		return "", errors.New("invalid file path")
	}
	return full, nil
}

// InputExists checks that an input file is present and not a directory.
func (s *Store) InputExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// OutputPath builds the artifact path for a file name, placed under the
// project subdirectory when a project reference is given.
func (s *Store) OutputPath(fileName, projectRef string) string {
	if projectRef != "" && isSafeSegment(projectRef) {
		return filepath.Join(s.OutputsDir, projectRef, fileName)
	}
	return filepath.Join(s.OutputsDir, fileName)
}

// StatsPath derives the statistics side-file path for an output artifact.
func (s *Store) StatsPath(outputPath string) string {
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".stats.json"
}

// PrepareOutput creates the directory that will hold an artifact.
func (s *Store) PrepareOutput(outputPath string) error {
	return os.MkdirAll(filepath.Dir(outputPath), 0o755)
}

// OutputSize returns the artifact size, or an error if it was not produced.
func (s *Store) OutputSize(outputPath string) (int64, error) {
	info, err := os.Stat(outputPath)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, errors.New("output is a directory")
	}
	return info.Size(), nil
}

// ReadStats parses a converter statistics side-file.
func (s *Store) ReadStats(statsPath string) (map[string]interface{}, error) {
	data, err := os.ReadFile(statsPath)
	if err != nil {
		return nil, err
	}
	stats := make(map[string]interface{})
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// FindOutput locates a produced drawing by file name, searching the outputs
// root first and then each per-project subdirectory.
func (s *Store) FindOutput(rawName string) (string, error) {
	name, err := domain.NormalizeDownloadName(rawName)
	if err != nil {
		return "", err
	}

	direct := filepath.Join(s.OutputsDir, name)
	if info, err := os.Stat(direct); err == nil && !info.IsDir() {
		return direct, nil
	}

	entries, err := os.ReadDir(s.OutputsDir)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := filepath.Join(s.OutputsDir, entry.Name(), name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", os.ErrNotExist
}

// EnsureParentDir creates the directory holding the given file path.
func EnsureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func isSafeSegment(segment string) bool {
	return segment != "" &&
		!strings.ContainsAny(segment, "/\\") &&
		segment != "." && segment != ".."
}

func isWithinDir(basePath, targetPath string) bool {
	baseAbs, err := filepath.Abs(basePath)
	if err != nil {
		return false
	}
	targetAbs, err := filepath.Abs(targetPath)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(baseAbs, targetAbs)
	if err != nil {
		return false
	}
	sep := string(os.PathSeparator)
	if rel == ".." || strings.HasPrefix(rel, ".."+sep) {
		return false
	}
	return true
}
