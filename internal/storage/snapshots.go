package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"resumi/internal/logging"
	"resumi/pkg/models"
)

const (
	rawDirName        = "jobs_raw"
	normalizedDirName = "jobs_normalized"
	timestampLayout   = "20060102_150405"
)

// SnapshotStore persists job collection runs as timestamped JSON files under
// the data directory. Filenames sort lexicographically by timestamp, so the
// newest snapshot is always the last name in sorted order.
type SnapshotStore struct {
	dataDir string
}

func NewSnapshotStore(dataDir string) *SnapshotStore {
	return &SnapshotStore{dataDir: dataDir}
}

// SaveRawJobs writes a raw collection batch to a timestamped snapshot.
func (s *SnapshotStore) SaveRawJobs(jobs []models.RawJob) error {
	return s.writeSnapshot(rawDirName, "jobs", jobs, len(jobs))
}

// SaveNormalizedJobs writes a normalized batch to a timestamped snapshot.
func (s *SnapshotStore) SaveNormalizedJobs(jobs []*models.NormalizedJob) error {
	return s.writeSnapshot(normalizedDirName, "jobs_normalized", jobs, len(jobs))
}

// LoadLatestNormalizedJobs reads the most recent normalized snapshot.
// Returns an empty slice when no snapshots exist.
func (s *SnapshotStore) LoadLatestNormalizedJobs() ([]*models.NormalizedJob, error) {
	path, err := s.latestSnapshot(normalizedDirName, "jobs_normalized")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var jobs []*models.NormalizedJob
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}

	logging.GetGlobalLogger().Info("Loaded normalized job snapshot", map[string]interface{}{
		"file": filepath.Base(path),
		"jobs": len(jobs),
	})
	return jobs, nil
}

// LoadLatestRawJobs reads the most recent raw snapshot.
func (s *SnapshotStore) LoadLatestRawJobs() ([]models.RawJob, error) {
	path, err := s.latestSnapshot(rawDirName, "jobs")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var jobs []models.RawJob
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return jobs, nil
}

func (s *SnapshotStore) writeSnapshot(dirName, prefix string, v interface{}, count int) error {
	dir := filepath.Join(s.dataDir, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	timestamp := time.Now().UTC().Format(timestampLayout)
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", prefix, timestamp))

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}

	logging.GetGlobalLogger().Info("Saved job snapshot", map[string]interface{}{
		"file": filepath.Base(path),
		"jobs": count,
	})
	return nil
}

// latestSnapshot returns the path of the newest matching snapshot file, or
// empty when the directory has none.
func (s *SnapshotStore) latestSnapshot(dirName, prefix string) (string, error) {
	dir := filepath.Join(s.dataDir, dirName)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to list snapshot directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix+"_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return "", nil
	}

	sort.Strings(names)
	return filepath.Join(dir, names[len(names)-1]), nil
}
