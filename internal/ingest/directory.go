// Package ingest discovers analysis JSON files in the drop directory, either
// by a one-shot walk or by watching for new arrivals.
package ingest

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/kshoda-lgtm/8CUBE-promotion/constants"
)

// DirStats aggregates one discovery walk.
type DirStats struct {
	Scanned  uint32
	Matched  uint32
	Excluded uint32
}

// DiscoverJSON walks root and returns every .json file, skipping hidden
// entries and aggregate batch-summary files. The exclusion happens here, up
// front, so the orchestrator never sees summary files at all.
func DiscoverJSON(root string) ([]string, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, fmt.Errorf("root path is required")
	}

	var files []string
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		stats.Scanned++
		if isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !Eligible(path) {
			if strings.HasSuffix(strings.ToLower(path), ".json") {
				stats.Excluded++
			}
			return nil
		}
		stats.Matched++
		files = append(files, path)
		return nil
	})
	if err != nil {
		return files, stats, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, stats, nil
}

// Eligible reports whether a path is a processable analysis file: a .json
// that is not a batch-summary aggregate.
func Eligible(path string) bool {
	name := filepath.Base(path)
	if !strings.HasSuffix(strings.ToLower(name), ".json") {
		return false
	}
	return !strings.Contains(name, constants.SummaryFileMarker)
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
