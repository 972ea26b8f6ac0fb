package ingest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
)

// DirStats aggregates a directory scan.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Skipped uint32
}

// ListPanelSchedules walks root and returns the PDF files whose names match
// the panel-schedule keywords, in walk order. Hidden files and directories
// are skipped.
func ListPanelSchedules(root string) ([]string, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var paths []string
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		stats.Scanned++

		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			stats.Skipped++
			return nil
		}
		if !IsPanelSchedule(path) {
			stats.Skipped++
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return paths, stats, err
	}
	return paths, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
