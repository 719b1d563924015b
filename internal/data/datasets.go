package data

import (
	"os"
	"path/filepath"
	"strings"
)

// Dataset describes one discoverable hashrate CSV.
type Dataset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// ListDatasets enumerates the *.csv files directly under dir.
func ListDatasets(dir string) ([]Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing data directory is an empty catalog, not an error.
			return nil, nil
		}
		return nil, err
	}

	var out []Dataset
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".csv")
		out = append(out, Dataset{
			ID:   id,
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
		})
	}
	return out, nil
}

// DefaultDataDir returns where datasets are looked up.
func DefaultDataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "./examples"
}
