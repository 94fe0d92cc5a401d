package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vacancy-stats/internal/stats"
)

// PlatformResult is one platform's table as stored in the archive.
type PlatformResult struct {
	Platform string                `json:"platform"`
	Title    string                `json:"title"`
	Stats    []stats.LanguageStats `json:"stats"`
}

type archive struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Platforms   []PlatformResult `json:"platforms"`
}

// SaveResults writes results to dir/vacancy-stats-YYYY-MM-DD.json and returns
// the file path.
func SaveResults(dir string, now time.Time, results []PlatformResult) (string, error) {
	//create results directory if not exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	filename := fmt.Sprintf("vacancy-stats-%s.json", now.Format("2006-01-02"))
	filePath := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(archive{GeneratedAt: now, Platforms: results}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write results file: %w", err)
	}
	return filePath, nil
}
