package generator

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"app/models"
)

// Config controls a generation run.
type Config struct {
	Start time.Time
	End   time.Time
	Seed  int64
}

// DefaultConfig spans the same three-year window the shipped dataset covers.
func DefaultConfig() Config {
	return Config{
		Start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC),
		Seed:  42,
	}
}

// BuildDataset runs the full pipeline for every profile: validate, then per
// product synthesize -> inject anomalies -> aggregate stats. Profiles are
// processed in slice order against a single seeded random source, so the
// whole run is reproducible for a fixed seed. Any failure aborts the run;
// a partial dataset is never returned.
func BuildDataset(profiles []models.ProductProfile, cfg Config) (models.Dataset, error) {
	if err := ValidateProfiles(profiles); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	dataset := make(models.Dataset, len(profiles))

	for _, p := range profiles {
		series := Synthesize(p, cfg.Start, cfg.End, rng)
		if err := InjectAnomalies(series, rng); err != nil {
			return nil, fmt.Errorf("%s: %w", p.SKU, err)
		}
		dataset[p.SKU] = &models.SkuEntry{
			Metadata:  p.Metadata(),
			Stats:     ComputeStats(series, p.LeadTimeDays),
			DailyData: series,
		}
	}

	return dataset, nil
}

// WriteDataset exports a dataset as pretty-printed JSON, creating the parent
// directory if needed.
func WriteDataset(dataset models.Dataset, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}

// ReadDataset loads a previously exported dataset, the local fallback used
// by the API when no database is configured.
func ReadDataset(path string) (models.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	var dataset models.Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return dataset, nil
}
