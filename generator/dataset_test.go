package generator_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/generator"
	"app/models"
)

func TestBuildDatasetValidation(t *testing.T) {
	bad := testProfile()
	bad.SKU = "BAD-SKU-001"
	bad.LeadTimeDays = 0
	worse := testProfile()
	worse.SKU = "BAD-SKU-002"
	worse.BaseDailyDemand = -1
	worse.SeasonalPeakMonth = 13

	_, err := generator.BuildDataset([]models.ProductProfile{testProfile(), bad, worse}, generator.DefaultConfig())
	require.ErrorIs(t, err, generator.ErrInvalidProfile)
	// Every offender is reported, not just the first.
	assert.Contains(t, err.Error(), "BAD-SKU-001")
	assert.Contains(t, err.Error(), "BAD-SKU-002")
	assert.Contains(t, err.Error(), "seasonal_peak_month")
}

func TestBuildDatasetNoPartialOutput(t *testing.T) {
	cfg := generator.DefaultConfig()
	// A range too short to sample anomaly positions from fails the whole
	// run, even though synthesis itself succeeds.
	cfg.End = cfg.Start.AddDate(0, 0, 20)
	dataset, err := generator.BuildDataset([]models.ProductProfile{testProfile()}, cfg)
	require.ErrorIs(t, err, generator.ErrSeriesTooShort)
	assert.Nil(t, dataset)
}

func TestBuildDataset400Days(t *testing.T) {
	cfg := generator.DefaultConfig()
	cfg.End = cfg.Start.AddDate(0, 0, 399)

	dataset, err := generator.BuildDataset([]models.ProductProfile{testProfile()}, cfg)
	require.NoError(t, err)
	entry := dataset["TEST-SKU-001"]
	require.NotNil(t, entry)
	require.Len(t, entry.DailyData, 400)

	seen := make(map[string]bool, 400)
	anomalies := 0
	for _, rec := range entry.DailyData {
		require.False(t, seen[rec.Date], "duplicate date %s", rec.Date)
		seen[rec.Date] = true
		if rec.IsAnomaly {
			anomalies++
		}
	}
	assert.GreaterOrEqual(t, anomalies, 8)
	assert.Equal(t, entry.DailyData[len(entry.DailyData)-1].StockLevel, entry.Stats.CurrentStock)
	assert.Equal(t, "TEST-SKU-001", entry.Metadata.SKU)
}

func TestBuildDatasetDeterminism(t *testing.T) {
	profiles := generator.DefaultProfiles()
	cfg := generator.DefaultConfig()
	cfg.End = cfg.Start.AddDate(0, 0, 450)

	first, err := generator.BuildDataset(profiles, cfg)
	require.NoError(t, err)
	second, err := generator.BuildDataset(profiles, cfg)
	require.NoError(t, err)
	require.Equal(t, first, second)

	cfg.Seed = 1234
	third, err := generator.BuildDataset(profiles, cfg)
	require.NoError(t, err)
	require.NotEqual(t, first, third)
}

func TestDefaultProfilesAreValid(t *testing.T) {
	profiles := generator.DefaultProfiles()
	require.Len(t, profiles, 12)
	require.NoError(t, generator.ValidateProfiles(profiles))
}

func TestWriteAndReadDataset(t *testing.T) {
	cfg := generator.DefaultConfig()
	cfg.End = cfg.Start.AddDate(0, 0, 120)
	dataset, err := generator.BuildDataset([]models.ProductProfile{testProfile()}, cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "data", "inventory_history.json")
	require.NoError(t, generator.WriteDataset(dataset, path))

	// Field names are the wire format downstream consumers depend on.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, field := range []string{
		`"metadata"`, `"stats"`, `"daily_data"`,
		`"date"`, `"qty_sold"`, `"qty_received"`, `"stock_level"`, `"is_anomaly"`,
		`"avg_daily_demand_7d"`, `"seasonal_factors"`, `"days_until_stockout"`, `"yoy_change_pct"`,
	} {
		assert.True(t, strings.Contains(string(raw), field), "missing field %s", field)
	}

	loaded, err := generator.ReadDataset(path)
	require.NoError(t, err)
	require.Equal(t, dataset, loaded)
}
