package generator_test

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"app/generator"
	"app/models"
)

func testProfile() models.ProductProfile {
	return models.ProductProfile{
		SKU:               "TEST-SKU-001",
		Name:              "Test Widget",
		Category:          "Testing",
		Location:          "Warehouse T",
		UnitCost:          1.00,
		SellPrice:         2.00,
		LeadTimeDays:      7,
		BaseDailyDemand:   10,
		Trend:             0.002,
		SeasonalPeakMonth: 11,
		SeasonalAmplitude: 0.4,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSynthesizeInvariants(t *testing.T) {
	p := testProfile()
	rng := rand.New(rand.NewSource(7))
	start, end := date(2023, 1, 1), date(2024, 2, 4)
	series := generator.Synthesize(p, start, end, rng)

	wantLen := int(end.Sub(start).Hours()/24) + 1
	if len(series) != wantLen {
		t.Fatalf("series length = %d; want %d", len(series), wantLen)
	}

	prevStock := int(p.BaseDailyDemand * 30)
	day := start
	for i, rec := range series {
		if rec.Date != day.Format("2006-01-02") {
			t.Fatalf("record %d: date = %s; want %s", i, rec.Date, day.Format("2006-01-02"))
		}
		if rec.QtySold < 0 {
			t.Fatalf("record %d: negative qty_sold %d", i, rec.QtySold)
		}
		if rec.QtyReceived < 0 {
			t.Fatalf("record %d: negative qty_received %d", i, rec.QtyReceived)
		}
		if rec.StockLevel < 0 {
			t.Fatalf("record %d: negative stock %d", i, rec.StockLevel)
		}
		if rec.QtySold > prevStock+rec.QtyReceived {
			t.Fatalf("record %d: sold %d exceeds available %d", i, rec.QtySold, prevStock+rec.QtyReceived)
		}
		if rec.StockLevel != prevStock+rec.QtyReceived-rec.QtySold {
			t.Fatalf("record %d: stock arithmetic broken", i)
		}
		if rec.IsAnomaly {
			t.Fatalf("record %d: synthesizer must not flag anomalies", i)
		}
		prevStock = rec.StockLevel
		day = day.AddDate(0, 0, 1)
	}
}

func TestSynthesizeDeterminism(t *testing.T) {
	p := testProfile()
	start, end := date(2023, 1, 1), date(2025, 12, 31)

	first := generator.Synthesize(p, start, end, rand.New(rand.NewSource(42)))
	second := generator.Synthesize(p, start, end, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed must reproduce the series bit for bit")
	}

	third := generator.Synthesize(p, start, end, rand.New(rand.NewSource(43)))
	if reflect.DeepEqual(first, third) {
		t.Fatal("different seeds produced identical series")
	}
}

func TestSynthesizeFlatProfileBaseline(t *testing.T) {
	// No trend, no seasonality: 90 days should average near the base demand
	// with a near-zero trend slope.
	p := testProfile()
	p.Trend = 0
	p.SeasonalAmplitude = 0

	rng := rand.New(rand.NewSource(11))
	series := generator.Synthesize(p, date(2023, 1, 1), date(2023, 3, 31), rng)
	if len(series) != 90 {
		t.Fatalf("series length = %d; want 90", len(series))
	}

	stats := generator.ComputeStats(series, p.LeadTimeDays)
	// Weekends pull the mean below base; stay within one std deviation band.
	if math.Abs(stats.AvgDailyDemand90d-p.BaseDailyDemand) > stats.StdDeviation30d {
		t.Errorf("avg 90d = %v; want within %v of %v", stats.AvgDailyDemand90d, stats.StdDeviation30d, p.BaseDailyDemand)
	}
	if math.Abs(stats.TrendSlope90d) > 0.1 {
		t.Errorf("trend slope = %v; want ~0", stats.TrendSlope90d)
	}
}

func TestSynthesizeEmptyRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	series := generator.Synthesize(testProfile(), date(2023, 2, 1), date(2023, 1, 1), rng)
	if len(series) != 0 {
		t.Fatalf("inverted range produced %d records; want 0", len(series))
	}
}
