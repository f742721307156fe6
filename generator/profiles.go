package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"app/models"
)

// DefaultProfiles returns the built-in product catalog. The SKUs and their
// demand parameters must stay in sync with the frontend's mock catalog.
func DefaultProfiles() []models.ProductProfile {
	return []models.ProductProfile{
		{
			SKU: "ELEC-PCB-001", Name: "Circuit Board PCB-A1", Category: "Electronics", Location: "Warehouse A",
			UnitCost: 12.50, SellPrice: 24.99, LeadTimeDays: 7, BaseDailyDemand: 8,
			Trend: 0.003, SeasonalPeakMonth: 11, SeasonalAmplitude: 0.4, // Nov peak (holiday electronics)
		},
		{
			SKU: "RAW-COP-014", Name: "Copper Wire Spool 14AWG", Category: "Raw Materials", Location: "Warehouse B",
			UnitCost: 45.00, SellPrice: 72.00, LeadTimeDays: 14, BaseDailyDemand: 3,
			Trend: 0.001, SeasonalPeakMonth: 3, SeasonalAmplitude: 0.35, // construction season
		},
		{
			SKU: "OFF-PAP-A4R", Name: "A4 Copy Paper (Ream)", Category: "Office Supplies", Location: "Storage Room 1",
			UnitCost: 4.25, SellPrice: 8.99, LeadTimeDays: 3, BaseDailyDemand: 15,
			Trend: -0.001, SeasonalPeakMonth: 9, SeasonalAmplitude: 0.25, // slight decline, back-to-office peak
		},
		{
			SKU: "TLS-DRL-SET", Name: "Industrial Drill Bit Set", Category: "Tools & Equipment", Location: "Storage Room 2",
			UnitCost: 89.99, SellPrice: 149.99, LeadTimeDays: 10, BaseDailyDemand: 1,
			Trend: 0.002, SeasonalPeakMonth: 4, SeasonalAmplitude: 0.3,
		},
		{
			SKU: "PKG-BOX-12C", Name: "Cardboard Box 12x12x12", Category: "Packaging", Location: "Loading Dock",
			UnitCost: 1.20, SellPrice: 2.50, LeadTimeDays: 5, BaseDailyDemand: 40,
			Trend: 0.004, SeasonalPeakMonth: 12, SeasonalAmplitude: 0.5, // holiday shipping
		},
		{
			SKU: "SAF-GOG-PRO", Name: "Safety Goggles Pro", Category: "Safety Gear", Location: "Storage Room 1",
			UnitCost: 15.00, SellPrice: 29.99, LeadTimeDays: 7, BaseDailyDemand: 3,
			Trend: 0.001, SeasonalPeakMonth: 6, SeasonalAmplitude: 0.2,
		},
		{
			SKU: "ELEC-LED-7S", Name: "LED Display Module 7-Seg", Category: "Electronics", Location: "Warehouse A",
			UnitCost: 3.75, SellPrice: 8.50, LeadTimeDays: 7, BaseDailyDemand: 12,
			Trend: 0.005, SeasonalPeakMonth: 10, SeasonalAmplitude: 0.3, // growing demand (IoT)
		},
		{
			SKU: "RAW-ALU-4X8", Name: "Aluminum Sheet 4x8ft", Category: "Raw Materials", Location: "Warehouse B",
			UnitCost: 120.00, SellPrice: 195.00, LeadTimeDays: 14, BaseDailyDemand: 2,
			Trend: 0.002, SeasonalPeakMonth: 5, SeasonalAmplitude: 0.25,
		},
		{
			SKU: "PKG-BWR-12R", Name: "Bubble Wrap Roll 12in", Category: "Packaging", Location: "Loading Dock",
			UnitCost: 18.50, SellPrice: 34.99, LeadTimeDays: 5, BaseDailyDemand: 8,
			Trend: 0.003, SeasonalPeakMonth: 12, SeasonalAmplitude: 0.45,
		},
		{
			SKU: "SAF-HHT-CLE", Name: "Hard Hat Class E", Category: "Safety Gear", Location: "Storage Room 2",
			UnitCost: 22.00, SellPrice: 44.99, LeadTimeDays: 7, BaseDailyDemand: 2,
			Trend: 0.001, SeasonalPeakMonth: 6, SeasonalAmplitude: 0.2,
		},
		{
			SKU: "ELEC-USB-C6", Name: "USB-C Cable 6ft", Category: "Electronics", Location: "Warehouse A",
			UnitCost: 2.10, SellPrice: 7.99, LeadTimeDays: 5, BaseDailyDemand: 20,
			Trend: 0.006, SeasonalPeakMonth: 11, SeasonalAmplitude: 0.4, // strong growth
		},
		{
			SKU: "OFF-MRK-12P", Name: "Whiteboard Markers (12pk)", Category: "Office Supplies", Location: "Storage Room 1",
			UnitCost: 8.99, SellPrice: 16.99, LeadTimeDays: 3, BaseDailyDemand: 4,
			Trend: 0.0, SeasonalPeakMonth: 9, SeasonalAmplitude: 0.2,
		},
	}
}

// LoadProfiles reads a product catalog from a JSON file (an array of
// profiles in the ProductProfile field layout).
func LoadProfiles(path string) ([]models.ProductProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}
	var profiles []models.ProductProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file: %w", err)
	}
	return profiles, nil
}

// ValidateProfiles checks every profile and reports all offenders, not just
// the first. A non-nil error aborts the run before any synthesis begins.
func ValidateProfiles(profiles []models.ProductProfile) error {
	var errs []error
	for _, p := range profiles {
		if p.SKU == "" {
			errs = append(errs, fmt.Errorf("%w: profile with empty sku", ErrInvalidProfile))
			continue
		}
		if p.LeadTimeDays <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s: lead_time_days must be positive, got %d", ErrInvalidProfile, p.SKU, p.LeadTimeDays))
		}
		if p.BaseDailyDemand <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s: base_daily_demand must be positive, got %g", ErrInvalidProfile, p.SKU, p.BaseDailyDemand))
		}
		if p.SeasonalPeakMonth < 1 || p.SeasonalPeakMonth > 12 {
			errs = append(errs, fmt.Errorf("%w: %s: seasonal_peak_month must be 1-12, got %d", ErrInvalidProfile, p.SKU, p.SeasonalPeakMonth))
		}
		if p.SeasonalAmplitude < 0 || p.SeasonalAmplitude > 1 {
			errs = append(errs, fmt.Errorf("%w: %s: seasonal_amplitude must be in [0, 1], got %g", ErrInvalidProfile, p.SKU, p.SeasonalAmplitude))
		}
	}
	return errors.Join(errs...)
}
