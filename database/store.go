package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/jackc/pgx/v5"

	"app/models"
)

// The dataset is stored document-style: one row per SKU carrying metadata and
// stats as jsonb, plus the daily series chunked into one row per calendar
// month. This mirrors the layout the reporting endpoints expect.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS inventory_history (
	sku        TEXT PRIMARY KEY,
	metadata   JSONB NOT NULL,
	stats      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS inventory_daily (
	sku     TEXT NOT NULL REFERENCES inventory_history(sku) ON DELETE CASCADE,
	month   TEXT NOT NULL,
	records JSONB NOT NULL,
	PRIMARY KEY (sku, month)
);
`

// EnsureSchema creates the inventory tables if they do not exist yet.
func EnsureSchema(ctx context.Context) error {
	if _, err := DB.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveDataset upserts a generated dataset. Each SKU is written in its own
// transaction: the metadata+stats document first, then the daily series
// chunked by YYYY-MM month.
func SaveDataset(ctx context.Context, dataset models.Dataset) error {
	skus := make([]string, 0, len(dataset))
	for sku := range dataset {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	for _, sku := range skus {
		if err := saveSku(ctx, sku, dataset[sku]); err != nil {
			return fmt.Errorf("failed to save %s: %w", sku, err)
		}
		log.Printf("Seeded %s (%d daily records)", sku, len(dataset[sku].DailyData))
	}
	return nil
}

func saveSku(ctx context.Context, sku string, entry *models.SkuEntry) error {
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	stats, err := json.Marshal(entry.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	tx, err := DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO inventory_history (sku, metadata, stats, updated_at)
		VALUES ($1, $2::jsonb, $3::jsonb, now())
		ON CONFLICT (sku) DO UPDATE
		SET metadata = EXCLUDED.metadata, stats = EXCLUDED.stats, updated_at = now()
	`, sku, string(metadata), string(stats))
	if err != nil {
		return fmt.Errorf("failed to upsert history row: %w", err)
	}

	// Replace the monthly chunks wholesale; a regeneration may cover a
	// different date range than what is stored.
	if _, err := tx.Exec(ctx, `DELETE FROM inventory_daily WHERE sku = $1`, sku); err != nil {
		return fmt.Errorf("failed to clear daily chunks: %w", err)
	}

	for _, month := range chunkMonths(entry.DailyData) {
		records, err := json.Marshal(month.records)
		if err != nil {
			return fmt.Errorf("failed to marshal daily chunk %s: %w", month.key, err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO inventory_daily (sku, month, records)
			VALUES ($1, $2, $3::jsonb)
		`, sku, month.key, string(records))
		if err != nil {
			return fmt.Errorf("failed to insert daily chunk %s: %w", month.key, err)
		}
	}

	return tx.Commit(ctx)
}

type monthChunk struct {
	key     string // "2023-01"
	records []models.DailyRecord
}

// chunkMonths groups daily records by YYYY-MM, preserving date order inside
// each chunk and returning the chunks in month order.
func chunkMonths(daily []models.DailyRecord) []monthChunk {
	byMonth := make(map[string][]models.DailyRecord)
	for _, r := range daily {
		key := r.Date
		if len(key) >= 7 {
			key = key[:7]
		}
		byMonth[key] = append(byMonth[key], r)
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	chunks := make([]monthChunk, 0, len(keys))
	for _, k := range keys {
		chunks = append(chunks, monthChunk{key: k, records: byMonth[k]})
	}
	return chunks
}

// GetAllSkuStats fetches metadata + stats for every SKU.
func GetAllSkuStats(ctx context.Context) ([]models.SkuOverview, error) {
	rows, err := DB.Query(ctx, `SELECT sku, metadata, stats FROM inventory_history ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sku stats: %w", err)
	}
	defer rows.Close()

	var overviews []models.SkuOverview
	for rows.Next() {
		var (
			sku             string
			metadata, stats []byte
		)
		if err := rows.Scan(&sku, &metadata, &stats); err != nil {
			return nil, fmt.Errorf("failed to scan sku row: %w", err)
		}
		var ov models.SkuOverview
		if err := json.Unmarshal(metadata, &ov); err != nil {
			return nil, fmt.Errorf("failed to decode metadata for %s: %w", sku, err)
		}
		if err := json.Unmarshal(stats, &ov.SkuStats); err != nil {
			return nil, fmt.Errorf("failed to decode stats for %s: %w", sku, err)
		}
		ov.SKU = sku
		overviews = append(overviews, ov)
	}
	return overviews, rows.Err()
}

// GetSkuData fetches the full picture for one SKU: metadata, stats, and the
// trailing ~90 days of daily records assembled from the last three monthly
// chunks. Returns (nil, nil) when the SKU does not exist.
func GetSkuData(ctx context.Context, sku string) (*models.SkuDetail, error) {
	var metadata, stats []byte
	err := DB.QueryRow(ctx,
		`SELECT metadata, stats FROM inventory_history WHERE sku = $1`, sku,
	).Scan(&metadata, &stats)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", sku, err)
	}

	var detail models.SkuDetail
	if err := json.Unmarshal(metadata, &detail.SkuOverview); err != nil {
		return nil, fmt.Errorf("failed to decode metadata for %s: %w", sku, err)
	}
	if err := json.Unmarshal(stats, &detail.SkuStats); err != nil {
		return nil, fmt.Errorf("failed to decode stats for %s: %w", sku, err)
	}
	detail.SKU = sku

	rows, err := DB.Query(ctx, `
		SELECT records FROM inventory_daily
		WHERE sku = $1
		ORDER BY month DESC
		LIMIT 3
	`, sku)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily chunks for %s: %w", sku, err)
	}
	defer rows.Close()

	var recent []models.DailyRecord
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan daily chunk for %s: %w", sku, err)
		}
		var records []models.DailyRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("failed to decode daily chunk for %s: %w", sku, err)
		}
		recent = append(recent, records...)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(recent, func(i, j int) bool { return recent[i].Date < recent[j].Date })
	if len(recent) > 90 {
		recent = recent[len(recent)-90:]
	}
	detail.RecentDaily = recent

	return &detail, nil
}
