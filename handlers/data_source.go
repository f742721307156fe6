package handlers

import (
	"context"
	"sort"
	"time"

	"app/config"
	"app/database"
	"app/generator"
	"app/models"
	"app/utils"
)

// responseCache time-boxes the expensive paths behind the API: local dataset
// file loads and whole-fleet LLM analyses.
var responseCache = utils.NewCache(5 * time.Minute)

// allSkuStats reads metadata + stats for every SKU, from Postgres when a
// database is configured and from the exported JSON dataset otherwise.
func allSkuStats(ctx context.Context) ([]models.SkuOverview, error) {
	if database.GetDB() != nil {
		return database.GetAllSkuStats(ctx)
	}

	dataset, err := localDataset()
	if err != nil {
		return nil, err
	}

	skus := make([]string, 0, len(dataset))
	for sku := range dataset {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	overviews := make([]models.SkuOverview, 0, len(skus))
	for _, sku := range skus {
		overviews = append(overviews, overviewFor(sku, dataset[sku]))
	}
	return overviews, nil
}

// skuData reads the full picture for one SKU. Returns (nil, nil) when the
// SKU is unknown.
func skuData(ctx context.Context, sku string) (*models.SkuDetail, error) {
	if database.GetDB() != nil {
		return database.GetSkuData(ctx, sku)
	}

	dataset, err := localDataset()
	if err != nil {
		return nil, err
	}
	entry, ok := dataset[sku]
	if !ok {
		return nil, nil
	}

	recent := entry.DailyData
	if len(recent) > 90 {
		recent = recent[len(recent)-90:]
	}
	return &models.SkuDetail{
		SkuOverview: overviewFor(sku, entry),
		RecentDaily: recent,
	}, nil
}

func overviewFor(sku string, entry *models.SkuEntry) models.SkuOverview {
	return models.SkuOverview{
		SKU:       sku,
		Name:      entry.Metadata.Name,
		Category:  entry.Metadata.Category,
		Location:  entry.Metadata.Location,
		UnitCost:  entry.Metadata.UnitCost,
		SellPrice: entry.Metadata.SellPrice,
		SkuStats:  entry.Stats,
	}
}

func localDataset() (models.Dataset, error) {
	v, err := responseCache.GetOrFill("dataset:"+config.AppConfig.DataFile, func() (interface{}, error) {
		return generator.ReadDataset(config.AppConfig.DataFile)
	})
	if err != nil {
		return nil, err
	}
	return v.(models.Dataset), nil
}
