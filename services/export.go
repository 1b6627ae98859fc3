package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mindanaodata/edu-portal/dataset"
	"github.com/mindanaodata/edu-portal/utils/cache"
)

// ExportService renders tables to CSV and XLSX. CSV payloads are cached in
// redis when a cache is configured; without one every export is computed on
// demand, which is cheap enough for the dataset sizes involved.
type ExportService struct {
	cache *cache.RedisCache
	ttl   time.Duration
}

// NewExportService creates an export service. cache may be nil.
func NewExportService(c *cache.RedisCache, ttl time.Duration) *ExportService {
	return &ExportService{cache: c, ttl: ttl}
}

// CSV renders a table (header row plus one line per record).
func (e *ExportService) CSV(t *dataset.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := w.Write(row.Values()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CachedCSV renders a (possibly filtered) table to CSV, consulting the redis
// cache first. seed, city and year identify the payload; the canonical tables
// never change for a fixed seed, so cached entries stay valid until TTL.
func (e *ExportService) CachedCSV(ctx context.Context, seed int64, t *dataset.Table, city string, year int) ([]byte, error) {
	if e.cache == nil {
		return e.CSV(t)
	}

	key := fmt.Sprintf("export:csv:%d:%s:%s:%d", seed, t.Name, city, year)
	if data, err := e.cache.Get(ctx, key); err == nil {
		return data, nil
	} else if err != cache.ErrNotFound {
		log.Printf("Warning: export cache read failed for %s: %v", key, err)
	}

	data, err := e.CSV(t)
	if err != nil {
		return nil, err
	}
	if err := e.cache.Set(ctx, key, data, e.ttl); err != nil {
		log.Printf("Warning: export cache write failed for %s: %v", key, err)
	}
	return data, nil
}

// Workbook renders the given tables into one XLSX workbook, one sheet per
// table, sheet names matching the stable table identifiers.
func (e *ExportService) Workbook(tables []*dataset.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		sheet := t.Name
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}

		header := make([]interface{}, len(t.Columns))
		for j, col := range t.Columns {
			header[j] = col
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return nil, err
		}

		for r, row := range t.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			values := row.Values()
			cells := make([]interface{}, len(values))
			for j, v := range values {
				cells[j] = v
			}
			if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
