package checks

import (
	"context"
	"fmt"
	"os"

	"asset-indexer/feature/catalog"
	"asset-indexer/feature/index/models"

	"gorm.io/gorm"
)

// MissingIcon is an indexed item whose icon file does not exist.
type MissingIcon struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// IconReport is the result of checking every stored icon locator.
type IconReport struct {
	Checked int           `json:"checked"`
	Missing []MissingIcon `json:"missing"`
}

// CheckIcons streams every item row and reports icons that do not resolve.
func CheckIcons(ctx context.Context, db *gorm.DB) (*IconReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	rows, err := db.WithContext(ctx).Model(&models.Item{}).Select("name", "icon").Order("name").Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	defer rows.Close()

	report := &IconReport{Missing: []MissingIcon{}}
	for rows.Next() {
		var item models.Item
		if err := db.ScanRows(rows, &item); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		report.Checked++

		loc := catalog.ParseIconLocator(item.Icon)
		if info, err := os.Stat(loc.Path); err != nil || info.IsDir() {
			report.Missing = append(report.Missing, MissingIcon{Name: item.Name, Icon: item.Icon})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	return report, nil
}
