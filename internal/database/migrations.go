package database

import (
	"log"

	"gorm.io/gorm"
)

// RunMigrations runs any custom data migrations after schema changes
func RunMigrations(db *gorm.DB) error {
	return backfillClassificationDefaults(db)
}

// backfillClassificationDefaults fills variant, grading service and grade on
// rows written before those columns existed. Safe to run repeatedly.
func backfillClassificationDefaults(db *gorm.DB) error {
	backfills := []struct {
		column string
		value  string
	}{
		{"card_variant", "Base"},
		{"grading_service", "Ungraded"},
		{"grade", "N/A"},
	}

	for _, b := range backfills {
		if !db.Migrator().HasColumn("cards", b.column) {
			continue
		}
		result := db.Exec(`UPDATE cards SET `+b.column+` = ? WHERE `+b.column+` IS NULL OR `+b.column+` = ''`, b.value)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			log.Printf("Backfilled %s on %d cards", b.column, result.RowsAffected)
		}
	}
	return nil
}
