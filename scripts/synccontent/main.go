package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contentTables are the only tables the synchronizer touches. Tables owned by
// users (users, sessions, enrollments, progress, payments, logs) are never
// written to production by this tool.
var contentTables = []string{
	"courses",
	"lessons",
	"resources",
	"community_posts",
	"search_weights",
}

func main() {
	dryRun := flag.Bool("dry-run", false, "report differences without writing")
	flag.Parse()

	devDSN := os.Getenv("DEV_DATABASE_URL")
	prodDSN := os.Getenv("PROD_DATABASE_URL")
	if devDSN == "" || prodDSN == "" {
		log.Fatal("[SYNC] DEV_DATABASE_URL and PROD_DATABASE_URL must be set")
	}

	dev, err := gorm.Open(postgres.Open(devDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("[SYNC] Could not connect to dev database: %v", err)
	}
	prod, err := gorm.Open(postgres.Open(prodDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("[SYNC] Could not connect to prod database: %v", err)
	}

	for _, table := range contentTables {
		if err := syncTable(dev, prod, table, *dryRun); err != nil {
			// One table failing does not abort the rest
			log.Printf("[SYNC] Table %s failed: %v", table, err)
		}
	}

	log.Println("[SYNC] Done.")
}

// syncTable diffs one table by primary key and upserts new or changed rows
// into production.
func syncTable(dev, prod *gorm.DB, table string, dryRun bool) error {
	var devRows []map[string]interface{}
	if err := dev.Table(table).Find(&devRows).Error; err != nil {
		return err
	}

	var prodRows []map[string]interface{}
	if err := prod.Table(table).Find(&prodRows).Error; err != nil {
		return err
	}

	prodByID := make(map[interface{}]map[string]interface{}, len(prodRows))
	for _, row := range prodRows {
		prodByID[normalizeID(row["id"])] = row
	}

	var toUpsert []map[string]interface{}
	created, changed := 0, 0
	for _, row := range devRows {
		existing, ok := prodByID[normalizeID(row["id"])]
		if !ok {
			toUpsert = append(toUpsert, row)
			created++
			continue
		}
		if !rowsEqual(row, existing) {
			toUpsert = append(toUpsert, row)
			changed++
		}
	}

	log.Printf("[SYNC] %s: %d new, %d changed, %d unchanged", table, created, changed, len(devRows)-created-changed)

	if dryRun || len(toUpsert) == 0 {
		return nil
	}

	return prod.Table(table).Clauses(clause.OnConflict{UpdateAll: true}).Create(toUpsert).Error
}

// normalizeID folds driver-specific numeric types into a comparable key
func normalizeID(id interface{}) interface{} {
	switch v := id.(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return id
	}
}

// rowsEqual compares rows through a JSON round-trip so driver type
// differences (int64 vs float64, time formats) do not produce false diffs
func rowsEqual(a, b map[string]interface{}) bool {
	aj, err1 := json.Marshal(a)
	bj, err2 := json.Marshal(b)
	if err1 != nil || err2 != nil {
		return reflect.DeepEqual(a, b)
	}
	var an, bn interface{}
	if json.Unmarshal(aj, &an) != nil || json.Unmarshal(bj, &bn) != nil {
		return reflect.DeepEqual(a, b)
	}
	return reflect.DeepEqual(an, bn)
}
