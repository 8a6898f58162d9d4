package main

import (
	"compress/gzip"
	"egrow/config"
	"egrow/database"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm/clause"
)

// backupTables is every table included in a dump, content and user-owned alike
var backupTables = []string{
	"users",
	"sessions",
	"courses",
	"lessons",
	"enrollments",
	"course_progresses",
	"lesson_progresses",
	"certificates",
	"resources",
	"resource_access_logs",
	"community_posts",
	"user_streaks",
	"streak_activities",
	"payments",
	"search_weights",
	"utm_events",
}

func main() {
	restoreDir := flag.String("restore", "", "restore from the given backup directory instead of dumping")
	useGzip := flag.Bool("gzip", false, "gzip each table dump")
	encrypt := flag.Bool("encrypt", false, "encrypt each dump with openssl (BACKUP_PASSPHRASE env)")
	flag.Parse()

	config.LoadConfig()
	database.ConnectDb()

	if *restoreDir != "" {
		if err := restore(*restoreDir); err != nil {
			log.Fatalf("[BACKUP] Restore failed: %v", err)
		}
		log.Println("[BACKUP] Restore completed.")
		return
	}

	if *encrypt && os.Getenv("BACKUP_PASSPHRASE") == "" {
		log.Fatal("[BACKUP] -encrypt requires BACKUP_PASSPHRASE to be set")
	}

	dir := filepath.Join(config.AppConfig.BackupDir, "backup-"+time.Now().Format("20060102-150405"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("[BACKUP] Could not create backup directory: %v", err)
	}

	log.Printf("[BACKUP] Dumping %d tables to %s", len(backupTables), dir)

	failed := 0
	for _, table := range backupTables {
		if err := dumpTable(table, dir, *useGzip, *encrypt); err != nil {
			// One table failing does not abort the rest
			log.Printf("[BACKUP] Table %s failed: %v", table, err)
			failed++
		}
	}

	log.Printf("[BACKUP] Done. %d/%d tables dumped.", len(backupTables)-failed, len(backupTables))
}

func dumpTable(table, dir string, useGzip, encrypt bool) error {
	db := database.Database.Db

	var rows []map[string]interface{}
	if err := db.Table(table).Find(&rows).Error; err != nil {
		return err
	}

	name := table + ".json"
	if useGzip {
		name += ".gz"
	}
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if useGzip {
		gz := gzip.NewWriter(file)
		if err := json.NewEncoder(gz).Encode(rows); err != nil {
			file.Close()
			return err
		}
		// The gzip footer must hit the file before the handle closes
		if err := gz.Close(); err != nil {
			file.Close()
			return err
		}
	} else {
		enc := json.NewEncoder(file)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			file.Close()
			return err
		}
	}
	if err := file.Close(); err != nil {
		return err
	}

	log.Printf("[BACKUP] %s: %d rows", table, len(rows))

	if encrypt {
		return encryptFile(path)
	}
	return nil
}

// encryptFile replaces path with path.enc using openssl symmetric encryption
func encryptFile(path string) error {
	cmd := exec.Command("openssl", "enc", "-aes-256-cbc", "-pbkdf2",
		"-in", path, "-out", path+".enc", "-pass", "env:BACKUP_PASSPHRASE")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("openssl: %v: %s", err, out)
	}
	return os.Remove(path)
}

func decryptFile(path string) (string, error) {
	plain := strings.TrimSuffix(path, ".enc")
	cmd := exec.Command("openssl", "enc", "-d", "-aes-256-cbc", "-pbkdf2",
		"-in", path, "-out", plain, "-pass", "env:BACKUP_PASSPHRASE")
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("openssl: %v: %s", err, out)
	}
	return plain, nil
}

func restore(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	db := database.Database.Db
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		name := entry.Name()

		if strings.HasSuffix(name, ".enc") {
			path, err = decryptFile(path)
			if err != nil {
				log.Printf("[BACKUP] Could not decrypt %s: %v", name, err)
				continue
			}
			name = strings.TrimSuffix(name, ".enc")
		}

		table := strings.TrimSuffix(strings.TrimSuffix(name, ".gz"), ".json")

		rows, err := readDump(path)
		if err != nil {
			log.Printf("[BACKUP] Could not read %s: %v", name, err)
			continue
		}
		if len(rows) == 0 {
			continue
		}

		if err := db.Table(table).Clauses(clause.OnConflict{UpdateAll: true}).Create(rows).Error; err != nil {
			log.Printf("[BACKUP] Could not restore %s: %v", table, err)
			continue
		}
		log.Printf("[BACKUP] Restored %s: %d rows", table, len(rows))
	}
	return nil
}

func readDump(path string) ([]map[string]interface{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []map[string]interface{}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		err = json.NewDecoder(gz).Decode(&rows)
		return rows, err
	}

	err = json.NewDecoder(file).Decode(&rows)
	return rows, err
}
