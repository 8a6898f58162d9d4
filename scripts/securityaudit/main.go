package main

import (
	"egrow/config"
	"egrow/database"
	"egrow/models"
	"log"
	"os"
	"time"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	critical := 0

	if config.AppConfig.JWTKey == "defaultSecret" {
		log.Println("[AUDIT] CRITICAL: JWT_SECRET_KEY is the default value")
		critical++
	}

	var expiredSessions int64
	if err := db.Model(&models.Session{}).Where("expires_at < ?", time.Now()).Count(&expiredSessions).Error; err != nil {
		log.Printf("[AUDIT] Could not count expired sessions: %v", err)
	} else if expiredSessions > 0 {
		log.Printf("[AUDIT] WARNING: %d expired sessions still stored (cleanup job behind?)", expiredSessions)
	}

	var unverifiedAdmins int64
	if err := db.Model(&models.User{}).
		Where("role = ? AND is_email_verified = ? AND is_deleted = ?", "ADMIN", false, false).
		Count(&unverifiedAdmins).Error; err != nil {
		log.Printf("[AUDIT] Could not count admin accounts: %v", err)
	} else if unverifiedAdmins > 0 {
		log.Printf("[AUDIT] CRITICAL: %d admin accounts without verified email", unverifiedAdmins)
		critical++
	}

	var leakyResources int64
	if err := db.Model(&models.Resource{}).
		Where("requires_auth = ? AND file_url LIKE ? AND is_deleted = ?", true, "http%", false).
		Count(&leakyResources).Error; err != nil {
		log.Printf("[AUDIT] Could not inspect resources: %v", err)
	} else if leakyResources > 0 {
		log.Printf("[AUDIT] WARNING: %d gated resources point at absolute public URLs", leakyResources)
	}

	var staleSessions int64
	if err := db.Model(&models.Session{}).
		Where("expires_at < ?", time.Now().AddDate(0, -3, 0)).
		Count(&staleSessions).Error; err == nil && staleSessions > 0 {
		log.Printf("[AUDIT] WARNING: %d sessions older than three months", staleSessions)
	}

	if critical > 0 {
		log.Printf("[AUDIT] %d critical findings", critical)
		os.Exit(1)
	}
	log.Println("[AUDIT] No critical findings.")
}
