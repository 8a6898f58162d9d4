package utils

import (
	"egrow/config"
	"egrow/models"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// ForwardUTMEvent pushes a recorded UTM event to the external analytics
// collector. Best-effort: the local row is authoritative, forwarding failures
// are logged and dropped.
func ForwardUTMEvent(event *models.UTMEvent) {
	if config.AppConfig.AnalyticsURL == "" {
		return
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", config.AppConfig.AnalyticsAPIKey)).
		SetBody(map[string]interface{}{
			"event":        "utm_visit",
			"utm_source":   event.Source,
			"utm_medium":   event.Medium,
			"utm_campaign": event.Campaign,
			"utm_content":  event.Content,
			"path":         event.Path,
			"referrer":     event.Referrer,
		}).
		Post(config.AppConfig.AnalyticsURL)
	if err != nil {
		log.Printf("[ANALYTICS] Failed to forward UTM event: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("[ANALYTICS] Collector returned %d for UTM event", resp.StatusCode())
	}
}
