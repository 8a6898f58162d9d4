package utils

import (
	"encoding/json"
	"os"
	"time"
)

// MaintenanceConfig is the JSON document written next to the maintenance flag
// file. The flag file's existence turns maintenance mode on; the config file
// describes the window and who may bypass it.
type MaintenanceConfig struct {
	Enabled           bool      `json:"enabled"`
	StartTime         time.Time `json:"startTime"`
	EstimatedDuration string    `json:"estimatedDuration"`
	Reason            string    `json:"reason"`
	AllowedIPs        []string  `json:"allowedIPs"`
	BypassKey         string    `json:"bypassKey"`
}

// MaintenanceActive reports whether the flag file exists
func MaintenanceActive(flagFile string) bool {
	_, err := os.Stat(flagFile)
	return err == nil
}

// LoadMaintenanceConfig reads the maintenance config file. A missing or
// unreadable config yields a zero-value config, not an error: the flag file
// alone is authoritative for whether maintenance is on.
func LoadMaintenanceConfig(confFile string) MaintenanceConfig {
	var conf MaintenanceConfig
	data, err := os.ReadFile(confFile)
	if err != nil {
		return conf
	}
	if err := json.Unmarshal(data, &conf); err != nil {
		return MaintenanceConfig{}
	}
	return conf
}

// SaveMaintenanceConfig writes the maintenance config file
func SaveMaintenanceConfig(confFile string, conf MaintenanceConfig) error {
	data, err := json.MarshalIndent(conf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(confFile, data, 0644)
}

// AllowsIP reports whether the client IP is exempt from the maintenance gate
func (m MaintenanceConfig) AllowsIP(ip string) bool {
	for _, allowed := range m.AllowedIPs {
		if allowed == ip {
			return true
		}
	}
	return false
}
