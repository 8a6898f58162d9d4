package main

import (
	"egrow/config"
	"egrow/utils"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

func main() {
	reason := flag.String("reason", "Scheduled maintenance", "reason shown to visitors")
	duration := flag.String("duration", "30m", "estimated duration shown to visitors")
	allowed := flag.String("allow", "", "comma-separated IPs allowed through the gate")
	bypass := flag.String("bypass", "", "bypass key accepted via X-Maintenance-Bypass")
	flag.Parse()

	config.LoadConfig()

	if flag.NArg() < 1 {
		log.Fatal("usage: maintenance [flags] on|off|status")
	}

	flagFile := config.AppConfig.MaintenanceFile
	confFile := config.AppConfig.MaintenanceConfFile

	switch flag.Arg(0) {
	case "on":
		conf := utils.MaintenanceConfig{
			Enabled:           true,
			StartTime:         time.Now(),
			EstimatedDuration: *duration,
			Reason:            *reason,
			BypassKey:         *bypass,
		}
		if *allowed != "" {
			conf.AllowedIPs = strings.Split(*allowed, ",")
		}
		if err := utils.SaveMaintenanceConfig(confFile, conf); err != nil {
			log.Fatalf("Could not write maintenance config: %v", err)
		}
		if err := os.WriteFile(flagFile, []byte(time.Now().Format(time.RFC3339)+"\n"), 0644); err != nil {
			log.Fatalf("Could not create maintenance flag: %v", err)
		}
		fmt.Println("Maintenance mode is ON")

	case "off":
		if err := os.Remove(flagFile); err != nil && !os.IsNotExist(err) {
			log.Fatalf("Could not remove maintenance flag: %v", err)
		}
		if err := os.Remove(confFile); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: could not remove maintenance config: %v", err)
		}
		fmt.Println("Maintenance mode is OFF")

	case "status":
		if !utils.MaintenanceActive(flagFile) {
			fmt.Println("Maintenance mode is OFF")
			return
		}
		conf := utils.LoadMaintenanceConfig(confFile)
		fmt.Println("Maintenance mode is ON")
		fmt.Printf("  since:    %s\n", conf.StartTime.Format(time.RFC3339))
		fmt.Printf("  duration: %s\n", conf.EstimatedDuration)
		fmt.Printf("  reason:   %s\n", conf.Reason)
		if len(conf.AllowedIPs) > 0 {
			fmt.Printf("  allowed:  %s\n", strings.Join(conf.AllowedIPs, ", "))
		}

	default:
		log.Fatalf("unknown command %q (want on, off or status)", flag.Arg(0))
	}
}
