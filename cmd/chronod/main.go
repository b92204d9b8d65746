package main

import (
	"flag"
	"log"

	"chrono/internal/config"
	"chrono/internal/server"
	"chrono/internal/wallclock"
)

func main() {
	serviceID := flag.String("service-id", "", "service identifier used in logs and health responses")
	listenAddr := flag.String("listen", "", "address to listen on, e.g. 127.0.0.1:50061")
	configPath := flag.String("config", "", "optional YAML config file")
	fixedTime := flag.String("fixed-time", "", "pin the clock to this instant (2006-01-02T15:04:05, UTC)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Flags override the file.
	if *serviceID != "" {
		cfg.ServiceID = *serviceID
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *fixedTime != "" {
		cfg.FixedTime = *fixedTime
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	var clock wallclock.Clock = wallclock.SystemClock{}
	if instant, ok, err := cfg.ParseFixedTime(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	} else if ok {
		log.Printf("[%s] Clock pinned to %s", cfg.ServiceID, instant)
		clock = wallclock.FixedClock{Instant: instant}
	}

	node := server.NewNode(cfg.ServiceID, cfg.ListenAddr, clock)
	if err := node.Start(); err != nil {
		log.Fatalf("Service failed: %v", err)
	}
}
