package main

import (
	"fmt"
	"log"
	"os"

	"yearcompass/internal/api"
	"yearcompass/internal/config"
	"yearcompass/internal/db"
	"yearcompass/internal/llm"
	redisdb "yearcompass/internal/redis"
)

func main() {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := db.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	rdb := redisdb.NewClient(cfg)

	var gateway llm.Gateway
	if cfg.AI.Mock {
		log.Printf("[Main] ai.mock enabled, using scripted responses")
		gateway = llm.NewMockGateway()
	} else {
		gateway = llm.NewHTTPGateway(cfg.AI)
		log.Printf("[Main] AI gateway: %s (model %s)", cfg.AI.URL, cfg.AI.Model)
	}

	r := api.SetupRouter(cfg, rdb, gateway)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Starting server on %s%s\n", addr, cfg.Server.Subpath)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
