// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"flag"
	"log"

	"github.com/relabs-tech/lsm6dso32/internal/app"
	"github.com/relabs-tech/lsm6dso32/internal/config"
)

func main() {
	configPath := flag.String("config", "./lsm6dso32_config.txt", "path to configuration file")
	flag.Parse()

	log.Println("starting LSM6DSO32 console (MQTT subscriber)")

	// Load configuration
	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunConsoleMQTT(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
