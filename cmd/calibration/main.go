// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// ./cmd/calibration/main.go
//
// Still calibration of the LSM6DSO32 accelerometer. The device lies flat
// with Z up while samples are averaged; the deviation from 1 g becomes the
// X/Y/Z_OFS_USR user offsets (weight from IMU_OFFSET_WEIGHT).
//
// Output:
//
//	Writes a JSON file under ./calibration/ with the statistics and offsets.
//
// Run:
//
//	go run ./cmd/calibration            # guided, on the terminal
//	go run ./cmd/calibration -web       # WebSocket at /ws on WEB_SERVER_PORT
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/relabs-tech/lsm6dso32/internal/app"
	"github.com/relabs-tech/lsm6dso32/internal/config"
	"github.com/relabs-tech/lsm6dso32/internal/sensors"
)

func main() {
	configPath := flag.String("config", "./lsm6dso32_config.txt", "path to configuration file")
	web := flag.Bool("web", false, "serve the calibration WebSocket instead of prompting")
	flag.Parse()

	log.Println("starting LSM6DSO32 calibration")

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if !*web {
		if err := app.RunCalibration(); err != nil {
			log.Fatalf("fatal: %v", err)
		}
		return
	}

	if err := sensors.GetIMUManager().Init(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
	defer sensors.GetIMUManager().Close()

	http.HandleFunc("/ws", app.HandleCalibrationWS)

	addr := fmt.Sprintf(":%d", config.Get().WebServerPort)
	log.Printf("calibration WebSocket listening on %s/ws", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
