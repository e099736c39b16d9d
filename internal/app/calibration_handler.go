// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/relabs-tech/lsm6dso32/internal/config"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"github.com/relabs-tech/lsm6dso32/internal/sensors"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// CalibrationSession holds the state of an active calibration
type CalibrationSession struct {
	Conn *websocket.Conn
	dev  CalibrationDevice
	opts CalibrationOptions
	dir  string

	mu      sync.Mutex
	results *CalibrationResult
}

// WebSocket message types
type WSMessage struct {
	Action  string `json:"action"`            // start, apply, save, cancel
	Samples int    `json:"samples,omitempty"` // start only
	Weight  string `json:"weight,omitempty"`  // start only: "1mg" or "16mg"
}

type WSResponse struct {
	Type     string             `json:"type"` // progress, stats, applied, complete, error
	Progress float64            `json:"progress,omitempty"`
	Results  *CalibrationResult `json:"results,omitempty"`
	Filename string             `json:"filename,omitempty"`
	Message  string             `json:"message,omitempty"`
}

// NewCalibrationHandler runs still calibrations on dev over a WebSocket.
// Result files go to dir.
func NewCalibrationHandler(dev CalibrationDevice, opts CalibrationOptions, dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("calibration: websocket upgrade error: %v", err)
			return
		}
		defer conn.Close()

		session := &CalibrationSession{Conn: conn, dev: dev, opts: opts, dir: dir}
		session.serve()
	}
}

// HandleCalibrationWS calibrates the global IMU manager.
func HandleCalibrationWS(w http.ResponseWriter, r *http.Request) {
	cfg := config.Get()
	opts := CalibrationOptions{
		Samples:  cfg.IMUCalibrationLen,
		Interval: 10 * time.Millisecond,
		Weight:   cfg.IMUOffsetWeight,
	}
	NewCalibrationHandler(sensors.GetIMUManager(), opts, "calibration")(w, r)
}

func (s *CalibrationSession) serve() {
	// Main message loop
	for {
		var msg WSMessage
		if err := s.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("calibration: websocket read error: %v", err)
			}
			return
		}

		s.mu.Lock()
		var err error
		switch msg.Action {
		case "start":
			err = s.start(msg)
		case "apply":
			err = s.apply()
		case "save":
			err = s.save()
		case "cancel":
			log.Printf("calibration: cancelled by user")
			s.mu.Unlock()
			return
		default:
			err = fmt.Errorf("unknown action: %s", msg.Action)
		}
		s.mu.Unlock()
		if err != nil {
			s.sendError(err.Error())
		}
	}
}

func (s *CalibrationSession) start(msg WSMessage) error {
	opts := s.opts
	opts.Apply = false
	if msg.Samples > 0 {
		opts.Samples = msg.Samples
	}
	if msg.Weight != "" {
		w, err := lsm6dso32.ParseOffsetWeight(msg.Weight)
		if err != nil {
			return err
		}
		opts.Weight = w
	}

	res, err := Calibrate(s.dev, opts, func(done, total int) {
		if done%10 == 0 || done == total {
			s.sendProgress(100 * float64(done) / float64(total))
		}
	})
	if err != nil {
		return err
	}
	s.opts.Weight = opts.Weight
	s.results = &res
	log.Printf("calibration: offsets %v (x%s), confidence %.2f", res.UserOffset, res.OffsetWeight, res.Confidence)
	s.sendStats()
	return nil
}

func (s *CalibrationSession) apply() error {
	if s.results == nil {
		return fmt.Errorf("no calibration to apply, send start first")
	}
	if err := s.dev.SetUserOffset(s.opts.Weight, s.results.UserOffset); err != nil {
		return err
	}
	s.results.Applied = true
	return s.Conn.WriteJSON(WSResponse{Type: "applied", Results: s.results})
}

func (s *CalibrationSession) save() error {
	if s.results == nil {
		return fmt.Errorf("no calibration to save, send start first")
	}
	path, err := writeCalibrationFile(*s.results, s.dir)
	if err != nil {
		return err
	}
	log.Printf("calibration: saved results to %s", path)

	// Send completion message
	return s.Conn.WriteJSON(WSResponse{
		Type:     "complete",
		Filename: path,
	})
}

func (s *CalibrationSession) sendProgress(progress float64) {
	s.send(WSResponse{
		Type:     "progress",
		Progress: progress,
	})
}

func (s *CalibrationSession) sendStats() {
	s.send(WSResponse{
		Type:    "stats",
		Results: s.results,
	})
}

func (s *CalibrationSession) sendError(message string) {
	s.send(WSResponse{
		Type:    "error",
		Message: message,
	})
}

func (s *CalibrationSession) send(resp WSResponse) {
	if err := s.Conn.WriteJSON(resp); err != nil {
		log.Printf("calibration: error sending %s: %v", resp.Type, err)
	}
}
