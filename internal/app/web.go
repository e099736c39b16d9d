// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/relabs-tech/lsm6dso32/internal/config"
	"github.com/relabs-tech/lsm6dso32/internal/env"
	"github.com/relabs-tech/lsm6dso32/internal/imu"
	"github.com/relabs-tech/lsm6dso32/internal/orientation"
)

// latest holds the most recent value of one stream.
type latest[T any] struct {
	mu   sync.RWMutex
	v    T
	have bool
}

func (l *latest[T]) set(v T) {
	l.mu.Lock()
	l.v = v
	l.have = true
	l.mu.Unlock()
}

func (l *latest[T]) get() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.v, l.have
}

func (l *latest[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v, ok := l.get()
	if !ok {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("web: json encode error: %v", err)
	}
}

// webState caches the last message of every topic the web UI shows.
type webState struct {
	pose   latest[orientation.Pose]
	sample latest[imu.Sample]
	events latest[imu.Events]
	steps  latest[imu.Steps]
	env    latest[env.Sample]
}

func (s *webState) routes(static http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /api/orientation", &s.pose)
	mux.Handle("GET /api/sample", &s.sample)
	mux.Handle("GET /api/events", &s.events)
	mux.Handle("GET /api/steps", &s.steps)
	mux.Handle("GET /api/env", &s.env)
	if static != nil {
		mux.Handle("/", static)
	}
	return mux
}

// RunWeb serves the latest IMU data as JSON, fed from MQTT.
func RunWeb() error {
	cfg := config.Get()

	client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDWeb)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)
	log.Printf("web: connected to MQTT broker at %s", cfg.MQTTBroker)

	var s webState
	subs := []error{
		subscribeJSON(client, "web", cfg.TopicPose, s.pose.set),
		subscribeJSON(client, "web", cfg.TopicSample, s.sample.set),
		subscribeJSON(client, "web", cfg.TopicEvents, s.events.set),
		subscribeJSON(client, "web", cfg.TopicSteps, s.steps.set),
		subscribeJSON(client, "web", cfg.TopicEnv, s.env.set),
	}
	for _, err := range subs {
		if err != nil {
			return err
		}
	}

	// Static files from ./web as the root
	mux := s.routes(http.FileServer(http.Dir("web")))

	addr := fmt.Sprintf(":%d", cfg.WebServerPort)
	log.Printf("web: listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}
