// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/relabs-tech/lsm6dso32/internal/imu"
	"github.com/relabs-tech/lsm6dso32/internal/orientation"
)

func TestWebNoDataYet(t *testing.T) {
	var s webState
	srv := httptest.NewServer(s.routes(nil))
	defer srv.Close()

	for _, path := range []string{"/api/orientation", "/api/sample", "/api/events", "/api/steps", "/api/env"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("GET %s = %d", path, resp.StatusCode)
		}
	}
}

func TestWebServesLatest(t *testing.T) {
	var s webState
	s.pose.set(orientation.Pose{Roll: 1})
	s.pose.set(orientation.Pose{Roll: 12.5, Pitch: -3, Yaw: 270})
	s.steps.set(imu.Steps{Count: 42})

	srv := httptest.NewServer(s.routes(nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/orientation")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var p orientation.Pose
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		t.Fatal(err)
	}
	if p != (orientation.Pose{Roll: 12.5, Pitch: -3, Yaw: 270}) {
		t.Errorf("pose = %+v", p)
	}

	rec := httptest.NewRecorder()
	s.routes(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/steps", nil))
	var st imu.Steps
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil || st.Count != 42 {
		t.Errorf("steps = %+v, %v", st, err)
	}
}

func TestWebRejectsPost(t *testing.T) {
	var s webState
	s.pose.set(orientation.Pose{})
	rec := httptest.NewRecorder()
	s.routes(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orientation", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST = %d", rec.Code)
	}
}
