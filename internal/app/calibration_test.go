// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"errors"
	"math"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/relabs-tech/lsm6dso32/internal/imu"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
)

type offsetWrite struct {
	w   lsm6dso32.OffsetWeight
	off [3]int8
}

// stillDevice returns base ± 1 mg on every axis, alternating.
type stillDevice struct {
	base    [3]float32
	n       int
	failAt  int
	offsets []offsetWrite
}

func (d *stillDevice) ReadSample() (imu.Sample, error) {
	d.n++
	if d.failAt > 0 && d.n == d.failAt {
		return imu.Sample{}, errors.New("nack")
	}
	noise := float32(1)
	if d.n%2 == 0 {
		noise = -1
	}
	return imu.Sample{
		AccelMg:  [3]float32{d.base[0] + noise, d.base[1] + noise, d.base[2] + noise},
		GyroMdps: [3]float32{140, -70, 0},
		AccelFS:  "4g",
		GyroFS:   "2000dps",
	}, nil
}

func (d *stillDevice) SetUserOffset(w lsm6dso32.OffsetWeight, off [3]int8) error {
	d.offsets = append(d.offsets, offsetWrite{w, off})
	return nil
}

func TestComputeUserOffset(t *testing.T) {
	tests := []struct {
		name    string
		mean    [3]float64
		w       lsm6dso32.OffsetWeight
		want    [3]int8
		clamped bool
	}{
		{"level", [3]float64{0, 0, 1000}, lsm6dso32.OffsetLSb1mg, [3]int8{0, 0, 0}, false},
		{"1mg", [3]float64{10, -20, 1030}, lsm6dso32.OffsetLSb1mg, [3]int8{10, -20, 31}, false},
		{"16mg", [3]float64{10, -20, 1030}, lsm6dso32.OffsetLSb16mg, [3]int8{1, -1, 2}, false},
		{"clamp", [3]float64{200, -200, 1000}, lsm6dso32.OffsetLSb1mg, [3]int8{127, -127, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := ComputeUserOffset(tt.mean, tt.w)
			if got != tt.want || clamped != tt.clamped {
				t.Errorf("ComputeUserOffset() = %v, %v, want %v, %v", got, clamped, tt.want, tt.clamped)
			}
		})
	}
}

func TestStillnessConfidence(t *testing.T) {
	if c := stillnessConfidence([3]float64{1, 2, 3}); c != 1 {
		t.Errorf("quiet = %v", c)
	}
	if c := stillnessConfidence([3]float64{0, 50, 0}); c != confFloor {
		t.Errorf("shaking = %v", c)
	}
	if c := stillnessConfidence([3]float64{9, 0, 0}); math.Abs(c-0.5) > 1e-9 {
		t.Errorf("midway = %v", c)
	}
}

func TestCalibrate(t *testing.T) {
	dev := &stillDevice{base: [3]float32{10, -20, 1030}}
	var calls int
	res, err := Calibrate(dev, CalibrationOptions{Samples: 10, Weight: lsm6dso32.OffsetLSb1mg, Apply: true}, func(done, total int) {
		calls++
		if total != 10 {
			t.Errorf("total = %d", total)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 10 || res.Samples != 10 {
		t.Errorf("progress calls %d, samples %d", calls, res.Samples)
	}
	if math.Abs(res.AccelMg.Mean[2]-1030) > 1e-3 || math.Abs(res.AccelMg.StdDev[0]-1) > 1e-3 {
		t.Errorf("accel stats = %+v", res.AccelMg)
	}
	if res.GyroMdps.Mean[0] != 140 {
		t.Errorf("gyro mean = %v", res.GyroMdps.Mean)
	}
	if res.UserOffset != [3]int8{10, -20, 31} || !res.Applied || res.Confidence != 1 {
		t.Errorf("result = %+v", res)
	}
	want := []offsetWrite{
		{lsm6dso32.OffsetLSb1mg, [3]int8{}},
		{lsm6dso32.OffsetLSb1mg, [3]int8{10, -20, 31}},
	}
	if len(dev.offsets) != 2 || dev.offsets[0] != want[0] || dev.offsets[1] != want[1] {
		t.Errorf("offset writes = %v", dev.offsets)
	}
}

func TestCalibrateErrors(t *testing.T) {
	if _, err := Calibrate(&stillDevice{}, CalibrationOptions{}, nil); err == nil {
		t.Error("zero samples accepted")
	}
	dev := &stillDevice{failAt: 3}
	if _, err := Calibrate(dev, CalibrationOptions{Samples: 5, Apply: true}, nil); err == nil {
		t.Error("read error swallowed")
	}
	if len(dev.offsets) != 1 {
		t.Errorf("offsets written after a failed capture: %v", dev.offsets)
	}
}

func TestWriteCalibrationFile(t *testing.T) {
	dir := t.TempDir() + "/calibration"
	res := CalibrationResult{SchemaVersion: 1, Samples: 3, UserOffset: [3]int8{1, -2, 3}}
	path, err := writeCalibrationFile(res, dir)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got CalibrationResult
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.UserOffset != res.UserOffset || got.Samples != 3 {
		t.Errorf("file = %+v", got)
	}
}

func TestCalibrationSession(t *testing.T) {
	dev := &stillDevice{base: [3]float32{0, 0, 1016}}
	dir := t.TempDir()
	srv := httptest.NewServer(NewCalibrationHandler(dev, CalibrationOptions{Samples: 20, Weight: lsm6dso32.OffsetLSb1mg}, dir))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	send := func(msg WSMessage) {
		t.Helper()
		if err := conn.WriteJSON(msg); err != nil {
			t.Fatal(err)
		}
	}
	next := func() WSResponse {
		t.Helper()
		var resp WSResponse
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatal(err)
		}
		return resp
	}

	send(WSMessage{Action: "apply"})
	if resp := next(); resp.Type != "error" {
		t.Fatalf("apply before start = %+v", resp)
	}

	send(WSMessage{Action: "start", Weight: "16mg"})
	var resp WSResponse
	progress := 0
	for resp = next(); resp.Type == "progress"; resp = next() {
		progress++
	}
	if resp.Type != "stats" || resp.Results == nil || progress != 2 {
		t.Fatalf("after %d progress messages got %+v", progress, resp)
	}
	if resp.Results.UserOffset != [3]int8{0, 0, 1} || resp.Results.OffsetWeight != "16mg" || resp.Results.Applied {
		t.Errorf("stats = %+v", resp.Results)
	}

	send(WSMessage{Action: "apply"})
	if resp := next(); resp.Type != "applied" || !resp.Results.Applied {
		t.Errorf("apply = %+v", resp)
	}
	last := dev.offsets[len(dev.offsets)-1]
	if last.w != lsm6dso32.OffsetLSb16mg || last.off != [3]int8{0, 0, 1} {
		t.Errorf("last offset write = %+v", last)
	}

	send(WSMessage{Action: "save"})
	if resp := next(); resp.Type != "complete" || !strings.HasPrefix(resp.Filename, dir) {
		t.Errorf("save = %+v", resp)
	}

	send(WSMessage{Action: "start", Weight: "2mg"})
	if resp := next(); resp.Type != "error" {
		t.Errorf("bad weight = %+v", resp)
	}
}
