// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"strings"
	"testing"

	"github.com/relabs-tech/lsm6dso32/internal/env"
	"github.com/relabs-tech/lsm6dso32/internal/imu"
)

func TestFormatEvents(t *testing.T) {
	tests := []struct {
		name string
		e    imu.Events
		want string
	}{
		{"none", imu.Events{}, "[EVT ]  none"},
		{"tap", imu.Events{DoubleTap: true, TapAxes: "Z", TapNegative: true}, "[EVT ]  double-tap(Z-)"},
		{"wake and fsm", imu.Events{WakeUp: true, WakeUpAxes: "XY", FSM: 0x8001}, "[EVT ]  wake-up(XY) fsm(0x8001)"},
		{"embedded", imu.Events{Step: true, Tilt: true}, "[EVT ]  step tilt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatEvents(tt.e); got != tt.want {
				t.Errorf("formatEvents() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatFIFO(t *testing.T) {
	b := imu.FIFOBatch{
		Words:   []imu.FIFOWord{{Tag: "GY"}, {Tag: "XL"}, {Tag: "GY"}},
		Overrun: true,
	}
	if got, want := formatFIFO(b), "[FIFO]  words=3 GY=2 XL=1 OVERRUN"; got != want {
		t.Errorf("formatFIFO() = %q, want %q", got, want)
	}
}

func TestFormatSampleAndEnv(t *testing.T) {
	s := formatSample(imu.Sample{AccelMg: [3]float32{0, 0, 1000}, TempC: 25.5, AccelFS: "4g", GyroFS: "2000dps"})
	if !strings.Contains(s, "az=  1000.0") || !strings.Contains(s, "(4g, 2000dps)") {
		t.Errorf("formatSample() = %q", s)
	}
	e := formatEnv(env.Sample{Source: "bmp", Temperature: 24, PressureHPa: 1013.25, IMUTempC: 26, TempDeltaC: 2})
	if e != "[ENV ]  bmp T=24.00C P=1013.25hPa  imu=26.00C delta=+2.00C" {
		t.Errorf("formatEnv() = %q", e)
	}
}
