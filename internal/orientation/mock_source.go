// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package orientation

import (
	"math"
	"time"

	"github.com/relabs-tech/lsm6dso32/internal/imu"
)

type mockSource struct {
	start time.Time
	now   func() time.Time
}

// NewMockSource creates a mock orientation source that
// generates smooth changing values.
func NewMockSource() Source {
	return &mockSource{start: time.Now(), now: time.Now}
}

func (m *mockSource) Next() (Pose, error) {
	return mockPose(m.now().Sub(m.start).Seconds()), nil
}

func mockPose(elapsed float64) Pose {
	return Pose{
		Roll:  20 * math.Sin(elapsed),
		Pitch: 15 * math.Cos(elapsed*0.7),
		Yaw:   math.Mod(elapsed*30, 360),
	}
}

// MockSampleSource produces IMU samples consistent with the mock poses,
// for running the producer pipeline without hardware.
type MockSampleSource struct {
	start time.Time
	now   func() time.Time
}

// NewMockSampleSource starts the mock motion now.
func NewMockSampleSource() *MockSampleSource {
	return &MockSampleSource{start: time.Now(), now: time.Now}
}

// ReadSample returns a 1g gravity vector rotated by the current mock pose,
// with the matching angular rates.
func (m *MockSampleSource) ReadSample() (imu.Sample, error) {
	t := m.now()
	elapsed := t.Sub(m.start).Seconds()
	p := mockPose(elapsed)
	roll := p.Roll * math.Pi / 180
	pitch := p.Pitch * math.Pi / 180

	ax := -math.Sin(pitch) * 1000
	ay := math.Cos(pitch) * math.Sin(roll) * 1000
	az := math.Cos(pitch) * math.Cos(roll) * 1000
	// Derivatives of the mock angles, in mdps.
	gx := 20 * math.Cos(elapsed) * 1000
	gy := -15 * 0.7 * math.Sin(elapsed*0.7) * 1000
	gz := 30.0 * 1000

	return imu.Sample{
		AccelMg:   [3]float32{float32(ax), float32(ay), float32(az)},
		GyroMdps:  [3]float32{float32(gx), float32(gy), float32(gz)},
		TempC:     25,
		TimeNs:    float32(elapsed * 1e9),
		AccelFS:   "mock",
		GyroFS:    "mock",
		Timestamp: t.Format(time.RFC3339Nano),
	}, nil
}
