// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package orientation

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/relabs-tech/lsm6dso32/internal/imu"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestComputePoseFromAccel(t *testing.T) {
	tests := []struct {
		name        string
		ax, ay, az  float64
		roll, pitch float64
	}{
		{"level", 0, 0, 1000, 0, 0},
		{"roll right", 0, 1000, 0, 90, 0},
		{"nose down", 1000, 0, 0, 0, -90},
		{"upside down", 0, 0, -1000, 180, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputePoseFromAccel(tt.ax, tt.ay, tt.az)
			if !near(p.Roll, tt.roll) || !near(p.Pitch, tt.pitch) || p.Yaw != 0 {
				t.Errorf("pose = %+v, want roll %v pitch %v", p, tt.roll, tt.pitch)
			}
		})
	}
}

func TestComputePoseFromIMUFirstStep(t *testing.T) {
	prev := Pose{Yaw: 42}
	p := ComputePoseFromIMU(0, 1000, 0, 100, 100, 100, prev, 0, DefaultAlpha)
	if !near(p.Roll, 90) || !near(p.Yaw, 42) {
		t.Errorf("pose = %+v", p)
	}
}

func TestComputePoseFromIMUBlends(t *testing.T) {
	// Level accelerometer, gyro says 10°/s about X for 1s.
	p := ComputePoseFromIMU(0, 0, 1000, 10, 0, -20, Pose{Yaw: 10}, 1, 0.9)
	if !near(p.Roll, 9) {
		t.Errorf("Roll = %v, want 9", p.Roll)
	}
	if !near(p.Pitch, 0) {
		t.Errorf("Pitch = %v, want 0", p.Pitch)
	}
	if !near(p.Yaw, 350) {
		t.Errorf("Yaw = %v, want 350", p.Yaw)
	}
}

func TestBlendAcrossWrap(t *testing.T) {
	// 179° from the gyro and -179° from gravity are 2° apart, not 358°.
	got := blendAngle(179, -179, 0.5)
	if !near(math.Abs(got), 180) {
		t.Errorf("blendAngle = %v, want ±180", got)
	}
}

type fakeReader struct {
	samples []imu.Sample
	err     error
}

func (f *fakeReader) ReadSample() (imu.Sample, error) {
	if f.err != nil {
		return imu.Sample{}, f.err
	}
	s := f.samples[0]
	if len(f.samples) > 1 {
		f.samples = f.samples[1:]
	}
	return s, nil
}

func TestIMUSource(t *testing.T) {
	level := imu.Sample{AccelMg: [3]float32{0, 0, 1000}, GyroMdps: [3]float32{0, 0, 90000}}
	src := NewIMUSource(&fakeReader{samples: []imu.Sample{level}})
	base := time.Unix(100, 0)
	ticks := []time.Time{base, base.Add(500 * time.Millisecond)}
	src.now = func() time.Time {
		now := ticks[0]
		ticks = ticks[1:]
		return now
	}

	p, err := src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if p.Yaw != 0 {
		t.Errorf("first Yaw = %v", p.Yaw)
	}
	p, err = src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if !near(p.Yaw, 45) {
		t.Errorf("Yaw = %v, want 45", p.Yaw)
	}
	last, smp := src.Last()
	if last != p || smp.GyroMdps[2] != 90000 {
		t.Errorf("Last() = %+v %+v", last, smp)
	}
}

func TestIMUSourceError(t *testing.T) {
	boom := errors.New("bus down")
	src := NewIMUSource(&fakeReader{err: boom})
	if _, err := src.Next(); !errors.Is(err, boom) {
		t.Errorf("Next() = %v", err)
	}
}

func TestMockSampleMatchesMockPose(t *testing.T) {
	m := NewMockSampleSource()
	at := m.start.Add(1300 * time.Millisecond)
	m.now = func() time.Time { return at }
	s, err := m.ReadSample()
	if err != nil {
		t.Fatal(err)
	}
	want := mockPose(1.3)
	got := ComputePoseFromAccel(float64(s.AccelMg[0]), float64(s.AccelMg[1]), float64(s.AccelMg[2]))
	if math.Abs(got.Roll-want.Roll) > 0.01 || math.Abs(got.Pitch-want.Pitch) > 0.01 {
		t.Errorf("tilt = %+v, want %+v", got, want)
	}
}
