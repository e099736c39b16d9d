// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package orientation

import (
	"fmt"
	"sync"
	"time"

	"github.com/relabs-tech/lsm6dso32/internal/imu"
)

// SampleReader yields converted IMU samples.
type SampleReader interface {
	ReadSample() (imu.Sample, error)
}

// IMUSource fuses accelerometer tilt with integrated angular rate.
type IMUSource struct {
	mu sync.Mutex

	r     SampleReader
	alpha float64
	now   func() time.Time

	pose   Pose
	last   time.Time
	primed bool
	sample imu.Sample
}

// NewIMUSource wraps r with a complementary filter.
func NewIMUSource(r SampleReader) *IMUSource {
	return &IMUSource{r: r, alpha: DefaultAlpha, now: time.Now}
}

// Next reads one sample and advances the filter. The first sample seeds the
// pose from the accelerometer alone.
func (s *IMUSource) Next() (Pose, error) {
	smp, err := s.r.ReadSample()
	if err != nil {
		return Pose{}, fmt.Errorf("orientation: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(smp, s.now()), nil
}

// Update advances the filter with a sample read elsewhere.
func (s *IMUSource) Update(smp imu.Sample, t time.Time) Pose {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(smp, t)
}

func (s *IMUSource) update(smp imu.Sample, t time.Time) Pose {
	a, g := smp.AccelMg, smp.GyroMdps
	dt := 0.0
	if s.primed {
		dt = t.Sub(s.last).Seconds()
	}
	s.pose = ComputePoseFromIMU(
		float64(a[0]), float64(a[1]), float64(a[2]),
		float64(g[0])/1000, float64(g[1])/1000, float64(g[2])/1000,
		s.pose, dt, s.alpha)
	s.last = t
	s.primed = true
	s.sample = smp
	return s.pose
}

// Last returns the most recent pose and the sample it came from.
func (s *IMUSource) Last() (Pose, imu.Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pose, s.sample
}
