// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package orientation

import (
	"math"
)

// Pose is the canonical representation of orientation for your app.
type Pose struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// Source is anything that can provide poses over time.
type Source interface {
	Next() (Pose, error)
}

// ComputePoseFromAccel computes roll and pitch from accelerometer data only.
// Yaw is set to 0.
//
// Uses simple tilt formulas:
//
//	roll  = atan2(ay, az)
//	pitch = atan2(-ax, sqrt(ay² + az²))
func ComputePoseFromAccel(ax, ay, az float64) Pose {
	rollRad := math.Atan2(ay, az)
	pitchRad := math.Atan2(-ax, math.Sqrt(ay*ay+az*az))

	return Pose{
		Roll:  rollRad * 180.0 / math.Pi,
		Pitch: pitchRad * 180.0 / math.Pi,
	}
}

// AccelToPose computes roll and pitch from raw accelerometer values (in any unit).
// This is a convenience alias for ComputePoseFromAccel.
func AccelToPose(ax, ay, az float64) Pose {
	return ComputePoseFromAccel(ax, ay, az)
}

// DefaultAlpha weights the integrated gyro against the accelerometer tilt.
const DefaultAlpha = 0.98

// ComputePoseFromIMU runs one complementary filter step. Accelerations are
// in any unit, angular rates in degrees per second, dt in seconds. Yaw is
// the integrated Z rate wrapped to [0, 360).
func ComputePoseFromIMU(ax, ay, az, gx, gy, gz float64, prev Pose, dt, alpha float64) Pose {
	acc := ComputePoseFromAccel(ax, ay, az)
	if dt <= 0 {
		acc.Yaw = prev.Yaw
		return acc
	}
	return Pose{
		Roll:  blendAngle(prev.Roll+gx*dt, acc.Roll, alpha),
		Pitch: blendAngle(prev.Pitch+gy*dt, acc.Pitch, alpha),
		Yaw:   wrap360(prev.Yaw + gz*dt),
	}
}

// blendAngle mixes two angles in degrees along the shorter arc.
func blendAngle(gyro, acc, alpha float64) float64 {
	d := math.Remainder(gyro-acc, 360)
	return wrap180(acc + alpha*d)
}

func wrap180(a float64) float64 {
	return math.Remainder(a, 360)
}

func wrap360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
