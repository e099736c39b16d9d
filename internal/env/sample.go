// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package env

// Sample represents a single environmental measurement (BMP), published
// next to the IMU die temperature for comparison.
type Sample struct {
	Source string `json:"source"`

	Temperature float64 `json:"temp_c"`      // °C
	Pressure    float64 `json:"pressure_pa"` // Pa
	PressureHPa float64 `json:"pressure_hpa"`
	IMUTempC    float32 `json:"imu_temp_c,omitempty"`
	TempDeltaC  float64 `json:"temp_delta_c,omitempty"`
}
