// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package imu

// IMURaw represents a single raw LSM6DSO32 output sample.
type IMURaw struct {
	Ax int16 `json:"ax"` // accel
	Ay int16 `json:"ay"`
	Az int16 `json:"az"`

	Gx int16 `json:"gx"` // gyro
	Gy int16 `json:"gy"`
	Gz int16 `json:"gz"`

	Temp      int16  `json:"temp"`
	Timestamp uint32 `json:"timestamp"` // 25us ticks
}

// Sample is a raw sample together with its values in physical units.
type Sample struct {
	Raw IMURaw `json:"raw"`

	AccelMg   [3]float32 `json:"accel_mg"`
	GyroMdps  [3]float32 `json:"gyro_mdps"`
	TempC     float32    `json:"temp_c"`
	TimeNs    float32    `json:"time_ns"`
	AccelFS   string     `json:"accel_fs"`
	GyroFS    string     `json:"gyro_fs"`
	Timestamp string     `json:"time"`
}

// Events is a decoded interrupt source snapshot.
type Events struct {
	FreeFall    bool   `json:"free_fall"`
	WakeUp      bool   `json:"wake_up"`
	WakeUpAxes  string `json:"wake_up_axes,omitempty"`
	SingleTap   bool   `json:"single_tap"`
	DoubleTap   bool   `json:"double_tap"`
	TapAxes     string `json:"tap_axes,omitempty"`
	TapNegative bool   `json:"tap_negative,omitempty"`
	SixD        bool   `json:"six_d"`
	Orientation uint8  `json:"orientation,omitempty"`
	Sleep       bool   `json:"sleep"`
	Step        bool   `json:"step"`
	Tilt        bool   `json:"tilt"`
	SigMotion   bool   `json:"sig_motion"`
	FSM         uint16 `json:"fsm,omitempty"` // bit n-1 set when FSM n fired
	Timestamp   string `json:"time"`
}

// Any reports whether at least one event fired.
func (e Events) Any() bool {
	return e.FreeFall || e.WakeUp || e.SingleTap || e.DoubleTap || e.SixD ||
		e.Step || e.Tilt || e.SigMotion || e.FSM != 0
}

// Steps is the pedometer counter.
type Steps struct {
	Count     uint16 `json:"count"`
	Timestamp string `json:"time"`
}

// FIFOWord is one decoded FIFO entry.
type FIFOWord struct {
	Tag  string   `json:"tag"`
	Cnt  uint8    `json:"cnt"`
	Data [3]int16 `json:"data"`
}

// FIFOBatch is everything drained from the FIFO in one pass.
type FIFOBatch struct {
	Words     []FIFOWord `json:"words"`
	Overrun   bool       `json:"overrun"`
	Timestamp string     `json:"time"`
}

// IMURawSource is anything that yields raw samples.
type IMURawSource interface {
	NextRaw() (IMURaw, error)
}
