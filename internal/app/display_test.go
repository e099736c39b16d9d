// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/relabs-tech/lsm6dso32/internal/imu"
	"github.com/relabs-tech/lsm6dso32/internal/orientation"
)

func TestDisplayLines(t *testing.T) {
	d := &DisplayData{
		pose:       orientation.Pose{Roll: 1.5, Pitch: -30, Yaw: 359.9},
		havePose:   true,
		events:     imu.Events{DoubleTap: true, TapAxes: "Z", FreeFall: true},
		haveEvents: true,
		steps:      imu.Steps{Count: 12},
		haveSteps:  true,
	}
	tests := []struct {
		content string
		want    []string
	}{
		{"pose", []string{"R:    1.5", "P:  -30.0", "Y:  359.9"}},
		{"events", []string{"Steps: 12", "DblTap Z", "Free fall"}},
		{"sample", []string{"", "IMU sample", "Waiting..."}},
	}
	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			got, err := displayLines(tt.content, d)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("lines = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
	if _, err := displayLines("compass", d); err == nil {
		t.Error("unknown content accepted")
	}
}

func TestRenderLines(t *testing.T) {
	lit := func(img *image1bit.VerticalLSB) int {
		n := 0
		for _, b := range img.Pix {
			for ; b != 0; b &= b - 1 {
				n++
			}
		}
		return n
	}
	if n := lit(renderLines(nil)); n != 0 {
		t.Errorf("blank screen has %d pixels lit", n)
	}
	one := lit(renderLines([]string{"R: 1.0"}))
	two := lit(renderLines([]string{"R: 1.0", "P: 2.0"}))
	if one == 0 || two <= one {
		t.Errorf("lit pixels: one line %d, two lines %d", one, two)
	}
	if lit(splashImage()) == 0 {
		t.Error("splash is blank")
	}
}
