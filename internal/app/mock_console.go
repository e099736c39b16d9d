// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"time"

	"github.com/relabs-tech/lsm6dso32/internal/orientation"
)

// RunMockConsole runs the fusion filter over synthetic samples and prints
// the pose alongside the sample it came from. No broker needed.
func RunMockConsole() error {
	src := orientation.NewIMUSource(orientation.NewMockSampleSource())
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		pose, err := src.Next()
		if err != nil {
			return err
		}
		_, smp := src.Last()
		fmt.Println(formatPose(pose))
		fmt.Println(formatSample(smp))
	}
	return nil
}
