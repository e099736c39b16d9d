// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/relabs-tech/lsm6dso32/internal/config"
	"github.com/relabs-tech/lsm6dso32/internal/imu"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"github.com/relabs-tech/lsm6dso32/internal/sensors"
)

// CalibrationDevice is what a still calibration needs from the IMU.
// *sensors.IMUManager implements it.
type CalibrationDevice interface {
	ReadSample() (imu.Sample, error)
	SetUserOffset(w lsm6dso32.OffsetWeight, off [3]int8) error
}

const (
	// Stillness heuristics, in mg of accelerometer noise.
	stillStdGood = 3.0
	stillStdBad  = 15.0

	// Confidence floor (we never want hard zero unless we error out)
	confFloor = 0.05
)

// expectedStillMg is gravity with the device flat and Z up.
var expectedStillMg = [3]float64{0, 0, 1000}

// AxisStats is the per-axis mean and standard deviation of a capture.
type AxisStats struct {
	Mean   [3]float64 `json:"mean"`
	StdDev [3]float64 `json:"stddev"`
}

// CalibrationOptions controls Calibrate.
type CalibrationOptions struct {
	Samples  int
	Interval time.Duration
	Weight   lsm6dso32.OffsetWeight
	Apply    bool
}

// CalibrationResult is written as JSON under ./calibration/.
type CalibrationResult struct {
	SchemaVersion int    `json:"schema_version"`
	CalibrationAt string `json:"calibration_at"` // RFC3339
	Device        string `json:"device"`

	Samples  int       `json:"samples"`
	AccelFS  string    `json:"accel_fs"`
	GyroFS   string    `json:"gyro_fs"`
	AccelMg  AxisStats `json:"accel_mg"`
	GyroMdps AxisStats `json:"gyro_mdps"`

	// Written to X/Y/Z_OFS_USR; the device subtracts offset*weight from
	// the accelerometer output.
	OffsetWeight string  `json:"offset_weight"`
	UserOffset   [3]int8 `json:"user_offset"`
	Clamped      bool    `json:"clamped,omitempty"`
	Applied      bool    `json:"applied"`

	Confidence float64 `json:"confidence"`
}

// offsetLSBmg is the weight of one user offset LSB: 2^-10 g or 2^-6 g.
func offsetLSBmg(w lsm6dso32.OffsetWeight) float64 {
	if w == lsm6dso32.OffsetLSb16mg {
		return 1000.0 / 64
	}
	return 1000.0 / 1024
}

// ComputeUserOffset converts the mean still acceleration into user offset
// registers. Values beyond ±127 LSB are clamped and reported.
func ComputeUserOffset(meanMg [3]float64, w lsm6dso32.OffsetWeight) ([3]int8, bool) {
	var off [3]int8
	clamped := false
	lsb := offsetLSBmg(w)
	for i := range off {
		v := math.Round((meanMg[i] - expectedStillMg[i]) / lsb)
		if v > 127 {
			v, clamped = 127, true
		} else if v < -127 {
			v, clamped = -127, true
		}
		off[i] = int8(v)
	}
	return off, clamped
}

// Calibrate zeroes the user offsets, averages opts.Samples still samples
// and computes new offsets. With opts.Apply the offsets are written and
// enabled on the output. progress, if set, is called after every sample.
func Calibrate(dev CalibrationDevice, opts CalibrationOptions, progress func(done, total int)) (CalibrationResult, error) {
	if opts.Samples <= 0 {
		return CalibrationResult{}, fmt.Errorf("calibration: sample count must be positive")
	}
	res := CalibrationResult{
		SchemaVersion: 1,
		CalibrationAt: time.Now().Format(time.RFC3339),
		Device:        "LSM6DSO32",
		OffsetWeight:  opts.Weight.String(),
	}

	if err := dev.SetUserOffset(opts.Weight, [3]int8{}); err != nil {
		return res, fmt.Errorf("calibration: clear user offset: %w", err)
	}

	accel := make([][3]float64, 0, opts.Samples)
	gyro := make([][3]float64, 0, opts.Samples)
	for i := 0; i < opts.Samples; i++ {
		s, err := dev.ReadSample()
		if err != nil {
			return res, fmt.Errorf("calibration: sample %d: %w", i, err)
		}
		accel = append(accel, [3]float64{float64(s.AccelMg[0]), float64(s.AccelMg[1]), float64(s.AccelMg[2])})
		gyro = append(gyro, [3]float64{float64(s.GyroMdps[0]), float64(s.GyroMdps[1]), float64(s.GyroMdps[2])})
		res.AccelFS, res.GyroFS = s.AccelFS, s.GyroFS
		if progress != nil {
			progress(i+1, opts.Samples)
		}
		if opts.Interval > 0 && i+1 < opts.Samples {
			time.Sleep(opts.Interval)
		}
	}

	res.Samples = len(accel)
	res.AccelMg = axisStats(accel)
	res.GyroMdps = axisStats(gyro)
	res.UserOffset, res.Clamped = ComputeUserOffset(res.AccelMg.Mean, opts.Weight)
	res.Confidence = stillnessConfidence(res.AccelMg.StdDev)

	if opts.Apply {
		if err := dev.SetUserOffset(opts.Weight, res.UserOffset); err != nil {
			return res, fmt.Errorf("calibration: write user offset: %w", err)
		}
		res.Applied = true
	}
	return res, nil
}

func axisStats(samples [][3]float64) AxisStats {
	var st AxisStats
	for axis := 0; axis < 3; axis++ {
		st.Mean[axis] = mean(samples, axis)
		st.StdDev[axis] = stddev(samples, axis)
	}
	return st
}

// stillnessConfidence maps the worst axis noise onto [confFloor, 1].
func stillnessConfidence(std [3]float64) float64 {
	worst := math.Max(std[0], math.Max(std[1], std[2]))
	switch {
	case worst <= stillStdGood:
		return 1
	case worst >= stillStdBad:
		return confFloor
	}
	c := 1 - (worst-stillStdGood)/(stillStdBad-stillStdGood)
	return math.Max(confFloor, c)
}

// Helper functions for statistics
func mean(data [][3]float64, axis int) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v[axis]
	}
	return sum / float64(len(data))
}

func stddev(data [][3]float64, axis int) float64 {
	if len(data) == 0 {
		return 0
	}
	m := mean(data, axis)
	variance := 0.0
	for _, v := range data {
		diff := v[axis] - m
		variance += diff * diff
	}
	variance /= float64(len(data))
	return math.Sqrt(variance)
}

// writeCalibrationFile stores res as indented JSON in dir and returns the
// file path.
func writeCalibrationFile(res CalibrationResult, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal calibration results: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("lsm6dso32_%d_calibration.json", time.Now().Unix()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write calibration file: %w", err)
	}
	return path, nil
}

// RunCalibration guides a still accelerometer calibration on the terminal
// and optionally writes the resulting user offsets.
func RunCalibration() error {
	cfg := config.Get()

	imuManager := sensors.GetIMUManager()
	if err := imuManager.Init(); err != nil {
		return err
	}
	defer imuManager.Close()

	in := bufio.NewReader(os.Stdin)
	fmt.Printf("Calibrating %s with %d samples, offset weight %s\n", imuManager, cfg.IMUCalibrationLen, cfg.IMUOffsetWeight)
	waitEnter(in, "Place the device flat with Z up and keep it still, then press ENTER...")

	opts := CalibrationOptions{
		Samples:  cfg.IMUCalibrationLen,
		Interval: 10 * time.Millisecond,
		Weight:   cfg.IMUOffsetWeight,
	}
	res, err := Calibrate(imuManager, opts, func(done, total int) {
		if done%20 == 0 || done == total {
			fmt.Printf("\r  %3d/%d samples", done, total)
		}
	})
	fmt.Println()
	if err != nil {
		return err
	}

	fmt.Printf("  accel mean  mg: %8.2f %8.2f %8.2f\n", res.AccelMg.Mean[0], res.AccelMg.Mean[1], res.AccelMg.Mean[2])
	fmt.Printf("  accel std   mg: %8.2f %8.2f %8.2f\n", res.AccelMg.StdDev[0], res.AccelMg.StdDev[1], res.AccelMg.StdDev[2])
	fmt.Printf("  gyro mean mdps: %8.1f %8.1f %8.1f\n", res.GyroMdps.Mean[0], res.GyroMdps.Mean[1], res.GyroMdps.Mean[2])
	fmt.Printf("  user offset   : %d %d %d (x%s)\n", res.UserOffset[0], res.UserOffset[1], res.UserOffset[2], res.OffsetWeight)
	fmt.Printf("  confidence    : %.0f%%\n", res.Confidence*100)
	if res.Clamped {
		fmt.Println("  warning: offset clamped to ±127 LSB, try the 16mg weight")
	}

	fmt.Print("Write offsets to X/Y/Z_OFS_USR? [y/N] ")
	answer, _ := in.ReadString('\n')
	if strings.EqualFold(strings.TrimSpace(answer), "y") {
		if err := imuManager.SetUserOffset(cfg.IMUOffsetWeight, res.UserOffset); err != nil {
			return err
		}
		res.Applied = true
		log.Println("calibration: user offsets written")
	}

	path, err := writeCalibrationFile(res, "calibration")
	if err != nil {
		return err
	}
	log.Printf("calibration: saved results to %s", path)
	if !res.Applied {
		log.Println("calibration: offsets not written, device left with zero user offset")
	}
	return nil
}

func waitEnter(in *bufio.Reader, prompt string) {
	fmt.Println(prompt)
	_, _ = in.ReadString('\n')
}
