// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/relabs-tech/lsm6dso32/internal/config"
	"github.com/relabs-tech/lsm6dso32/internal/env"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/bmxx80"
	"periph.io/x/host/v3"
)

// ErrNoBMP is returned when no BMP SPI device is configured.
var ErrNoBMP = errors.New("BMP not configured")

var (
	bmpDev     *bmxx80.Dev
	bmpOnce    sync.Once
	bmpInitErr error
)

// initBMP initializes the reference BMP once.
func initBMP() {
	bmpOnce.Do(func() {
		cfg := config.Get()
		if cfg == nil || cfg.BMPSPIDevice == "" {
			bmpInitErr = ErrNoBMP
			return
		}

		if _, err := host.Init(); err != nil {
			bmpInitErr = fmt.Errorf("periph host init: %w", err)
			return
		}

		port, err := spireg.Open(cfg.BMPSPIDevice)
		if err != nil {
			bmpInitErr = fmt.Errorf("BMP SPI open: %w", err)
			return
		}

		bmpDev, err = bmxx80.NewSPI(port, &bmxx80.DefaultOpts)
		if err != nil {
			port.Close()
			bmpInitErr = fmt.Errorf("BMP init: %w", err)
			return
		}

		log.Printf("BMP: initialized on %s", cfg.BMPSPIDevice)
	})
}

// ReadEnv reads the BMP (temp + pressure).
func ReadEnv() (env.Sample, error) {
	initBMP()
	if bmpInitErr != nil {
		return env.Sample{}, bmpInitErr
	}

	var e physic.Env
	if err := bmpDev.Sense(&e); err != nil {
		return env.Sample{}, fmt.Errorf("BMP sense: %w", err)
	}
	return EnvFromPhysic("bmp", e), nil
}

// EnvFromPhysic converts a periph measurement.
func EnvFromPhysic(source string, e physic.Env) env.Sample {
	pressurePa := float64(e.Pressure) / float64(physic.Pascal)
	return env.Sample{
		Source:      source,
		Temperature: e.Temperature.Celsius(),
		Pressure:    pressurePa,
		PressureHPa: pressurePa / 100.0,
	}
}

// WithIMUTemp adds the IMU die temperature and its offset from the BMP.
func WithIMUTemp(s env.Sample, imuTempC float32) env.Sample {
	s.IMUTempC = imuTempC
	s.TempDeltaC = float64(imuTempC) - s.Temperature
	return s
}
