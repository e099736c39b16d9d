// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/relabs-tech/lsm6dso32/internal/config"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// openBus initializes periph and opens the configured transport.
func openBus(cfg *config.Config) (lsm6dso32.Bus, io.Closer, string, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, "", fmt.Errorf("LSM6DSO32: periph host init: %w", err)
	}

	switch cfg.IMUBus {
	case "spi":
		port, err := spireg.Open(cfg.IMUSPIDevice)
		if err != nil {
			return nil, nil, "", fmt.Errorf("LSM6DSO32: SPI open (%s): %w", cfg.IMUSPIDevice, err)
		}
		hz := physic.Frequency(cfg.IMUSPISpeedHz) * physic.Hertz
		tr, err := lsm6dso32.NewSPI(port, hz)
		if err != nil {
			port.Close()
			return nil, nil, "", err
		}
		return tr, port, tr.String(), nil
	default:
		bus, err := i2creg.Open(cfg.IMUI2CBus)
		if err != nil {
			return nil, nil, "", fmt.Errorf("LSM6DSO32: I2C open (%q): %w", cfg.IMUI2CBus, err)
		}
		tr := lsm6dso32.NewI2C(bus, cfg.IMUI2CAddr)
		return tr, bus, tr.String(), nil
	}
}

// OpenDevice opens the configured bus and checks WHO_AM_I without resetting
// or configuring the device, for tools that inspect live settings.
func OpenDevice(cfg *config.Config) (*lsm6dso32.Dev, io.Closer, error) {
	bus, closer, desc, err := openBus(cfg)
	if err != nil {
		return nil, nil, err
	}
	dev := newDev(bus)
	id, err := dev.DeviceID()
	if err != nil {
		closer.Close()
		return nil, nil, fmt.Errorf("LSM6DSO32: read WHO_AM_I on %s: %w", desc, err)
	}
	if id != lsm6dso32.DeviceID {
		closer.Close()
		return nil, nil, fmt.Errorf("LSM6DSO32 on %s: %w: got 0x%02X", desc, lsm6dso32.ErrWrongDevice, id)
	}
	return dev, closer, nil
}

func newDev(bus lsm6dso32.Bus) *lsm6dso32.Dev {
	return lsm6dso32.New(bus, &lsm6dso32.Opts{
		OnReservedValue: func(field string, raw uint8) {
			log.Printf("LSM6DSO32: reserved value 0x%02X in %s", raw, field)
		},
	})
}

// openInt1Pin prepares the GPIO wired to INT1 for rising-edge waits.
func openInt1Pin(name string) (gpio.PinIn, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("INT1 pin %q not found", name)
	}
	if err := pin.In(gpio.PullDown, gpio.RisingEdge); err != nil {
		return nil, fmt.Errorf("INT1 pin %s: %w", name, err)
	}
	return pin, nil
}

// configure applies the configured setup after Init, logging each step.
// The output data rates go last so the sensors start in their final mode.
func configure(dev *lsm6dso32.Dev, cfg *config.Config) error {
	if err := dev.SetXLFullScale(cfg.IMUAccelRange); err != nil {
		return fmt.Errorf("LSM6DSO32: set accel range: %w", err)
	}
	log.Printf("LSM6DSO32: accelerometer range set to ±%s", cfg.IMUAccelRange)

	if err := dev.SetGYFullScale(cfg.IMUGyroRange); err != nil {
		return fmt.Errorf("LSM6DSO32: set gyro range: %w", err)
	}
	log.Printf("LSM6DSO32: gyroscope range set to ±%s", cfg.IMUGyroRange)

	if err := dev.SetTimestamp(true); err != nil {
		return fmt.Errorf("LSM6DSO32: enable timestamp: %w", err)
	}

	// Self-test state left over from a previous run would bias every sample.
	if err := dev.SetXLSelfTest(lsm6dso32.XLSTDisable); err != nil {
		return fmt.Errorf("LSM6DSO32: clear accel self-test: %w", err)
	}
	if err := dev.SetGYSelfTest(lsm6dso32.GYSTDisable); err != nil {
		return fmt.Errorf("LSM6DSO32: clear gyro self-test: %w", err)
	}

	if err := configureFIFO(dev, cfg); err != nil {
		return err
	}
	if err := configureEmbedded(dev, cfg); err != nil {
		return err
	}

	if cfg.IMUUCFFile != "" {
		f, err := os.Open(cfg.IMUUCFFile)
		if err != nil {
			return fmt.Errorf("LSM6DSO32: open UCF: %w", err)
		}
		st, err := dev.ApplyUCF(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("LSM6DSO32: apply %s: %w", cfg.IMUUCFFile, err)
		}
		log.Printf("LSM6DSO32: applied %s (%d writes, %d waits)", cfg.IMUUCFFile, st.Writes, st.Waits)
	}

	if err := dev.SetXLDataRate(cfg.IMUAccelODR); err != nil {
		return fmt.Errorf("LSM6DSO32: set accel ODR: %w", err)
	}
	log.Printf("LSM6DSO32: accelerometer ODR set to %s", cfg.IMUAccelODR)

	if err := dev.SetGYDataRate(cfg.IMUGyroODR); err != nil {
		return fmt.Errorf("LSM6DSO32: set gyro ODR: %w", err)
	}
	log.Printf("LSM6DSO32: gyroscope ODR set to %s", cfg.IMUGyroODR)

	if cfg.IMUInt1Pin != "" {
		route, err := dev.GetPinInt1Route()
		if err != nil {
			return fmt.Errorf("LSM6DSO32: read INT1 route: %w", err)
		}
		route.Int1Ctrl |= lsm6dso32.Int1DrdyXL
		if cfg.IMUFIFOMode != lsm6dso32.BypassMode {
			route.Int1Ctrl |= lsm6dso32.Int1FIFOTh
		}
		if err := dev.SetPinInt1Route(route); err != nil {
			return fmt.Errorf("LSM6DSO32: route INT1: %w", err)
		}
		log.Printf("LSM6DSO32: %s", route)
	}
	return nil
}

func configureFIFO(dev *lsm6dso32.Dev, cfg *config.Config) error {
	if cfg.IMUFIFOMode == lsm6dso32.BypassMode {
		return dev.SetFIFOMode(lsm6dso32.BypassMode)
	}
	if err := dev.SetFIFOWatermark(cfg.IMUFIFOWatermark); err != nil {
		return fmt.Errorf("LSM6DSO32: set FIFO watermark: %w", err)
	}
	if err := dev.SetFIFOXLBatch(cfg.IMUFIFOBatch); err != nil {
		return fmt.Errorf("LSM6DSO32: set FIFO accel batch: %w", err)
	}
	if err := dev.SetFIFOGYBatch(cfg.IMUFIFOBatch); err != nil {
		return fmt.Errorf("LSM6DSO32: set FIFO gyro batch: %w", err)
	}
	if err := dev.SetFIFOMode(cfg.IMUFIFOMode); err != nil {
		return fmt.Errorf("LSM6DSO32: set FIFO mode: %w", err)
	}
	log.Printf("LSM6DSO32: FIFO %s, batch %s, watermark %d", cfg.IMUFIFOMode, cfg.IMUFIFOBatch, cfg.IMUFIFOWatermark)
	return nil
}

func configureEmbedded(dev *lsm6dso32.Dev, cfg *config.Config) error {
	if err := dev.SetPedoSens(cfg.IMUPedometer); err != nil {
		return fmt.Errorf("LSM6DSO32: set pedometer: %w", err)
	}
	if err := dev.SetTiltSens(cfg.IMUTilt); err != nil {
		return fmt.Errorf("LSM6DSO32: set tilt: %w", err)
	}
	if err := dev.SetMotionSens(cfg.IMUSigMotion); err != nil {
		return fmt.Errorf("LSM6DSO32: set significant motion: %w", err)
	}
	if cfg.IMUPedometer != lsm6dso32.PedoDisable && cfg.IMUFIFOMode != lsm6dso32.BypassMode {
		if err := dev.SetFIFOPedoBatch(true); err != nil {
			return fmt.Errorf("LSM6DSO32: batch steps: %w", err)
		}
	}
	log.Printf("LSM6DSO32: pedometer %s, tilt %v, significant motion %v", cfg.IMUPedometer, cfg.IMUTilt, cfg.IMUSigMotion)
	return nil
}
