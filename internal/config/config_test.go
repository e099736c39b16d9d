// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
)

func TestLoadExampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "lsm6dso32_config.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IMUAccelRange != lsm6dso32.XL8g {
		t.Errorf("IMUAccelRange = %s", cfg.IMUAccelRange)
	}
	if cfg.IMUGyroODR != lsm6dso32.GYODR104HzHighPerf {
		t.Errorf("IMUGyroODR = %s", cfg.IMUGyroODR)
	}
	if cfg.IMUFIFOMode != lsm6dso32.StreamMode || cfg.IMUFIFOBatch != lsm6dso32.BatchedAt104Hz {
		t.Errorf("FIFO = %s %s", cfg.IMUFIFOMode, cfg.IMUFIFOBatch)
	}
	if cfg.IMUPedometer != lsm6dso32.PedoBaseMode || !cfg.IMUTilt || cfg.IMUSigMotion {
		t.Errorf("embedded = %s tilt=%v sigmot=%v", cfg.IMUPedometer, cfg.IMUTilt, cfg.IMUSigMotion)
	}
	if cfg.IMUI2CAddr != 0x6A || cfg.DisplayI2CAddr != 0x3C {
		t.Errorf("addresses = 0x%02X 0x%02X", cfg.IMUI2CAddr, cfg.DisplayI2CAddr)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("MQTT_BROKER=tcp://broker:1883\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IMUBus != "i2c" || cfg.IMUAccelODR != lsm6dso32.XLODR104HzHighPerf {
		t.Errorf("defaults = %s %s", cfg.IMUBus, cfg.IMUAccelODR)
	}
	if cfg.TopicPose != "inertial/pose" || cfg.RegisterDebugPort != 8081 {
		t.Errorf("defaults = %q %d", cfg.TopicPose, cfg.RegisterDebugPort)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing broker", "IMU_BUS=i2c\n", "MQTT_BROKER is required"},
		{"no equals", "MQTT_BROKER\n", "invalid config line 1"},
		{"unknown key", "MQTT_BROKER=x\nFOO=1\n", "unknown config key"},
		{"bad bus", "IMU_BUS=uart\n", "IMU_BUS must be"},
		{"bad address", "IMU_I2C_ADDR=0x68\n", "0x6A or 0x6B"},
		{"bad odr", "IMU_ACCEL_ODR=100Hz\n", "invalid IMU_ACCEL_ODR"},
		{"bad range", "IMU_GYRO_RANGE=4000dps\n", "invalid IMU_GYRO_RANGE"},
		{"watermark", "IMU_FIFO_WATERMARK=512\n", "IMU_FIFO_WATERMARK must be"},
		{"spi without device", "MQTT_BROKER=x\nIMU_BUS=spi\n", "IMU_SPI_DEVICE is required"},
		{"fifo without batch", "MQTT_BROKER=x\nIMU_FIFO_MODE=stream\n", "IMU_FIFO_BATCH is required"},
		{"display", "DISPLAY_CONTENT=compass\n", "DISPLAY_CONTENT must be"},
		{"display address", "DISPLAY_I2C_ADDR=0x3D\n", "DISPLAY_I2C_ADDR must be 0x3C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestParseEnumErrorWrapsDriverError(t *testing.T) {
	_, err := Parse(strings.NewReader("IMU_PEDOMETER=sometimes\n"))
	if !errors.Is(err, lsm6dso32.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not exist", err)
	}
}
