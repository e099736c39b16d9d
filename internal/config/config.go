// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
)

// Config holds all application configuration values.
type Config struct {
	// MQTT
	MQTTBroker           string
	MQTTClientIDProducer string
	MQTTClientIDConsole  string
	MQTTClientIDWeb      string
	MQTTClientIDDisplay  string

	// Topics
	TopicSample string
	TopicPose   string
	TopicEvents string
	TopicSteps  string
	TopicFIFO   string
	TopicEnv    string

	// IMU bus
	IMUBus        string // "i2c" or "spi"
	IMUI2CBus     string // i2creg name, empty for the first bus
	IMUI2CAddr    uint16
	IMUSPIDevice  string
	IMUSPISpeedHz int64
	IMUInt1Pin    string // GPIO wired to INT1, empty to poll on a ticker

	// IMU setup
	IMUAccelODR       lsm6dso32.XLDataRate
	IMUAccelRange     lsm6dso32.XLFullScale
	IMUGyroODR        lsm6dso32.GYDataRate
	IMUGyroRange      lsm6dso32.GYFullScale
	IMUFIFOMode       lsm6dso32.FIFOMode
	IMUFIFOWatermark  uint16
	IMUFIFOBatch      lsm6dso32.BatchRate
	IMUPedometer      lsm6dso32.PedoMode
	IMUTilt           bool
	IMUSigMotion      bool
	IMUUCFFile        string // optional Unico configuration applied after setup
	IMUOffsetWeight   lsm6dso32.OffsetWeight
	IMUCalibrationLen int // samples averaged by the calibration tool

	// BMP
	BMPSPIDevice string // empty disables the environment sensor

	// Timing
	IMUSampleInterval  int // milliseconds
	ConsoleLogInterval int // milliseconds

	// Web Server
	WebServerPort       int
	RegisterDebugPort   int
	RegisterDebugWrites bool

	// Display
	DisplayI2CAddr        uint16
	DisplayUpdateInterval int    // milliseconds
	DisplayContent        string // "sample", "pose" or "events"
}

// displayI2CAddr is the SSD1306 address fixed by the periph driver.
const displayI2CAddr = 0x3C

var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// defaults returns a Config with the values used when a key is absent.
func defaults() *Config {
	return &Config{
		TopicSample:           "inertial/imu",
		TopicPose:             "inertial/pose",
		TopicEvents:           "inertial/events",
		TopicSteps:            "inertial/steps",
		TopicFIFO:             "inertial/fifo",
		TopicEnv:              "inertial/env",
		IMUBus:                "i2c",
		IMUI2CAddr:            lsm6dso32.I2CAddrLow,
		IMUAccelODR:           lsm6dso32.XLODR104HzHighPerf,
		IMUAccelRange:         lsm6dso32.XL4g,
		IMUGyroODR:            lsm6dso32.GYODR104HzHighPerf,
		IMUGyroRange:          lsm6dso32.GY2000dps,
		IMUFIFOMode:           lsm6dso32.BypassMode,
		IMUFIFOBatch:          lsm6dso32.NotBatched,
		IMUPedometer:          lsm6dso32.PedoDisable,
		IMUOffsetWeight:       lsm6dso32.OffsetLSb1mg,
		IMUCalibrationLen:     200,
		IMUSampleInterval:     100,
		ConsoleLogInterval:    1000,
		WebServerPort:         8080,
		RegisterDebugPort:     8081,
		DisplayI2CAddr:        displayI2CAddr,
		DisplayUpdateInterval: 500,
		DisplayContent:        "pose",
	}
}

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse reads KEY=VALUE lines from r. Blank lines and lines starting with
// '#' are skipped.
func Parse(r io.Reader) (*Config, error) {
	cfg := defaults()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	var err error
	switch key {
	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_PRODUCER":
		c.MQTTClientIDProducer = value
	case "MQTT_CLIENT_ID_CONSOLE":
		c.MQTTClientIDConsole = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value
	case "MQTT_CLIENT_ID_DISPLAY":
		c.MQTTClientIDDisplay = value

	// Topics
	case "TOPIC_SAMPLE":
		c.TopicSample = value
	case "TOPIC_POSE":
		c.TopicPose = value
	case "TOPIC_EVENTS":
		c.TopicEvents = value
	case "TOPIC_STEPS":
		c.TopicSteps = value
	case "TOPIC_FIFO":
		c.TopicFIFO = value
	case "TOPIC_ENV":
		c.TopicEnv = value

	// IMU bus
	case "IMU_BUS":
		v := strings.ToLower(value)
		if v != "i2c" && v != "spi" {
			return fmt.Errorf("IMU_BUS must be i2c or spi, got %q", value)
		}
		c.IMUBus = v
	case "IMU_I2C_BUS":
		c.IMUI2CBus = value
	case "IMU_I2C_ADDR":
		addr, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid IMU_I2C_ADDR %q: %w", value, err)
		}
		if uint16(addr) != lsm6dso32.I2CAddrLow && uint16(addr) != lsm6dso32.I2CAddrHigh {
			return fmt.Errorf("IMU_I2C_ADDR must be 0x6A or 0x6B, got 0x%02X", addr)
		}
		c.IMUI2CAddr = uint16(addr)
	case "IMU_SPI_DEVICE":
		c.IMUSPIDevice = value
	case "IMU_SPI_SPEED_HZ":
		hz, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid IMU_SPI_SPEED_HZ %q: %w", value, err)
		}
		if hz <= 0 || hz > 10_000_000 {
			return fmt.Errorf("IMU_SPI_SPEED_HZ must be 1-10000000, got %d", hz)
		}
		c.IMUSPISpeedHz = hz
	case "IMU_INT1_PIN":
		c.IMUInt1Pin = value

	// IMU setup
	case "IMU_ACCEL_ODR":
		c.IMUAccelODR, err = lsm6dso32.ParseXLDataRate(value)
	case "IMU_ACCEL_RANGE":
		c.IMUAccelRange, err = lsm6dso32.ParseXLFullScale(value)
	case "IMU_GYRO_ODR":
		c.IMUGyroODR, err = lsm6dso32.ParseGYDataRate(value)
	case "IMU_GYRO_RANGE":
		c.IMUGyroRange, err = lsm6dso32.ParseGYFullScale(value)
	case "IMU_FIFO_MODE":
		c.IMUFIFOMode, err = lsm6dso32.ParseFIFOMode(value)
	case "IMU_FIFO_BATCH":
		c.IMUFIFOBatch, err = lsm6dso32.ParseBatchRate(value)
	case "IMU_FIFO_WATERMARK":
		wtm, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid IMU_FIFO_WATERMARK %q: %w", value, err)
		}
		if wtm > lsm6dso32.MaxFIFOWatermark {
			return fmt.Errorf("IMU_FIFO_WATERMARK must be 0-%d, got %d", lsm6dso32.MaxFIFOWatermark, wtm)
		}
		c.IMUFIFOWatermark = uint16(wtm)
	case "IMU_PEDOMETER":
		c.IMUPedometer, err = lsm6dso32.ParsePedoMode(value)
	case "IMU_TILT":
		c.IMUTilt, err = strconv.ParseBool(value)
	case "IMU_SIGMOT":
		c.IMUSigMotion, err = strconv.ParseBool(value)
	case "IMU_UCF_FILE":
		c.IMUUCFFile = value
	case "IMU_OFFSET_WEIGHT":
		c.IMUOffsetWeight, err = lsm6dso32.ParseOffsetWeight(value)
	case "IMU_CALIBRATION_SAMPLES":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_CALIBRATION_SAMPLES %q: %w", value, err)
		}
		if n < 1 {
			return fmt.Errorf("IMU_CALIBRATION_SAMPLES must be positive, got %d", n)
		}
		c.IMUCalibrationLen = n

	// BMP
	case "BMP_SPI_DEVICE":
		c.BMPSPIDevice = value

	// Timing
	case "IMU_SAMPLE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_SAMPLE_INTERVAL %q: %w", value, err)
		}
		c.IMUSampleInterval = interval
	case "CONSOLE_LOG_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid CONSOLE_LOG_INTERVAL %q: %w", value, err)
		}
		c.ConsoleLogInterval = interval

	// Web Server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		c.WebServerPort = port
	case "REGISTER_DEBUG_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid REGISTER_DEBUG_PORT %q: %w", value, err)
		}
		c.RegisterDebugPort = port
	case "REGISTER_DEBUG_WRITES":
		c.RegisterDebugWrites, err = strconv.ParseBool(value)

	// Display
	case "DISPLAY_I2C_ADDR":
		addr, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_I2C_ADDR %q: %w", value, err)
		}
		// The ssd1306 driver only talks to 0x3C.
		if addr != displayI2CAddr {
			return fmt.Errorf("DISPLAY_I2C_ADDR must be 0x%02X, got 0x%02X", displayI2CAddr, addr)
		}
		c.DisplayI2CAddr = uint16(addr)
	case "DISPLAY_UPDATE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_UPDATE_INTERVAL %q: %w", value, err)
		}
		c.DisplayUpdateInterval = interval
	case "DISPLAY_CONTENT":
		switch value {
		case "sample", "pose", "events":
			c.DisplayContent = value
		default:
			return fmt.Errorf("DISPLAY_CONTENT must be sample, pose or events, got %q", value)
		}

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required")
	}
	if c.IMUBus == "spi" && c.IMUSPIDevice == "" {
		return fmt.Errorf("IMU_SPI_DEVICE is required when IMU_BUS=spi")
	}
	if c.IMUSampleInterval <= 0 {
		return fmt.Errorf("IMU_SAMPLE_INTERVAL must be positive")
	}
	if c.ConsoleLogInterval <= 0 {
		return fmt.Errorf("CONSOLE_LOG_INTERVAL must be positive")
	}
	if c.IMUFIFOMode != lsm6dso32.BypassMode && c.IMUFIFOBatch == lsm6dso32.NotBatched {
		return fmt.Errorf("IMU_FIFO_BATCH is required when IMU_FIFO_MODE is not bypass")
	}
	return nil
}

// InitGlobal initializes the global configuration from file. Only the first
// call has an effect.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance, or nil before InitGlobal.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
