// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/lsm6dso32/internal/config"
	"github.com/relabs-tech/lsm6dso32/internal/imu"
	"github.com/relabs-tech/lsm6dso32/internal/orientation"
)

// DisplayData holds the latest data for display
type DisplayData struct {
	mu sync.RWMutex

	sample     imu.Sample
	haveSample bool

	pose     orientation.Pose
	havePose bool

	events     imu.Events
	haveEvents bool
	steps      imu.Steps
	haveSteps  bool
}

func (d *DisplayData) snapshot() DisplayData {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return DisplayData{
		sample:     d.sample,
		haveSample: d.haveSample,
		pose:       d.pose,
		havePose:   d.havePose,
		events:     d.events,
		haveEvents: d.haveEvents,
		steps:      d.steps,
		haveSteps:  d.haveSteps,
	}
}

// displayContents lists the screens RunDisplay can show.
var displayContents = map[string]bool{"sample": true, "pose": true, "events": true}

// displayLines returns up to four 7x13 text lines for a screen.
func displayLines(content string, d *DisplayData) ([]string, error) {
	switch content {
	case "sample":
		if !d.haveSample {
			return []string{"", "IMU sample", "Waiting..."}, nil
		}
		s := d.sample
		return []string{
			fmt.Sprintf("A:%6.0f%6.0f", s.AccelMg[0], s.AccelMg[1]),
			fmt.Sprintf("  %6.0f mg", s.AccelMg[2]),
			fmt.Sprintf("G:%6.1f%6.1f", s.GyroMdps[0]/1000, s.GyroMdps[1]/1000),
			fmt.Sprintf("  %6.1f  %4.1fC", s.GyroMdps[2]/1000, s.TempC),
		}, nil
	case "pose":
		if !d.havePose {
			return []string{"", "Orientation", "Waiting..."}, nil
		}
		return []string{
			fmt.Sprintf("R: %6.1f", d.pose.Roll),
			fmt.Sprintf("P: %6.1f", d.pose.Pitch),
			fmt.Sprintf("Y: %6.1f", d.pose.Yaw),
		}, nil
	case "events":
		if !d.haveEvents && !d.haveSteps {
			return []string{"", "Events", "Waiting..."}, nil
		}
		lines := []string{fmt.Sprintf("Steps: %d", d.steps.Count)}
		e := d.events
		if e.SingleTap || e.DoubleTap {
			tap := "Tap"
			if e.DoubleTap {
				tap = "DblTap"
			}
			lines = append(lines, tap+" "+e.TapAxes)
		}
		if e.FreeFall {
			lines = append(lines, "Free fall")
		}
		if e.WakeUp {
			lines = append(lines, "Wake "+e.WakeUpAxes)
		}
		if e.Tilt || e.SigMotion {
			lines = append(lines, "Motion")
		}
		if len(lines) > 4 {
			lines = lines[:4]
		}
		return lines, nil
	default:
		return nil, fmt.Errorf("unknown display content type: %s", content)
	}
}

// renderLines draws text lines 13 pixels apart onto a blank 128x64 image.
func renderLines(lines []string) *image1bit.VerticalLSB {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))

	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(0, 13*(i+1))
		drawer.DrawBytes([]byte(line))
	}
	return img
}

func splashImage() *image1bit.VerticalLSB {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))

	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
	}

	drawer.Dot = fixed.P(22, 26)
	drawer.DrawBytes([]byte("LSM6DSO32"))

	drawer.Dot = fixed.P(15, 43)
	drawer.DrawBytes([]byte("Waiting for"))

	drawer.Dot = fixed.P(36, 56)
	drawer.DrawBytes([]byte("samples"))

	return img
}

// RunDisplay shows one screen of IMU data on an SSD1306 OLED, fed from MQTT.
func RunDisplay() error {
	cfg := config.Get()
	content := cfg.DisplayContent
	if !displayContents[content] {
		return fmt.Errorf("unknown display content type: %s", content)
	}

	// Initialize periph
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph: %w", err)
	}

	// Open I2C bus
	bus, err := i2creg.Open("")
	if err != nil {
		return fmt.Errorf("failed to open I2C bus: %w", err)
	}
	defer bus.Close()

	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	log.Printf("display: initialized at 0x%02X", cfg.DisplayI2CAddr)

	if err := dev.Draw(dev.Bounds(), splashImage(), image.Point{}); err != nil {
		log.Printf("display: error showing splash: %v", err)
	}

	data := &DisplayData{}

	client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDDisplay)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)
	log.Printf("display: connected to MQTT broker at %s", cfg.MQTTBroker)

	switch content {
	case "sample":
		err = subscribeJSON(client, "display", cfg.TopicSample, func(s imu.Sample) {
			data.mu.Lock()
			data.sample, data.haveSample = s, true
			data.mu.Unlock()
		})
	case "pose":
		err = subscribeJSON(client, "display", cfg.TopicPose, func(p orientation.Pose) {
			data.mu.Lock()
			data.pose, data.havePose = p, true
			data.mu.Unlock()
		})
	case "events":
		err = subscribeJSON(client, "display", cfg.TopicEvents, func(e imu.Events) {
			data.mu.Lock()
			data.events, data.haveEvents = e, true
			data.mu.Unlock()
		})
		if err == nil {
			err = subscribeJSON(client, "display", cfg.TopicSteps, func(s imu.Steps) {
				data.mu.Lock()
				data.steps, data.haveSteps = s, true
				data.mu.Unlock()
			})
		}
	}
	if err != nil {
		return err
	}

	// Display update loop
	ticker := time.NewTicker(time.Duration(cfg.DisplayUpdateInterval) * time.Millisecond)
	defer ticker.Stop()

	log.Println("display: starting update loop")

	for range ticker.C {
		snap := data.snapshot()
		lines, err := displayLines(content, &snap)
		if err != nil {
			return err
		}
		if err := dev.Draw(dev.Bounds(), renderLines(lines), image.Point{}); err != nil {
			log.Printf("display: error updating display: %v", err)
		}
	}

	return nil
}
