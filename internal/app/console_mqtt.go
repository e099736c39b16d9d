// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/relabs-tech/lsm6dso32/internal/config"
	"github.com/relabs-tech/lsm6dso32/internal/env"
	"github.com/relabs-tech/lsm6dso32/internal/imu"
	"github.com/relabs-tech/lsm6dso32/internal/orientation"
)

func formatPose(p orientation.Pose) string {
	return fmt.Sprintf("[POSE]  ROLL=%6.2f  PITCH=%6.2f  YAW=%6.2f", p.Roll, p.Pitch, p.Yaw)
}

func formatSample(s imu.Sample) string {
	return fmt.Sprintf(
		"[IMU ]  ax=%8.1f ay=%8.1f az=%8.1f mg  gx=%9.1f gy=%9.1f gz=%9.1f mdps  T=%5.1fC  (%s, %s)",
		s.AccelMg[0], s.AccelMg[1], s.AccelMg[2],
		s.GyroMdps[0], s.GyroMdps[1], s.GyroMdps[2],
		s.TempC, s.AccelFS, s.GyroFS,
	)
}

// formatEvents lists the events that fired, e.g. "[EVT ]  double-tap(Z-) wake-up(X)".
func formatEvents(e imu.Events) string {
	var parts []string
	add := func(on bool, name, detail string) {
		if !on {
			return
		}
		if detail != "" {
			name += "(" + detail + ")"
		}
		parts = append(parts, name)
	}
	tapAxes := e.TapAxes
	if e.TapNegative && tapAxes != "" {
		tapAxes += "-"
	}
	add(e.FreeFall, "free-fall", "")
	add(e.WakeUp, "wake-up", e.WakeUpAxes)
	add(e.SingleTap, "single-tap", tapAxes)
	add(e.DoubleTap, "double-tap", tapAxes)
	add(e.SixD, "6d", fmt.Sprintf("0x%02X", e.Orientation))
	add(e.Sleep, "sleep", "")
	add(e.Step, "step", "")
	add(e.Tilt, "tilt", "")
	add(e.SigMotion, "sig-motion", "")
	add(e.FSM != 0, "fsm", fmt.Sprintf("0x%04X", e.FSM))
	if len(parts) == 0 {
		parts = append(parts, "none")
	}
	return "[EVT ]  " + strings.Join(parts, " ")
}

func formatSteps(s imu.Steps) string {
	return fmt.Sprintf("[STEP]  count=%d", s.Count)
}

func formatFIFO(b imu.FIFOBatch) string {
	counts := map[string]int{}
	var tags []string
	for _, w := range b.Words {
		if counts[w.Tag] == 0 {
			tags = append(tags, w.Tag)
		}
		counts[w.Tag]++
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "[FIFO]  words=%d", len(b.Words))
	for _, tag := range tags {
		fmt.Fprintf(&sb, " %s=%d", tag, counts[tag])
	}
	if b.Overrun {
		sb.WriteString(" OVERRUN")
	}
	return sb.String()
}

func formatEnv(e env.Sample) string {
	return fmt.Sprintf("[ENV ]  %s T=%.2fC P=%.2fhPa  imu=%.2fC delta=%+.2fC",
		e.Source, e.Temperature, e.PressureHPa, e.IMUTempC, e.TempDeltaC)
}

// RunConsoleMQTT prints every stream the producer publishes until
// interrupted.
func RunConsoleMQTT() error {
	cfg := config.Get()

	client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDConsole)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	subs := []error{
		subscribeJSON(client, "console", cfg.TopicPose, func(p orientation.Pose) { fmt.Println(formatPose(p)) }),
		subscribeJSON(client, "console", cfg.TopicSample, func(s imu.Sample) { fmt.Println(formatSample(s)) }),
		subscribeJSON(client, "console", cfg.TopicEvents, func(e imu.Events) { fmt.Println(formatEvents(e)) }),
		subscribeJSON(client, "console", cfg.TopicSteps, func(s imu.Steps) { fmt.Println(formatSteps(s)) }),
		subscribeJSON(client, "console", cfg.TopicFIFO, func(b imu.FIFOBatch) { fmt.Println(formatFIFO(b)) }),
		subscribeJSON(client, "console", cfg.TopicEnv, func(e env.Sample) { fmt.Println(formatEnv(e)) }),
	}
	for _, err := range subs {
		if err != nil {
			return err
		}
	}

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	return nil
}
