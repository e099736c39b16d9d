// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/relabs-tech/lsm6dso32/internal/config"
	"github.com/relabs-tech/lsm6dso32/internal/env"
	"github.com/relabs-tech/lsm6dso32/internal/imu"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"github.com/relabs-tech/lsm6dso32/internal/orientation"
	"github.com/relabs-tech/lsm6dso32/internal/sensors"
)

// IMUFeatures is what the producer reads besides plain samples.
type IMUFeatures interface {
	ReadEvents() (imu.Events, error)
	ReadSteps() (imu.Steps, error)
	DrainFIFO(limit int) (imu.FIFOBatch, error)
}

// Producer turns IMU reads into MQTT messages, one Step per sample.
type Producer struct {
	cfg *config.Config
	pub Publisher

	samples  orientation.SampleReader
	pose     *orientation.IMUSource
	features IMUFeatures // nil when running on mock data
	readEnv  func() (env.Sample, error)

	lastSteps int
	envErr    error
	envEvery  int
	ticks     int
}

// The BMP is read once every envEvery samples.
const envEvery = 10

// NewProducer builds a producer. features and readEnv may be nil.
func NewProducer(cfg *config.Config, pub Publisher, samples orientation.SampleReader, features IMUFeatures, readEnv func() (env.Sample, error)) *Producer {
	return &Producer{
		cfg:       cfg,
		pub:       pub,
		samples:   samples,
		pose:      orientation.NewIMUSource(samples),
		features:  features,
		readEnv:   readEnv,
		lastSteps: -1,
		envEvery:  envEvery,
	}
}

// Step reads one sample and publishes everything derived from it. Only a
// failed sample read is returned; the other streams log and carry on.
func (p *Producer) Step(t time.Time) error {
	smp, err := p.samples.ReadSample()
	if err != nil {
		return err
	}
	pose := p.pose.Update(smp, t)

	if err := p.pub.PublishJSON(p.cfg.TopicSample, smp); err != nil {
		log.Printf("producer: %v", err)
	}
	if err := p.pub.PublishJSON(p.cfg.TopicPose, pose); err != nil {
		log.Printf("producer: %v", err)
	}

	if p.features != nil {
		p.publishFeatures()
	}
	p.publishEnv(smp.TempC)
	p.ticks++
	return nil
}

func (p *Producer) publishFeatures() {
	if ev, err := p.features.ReadEvents(); err != nil {
		log.Printf("producer: events read error: %v", err)
	} else if ev.Any() {
		if err := p.pub.PublishJSON(p.cfg.TopicEvents, ev); err != nil {
			log.Printf("producer: %v", err)
		}
	}

	if p.cfg.IMUPedometer != lsm6dso32.PedoDisable {
		if st, err := p.features.ReadSteps(); err != nil {
			log.Printf("producer: step counter read error: %v", err)
		} else if int(st.Count) != p.lastSteps {
			p.lastSteps = int(st.Count)
			if err := p.pub.PublishJSON(p.cfg.TopicSteps, st); err != nil {
				log.Printf("producer: %v", err)
			}
		}
	}

	if p.cfg.IMUFIFOMode != lsm6dso32.BypassMode {
		if b, err := p.features.DrainFIFO(0); err != nil {
			log.Printf("producer: FIFO drain error: %v", err)
		} else if len(b.Words) > 0 || b.Overrun {
			if b.Overrun {
				log.Printf("producer: FIFO overrun, %d words drained", len(b.Words))
			}
			if err := p.pub.PublishJSON(p.cfg.TopicFIFO, b); err != nil {
				log.Printf("producer: %v", err)
			}
		}
	}
}

func (p *Producer) publishEnv(imuTempC float32) {
	if p.readEnv == nil || p.ticks%p.envEvery != 0 {
		return
	}
	e, err := p.readEnv()
	if err != nil {
		// Log once per distinct error; a missing BMP is normal.
		if !errors.Is(err, sensors.ErrNoBMP) && (p.envErr == nil || p.envErr.Error() != err.Error()) {
			log.Printf("producer: env read error: %v", err)
		}
		p.envErr = err
		return
	}
	p.envErr = nil
	if err := p.pub.PublishJSON(p.cfg.TopicEnv, sensors.WithIMUTemp(e, imuTempC)); err != nil {
		log.Printf("producer: %v", err)
	}
}

// Pose returns the latest fused pose.
func (p *Producer) Pose() orientation.Pose {
	pose, _ := p.pose.Last()
	return pose
}

// RunInertialProducer reads the LSM6DSO32 and publishes over MQTT until
// interrupted. With IMU_INT1_PIN set it follows the data-ready line,
// otherwise it samples on a ticker.
func RunInertialProducer() error {
	log.Println("starting LSM6DSO32 producer")

	cfg := config.Get()

	imuManager := sensors.GetIMUManager()
	if err := imuManager.Init(); err != nil {
		return err
	}
	defer imuManager.Close()

	client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDProducer)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)
	log.Println("producer: connected to MQTT, starting publish loop")

	p := NewProducer(cfg, mqttPublisher{client}, imuManager, imuManager, sensors.ReadEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval := time.Duration(cfg.IMUSampleInterval) * time.Millisecond
	if cfg.IMUInt1Pin != "" {
		return runDataReadyLoop(ctx, p, imuManager, interval)
	}
	return runTickerLoop(ctx, p, interval)
}

// RunMockProducer publishes synthetic samples and poses, for exercising the
// subscribers without hardware.
func RunMockProducer() error {
	log.Println("starting mock producer")

	cfg := config.Get()
	client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDProducer)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)

	p := NewProducer(cfg, mqttPublisher{client}, orientation.NewMockSampleSource(), nil, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runTickerLoop(ctx, p, time.Duration(cfg.IMUSampleInterval)*time.Millisecond)
}

func runTickerLoop(ctx context.Context, p *Producer, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("producer: shutting down")
			return nil
		case t := <-ticker.C:
			if err := p.Step(t); err != nil {
				log.Printf("producer: sample read error: %v", err)
				continue
			}
			logTick(p, t)
		}
	}
}

// runDataReadyLoop steps once per data-ready edge, rate limited to the
// configured interval for logging.
func runDataReadyLoop(ctx context.Context, p *Producer, m *sensors.IMUManager, interval time.Duration) error {
	var lastLog time.Time
	for ctx.Err() == nil {
		ready, err := m.WaitDataReady(ctx, time.Second)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Printf("producer: data-ready wait error: %v", err)
			continue
		}
		if !ready {
			log.Println("producer: no data-ready edge within 1s")
			continue
		}
		t := time.Now()
		if err := p.Step(t); err != nil {
			log.Printf("producer: sample read error: %v", err)
			continue
		}
		if t.Sub(lastLog) >= interval {
			logTick(p, t)
			lastLog = t
		}
	}
	log.Println("producer: shutting down")
	return nil
}

func logTick(p *Producer, t time.Time) {
	pose, s := p.pose.Last()
	log.Printf("%s tick: pose R=%.2f P=%.2f Y=%.2f | accel mg=%.0f %.0f %.0f | gyro mdps=%.0f %.0f %.0f | T=%.1fC",
		t.Format(time.RFC3339),
		pose.Roll, pose.Pitch, pose.Yaw,
		s.AccelMg[0], s.AccelMg[1], s.AccelMg[2],
		s.GyroMdps[0], s.GyroMdps[1], s.GyroMdps[2],
		s.TempC,
	)
}
