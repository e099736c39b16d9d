// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/relabs-tech/lsm6dso32/internal/config"
	"github.com/relabs-tech/lsm6dso32/internal/imu"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"periph.io/x/conn/v3/gpio"
)

// ErrIMUNotAvailable is returned by every read before a successful Init.
var ErrIMUNotAvailable = errors.New("LSM6DSO32 not available")

// IMUManager owns the LSM6DSO32 and serializes every access to it. The
// driver keeps no state of its own, so the bank switch and paged sequences
// of one caller must not interleave with another's.
type IMUManager struct {
	mu sync.Mutex

	dev    *lsm6dso32.Dev
	closer io.Closer
	int1   gpio.PinIn
	desc   string

	xlFS lsm6dso32.XLFullScale
	gyFS lsm6dso32.GYFullScale
}

var (
	imuManager     *IMUManager
	imuManagerOnce sync.Once
)

// GetIMUManager returns the process-wide manager.
func GetIMUManager() *IMUManager {
	imuManagerOnce.Do(func() {
		imuManager = &IMUManager{}
	})
	return imuManager
}

// Init opens the configured bus, checks the device and applies the
// configured setup. Calling it again after success is a no-op.
func (m *IMUManager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dev != nil {
		return nil
	}

	cfg := config.Get()
	if cfg == nil {
		return errors.New("LSM6DSO32: config not initialized")
	}
	bus, closer, desc, err := openBus(cfg)
	if err != nil {
		return err
	}
	if err := m.attach(bus, cfg); err != nil {
		closer.Close()
		return err
	}
	m.closer = closer
	m.desc = desc

	if cfg.IMUInt1Pin != "" {
		pin, err := openInt1Pin(cfg.IMUInt1Pin)
		if err != nil {
			log.Printf("LSM6DSO32: INT1 unavailable, polling instead: %v", err)
		} else {
			m.int1 = pin
			log.Printf("LSM6DSO32: data-ready on %s", pin)
		}
	}
	log.Printf("LSM6DSO32: ready on %s", desc)
	return nil
}

// Attach uses an already open bus. It is how tests and tools that manage
// their own transport drive the manager.
func (m *IMUManager) Attach(bus lsm6dso32.Bus, cfg *config.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attach(bus, cfg)
}

func (m *IMUManager) attach(bus lsm6dso32.Bus, cfg *config.Config) error {
	dev := newDev(bus)
	if err := dev.Init(); err != nil {
		return fmt.Errorf("LSM6DSO32: init: %w", err)
	}
	if err := configure(dev, cfg); err != nil {
		return err
	}
	m.dev = dev
	m.xlFS = cfg.IMUAccelRange
	m.gyFS = cfg.IMUGyroRange
	return nil
}

// IsAvailable reports whether Init succeeded.
func (m *IMUManager) IsAvailable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dev != nil
}

// Close releases the bus.
func (m *IMUManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dev = nil
	if m.closer == nil {
		return nil
	}
	err := m.closer.Close()
	m.closer = nil
	return err
}

// Do runs fn with exclusive access to the device.
func (m *IMUManager) Do(fn func(d *lsm6dso32.Dev) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dev == nil {
		return ErrIMUNotAvailable
	}
	return fn(m.dev)
}

// ReadRaw reads temperature, angular rate, acceleration and timestamp.
func (m *IMUManager) ReadRaw() (imu.IMURaw, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readRaw()
}

func (m *IMUManager) readRaw() (imu.IMURaw, error) {
	if m.dev == nil {
		return imu.IMURaw{}, ErrIMUNotAvailable
	}
	var raw imu.IMURaw
	var err error
	if raw.Temp, err = m.dev.GetTemperatureRaw(); err != nil {
		return raw, fmt.Errorf("LSM6DSO32 temperature: %w", err)
	}
	g, err := m.dev.GetAngularRateRaw()
	if err != nil {
		return raw, fmt.Errorf("LSM6DSO32 gyro: %w", err)
	}
	a, err := m.dev.GetAccelerationRaw()
	if err != nil {
		return raw, fmt.Errorf("LSM6DSO32 accel: %w", err)
	}
	if raw.Timestamp, err = m.dev.GetTimestampRaw(); err != nil {
		return raw, fmt.Errorf("LSM6DSO32 timestamp: %w", err)
	}
	raw.Gx, raw.Gy, raw.Gz = g[0], g[1], g[2]
	raw.Ax, raw.Ay, raw.Az = a[0], a[1], a[2]
	return raw, nil
}

// NextRaw implements imu.IMURawSource.
func (m *IMUManager) NextRaw() (imu.IMURaw, error) { return m.ReadRaw() }

// ReadSample reads a raw sample and converts it with the configured ranges.
func (m *IMUManager) ReadSample() (imu.Sample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := m.readRaw()
	if err != nil {
		return imu.Sample{}, err
	}
	return Convert(raw, m.xlFS, m.gyFS, time.Now()), nil
}

// Convert turns a raw sample into physical units.
func Convert(raw imu.IMURaw, xlFS lsm6dso32.XLFullScale, gyFS lsm6dso32.GYFullScale, t time.Time) imu.Sample {
	return imu.Sample{
		Raw:       raw,
		AccelMg:   [3]float32{xlFS.ToMg(raw.Ax), xlFS.ToMg(raw.Ay), xlFS.ToMg(raw.Az)},
		GyroMdps:  [3]float32{gyFS.ToMdps(raw.Gx), gyFS.ToMdps(raw.Gy), gyFS.ToMdps(raw.Gz)},
		TempC:     lsm6dso32.FromLSBToCelsius(raw.Temp),
		TimeNs:    lsm6dso32.FromLSBToNsec(raw.Timestamp),
		AccelFS:   xlFS.String(),
		GyroFS:    gyFS.String(),
		Timestamp: t.Format(time.RFC3339Nano),
	}
}

// ReadEvents reads all interrupt sources and decodes them.
func (m *IMUManager) ReadEvents() (imu.Events, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dev == nil {
		return imu.Events{}, ErrIMUNotAvailable
	}
	src, err := m.dev.GetAllSources()
	if err != nil {
		return imu.Events{}, fmt.Errorf("LSM6DSO32 sources: %w", err)
	}
	return DecodeEvents(src, time.Now()), nil
}

// DecodeEvents maps a source snapshot onto imu.Events.
func DecodeEvents(src lsm6dso32.AllSources, t time.Time) imu.Events {
	e := imu.Events{
		FreeFall:    src.FreeFall(),
		WakeUp:      src.WakeUp(),
		SingleTap:   src.SingleTap(),
		DoubleTap:   src.DoubleTap(),
		SixD:        src.SixD(),
		Sleep:       src.SleepState(),
		Step:        src.StepDetected(),
		Tilt:        src.Tilt(),
		SigMotion:   src.SigMotion(),
		Timestamp:   t.Format(time.RFC3339Nano),
		TapNegative: src.TapSign(),
	}
	if e.WakeUp {
		e.WakeUpAxes = axes(src.WakeUpAxes())
	}
	if e.SingleTap || e.DoubleTap {
		e.TapAxes = axes(src.TapAxes())
	} else {
		e.TapNegative = false
	}
	if e.SixD {
		e.Orientation = src.Orientation()
	}
	for n := 1; n <= 16; n++ {
		if src.FSM(n) {
			e.FSM |= 1 << (n - 1)
		}
	}
	return e
}

func axes(x, y, z bool) string {
	s := ""
	if x {
		s += "x"
	}
	if y {
		s += "y"
	}
	if z {
		s += "z"
	}
	return s
}

// ReadSteps returns the pedometer counter.
func (m *IMUManager) ReadSteps() (imu.Steps, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dev == nil {
		return imu.Steps{}, ErrIMUNotAvailable
	}
	n, err := m.dev.GetStepCounter()
	if err != nil {
		return imu.Steps{}, fmt.Errorf("LSM6DSO32 step counter: %w", err)
	}
	return imu.Steps{Count: n, Timestamp: time.Now().Format(time.RFC3339Nano)}, nil
}

// ResetSteps clears the pedometer counter.
func (m *IMUManager) ResetSteps() error {
	return m.Do(func(d *lsm6dso32.Dev) error { return d.ResetSteps() })
}

// DrainFIFO pops up to limit words (all unread words when limit <= 0).
func (m *IMUManager) DrainFIFO(limit int) (imu.FIFOBatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dev == nil {
		return imu.FIFOBatch{}, ErrIMUNotAvailable
	}
	st, err := m.dev.GetFIFOStatus()
	if err != nil {
		return imu.FIFOBatch{}, fmt.Errorf("LSM6DSO32 FIFO status: %w", err)
	}
	n := int(st.Level)
	if limit > 0 && n > limit {
		n = limit
	}
	batch := imu.FIFOBatch{
		Words:     make([]imu.FIFOWord, 0, n),
		Overrun:   st.Overrun || st.OverrunLatched,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
	for i := 0; i < n; i++ {
		w, err := m.dev.ReadFIFOWord()
		if err != nil {
			return batch, fmt.Errorf("LSM6DSO32 FIFO word %d: %w", i, err)
		}
		batch.Words = append(batch.Words, imu.FIFOWord{Tag: w.Tag.String(), Cnt: w.Cnt, Data: w.Vec()})
	}
	return batch, nil
}

// WaitDataReady blocks until the accelerometer has a new sample, the
// timeout expires or ctx is done. With an INT1 pin it waits for the edge,
// otherwise it polls STATUS_REG.
func (m *IMUManager) WaitDataReady(ctx context.Context, timeout time.Duration) (bool, error) {
	m.mu.Lock()
	pin := m.int1
	m.mu.Unlock()
	if pin != nil {
		return pin.WaitForEdge(timeout), ctx.Err()
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	poll := time.NewTicker(time.Millisecond)
	defer poll.Stop()
	for {
		var ready bool
		err := m.Do(func(d *lsm6dso32.Dev) error {
			var err error
			ready, err = d.XLDataReady()
			return err
		})
		if err != nil || ready {
			return ready, err
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-deadline.C:
			return false, nil
		case <-poll.C:
		}
	}
}

// SetUserOffset writes the accelerometer user offsets and enables them on
// the output registers.
func (m *IMUManager) SetUserOffset(w lsm6dso32.OffsetWeight, off [3]int8) error {
	return m.Do(func(d *lsm6dso32.Dev) error {
		if err := d.SetXLOffsetWeight(w); err != nil {
			return fmt.Errorf("LSM6DSO32: set offset weight: %w", err)
		}
		if err := d.SetXLUserOffset(off); err != nil {
			return fmt.Errorf("LSM6DSO32: set user offset: %w", err)
		}
		if err := d.SetXLUserOffsetOnOut(true); err != nil {
			return fmt.Errorf("LSM6DSO32: enable user offset: %w", err)
		}
		return nil
	})
}

// ReadRegister reads one register of bank.
func (m *IMUManager) ReadRegister(bank lsm6dso32.Bank, addr byte) (byte, error) {
	var b [1]byte
	err := m.Do(func(d *lsm6dso32.Dev) error { return d.ReadBankRegs(bank, addr, b[:]) })
	return b[0], err
}

// WriteRegister writes one register of bank.
func (m *IMUManager) WriteRegister(bank lsm6dso32.Bank, addr, value byte) error {
	return m.Do(func(d *lsm6dso32.Dev) error { return d.WriteBankRegs(bank, addr, []byte{value}) })
}

// ReadAllRegisters reads every register listed in the map of bank.
func (m *IMUManager) ReadAllRegisters(bank lsm6dso32.Bank) (map[byte]byte, error) {
	regs := RegisterMap(bank)
	out := make(map[byte]byte, len(regs))
	err := m.Do(func(d *lsm6dso32.Dev) error {
		var b [1]byte
		for _, r := range regs {
			if r.Access == "W" {
				continue
			}
			if err := d.ReadBankRegs(bank, r.Addr, b[:]); err != nil {
				return err
			}
			out[r.Addr] = b[0]
		}
		return nil
	})
	return out, err
}

// ReadPage reads n bytes of embedded advanced-features memory.
func (m *IMUManager) ReadPage(addr uint16, n int) ([]byte, error) {
	buf := make([]byte, n)
	err := m.Do(func(d *lsm6dso32.Dev) error { return d.PageRead(addr, buf) })
	return buf, err
}

// WritePage writes buf to embedded advanced-features memory.
func (m *IMUManager) WritePage(addr uint16, buf []byte) error {
	return m.Do(func(d *lsm6dso32.Dev) error { return d.PageWrite(addr, buf) })
}

// String describes the bus the device is on.
func (m *IMUManager) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.desc == "" {
		return "LSM6DSO32{detached}"
	}
	return m.desc
}
