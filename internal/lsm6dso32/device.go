// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package lsm6dso32 is a register-level driver for the ST LSM6DSO32
// 6-axis IMU (±32 g accelerometer, ±2000 dps gyroscope).
//
// The driver keeps no register cache: every getter reads the device and
// every setter performs a read-modify-write of the addressed field. Callers
// sharing one Dev between goroutines must serialize access themselves,
// because banked and paged sequences span several transactions.
package lsm6dso32

import (
	"fmt"
	"time"
)

// Opts holds optional driver hooks.
type Opts struct {
	// OnReservedValue, when set, is called whenever a getter decodes a
	// bit pattern that has no named value and falls back to the default.
	OnReservedValue func(field string, raw uint8)
}

// DefaultOpts leaves every hook unset.
var DefaultOpts = Opts{}

// Dev is a handle to one LSM6DSO32.
type Dev struct {
	bus  Bus
	opts Opts
}

// New binds a driver to bus. No bus traffic is generated.
func New(bus Bus, opts *Opts) *Dev {
	d := &Dev{bus: bus, opts: DefaultOpts}
	if opts != nil {
		d.opts = *opts
	}
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("LSM6DSO32{%v}", d.bus)
}

const (
	resetPollTries    = 10
	resetPollInterval = time.Millisecond
)

// Init checks the device id, performs a software reset and enables
// register auto-increment and block data update.
func (d *Dev) Init() error {
	id, err := d.DeviceID()
	if err != nil {
		return err
	}
	if id != DeviceID {
		return fmt.Errorf("%w: got 0x%02X, want 0x%02X", ErrWrongDevice, id, DeviceID)
	}
	if err := d.SetReset(true); err != nil {
		return err
	}
	for i := 0; ; i++ {
		busy, err := d.GetReset()
		if err != nil {
			return err
		}
		if !busy {
			break
		}
		if i == resetPollTries {
			return fmt.Errorf("lsm6dso32: software reset did not complete")
		}
		time.Sleep(resetPollInterval)
	}
	if err := d.SetAutoIncrement(true); err != nil {
		return err
	}
	return d.SetBlockDataUpdate(true)
}

// ReadRegs reads len(buf) consecutive registers of the current bank.
func (d *Dev) ReadRegs(reg uint8, buf []byte) error {
	if err := d.bus.ReadRegs(reg, buf); err != nil {
		return &BusError{Op: "read", Reg: reg, Err: err}
	}
	return nil
}

// WriteRegs writes buf to consecutive registers of the current bank.
func (d *Dev) WriteRegs(reg uint8, buf []byte) error {
	if err := d.bus.WriteRegs(reg, buf); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

// ReadBankRegs reads registers of bank and switches back to the user bank.
func (d *Dev) ReadBankRegs(bank Bank, reg uint8, buf []byte) error {
	if bank == UserBank {
		return d.ReadRegs(reg, buf)
	}
	return d.withBank(bank, func() error { return d.ReadRegs(reg, buf) })
}

// WriteBankRegs writes registers of bank and switches back to the user bank.
func (d *Dev) WriteBankRegs(bank Bank, reg uint8, buf []byte) error {
	if bank == UserBank {
		return d.WriteRegs(reg, buf)
	}
	return d.withBank(bank, func() error { return d.WriteRegs(reg, buf) })
}

func (d *Dev) readByte(reg uint8) (uint8, error) {
	var b [1]byte
	err := d.ReadRegs(reg, b[:])
	return b[0], err
}

func (d *Dev) writeByte(reg, v uint8) error {
	return d.WriteRegs(reg, []byte{v})
}
