// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32_test

import (
	"errors"
	"testing"

	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/spi/spitest"
)

func TestI2CTransport(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x6A, W: []byte{lsm6dso32.RegWhoAmI}, R: []byte{lsm6dso32.DeviceID}},
			{Addr: 0x6A, W: []byte{lsm6dso32.RegCtrl1XL, 0x40}},
			{Addr: 0x6A, W: []byte{lsm6dso32.RegOutXLA}, R: []byte{0x10, 0x00, 0xF0, 0xFF, 0x00, 0x40}},
		},
	}
	d := lsm6dso32.New(lsm6dso32.NewI2C(bus, 0), nil)
	id, err := d.DeviceID()
	if err != nil || id != lsm6dso32.DeviceID {
		t.Fatalf("DeviceID() = 0x%02X, %v", id, err)
	}
	if err := d.WriteRegs(lsm6dso32.RegCtrl1XL, []byte{0x40}); err != nil {
		t.Fatal(err)
	}
	v, err := d.GetAccelerationRaw()
	if err != nil {
		t.Fatal(err)
	}
	if v != [3]int16{16, -16, 0x4000} {
		t.Errorf("GetAccelerationRaw() = %v", v)
	}
	if err := bus.Close(); err != nil {
		t.Error(err)
	}
}

func TestI2CAddressHigh(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{{Addr: 0x6B, W: []byte{lsm6dso32.RegWhoAmI}, R: []byte{lsm6dso32.DeviceID}}},
	}
	d := lsm6dso32.New(lsm6dso32.NewI2C(bus, lsm6dso32.I2CAddrHigh), nil)
	if _, err := d.DeviceID(); err != nil {
		t.Fatal(err)
	}
	if err := bus.Close(); err != nil {
		t.Error(err)
	}
}

func TestI2CFailureIsBusError(t *testing.T) {
	bus := &i2ctest.Playback{DontPanic: true}
	d := lsm6dso32.New(lsm6dso32.NewI2C(bus, 0), nil)
	_, err := d.DeviceID()
	var be *lsm6dso32.BusError
	if !errors.As(err, &be) {
		t.Fatalf("err = %v, want *BusError", err)
	}
	if be.Op != "read" || be.Reg != lsm6dso32.RegWhoAmI {
		t.Errorf("BusError = %+v", be)
	}
}

func TestSPITransport(t *testing.T) {
	port := &spitest.Playback{
		Playback: conntest.Playback{
			Ops: []conntest.IO{
				{W: []byte{0x80 | lsm6dso32.RegWhoAmI, 0x00}, R: []byte{0x00, lsm6dso32.DeviceID}},
				{W: []byte{lsm6dso32.RegCtrl2G, 0x4C}, R: []byte{0x00, 0x00}},
			},
		},
	}
	b, err := lsm6dso32.NewSPI(port, 0)
	if err != nil {
		t.Fatal(err)
	}
	d := lsm6dso32.New(b, nil)
	id, err := d.DeviceID()
	if err != nil || id != lsm6dso32.DeviceID {
		t.Fatalf("DeviceID() = 0x%02X, %v", id, err)
	}
	if err := d.WriteRegs(lsm6dso32.RegCtrl2G, []byte{0x4C}); err != nil {
		t.Fatal(err)
	}
	if err := port.Close(); err != nil {
		t.Error(err)
	}
}
