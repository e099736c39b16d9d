// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Bus moves bytes to and from consecutive registers. Implementations own
// the physical link; the driver only borrows it.
type Bus interface {
	ReadRegs(reg uint8, buf []byte) error
	WriteRegs(reg uint8, buf []byte) error
}

// I2C is a Bus over a periph I2C device.
type I2C struct {
	dev i2c.Dev
}

// NewI2C binds to the device at addr on b. addr 0 selects I2CAddrLow.
func NewI2C(b i2c.Bus, addr uint16) *I2C {
	if addr == 0 {
		addr = I2CAddrLow
	}
	return &I2C{dev: i2c.Dev{Addr: addr, Bus: b}}
}

func (t *I2C) ReadRegs(reg uint8, buf []byte) error {
	if len(buf) == 0 {
		return errors.New("i2c read: empty buffer")
	}
	return t.dev.Tx([]byte{reg}, buf)
}

func (t *I2C) WriteRegs(reg uint8, buf []byte) error {
	w := make([]byte, 0, len(buf)+1)
	w = append(w, reg)
	w = append(w, buf...)
	return t.dev.Tx(w, nil)
}

func (t *I2C) String() string {
	return fmt.Sprintf("LSM6DSO32{%s}", &t.dev)
}

// SPI defaults. The device supports up to 10MHz in mode 3.
const (
	SPIFrequency = 10 * physic.MegaHertz
	SPIMode      = spi.Mode3
	SPIBits      = 8
)

const spiReadBit = 0x80

// SPI is a Bus over a periph SPI connection.
type SPI struct {
	c spi.Conn
}

// NewSPI connects to p. maxHz 0 selects SPIFrequency.
func NewSPI(p spi.Port, maxHz physic.Frequency) (*SPI, error) {
	if maxHz == 0 {
		maxHz = SPIFrequency
	}
	c, err := p.Connect(maxHz, SPIMode, SPIBits)
	if err != nil {
		return nil, fmt.Errorf("lsm6dso32: spi connect: %w", err)
	}
	return &SPI{c: c}, nil
}

func (t *SPI) ReadRegs(reg uint8, buf []byte) error {
	if len(buf) == 0 {
		return errors.New("spi read: empty buffer")
	}
	tx := make([]byte, len(buf)+1)
	rx := make([]byte, len(buf)+1)
	tx[0] = reg | spiReadBit
	if err := t.c.Tx(tx, rx); err != nil {
		return err
	}
	copy(buf, rx[1:])
	return nil
}

func (t *SPI) WriteRegs(reg uint8, buf []byte) error {
	tx := make([]byte, len(buf)+1)
	tx[0] = reg &^ spiReadBit
	copy(tx[1:], buf)
	return t.c.Tx(tx, make([]byte, len(tx)))
}

func (t *SPI) String() string {
	return fmt.Sprintf("LSM6DSO32{%s}", t.c)
}
