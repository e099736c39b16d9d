// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

// field locates a bitfield inside a register of the current bank.
type field struct {
	reg   uint8
	shift uint8
	width uint8
}

func (f field) mask() uint8 {
	return uint8(uint16(1)<<f.width-1) << f.shift
}

func (f field) get(b uint8) uint8 {
	return (b & f.mask()) >> f.shift
}

func (f field) set(b, v uint8) uint8 {
	return b&^f.mask() | (v<<f.shift)&f.mask()
}

func (f field) fits(v uint8) bool {
	return uint16(v)>>f.width == 0
}

func (d *Dev) readField(f field) (uint8, error) {
	b, err := d.readByte(f.reg)
	if err != nil {
		return 0, err
	}
	return f.get(b), nil
}

// writeField validates v, then read-modify-writes the register holding f.
func (d *Dev) writeField(f field, v uint8) error {
	if !f.fits(v) {
		return invalidf("value 0x%02X wider than %d bits (reg 0x%02X)", v, f.width, f.reg)
	}
	b, err := d.readByte(f.reg)
	if err != nil {
		return err
	}
	return d.writeByte(f.reg, f.set(b, v))
}

func (d *Dev) readFlag(f field) (bool, error) {
	v, err := d.readField(f)
	return v != 0, err
}

func (d *Dev) writeFlag(f field, on bool) error {
	return d.writeField(f, b2u(on))
}

// Banked variants switch to bank around the access.
func (d *Dev) readBankField(bank Bank, f field) (v uint8, err error) {
	err = d.withBank(bank, func() error {
		v, err = d.readField(f)
		return err
	})
	return v, err
}

func (d *Dev) writeBankField(bank Bank, f field, v uint8) error {
	if !f.fits(v) {
		return invalidf("value 0x%02X wider than %d bits (reg 0x%02X)", v, f.width, f.reg)
	}
	return d.withBank(bank, func() error { return d.writeField(f, v) })
}

func (d *Dev) readBankFlag(bank Bank, f field) (bool, error) {
	v, err := d.readBankField(bank, f)
	return v != 0, err
}

func (d *Dev) writeBankFlag(bank Bank, f field, on bool) error {
	return d.writeBankField(bank, f, b2u(on))
}

func b2u(on bool) uint8 {
	if on {
		return 1
	}
	return 0
}

// readBankSeq reads n registers of bank one transaction at a time, so the
// result does not depend on auto-increment.
func (d *Dev) readBankSeq(bank Bank, reg uint8, n int) ([]byte, error) {
	out := make([]byte, n)
	err := d.withBank(bank, func() error {
		for i := range out {
			v, err := d.readByte(reg + uint8(i))
			if err != nil {
				return err
			}
			out[i] = v
		}
		return nil
	})
	return out, err
}
