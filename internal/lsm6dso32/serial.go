// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

var (
	sdoPuEn    = field{RegPinCtrl, 6, 1}
	sim        = field{RegCtrl3C, 3, 1}
	i2cDisable = field{RegCtrl4C, 2, 1}
	i3cDisable = field{RegCtrl9XL, 1, 1}
	i3cBusAvb  = field{RegI3CBusAvb, 3, 2}
)

func (d *Dev) SetSDOPullUp(v SDOPullUp) error {
	if err := sdoPullUpTable.check(v); err != nil {
		return err
	}
	return d.writeField(sdoPuEn, uint8(v))
}

func (d *Dev) GetSDOPullUp() (SDOPullUp, error) {
	v, err := d.readField(sdoPuEn)
	return decode(d, &sdoPullUpTable, v), err
}

func (d *Dev) SetSPIMode(v SPIWire) error {
	if err := spiWireTable.check(v); err != nil {
		return err
	}
	return d.writeField(sim, uint8(v))
}

func (d *Dev) GetSPIMode() (SPIWire, error) {
	v, err := d.readField(sim)
	return decode(d, &spiWireTable, v), err
}

func (d *Dev) SetI2CInterface(v I2CMode) error {
	if err := i2cModeTable.check(v); err != nil {
		return err
	}
	return d.writeField(i2cDisable, uint8(v))
}

func (d *Dev) GetI2CInterface() (I2CMode, error) {
	v, err := d.readField(i2cDisable)
	return decode(d, &i2cModeTable, v), err
}

// SetI3CInterface writes i3c_disable in CTRL9_XL, then the bus available
// time in I3C_BUS_AVB.
func (d *Dev) SetI3CInterface(v I3CMode) error {
	if err := i3cModeTable.check(v); err != nil {
		return err
	}
	if err := d.writeField(i3cDisable, (uint8(v)&0x80)>>7); err != nil {
		return err
	}
	return d.writeField(i3cBusAvb, uint8(v)&0x03)
}

func (d *Dev) GetI3CInterface() (I3CMode, error) {
	dis, err := d.readField(i3cDisable)
	if err != nil {
		return I3CDisable, err
	}
	sel, err := d.readField(i3cBusAvb)
	if err != nil {
		return I3CDisable, err
	}
	return decode(d, &i3cModeTable, dis<<7|sel), nil
}
