// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

// External magnetometer calibration, stored in paged memory. Multi-byte
// values are little endian and written one paged byte at a time.

var (
	magZAxis = field{shift: 0, width: 3} // MAG_CFG_A
	magYAxis = field{shift: 4, width: 3} // MAG_CFG_A
	magXAxis = field{shift: 0, width: 3} // MAG_CFG_B
)

func (d *Dev) pageWriteWords(addr uint16, v []int16) error {
	for i, w := range v {
		if err := d.pageWriteLE16(addr+uint16(2*i), uint16(w)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) pageReadWords(addr uint16, v []int16) error {
	for i := range v {
		w, err := d.pageReadLE16(addr + uint16(2*i))
		if err != nil {
			return err
		}
		v[i] = int16(w)
	}
	return nil
}

// SetMagSensitivity sets the external magnetometer sensitivity (half
// precision float bits).
func (d *Dev) SetMagSensitivity(v uint16) error {
	return d.pageWriteLE16(PageMagSensitivityL, v)
}

func (d *Dev) GetMagSensitivity() (uint16, error) {
	return d.pageReadLE16(PageMagSensitivityL)
}

// SetMagOffset sets the hard-iron offset X, Y, Z.
func (d *Dev) SetMagOffset(v [3]int16) error {
	return d.pageWriteWords(PageMagOffXL, v[:])
}

func (d *Dev) GetMagOffset() ([3]int16, error) {
	var v [3]int16
	err := d.pageReadWords(PageMagOffXL, v[:])
	return v, err
}

// SetMagSoftIron sets the soft-iron matrix in XX, XY, XZ, YY, YZ, ZZ order.
func (d *Dev) SetMagSoftIron(v [6]int16) error {
	return d.pageWriteWords(PageMagSiXXL, v[:])
}

func (d *Dev) GetMagSoftIron() ([6]int16, error) {
	var v [6]int16
	err := d.pageReadWords(PageMagSiXXL, v[:])
	return v, err
}

func (d *Dev) setMagAxis(addr uint16, f field, v MagAxis) error {
	if err := magAxisTable.check(v); err != nil {
		return err
	}
	b, err := d.PageReadByte(addr)
	if err != nil {
		return err
	}
	return d.PageWriteByte(addr, f.set(b, uint8(v)))
}

func (d *Dev) getMagAxis(addr uint16, f field) (MagAxis, error) {
	b, err := d.PageReadByte(addr)
	return decode(d, &magAxisTable, f.get(b)), err
}

// SetMagZOrient maps the magnetometer Z axis onto the device frame.
func (d *Dev) SetMagZOrient(v MagAxis) error   { return d.setMagAxis(PageMagCfgA, magZAxis, v) }
func (d *Dev) GetMagZOrient() (MagAxis, error) { return d.getMagAxis(PageMagCfgA, magZAxis) }
func (d *Dev) SetMagYOrient(v MagAxis) error   { return d.setMagAxis(PageMagCfgA, magYAxis, v) }
func (d *Dev) GetMagYOrient() (MagAxis, error) { return d.getMagAxis(PageMagCfgA, magYAxis) }
func (d *Dev) SetMagXOrient(v MagAxis) error   { return d.setMagAxis(PageMagCfgB, magXAxis, v) }
func (d *Dev) GetMagXOrient() (MagAxis, error) { return d.getMagAxis(PageMagCfgB, magXAxis) }
