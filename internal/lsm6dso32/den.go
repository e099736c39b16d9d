// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

var (
	denMode = field{RegCtrl6C, 5, 3}
	denLH   = field{RegCtrl9XL, 2, 1}
	denXLG  = field{RegCtrl9XL, 3, 2}
	denZ    = field{RegCtrl9XL, 5, 1}
	denY    = field{RegCtrl9XL, 6, 1}
	denX    = field{RegCtrl9XL, 7, 1}
)

func (d *Dev) SetDENMode(v DENMode) error {
	if err := denModeTable.check(v); err != nil {
		return err
	}
	return d.writeField(denMode, uint8(v))
}

func (d *Dev) GetDENMode() (DENMode, error) {
	v, err := d.readField(denMode)
	return decode(d, &denModeTable, v), err
}

func (d *Dev) SetDENPolarity(v DENPolarity) error {
	if err := denPolarityTable.check(v); err != nil {
		return err
	}
	return d.writeField(denLH, uint8(v))
}

func (d *Dev) GetDENPolarity() (DENPolarity, error) {
	v, err := d.readField(denLH)
	return decode(d, &denPolarityTable, v), err
}

// SetDENEnable selects the data stamped with the DEN level.
func (d *Dev) SetDENEnable(v DENStamp) error {
	if err := denStampTable.check(v); err != nil {
		return err
	}
	return d.writeField(denXLG, uint8(v))
}

func (d *Dev) GetDENEnable() (DENStamp, error) {
	v, err := d.readField(denXLG)
	return decode(d, &denStampTable, v), err
}

// The axis marker setters follow the vendor register mapping: the X marker
// is den_z (bit 5) and the Z marker is den_x (bit 7).

func (d *Dev) SetDENMarkAxisX(on bool) error  { return d.writeFlag(denZ, on) }
func (d *Dev) GetDENMarkAxisX() (bool, error) { return d.readFlag(denZ) }
func (d *Dev) SetDENMarkAxisY(on bool) error  { return d.writeFlag(denY, on) }
func (d *Dev) GetDENMarkAxisY() (bool, error) { return d.readFlag(denY) }
func (d *Dev) SetDENMarkAxisZ(on bool) error  { return d.writeFlag(denX, on) }
func (d *Dev) GetDENMarkAxisZ() (bool, error) { return d.readFlag(denX) }
