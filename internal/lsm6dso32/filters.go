// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

var (
	lpf2XLEn    = field{RegCtrl1XL, 1, 1}
	lpf1SelG    = field{RegCtrl4C, 1, 1}
	drdyMask    = field{RegCtrl4C, 3, 1}
	ftype       = field{RegCtrl6C, 0, 3}
	lowPassOn6D = field{RegCtrl8XL, 0, 1}
	hpSlopeXLEn = field{RegCtrl8XL, 2, 1}
	fastSettlXL = field{RegCtrl8XL, 3, 1}
	hpRefModeXL = field{RegCtrl8XL, 4, 1}
	hpcfXL      = field{RegCtrl8XL, 5, 3}
	slopeFDS    = field{RegTapCfg0, 4, 1}
	hpmG        = field{RegCtrl7G, 4, 2}
	hpEnG       = field{RegCtrl7G, 6, 1}
)

// SetXLFilterLP2 enables the accelerometer second low-pass stage.
func (d *Dev) SetXLFilterLP2(on bool) error  { return d.writeFlag(lpf2XLEn, on) }
func (d *Dev) GetXLFilterLP2() (bool, error) { return d.readFlag(lpf2XLEn) }

// SetGYFilterLP1 enables the gyroscope LPF1 stage.
func (d *Dev) SetGYFilterLP1(on bool) error  { return d.writeFlag(lpf1SelG, on) }
func (d *Dev) GetGYFilterLP1() (bool, error) { return d.readFlag(lpf1SelG) }

// SetFilterSettlingMask masks data-ready until filters have settled.
func (d *Dev) SetFilterSettlingMask(on bool) error  { return d.writeFlag(drdyMask, on) }
func (d *Dev) GetFilterSettlingMask() (bool, error) { return d.readFlag(drdyMask) }

func (d *Dev) SetGYLP1Bandwidth(v FType) error {
	if err := ftypeTable.check(v); err != nil {
		return err
	}
	return d.writeField(ftype, uint8(v))
}

func (d *Dev) GetGYLP1Bandwidth() (FType, error) {
	v, err := d.readField(ftype)
	return decode(d, &ftypeTable, v), err
}

// SetXLLP2On6D feeds the 6D function from LPF2.
func (d *Dev) SetXLLP2On6D(on bool) error  { return d.writeFlag(lowPassOn6D, on) }
func (d *Dev) GetXLLP2On6D() (bool, error) { return d.readFlag(lowPassOn6D) }

// SetXLHPPathOnOut programs slope/high-pass selection, reference mode and
// cutoff of the accelerometer output path in one write.
func (d *Dev) SetXLHPPathOnOut(v HPSlopeXL) error {
	if err := hpSlopeXLTable.check(v); err != nil {
		return err
	}
	b, err := d.readByte(RegCtrl8XL)
	if err != nil {
		return err
	}
	b = hpSlopeXLEn.set(b, (uint8(v)&0x10)>>4)
	b = hpRefModeXL.set(b, (uint8(v)&0x20)>>5)
	b = hpcfXL.set(b, uint8(v)&0x07)
	return d.writeByte(RegCtrl8XL, b)
}

func (d *Dev) GetXLHPPathOnOut() (HPSlopeXL, error) {
	b, err := d.readByte(RegCtrl8XL)
	raw := hpRefModeXL.get(b)<<5 | hpSlopeXLEn.get(b)<<4 | hpcfXL.get(b)
	return decode(d, &hpSlopeXLTable, raw), err
}

// SetXLFastSettling enables fast settling after a mode change.
func (d *Dev) SetXLFastSettling(on bool) error  { return d.writeFlag(fastSettlXL, on) }
func (d *Dev) GetXLFastSettling() (bool, error) { return d.readFlag(fastSettlXL) }

// SetXLHPPathInternal selects slope or high-pass for wake-up and activity.
func (d *Dev) SetXLHPPathInternal(v SlopeFDS) error {
	if err := slopeFDSTable.check(v); err != nil {
		return err
	}
	return d.writeField(slopeFDS, uint8(v))
}

func (d *Dev) GetXLHPPathInternal() (SlopeFDS, error) {
	v, err := d.readField(slopeFDS)
	return decode(d, &slopeFDSTable, v), err
}

// SetGYHPPathInternal enables the gyroscope high-pass and its cutoff.
func (d *Dev) SetGYHPPathInternal(v HPMG) error {
	if err := hpmgTable.check(v); err != nil {
		return err
	}
	b, err := d.readByte(RegCtrl7G)
	if err != nil {
		return err
	}
	b = hpEnG.set(b, (uint8(v)&0x80)>>7)
	b = hpmG.set(b, uint8(v)&0x03)
	return d.writeByte(RegCtrl7G, b)
}

func (d *Dev) GetGYHPPathInternal() (HPMG, error) {
	b, err := d.readByte(RegCtrl7G)
	return decode(d, &hpmgTable, hpEnG.get(b)<<7|hpmG.get(b)), err
}
