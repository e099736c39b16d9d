// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

// Pedometer, significant motion and tilt.

var (
	pedoEn       = field{RegEmbFuncEnA, 3, 1}
	tiltEn       = field{RegEmbFuncEnA, 4, 1}
	signMotionEn = field{RegEmbFuncEnA, 5, 1}
	pedoAdvEn    = field{RegEmbFuncEnB, 4, 1}
	isStepDet    = field{RegEmbFuncStatus, 3, 1}
	isTilt       = field{RegEmbFuncStatus, 4, 1}
	isSigMot     = field{RegEmbFuncStatus, 5, 1}
)

// PEDO_CMD_REG fields. The register is paged, so these are applied to the
// byte returned by PageReadByte.
var (
	adDetEn       = field{shift: 0, width: 1}
	fpRejectionEn = field{shift: 2, width: 1}
	carryCountEn  = field{shift: 3, width: 1}
)

// SetPedoSens programs the pedometer mode. PEDO_CMD_REG is read first,
// EMB_FUNC_EN_A/B are updated in the embedded bank and PEDO_CMD_REG is
// written back.
func (d *Dev) SetPedoSens(v PedoMode) error {
	if err := pedoModeTable.check(v); err != nil {
		return err
	}
	cmd, err := d.PageReadByte(PagePedoCmdReg)
	if err != nil {
		return err
	}
	err = d.withBank(EmbeddedFuncBank, func() error {
		a, err := d.readByte(RegEmbFuncEnA)
		if err != nil {
			return err
		}
		b, err := d.readByte(RegEmbFuncEnB)
		if err != nil {
			return err
		}
		if err := d.writeByte(RegEmbFuncEnA, pedoEn.set(a, uint8(v)&0x01)); err != nil {
			return err
		}
		return d.writeByte(RegEmbFuncEnB, pedoAdvEn.set(b, (uint8(v)&0x02)>>1))
	})
	if err != nil {
		return err
	}
	cmd = fpRejectionEn.set(cmd, (uint8(v)&0x10)>>4)
	cmd = adDetEn.set(cmd, (uint8(v)&0x20)>>5)
	return d.PageWriteByte(PagePedoCmdReg, cmd)
}

func (d *Dev) GetPedoSens() (PedoMode, error) {
	var a, b uint8
	err := d.withBank(EmbeddedFuncBank, func() error {
		var err error
		if a, err = d.readByte(RegEmbFuncEnA); err != nil {
			return err
		}
		b, err = d.readByte(RegEmbFuncEnB)
		return err
	})
	if err != nil {
		return PedoDisable, err
	}
	cmd, err := d.PageReadByte(PagePedoCmdReg)
	if err != nil {
		return PedoDisable, err
	}
	raw := adDetEn.get(cmd)<<5 | fpRejectionEn.get(cmd)<<4 | pedoAdvEn.get(b)<<1 | pedoEn.get(a)
	return decode(d, &pedoModeTable, raw), nil
}

// GetPedoStepDetect reports the step detector flag.
func (d *Dev) GetPedoStepDetect() (bool, error) {
	return d.readBankFlag(EmbeddedFuncBank, isStepDet)
}

// SetPedoDebounceSteps sets the steps to recognise before counting starts.
func (d *Dev) SetPedoDebounceSteps(v uint8) error {
	return d.PageWriteByte(PagePedoDebStepsConf, v)
}

func (d *Dev) GetPedoDebounceSteps() (uint8, error) {
	return d.PageReadByte(PagePedoDebStepsConf)
}

// SetPedoStepsPeriod sets the time period for step detection on delta time.
func (d *Dev) SetPedoStepsPeriod(v uint16) error {
	return d.pageWriteLE16(PagePedoSCDeltaTL, v)
}

func (d *Dev) GetPedoStepsPeriod() (uint16, error) {
	return d.pageReadLE16(PagePedoSCDeltaTL)
}

// SetPedoIntMode selects step interrupt on every step or on counter
// overflow.
func (d *Dev) SetPedoIntMode(v PedoIntMode) error {
	if err := pedoIntModeTable.check(v); err != nil {
		return err
	}
	b, err := d.PageReadByte(PagePedoCmdReg)
	if err != nil {
		return err
	}
	return d.PageWriteByte(PagePedoCmdReg, carryCountEn.set(b, uint8(v)))
}

func (d *Dev) GetPedoIntMode() (PedoIntMode, error) {
	b, err := d.PageReadByte(PagePedoCmdReg)
	return decode(d, &pedoIntModeTable, carryCountEn.get(b)), err
}

func (d *Dev) SetMotionSens(on bool) error {
	return d.writeBankFlag(EmbeddedFuncBank, signMotionEn, on)
}

func (d *Dev) GetMotionSens() (bool, error) {
	return d.readBankFlag(EmbeddedFuncBank, signMotionEn)
}

// GetMotionFlag reports a significant motion event.
func (d *Dev) GetMotionFlag() (bool, error) {
	return d.readBankFlag(EmbeddedFuncBank, isSigMot)
}

func (d *Dev) SetTiltSens(on bool) error {
	return d.writeBankFlag(EmbeddedFuncBank, tiltEn, on)
}

func (d *Dev) GetTiltSens() (bool, error) {
	return d.readBankFlag(EmbeddedFuncBank, tiltEn)
}

// GetTiltFlag reports a tilt event.
func (d *Dev) GetTiltFlag() (bool, error) {
	return d.readBankFlag(EmbeddedFuncBank, isTilt)
}
