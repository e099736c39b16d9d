// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

import "encoding/binary"

var (
	fsXL       = field{RegCtrl1XL, 2, 2}
	odrXL      = field{RegCtrl1XL, 4, 4}
	fsG        = field{RegCtrl2G, 1, 3}
	odrG       = field{RegCtrl2G, 4, 4}
	swReset    = field{RegCtrl3C, 0, 1}
	ifInc      = field{RegCtrl3C, 2, 1}
	bdu        = field{RegCtrl3C, 6, 1}
	boot       = field{RegCtrl3C, 7, 1}
	stXL       = field{RegCtrl5C, 0, 2}
	stG        = field{RegCtrl5C, 2, 2}
	rounding   = field{RegCtrl5C, 5, 2}
	xlULPEn    = field{RegCtrl5C, 7, 1}
	usrOffW    = field{RegCtrl6C, 3, 1}
	xlHMMode   = field{RegCtrl6C, 4, 1}
	usrOffOut  = field{RegCtrl7G, 1, 1}
	gHMMode    = field{RegCtrl7G, 7, 1}
	tsEn       = field{RegCtrl10C, 5, 1}
	drdyPulsed = field{RegCounterBDRReg1, 7, 1}
	xlda       = field{RegStatusReg, 0, 1}
	gda        = field{RegStatusReg, 1, 1}
	tda        = field{RegStatusReg, 2, 1}
	pedoRst    = field{RegEmbFuncSrc, 7, 1}
)

// SetXLFullScale selects the accelerometer range.
func (d *Dev) SetXLFullScale(v XLFullScale) error {
	if err := xlFullScaleTable.check(v); err != nil {
		return err
	}
	return d.writeField(fsXL, uint8(v))
}

func (d *Dev) GetXLFullScale() (XLFullScale, error) {
	v, err := d.readField(fsXL)
	return decode(d, &xlFullScaleTable, v), err
}

// SetXLDataRate powers the accelerometer down, programs the power mode
// bits, then applies the new ODR.
func (d *Dev) SetXLDataRate(v XLDataRate) error {
	if err := xlDataRateTable.check(v); err != nil {
		return err
	}
	if err := d.writeField(odrXL, uint8(XLODROff)); err != nil {
		return err
	}
	if err := d.writeField(xlULPEn, (uint8(v)&0x20)>>5); err != nil {
		return err
	}
	if err := d.writeField(xlHMMode, (uint8(v)&0x10)>>4); err != nil {
		return err
	}
	return d.writeField(odrXL, uint8(v)&0x0F)
}

func (d *Dev) GetXLDataRate() (XLDataRate, error) {
	odr, err := d.readField(odrXL)
	if err != nil {
		return XLODROff, err
	}
	ulp, err := d.readField(xlULPEn)
	if err != nil {
		return XLODROff, err
	}
	hm, err := d.readField(xlHMMode)
	if err != nil {
		return XLODROff, err
	}
	return decode(d, &xlDataRateTable, ulp<<5|hm<<4|odr), nil
}

// SetGYFullScale selects the gyroscope range.
func (d *Dev) SetGYFullScale(v GYFullScale) error {
	if err := gyFullScaleTable.check(v); err != nil {
		return err
	}
	return d.writeField(fsG, uint8(v))
}

func (d *Dev) GetGYFullScale() (GYFullScale, error) {
	v, err := d.readField(fsG)
	return decode(d, &gyFullScaleTable, v), err
}

// SetGYDataRate powers the gyroscope down, programs the power mode bit,
// then applies the new ODR.
func (d *Dev) SetGYDataRate(v GYDataRate) error {
	if err := gyDataRateTable.check(v); err != nil {
		return err
	}
	if err := d.writeField(odrG, uint8(GYODROff)); err != nil {
		return err
	}
	if err := d.writeField(gHMMode, (uint8(v)&0x10)>>4); err != nil {
		return err
	}
	return d.writeField(odrG, uint8(v)&0x0F)
}

func (d *Dev) GetGYDataRate() (GYDataRate, error) {
	odr, err := d.readField(odrG)
	if err != nil {
		return GYODROff, err
	}
	hm, err := d.readField(gHMMode)
	if err != nil {
		return GYODROff, err
	}
	return decode(d, &gyDataRateTable, hm<<4|odr), nil
}

func (d *Dev) SetBlockDataUpdate(on bool) error  { return d.writeFlag(bdu, on) }
func (d *Dev) GetBlockDataUpdate() (bool, error) { return d.readFlag(bdu) }

// SetXLOffsetWeight selects the LSB weight of X/Y/Z_OFS_USR.
func (d *Dev) SetXLOffsetWeight(v OffsetWeight) error {
	if err := offsetWeightTable.check(v); err != nil {
		return err
	}
	return d.writeField(usrOffW, uint8(v))
}

func (d *Dev) GetXLOffsetWeight() (OffsetWeight, error) {
	v, err := d.readField(usrOffW)
	return decode(d, &offsetWeightTable, v), err
}

// SetXLUserOffset writes the X, Y and Z user offsets (two's complement).
func (d *Dev) SetXLUserOffset(off [3]int8) error {
	return d.WriteRegs(RegXOfsUsr, []byte{uint8(off[0]), uint8(off[1]), uint8(off[2])})
}

func (d *Dev) GetXLUserOffset() ([3]int8, error) {
	var b [3]byte
	if err := d.ReadRegs(RegXOfsUsr, b[:]); err != nil {
		return [3]int8{}, err
	}
	return [3]int8{int8(b[0]), int8(b[1]), int8(b[2])}, nil
}

// SetXLUserOffsetOnOut applies the user offsets to the output registers.
func (d *Dev) SetXLUserOffsetOnOut(on bool) error  { return d.writeFlag(usrOffOut, on) }
func (d *Dev) GetXLUserOffsetOnOut() (bool, error) { return d.readFlag(usrOffOut) }

func (d *Dev) SetTimestamp(on bool) error  { return d.writeFlag(tsEn, on) }
func (d *Dev) GetTimestamp() (bool, error) { return d.readFlag(tsEn) }

// GetTimestampRaw returns the 32-bit timestamp counter (25 µs per LSB).
func (d *Dev) GetTimestampRaw() (uint32, error) {
	var b [4]byte
	if err := d.ReadRegs(RegTimestamp0, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func (d *Dev) SetRounding(v Rounding) error {
	if err := roundingTable.check(v); err != nil {
		return err
	}
	return d.writeField(rounding, uint8(v))
}

func (d *Dev) GetRounding() (Rounding, error) {
	v, err := d.readField(rounding)
	return decode(d, &roundingTable, v), err
}

// SetODRCalibration trims the internal oscillator (INTERNAL_FREQ_FINE).
func (d *Dev) SetODRCalibration(v int8) error {
	return d.writeByte(RegInternalFreqFine, uint8(v))
}

func (d *Dev) GetODRCalibration() (int8, error) {
	v, err := d.readByte(RegInternalFreqFine)
	return int8(v), err
}

func (d *Dev) SetDataReadyMode(v DataReadyMode) error {
	if err := dataReadyModeTable.check(v); err != nil {
		return err
	}
	return d.writeField(drdyPulsed, uint8(v))
}

func (d *Dev) GetDataReadyMode() (DataReadyMode, error) {
	v, err := d.readField(drdyPulsed)
	return decode(d, &dataReadyModeTable, v), err
}

// Status is a snapshot of STATUS_REG.
type Status struct {
	XLReady   bool
	GYReady   bool
	TempReady bool
}

func (d *Dev) GetStatus() (Status, error) {
	b, err := d.readByte(RegStatusReg)
	return Status{
		XLReady:   xlda.get(b) != 0,
		GYReady:   gda.get(b) != 0,
		TempReady: tda.get(b) != 0,
	}, err
}

func (d *Dev) XLDataReady() (bool, error)   { return d.readFlag(xlda) }
func (d *Dev) GYDataReady() (bool, error)   { return d.readFlag(gda) }
func (d *Dev) TempDataReady() (bool, error) { return d.readFlag(tda) }

// AllSources holds the raw event source registers, read in one pass.
type AllSources struct {
	AllIntSrc     uint8
	WakeUpSrc     uint8
	TapSrc        uint8
	D6DSrc        uint8
	Status        uint8
	EmbFuncStatus uint8
	FSMStatusA    uint8
	FSMStatusB    uint8
}

// GetAllSources reads the user bank source registers, then the embedded
// bank status registers.
func (d *Dev) GetAllSources() (AllSources, error) {
	var s AllSources
	for _, r := range []struct {
		reg uint8
		dst *uint8
	}{
		{RegAllIntSrc, &s.AllIntSrc},
		{RegWakeUpSrc, &s.WakeUpSrc},
		{RegTapSrc, &s.TapSrc},
		{RegD6DSrc, &s.D6DSrc},
		{RegStatusReg, &s.Status},
	} {
		v, err := d.readByte(r.reg)
		if err != nil {
			return s, err
		}
		*r.dst = v
	}
	b, err := d.readBankSeq(EmbeddedFuncBank, RegEmbFuncStatus, 3)
	if err != nil {
		return s, err
	}
	s.EmbFuncStatus, s.FSMStatusA, s.FSMStatusB = b[0], b[1], b[2]
	return s, nil
}

func bit(b uint8, n uint) bool { return b&(1<<n) != 0 }

func (s AllSources) FreeFall() bool       { return bit(s.AllIntSrc, 0) }
func (s AllSources) WakeUp() bool         { return bit(s.AllIntSrc, 1) }
func (s AllSources) SingleTap() bool      { return bit(s.AllIntSrc, 2) }
func (s AllSources) DoubleTap() bool      { return bit(s.AllIntSrc, 3) }
func (s AllSources) SixD() bool           { return bit(s.AllIntSrc, 4) }
func (s AllSources) SleepChange() bool    { return bit(s.AllIntSrc, 5) }
func (s AllSources) TimestampEnd() bool   { return bit(s.AllIntSrc, 7) }
func (s AllSources) SleepState() bool     { return bit(s.WakeUpSrc, 4) }
func (s AllSources) TapSign() bool        { return bit(s.TapSrc, 3) }
func (s AllSources) StepDetected() bool   { return bit(s.EmbFuncStatus, 3) }
func (s AllSources) Tilt() bool           { return bit(s.EmbFuncStatus, 4) }
func (s AllSources) SigMotion() bool      { return bit(s.EmbFuncStatus, 5) }
func (s AllSources) FSMLongCounter() bool { return bit(s.EmbFuncStatus, 7) }

// WakeUpAxes reports which axes exceeded the wake-up threshold.
func (s AllSources) WakeUpAxes() (x, y, z bool) {
	return bit(s.WakeUpSrc, 2), bit(s.WakeUpSrc, 1), bit(s.WakeUpSrc, 0)
}

// TapAxes reports which axes detected the tap.
func (s AllSources) TapAxes() (x, y, z bool) {
	return bit(s.TapSrc, 2), bit(s.TapSrc, 1), bit(s.TapSrc, 0)
}

// Orientation returns the D6D_SRC XL..ZH bits (bit 0 = XL).
func (s AllSources) Orientation() uint8 { return s.D6DSrc & 0x3F }

// FSM reports the interrupt state of state machine n (1..16).
func (s AllSources) FSM(n int) bool {
	switch {
	case n >= 1 && n <= 8:
		return bit(s.FSMStatusA, uint(n-1))
	case n >= 9 && n <= 16:
		return bit(s.FSMStatusB, uint(n-9))
	}
	return false
}

func readVec(d *Dev, reg uint8) ([3]int16, error) {
	var b [6]byte
	if err := d.ReadRegs(reg, b[:]); err != nil {
		return [3]int16{}, err
	}
	return [3]int16{
		int16(binary.LittleEndian.Uint16(b[0:])),
		int16(binary.LittleEndian.Uint16(b[2:])),
		int16(binary.LittleEndian.Uint16(b[4:])),
	}, nil
}

// GetTemperatureRaw returns OUT_TEMP as a signed LSB count.
func (d *Dev) GetTemperatureRaw() (int16, error) {
	var b [2]byte
	if err := d.ReadRegs(RegOutTempL, b[:]); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b[:])), nil
}

// GetAngularRateRaw returns the gyroscope X, Y, Z output.
func (d *Dev) GetAngularRateRaw() ([3]int16, error) { return readVec(d, RegOutXLG) }

// GetAccelerationRaw returns the accelerometer X, Y, Z output.
func (d *Dev) GetAccelerationRaw() ([3]int16, error) { return readVec(d, RegOutXLA) }

// GetFIFOOutRaw returns the 6 data bytes of the current FIFO word.
func (d *Dev) GetFIFOOutRaw() ([6]byte, error) {
	var b [6]byte
	err := d.ReadRegs(RegFIFODataOutXL, b[:])
	return b, err
}

// GetStepCounter returns the pedometer step count.
func (d *Dev) GetStepCounter() (uint16, error) {
	var b [2]byte
	err := d.withBank(EmbeddedFuncBank, func() error {
		return d.ReadRegs(RegStepCounterL, b[:])
	})
	return binary.LittleEndian.Uint16(b[:]), err
}

// ResetSteps clears the step counter.
func (d *Dev) ResetSteps() error {
	return d.writeBankFlag(EmbeddedFuncBank, pedoRst, true)
}

// DeviceID reads WHO_AM_I.
func (d *Dev) DeviceID() (uint8, error) { return d.readByte(RegWhoAmI) }

// SetReset requests a software reset. The bit self-clears.
func (d *Dev) SetReset(on bool) error          { return d.writeFlag(swReset, on) }
func (d *Dev) GetReset() (bool, error)         { return d.readFlag(swReset) }
func (d *Dev) SetAutoIncrement(on bool) error  { return d.writeFlag(ifInc, on) }
func (d *Dev) GetAutoIncrement() (bool, error) { return d.readFlag(ifInc) }

// SetBoot reloads the trimming parameters.
func (d *Dev) SetBoot(on bool) error  { return d.writeFlag(boot, on) }
func (d *Dev) GetBoot() (bool, error) { return d.readFlag(boot) }

func (d *Dev) SetXLSelfTest(v XLSelfTest) error {
	if err := xlSelfTestTable.check(v); err != nil {
		return err
	}
	return d.writeField(stXL, uint8(v))
}

func (d *Dev) GetXLSelfTest() (XLSelfTest, error) {
	v, err := d.readField(stXL)
	return decode(d, &xlSelfTestTable, v), err
}

func (d *Dev) SetGYSelfTest(v GYSelfTest) error {
	if err := gySelfTestTable.check(v); err != nil {
		return err
	}
	return d.writeField(stG, uint8(v))
}

func (d *Dev) GetGYSelfTest() (GYSelfTest, error) {
	v, err := d.readField(stG)
	return decode(d, &gySelfTestTable, v), err
}
