// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

var (
	sleepDur         = field{RegWakeUpDur, 0, 4}
	wakeThsW         = field{RegWakeUpDur, 4, 1}
	wakeDur          = field{RegWakeUpDur, 5, 2}
	ffDurHigh        = field{RegWakeUpDur, 7, 1}
	wkThs            = field{RegWakeUpThs, 0, 6}
	usrOffOnWU       = field{RegWakeUpThs, 6, 1}
	singleDoubleTap  = field{RegWakeUpThs, 7, 1}
	sleepG           = field{RegCtrl4C, 6, 1}
	tapZEn           = field{RegTapCfg0, 1, 1}
	tapYEn           = field{RegTapCfg0, 2, 1}
	tapXEn           = field{RegTapCfg0, 3, 1}
	sleepStatusOnInt = field{RegTapCfg0, 5, 1}
	tapThsX          = field{RegTapCfg1, 0, 5}
	tapPriority      = field{RegTapCfg1, 5, 3}
	tapThsY          = field{RegTapCfg2, 0, 5}
	inactEn          = field{RegTapCfg2, 5, 2}
	tapThsZ          = field{RegTapThs6D, 0, 5}
	sixdThs          = field{RegTapThs6D, 5, 2}
	d4dEn            = field{RegTapThs6D, 7, 1}
	tapShock         = field{RegIntDur2, 0, 2}
	tapQuiet         = field{RegIntDur2, 2, 2}
	tapDur           = field{RegIntDur2, 4, 4}
	ffThs            = field{RegFreeFall, 0, 3}
	ffDurLow         = field{RegFreeFall, 3, 5}
)

// Wake-up and activity.

func (d *Dev) SetWakeUpThresholdWeight(v WakeThsWeight) error {
	if err := wakeThsWeightTable.check(v); err != nil {
		return err
	}
	return d.writeField(wakeThsW, uint8(v))
}

func (d *Dev) GetWakeUpThresholdWeight() (WakeThsWeight, error) {
	v, err := d.readField(wakeThsW)
	return decode(d, &wakeThsWeightTable, v), err
}

// SetWakeUpThreshold sets the 6-bit wake-up threshold.
func (d *Dev) SetWakeUpThreshold(v uint8) error   { return d.writeField(wkThs, v) }
func (d *Dev) GetWakeUpThreshold() (uint8, error) { return d.readField(wkThs) }

// SetXLUserOffsetOnWakeUp applies the user offsets before wake-up detection.
func (d *Dev) SetXLUserOffsetOnWakeUp(on bool) error  { return d.writeFlag(usrOffOnWU, on) }
func (d *Dev) GetXLUserOffsetOnWakeUp() (bool, error) { return d.readFlag(usrOffOnWU) }

// SetWakeUpDuration sets the 2-bit wake duration in ODR cycles.
func (d *Dev) SetWakeUpDuration(v uint8) error   { return d.writeField(wakeDur, v) }
func (d *Dev) GetWakeUpDuration() (uint8, error) { return d.readField(wakeDur) }

// SetGYSleepMode puts the gyroscope in sleep mode.
func (d *Dev) SetGYSleepMode(on bool) error  { return d.writeFlag(sleepG, on) }
func (d *Dev) GetGYSleepMode() (bool, error) { return d.readFlag(sleepG) }

func (d *Dev) SetActPinNotification(v ActPinNotification) error {
	if err := actPinNotificationTable.check(v); err != nil {
		return err
	}
	return d.writeField(sleepStatusOnInt, uint8(v))
}

func (d *Dev) GetActPinNotification() (ActPinNotification, error) {
	v, err := d.readField(sleepStatusOnInt)
	return decode(d, &actPinNotificationTable, v), err
}

func (d *Dev) SetActMode(v ActMode) error {
	if err := actModeTable.check(v); err != nil {
		return err
	}
	return d.writeField(inactEn, uint8(v))
}

func (d *Dev) GetActMode() (ActMode, error) {
	v, err := d.readField(inactEn)
	return decode(d, &actModeTable, v), err
}

// SetActSleepDuration sets the 4-bit inactivity duration.
func (d *Dev) SetActSleepDuration(v uint8) error   { return d.writeField(sleepDur, v) }
func (d *Dev) GetActSleepDuration() (uint8, error) { return d.readField(sleepDur) }

// Tap.

func (d *Dev) SetTapDetectionOnX(on bool) error  { return d.writeFlag(tapXEn, on) }
func (d *Dev) GetTapDetectionOnX() (bool, error) { return d.readFlag(tapXEn) }
func (d *Dev) SetTapDetectionOnY(on bool) error  { return d.writeFlag(tapYEn, on) }
func (d *Dev) GetTapDetectionOnY() (bool, error) { return d.readFlag(tapYEn) }
func (d *Dev) SetTapDetectionOnZ(on bool) error  { return d.writeFlag(tapZEn, on) }
func (d *Dev) GetTapDetectionOnZ() (bool, error) { return d.readFlag(tapZEn) }

// Tap thresholds are 5 bits, 1 LSB = FS/32.
func (d *Dev) SetTapThresholdX(v uint8) error   { return d.writeField(tapThsX, v) }
func (d *Dev) GetTapThresholdX() (uint8, error) { return d.readField(tapThsX) }
func (d *Dev) SetTapThresholdY(v uint8) error   { return d.writeField(tapThsY, v) }
func (d *Dev) GetTapThresholdY() (uint8, error) { return d.readField(tapThsY) }
func (d *Dev) SetTapThresholdZ(v uint8) error   { return d.writeField(tapThsZ, v) }
func (d *Dev) GetTapThresholdZ() (uint8, error) { return d.readField(tapThsZ) }

func (d *Dev) SetTapAxisPriority(v TapPriority) error {
	if err := tapPriorityTable.check(v); err != nil {
		return err
	}
	return d.writeField(tapPriority, uint8(v))
}

func (d *Dev) GetTapAxisPriority() (TapPriority, error) {
	v, err := d.readField(tapPriority)
	return decode(d, &tapPriorityTable, v), err
}

func (d *Dev) SetTapShock(v uint8) error   { return d.writeField(tapShock, v) }
func (d *Dev) GetTapShock() (uint8, error) { return d.readField(tapShock) }
func (d *Dev) SetTapQuiet(v uint8) error   { return d.writeField(tapQuiet, v) }
func (d *Dev) GetTapQuiet() (uint8, error) { return d.readField(tapQuiet) }
func (d *Dev) SetTapDur(v uint8) error     { return d.writeField(tapDur, v) }
func (d *Dev) GetTapDur() (uint8, error)   { return d.readField(tapDur) }

func (d *Dev) SetTapMode(v TapMode) error {
	if err := tapModeTable.check(v); err != nil {
		return err
	}
	return d.writeField(singleDoubleTap, uint8(v))
}

func (d *Dev) GetTapMode() (TapMode, error) {
	v, err := d.readField(singleDoubleTap)
	return decode(d, &tapModeTable, v), err
}

// 6D, 4D and free fall.

func (d *Dev) Set6DThreshold(v SixDThreshold) error {
	if err := sixDThresholdTable.check(v); err != nil {
		return err
	}
	return d.writeField(sixdThs, uint8(v))
}

func (d *Dev) Get6DThreshold() (SixDThreshold, error) {
	v, err := d.readField(sixdThs)
	return decode(d, &sixDThresholdTable, v), err
}

func (d *Dev) Set4DMode(on bool) error  { return d.writeFlag(d4dEn, on) }
func (d *Dev) Get4DMode() (bool, error) { return d.readFlag(d4dEn) }

func (d *Dev) SetFFThreshold(v FFThreshold) error {
	if err := ffThresholdTable.check(v); err != nil {
		return err
	}
	return d.writeField(ffThs, uint8(v))
}

func (d *Dev) GetFFThreshold() (FFThreshold, error) {
	v, err := d.readField(ffThs)
	return decode(d, &ffThresholdTable, v), err
}

// SetFFDuration sets the 6-bit free-fall duration. Bit 5 lives in
// WAKE_UP_DUR, bits 4:0 in FREE_FALL.
func (d *Dev) SetFFDuration(v uint8) error {
	if v > 0x3F {
		return invalidf("free-fall duration %d > 63", v)
	}
	wu, err := d.readByte(RegWakeUpDur)
	if err != nil {
		return err
	}
	ff, err := d.readByte(RegFreeFall)
	if err != nil {
		return err
	}
	if err := d.writeByte(RegWakeUpDur, ffDurHigh.set(wu, (v&0x20)>>5)); err != nil {
		return err
	}
	return d.writeByte(RegFreeFall, ffDurLow.set(ff, v&0x1F))
}

func (d *Dev) GetFFDuration() (uint8, error) {
	hi, err := d.readField(ffDurHigh)
	if err != nil {
		return 0, err
	}
	lo, err := d.readField(ffDurLow)
	return hi<<5 | lo, err
}
