// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

var (
	auxSensOn     = field{RegMasterConfig, 0, 2}
	masterOn      = field{RegMasterConfig, 2, 1}
	shubPuEn      = field{RegMasterConfig, 3, 1}
	passThrough   = field{RegMasterConfig, 4, 1}
	startConfig   = field{RegMasterConfig, 5, 1}
	writeOnce     = field{RegMasterConfig, 6, 1}
	rstMasterRegs = field{RegMasterConfig, 7, 1}
	shubODR       = field{RegSlv0Config, 6, 2}
)

// SensorHubSlaves is the number of external sensor slots.
const SensorHubSlaves = 4

// slaveBase returns SLVn_ADD; SUBADD and CONFIG follow it.
func slaveBase(n int) (uint8, error) {
	if n < 0 || n >= SensorHubSlaves {
		return 0, invalidf("sensor hub slave %d", n)
	}
	return RegSlv0Add + uint8(3*n), nil
}

func slaveConfigField(n int, shift, width uint8) (field, error) {
	base, err := slaveBase(n)
	if err != nil {
		return field{}, err
	}
	return field{base + 2, shift, width}, nil
}

// ReadSHData copies len(buf) bytes from SENSOR_HUB_1.
func (d *Dev) ReadSHData(buf []byte) error {
	if len(buf) == 0 || len(buf) > SensorHubDataLen {
		return invalidf("sensor hub read of %d bytes", len(buf))
	}
	return d.withBank(SensorHubBank, func() error {
		return d.ReadRegs(RegSensorHub1, buf)
	})
}

func (d *Dev) SetSHSlaveConnected(v SHSlaves) error {
	if err := shSlavesTable.check(v); err != nil {
		return err
	}
	return d.writeBankField(SensorHubBank, auxSensOn, uint8(v))
}

func (d *Dev) GetSHSlaveConnected() (SHSlaves, error) {
	v, err := d.readBankField(SensorHubBank, auxSensOn)
	return decode(d, &shSlavesTable, v), err
}

// SetSHMaster turns the sensor hub I2C master on.
func (d *Dev) SetSHMaster(on bool) error {
	return d.writeBankFlag(SensorHubBank, masterOn, on)
}

func (d *Dev) GetSHMaster() (bool, error) {
	return d.readBankFlag(SensorHubBank, masterOn)
}

func (d *Dev) SetSHPinMode(v SHPullUp) error {
	if err := shPullUpTable.check(v); err != nil {
		return err
	}
	return d.writeBankField(SensorHubBank, shubPuEn, uint8(v))
}

func (d *Dev) GetSHPinMode() (SHPullUp, error) {
	v, err := d.readBankField(SensorHubBank, shubPuEn)
	return decode(d, &shPullUpTable, v), err
}

// SetSHPassThrough connects the auxiliary bus to the primary interface.
func (d *Dev) SetSHPassThrough(on bool) error {
	return d.writeBankFlag(SensorHubBank, passThrough, on)
}

func (d *Dev) GetSHPassThrough() (bool, error) {
	return d.readBankFlag(SensorHubBank, passThrough)
}

func (d *Dev) SetSHSyncroMode(v SHTrigger) error {
	if err := shTriggerTable.check(v); err != nil {
		return err
	}
	return d.writeBankField(SensorHubBank, startConfig, uint8(v))
}

func (d *Dev) GetSHSyncroMode() (SHTrigger, error) {
	v, err := d.readBankField(SensorHubBank, startConfig)
	return decode(d, &shTriggerTable, v), err
}

func (d *Dev) SetSHWriteMode(v SHWriteMode) error {
	if err := shWriteModeTable.check(v); err != nil {
		return err
	}
	return d.writeBankField(SensorHubBank, writeOnce, uint8(v))
}

func (d *Dev) GetSHWriteMode() (SHWriteMode, error) {
	v, err := d.readBankField(SensorHubBank, writeOnce)
	return decode(d, &shWriteModeTable, v), err
}

// SHReset pulses rst_master_regs.
func (d *Dev) SHReset() error {
	return d.withBank(SensorHubBank, func() error {
		b, err := d.readByte(RegMasterConfig)
		if err != nil {
			return err
		}
		if err := d.writeByte(RegMasterConfig, rstMasterRegs.set(b, 1)); err != nil {
			return err
		}
		return d.writeByte(RegMasterConfig, rstMasterRegs.set(b, 0))
	})
}

// GetSHReset reports rst_master_regs.
func (d *Dev) GetSHReset() (bool, error) {
	return d.readBankFlag(SensorHubBank, rstMasterRegs)
}

func (d *Dev) SetSHDataRate(v SHDataRate) error {
	if err := shDataRateTable.check(v); err != nil {
		return err
	}
	return d.writeBankField(SensorHubBank, shubODR, uint8(v))
}

func (d *Dev) GetSHDataRate() (SHDataRate, error) {
	v, err := d.readBankField(SensorHubBank, shubODR)
	return decode(d, &shDataRateTable, v), err
}

// SHCfgWrite describes a single register write issued by slave 0.
type SHCfgWrite struct {
	Addr   uint8 // 7-bit I2C address
	SubAdd uint8
	Data   uint8
}

// SetSHCfgWrite programs slave 0 for a write operation.
func (d *Dev) SetSHCfgWrite(c SHCfgWrite) error {
	if c.Addr > 0x7F {
		return invalidf("slave address 0x%02X", c.Addr)
	}
	return d.withBank(SensorHubBank, func() error {
		if err := d.writeByte(RegSlv0Add, c.Addr<<1); err != nil {
			return err
		}
		if err := d.writeByte(RegSlv0Subadd, c.SubAdd); err != nil {
			return err
		}
		return d.writeByte(RegDatawriteSlv0, c.Data)
	})
}

// SHCfgRead describes a register read issued by a slave slot.
type SHCfgRead struct {
	Addr   uint8 // 7-bit I2C address
	SubAdd uint8
	Len    uint8 // 1..7
}

// SetSHSlaveCfgRead programs slave n (0..3) for a read operation.
func (d *Dev) SetSHSlaveCfgRead(n int, c SHCfgRead) error {
	base, err := slaveBase(n)
	if err != nil {
		return err
	}
	if c.Addr > 0x7F {
		return invalidf("slave address 0x%02X", c.Addr)
	}
	numop := field{base + 2, 0, 3}
	if !numop.fits(c.Len) {
		return invalidf("slave read length %d", c.Len)
	}
	return d.withBank(SensorHubBank, func() error {
		if err := d.writeByte(base, c.Addr<<1|1); err != nil {
			return err
		}
		if err := d.writeByte(base+1, c.SubAdd); err != nil {
			return err
		}
		return d.writeField(numop, c.Len)
	})
}

// SHStatus is a decoded STATUS_MASTER.
type SHStatus struct {
	EndOp      bool
	Nack       [SensorHubSlaves]bool
	WrOnceDone bool
}

// GetSHStatus reads STATUS_MASTER from the sensor hub bank.
func (d *Dev) GetSHStatus() (SHStatus, error) {
	var b uint8
	err := d.withBank(SensorHubBank, func() error {
		var err error
		b, err = d.readByte(RegStatusMaster)
		return err
	})
	s := SHStatus{EndOp: bit(b, 0), WrOnceDone: bit(b, 7)}
	for i := range s.Nack {
		s.Nack[i] = bit(b, uint(3+i))
	}
	return s, err
}
