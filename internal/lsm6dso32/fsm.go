// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

var (
	fsmEn    = field{RegEmbFuncEnB, 0, 1}
	isFSMLC  = field{RegEmbFuncStatus, 7, 1}
	fsmLCClr = field{RegFSMLongCounterClr, 0, 2}
	fsmODR   = field{RegEmbFuncODRCfgB, 3, 2}
	fsmInit  = field{RegEmbFuncInitB, 0, 1}
)

// EMB_FUNC_ODR_CFG_B reserved bits that must be written as 0b001xx011.
const fsmODRReserved = 0x20 | 0x03

// GetLongCntFlag reports the FSM long counter timeout flag.
func (d *Dev) GetLongCntFlag() (bool, error) {
	return d.readBankFlag(EmbeddedFuncBank, isFSMLC)
}

// SetEmbFSM sets the global FSM enable alone.
func (d *Dev) SetEmbFSM(on bool) error {
	return d.writeBankFlag(EmbeddedFuncBank, fsmEn, on)
}

func (d *Dev) GetEmbFSM() (bool, error) {
	return d.readBankFlag(EmbeddedFuncBank, fsmEn)
}

// SetFSMEnable writes the per-machine enables (bit n-1 = FSM n) and keeps
// the global fsm_en in step with them.
func (d *Dev) SetFSMEnable(mask uint16) error {
	return d.withBank(EmbeddedFuncBank, func() error {
		if err := d.writeByte(RegFSMEnableA, uint8(mask)); err != nil {
			return err
		}
		if err := d.writeByte(RegFSMEnableB, uint8(mask>>8)); err != nil {
			return err
		}
		return d.writeField(fsmEn, b2u(mask != 0))
	})
}

func (d *Dev) GetFSMEnable() (uint16, error) {
	b, err := d.readBankSeq(EmbeddedFuncBank, RegFSMEnableA, 2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

// SetLongCnt sets the FSM long counter.
func (d *Dev) SetLongCnt(v uint16) error {
	return d.withBank(EmbeddedFuncBank, func() error {
		return d.WriteRegs(RegFSMLongCounterL, []byte{uint8(v), uint8(v >> 8)})
	})
}

func (d *Dev) GetLongCnt() (uint16, error) {
	var b [2]byte
	err := d.withBank(EmbeddedFuncBank, func() error {
		return d.ReadRegs(RegFSMLongCounterL, b[:])
	})
	return uint16(b[0]) | uint16(b[1])<<8, err
}

func (d *Dev) SetLongClr(v LongCounterClear) error {
	if err := longCounterClearTable.check(v); err != nil {
		return err
	}
	return d.writeBankField(EmbeddedFuncBank, fsmLCClr, uint8(v))
}

func (d *Dev) GetLongClr() (LongCounterClear, error) {
	v, err := d.readBankField(EmbeddedFuncBank, fsmLCClr)
	return decode(d, &longCounterClearTable, v), err
}

// GetFSMOut returns FSM_OUTS1..FSM_OUTS16.
func (d *Dev) GetFSMOut() ([FSMOutputs]byte, error) {
	var b [FSMOutputs]byte
	err := d.withBank(EmbeddedFuncBank, func() error {
		return d.ReadRegs(RegFSMOuts1, b[:])
	})
	return b, err
}

// SetFSMDataRate sets the FSM ODR and rewrites the reserved bits of
// EMB_FUNC_ODR_CFG_B to their required values.
func (d *Dev) SetFSMDataRate(v FSMDataRate) error {
	if err := fsmDataRateTable.check(v); err != nil {
		return err
	}
	return d.withBank(EmbeddedFuncBank, func() error {
		if _, err := d.readByte(RegEmbFuncODRCfgB); err != nil {
			return err
		}
		return d.writeByte(RegEmbFuncODRCfgB, fsmODR.set(fsmODRReserved, uint8(v)))
	})
}

func (d *Dev) GetFSMDataRate() (FSMDataRate, error) {
	v, err := d.readBankField(EmbeddedFuncBank, fsmODR)
	return decode(d, &fsmDataRateTable, v), err
}

// SetFSMInit requests FSM re-initialization.
func (d *Dev) SetFSMInit(on bool) error {
	return d.writeBankFlag(EmbeddedFuncBank, fsmInit, on)
}

func (d *Dev) GetFSMInit() (bool, error) {
	return d.readBankFlag(EmbeddedFuncBank, fsmInit)
}

// SetLongCntIntValue sets the long counter timeout that raises the
// long counter interrupt.
func (d *Dev) SetLongCntIntValue(v uint16) error {
	return d.pageWriteLE16(PageFSMLCTimeoutL, v)
}

func (d *Dev) GetLongCntIntValue() (uint16, error) {
	return d.pageReadLE16(PageFSMLCTimeoutL)
}

// SetFSMNumberOfPrograms sets how many FSM programs are loaded.
func (d *Dev) SetFSMNumberOfPrograms(n uint8) error {
	return d.PageWriteByte(PageFSMPrograms, n)
}

func (d *Dev) GetFSMNumberOfPrograms() (uint8, error) {
	return d.PageReadByte(PageFSMPrograms)
}

// SetFSMStartAddress sets where the FSM programs start in paged memory.
func (d *Dev) SetFSMStartAddress(addr uint16) error {
	return d.pageWriteLE16(PageFSMStartAddL, addr)
}

func (d *Dev) GetFSMStartAddress() (uint16, error) {
	return d.pageReadLE16(PageFSMStartAddL)
}
