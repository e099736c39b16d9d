// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

import "fmt"

var (
	pdDisInt1    = field{RegI3CBusAvb, 0, 1}
	ppOD         = field{RegCtrl3C, 4, 1}
	hLActive     = field{RegCtrl3C, 5, 1}
	int2OnInt1   = field{RegCtrl4C, 5, 1}
	lir          = field{RegTapCfg0, 0, 1}
	intClrOnRead = field{RegTapCfg0, 6, 1}
	embFuncLIR   = field{RegPageRW, 7, 1}
	intsEnable   = field{RegTapCfg2, 7, 1}
)

// Int1Ctrl is the INT1_CTRL routing mask.
type Int1Ctrl uint8

const (
	Int1DrdyXL      Int1Ctrl = 1 << 0
	Int1DrdyG       Int1Ctrl = 1 << 1
	Int1Boot        Int1Ctrl = 1 << 2
	Int1FIFOTh      Int1Ctrl = 1 << 3
	Int1FIFOOvr     Int1Ctrl = 1 << 4
	Int1FIFOFull    Int1Ctrl = 1 << 5
	Int1CntBDR      Int1Ctrl = 1 << 6
	Int1DenDrdyFlag Int1Ctrl = 1 << 7
)

// Int2Ctrl is the INT2_CTRL routing mask.
type Int2Ctrl uint8

const (
	Int2DrdyXL   Int2Ctrl = 1 << 0
	Int2DrdyG    Int2Ctrl = 1 << 1
	Int2DrdyTemp Int2Ctrl = 1 << 2
	Int2FIFOTh   Int2Ctrl = 1 << 3
	Int2FIFOOvr  Int2Ctrl = 1 << 4
	Int2FIFOFull Int2Ctrl = 1 << 5
	Int2CntBDR   Int2Ctrl = 1 << 6
)

// MDCfg is the MD1_CFG/MD2_CFG routing mask. Bit 0 routes the sensor hub
// end-of-operation on INT1 and the timestamp end-count on INT2.
type MDCfg uint8

const (
	MDShub        MDCfg = 1 << 0
	MDTimestamp   MDCfg = 1 << 0
	MDEmbFunc     MDCfg = 1 << 1
	MD6D          MDCfg = 1 << 2
	MDDoubleTap   MDCfg = 1 << 3
	MDFreeFall    MDCfg = 1 << 4
	MDWakeUp      MDCfg = 1 << 5
	MDSingleTap   MDCfg = 1 << 6
	MDSleepChange MDCfg = 1 << 7
)

// EmbFuncInt is the EMB_FUNC_INT1/EMB_FUNC_INT2 routing mask.
type EmbFuncInt uint8

const (
	EmbIntStepDetector EmbFuncInt = 1 << 3
	EmbIntTilt         EmbFuncInt = 1 << 4
	EmbIntSigMot       EmbFuncInt = 1 << 5
	EmbIntFSMLongCount EmbFuncInt = 1 << 7
)

const (
	mdEventMask  = MD6D | MDDoubleTap | MDFreeFall | MDWakeUp | MDSingleTap | MDSleepChange
	embEventMask = EmbIntStepDetector | EmbIntTilt | EmbIntSigMot | EmbIntFSMLongCount
	int2CtrlMask = Int2DrdyXL | Int2DrdyG | Int2DrdyTemp | Int2FIFOTh | Int2FIFOOvr | Int2FIFOFull | Int2CntBDR
)

// PinInt1Route is everything that can drive the INT1 pad. FSM bit n-1
// routes state machine n.
type PinInt1Route struct {
	Int1Ctrl    Int1Ctrl
	MD1Cfg      MDCfg
	EmbFuncInt1 EmbFuncInt
	FSMInt1     uint16
}

// PinInt2Route is everything that can drive the INT2 pad.
type PinInt2Route struct {
	Int2Ctrl    Int2Ctrl
	MD2Cfg      MDCfg
	EmbFuncInt2 EmbFuncInt
	FSMInt2     uint16
}

func (r PinInt1Route) String() string {
	return fmt.Sprintf("int1{ctrl:0x%02X md:0x%02X emb:0x%02X fsm:0x%04X}", uint8(r.Int1Ctrl), uint8(r.MD1Cfg), uint8(r.EmbFuncInt1), r.FSMInt1)
}

func (r PinInt2Route) String() string {
	return fmt.Sprintf("int2{ctrl:0x%02X md:0x%02X emb:0x%02X fsm:0x%04X}", uint8(r.Int2Ctrl), uint8(r.MD2Cfg), uint8(r.EmbFuncInt2), r.FSMInt2)
}

func (r PinInt1Route) usesEmbFunc() bool {
	return r.EmbFuncInt1&embEventMask != 0 || r.FSMInt1 != 0
}

func (r PinInt2Route) usesEmbFunc() bool {
	return r.EmbFuncInt2&embEventMask != 0 || r.FSMInt2 != 0
}

// pinEvents reports whether a pad has a basic-function interrupt routed.
func (r PinInt1Route) pinEvents() bool {
	return r.Int1Ctrl != 0 || r.MD1Cfg&mdEventMask != 0
}

func (r PinInt2Route) pinEvents() bool {
	return r.Int2Ctrl&int2CtrlMask != 0 || r.MD2Cfg&mdEventMask != 0
}

func (d *Dev) writeEmbRoute(reg uint8, emb EmbFuncInt, fsm uint16) error {
	return d.withBank(EmbeddedFuncBank, func() error {
		for i, v := range []uint8{uint8(emb), uint8(fsm), uint8(fsm >> 8)} {
			if err := d.writeByte(reg+uint8(i), v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *Dev) readEmbRoute(reg uint8) (EmbFuncInt, uint16, error) {
	b, err := d.readBankSeq(EmbeddedFuncBank, reg, 3)
	if err != nil {
		return 0, 0, err
	}
	return EmbFuncInt(b[0]), uint16(b[1]) | uint16(b[2])<<8, nil
}

// SetPinInt1Route writes the embedded and FSM routes, sets MD1_CFG emb_func
// when any of them is used, writes INT1_CTRL and MD1_CFG, then updates the
// global interrupt enable from the INT1 and current INT2 routes.
func (d *Dev) SetPinInt1Route(r PinInt1Route) error {
	if err := d.writeEmbRoute(RegEmbFuncInt1, r.EmbFuncInt1, r.FSMInt1); err != nil {
		return err
	}
	if r.usesEmbFunc() {
		r.MD1Cfg |= MDEmbFunc
	} else {
		r.MD1Cfg &^= MDEmbFunc
	}
	if err := d.writeByte(RegInt1Ctrl, uint8(r.Int1Ctrl)); err != nil {
		return err
	}
	if err := d.writeByte(RegMD1Cfg, uint8(r.MD1Cfg)); err != nil {
		return err
	}
	tapCfg2, err := d.readByte(RegTapCfg2)
	if err != nil {
		return err
	}
	other, err := d.GetPinInt2Route()
	if err != nil {
		return err
	}
	on := r.pinEvents() || other.pinEvents()
	return d.writeByte(RegTapCfg2, intsEnable.set(tapCfg2, b2u(on)))
}

func (d *Dev) GetPinInt1Route() (PinInt1Route, error) {
	var r PinInt1Route
	var err error
	r.EmbFuncInt1, r.FSMInt1, err = d.readEmbRoute(RegEmbFuncInt1)
	if err != nil {
		return r, err
	}
	b, err := d.readByte(RegInt1Ctrl)
	if err != nil {
		return r, err
	}
	r.Int1Ctrl = Int1Ctrl(b)
	b, err = d.readByte(RegMD1Cfg)
	r.MD1Cfg = MDCfg(b)
	return r, err
}

// SetPinInt2Route is the INT2 counterpart of SetPinInt1Route.
func (d *Dev) SetPinInt2Route(r PinInt2Route) error {
	if err := d.writeEmbRoute(RegEmbFuncInt2, r.EmbFuncInt2, r.FSMInt2); err != nil {
		return err
	}
	if r.usesEmbFunc() {
		r.MD2Cfg |= MDEmbFunc
	} else {
		r.MD2Cfg &^= MDEmbFunc
	}
	if err := d.writeByte(RegInt2Ctrl, uint8(r.Int2Ctrl)); err != nil {
		return err
	}
	if err := d.writeByte(RegMD2Cfg, uint8(r.MD2Cfg)); err != nil {
		return err
	}
	tapCfg2, err := d.readByte(RegTapCfg2)
	if err != nil {
		return err
	}
	other, err := d.GetPinInt1Route()
	if err != nil {
		return err
	}
	on := r.pinEvents() || other.pinEvents()
	return d.writeByte(RegTapCfg2, intsEnable.set(tapCfg2, b2u(on)))
}

func (d *Dev) GetPinInt2Route() (PinInt2Route, error) {
	var r PinInt2Route
	var err error
	r.EmbFuncInt2, r.FSMInt2, err = d.readEmbRoute(RegEmbFuncInt2)
	if err != nil {
		return r, err
	}
	b, err := d.readByte(RegInt2Ctrl)
	if err != nil {
		return r, err
	}
	r.Int2Ctrl = Int2Ctrl(b)
	b, err = d.readByte(RegMD2Cfg)
	r.MD2Cfg = MDCfg(b)
	return r, err
}

func (d *Dev) SetInt1PullDown(v Int1PullDown) error {
	if err := int1PullDownTable.check(v); err != nil {
		return err
	}
	return d.writeField(pdDisInt1, uint8(v))
}

func (d *Dev) GetInt1PullDown() (Int1PullDown, error) {
	v, err := d.readField(pdDisInt1)
	return decode(d, &int1PullDownTable, v), err
}

func (d *Dev) SetPinMode(v PinMode) error {
	if err := pinModeTable.check(v); err != nil {
		return err
	}
	return d.writeField(ppOD, uint8(v))
}

func (d *Dev) GetPinMode() (PinMode, error) {
	v, err := d.readField(ppOD)
	return decode(d, &pinModeTable, v), err
}

func (d *Dev) SetPinPolarity(v PinPolarity) error {
	if err := pinPolarityTable.check(v); err != nil {
		return err
	}
	return d.writeField(hLActive, uint8(v))
}

func (d *Dev) GetPinPolarity() (PinPolarity, error) {
	v, err := d.readField(hLActive)
	return decode(d, &pinPolarityTable, v), err
}

// SetAllOnInt1 ORs every INT2 source onto the INT1 pad.
func (d *Dev) SetAllOnInt1(on bool) error  { return d.writeFlag(int2OnInt1, on) }
func (d *Dev) GetAllOnInt1() (bool, error) { return d.readFlag(int2OnInt1) }

// SetIntNotification programs base latching in TAP_CFG0 (lir and
// int_clr_on_read), then embedded latching in PAGE_RW.
func (d *Dev) SetIntNotification(v IntNotification) error {
	if err := intNotificationTable.check(v); err != nil {
		return err
	}
	b, err := d.readByte(RegTapCfg0)
	if err != nil {
		return err
	}
	b = lir.set(b, uint8(v)&0x01)
	b = intClrOnRead.set(b, uint8(v)&0x01)
	if err := d.writeByte(RegTapCfg0, b); err != nil {
		return err
	}
	return d.writeBankField(EmbeddedFuncBank, embFuncLIR, (uint8(v)&0x02)>>1)
}

func (d *Dev) GetIntNotification() (IntNotification, error) {
	base, err := d.readField(lir)
	if err != nil {
		return AllIntPulsed, err
	}
	emb, err := d.readBankField(EmbeddedFuncBank, embFuncLIR)
	if err != nil {
		return AllIntPulsed, err
	}
	return decode(d, &intNotificationTable, emb<<1|base), nil
}
