// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32/lsm6dso32test"
)

func checkPageIdle(t *testing.T, rf *lsm6dso32test.RegFile) {
	t.Helper()
	if rf.Bank() != lsm6dso32.UserBank {
		t.Errorf("bank left at %s", rf.Bank())
	}
	if sel := rf.Banks[lsm6dso32.EmbeddedFuncBank][lsm6dso32.RegPageSel]; sel != 0x01 {
		t.Errorf("PAGE_SEL = 0x%02X, want 0x01", sel)
	}
	if !rf.PageIdle() {
		t.Errorf("PAGE_RW = 0x%02X, want no page mode", rf.Banks[lsm6dso32.EmbeddedFuncBank][lsm6dso32.RegPageRW])
	}
}

func TestPageWriteAcrossBoundary(t *testing.T) {
	rf := lsm6dso32test.New()
	d := lsm6dso32.New(rf, nil)
	data := []byte{0xA1, 0xB2, 0xC3, 0xD4}
	if err := d.PageWrite(0x0FE, data); err != nil {
		t.Fatal(err)
	}
	for i, addr := range []uint16{0x0FE, 0x0FF, 0x100, 0x101} {
		if rf.Page[addr] != data[i] {
			t.Errorf("page[0x%03X] = 0x%02X, want 0x%02X", addr, rf.Page[addr], data[i])
		}
	}
	// Page select is rewritten once, for page 1.
	sels := rf.Writes(lsm6dso32.EmbeddedFuncBank, lsm6dso32.RegPageSel)
	want := []uint8{0x01, 0x11, 0x01}
	if !bytes.Equal(sels, want) {
		t.Errorf("PAGE_SEL writes = % X, want % X", sels, want)
	}
	// The address is written once on the write path.
	if n := len(rf.Writes(lsm6dso32.EmbeddedFuncBank, lsm6dso32.RegPageAddress)); n != 1 {
		t.Errorf("PAGE_ADDRESS written %d times, want 1", n)
	}
	checkPageIdle(t, rf)

	got := make([]byte, len(data))
	if err := d.PageRead(0x0FE, got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("PageRead = % X, want % X", got, data)
	}
	addrs := rf.Writes(lsm6dso32.EmbeddedFuncBank, lsm6dso32.RegPageAddress)[1:]
	if !bytes.Equal(addrs, []uint8{0xFE, 0xFF, 0x00, 0x01}) {
		t.Errorf("read path PAGE_ADDRESS writes = % X", addrs)
	}
	checkPageIdle(t, rf)
}

func TestPageSingleBytes(t *testing.T) {
	rf := lsm6dso32test.New()
	d := lsm6dso32.New(rf, nil)
	if err := d.PageWriteByte(lsm6dso32.PagePedoDebStepsConf, 0x0A); err != nil {
		t.Fatal(err)
	}
	v, err := d.PageReadByte(lsm6dso32.PagePedoDebStepsConf)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x0A {
		t.Errorf("PageReadByte = 0x%02X, want 0x0A", v)
	}
	if rf.Page[lsm6dso32.PagePedoDebStepsConf] != 0x0A {
		t.Errorf("page memory not written")
	}
}

func TestPageSpanValidation(t *testing.T) {
	rf := lsm6dso32test.New()
	d := lsm6dso32.New(rf, nil)
	if err := d.PageWrite(0xFFF, []byte{1, 2}); !errors.Is(err, lsm6dso32.ErrInvalidArgument) {
		t.Errorf("PageWrite past end = %v, want ErrInvalidArgument", err)
	}
	if err := d.PageRead(0x100, nil); !errors.Is(err, lsm6dso32.ErrInvalidArgument) {
		t.Errorf("empty PageRead = %v, want ErrInvalidArgument", err)
	}
	if rf.ReadTx+rf.WriteTx != 0 {
		t.Errorf("bus traffic on invalid span")
	}
}

func TestPageWriteFailureStillCleansUp(t *testing.T) {
	rf := lsm6dso32test.New()
	rf.Fail = lsm6dso32test.FailOn("write", lsm6dso32.RegPageValue, 2)
	d := lsm6dso32.New(rf, nil)
	err := d.PageWrite(0x1D0, []byte{1, 2, 3})
	if !errors.Is(err, lsm6dso32test.ErrInjected) {
		t.Fatalf("PageWrite = %v, want injected failure", err)
	}
	if n := len(rf.Writes(lsm6dso32.EmbeddedFuncBank, lsm6dso32.RegPageValue)); n != 1 {
		t.Errorf("PAGE_VALUE written %d times after failure, want 1", n)
	}
	checkPageIdle(t, rf)
}

func TestPageSelectFailureSkipsTransfer(t *testing.T) {
	rf := lsm6dso32test.New()
	rf.Fail = lsm6dso32test.FailOn("read", lsm6dso32.RegPageSel, 1)
	d := lsm6dso32.New(rf, nil)
	if err := d.PageRead(0x183, make([]byte, 1)); !errors.Is(err, lsm6dso32test.ErrInjected) {
		t.Fatalf("PageRead = %v, want injected failure", err)
	}
	if n := rf.ReadsFrom(lsm6dso32.EmbeddedFuncBank, lsm6dso32.RegPageValue); n != 0 {
		t.Errorf("PAGE_VALUE read %d times after failure", n)
	}
	checkPageIdle(t, rf)
}

func TestPagedWordsLittleEndian(t *testing.T) {
	rf := lsm6dso32test.New()
	d := lsm6dso32.New(rf, nil)
	if err := d.SetPedoStepsPeriod(0xBEEF); err != nil {
		t.Fatal(err)
	}
	if rf.Page[lsm6dso32.PagePedoSCDeltaTL] != 0xEF || rf.Page[lsm6dso32.PagePedoSCDeltaTH] != 0xBE {
		t.Errorf("steps period bytes = %02X %02X", rf.Page[lsm6dso32.PagePedoSCDeltaTL], rf.Page[lsm6dso32.PagePedoSCDeltaTH])
	}
	got, err := d.GetPedoStepsPeriod()
	if err != nil || got != 0xBEEF {
		t.Errorf("GetPedoStepsPeriod() = 0x%04X, %v", got, err)
	}

	si := [6]int16{1, -2, 3, -4, 5, -32768}
	if err := d.SetMagSoftIron(si); err != nil {
		t.Fatal(err)
	}
	if rf.Page[lsm6dso32.PageMagSiXXL+10] != 0x00 || rf.Page[lsm6dso32.PageMagSiXXL+11] != 0x80 {
		t.Errorf("ZZ bytes = %02X %02X", rf.Page[lsm6dso32.PageMagSiXXL+10], rf.Page[lsm6dso32.PageMagSiXXL+11])
	}
	back, err := d.GetMagSoftIron()
	if err != nil || back != si {
		t.Errorf("GetMagSoftIron() = %v, %v", back, err)
	}
}

func TestPedoSensComposite(t *testing.T) {
	rf := lsm6dso32test.New()
	rf.Page[lsm6dso32.PagePedoCmdReg] = 0x08 // carry_count_en must survive
	d := lsm6dso32.New(rf, nil)
	if err := d.SetPedoSens(lsm6dso32.FalseStepRejAdvMode); err != nil {
		t.Fatal(err)
	}
	if a := rf.Banks[lsm6dso32.EmbeddedFuncBank][lsm6dso32.RegEmbFuncEnA]; a&0x08 == 0 {
		t.Errorf("pedo_en not set: 0x%02X", a)
	}
	if b := rf.Banks[lsm6dso32.EmbeddedFuncBank][lsm6dso32.RegEmbFuncEnB]; b&0x10 == 0 {
		t.Errorf("pedo_adv_en not set: 0x%02X", b)
	}
	if cmd := rf.Page[lsm6dso32.PagePedoCmdReg]; cmd != 0x0D {
		t.Errorf("PEDO_CMD_REG = 0x%02X, want 0x0D", cmd)
	}
	got, err := d.GetPedoSens()
	if err != nil || got != lsm6dso32.FalseStepRejAdvMode {
		t.Errorf("GetPedoSens() = %s, %v", got, err)
	}
	mode, err := d.GetPedoIntMode()
	if err != nil || mode != lsm6dso32.CountOverflow {
		t.Errorf("GetPedoIntMode() = %s, %v", mode, err)
	}
	checkPageIdle(t, rf)
}

func TestMagOrientation(t *testing.T) {
	rf := lsm6dso32test.New()
	d := lsm6dso32.New(rf, nil)
	if err := d.SetMagZOrient(lsm6dso32.EqMinZ); err != nil {
		t.Fatal(err)
	}
	if err := d.SetMagYOrient(lsm6dso32.EqMinX); err != nil {
		t.Fatal(err)
	}
	if err := d.SetMagXOrient(lsm6dso32.EqZ); err != nil {
		t.Fatal(err)
	}
	if a := rf.Page[lsm6dso32.PageMagCfgA]; a != 0x34 {
		t.Errorf("MAG_CFG_A = 0x%02X, want 0x34", a)
	}
	if b := rf.Page[lsm6dso32.PageMagCfgB]; b != 0x05 {
		t.Errorf("MAG_CFG_B = 0x%02X, want 0x05", b)
	}
	rf.Page[lsm6dso32.PageMagCfgB] = 0x07
	got, err := d.GetMagXOrient()
	if err != nil || got != lsm6dso32.EqY {
		t.Errorf("reserved x orientation decoded as %s, %v", got, err)
	}
}
