// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32_test

import (
	"errors"
	"testing"

	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32/lsm6dso32test"
)

func TestInit(t *testing.T) {
	rf := lsm6dso32test.New()
	d := lsm6dso32.New(rf, nil)
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	if c3 := rf.Banks[lsm6dso32.UserBank][lsm6dso32.RegCtrl3C]; c3 != 0x44 {
		t.Errorf("CTRL3_C = 0x%02X, want 0x44 (bdu|if_inc)", c3)
	}
	if w := rf.Writes(lsm6dso32.UserBank, lsm6dso32.RegCtrl3C); len(w) == 0 || w[0]&0x01 == 0 {
		t.Errorf("software reset not requested: % X", w)
	}
}

func TestInitWrongDevice(t *testing.T) {
	rf := lsm6dso32test.New()
	rf.Banks[lsm6dso32.UserBank][lsm6dso32.RegWhoAmI] = 0x6B
	d := lsm6dso32.New(rf, nil)
	if err := d.Init(); !errors.Is(err, lsm6dso32.ErrWrongDevice) {
		t.Fatalf("Init() = %v, want ErrWrongDevice", err)
	}
	if rf.WriteTx != 0 {
		t.Errorf("%d writes after id mismatch", rf.WriteTx)
	}
}

func TestAccelerationRawExtremes(t *testing.T) {
	rf := lsm6dso32test.New()
	copy(rf.Banks[lsm6dso32.UserBank][lsm6dso32.RegOutXLA:], []byte{0x00, 0x80, 0xFF, 0x7F, 0x01, 0x00})
	d := lsm6dso32.New(rf, nil)
	v, err := d.GetAccelerationRaw()
	if err != nil {
		t.Fatal(err)
	}
	if v != [3]int16{-32768, 32767, 1} {
		t.Errorf("GetAccelerationRaw() = %v", v)
	}
	if got, want := lsm6dso32.FromFs32ToMg(v[0]), float32(-32768)*float32(0.976); got != want {
		t.Errorf("FromFs32ToMg(-32768) = %v, want %v", got, want)
	}
	if got := lsm6dso32.XL32g.ToMg(v[0]); got != lsm6dso32.FromFs32ToMg(v[0]) {
		t.Errorf("XL32g.ToMg = %v", got)
	}
}

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"4g", lsm6dso32.FromFs4ToMg(1000), 122},
		{"8g", lsm6dso32.FromFs8ToMg(1000), 244},
		{"16g", lsm6dso32.FromFs16ToMg(1000), 488},
		{"125dps", lsm6dso32.FromFs125ToMdps(1000), 4375},
		{"250dps", lsm6dso32.FromFs250ToMdps(1000), 8750},
		{"500dps", lsm6dso32.FromFs500ToMdps(1000), 17500},
		{"1000dps", lsm6dso32.FromFs1000ToMdps(1000), 35000},
		{"2000dps", lsm6dso32.FromFs2000ToMdps(-1000), -70000},
		{"temp zero", lsm6dso32.FromLSBToCelsius(0), 25},
		{"temp", lsm6dso32.FromLSBToCelsius(512), 27},
		{"ns", lsm6dso32.FromLSBToNsec(4), 100000},
		{"gy range", lsm6dso32.GY2000dps.ToMdps(2), 140},
	}
	for _, tt := range tests {
		diff := tt.got - tt.want
		if diff < -0.01 || diff > 0.01 {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestXLDataRateComposite(t *testing.T) {
	rf := lsm6dso32test.New()
	rf.Banks[lsm6dso32.UserBank][lsm6dso32.RegCtrl1XL] = 0x4C // 104 Hz, 16 g
	d := lsm6dso32.New(rf, nil)
	if err := d.SetXLDataRate(lsm6dso32.XLODR52HzUltraLowPw); err != nil {
		t.Fatal(err)
	}
	ctrl1 := rf.Writes(lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL)
	if len(ctrl1) != 2 || ctrl1[0] != 0x0C || ctrl1[1] != 0x3C {
		t.Errorf("CTRL1_XL writes = % X, want 0C 3C", ctrl1)
	}
	if rf.Banks[lsm6dso32.UserBank][lsm6dso32.RegCtrl5C]&0x80 == 0 {
		t.Errorf("xl_ulp_en not set")
	}
	if rf.Banks[lsm6dso32.UserBank][lsm6dso32.RegCtrl6C]&0x10 == 0 {
		t.Errorf("xl_hm_mode not set")
	}
	got, err := d.GetXLDataRate()
	if err != nil || got != lsm6dso32.XLODR52HzUltraLowPw {
		t.Errorf("GetXLDataRate() = %s, %v", got, err)
	}
	fs, err := d.GetXLFullScale()
	if err != nil || fs != lsm6dso32.XL16g {
		t.Errorf("full scale changed to %s, %v", fs, err)
	}
}

func TestSetFailsFastAfterFirstRead(t *testing.T) {
	rf := lsm6dso32test.New()
	rf.Fail = lsm6dso32test.FailOn("read", lsm6dso32.RegCtrl1XL, 1)
	d := lsm6dso32.New(rf, nil)
	if err := d.SetXLDataRate(lsm6dso32.XLODR104HzHighPerf); !errors.Is(err, lsm6dso32test.ErrInjected) {
		t.Fatalf("SetXLDataRate() = %v, want injected failure", err)
	}
	if rf.WriteTx != 0 {
		t.Errorf("%d writes after failed first read", rf.WriteTx)
	}
}

func TestGYDataRateAndScale(t *testing.T) {
	rf := lsm6dso32test.New()
	d := lsm6dso32.New(rf, nil)
	if err := d.SetGYFullScale(lsm6dso32.GY125dps); err != nil {
		t.Fatal(err)
	}
	if err := d.SetGYDataRate(lsm6dso32.GYODR208HzNormal); err != nil {
		t.Fatal(err)
	}
	if c2 := rf.Banks[lsm6dso32.UserBank][lsm6dso32.RegCtrl2G]; c2 != 0x52 {
		t.Errorf("CTRL2_G = 0x%02X, want 0x52", c2)
	}
	if rf.Banks[lsm6dso32.UserBank][lsm6dso32.RegCtrl7G]&0x80 == 0 {
		t.Errorf("g_hm_mode not set")
	}
	rf.Banks[lsm6dso32.UserBank][lsm6dso32.RegCtrl2G] = 0x0A // fs_g = 5, reserved
	fs, err := d.GetGYFullScale()
	if err != nil || fs != lsm6dso32.GY250dps {
		t.Errorf("reserved fs_g decoded as %s, %v", fs, err)
	}
}

func TestReservedFIFOModeDefaultsToBypass(t *testing.T) {
	rf := lsm6dso32test.New()
	rf.Banks[lsm6dso32.UserBank][lsm6dso32.RegFIFOCtrl4] = 0x02
	hits := 0
	d := lsm6dso32.New(rf, &lsm6dso32.Opts{OnReservedValue: func(string, uint8) { hits++ }})
	m, err := d.GetFIFOMode()
	if err != nil {
		t.Fatalf("GetFIFOMode() error: %v", err)
	}
	if m != lsm6dso32.BypassMode {
		t.Errorf("GetFIFOMode() = %s, want bypass", m)
	}
	if hits != 1 {
		t.Errorf("reserved hook called %d times, want 1", hits)
	}
}

func TestInvalidEnumNoTraffic(t *testing.T) {
	rf := lsm6dso32test.New()
	d := lsm6dso32.New(rf, nil)
	checks := []error{
		d.SetFIFOMode(lsm6dso32.FIFOMode(2)),
		d.SetXLDataRate(lsm6dso32.XLDataRate(0x0F)),
		d.SetGYFullScale(lsm6dso32.GYFullScale(3)),
		d.SetWakeUpThreshold(0x40),
		d.SetFIFOWatermark(0x200),
		d.SetSHBatchSlave(4, true),
		d.SetSHSlaveCfgRead(-1, lsm6dso32.SHCfgRead{}),
	}
	for i, err := range checks {
		if !errors.Is(err, lsm6dso32.ErrInvalidArgument) {
			t.Errorf("check %d: got %v, want ErrInvalidArgument", i, err)
		}
	}
	if rf.ReadTx+rf.WriteTx != 0 {
		t.Errorf("bus traffic on invalid arguments: %d reads, %d writes", rf.ReadTx, rf.WriteTx)
	}
}

func TestParseNames(t *testing.T) {
	odr, err := lsm6dso32.ParseXLDataRate("104hz-HP")
	if err != nil || odr != lsm6dso32.XLODR104HzHighPerf {
		t.Errorf("ParseXLDataRate = %s, %v", odr, err)
	}
	if _, err := lsm6dso32.ParseGYFullScale("3000dps"); !errors.Is(err, lsm6dso32.ErrInvalidArgument) {
		t.Errorf("ParseGYFullScale(3000dps) = %v", err)
	}
	if s := lsm6dso32.FIFOMode(5).String(); s != "fifo_mode(0x05)" {
		t.Errorf("unnamed FIFOMode string = %q", s)
	}
}
