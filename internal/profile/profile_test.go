// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package profile

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32/lsm6dso32test"
)

func TestCaptureApplyRoundTrip(t *testing.T) {
	src := lsm6dso32test.New()
	src.Set(lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL, 0x48)
	src.Set(lsm6dso32.UserBank, lsm6dso32.RegCtrl3C, 0x45) // SW_RESET still set
	src.Set(lsm6dso32.EmbeddedFuncBank, lsm6dso32.RegEmbFuncEnA, 0x18)
	src.Set(lsm6dso32.SensorHubBank, lsm6dso32.RegSlv0Add, 0x3D)
	src.Page[lsm6dso32.PagePedoDebStepsConf] = 0x0A

	p, err := Capture(Dev(lsm6dso32.New(src, nil)))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "name: CTRL1_XL") {
		t.Errorf("encoded profile lacks CTRL1_XL:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "FUNC_CFG_ACCESS") {
		t.Error("bank selection register captured")
	}

	q, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	dst := lsm6dso32test.New()
	n, err := q.Apply(Dev(lsm6dso32.New(dst, nil)))
	if err != nil {
		t.Fatal(err)
	}
	if n != len(q.Pages)+len(q.Registers) {
		t.Errorf("Apply wrote %d, want %d", n, len(q.Pages)+len(q.Registers))
	}
	checks := []struct {
		bank lsm6dso32.Bank
		reg  uint8
		want uint8
	}{
		{lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL, 0x48},
		{lsm6dso32.UserBank, lsm6dso32.RegCtrl3C, 0x44},
		{lsm6dso32.EmbeddedFuncBank, lsm6dso32.RegEmbFuncEnA, 0x18},
		{lsm6dso32.SensorHubBank, lsm6dso32.RegSlv0Add, 0x3D},
	}
	for _, c := range checks {
		if got := dst.Get(c.bank, c.reg); got != c.want {
			t.Errorf("%s 0x%02X = 0x%02X, want 0x%02X", c.bank, c.reg, got, c.want)
		}
	}
	if dst.Page[lsm6dso32.PagePedoDebStepsConf] != 0x0A {
		t.Errorf("PEDO_DEB_STEPS_CONF = 0x%02X", dst.Page[lsm6dso32.PagePedoDebStepsConf])
	}
	if b := dst.Get(lsm6dso32.UserBank, lsm6dso32.RegFuncCfgAccess); b != 0 {
		t.Errorf("left in bank 0x%02X", b)
	}
	if w := dst.Writes(lsm6dso32.UserBank, lsm6dso32.RegCtrl3C); len(w) != 1 || w[0]&0x81 != 0 {
		t.Errorf("CTRL3_C writes = % X", w)
	}
}

func TestApplyRejectsBeforeWriting(t *testing.T) {
	tests := []struct {
		name string
		p    Profile
		want error
	}{
		{"read-only", Profile{Version: Version, Registers: []Register{
			{Bank: "user", Addr: "0x10", Value: "0x40"},
			{Bank: "user", Addr: "0x0F", Value: "0x00"},
		}}, ErrNotWritable},
		{"bank select", Profile{Version: Version, Registers: []Register{
			{Bank: "user", Addr: "0x01", Value: "0x80"},
		}}, ErrNotWritable},
		{"bad bank", Profile{Version: Version, Registers: []Register{
			{Bank: "main", Addr: "0x10", Value: "0x40"},
		}}, lsm6dso32.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rf := lsm6dso32test.New()
			n, err := tt.p.Apply(Dev(lsm6dso32.New(rf, nil)))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Apply() = %v, want %v", err, tt.want)
			}
			if n != 0 || len(rf.Ops) != 0 {
				t.Errorf("%d writes, %d bus ops before rejection", n, len(rf.Ops))
			}
		})
	}
}

func TestApplyStopsOnBusError(t *testing.T) {
	p := Profile{Version: Version, Registers: []Register{
		{Bank: "user", Addr: "0x10", Value: "0x40"},
	}}
	rf := lsm6dso32test.New()
	rf.Err = errors.New("nack")
	n, err := p.Apply(Dev(lsm6dso32.New(rf, nil)))
	var be *lsm6dso32.BusError
	if !errors.As(err, &be) || n != 0 {
		t.Errorf("Apply() = %d, %v", n, err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name, doc string
	}{
		{"version", "version: 2\nregisters: []\n"},
		{"value", "version: 1\nregisters:\n  - {bank: user, addr: \"0x10\", value: \"0x1FF\"}\n"},
		{"page", "version: 1\npages:\n  - {addr: \"0x183\"}\nregisters: []\n"},
		{"yaml", "version: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.doc)); err == nil {
				t.Error("Decode() succeeded")
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	p := &Profile{Version: Version, Device: "LSM6DSO32", Registers: []Register{
		{Bank: "embedded", Addr: "0x04", Name: "EMB_FUNC_EN_A", Value: "0x08"},
	}}
	path := filepath.Join(t.TempDir(), "imu.yaml")
	if err := p.Save(path); err != nil {
		t.Fatal(err)
	}
	q, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Registers) != 1 || q.Registers[0] != p.Registers[0] {
		t.Errorf("Load() = %+v", q.Registers)
	}
}
