// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32/lsm6dso32test"
	"github.com/relabs-tech/lsm6dso32/internal/profile"
)

type nopCloser struct{ closed *bool }

func (c nopCloser) Close() error {
	*c.closed = true
	return nil
}

// execute runs the root command against rf and returns its output.
func execute(t *testing.T, rf *lsm6dso32test.RegFile, args ...string) (string, error) {
	t.Helper()
	closed := false
	saved := openDevice
	openDevice = func(string) (*lsm6dso32.Dev, io.Closer, error) {
		return lsm6dso32.New(rf, nil), nopCloser{&closed}, nil
	}
	t.Cleanup(func() { openDevice = saved })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if !closed && len(args) > 0 && args[0] != "regs" && err == nil {
		t.Errorf("%v: device left open", args)
	}
	return out.String(), err
}

func TestID(t *testing.T) {
	out, err := execute(t, lsm6dso32test.New(), "id")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "WHO_AM_I = 0x6C") {
		t.Errorf("output = %q", out)
	}
}

func TestOpenError(t *testing.T) {
	saved := openDevice
	defer func() { openDevice = saved }()
	openDevice = func(string) (*lsm6dso32.Dev, io.Closer, error) {
		return nil, nil, errors.New("no bus")
	}
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"id"})
	if err := cmd.Execute(); err == nil || err.Error() != "no bus" {
		t.Errorf("err = %v", err)
	}
}

func TestRegs(t *testing.T) {
	out, err := execute(t, lsm6dso32test.New(), "regs", "user")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "WHO_AM_I") || !strings.Contains(out, "CTRL1_XL") {
		t.Errorf("output = %q", out)
	}
	if _, err := execute(t, lsm6dso32test.New(), "regs", "flash"); !errors.Is(err, lsm6dso32.ErrInvalidArgument) {
		t.Errorf("unknown bank err = %v", err)
	}
}

func TestRead(t *testing.T) {
	rf := lsm6dso32test.New()
	rf.Set(lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL, 0x48)

	tests := []struct {
		name  string
		args  []string
		want  []string
		lines int
	}{
		{"by name", []string{"read", "user", "ctrl1_xl"}, []string{"0x10", "CTRL1_XL", "0x48", "01001000"}, 1},
		{"by address", []string{"read", "user", "0x0F"}, []string{"WHO_AM_I", "0x6C"}, 1},
		{"burst", []string{"read", "user", "0x10", "3"}, []string{"CTRL1_XL", "CTRL3_C"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, rf, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q lacks %q", out, w)
				}
			}
			if n := strings.Count(out, "\n"); n != tt.lines {
				t.Errorf("%d lines, want %d", n, tt.lines)
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad bank", []string{"read", "rom", "0x10"}},
		{"bad name", []string{"read", "user", "CTRL99"}},
		{"zero count", []string{"read", "user", "0x10", "0"}},
		{"past end", []string{"read", "user", "0xF0", "32"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, lsm6dso32test.New(), tt.args...); !errors.Is(err, lsm6dso32.ErrInvalidArgument) {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	rf := lsm6dso32test.New()
	out, err := execute(t, rf, "write", "user", "CTRL1_XL", "0x48")
	if err != nil {
		t.Fatal(err)
	}
	if got := rf.Get(lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL); got != 0x48 {
		t.Errorf("CTRL1_XL = 0x%02X", got)
	}
	if !strings.Contains(out, "CTRL1_XL (0x10) = 0x48") {
		t.Errorf("output = %q", out)
	}

	rf.Reset()
	if _, err := execute(t, rf, "write", "user", "WHO_AM_I", "0x00"); !errors.Is(err, profile.ErrNotWritable) {
		t.Errorf("read-only err = %v", err)
	}
	if _, err := execute(t, rf, "write", "user", "0x00", "0x00"); !errors.Is(err, profile.ErrNotWritable) {
		t.Errorf("unmapped err = %v", err)
	}
	if len(rf.Ops) != 0 {
		t.Errorf("refused writes reached the bus: %v", rf.Ops)
	}
}

func TestPages(t *testing.T) {
	rf := lsm6dso32test.New()
	if _, err := execute(t, rf, "page-write", "0x183", "0x0A", "0x0B"); err != nil {
		t.Fatal(err)
	}
	if rf.Page[0x183] != 0x0A || rf.Page[0x184] != 0x0B {
		t.Errorf("page = % X", rf.Page[0x183:0x185])
	}
	out, err := execute(t, rf, "page-read", "0x183", "2")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "0x183  0A 0B" {
		t.Errorf("output = %q", out)
	}
	if _, err := execute(t, rf, "page-read", "0x1000"); !errors.Is(err, lsm6dso32.ErrInvalidArgument) {
		t.Errorf("13-bit address err = %v", err)
	}
}

func TestSetAndGet(t *testing.T) {
	rf := lsm6dso32test.New()
	if _, err := execute(t, rf, "set"); !errors.Is(err, errNothingToSet) {
		t.Errorf("empty set err = %v", err)
	}
	if _, err := execute(t, rf, "set", "--xl-fs", "8g", "--gy-odr", "fast"); !errors.Is(err, lsm6dso32.ErrInvalidArgument) {
		t.Errorf("bad rate err = %v", err)
	}
	if got := rf.Writes(lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL); len(got) != 0 {
		t.Errorf("partial set wrote CTRL1_XL: % X", got)
	}

	out, err := execute(t, rf, "set", "--xl-fs", "8g", "--xl-odr", "104Hz-hp", "--gy-fs", "2000dps")
	if err != nil {
		t.Fatal(err)
	}
	if got := rf.Get(lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL); got != 0x48 {
		t.Errorf("CTRL1_XL = 0x%02X", got)
	}
	if !strings.Contains(out, "accel: ±8g @ 104Hz-hp") || !strings.Contains(out, "gyro:  ±2000dps @ off") {
		t.Errorf("output = %q", out)
	}

	out, err = execute(t, rf, "get")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "±8g @ 104Hz-hp") {
		t.Errorf("get = %q", out)
	}
}

func TestDumpAndApply(t *testing.T) {
	src := lsm6dso32test.New()
	src.Set(lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL, 0x48)
	path := filepath.Join(t.TempDir(), "imu.yaml")
	out, err := execute(t, src, "dump", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "saved") {
		t.Errorf("dump = %q", out)
	}

	dst := lsm6dso32test.New()
	out, err = execute(t, dst, "apply", path)
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.Get(lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL); got != 0x48 {
		t.Errorf("CTRL1_XL after apply = 0x%02X", got)
	}
	if !strings.HasPrefix(out, "applied ") {
		t.Errorf("apply = %q", out)
	}

	out, err = execute(t, src, "dump")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "registers:") {
		t.Errorf("dump to stdout = %q", out)
	}
}

func TestUCF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.ucf")
	ucf := "-- accel on\nAc 10 48\nWAIT 1\nAc 11 4C\n"
	if err := os.WriteFile(path, []byte(ucf), 0o644); err != nil {
		t.Fatal(err)
	}
	rf := lsm6dso32test.New()
	out, err := execute(t, rf, "ucf", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "2 writes, 1 waits") {
		t.Errorf("output = %q", out)
	}
	if rf.Get(lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL) != 0x48 || rf.Get(lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL+1) != 0x4C {
		t.Error("ucf writes missing")
	}

	bad := filepath.Join(t.TempDir(), "bad.ucf")
	if err := os.WriteFile(bad, []byte("Ac 10 48\nPOKE 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, rf, "ucf", bad); err == nil || !strings.Contains(err.Error(), "1 writes before failure") {
		t.Errorf("bad ucf err = %v", err)
	}
}

func TestReset(t *testing.T) {
	rf := lsm6dso32test.New()
	if _, err := execute(t, rf, "reset"); err != nil {
		t.Fatal(err)
	}
	writes := rf.Writes(lsm6dso32.UserBank, lsm6dso32.RegCtrl3C)
	if len(writes) == 0 || writes[0]&0x01 == 0 {
		t.Errorf("CTRL3_C writes = % X", writes)
	}
}
