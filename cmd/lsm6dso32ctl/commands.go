// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"github.com/relabs-tech/lsm6dso32/internal/profile"
	"github.com/relabs-tech/lsm6dso32/internal/sensors"
)

const maxCount = 256

func runID(w io.Writer, d *lsm6dso32.Dev) error {
	id, err := d.DeviceID()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "WHO_AM_I = 0x%02X (%s)\n", id, d)
	return nil
}

func runRegs(w io.Writer, bankName string) error {
	bank, err := lsm6dso32.ParseBank(bankName)
	if err != nil {
		return err
	}
	for _, r := range sensors.RegisterMap(bank) {
		fmt.Fprintf(w, "%s  %-24s %-2s  %s\n", r.Address, r.Name, r.Access, r.Description)
	}
	return nil
}

// parseReg accepts an address ("0x10", "16") or a register name of bank.
func parseReg(bank lsm6dso32.Bank, s string) (sensors.RegisterInfo, error) {
	if v, err := strconv.ParseUint(s, 0, 8); err == nil {
		if info, ok := sensors.LookupRegister(bank, byte(v)); ok {
			return info, nil
		}
		return sensors.RegisterInfo{Addr: byte(v), Address: fmt.Sprintf("0x%02X", v)}, nil
	}
	if info, ok := sensors.LookupRegisterByName(bank, strings.ToUpper(s)); ok {
		return info, nil
	}
	return sensors.RegisterInfo{}, fmt.Errorf("%w: no register %q in the %s bank", lsm6dso32.ErrInvalidArgument, s, bank)
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > maxCount {
		return 0, fmt.Errorf("%w: count %q (want 1..%d)", lsm6dso32.ErrInvalidArgument, s, maxCount)
	}
	return n, nil
}

func runRead(w io.Writer, d *lsm6dso32.Dev, args []string) error {
	bank, err := lsm6dso32.ParseBank(args[0])
	if err != nil {
		return err
	}
	info, err := parseReg(bank, args[1])
	if err != nil {
		return err
	}
	n := 1
	if len(args) == 3 {
		if n, err = parseCount(args[2]); err != nil {
			return err
		}
	}
	if int(info.Addr)+n > 256 {
		return fmt.Errorf("%w: read past 0xFF", lsm6dso32.ErrInvalidArgument)
	}
	buf := make([]byte, n)
	if err := d.ReadBankRegs(bank, info.Addr, buf); err != nil {
		return err
	}
	for i, b := range buf {
		addr := info.Addr + byte(i)
		name := ""
		if r, ok := sensors.LookupRegister(bank, addr); ok {
			name = r.Name
		}
		fmt.Fprintf(w, "0x%02X  %-24s 0x%02X  %08b\n", addr, name, b, b)
	}
	return nil
}

func runWrite(w io.Writer, d *lsm6dso32.Dev, args []string) error {
	bank, err := lsm6dso32.ParseBank(args[0])
	if err != nil {
		return err
	}
	info, err := parseReg(bank, args[1])
	if err != nil {
		return err
	}
	v, err := strconv.ParseUint(args[2], 0, 8)
	if err != nil {
		return fmt.Errorf("%w: value %q", lsm6dso32.ErrInvalidArgument, args[2])
	}
	if info.Name == "" || !strings.Contains(info.Access, "W") {
		return fmt.Errorf("%s register %s: %w", bank, info.Address, profile.ErrNotWritable)
	}
	if err := d.WriteBankRegs(bank, info.Addr, []byte{byte(v)}); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s (%s) = 0x%02X\n", bank, info.Name, info.Address, v)
	return nil
}

func parsePageAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 12)
	if err != nil {
		return 0, fmt.Errorf("%w: page address %q", lsm6dso32.ErrInvalidArgument, s)
	}
	return uint16(v), nil
}

func runPageRead(w io.Writer, d *lsm6dso32.Dev, args []string) error {
	addr, err := parsePageAddr(args[0])
	if err != nil {
		return err
	}
	n := 1
	if len(args) == 2 {
		if n, err = parseCount(args[1]); err != nil {
			return err
		}
	}
	buf := make([]byte, n)
	if err := d.PageRead(addr, buf); err != nil {
		return err
	}
	for i := 0; i < len(buf); i += 16 {
		end := min(i+16, len(buf))
		fmt.Fprintf(w, "0x%03X  % X\n", int(addr)+i, buf[i:end])
	}
	return nil
}

func runPageWrite(w io.Writer, d *lsm6dso32.Dev, args []string) error {
	addr, err := parsePageAddr(args[0])
	if err != nil {
		return err
	}
	buf := make([]byte, 0, len(args)-1)
	for _, s := range args[1:] {
		v, err := strconv.ParseUint(s, 0, 8)
		if err != nil {
			return fmt.Errorf("%w: byte %q", lsm6dso32.ErrInvalidArgument, s)
		}
		buf = append(buf, byte(v))
	}
	if err := d.PageWrite(addr, buf); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %d bytes at 0x%03X\n", len(buf), addr)
	return nil
}

func runDump(w io.Writer, d *lsm6dso32.Dev, out string) error {
	p, err := profile.Capture(profile.Dev(d))
	if err != nil {
		return err
	}
	if out == "" {
		return p.Encode(w)
	}
	if err := p.Save(out); err != nil {
		return err
	}
	fmt.Fprintf(w, "saved %d pages and %d registers to %s\n", len(p.Pages), len(p.Registers), out)
	return nil
}

func runApply(w io.Writer, d *lsm6dso32.Dev, path string) error {
	p, err := profile.Load(path)
	if err != nil {
		return err
	}
	n, err := p.Apply(profile.Dev(d))
	if err != nil {
		return fmt.Errorf("stopped after %d writes: %w", n, err)
	}
	fmt.Fprintf(w, "applied %d writes from %s\n", n, path)
	return nil
}

func runUCF(w io.Writer, d *lsm6dso32.Dev, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	st, err := d.ApplyUCF(f)
	if err != nil {
		return fmt.Errorf("%s: %d writes before failure: %w", path, st.Writes, err)
	}
	fmt.Fprintf(w, "%s: %d writes, %d waits\n", path, st.Writes, st.Waits)
	return nil
}

func runGet(w io.Writer, d *lsm6dso32.Dev) error {
	xlFS, err := d.GetXLFullScale()
	if err != nil {
		return err
	}
	xlODR, err := d.GetXLDataRate()
	if err != nil {
		return err
	}
	gyFS, err := d.GetGYFullScale()
	if err != nil {
		return err
	}
	gyODR, err := d.GetGYDataRate()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "accel: ±%s @ %s\n", xlFS, xlODR)
	fmt.Fprintf(w, "gyro:  ±%s @ %s\n", gyFS, gyODR)
	return nil
}

type settings struct {
	xlFS, xlODR, gyFS, gyODR string
}

var errNothingToSet = errors.New("nothing to set, pass --xl-fs, --xl-odr, --gy-fs or --gy-odr")

// runSet parses every flag before touching the device. Ranges go before
// data rates.
func runSet(w io.Writer, d *lsm6dso32.Dev, s settings) error {
	if s == (settings{}) {
		return errNothingToSet
	}
	var steps []func() error
	if s.xlFS != "" {
		v, err := lsm6dso32.ParseXLFullScale(s.xlFS)
		if err != nil {
			return err
		}
		steps = append(steps, func() error { return d.SetXLFullScale(v) })
	}
	if s.gyFS != "" {
		v, err := lsm6dso32.ParseGYFullScale(s.gyFS)
		if err != nil {
			return err
		}
		steps = append(steps, func() error { return d.SetGYFullScale(v) })
	}
	if s.xlODR != "" {
		v, err := lsm6dso32.ParseXLDataRate(s.xlODR)
		if err != nil {
			return err
		}
		steps = append(steps, func() error { return d.SetXLDataRate(v) })
	}
	if s.gyODR != "" {
		v, err := lsm6dso32.ParseGYDataRate(s.gyODR)
		if err != nil {
			return err
		}
		steps = append(steps, func() error { return d.SetGYDataRate(v) })
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return runGet(w, d)
}

func runReset(w io.Writer, d *lsm6dso32.Dev) error {
	if err := d.Init(); err != nil {
		return err
	}
	fmt.Fprintln(w, "reset done")
	return nil
}
