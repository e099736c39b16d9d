// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package profile captures the writable LSM6DSO32 configuration into a YAML
// document and replays it onto a device.
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"github.com/relabs-tech/lsm6dso32/internal/sensors"
	"gopkg.in/yaml.v3"
)

// Version is the document version written by Capture.
const Version = 1

// Accessor is the register and page access a profile needs.
// *sensors.IMUManager implements it; Dev adapts a bare driver.
type Accessor interface {
	ReadRegister(bank lsm6dso32.Bank, addr byte) (byte, error)
	WriteRegister(bank lsm6dso32.Bank, addr, value byte) error
	ReadPage(addr uint16, n int) ([]byte, error)
	WritePage(addr uint16, buf []byte) error
}

// Register is one captured register value.
type Register struct {
	Bank  string `yaml:"bank"`
	Addr  string `yaml:"addr"`
	Name  string `yaml:"name,omitempty"`
	Value string `yaml:"value"`
}

// Page is a run of advanced-features memory.
type Page struct {
	Addr   string   `yaml:"addr"`
	Name   string   `yaml:"name,omitempty"`
	Values []string `yaml:"values"`
}

// Profile is the YAML document.
type Profile struct {
	Version   int        `yaml:"version"`
	Device    string     `yaml:"device"`
	Created   string     `yaml:"created,omitempty"`
	Pages     []Page     `yaml:"pages,omitempty"`
	Registers []Register `yaml:"registers"`
}

// Registers that select banks or pages, trigger one-shot actions or only
// make sense mid-sequence are never captured.
var skipped = map[string]bool{
	"FUNC_CFG_ACCESS":        true,
	"PAGE_SEL":               true,
	"PAGE_ADDRESS":           true,
	"PAGE_VALUE":             true,
	"EMB_FUNC_SRC":           true,
	"EMB_FUNC_INIT_A":        true,
	"EMB_FUNC_INIT_B":        true,
	"FSM_LONG_COUNTER_CLEAR": true,
}

// Self-clearing command bits are masked out of captured values.
var commandBits = map[string]byte{
	"CTRL3_C":          0x81, // BOOT, SW_RESET
	"COUNTER_BDR_REG1": 0x40, // RST_COUNTER_BDR
	"PAGE_RW":          0x60, // PAGE_READ, PAGE_WRITE
	"MASTER_CONFIG":    0x80, // RST_MASTER_REGS
}

// Capture order: the embedded functions and the sensor hub are configured
// before the user bank enables the sensors.
var captureBanks = []lsm6dso32.Bank{
	lsm6dso32.EmbeddedFuncBank,
	lsm6dso32.SensorHubBank,
	lsm6dso32.UserBank,
}

type pageSpan struct {
	name string
	addr uint16
	n    int
}

var capturedPages = []pageSpan{
	{"MAG_SENSITIVITY", lsm6dso32.PageMagSensitivityL, 2},
	{"MAG_OFFSET", lsm6dso32.PageMagOffXL, 6},
	{"MAG_SI", lsm6dso32.PageMagSiXXL, 12},
	{"MAG_CFG", lsm6dso32.PageMagCfgA, 2},
	{"FSM_LC_TIMEOUT", lsm6dso32.PageFSMLCTimeoutL, 2},
	{"FSM_PROGRAMS", lsm6dso32.PageFSMPrograms, 1},
	{"FSM_START_ADD", lsm6dso32.PageFSMStartAddL, 2},
	{"PEDO_CMD_REG", lsm6dso32.PagePedoCmdReg, 1},
	{"PEDO_DEB_STEPS_CONF", lsm6dso32.PagePedoDebStepsConf, 1},
	{"PEDO_SC_DELTAT", lsm6dso32.PagePedoSCDeltaTL, 2},
}

// Capture reads every writable register and the known page settings.
func Capture(a Accessor) (*Profile, error) {
	p := &Profile{
		Version: Version,
		Device:  "LSM6DSO32",
		Created: time.Now().Format(time.RFC3339),
	}
	for _, s := range capturedPages {
		buf, err := a.ReadPage(s.addr, s.n)
		if err != nil {
			return nil, fmt.Errorf("profile: page %s: %w", s.name, err)
		}
		pg := Page{Addr: fmt.Sprintf("0x%03X", s.addr), Name: s.name}
		for _, b := range buf {
			pg.Values = append(pg.Values, hexByte(b))
		}
		p.Pages = append(p.Pages, pg)
	}
	for _, bank := range captureBanks {
		for _, r := range sensors.RegisterMap(bank) {
			if r.Access != "RW" || skipped[r.Name] {
				continue
			}
			v, err := a.ReadRegister(bank, r.Addr)
			if err != nil {
				return nil, fmt.Errorf("profile: %s %s: %w", bank, r.Name, err)
			}
			p.Registers = append(p.Registers, Register{
				Bank:  bank.String(),
				Addr:  r.Address,
				Name:  r.Name,
				Value: hexByte(v &^ commandBits[r.Name]),
			})
		}
	}
	return p, nil
}

// ErrNotWritable is returned by Validate for registers outside the
// writable map.
var ErrNotWritable = errors.New("register not writable")

type write struct {
	bank  lsm6dso32.Bank
	addr  byte
	value byte
	name  string
}

type pageWrite struct {
	addr uint16
	buf  []byte
	name string
}

// Validate parses every entry without touching a device.
func (p *Profile) Validate() error {
	_, _, err := p.plan()
	return err
}

func (p *Profile) plan() ([]pageWrite, []write, error) {
	if p.Version != Version {
		return nil, nil, fmt.Errorf("profile: unsupported version %d", p.Version)
	}
	pages := make([]pageWrite, 0, len(p.Pages))
	for i, pg := range p.Pages {
		addr, err := strconv.ParseUint(pg.Addr, 0, 12)
		if err != nil {
			return nil, nil, fmt.Errorf("profile: page %d addr %q: %w", i, pg.Addr, err)
		}
		if len(pg.Values) == 0 {
			return nil, nil, fmt.Errorf("profile: page %d (%s) has no values", i, pg.Addr)
		}
		pw := pageWrite{addr: uint16(addr), name: pg.Name}
		for _, s := range pg.Values {
			v, err := strconv.ParseUint(s, 0, 8)
			if err != nil {
				return nil, nil, fmt.Errorf("profile: page %s value %q: %w", pg.Addr, s, err)
			}
			pw.buf = append(pw.buf, byte(v))
		}
		pages = append(pages, pw)
	}

	writes := make([]write, 0, len(p.Registers))
	for i, r := range p.Registers {
		bank, err := lsm6dso32.ParseBank(r.Bank)
		if err != nil {
			return nil, nil, fmt.Errorf("profile: register %d: %w", i, err)
		}
		addr, err := strconv.ParseUint(r.Addr, 0, 8)
		if err != nil {
			return nil, nil, fmt.Errorf("profile: register %d addr %q: %w", i, r.Addr, err)
		}
		val, err := strconv.ParseUint(r.Value, 0, 8)
		if err != nil {
			return nil, nil, fmt.Errorf("profile: register %d value %q: %w", i, r.Value, err)
		}
		info, ok := sensors.LookupRegister(bank, byte(addr))
		if !ok || info.Access != "RW" || skipped[info.Name] {
			return nil, nil, fmt.Errorf("profile: %s 0x%02X: %w", bank, addr, ErrNotWritable)
		}
		writes = append(writes, write{bank: bank, addr: byte(addr), value: byte(val) &^ commandBits[info.Name], name: info.Name})
	}
	return pages, writes, nil
}

// Apply validates the whole profile, then writes the pages followed by the
// registers in document order. It stops at the first failure and returns
// how many writes completed.
func (p *Profile) Apply(a Accessor) (int, error) {
	pages, writes, err := p.plan()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, pw := range pages {
		if err := a.WritePage(pw.addr, pw.buf); err != nil {
			return n, fmt.Errorf("profile: page %s: %w", pw.name, err)
		}
		n++
	}
	for _, w := range writes {
		if err := a.WriteRegister(w.bank, w.addr, w.value); err != nil {
			return n, fmt.Errorf("profile: %s %s: %w", w.bank, w.name, err)
		}
		n++
	}
	return n, nil
}

// Encode writes p as YAML.
func (p *Profile) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}

// Decode reads a YAML profile.
func Decode(r io.Reader) (*Profile, error) {
	var p Profile
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads a profile file.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Save writes p to path.
func (p *Profile) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := p.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func hexByte(b byte) string { return fmt.Sprintf("0x%02X", b) }

// Dev adapts a driver handle to Accessor.
func Dev(d *lsm6dso32.Dev) Accessor { return devAccessor{d} }

type devAccessor struct{ d *lsm6dso32.Dev }

func (a devAccessor) ReadRegister(bank lsm6dso32.Bank, addr byte) (byte, error) {
	var b [1]byte
	err := a.d.ReadBankRegs(bank, addr, b[:])
	return b[0], err
}

func (a devAccessor) WriteRegister(bank lsm6dso32.Bank, addr, value byte) error {
	return a.d.WriteBankRegs(bank, addr, []byte{value})
}

func (a devAccessor) ReadPage(addr uint16, n int) ([]byte, error) {
	buf := make([]byte, n)
	return buf, a.d.PageRead(addr, buf)
}

func (a devAccessor) WritePage(addr uint16, buf []byte) error {
	return a.d.PageWrite(addr, buf)
}
