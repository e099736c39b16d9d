// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package lsm6dso32test provides an in-memory LSM6DSO32 for tests of code
// built on the driver.
package lsm6dso32test

import (
	"errors"
	"fmt"
	"sync"

	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
)

const (
	pageModeRead  = 0x01
	pageModeWrite = 0x02
	pageSize      = 0x1000
)

// IO is one byte moved over the bus.
type IO struct {
	Write bool
	Bank  lsm6dso32.Bank
	Reg   uint8
	Val   uint8
}

// RegFile implements lsm6dso32.Bus on top of three register banks and the
// paged memory. Bank selection, paged access and the self-clearing reset
// bits behave like the device. It is safe for concurrent use.
type RegFile struct {
	mu sync.Mutex

	Banks [3][256]byte
	Page  [pageSize]byte
	Ops   []IO

	// ReadTx and WriteTx count transactions, not bytes.
	ReadTx  int
	WriteTx int

	// Err, when set, fails every transaction.
	Err error

	// Fail, when set, is consulted before each transaction with op "read"
	// or "write", the selected bank and the first register.
	Fail func(op string, bank lsm6dso32.Bank, reg uint8) error
}

// ErrInjected is returned by the failures FailOn arranges.
var ErrInjected = errors.New("injected bus failure")

// FailOn returns a Fail hook that fails the n-th (1-based) transaction
// matching op and reg, in any bank.
func FailOn(op string, reg uint8, n int) func(string, lsm6dso32.Bank, uint8) error {
	seen := 0
	return func(o string, _ lsm6dso32.Bank, r uint8) error {
		if o != op || r != reg {
			return nil
		}
		seen++
		if seen == n {
			return fmt.Errorf("%s 0x%02X: %w", o, r, ErrInjected)
		}
		return nil
	}
}

// New returns a RegFile that answers WHO_AM_I.
func New() *RegFile {
	r := &RegFile{}
	r.Banks[lsm6dso32.UserBank][lsm6dso32.RegWhoAmI] = lsm6dso32.DeviceID
	return r
}

// Set stores v in reg of bank without logging it.
func (r *RegFile) Set(bank lsm6dso32.Bank, reg, v uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Banks[bank][reg] = v
}

// Get returns reg of bank without logging it.
func (r *RegFile) Get(bank lsm6dso32.Bank, reg uint8) uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Banks[bank][reg]
}

// Writes returns the values written to reg of bank, oldest first.
func (r *RegFile) Writes(bank lsm6dso32.Bank, reg uint8) []uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []uint8
	for _, op := range r.Ops {
		if op.Write && op.Bank == bank && op.Reg == reg {
			out = append(out, op.Val)
		}
	}
	return out
}

// ReadsFrom counts the bytes read from reg of bank.
func (r *RegFile) ReadsFrom(bank lsm6dso32.Bank, reg uint8) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, op := range r.Ops {
		if !op.Write && op.Bank == bank && op.Reg == reg {
			n++
		}
	}
	return n
}

// Bank returns the bank FUNC_CFG_ACCESS currently selects.
func (r *RegFile) Bank() lsm6dso32.Bank {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bank()
}

// PageIdle reports whether PAGE_SEL points at page 0 and PAGE_RW has
// neither read nor write mode set.
func (r *RegFile) PageIdle() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Banks[lsm6dso32.EmbeddedFuncBank][lsm6dso32.RegPageSel]>>4 == 0 && r.pageMode() == 0
}

// Reset forgets the logged traffic and the transaction counts.
func (r *RegFile) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Ops = nil
	r.ReadTx, r.WriteTx = 0, 0
}

func (r *RegFile) check(op string, bank lsm6dso32.Bank, reg uint8) error {
	if r.Err != nil {
		return r.Err
	}
	if r.Fail != nil {
		return r.Fail(op, bank, reg)
	}
	return nil
}

func (r *RegFile) ReadRegs(reg uint8, buf []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bank := r.bank()
	if err := r.check("read", bank, reg); err != nil {
		return err
	}
	r.ReadTx++
	for i := range buf {
		a := reg + uint8(i)
		var v uint8
		switch {
		case a == lsm6dso32.RegFuncCfgAccess:
			v = r.Banks[lsm6dso32.UserBank][a]
		case bank == lsm6dso32.EmbeddedFuncBank && a == lsm6dso32.RegPageValue && r.pageMode() == pageModeRead:
			v = r.Page[r.pageIndex()]
		default:
			v = r.Banks[bank][a]
		}
		buf[i] = v
		r.Ops = append(r.Ops, IO{Bank: bank, Reg: a, Val: v})
	}
	return nil
}

func (r *RegFile) WriteRegs(reg uint8, buf []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bank := r.bank()
	if err := r.check("write", bank, reg); err != nil {
		return err
	}
	r.WriteTx++
	for i, v := range buf {
		a := reg + uint8(i)
		r.Ops = append(r.Ops, IO{Write: true, Bank: bank, Reg: a, Val: v})
		switch {
		case a == lsm6dso32.RegFuncCfgAccess:
			r.Banks[lsm6dso32.UserBank][a] = v
		case bank == lsm6dso32.EmbeddedFuncBank && a == lsm6dso32.RegPageValue && r.pageMode() == pageModeWrite:
			r.Page[r.pageIndex()] = v
			r.Banks[lsm6dso32.EmbeddedFuncBank][lsm6dso32.RegPageAddress]++
		case bank == lsm6dso32.UserBank && a == lsm6dso32.RegCtrl3C:
			r.Banks[bank][a] = v &^ 0x81
		default:
			r.Banks[bank][a] = v
		}
	}
	return nil
}

func (r *RegFile) String() string { return "lsm6dso32test" }

func (r *RegFile) bank() lsm6dso32.Bank {
	b := lsm6dso32.Bank(r.Banks[lsm6dso32.UserBank][lsm6dso32.RegFuncCfgAccess] >> 6)
	if b > lsm6dso32.EmbeddedFuncBank {
		return lsm6dso32.UserBank
	}
	return b
}

func (r *RegFile) pageIndex() uint16 {
	emb := &r.Banks[lsm6dso32.EmbeddedFuncBank]
	return uint16(emb[lsm6dso32.RegPageSel]>>4)<<8 | uint16(emb[lsm6dso32.RegPageAddress])
}

func (r *RegFile) pageMode() uint8 {
	return (r.Banks[lsm6dso32.EmbeddedFuncBank][lsm6dso32.RegPageRW] >> 5) & 0x03
}
