// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

var regAccess = field{RegFuncCfgAccess, 6, 2}

// SetMemBank selects the register bank. FUNC_CFG_ACCESS is reachable from
// every bank.
func (d *Dev) SetMemBank(b Bank) error {
	if err := bankTable.check(b); err != nil {
		return err
	}
	return d.writeField(regAccess, uint8(b))
}

// GetMemBank returns the selected bank.
func (d *Dev) GetMemBank() (Bank, error) {
	v, err := d.readField(regAccess)
	return decode(d, &bankTable, v), err
}

// withBank runs fn with bank selected. fn is skipped if the switch fails.
// The user bank restore is always attempted and the first error wins.
func (d *Dev) withBank(bank Bank, fn func() error) error {
	err := d.SetMemBank(bank)
	if err == nil {
		err = fn()
	}
	if rerr := d.SetMemBank(UserBank); err == nil {
		err = rerr
	}
	return err
}
