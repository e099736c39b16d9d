// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned, before any bus traffic, for values that
// do not fit the addressed field.
var ErrInvalidArgument = errors.New("lsm6dso32: invalid argument")

// ErrWrongDevice is returned by Init when WHO_AM_I does not match.
var ErrWrongDevice = errors.New("lsm6dso32: unexpected device id")

// BusError reports a failed bus transaction.
type BusError struct {
	Op  string // "read" or "write"
	Reg uint8
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("lsm6dso32: %s reg 0x%02X: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error { return e.Err }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
