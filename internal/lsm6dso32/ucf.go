// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// UCFStats summarises an applied configuration file.
type UCFStats struct {
	Writes int
	Waits  int
}

// ApplyUCF replays a Unico configuration file ("Ac <reg> <val>" writes in
// hex, "WAIT <ms>" delays, "--" comments). Bank and page switches are
// ordinary writes in the file, so the registers are written as-is.
// The user bank is selected again on return.
func (d *Dev) ApplyUCF(r io.Reader) (UCFStats, error) {
	var st UCFStats
	sc := bufio.NewScanner(r)
	line := 0
	err := func() error {
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if text == "" || strings.HasPrefix(text, "--") {
				continue
			}
			fields := strings.Fields(text)
			switch strings.ToUpper(fields[0]) {
			case "AC":
				if len(fields) != 3 {
					return fmt.Errorf("ucf line %d: want \"Ac <reg> <val>\"", line)
				}
				reg, err := strconv.ParseUint(fields[1], 16, 8)
				if err != nil {
					return fmt.Errorf("ucf line %d: register: %w", line, err)
				}
				val, err := strconv.ParseUint(fields[2], 16, 8)
				if err != nil {
					return fmt.Errorf("ucf line %d: value: %w", line, err)
				}
				if err := d.writeByte(uint8(reg), uint8(val)); err != nil {
					return err
				}
				st.Writes++
			case "WAIT":
				if len(fields) != 2 {
					return fmt.Errorf("ucf line %d: want \"WAIT <ms>\"", line)
				}
				ms, err := strconv.Atoi(fields[1])
				if err != nil || ms < 0 {
					return fmt.Errorf("ucf line %d: bad delay %q", line, fields[1])
				}
				time.Sleep(time.Duration(ms) * time.Millisecond)
				st.Waits++
			default:
				return fmt.Errorf("ucf line %d: unknown command %q", line, fields[0])
			}
		}
		return sc.Err()
	}()
	if st.Writes > 0 {
		if rerr := d.SetMemBank(UserBank); err == nil {
			err = rerr
		}
	}
	return st, err
}
