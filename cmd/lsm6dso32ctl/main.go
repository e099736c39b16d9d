// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// lsm6dso32ctl inspects and changes LSM6DSO32 registers, advanced-feature
// pages and register profiles from the command line.
package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/relabs-tech/lsm6dso32/internal/config"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"github.com/relabs-tech/lsm6dso32/internal/sensors"
)

var version = "dev"

// openDevice is replaced in tests.
var openDevice = func(configPath string) (*lsm6dso32.Dev, io.Closer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	return sensors.OpenDevice(cfg)
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "lsm6dso32ctl",
		Short: "LSM6DSO32 register tool",
		Long: `lsm6dso32ctl talks to an LSM6DSO32 on the bus named in the
configuration file. It reads and writes registers of the user, embedded
and sensor-hub banks, the advanced-features pages, register profiles
and ST .ucf programs.

Only "reset" and "set" change the device beyond what is asked; nothing
else resets or reconfigures it.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "./lsm6dso32_config.txt", "path to configuration file")

	// withDev opens the device for one command and closes it afterwards.
	withDev := func(fn func(cmd *cobra.Command, d *lsm6dso32.Dev, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			d, closer, err := openDevice(configPath)
			if err != nil {
				return err
			}
			defer closer.Close()
			return fn(cmd, d, args)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "id",
			Short: "Print WHO_AM_I",
			Args:  cobra.NoArgs,
			RunE: withDev(func(cmd *cobra.Command, d *lsm6dso32.Dev, _ []string) error {
				return runID(cmd.OutOrStdout(), d)
			}),
		},
		&cobra.Command{
			Use:   "regs <bank>",
			Short: "List the register map of a bank",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runRegs(cmd.OutOrStdout(), args[0])
			},
		},
		&cobra.Command{
			Use:   "read <bank> <reg> [count]",
			Short: "Read registers by address or name",
			Args:  cobra.RangeArgs(2, 3),
			RunE: withDev(func(cmd *cobra.Command, d *lsm6dso32.Dev, args []string) error {
				return runRead(cmd.OutOrStdout(), d, args)
			}),
		},
		&cobra.Command{
			Use:   "write <bank> <reg> <value>",
			Short: "Write one writable register",
			Args:  cobra.ExactArgs(3),
			RunE: withDev(func(cmd *cobra.Command, d *lsm6dso32.Dev, args []string) error {
				return runWrite(cmd.OutOrStdout(), d, args)
			}),
		},
		&cobra.Command{
			Use:   "page-read <addr> [count]",
			Short: "Read advanced-features page memory",
			Args:  cobra.RangeArgs(1, 2),
			RunE: withDev(func(cmd *cobra.Command, d *lsm6dso32.Dev, args []string) error {
				return runPageRead(cmd.OutOrStdout(), d, args)
			}),
		},
		&cobra.Command{
			Use:   "page-write <addr> <byte>...",
			Short: "Write advanced-features page memory",
			Args:  cobra.MinimumNArgs(2),
			RunE: withDev(func(cmd *cobra.Command, d *lsm6dso32.Dev, args []string) error {
				return runPageWrite(cmd.OutOrStdout(), d, args)
			}),
		},
		newDumpCmd(withDev),
		&cobra.Command{
			Use:   "apply <profile.yaml>",
			Short: "Write a register profile",
			Args:  cobra.ExactArgs(1),
			RunE: withDev(func(cmd *cobra.Command, d *lsm6dso32.Dev, args []string) error {
				return runApply(cmd.OutOrStdout(), d, args[0])
			}),
		},
		&cobra.Command{
			Use:   "ucf <file.ucf>",
			Short: "Load an ST Unico configuration (FSM/MLC program)",
			Args:  cobra.ExactArgs(1),
			RunE: withDev(func(cmd *cobra.Command, d *lsm6dso32.Dev, args []string) error {
				return runUCF(cmd.OutOrStdout(), d, args[0])
			}),
		},
		&cobra.Command{
			Use:   "get",
			Short: "Print accelerometer and gyroscope range and data rate",
			Args:  cobra.NoArgs,
			RunE: withDev(func(cmd *cobra.Command, d *lsm6dso32.Dev, _ []string) error {
				return runGet(cmd.OutOrStdout(), d)
			}),
		},
		newSetCmd(withDev),
		&cobra.Command{
			Use:   "reset",
			Short: "Software reset, then enable auto-increment and block data update",
			Args:  cobra.NoArgs,
			RunE: withDev(func(cmd *cobra.Command, d *lsm6dso32.Dev, _ []string) error {
				return runReset(cmd.OutOrStdout(), d)
			}),
		},
	)
	return root
}

type devRunE func(fn func(cmd *cobra.Command, d *lsm6dso32.Dev, args []string) error) func(*cobra.Command, []string) error

func newDumpCmd(withDev devRunE) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Capture the writable registers as a YAML profile",
		Args:  cobra.NoArgs,
		RunE: withDev(func(cmd *cobra.Command, d *lsm6dso32.Dev, _ []string) error {
			return runDump(cmd.OutOrStdout(), d, out)
		}),
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the profile to a file instead of stdout")
	return cmd
}

func newSetCmd(withDev devRunE) *cobra.Command {
	var s settings
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change accelerometer and gyroscope range and data rate",
		Args:  cobra.NoArgs,
		RunE: withDev(func(cmd *cobra.Command, d *lsm6dso32.Dev, _ []string) error {
			return runSet(cmd.OutOrStdout(), d, s)
		}),
	}
	cmd.Flags().StringVar(&s.xlFS, "xl-fs", "", "accelerometer range (4g, 8g, 16g, 32g)")
	cmd.Flags().StringVar(&s.xlODR, "xl-odr", "", "accelerometer data rate (e.g. 104Hz-hp, off)")
	cmd.Flags().StringVar(&s.gyFS, "gy-fs", "", "gyroscope range (e.g. 2000dps)")
	cmd.Flags().StringVar(&s.gyODR, "gy-odr", "", "gyroscope data rate (e.g. 104Hz-hp, off)")
	return cmd
}
