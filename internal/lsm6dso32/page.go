// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

// Paged memory lives behind PAGE_SEL/PAGE_ADDRESS/PAGE_VALUE in the
// embedded functions bank. Addresses are 12 bits: page in 11:8, offset in
// 7:0.

const (
	pageModeOff   = 0x00
	pageModeRead  = 0x01
	pageModeWrite = 0x02

	pageAddrLimit = 0x1000
)

var (
	pageRWMode  = field{RegPageRW, 5, 2}
	pageSelPage = field{RegPageSel, 4, 4}
	// Low nibble of PAGE_SEL must read back as 1.
	pageSelFixed = field{RegPageSel, 0, 4}
)

// PageWrite writes buf starting at addr. The offset auto-increments on the
// device; the page is reselected when it wraps past 0xFF.
func (d *Dev) PageWrite(addr uint16, buf []byte) error {
	if err := checkPageSpan(addr, len(buf)); err != nil {
		return err
	}
	return d.withBank(EmbeddedFuncBank, func() error {
		err := d.pageWrite(addr, buf)
		if cerr := d.pageClose(); err == nil {
			err = cerr
		}
		return err
	})
}

// PageRead fills buf starting at addr.
func (d *Dev) PageRead(addr uint16, buf []byte) error {
	if err := checkPageSpan(addr, len(buf)); err != nil {
		return err
	}
	return d.withBank(EmbeddedFuncBank, func() error {
		err := d.pageRead(addr, buf)
		if cerr := d.pageClose(); err == nil {
			err = cerr
		}
		return err
	})
}

// PageWriteByte writes a single paged register.
func (d *Dev) PageWriteByte(addr uint16, v uint8) error {
	return d.PageWrite(addr, []byte{v})
}

// PageReadByte reads a single paged register.
func (d *Dev) PageReadByte(addr uint16) (uint8, error) {
	var b [1]byte
	err := d.PageRead(addr, b[:])
	return b[0], err
}

func checkPageSpan(addr uint16, n int) error {
	if n == 0 {
		return invalidf("empty page transfer")
	}
	if int(addr)+n > pageAddrLimit {
		return invalidf("page span 0x%03X+%d beyond 0x%03X", addr, n, pageAddrLimit)
	}
	return nil
}

func (d *Dev) pageWrite(addr uint16, buf []byte) error {
	msb, lsb := uint8(addr>>8)&0x0F, uint8(addr)
	if err := d.writeField(pageRWMode, pageModeWrite); err != nil {
		return err
	}
	if err := d.selectPage(msb); err != nil {
		return err
	}
	if err := d.writeByte(RegPageAddress, lsb); err != nil {
		return err
	}
	for _, v := range buf {
		if err := d.writeByte(RegPageValue, v); err != nil {
			return err
		}
		lsb++
		if lsb == 0 {
			msb++
			if err := d.selectPage(msb); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dev) pageRead(addr uint16, buf []byte) error {
	msb, lsb := uint8(addr>>8)&0x0F, uint8(addr)
	if err := d.writeField(pageRWMode, pageModeRead); err != nil {
		return err
	}
	if err := d.selectPage(msb); err != nil {
		return err
	}
	for i := range buf {
		if err := d.writeByte(RegPageAddress, lsb); err != nil {
			return err
		}
		v, err := d.readByte(RegPageValue)
		if err != nil {
			return err
		}
		buf[i] = v
		lsb++
		if lsb == 0 {
			msb++
			if err := d.selectPage(msb); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dev) selectPage(page uint8) error {
	b, err := d.readByte(RegPageSel)
	if err != nil {
		return err
	}
	b = pageSelPage.set(b, page&0x0F)
	b = pageSelFixed.set(b, 1)
	return d.writeByte(RegPageSel, b)
}

// pageClose returns PAGE_SEL to page 0 and clears the read/write mode.
// Both steps are attempted.
func (d *Dev) pageClose() error {
	err := d.writeByte(RegPageSel, pageSelFixed.set(0, 1))
	if merr := d.writeField(pageRWMode, pageModeOff); err == nil {
		err = merr
	}
	return err
}

func (d *Dev) pageReadLE16(addr uint16) (uint16, error) {
	var b [2]byte
	if err := d.PageRead(addr, b[:]); err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

// pageWriteLE16 writes the two bytes as separate transfers.
func (d *Dev) pageWriteLE16(addr uint16, v uint16) error {
	if err := d.PageWriteByte(addr, uint8(v)); err != nil {
		return err
	}
	return d.PageWriteByte(addr+1, uint8(v>>8))
}
