// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"

	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
)

// BitField describes a group of bits inside a register.
type BitField struct {
	Bits        string `json:"bits"` // "7" or "5:3"
	Name        string `json:"name"`
	Description string `json:"description"`
	Values      string `json:"values,omitempty"`
}

// RegisterInfo is the debugger's view of one register.
type RegisterInfo struct {
	Addr        uint8      `json:"-" yaml:"-"`
	Address     string     `json:"address"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Access      string     `json:"access"` // "R", "W", "RW"
	Default     string     `json:"default,omitempty"`
	BitFields   []BitField `json:"bit_fields,omitempty"`
}

// RegisterMap returns the register metadata of bank, sorted by address.
func RegisterMap(bank lsm6dso32.Bank) []RegisterInfo {
	var src []RegisterInfo
	switch bank {
	case lsm6dso32.EmbeddedFuncBank:
		src = embeddedRegisters
	case lsm6dso32.SensorHubBank:
		src = sensorHubRegisters
	default:
		src = userRegisters
	}
	out := make([]RegisterInfo, len(src))
	for i, r := range src {
		r.Address = fmt.Sprintf("0x%02X", r.Addr)
		out[i] = r
	}
	return out
}

// LookupRegister finds addr in the map of bank.
func LookupRegister(bank lsm6dso32.Bank, addr uint8) (RegisterInfo, bool) {
	for _, r := range RegisterMap(bank) {
		if r.Addr == addr {
			return r, true
		}
	}
	return RegisterInfo{}, false
}

// LookupRegisterByName finds a register of bank by its datasheet name.
func LookupRegisterByName(bank lsm6dso32.Bank, name string) (RegisterInfo, bool) {
	for _, r := range RegisterMap(bank) {
		if r.Name == name {
			return r, true
		}
	}
	return RegisterInfo{}, false
}

const onOff = "0=Disabled, 1=Enabled"

var userRegisters = []RegisterInfo{
	// Bank and interface
	{Addr: lsm6dso32.RegFuncCfgAccess, Name: "FUNC_CFG_ACCESS", Description: "Register bank selection", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7:6", Name: "REG_ACCESS", Description: "Bank", Values: "0=User, 1=Sensor hub, 2=Embedded functions"},
		}},
	{Addr: lsm6dso32.RegPinCtrl, Name: "PIN_CTRL", Description: "SDO pull-up", Access: "RW", Default: "0x3F",
		BitFields: []BitField{
			{Bits: "6", Name: "SDO_PU_EN", Description: "SDO/SA0 pull-up", Values: onOff},
		}},

	// FIFO control
	{Addr: lsm6dso32.RegFIFOCtrl1, Name: "FIFO_CTRL1", Description: "FIFO watermark low byte", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7:0", Name: "WTM", Description: "Watermark bits 7:0", Values: "0-255"},
		}},
	{Addr: lsm6dso32.RegFIFOCtrl2, Name: "FIFO_CTRL2", Description: "FIFO watermark high bit and compression", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7", Name: "STOP_ON_WTM", Description: "Limit FIFO depth to watermark", Values: onOff},
			{Bits: "6", Name: "FIFO_COMPR_RT_EN", Description: "Compression in real time", Values: onOff},
			{Bits: "4", Name: "ODRCHG_EN", Description: "Batch virtual sensor ODR change", Values: onOff},
			{Bits: "2:1", Name: "UNCOPTR_RATE", Description: "Uncompressed data rate", Values: "0=Off, 1=8, 2=16, 3=32 BDR"},
			{Bits: "0", Name: "WTM8", Description: "Watermark bit 8", Values: ""},
		}},
	{Addr: lsm6dso32.RegFIFOCtrl3, Name: "FIFO_CTRL3", Description: "FIFO batch data rates", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7:4", Name: "BDR_GY", Description: "Gyroscope batch rate", Values: "0=Off, 1=12.5Hz ... 10=6667Hz, 11=6.5Hz"},
			{Bits: "3:0", Name: "BDR_XL", Description: "Accelerometer batch rate", Values: "0=Off, 1=12.5Hz ... 10=6667Hz, 11=1.6Hz"},
		}},
	{Addr: lsm6dso32.RegFIFOCtrl4, Name: "FIFO_CTRL4", Description: "FIFO mode and temperature/timestamp batching", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7:6", Name: "DEC_TS_BATCH", Description: "Timestamp decimation", Values: "0=Off, 1=1, 2=8, 3=32"},
			{Bits: "5:4", Name: "ODR_T_BATCH", Description: "Temperature batch rate", Values: "0=Off, 1=1.6Hz, 2=12.5Hz, 3=52Hz"},
			{Bits: "2:0", Name: "FIFO_MODE", Description: "FIFO mode", Values: "0=Bypass, 1=FIFO, 3=Stream-to-FIFO, 4=Bypass-to-stream, 6=Stream, 7=Bypass-to-FIFO"},
		}},
	{Addr: lsm6dso32.RegCounterBDRReg1, Name: "COUNTER_BDR_REG1", Description: "Batch counter control", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7", Name: "DATAREADY_PULSED", Description: "Pulsed data-ready", Values: "0=Latched, 1=Pulsed"},
			{Bits: "6", Name: "RST_COUNTER_BDR", Description: "Reset batch counter", Values: ""},
			{Bits: "5", Name: "TRIG_COUNTER_BDR", Description: "Counter source", Values: "0=Accelerometer, 1=Gyroscope"},
			{Bits: "2:0", Name: "CNT_BDR_TH", Description: "Counter threshold bits 10:8", Values: ""},
		}},
	{Addr: lsm6dso32.RegCounterBDRReg2, Name: "COUNTER_BDR_REG2", Description: "Batch counter threshold low byte", Access: "RW", Default: "0x00"},

	// Interrupt routing
	{Addr: lsm6dso32.RegInt1Ctrl, Name: "INT1_CTRL", Description: "INT1 routing", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7", Name: "DEN_DRDY_FLAG", Description: "DEN data-ready", Values: onOff},
			{Bits: "6", Name: "INT1_CNT_BDR", Description: "Batch counter", Values: onOff},
			{Bits: "5", Name: "INT1_FIFO_FULL", Description: "FIFO full", Values: onOff},
			{Bits: "4", Name: "INT1_FIFO_OVR", Description: "FIFO overrun", Values: onOff},
			{Bits: "3", Name: "INT1_FIFO_TH", Description: "FIFO watermark", Values: onOff},
			{Bits: "2", Name: "INT1_BOOT", Description: "Boot status", Values: onOff},
			{Bits: "1", Name: "INT1_DRDY_G", Description: "Gyroscope data-ready", Values: onOff},
			{Bits: "0", Name: "INT1_DRDY_XL", Description: "Accelerometer data-ready", Values: onOff},
		}},
	{Addr: lsm6dso32.RegInt2Ctrl, Name: "INT2_CTRL", Description: "INT2 routing", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "6", Name: "INT2_CNT_BDR", Description: "Batch counter", Values: onOff},
			{Bits: "5", Name: "INT2_FIFO_FULL", Description: "FIFO full", Values: onOff},
			{Bits: "4", Name: "INT2_FIFO_OVR", Description: "FIFO overrun", Values: onOff},
			{Bits: "3", Name: "INT2_FIFO_TH", Description: "FIFO watermark", Values: onOff},
			{Bits: "2", Name: "INT2_DRDY_TEMP", Description: "Temperature data-ready", Values: onOff},
			{Bits: "1", Name: "INT2_DRDY_G", Description: "Gyroscope data-ready", Values: onOff},
			{Bits: "0", Name: "INT2_DRDY_XL", Description: "Accelerometer data-ready", Values: onOff},
		}},
	{Addr: lsm6dso32.RegWhoAmI, Name: "WHO_AM_I", Description: "Device identification", Access: "R", Default: "0x6C"},

	// Sensor control
	{Addr: lsm6dso32.RegCtrl1XL, Name: "CTRL1_XL", Description: "Accelerometer control", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7:4", Name: "ODR_XL", Description: "Output data rate", Values: "0=Off, 1=12.5Hz, 2=26Hz, 3=52Hz, 4=104Hz, 5=208Hz, 6=416Hz, 7=833Hz, 8=1667Hz, 9=3333Hz, 10=6667Hz, 11=1.6Hz (LP)"},
			{Bits: "3:2", Name: "FS_XL", Description: "Full scale", Values: "0=±4g, 1=±32g, 2=±8g, 3=±16g"},
			{Bits: "1", Name: "LPF2_XL_EN", Description: "Second low-pass stage", Values: onOff},
		}},
	{Addr: lsm6dso32.RegCtrl2G, Name: "CTRL2_G", Description: "Gyroscope control", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7:4", Name: "ODR_G", Description: "Output data rate", Values: "0=Off, 1=12.5Hz ... 10=6667Hz"},
			{Bits: "3:1", Name: "FS_G", Description: "Full scale", Values: "0=±250dps, 1=±125dps, 2=±500dps, 4=±1000dps, 6=±2000dps"},
		}},
	{Addr: lsm6dso32.RegCtrl3C, Name: "CTRL3_C", Description: "Common control", Access: "RW", Default: "0x04",
		BitFields: []BitField{
			{Bits: "7", Name: "BOOT", Description: "Reboot memory content", Values: ""},
			{Bits: "6", Name: "BDU", Description: "Block data update", Values: onOff},
			{Bits: "5", Name: "H_LACTIVE", Description: "Interrupt polarity", Values: "0=Active high, 1=Active low"},
			{Bits: "4", Name: "PP_OD", Description: "Interrupt pad mode", Values: "0=Push-pull, 1=Open drain"},
			{Bits: "3", Name: "SIM", Description: "SPI mode", Values: "0=4-wire, 1=3-wire"},
			{Bits: "2", Name: "IF_INC", Description: "Register address auto-increment", Values: onOff},
			{Bits: "0", Name: "SW_RESET", Description: "Software reset", Values: ""},
		}},
	{Addr: lsm6dso32.RegCtrl4C, Name: "CTRL4_C", Description: "Common control", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "6", Name: "SLEEP_G", Description: "Gyroscope sleep", Values: onOff},
			{Bits: "5", Name: "INT2_ON_INT1", Description: "All interrupts on INT1", Values: onOff},
			{Bits: "3", Name: "DRDY_MASK", Description: "Mask data-ready until filters settle", Values: onOff},
			{Bits: "2", Name: "I2C_DISABLE", Description: "Disable I2C", Values: ""},
			{Bits: "1", Name: "LPF1_SEL_G", Description: "Gyroscope LPF1", Values: onOff},
		}},
	{Addr: lsm6dso32.RegCtrl5C, Name: "CTRL5_C", Description: "Self-test and rounding", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7", Name: "XL_ULP_EN", Description: "Accelerometer ultra-low-power", Values: onOff},
			{Bits: "6:5", Name: "ROUNDING", Description: "Circular burst read", Values: "0=None, 1=XL, 2=G+XL, 3=G+XL+SH"},
			{Bits: "3:2", Name: "ST_G", Description: "Gyroscope self-test", Values: "0=Normal, 1=Positive, 3=Negative"},
			{Bits: "1:0", Name: "ST_XL", Description: "Accelerometer self-test", Values: "0=Normal, 1=Positive, 2=Negative"},
		}},
	{Addr: lsm6dso32.RegCtrl6C, Name: "CTRL6_C", Description: "DEN and accelerometer mode", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7:5", Name: "TRIG_MODE", Description: "DEN trigger mode", Values: "0=Off, 2=Level FIFO, 3=Latched, 4=Level, 6=Edge"},
			{Bits: "4", Name: "XL_HM_MODE", Description: "Accelerometer high-performance disable", Values: ""},
			{Bits: "3", Name: "USR_OFF_W", Description: "User offset weight", Values: "0=1mg/LSB, 1=16mg/LSB"},
			{Bits: "2:0", Name: "FTYPE", Description: "Gyroscope LPF1 bandwidth", Values: "0-7"},
		}},
	{Addr: lsm6dso32.RegCtrl7G, Name: "CTRL7_G", Description: "Gyroscope filters", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7", Name: "G_HM_MODE", Description: "Gyroscope high-performance disable", Values: ""},
			{Bits: "6", Name: "HP_EN_G", Description: "Gyroscope high-pass", Values: onOff},
			{Bits: "5:4", Name: "HPM_G", Description: "High-pass cutoff", Values: "0=16mHz, 1=65mHz, 2=260mHz, 3=1.04Hz"},
			{Bits: "1", Name: "USR_OFF_ON_OUT", Description: "User offset on outputs", Values: onOff},
		}},
	{Addr: lsm6dso32.RegCtrl8XL, Name: "CTRL8_XL", Description: "Accelerometer filters", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7:5", Name: "HPCF_XL", Description: "Filter bandwidth", Values: "0-7"},
			{Bits: "4", Name: "HP_REF_MODE_XL", Description: "High-pass reference mode", Values: onOff},
			{Bits: "3", Name: "FASTSETTL_MODE_XL", Description: "Fast settling", Values: onOff},
			{Bits: "2", Name: "HP_SLOPE_XL_EN", Description: "High-pass or slope on outputs", Values: "0=Low-pass, 1=High-pass"},
			{Bits: "0", Name: "LOW_PASS_ON_6D", Description: "LPF2 on 6D", Values: onOff},
		}},
	{Addr: lsm6dso32.RegCtrl9XL, Name: "CTRL9_XL", Description: "DEN and I3C", Access: "RW", Default: "0xE0",
		BitFields: []BitField{
			{Bits: "7", Name: "DEN_X", Description: "DEN stored in X LSB", Values: onOff},
			{Bits: "6", Name: "DEN_Y", Description: "DEN stored in Y LSB", Values: onOff},
			{Bits: "5", Name: "DEN_Z", Description: "DEN stored in Z LSB", Values: onOff},
			{Bits: "4:3", Name: "DEN_XL_G", Description: "DEN stamping sensor", Values: "0=Gyroscope, 1=Accelerometer, 2=Both"},
			{Bits: "2", Name: "DEN_LH", Description: "DEN polarity", Values: "0=Active low, 1=Active high"},
			{Bits: "1", Name: "I3C_DISABLE", Description: "Disable MIPI I3C", Values: ""},
		}},
	{Addr: lsm6dso32.RegCtrl10C, Name: "CTRL10_C", Description: "Timestamp", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "5", Name: "TIMESTAMP_EN", Description: "Timestamp counter", Values: onOff},
		}},

	// Status and sources
	{Addr: lsm6dso32.RegAllIntSrc, Name: "ALL_INT_SRC", Description: "Interrupt sources", Access: "R",
		BitFields: []BitField{
			{Bits: "7", Name: "TIMESTAMP_ENDCOUNT", Description: "Timestamp overflow soon", Values: ""},
			{Bits: "5", Name: "SLEEP_CHANGE_IA", Description: "Activity/inactivity change", Values: ""},
			{Bits: "4", Name: "D6D_IA", Description: "Orientation change", Values: ""},
			{Bits: "3", Name: "DOUBLE_TAP", Description: "Double tap", Values: ""},
			{Bits: "2", Name: "SINGLE_TAP", Description: "Single tap", Values: ""},
			{Bits: "1", Name: "WU_IA", Description: "Wake-up", Values: ""},
			{Bits: "0", Name: "FF_IA", Description: "Free-fall", Values: ""},
		}},
	{Addr: lsm6dso32.RegWakeUpSrc, Name: "WAKE_UP_SRC", Description: "Wake-up source", Access: "R"},
	{Addr: lsm6dso32.RegTapSrc, Name: "TAP_SRC", Description: "Tap source", Access: "R"},
	{Addr: lsm6dso32.RegD6DSrc, Name: "D6D_SRC", Description: "Orientation source", Access: "R"},
	{Addr: lsm6dso32.RegStatusReg, Name: "STATUS_REG", Description: "Data-ready status", Access: "R",
		BitFields: []BitField{
			{Bits: "2", Name: "TDA", Description: "Temperature available", Values: ""},
			{Bits: "1", Name: "GDA", Description: "Gyroscope available", Values: ""},
			{Bits: "0", Name: "XLDA", Description: "Accelerometer available", Values: ""},
		}},

	// Output data
	{Addr: lsm6dso32.RegOutTempL, Name: "OUT_TEMP_L", Description: "Temperature low byte", Access: "R"},
	{Addr: lsm6dso32.RegOutTempH, Name: "OUT_TEMP_H", Description: "Temperature high byte", Access: "R"},
	{Addr: lsm6dso32.RegOutXLG, Name: "OUTX_L_G", Description: "Gyroscope X low byte", Access: "R"},
	{Addr: lsm6dso32.RegOutXLG + 1, Name: "OUTX_H_G", Description: "Gyroscope X high byte", Access: "R"},
	{Addr: lsm6dso32.RegOutXLG + 2, Name: "OUTY_L_G", Description: "Gyroscope Y low byte", Access: "R"},
	{Addr: lsm6dso32.RegOutXLG + 3, Name: "OUTY_H_G", Description: "Gyroscope Y high byte", Access: "R"},
	{Addr: lsm6dso32.RegOutXLG + 4, Name: "OUTZ_L_G", Description: "Gyroscope Z low byte", Access: "R"},
	{Addr: lsm6dso32.RegOutXLG + 5, Name: "OUTZ_H_G", Description: "Gyroscope Z high byte", Access: "R"},
	{Addr: lsm6dso32.RegOutXLA, Name: "OUTX_L_A", Description: "Accelerometer X low byte", Access: "R"},
	{Addr: lsm6dso32.RegOutXLA + 1, Name: "OUTX_H_A", Description: "Accelerometer X high byte", Access: "R"},
	{Addr: lsm6dso32.RegOutXLA + 2, Name: "OUTY_L_A", Description: "Accelerometer Y low byte", Access: "R"},
	{Addr: lsm6dso32.RegOutXLA + 3, Name: "OUTY_H_A", Description: "Accelerometer Y high byte", Access: "R"},
	{Addr: lsm6dso32.RegOutXLA + 4, Name: "OUTZ_L_A", Description: "Accelerometer Z low byte", Access: "R"},
	{Addr: lsm6dso32.RegOutXLA + 5, Name: "OUTZ_H_A", Description: "Accelerometer Z high byte", Access: "R"},
	{Addr: lsm6dso32.RegEmbFuncStatusMain, Name: "EMB_FUNC_STATUS_MAINPAGE", Description: "Embedded function status", Access: "R"},
	{Addr: lsm6dso32.RegFSMStatusAMain, Name: "FSM_STATUS_A_MAINPAGE", Description: "FSM 1-8 status", Access: "R"},
	{Addr: lsm6dso32.RegFSMStatusBMain, Name: "FSM_STATUS_B_MAINPAGE", Description: "FSM 9-16 status", Access: "R"},
	{Addr: lsm6dso32.RegStatusMasterMain, Name: "STATUS_MASTER_MAINPAGE", Description: "Sensor hub status", Access: "R"},
	{Addr: lsm6dso32.RegFIFOStatus1, Name: "FIFO_STATUS1", Description: "FIFO level low byte", Access: "R"},
	{Addr: lsm6dso32.RegFIFOStatus2, Name: "FIFO_STATUS2", Description: "FIFO level and flags", Access: "R",
		BitFields: []BitField{
			{Bits: "7", Name: "FIFO_WTM_IA", Description: "Watermark reached", Values: ""},
			{Bits: "6", Name: "FIFO_OVR_IA", Description: "Overrun", Values: ""},
			{Bits: "5", Name: "FIFO_FULL_IA", Description: "Full at next write", Values: ""},
			{Bits: "4", Name: "COUNTER_BDR_IA", Description: "Batch counter reached", Values: ""},
			{Bits: "3", Name: "FIFO_OVR_LATCHED", Description: "Latched overrun", Values: ""},
			{Bits: "1:0", Name: "DIFF_FIFO", Description: "Level bits 9:8", Values: ""},
		}},
	{Addr: lsm6dso32.RegTimestamp0, Name: "TIMESTAMP0", Description: "Timestamp byte 0", Access: "R"},
	{Addr: lsm6dso32.RegTimestamp0 + 1, Name: "TIMESTAMP1", Description: "Timestamp byte 1", Access: "R"},
	{Addr: lsm6dso32.RegTimestamp0 + 2, Name: "TIMESTAMP2", Description: "Timestamp byte 2", Access: "R"},
	{Addr: lsm6dso32.RegTimestamp0 + 3, Name: "TIMESTAMP3", Description: "Timestamp byte 3", Access: "R"},

	// Event detection
	{Addr: lsm6dso32.RegTapCfg0, Name: "TAP_CFG0", Description: "Tap axes and interrupt latching", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "6", Name: "INT_CLR_ON_READ", Description: "Clear latched events on read", Values: onOff},
			{Bits: "5", Name: "SLEEP_STATUS_ON_INT", Description: "Sleep status instead of change", Values: onOff},
			{Bits: "4", Name: "SLOPE_FDS", Description: "HPF on wake-up", Values: "0=Slope, 1=High-pass"},
			{Bits: "3", Name: "TAP_X_EN", Description: "Tap on X", Values: onOff},
			{Bits: "2", Name: "TAP_Y_EN", Description: "Tap on Y", Values: onOff},
			{Bits: "1", Name: "TAP_Z_EN", Description: "Tap on Z", Values: onOff},
			{Bits: "0", Name: "LIR", Description: "Latched interrupts", Values: onOff},
		}},
	{Addr: lsm6dso32.RegTapCfg1, Name: "TAP_CFG1", Description: "Tap X threshold and priority", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegTapCfg2, Name: "TAP_CFG2", Description: "Tap Y threshold and activity", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7", Name: "INTERRUPTS_ENABLE", Description: "Basic interrupt functions", Values: onOff},
			{Bits: "6:5", Name: "INACT_EN", Description: "Activity/inactivity mode", Values: "0=Off, 1=XL 12.5Hz, 2=XL 12.5Hz G sleep, 3=XL 12.5Hz G off"},
			{Bits: "4:0", Name: "TAP_THS_Y", Description: "Y tap threshold", Values: "0-31"},
		}},
	{Addr: lsm6dso32.RegTapThs6D, Name: "TAP_THS_6D", Description: "Tap Z threshold and 6D", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegIntDur2, Name: "INT_DUR2", Description: "Tap timing", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegWakeUpThs, Name: "WAKE_UP_THS", Description: "Wake-up threshold", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegWakeUpDur, Name: "WAKE_UP_DUR", Description: "Wake-up and sleep durations", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegFreeFall, Name: "FREE_FALL", Description: "Free-fall threshold and duration", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegMD1Cfg, Name: "MD1_CFG", Description: "INT1 event routing", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegMD2Cfg, Name: "MD2_CFG", Description: "INT2 event routing", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegI3CBusAvb, Name: "I3C_BUS_AVB", Description: "I3C bus available time", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegInternalFreqFine, Name: "INTERNAL_FREQ_FINE", Description: "ODR trim", Access: "R"},
	{Addr: lsm6dso32.RegXOfsUsr, Name: "X_OFS_USR", Description: "Accelerometer X user offset", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegYOfsUsr, Name: "Y_OFS_USR", Description: "Accelerometer Y user offset", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegZOfsUsr, Name: "Z_OFS_USR", Description: "Accelerometer Z user offset", Access: "RW", Default: "0x00"},

	// FIFO output, reads pop the FIFO
	{Addr: lsm6dso32.RegFIFODataOutTag, Name: "FIFO_DATA_OUT_TAG", Description: "FIFO tag", Access: "R"},
}

var embeddedRegisters = []RegisterInfo{
	{Addr: lsm6dso32.RegPageSel, Name: "PAGE_SEL", Description: "Advanced features page", Access: "RW", Default: "0x01",
		BitFields: []BitField{
			{Bits: "7:4", Name: "PAGE_SEL", Description: "Page number", Values: "0-15"},
		}},
	{Addr: lsm6dso32.RegEmbFuncEnA, Name: "EMB_FUNC_EN_A", Description: "Embedded functions enable", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "5", Name: "SIGN_MOTION_EN", Description: "Significant motion", Values: onOff},
			{Bits: "4", Name: "TILT_EN", Description: "Tilt", Values: onOff},
			{Bits: "3", Name: "PEDO_EN", Description: "Pedometer", Values: onOff},
		}},
	{Addr: lsm6dso32.RegEmbFuncEnB, Name: "EMB_FUNC_EN_B", Description: "Embedded functions enable", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "4", Name: "PEDO_ADV_EN", Description: "Advanced pedometer", Values: onOff},
			{Bits: "3", Name: "FIFO_COMPR_EN", Description: "FIFO compression", Values: onOff},
			{Bits: "0", Name: "FSM_EN", Description: "Finite state machine", Values: onOff},
		}},
	{Addr: lsm6dso32.RegPageAddress, Name: "PAGE_ADDRESS", Description: "Address inside the selected page", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegPageValue, Name: "PAGE_VALUE", Description: "Data at PAGE_ADDRESS", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegEmbFuncInt1, Name: "EMB_FUNC_INT1", Description: "Embedded functions on INT1", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegFSMInt1A, Name: "FSM_INT1_A", Description: "FSM 1-8 on INT1", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegFSMInt1B, Name: "FSM_INT1_B", Description: "FSM 9-16 on INT1", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegEmbFuncInt2, Name: "EMB_FUNC_INT2", Description: "Embedded functions on INT2", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegFSMInt2A, Name: "FSM_INT2_A", Description: "FSM 1-8 on INT2", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegFSMInt2B, Name: "FSM_INT2_B", Description: "FSM 9-16 on INT2", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegEmbFuncStatus, Name: "EMB_FUNC_STATUS", Description: "Embedded function status", Access: "R"},
	{Addr: lsm6dso32.RegFSMStatusA, Name: "FSM_STATUS_A", Description: "FSM 1-8 status", Access: "R"},
	{Addr: lsm6dso32.RegFSMStatusB, Name: "FSM_STATUS_B", Description: "FSM 9-16 status", Access: "R"},
	{Addr: lsm6dso32.RegPageRW, Name: "PAGE_RW", Description: "Page access mode and latching", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7", Name: "EMB_FUNC_LIR", Description: "Latched embedded interrupts", Values: onOff},
			{Bits: "6", Name: "PAGE_WRITE", Description: "Page write", Values: onOff},
			{Bits: "5", Name: "PAGE_READ", Description: "Page read", Values: onOff},
		}},
	{Addr: lsm6dso32.RegEmbFuncFIFOCfg, Name: "EMB_FUNC_FIFO_CFG", Description: "Embedded function batching", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "6", Name: "PEDO_FIFO_EN", Description: "Batch step counter", Values: onOff},
		}},
	{Addr: lsm6dso32.RegFSMEnableA, Name: "FSM_ENABLE_A", Description: "FSM 1-8 enable", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegFSMEnableB, Name: "FSM_ENABLE_B", Description: "FSM 9-16 enable", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegFSMLongCounterL, Name: "FSM_LONG_COUNTER_L", Description: "Long counter low byte", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegFSMLongCounterH, Name: "FSM_LONG_COUNTER_H", Description: "Long counter high byte", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegFSMLongCounterClr, Name: "FSM_LONG_COUNTER_CLEAR", Description: "Long counter clear", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegFSMOuts1, Name: "FSM_OUTS1", Description: "FSM 1 output", Access: "R"},
	{Addr: lsm6dso32.RegEmbFuncODRCfgB, Name: "EMB_FUNC_ODR_CFG_B", Description: "FSM output data rate", Access: "RW", Default: "0x4B",
		BitFields: []BitField{
			{Bits: "4:3", Name: "FSM_ODR", Description: "FSM rate", Values: "0=12.5Hz, 1=26Hz, 2=52Hz, 3=104Hz"},
		}},
	{Addr: lsm6dso32.RegStepCounterL, Name: "STEP_COUNTER_L", Description: "Step counter low byte", Access: "R"},
	{Addr: lsm6dso32.RegStepCounterH, Name: "STEP_COUNTER_H", Description: "Step counter high byte", Access: "R"},
	{Addr: lsm6dso32.RegEmbFuncSrc, Name: "EMB_FUNC_SRC", Description: "Pedometer source", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7", Name: "PEDO_RST_STEP", Description: "Reset step counter", Values: ""},
			{Bits: "5", Name: "STEP_DETECTED", Description: "Step detected", Values: ""},
			{Bits: "4", Name: "STEP_COUNT_DELTA_IA", Description: "Step within time period", Values: ""},
			{Bits: "3", Name: "STEP_OVERFLOW", Description: "Counter overflow", Values: ""},
			{Bits: "2", Name: "STEPCOUNTER_BIT_SET", Description: "Counter not zero", Values: ""},
		}},
	{Addr: lsm6dso32.RegEmbFuncInitA, Name: "EMB_FUNC_INIT_A", Description: "Embedded function init", Access: "RW", Default: "0x00"},
	{Addr: lsm6dso32.RegEmbFuncInitB, Name: "EMB_FUNC_INIT_B", Description: "Embedded function init", Access: "RW", Default: "0x00"},
}

var sensorHubRegisters = buildSensorHubRegisters()

func buildSensorHubRegisters() []RegisterInfo {
	regs := make([]RegisterInfo, 0, lsm6dso32.SensorHubDataLen+16)
	for i := 0; i < lsm6dso32.SensorHubDataLen; i++ {
		regs = append(regs, RegisterInfo{
			Addr:        lsm6dso32.RegSensorHub1 + uint8(i),
			Name:        fmt.Sprintf("SENSOR_HUB_%d", i+1),
			Description: fmt.Sprintf("Sensor hub byte %d", i+1),
			Access:      "R",
		})
	}
	regs = append(regs, RegisterInfo{
		Addr: lsm6dso32.RegMasterConfig, Name: "MASTER_CONFIG", Description: "Sensor hub master", Access: "RW", Default: "0x00",
		BitFields: []BitField{
			{Bits: "7", Name: "RST_MASTER_REGS", Description: "Reset master logic", Values: ""},
			{Bits: "6", Name: "WRITE_ONCE", Description: "Write slave 0 once", Values: onOff},
			{Bits: "5", Name: "START_CONFIG", Description: "Trigger", Values: "0=XL/G data-ready, 1=INT2"},
			{Bits: "4", Name: "PASS_THROUGH_MODE", Description: "I2C pass-through", Values: onOff},
			{Bits: "3", Name: "SHUB_PU_EN", Description: "Internal pull-up", Values: onOff},
			{Bits: "2", Name: "MASTER_ON", Description: "Sensor hub master", Values: onOff},
			{Bits: "1:0", Name: "AUX_SENS_ON", Description: "Connected slaves", Values: "0=1, 1=2, 2=3, 3=4"},
		},
	})
	for n := 0; n < 4; n++ {
		base := lsm6dso32.RegSlv0Add + uint8(3*n)
		regs = append(regs,
			RegisterInfo{Addr: base, Name: fmt.Sprintf("SLV%d_ADD", n), Description: fmt.Sprintf("Slave %d address and direction", n), Access: "RW", Default: "0x00"},
			RegisterInfo{Addr: base + 1, Name: fmt.Sprintf("SLV%d_SUBADD", n), Description: fmt.Sprintf("Slave %d register", n), Access: "RW", Default: "0x00"},
			RegisterInfo{Addr: base + 2, Name: fmt.Sprintf("SLV%d_CONFIG", n), Description: fmt.Sprintf("Slave %d read length", n), Access: "RW", Default: "0x00"},
		)
	}
	return append(regs,
		RegisterInfo{Addr: lsm6dso32.RegDatawriteSlv0, Name: "DATAWRITE_SLV0", Description: "Slave 0 write data", Access: "RW", Default: "0x00"},
		RegisterInfo{Addr: lsm6dso32.RegStatusMaster, Name: "STATUS_MASTER", Description: "Sensor hub status", Access: "R"},
	)
}
