// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

import (
	"fmt"
	"strings"
)

type enumValue[T ~uint8] struct {
	v    T
	name string
}

// enumTable lists the named encodings of a field. The first entry is the
// value reported when the device returns a pattern that is not listed.
type enumTable[T ~uint8] struct {
	field  string
	values []enumValue[T]
}

func (t *enumTable[T]) lookup(v T) (string, bool) {
	for _, e := range t.values {
		if e.v == v {
			return e.name, true
		}
	}
	return "", false
}

func (t *enumTable[T]) str(v T) string {
	if n, ok := t.lookup(v); ok {
		return n
	}
	return fmt.Sprintf("%s(0x%02X)", t.field, uint8(v))
}

func (t *enumTable[T]) check(v T) error {
	if _, ok := t.lookup(v); !ok {
		return invalidf("%s 0x%02X", t.field, uint8(v))
	}
	return nil
}

func (t *enumTable[T]) parse(s string) (T, error) {
	s = strings.TrimSpace(s)
	for _, e := range t.values {
		if strings.EqualFold(e.name, s) {
			return e.v, nil
		}
	}
	return 0, invalidf("%s %q (want one of %s)", t.field, s, strings.Join(t.names(), ", "))
}

func (t *enumTable[T]) names() []string {
	out := make([]string, len(t.values))
	for i, e := range t.values {
		out[i] = e.name
	}
	return out
}

// decode maps a raw field value onto the table, falling back to the
// table default for unlisted patterns.
func decode[T ~uint8](d *Dev, t *enumTable[T], raw uint8) T {
	v := T(raw)
	if _, ok := t.lookup(v); ok {
		return v
	}
	if d.opts.OnReservedValue != nil {
		d.opts.OnReservedValue(t.field, raw)
	}
	return t.values[0].v
}

// Bank selects the register window exposed at addresses 0x02..0x7F.
type Bank uint8

const (
	UserBank         Bank = 0
	SensorHubBank    Bank = 1
	EmbeddedFuncBank Bank = 2
)

var bankTable = enumTable[Bank]{"reg_access", []enumValue[Bank]{
	{UserBank, "user"}, {SensorHubBank, "sensor-hub"}, {EmbeddedFuncBank, "embedded"},
}}

func (b Bank) String() string { return bankTable.str(b) }

// ParseBank accepts "user", "sensor-hub" or "embedded".
func ParseBank(s string) (Bank, error) { return bankTable.parse(s) }

// XLFullScale is the accelerometer range.
type XLFullScale uint8

const (
	XL4g  XLFullScale = 0
	XL32g XLFullScale = 1
	XL8g  XLFullScale = 2
	XL16g XLFullScale = 3
)

var xlFullScaleTable = enumTable[XLFullScale]{"fs_xl", []enumValue[XLFullScale]{
	{XL4g, "4g"}, {XL32g, "32g"}, {XL8g, "8g"}, {XL16g, "16g"},
}}

func (v XLFullScale) String() string { return xlFullScaleTable.str(v) }

// ParseXLFullScale accepts "4g", "8g", "16g" or "32g".
func ParseXLFullScale(s string) (XLFullScale, error) { return xlFullScaleTable.parse(s) }

// XLDataRate packs the accelerometer ODR (bits 3:0), high-performance
// disable (bit 4) and ultra-low-power enable (bit 5).
type XLDataRate uint8

const (
	XLODROff             XLDataRate = 0x00
	XLODR12Hz5HighPerf   XLDataRate = 0x01
	XLODR26HzHighPerf    XLDataRate = 0x02
	XLODR52HzHighPerf    XLDataRate = 0x03
	XLODR104HzHighPerf   XLDataRate = 0x04
	XLODR208HzHighPerf   XLDataRate = 0x05
	XLODR417HzHighPerf   XLDataRate = 0x06
	XLODR833HzHighPerf   XLDataRate = 0x07
	XLODR1667HzHighPerf  XLDataRate = 0x08
	XLODR3333HzHighPerf  XLDataRate = 0x09
	XLODR6667HzHighPerf  XLDataRate = 0x0A
	XLODR1Hz6LowPw       XLDataRate = 0x1B
	XLODR12Hz5LowPw      XLDataRate = 0x11
	XLODR26HzLowPw       XLDataRate = 0x12
	XLODR52HzLowPw       XLDataRate = 0x13
	XLODR104HzNormal     XLDataRate = 0x14
	XLODR208HzNormal     XLDataRate = 0x15
	XLODR1Hz6UltraLowPw  XLDataRate = 0x3B
	XLODR12Hz5UltraLowPw XLDataRate = 0x31
	XLODR26HzUltraLowPw  XLDataRate = 0x32
	XLODR52HzUltraLowPw  XLDataRate = 0x33
	XLODR104HzUltraLowPw XLDataRate = 0x34
	XLODR208HzUltraLowPw XLDataRate = 0x35
)

var xlDataRateTable = enumTable[XLDataRate]{"odr_xl", []enumValue[XLDataRate]{
	{XLODROff, "off"},
	{XLODR12Hz5HighPerf, "12Hz5-hp"}, {XLODR26HzHighPerf, "26Hz-hp"},
	{XLODR52HzHighPerf, "52Hz-hp"}, {XLODR104HzHighPerf, "104Hz-hp"},
	{XLODR208HzHighPerf, "208Hz-hp"}, {XLODR417HzHighPerf, "417Hz-hp"},
	{XLODR833HzHighPerf, "833Hz-hp"}, {XLODR1667HzHighPerf, "1667Hz-hp"},
	{XLODR3333HzHighPerf, "3333Hz-hp"}, {XLODR6667HzHighPerf, "6667Hz-hp"},
	{XLODR1Hz6LowPw, "1Hz6-lp"}, {XLODR12Hz5LowPw, "12Hz5-lp"},
	{XLODR26HzLowPw, "26Hz-lp"}, {XLODR52HzLowPw, "52Hz-lp"},
	{XLODR104HzNormal, "104Hz-normal"}, {XLODR208HzNormal, "208Hz-normal"},
	{XLODR1Hz6UltraLowPw, "1Hz6-ulp"}, {XLODR12Hz5UltraLowPw, "12Hz5-ulp"},
	{XLODR26HzUltraLowPw, "26Hz-ulp"}, {XLODR52HzUltraLowPw, "52Hz-ulp"},
	{XLODR104HzUltraLowPw, "104Hz-ulp"}, {XLODR208HzUltraLowPw, "208Hz-ulp"},
}}

func (v XLDataRate) String() string { return xlDataRateTable.str(v) }

// ParseXLDataRate accepts names such as "104Hz-hp", "52Hz-lp" or "off".
func ParseXLDataRate(s string) (XLDataRate, error) { return xlDataRateTable.parse(s) }

// GYFullScale is the gyroscope range; it spans fs_125 and fs_g.
type GYFullScale uint8

const (
	GY250dps  GYFullScale = 0
	GY125dps  GYFullScale = 1
	GY500dps  GYFullScale = 2
	GY1000dps GYFullScale = 4
	GY2000dps GYFullScale = 6
)

var gyFullScaleTable = enumTable[GYFullScale]{"fs_g", []enumValue[GYFullScale]{
	{GY250dps, "250dps"}, {GY125dps, "125dps"}, {GY500dps, "500dps"},
	{GY1000dps, "1000dps"}, {GY2000dps, "2000dps"},
}}

func (v GYFullScale) String() string { return gyFullScaleTable.str(v) }

// ParseGYFullScale accepts "125dps" .. "2000dps".
func ParseGYFullScale(s string) (GYFullScale, error) { return gyFullScaleTable.parse(s) }

// GYDataRate packs the gyroscope ODR (bits 3:0) and high-performance
// disable (bit 4).
type GYDataRate uint8

const (
	GYODROff            GYDataRate = 0x00
	GYODR12Hz5HighPerf  GYDataRate = 0x01
	GYODR26HzHighPerf   GYDataRate = 0x02
	GYODR52HzHighPerf   GYDataRate = 0x03
	GYODR104HzHighPerf  GYDataRate = 0x04
	GYODR208HzHighPerf  GYDataRate = 0x05
	GYODR417HzHighPerf  GYDataRate = 0x06
	GYODR833HzHighPerf  GYDataRate = 0x07
	GYODR1667HzHighPerf GYDataRate = 0x08
	GYODR3333HzHighPerf GYDataRate = 0x09
	GYODR6667HzHighPerf GYDataRate = 0x0A
	GYODR104HzNormal    GYDataRate = 0x14
	GYODR208HzNormal    GYDataRate = 0x15
	GYODR12Hz5LowPw     GYDataRate = 0x11
	GYODR26HzLowPw      GYDataRate = 0x12
	GYODR52HzLowPw      GYDataRate = 0x13
)

var gyDataRateTable = enumTable[GYDataRate]{"odr_g", []enumValue[GYDataRate]{
	{GYODROff, "off"},
	{GYODR12Hz5HighPerf, "12Hz5-hp"}, {GYODR26HzHighPerf, "26Hz-hp"},
	{GYODR52HzHighPerf, "52Hz-hp"}, {GYODR104HzHighPerf, "104Hz-hp"},
	{GYODR208HzHighPerf, "208Hz-hp"}, {GYODR417HzHighPerf, "417Hz-hp"},
	{GYODR833HzHighPerf, "833Hz-hp"}, {GYODR1667HzHighPerf, "1667Hz-hp"},
	{GYODR3333HzHighPerf, "3333Hz-hp"}, {GYODR6667HzHighPerf, "6667Hz-hp"},
	{GYODR104HzNormal, "104Hz-normal"}, {GYODR208HzNormal, "208Hz-normal"},
	{GYODR12Hz5LowPw, "12Hz5-lp"}, {GYODR26HzLowPw, "26Hz-lp"},
	{GYODR52HzLowPw, "52Hz-lp"},
}}

func (v GYDataRate) String() string { return gyDataRateTable.str(v) }

// ParseGYDataRate accepts names such as "104Hz-hp" or "off".
func ParseGYDataRate(s string) (GYDataRate, error) { return gyDataRateTable.parse(s) }

// OffsetWeight is the LSB weight of the accelerometer user offsets.
type OffsetWeight uint8

const (
	OffsetLSb1mg  OffsetWeight = 0
	OffsetLSb16mg OffsetWeight = 1
)

var offsetWeightTable = enumTable[OffsetWeight]{"usr_off_w", []enumValue[OffsetWeight]{
	{OffsetLSb1mg, "1mg"}, {OffsetLSb16mg, "16mg"},
}}

func (v OffsetWeight) String() string { return offsetWeightTable.str(v) }

// ParseOffsetWeight accepts "1mg" or "16mg".
func ParseOffsetWeight(s string) (OffsetWeight, error) { return offsetWeightTable.parse(s) }

// Rounding selects output register auto-rounding.
type Rounding uint8

const (
	NoRound   Rounding = 0
	RoundXL   Rounding = 1
	RoundGY   Rounding = 2
	RoundGYXL Rounding = 3
)

var roundingTable = enumTable[Rounding]{"rounding", []enumValue[Rounding]{
	{NoRound, "none"}, {RoundXL, "xl"}, {RoundGY, "gy"}, {RoundGYXL, "gy-xl"},
}}

func (v Rounding) String() string { return roundingTable.str(v) }

// DataReadyMode selects latched or pulsed data-ready signals.
type DataReadyMode uint8

const (
	DrdyLatched DataReadyMode = 0
	DrdyPulsed  DataReadyMode = 1
)

var dataReadyModeTable = enumTable[DataReadyMode]{"dataready_pulsed", []enumValue[DataReadyMode]{
	{DrdyLatched, "latched"}, {DrdyPulsed, "pulsed"},
}}

func (v DataReadyMode) String() string { return dataReadyModeTable.str(v) }

// XLSelfTest is the accelerometer self-test mode.
type XLSelfTest uint8

const (
	XLSTDisable  XLSelfTest = 0
	XLSTPositive XLSelfTest = 1
	XLSTNegative XLSelfTest = 2
)

var xlSelfTestTable = enumTable[XLSelfTest]{"st_xl", []enumValue[XLSelfTest]{
	{XLSTDisable, "disable"}, {XLSTPositive, "positive"}, {XLSTNegative, "negative"},
}}

func (v XLSelfTest) String() string { return xlSelfTestTable.str(v) }

// GYSelfTest is the gyroscope self-test mode.
type GYSelfTest uint8

const (
	GYSTDisable  GYSelfTest = 0
	GYSTPositive GYSelfTest = 1
	GYSTNegative GYSelfTest = 3
)

var gySelfTestTable = enumTable[GYSelfTest]{"st_g", []enumValue[GYSelfTest]{
	{GYSTDisable, "disable"}, {GYSTPositive, "positive"}, {GYSTNegative, "negative"},
}}

func (v GYSelfTest) String() string { return gySelfTestTable.str(v) }

// FType is the gyroscope LPF1 bandwidth.
type FType uint8

const (
	UltraLight FType = iota
	VeryLight
	Light
	Medium
	Strong
	VeryStrong
	Aggressive
	Xtreme
)

var ftypeTable = enumTable[FType]{"ftype", []enumValue[FType]{
	{UltraLight, "ultra-light"}, {VeryLight, "very-light"}, {Light, "light"},
	{Medium, "medium"}, {Strong, "strong"}, {VeryStrong, "very-strong"},
	{Aggressive, "aggressive"}, {Xtreme, "xtreme"},
}}

func (v FType) String() string { return ftypeTable.str(v) }

// HPSlopeXL packs hpcf_xl (bits 2:0), hp_slope_xl_en (bit 4) and
// hp_ref_mode_xl (bit 5).
type HPSlopeXL uint8

const (
	HPPathDisableOnOut HPSlopeXL = 0x00
	SlopeODRDiv4       HPSlopeXL = 0x10
	HPODRDiv10         HPSlopeXL = 0x11
	HPODRDiv20         HPSlopeXL = 0x12
	HPODRDiv45         HPSlopeXL = 0x13
	HPODRDiv100        HPSlopeXL = 0x14
	HPODRDiv200        HPSlopeXL = 0x15
	HPODRDiv400        HPSlopeXL = 0x16
	HPODRDiv800        HPSlopeXL = 0x17
	HPRefMdODRDiv10    HPSlopeXL = 0x31
	HPRefMdODRDiv20    HPSlopeXL = 0x32
	HPRefMdODRDiv45    HPSlopeXL = 0x33
	HPRefMdODRDiv100   HPSlopeXL = 0x34
	HPRefMdODRDiv200   HPSlopeXL = 0x35
	HPRefMdODRDiv400   HPSlopeXL = 0x36
	HPRefMdODRDiv800   HPSlopeXL = 0x37
	LPODRDiv10         HPSlopeXL = 0x01
	LPODRDiv20         HPSlopeXL = 0x02
	LPODRDiv45         HPSlopeXL = 0x03
	LPODRDiv100        HPSlopeXL = 0x04
	LPODRDiv200        HPSlopeXL = 0x05
	LPODRDiv400        HPSlopeXL = 0x06
	LPODRDiv800        HPSlopeXL = 0x07
)

var hpSlopeXLTable = enumTable[HPSlopeXL]{"hp_slope_xl_en", []enumValue[HPSlopeXL]{
	{HPPathDisableOnOut, "disable"}, {SlopeODRDiv4, "slope-odr/4"},
	{HPODRDiv10, "hp-odr/10"}, {HPODRDiv20, "hp-odr/20"}, {HPODRDiv45, "hp-odr/45"},
	{HPODRDiv100, "hp-odr/100"}, {HPODRDiv200, "hp-odr/200"}, {HPODRDiv400, "hp-odr/400"},
	{HPODRDiv800, "hp-odr/800"},
	{HPRefMdODRDiv10, "hp-ref-odr/10"}, {HPRefMdODRDiv20, "hp-ref-odr/20"},
	{HPRefMdODRDiv45, "hp-ref-odr/45"}, {HPRefMdODRDiv100, "hp-ref-odr/100"},
	{HPRefMdODRDiv200, "hp-ref-odr/200"}, {HPRefMdODRDiv400, "hp-ref-odr/400"},
	{HPRefMdODRDiv800, "hp-ref-odr/800"},
	{LPODRDiv10, "lp-odr/10"}, {LPODRDiv20, "lp-odr/20"}, {LPODRDiv45, "lp-odr/45"},
	{LPODRDiv100, "lp-odr/100"}, {LPODRDiv200, "lp-odr/200"}, {LPODRDiv400, "lp-odr/400"},
	{LPODRDiv800, "lp-odr/800"},
}}

func (v HPSlopeXL) String() string { return hpSlopeXLTable.str(v) }

// SlopeFDS selects the filter feeding the wake-up and activity functions.
type SlopeFDS uint8

const (
	UseSlope SlopeFDS = 0
	UseHPF   SlopeFDS = 1
)

var slopeFDSTable = enumTable[SlopeFDS]{"slope_fds", []enumValue[SlopeFDS]{
	{UseSlope, "slope"}, {UseHPF, "hpf"},
}}

func (v SlopeFDS) String() string { return slopeFDSTable.str(v) }

// HPMG packs hpm_g (bits 1:0) and hp_en_g (bit 7).
type HPMG uint8

const (
	HPFilterNone   HPMG = 0x00
	HPFilter16mHz  HPMG = 0x80
	HPFilter65mHz  HPMG = 0x81
	HPFilter260mHz HPMG = 0x82
	HPFilter1Hz04  HPMG = 0x83
)

var hpmgTable = enumTable[HPMG]{"hpm_g", []enumValue[HPMG]{
	{HPFilterNone, "none"}, {HPFilter16mHz, "16mHz"}, {HPFilter65mHz, "65mHz"},
	{HPFilter260mHz, "260mHz"}, {HPFilter1Hz04, "1Hz04"},
}}

func (v HPMG) String() string { return hpmgTable.str(v) }

// SDOPullUp controls the SDO/SA0 pull-up.
type SDOPullUp uint8

const (
	PullUpDisc    SDOPullUp = 0
	PullUpConnect SDOPullUp = 1
)

var sdoPullUpTable = enumTable[SDOPullUp]{"sdo_pu_en", []enumValue[SDOPullUp]{
	{PullUpDisc, "disconnect"}, {PullUpConnect, "connect"},
}}

func (v SDOPullUp) String() string { return sdoPullUpTable.str(v) }

// SPIMode selects 3 or 4 wire SPI.
type SPIWire uint8

const (
	SPI4Wire SPIWire = 0
	SPI3Wire SPIWire = 1
)

var spiWireTable = enumTable[SPIWire]{"sim", []enumValue[SPIWire]{
	{SPI4Wire, "4-wire"}, {SPI3Wire, "3-wire"},
}}

func (v SPIWire) String() string { return spiWireTable.str(v) }

// I2CMode enables or disables the I2C interface.
type I2CMode uint8

const (
	I2CEnable  I2CMode = 0
	I2CDisable I2CMode = 1
)

var i2cModeTable = enumTable[I2CMode]{"i2c_disable", []enumValue[I2CMode]{
	{I2CEnable, "enable"}, {I2CDisable, "disable"},
}}

func (v I2CMode) String() string { return i2cModeTable.str(v) }

// I3CMode packs i3c_disable (bit 7) and the bus available time (bits 1:0).
type I3CMode uint8

const (
	I3CDisable     I3CMode = 0x80
	I3CEnableT50us I3CMode = 0x00
	I3CEnableT2us  I3CMode = 0x01
	I3CEnableT1ms  I3CMode = 0x02
	I3CEnableT25ms I3CMode = 0x03
)

var i3cModeTable = enumTable[I3CMode]{"i3c_disable", []enumValue[I3CMode]{
	{I3CDisable, "disable"}, {I3CEnableT50us, "50us"}, {I3CEnableT2us, "2us"},
	{I3CEnableT1ms, "1ms"}, {I3CEnableT25ms, "25ms"},
}}

func (v I3CMode) String() string { return i3cModeTable.str(v) }

// Int1PullDown controls the INT1 pull-down.
type Int1PullDown uint8

const (
	PullDownConnect Int1PullDown = 0
	PullDownDisc    Int1PullDown = 1
)

var int1PullDownTable = enumTable[Int1PullDown]{"pd_dis_int1", []enumValue[Int1PullDown]{
	{PullDownDisc, "disconnect"}, {PullDownConnect, "connect"},
}}

func (v Int1PullDown) String() string { return int1PullDownTable.str(v) }

// PinMode selects push-pull or open-drain interrupt pads.
type PinMode uint8

const (
	PushPull  PinMode = 0
	OpenDrain PinMode = 1
)

var pinModeTable = enumTable[PinMode]{"pp_od", []enumValue[PinMode]{
	{PushPull, "push-pull"}, {OpenDrain, "open-drain"},
}}

func (v PinMode) String() string { return pinModeTable.str(v) }

// PinPolarity selects interrupt pad polarity.
type PinPolarity uint8

const (
	ActiveHigh PinPolarity = 0
	ActiveLow  PinPolarity = 1
)

var pinPolarityTable = enumTable[PinPolarity]{"h_lactive", []enumValue[PinPolarity]{
	{ActiveHigh, "active-high"}, {ActiveLow, "active-low"},
}}

func (v PinPolarity) String() string { return pinPolarityTable.str(v) }

// IntNotification packs base latch (bit 0) and embedded latch (bit 1).
type IntNotification uint8

const (
	AllIntPulsed         IntNotification = 0
	BaseLatchedEmbPulsed IntNotification = 1
	BasePulsedEmbLatched IntNotification = 2
	AllIntLatched        IntNotification = 3
)

var intNotificationTable = enumTable[IntNotification]{"lir", []enumValue[IntNotification]{
	{AllIntPulsed, "all-pulsed"}, {BaseLatchedEmbPulsed, "base-latched"},
	{BasePulsedEmbLatched, "emb-latched"}, {AllIntLatched, "all-latched"},
}}

func (v IntNotification) String() string { return intNotificationTable.str(v) }

// WakeThsWeight is the LSB weight of the wake-up threshold.
type WakeThsWeight uint8

const (
	LSbFSDiv64  WakeThsWeight = 0
	LSbFSDiv256 WakeThsWeight = 1
)

var wakeThsWeightTable = enumTable[WakeThsWeight]{"wake_ths_w", []enumValue[WakeThsWeight]{
	{LSbFSDiv64, "fs/64"}, {LSbFSDiv256, "fs/256"},
}}

func (v WakeThsWeight) String() string { return wakeThsWeightTable.str(v) }

// ActPinNotification selects what the activity interrupt reports.
type ActPinNotification uint8

const (
	DriveSleepChgEvent ActPinNotification = 0
	DriveSleepStatus   ActPinNotification = 1
)

var actPinNotificationTable = enumTable[ActPinNotification]{"sleep_status_on_int", []enumValue[ActPinNotification]{
	{DriveSleepChgEvent, "change-event"}, {DriveSleepStatus, "status"},
}}

func (v ActPinNotification) String() string { return actPinNotificationTable.str(v) }

// ActMode is the inactivity behaviour.
type ActMode uint8

const (
	XLAndGYNotAffected   ActMode = 0
	XL12Hz5GYNotAffected ActMode = 1
	XL12Hz5GYSleep       ActMode = 2
	XL12Hz5GYPD          ActMode = 3
)

var actModeTable = enumTable[ActMode]{"inact_en", []enumValue[ActMode]{
	{XLAndGYNotAffected, "off"}, {XL12Hz5GYNotAffected, "xl-12Hz5"},
	{XL12Hz5GYSleep, "xl-12Hz5-gy-sleep"}, {XL12Hz5GYPD, "xl-12Hz5-gy-pd"},
}}

func (v ActMode) String() string { return actModeTable.str(v) }

// TapPriority is the axis evaluation order for tap recognition.
type TapPriority uint8

const (
	TapXYZ TapPriority = 0
	TapYXZ TapPriority = 1
	TapXZY TapPriority = 2
	TapZYX TapPriority = 3
	TapYZX TapPriority = 5
	TapZXY TapPriority = 6
)

var tapPriorityTable = enumTable[TapPriority]{"tap_priority", []enumValue[TapPriority]{
	{TapXYZ, "xyz"}, {TapYXZ, "yxz"}, {TapXZY, "xzy"},
	{TapZYX, "zyx"}, {TapYZX, "yzx"}, {TapZXY, "zxy"},
}}

func (v TapPriority) String() string { return tapPriorityTable.str(v) }

// TapMode enables double tap recognition.
type TapMode uint8

const (
	OnlySingle       TapMode = 0
	BothSingleDouble TapMode = 1
)

var tapModeTable = enumTable[TapMode]{"single_double_tap", []enumValue[TapMode]{
	{OnlySingle, "single"}, {BothSingleDouble, "single-double"},
}}

func (v TapMode) String() string { return tapModeTable.str(v) }

// SixDThreshold is the 6D/4D angle threshold.
type SixDThreshold uint8

const (
	Deg68 SixDThreshold = 0
	Deg47 SixDThreshold = 1
)

var sixDThresholdTable = enumTable[SixDThreshold]{"sixd_ths", []enumValue[SixDThreshold]{
	{Deg68, "68deg"}, {Deg47, "47deg"},
}}

func (v SixDThreshold) String() string { return sixDThresholdTable.str(v) }

// FFThreshold is the free-fall threshold.
type FFThreshold uint8

const (
	FFTsh312mg FFThreshold = 0
	FFTsh438mg FFThreshold = 1
	FFTsh500mg FFThreshold = 2
)

var ffThresholdTable = enumTable[FFThreshold]{"ff_ths", []enumValue[FFThreshold]{
	{FFTsh312mg, "312mg"}, {FFTsh438mg, "438mg"}, {FFTsh500mg, "500mg"},
}}

func (v FFThreshold) String() string { return ffThresholdTable.str(v) }

// Compression packs uncoptr_rate (bits 1:0) and compression enable (bit 2).
type Compression uint8

const (
	CmpDisable Compression = 0x00
	CmpAlways  Compression = 0x04
	Cmp8To1    Compression = 0x05
	Cmp16To1   Compression = 0x06
	Cmp32To1   Compression = 0x07
)

var compressionTable = enumTable[Compression]{"uncoptr_rate", []enumValue[Compression]{
	{CmpDisable, "disable"}, {CmpAlways, "always"}, {Cmp8To1, "8:1"},
	{Cmp16To1, "16:1"}, {Cmp32To1, "32:1"},
}}

func (v Compression) String() string { return compressionTable.str(v) }

// BatchRate is the FIFO batch data rate of the accelerometer or gyroscope.
type BatchRate uint8

const (
	NotBatched      BatchRate = 0x00
	BatchedAt12Hz5  BatchRate = 0x01
	BatchedAt26Hz   BatchRate = 0x02
	BatchedAt52Hz   BatchRate = 0x03
	BatchedAt104Hz  BatchRate = 0x04
	BatchedAt208Hz  BatchRate = 0x05
	BatchedAt417Hz  BatchRate = 0x06
	BatchedAt833Hz  BatchRate = 0x07
	BatchedAt1667Hz BatchRate = 0x08
	BatchedAt3333Hz BatchRate = 0x09
	BatchedAt6667Hz BatchRate = 0x0A
	BatchedAt6Hz5   BatchRate = 0x0B
)

var batchRateTable = enumTable[BatchRate]{"bdr", []enumValue[BatchRate]{
	{NotBatched, "off"}, {BatchedAt12Hz5, "12Hz5"}, {BatchedAt26Hz, "26Hz"},
	{BatchedAt52Hz, "52Hz"}, {BatchedAt104Hz, "104Hz"}, {BatchedAt208Hz, "208Hz"},
	{BatchedAt417Hz, "417Hz"}, {BatchedAt833Hz, "833Hz"}, {BatchedAt1667Hz, "1667Hz"},
	{BatchedAt3333Hz, "3333Hz"}, {BatchedAt6667Hz, "6667Hz"}, {BatchedAt6Hz5, "6Hz5"},
}}

func (v BatchRate) String() string { return batchRateTable.str(v) }

// ParseBatchRate accepts names such as "104Hz" or "off".
func ParseBatchRate(s string) (BatchRate, error) { return batchRateTable.parse(s) }

// FIFOMode is the FIFO operating mode.
type FIFOMode uint8

const (
	BypassMode         FIFOMode = 0
	FIFOModeStop       FIFOMode = 1
	StreamToFIFOMode   FIFOMode = 3
	BypassToStreamMode FIFOMode = 4
	StreamMode         FIFOMode = 6
	BypassToFIFOMode   FIFOMode = 7
)

var fifoModeTable = enumTable[FIFOMode]{"fifo_mode", []enumValue[FIFOMode]{
	{BypassMode, "bypass"}, {FIFOModeStop, "fifo"}, {StreamToFIFOMode, "stream-to-fifo"},
	{BypassToStreamMode, "bypass-to-stream"}, {StreamMode, "stream"},
	{BypassToFIFOMode, "bypass-to-fifo"},
}}

func (v FIFOMode) String() string { return fifoModeTable.str(v) }

// ParseFIFOMode accepts "bypass", "fifo", "stream" and the trigger modes.
func ParseFIFOMode(s string) (FIFOMode, error) { return fifoModeTable.parse(s) }

// TempBatch is the FIFO temperature batch rate.
type TempBatch uint8

const (
	TempNotBatched     TempBatch = 0
	TempBatchedAt1Hz6  TempBatch = 1
	TempBatchedAt12Hz5 TempBatch = 2
	TempBatchedAt52Hz  TempBatch = 3
)

var tempBatchTable = enumTable[TempBatch]{"odr_t_batch", []enumValue[TempBatch]{
	{TempNotBatched, "off"}, {TempBatchedAt1Hz6, "1Hz6"},
	{TempBatchedAt12Hz5, "12Hz5"}, {TempBatchedAt52Hz, "52Hz"},
}}

func (v TempBatch) String() string { return tempBatchTable.str(v) }

// TimestampDecimation is the FIFO timestamp batch decimation.
type TimestampDecimation uint8

const (
	NoDecimation TimestampDecimation = 0
	Dec1         TimestampDecimation = 1
	Dec8         TimestampDecimation = 2
	Dec32        TimestampDecimation = 3
)

var timestampDecimationTable = enumTable[TimestampDecimation]{"odr_ts_batch", []enumValue[TimestampDecimation]{
	{NoDecimation, "off"}, {Dec1, "1"}, {Dec8, "8"}, {Dec32, "32"},
}}

func (v TimestampDecimation) String() string { return timestampDecimationTable.str(v) }

// BatchCounterTrigger selects the sensor that drives the batch counter.
type BatchCounterTrigger uint8

const (
	XLBatchEvent   BatchCounterTrigger = 0
	GyroBatchEvent BatchCounterTrigger = 1
)

var batchCounterTriggerTable = enumTable[BatchCounterTrigger]{"trig_counter_bdr", []enumValue[BatchCounterTrigger]{
	{XLBatchEvent, "xl"}, {GyroBatchEvent, "gyro"},
}}

func (v BatchCounterTrigger) String() string { return batchCounterTriggerTable.str(v) }

// FIFOTag identifies the source of a FIFO word.
type FIFOTag uint8

const (
	GyroNCTag          FIFOTag = 0x01
	XLNCTag            FIFOTag = 0x02
	TemperatureTag     FIFOTag = 0x03
	TimestampTag       FIFOTag = 0x04
	CfgChangeTag       FIFOTag = 0x05
	XLNCT2Tag          FIFOTag = 0x06
	XLNCT1Tag          FIFOTag = 0x07
	XL2XCTag           FIFOTag = 0x08
	XL3XCTag           FIFOTag = 0x09
	GyroNCT2Tag        FIFOTag = 0x0A
	GyroNCT1Tag        FIFOTag = 0x0B
	Gyro2XCTag         FIFOTag = 0x0C
	Gyro3XCTag         FIFOTag = 0x0D
	SensorHubSlave0Tag FIFOTag = 0x0E
	SensorHubSlave1Tag FIFOTag = 0x0F
	SensorHubSlave2Tag FIFOTag = 0x10
	SensorHubSlave3Tag FIFOTag = 0x11
	StepCounterTag     FIFOTag = 0x12
	SensorHubNackTag   FIFOTag = 0x19
)

var fifoTagTable = enumTable[FIFOTag]{"tag_sensor", []enumValue[FIFOTag]{
	{GyroNCTag, "gyro"}, {XLNCTag, "xl"}, {TemperatureTag, "temperature"},
	{TimestampTag, "timestamp"}, {CfgChangeTag, "cfg-change"},
	{XLNCT2Tag, "xl-t-2"}, {XLNCT1Tag, "xl-t-1"}, {XL2XCTag, "xl-2xc"}, {XL3XCTag, "xl-3xc"},
	{GyroNCT2Tag, "gyro-t-2"}, {GyroNCT1Tag, "gyro-t-1"}, {Gyro2XCTag, "gyro-2xc"},
	{Gyro3XCTag, "gyro-3xc"},
	{SensorHubSlave0Tag, "slave0"}, {SensorHubSlave1Tag, "slave1"},
	{SensorHubSlave2Tag, "slave2"}, {SensorHubSlave3Tag, "slave3"},
	{StepCounterTag, "step-counter"}, {SensorHubNackTag, "sh-nack"},
}}

func (v FIFOTag) String() string { return fifoTagTable.str(v) }

// DENMode is the data enable trigger mode.
type DENMode uint8

const (
	DENDisable      DENMode = 0
	DENLevelFIFO    DENMode = 6
	DENLevelLatched DENMode = 3
	DENLevelTrigger DENMode = 2
	DENEdgeTrigger  DENMode = 4
)

var denModeTable = enumTable[DENMode]{"den_mode", []enumValue[DENMode]{
	{DENDisable, "disable"}, {DENLevelFIFO, "level-fifo"}, {DENLevelLatched, "level-latched"},
	{DENLevelTrigger, "level-trigger"}, {DENEdgeTrigger, "edge-trigger"},
}}

func (v DENMode) String() string { return denModeTable.str(v) }

// DENPolarity is the DEN pin polarity.
type DENPolarity uint8

const (
	DENActLow  DENPolarity = 0
	DENActHigh DENPolarity = 1
)

var denPolarityTable = enumTable[DENPolarity]{"den_lh", []enumValue[DENPolarity]{
	{DENActLow, "active-low"}, {DENActHigh, "active-high"},
}}

func (v DENPolarity) String() string { return denPolarityTable.str(v) }

// DENStamp selects which data carry the DEN marker.
type DENStamp uint8

const (
	StampInGYData   DENStamp = 0
	StampInXLData   DENStamp = 1
	StampInGYXLData DENStamp = 2
)

var denStampTable = enumTable[DENStamp]{"den_xl_g", []enumValue[DENStamp]{
	{StampInGYData, "gy"}, {StampInXLData, "xl"}, {StampInGYXLData, "gy-xl"},
}}

func (v DENStamp) String() string { return denStampTable.str(v) }

// PedoMode packs pedo_en (bit 0), pedo_adv_en (bit 1), fp_rejection_en
// (bit 4) and ad_det_en (bit 5).
type PedoMode uint8

const (
	PedoDisable         PedoMode = 0x00
	PedoBaseMode        PedoMode = 0x01
	PedoAdvMode         PedoMode = 0x03
	FalseStepRej        PedoMode = 0x13
	FalseStepRejAdvMode PedoMode = 0x33
)

var pedoModeTable = enumTable[PedoMode]{"pedo_md", []enumValue[PedoMode]{
	{PedoDisable, "disable"}, {PedoBaseMode, "base"}, {PedoAdvMode, "advanced"},
	{FalseStepRej, "false-step-rej"}, {FalseStepRejAdvMode, "false-step-rej-adv"},
}}

func (v PedoMode) String() string { return pedoModeTable.str(v) }

// ParsePedoMode accepts "disable", "base", "advanced" and the false step
// rejection variants.
func ParsePedoMode(s string) (PedoMode, error) { return pedoModeTable.parse(s) }

// PedoIntMode selects the step interrupt behaviour.
type PedoIntMode uint8

const (
	EveryStep     PedoIntMode = 0
	CountOverflow PedoIntMode = 1
)

var pedoIntModeTable = enumTable[PedoIntMode]{"carry_count_en", []enumValue[PedoIntMode]{
	{EveryStep, "every-step"}, {CountOverflow, "count-overflow"},
}}

func (v PedoIntMode) String() string { return pedoIntModeTable.str(v) }

// MagAxis maps an external magnetometer axis onto the device frame.
type MagAxis uint8

const (
	EqY    MagAxis = 0
	EqMinY MagAxis = 1
	EqX    MagAxis = 2
	EqMinX MagAxis = 3
	EqMinZ MagAxis = 4
	EqZ    MagAxis = 5
)

var magAxisTable = enumTable[MagAxis]{"mag_axis", []enumValue[MagAxis]{
	{EqY, "y"}, {EqMinY, "-y"}, {EqX, "x"}, {EqMinX, "-x"}, {EqMinZ, "-z"}, {EqZ, "z"},
}}

func (v MagAxis) String() string { return magAxisTable.str(v) }

// LongCounterClear is the FSM long counter clear state.
type LongCounterClear uint8

const (
	LCNormal    LongCounterClear = 0
	LCClear     LongCounterClear = 1
	LCClearDone LongCounterClear = 2
)

var longCounterClearTable = enumTable[LongCounterClear]{"fsm_lc_clr", []enumValue[LongCounterClear]{
	{LCNormal, "normal"}, {LCClear, "clear"}, {LCClearDone, "clear-done"},
}}

func (v LongCounterClear) String() string { return longCounterClearTable.str(v) }

// FSMDataRate is the finite state machine ODR.
type FSMDataRate uint8

const (
	FSMODR12Hz5 FSMDataRate = 0
	FSMODR26Hz  FSMDataRate = 1
	FSMODR52Hz  FSMDataRate = 2
	FSMODR104Hz FSMDataRate = 3
)

var fsmDataRateTable = enumTable[FSMDataRate]{"fsm_odr", []enumValue[FSMDataRate]{
	{FSMODR12Hz5, "12Hz5"}, {FSMODR26Hz, "26Hz"}, {FSMODR52Hz, "52Hz"}, {FSMODR104Hz, "104Hz"},
}}

func (v FSMDataRate) String() string { return fsmDataRateTable.str(v) }

// SHSlaves is the number of external sensors polled by the sensor hub.
type SHSlaves uint8

const (
	Slv0    SHSlaves = 0
	Slv01   SHSlaves = 1
	Slv012  SHSlaves = 2
	Slv0123 SHSlaves = 3
)

var shSlavesTable = enumTable[SHSlaves]{"aux_sens_on", []enumValue[SHSlaves]{
	{Slv0, "1"}, {Slv01, "2"}, {Slv012, "3"}, {Slv0123, "4"},
}}

func (v SHSlaves) String() string { return shSlavesTable.str(v) }

// SHPullUp selects the sensor hub bus pull-ups.
type SHPullUp uint8

const (
	ExtPullUp      SHPullUp = 0
	InternalPullUp SHPullUp = 1
)

var shPullUpTable = enumTable[SHPullUp]{"shub_pu_en", []enumValue[SHPullUp]{
	{ExtPullUp, "external"}, {InternalPullUp, "internal"},
}}

func (v SHPullUp) String() string { return shPullUpTable.str(v) }

// SHTrigger selects the sensor hub trigger.
type SHTrigger uint8

const (
	XLGYDrdy     SHTrigger = 0
	ExtOnInt2Pin SHTrigger = 1
)

var shTriggerTable = enumTable[SHTrigger]{"start_config", []enumValue[SHTrigger]{
	{ExtOnInt2Pin, "int2"}, {XLGYDrdy, "drdy"},
}}

func (v SHTrigger) String() string { return shTriggerTable.str(v) }

// SHWriteMode selects when slave 0 writes are performed.
type SHWriteMode uint8

const (
	EachSHCycle    SHWriteMode = 0
	OnlyFirstCycle SHWriteMode = 1
)

var shWriteModeTable = enumTable[SHWriteMode]{"write_once", []enumValue[SHWriteMode]{
	{EachSHCycle, "each-cycle"}, {OnlyFirstCycle, "first-cycle"},
}}

func (v SHWriteMode) String() string { return shWriteModeTable.str(v) }

// SHDataRate is the sensor hub polling rate.
type SHDataRate uint8

const (
	SHODR104Hz SHDataRate = 0
	SHODR52Hz  SHDataRate = 1
	SHODR26Hz  SHDataRate = 2
	SHODR13Hz  SHDataRate = 3
)

var shDataRateTable = enumTable[SHDataRate]{"shub_odr", []enumValue[SHDataRate]{
	{SHODR104Hz, "104Hz"}, {SHODR52Hz, "52Hz"}, {SHODR26Hz, "26Hz"}, {SHODR13Hz, "13Hz"},
}}

func (v SHDataRate) String() string { return shDataRateTable.str(v) }
