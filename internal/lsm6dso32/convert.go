// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

// Sensitivities from the datasheet.
const (
	mgPerLSB4g  float32 = 0.122
	mgPerLSB8g  float32 = 0.244
	mgPerLSB16g float32 = 0.488
	mgPerLSB32g float32 = 0.976

	mdpsPerLSB125  float32 = 4.375
	mdpsPerLSB250  float32 = 8.75
	mdpsPerLSB500  float32 = 17.50
	mdpsPerLSB1000 float32 = 35.0
	mdpsPerLSB2000 float32 = 70.0

	nsPerTimestampLSB float32 = 25000.0
)

func FromFs4ToMg(lsb int16) float32  { return float32(lsb) * mgPerLSB4g }
func FromFs8ToMg(lsb int16) float32  { return float32(lsb) * mgPerLSB8g }
func FromFs16ToMg(lsb int16) float32 { return float32(lsb) * mgPerLSB16g }
func FromFs32ToMg(lsb int16) float32 { return float32(lsb) * mgPerLSB32g }

func FromFs125ToMdps(lsb int16) float32  { return float32(lsb) * mdpsPerLSB125 }
func FromFs250ToMdps(lsb int16) float32  { return float32(lsb) * mdpsPerLSB250 }
func FromFs500ToMdps(lsb int16) float32  { return float32(lsb) * mdpsPerLSB500 }
func FromFs1000ToMdps(lsb int16) float32 { return float32(lsb) * mdpsPerLSB1000 }
func FromFs2000ToMdps(lsb int16) float32 { return float32(lsb) * mdpsPerLSB2000 }

// FromLSBToCelsius converts OUT_TEMP (256 LSB/°C, 0 at 25 °C).
func FromLSBToCelsius(lsb int16) float32 { return float32(lsb)/256.0 + 25.0 }

// FromLSBToNsec converts timestamp ticks to nanoseconds.
func FromLSBToNsec(lsb uint32) float32 { return float32(lsb) * nsPerTimestampLSB }

// ToMg converts a raw accelerometer sample at this range to mg.
func (v XLFullScale) ToMg(lsb int16) float32 {
	switch v {
	case XL8g:
		return FromFs8ToMg(lsb)
	case XL16g:
		return FromFs16ToMg(lsb)
	case XL32g:
		return FromFs32ToMg(lsb)
	}
	return FromFs4ToMg(lsb)
}

// ToMdps converts a raw gyroscope sample at this range to mdps.
func (v GYFullScale) ToMdps(lsb int16) float32 {
	switch v {
	case GY125dps:
		return FromFs125ToMdps(lsb)
	case GY500dps:
		return FromFs500ToMdps(lsb)
	case GY1000dps:
		return FromFs1000ToMdps(lsb)
	case GY2000dps:
		return FromFs2000ToMdps(lsb)
	}
	return FromFs250ToMdps(lsb)
}
