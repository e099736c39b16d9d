// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

func members[T ~uint8](t *enumTable[T]) []T {
	out := make([]T, len(t.values))
	for i, e := range t.values {
		out[i] = e.v
	}
	return out
}

// Named members of each enum, in table order.
var (
	XLFullScaleValues         = members(&xlFullScaleTable)
	XLDataRateValues          = members(&xlDataRateTable)
	GYFullScaleValues         = members(&gyFullScaleTable)
	GYDataRateValues          = members(&gyDataRateTable)
	OffsetWeightValues        = members(&offsetWeightTable)
	RoundingValues            = members(&roundingTable)
	DataReadyModeValues       = members(&dataReadyModeTable)
	XLSelfTestValues          = members(&xlSelfTestTable)
	GYSelfTestValues          = members(&gySelfTestTable)
	FTypeValues               = members(&ftypeTable)
	HPSlopeXLValues           = members(&hpSlopeXLTable)
	SlopeFDSValues            = members(&slopeFDSTable)
	HPMGValues                = members(&hpmgTable)
	SDOPullUpValues           = members(&sdoPullUpTable)
	SPIWireValues             = members(&spiWireTable)
	I2CModeValues             = members(&i2cModeTable)
	I3CModeValues             = members(&i3cModeTable)
	Int1PullDownValues        = members(&int1PullDownTable)
	PinModeValues             = members(&pinModeTable)
	PinPolarityValues         = members(&pinPolarityTable)
	IntNotificationValues     = members(&intNotificationTable)
	WakeThsWeightValues       = members(&wakeThsWeightTable)
	ActPinNotificationValues  = members(&actPinNotificationTable)
	ActModeValues             = members(&actModeTable)
	TapPriorityValues         = members(&tapPriorityTable)
	TapModeValues             = members(&tapModeTable)
	SixDThresholdValues       = members(&sixDThresholdTable)
	FFThresholdValues         = members(&ffThresholdTable)
	CompressionValues         = members(&compressionTable)
	BatchRateValues           = members(&batchRateTable)
	FIFOModeValues            = members(&fifoModeTable)
	TempBatchValues           = members(&tempBatchTable)
	TimestampDecimationValues = members(&timestampDecimationTable)
	BatchCounterTriggerValues = members(&batchCounterTriggerTable)
	DENModeValues             = members(&denModeTable)
	DENPolarityValues         = members(&denPolarityTable)
	DENStampValues            = members(&denStampTable)
	PedoModeValues            = members(&pedoModeTable)
	PedoIntModeValues         = members(&pedoIntModeTable)
	MagAxisValues             = members(&magAxisTable)
	LongCounterClearValues    = members(&longCounterClearTable)
	FSMDataRateValues         = members(&fsmDataRateTable)
	SHSlavesValues            = members(&shSlavesTable)
	SHPullUpValues            = members(&shPullUpTable)
	SHTriggerValues           = members(&shTriggerTable)
	SHWriteModeValues         = members(&shWriteModeTable)
	SHDataRateValues          = members(&shDataRateTable)
)
