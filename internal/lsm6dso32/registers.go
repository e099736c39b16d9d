// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

// I2C addresses, selected by the SDO/SA0 pin.
const (
	I2CAddrLow  uint16 = 0x6A
	I2CAddrHigh uint16 = 0x6B
)

// DeviceID is the WHO_AM_I value.
const DeviceID = 0x6C

// Primary (user) bank.
const (
	RegFuncCfgAccess     = 0x01
	RegPinCtrl           = 0x02
	RegFIFOCtrl1         = 0x07
	RegFIFOCtrl2         = 0x08
	RegFIFOCtrl3         = 0x09
	RegFIFOCtrl4         = 0x0A
	RegCounterBDRReg1    = 0x0B
	RegCounterBDRReg2    = 0x0C
	RegInt1Ctrl          = 0x0D
	RegInt2Ctrl          = 0x0E
	RegWhoAmI            = 0x0F
	RegCtrl1XL           = 0x10
	RegCtrl2G            = 0x11
	RegCtrl3C            = 0x12
	RegCtrl4C            = 0x13
	RegCtrl5C            = 0x14
	RegCtrl6C            = 0x15
	RegCtrl7G            = 0x16
	RegCtrl8XL           = 0x17
	RegCtrl9XL           = 0x18
	RegCtrl10C           = 0x19
	RegAllIntSrc         = 0x1A
	RegWakeUpSrc         = 0x1B
	RegTapSrc            = 0x1C
	RegD6DSrc            = 0x1D
	RegStatusReg         = 0x1E
	RegOutTempL          = 0x20
	RegOutTempH          = 0x21
	RegOutXLG            = 0x22
	RegOutXLA            = 0x28
	RegEmbFuncStatusMain = 0x35
	RegFSMStatusAMain    = 0x36
	RegFSMStatusBMain    = 0x37
	RegStatusMasterMain  = 0x39
	RegFIFOStatus1       = 0x3A
	RegFIFOStatus2       = 0x3B
	RegTimestamp0        = 0x40
	RegTapCfg0           = 0x56
	RegTapCfg1           = 0x57
	RegTapCfg2           = 0x58
	RegTapThs6D          = 0x59
	RegIntDur2           = 0x5A
	RegWakeUpThs         = 0x5B
	RegWakeUpDur         = 0x5C
	RegFreeFall          = 0x5D
	RegMD1Cfg            = 0x5E
	RegMD2Cfg            = 0x5F
	RegI3CBusAvb         = 0x62
	RegInternalFreqFine  = 0x63
	RegXOfsUsr           = 0x73
	RegYOfsUsr           = 0x74
	RegZOfsUsr           = 0x75
	RegFIFODataOutTag    = 0x78
	RegFIFODataOutXL     = 0x79
)

// Embedded functions bank.
const (
	RegPageSel           = 0x02
	RegEmbFuncEnA        = 0x04
	RegEmbFuncEnB        = 0x05
	RegPageAddress       = 0x08
	RegPageValue         = 0x09
	RegEmbFuncInt1       = 0x0A
	RegFSMInt1A          = 0x0B
	RegFSMInt1B          = 0x0C
	RegEmbFuncInt2       = 0x0E
	RegFSMInt2A          = 0x0F
	RegFSMInt2B          = 0x10
	RegEmbFuncStatus     = 0x12
	RegFSMStatusA        = 0x13
	RegFSMStatusB        = 0x14
	RegPageRW            = 0x17
	RegEmbFuncFIFOCfg    = 0x44
	RegFSMEnableA        = 0x46
	RegFSMEnableB        = 0x47
	RegFSMLongCounterL   = 0x48
	RegFSMLongCounterH   = 0x49
	RegFSMLongCounterClr = 0x4A
	RegFSMOuts1          = 0x4C
	RegEmbFuncODRCfgB    = 0x5F
	RegStepCounterL      = 0x62
	RegStepCounterH      = 0x63
	RegEmbFuncSrc        = 0x64
	RegEmbFuncInitA      = 0x66
	RegEmbFuncInitB      = 0x67
)

// Sensor hub bank.
const (
	RegSensorHub1    = 0x02
	RegMasterConfig  = 0x14
	RegSlv0Add       = 0x15
	RegSlv0Subadd    = 0x16
	RegSlv0Config    = 0x17
	RegSlv1Add       = 0x18
	RegSlv1Subadd    = 0x19
	RegSlv1Config    = 0x1A
	RegSlv2Add       = 0x1B
	RegSlv2Subadd    = 0x1C
	RegSlv2Config    = 0x1D
	RegSlv3Add       = 0x1E
	RegSlv3Subadd    = 0x1F
	RegSlv3Config    = 0x20
	RegDatawriteSlv0 = 0x21
	RegStatusMaster  = 0x22
)

// Paged (advanced features) addresses, page in bits 11:8.
const (
	PageMagSensitivityL  uint16 = 0x0BA
	PageMagSensitivityH  uint16 = 0x0BB
	PageMagOffXL         uint16 = 0x0C0
	PageMagSiXXL         uint16 = 0x0C6
	PageMagCfgA          uint16 = 0x0D4
	PageMagCfgB          uint16 = 0x0D5
	PageFSMLCTimeoutL    uint16 = 0x17A
	PageFSMLCTimeoutH    uint16 = 0x17B
	PageFSMPrograms      uint16 = 0x17C
	PageFSMStartAddL     uint16 = 0x17E
	PageFSMStartAddH     uint16 = 0x17F
	PagePedoCmdReg       uint16 = 0x183
	PagePedoDebStepsConf uint16 = 0x184
	PagePedoSCDeltaTL    uint16 = 0x1D0
	PagePedoSCDeltaTH    uint16 = 0x1D1
)

// SensorHubDataLen is the size of the SENSOR_HUB_1..18 window.
const SensorHubDataLen = 18

// FSMOutputs is the number of FSM_OUTS registers.
const FSMOutputs = 16
