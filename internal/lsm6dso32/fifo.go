// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package lsm6dso32

var (
	fifoWtmHigh    = field{RegFIFOCtrl2, 0, 1}
	uncoptrRate    = field{RegFIFOCtrl2, 1, 2}
	odrChgEn       = field{RegFIFOCtrl2, 4, 1}
	fifoComprRTEn  = field{RegFIFOCtrl2, 6, 1}
	stopOnWtm      = field{RegFIFOCtrl2, 7, 1}
	bdrXL          = field{RegFIFOCtrl3, 0, 4}
	bdrGY          = field{RegFIFOCtrl3, 4, 4}
	fifoMode       = field{RegFIFOCtrl4, 0, 3}
	odrTBatch      = field{RegFIFOCtrl4, 4, 2}
	odrTSBatch     = field{RegFIFOCtrl4, 6, 2}
	cntBDRThHigh   = field{RegCounterBDRReg1, 0, 3}
	trigCounterBDR = field{RegCounterBDRReg1, 5, 1}
	rstCounterBDR  = field{RegCounterBDRReg1, 6, 1}
	tagSensor      = field{RegFIFODataOutTag, 3, 5}
	fifoComprEn    = field{RegEmbFuncEnB, 3, 1}
	fifoComprInit  = field{RegEmbFuncInitB, 3, 1}
	pedoFIFOEn     = field{RegEmbFuncFIFOCfg, 6, 1}
)

// FIFO_STATUS2 bits.
const (
	fifoOvrLatched = 1 << 3
	counterBDRIA   = 1 << 4
	fifoFullIA     = 1 << 5
	fifoOvrIA      = 1 << 6
	fifoWtmIA      = 1 << 7
)

// batch_ext_sens_n_en in SLVn_CONFIG.
const batchExtSensEn = 3

// MaxFIFOWatermark is the largest 9-bit watermark.
const MaxFIFOWatermark = 0x1FF

// MaxBatchCounterThreshold is the largest 11-bit batch counter threshold.
const MaxBatchCounterThreshold = 0x7FF

// SetFIFOWatermark sets the 9-bit watermark in FIFO_CTRL1 and FIFO_CTRL2.
func (d *Dev) SetFIFOWatermark(v uint16) error {
	if v > MaxFIFOWatermark {
		return invalidf("fifo watermark %d > %d", v, MaxFIFOWatermark)
	}
	ctrl2, err := d.readByte(RegFIFOCtrl2)
	if err != nil {
		return err
	}
	if err := d.writeByte(RegFIFOCtrl1, uint8(v)); err != nil {
		return err
	}
	return d.writeByte(RegFIFOCtrl2, fifoWtmHigh.set(ctrl2, uint8(v>>8)))
}

func (d *Dev) GetFIFOWatermark() (uint16, error) {
	lo, err := d.readByte(RegFIFOCtrl1)
	if err != nil {
		return 0, err
	}
	hi, err := d.readField(fifoWtmHigh)
	return uint16(hi)<<8 | uint16(lo), err
}

// SetCompressionInit requests re-initialization of the compression
// algorithm.
func (d *Dev) SetCompressionInit(on bool) error {
	return d.writeBankFlag(EmbeddedFuncBank, fifoComprInit, on)
}

func (d *Dev) GetCompressionInit() (bool, error) {
	return d.readBankFlag(EmbeddedFuncBank, fifoComprInit)
}

// SetCompressionAlgo enables compression in EMB_FUNC_EN_B, then sets the
// real-time enable and uncompressed rate in FIFO_CTRL2.
func (d *Dev) SetCompressionAlgo(v Compression) error {
	if err := compressionTable.check(v); err != nil {
		return err
	}
	on := (uint8(v) & 0x04) >> 2
	if err := d.writeBankField(EmbeddedFuncBank, fifoComprEn, on); err != nil {
		return err
	}
	b, err := d.readByte(RegFIFOCtrl2)
	if err != nil {
		return err
	}
	b = fifoComprRTEn.set(b, on)
	b = uncoptrRate.set(b, uint8(v)&0x03)
	return d.writeByte(RegFIFOCtrl2, b)
}

func (d *Dev) GetCompressionAlgo() (Compression, error) {
	b, err := d.readByte(RegFIFOCtrl2)
	return decode(d, &compressionTable, fifoComprRTEn.get(b)<<2|uncoptrRate.get(b)), err
}

// SetCompressionRealTime toggles fifo_compr_rt_en alone.
func (d *Dev) SetCompressionRealTime(on bool) error  { return d.writeFlag(fifoComprRTEn, on) }
func (d *Dev) GetCompressionRealTime() (bool, error) { return d.readFlag(fifoComprRTEn) }

// SetFIFOVirtualSensODRChange batches ODR changes as CFG_CHANGE words.
func (d *Dev) SetFIFOVirtualSensODRChange(on bool) error  { return d.writeFlag(odrChgEn, on) }
func (d *Dev) GetFIFOVirtualSensODRChange() (bool, error) { return d.readFlag(odrChgEn) }

// SetFIFOStopOnWatermark limits FIFO depth to the watermark.
func (d *Dev) SetFIFOStopOnWatermark(on bool) error  { return d.writeFlag(stopOnWtm, on) }
func (d *Dev) GetFIFOStopOnWatermark() (bool, error) { return d.readFlag(stopOnWtm) }

func (d *Dev) SetFIFOXLBatch(v BatchRate) error {
	if err := batchRateTable.check(v); err != nil {
		return err
	}
	return d.writeField(bdrXL, uint8(v))
}

func (d *Dev) GetFIFOXLBatch() (BatchRate, error) {
	v, err := d.readField(bdrXL)
	return decode(d, &batchRateTable, v), err
}

func (d *Dev) SetFIFOGYBatch(v BatchRate) error {
	if err := batchRateTable.check(v); err != nil {
		return err
	}
	return d.writeField(bdrGY, uint8(v))
}

func (d *Dev) GetFIFOGYBatch() (BatchRate, error) {
	v, err := d.readField(bdrGY)
	return decode(d, &batchRateTable, v), err
}

func (d *Dev) SetFIFOMode(v FIFOMode) error {
	if err := fifoModeTable.check(v); err != nil {
		return err
	}
	return d.writeField(fifoMode, uint8(v))
}

func (d *Dev) GetFIFOMode() (FIFOMode, error) {
	v, err := d.readField(fifoMode)
	return decode(d, &fifoModeTable, v), err
}

func (d *Dev) SetFIFOTempBatch(v TempBatch) error {
	if err := tempBatchTable.check(v); err != nil {
		return err
	}
	return d.writeField(odrTBatch, uint8(v))
}

func (d *Dev) GetFIFOTempBatch() (TempBatch, error) {
	v, err := d.readField(odrTBatch)
	return decode(d, &tempBatchTable, v), err
}

func (d *Dev) SetFIFOTimestampDecimation(v TimestampDecimation) error {
	if err := timestampDecimationTable.check(v); err != nil {
		return err
	}
	return d.writeField(odrTSBatch, uint8(v))
}

func (d *Dev) GetFIFOTimestampDecimation() (TimestampDecimation, error) {
	v, err := d.readField(odrTSBatch)
	return decode(d, &timestampDecimationTable, v), err
}

func (d *Dev) SetFIFOCntEventBatch(v BatchCounterTrigger) error {
	if err := batchCounterTriggerTable.check(v); err != nil {
		return err
	}
	return d.writeField(trigCounterBDR, uint8(v))
}

func (d *Dev) GetFIFOCntEventBatch() (BatchCounterTrigger, error) {
	v, err := d.readField(trigCounterBDR)
	return decode(d, &batchCounterTriggerTable, v), err
}

// SetRstBatchCounter resets the internal batch counter.
func (d *Dev) SetRstBatchCounter(on bool) error  { return d.writeFlag(rstCounterBDR, on) }
func (d *Dev) GetRstBatchCounter() (bool, error) { return d.readFlag(rstCounterBDR) }

// SetBatchCounterThreshold sets the 11-bit batch counter threshold across
// COUNTER_BDR_REG1 and COUNTER_BDR_REG2.
func (d *Dev) SetBatchCounterThreshold(v uint16) error {
	if v > MaxBatchCounterThreshold {
		return invalidf("batch counter threshold %d > %d", v, MaxBatchCounterThreshold)
	}
	reg1, err := d.readByte(RegCounterBDRReg1)
	if err != nil {
		return err
	}
	if err := d.writeByte(RegCounterBDRReg1, cntBDRThHigh.set(reg1, uint8(v>>8))); err != nil {
		return err
	}
	return d.writeByte(RegCounterBDRReg2, uint8(v))
}

func (d *Dev) GetBatchCounterThreshold() (uint16, error) {
	hi, err := d.readField(cntBDRThHigh)
	if err != nil {
		return 0, err
	}
	lo, err := d.readByte(RegCounterBDRReg2)
	return uint16(hi)<<8 | uint16(lo), err
}

// FIFOStatus is a decoded FIFO_STATUS1/FIFO_STATUS2 pair.
type FIFOStatus struct {
	Level          uint16
	Watermark      bool
	Overrun        bool
	Full           bool
	CounterBDR     bool
	OverrunLatched bool
}

// GetFIFOStatus reads both status registers in one transaction.
func (d *Dev) GetFIFOStatus() (FIFOStatus, error) {
	var b [2]byte
	if err := d.ReadRegs(RegFIFOStatus1, b[:]); err != nil {
		return FIFOStatus{}, err
	}
	return FIFOStatus{
		Level:          uint16(b[1]&0x03)<<8 | uint16(b[0]),
		Watermark:      b[1]&fifoWtmIA != 0,
		Overrun:        b[1]&fifoOvrIA != 0,
		Full:           b[1]&fifoFullIA != 0,
		CounterBDR:     b[1]&counterBDRIA != 0,
		OverrunLatched: b[1]&fifoOvrLatched != 0,
	}, nil
}

// GetFIFODataLevel returns the number of unread FIFO words.
func (d *Dev) GetFIFODataLevel() (uint16, error) {
	s, err := d.GetFIFOStatus()
	return s.Level, err
}

func (d *Dev) GetFIFOFullFlag() (bool, error) {
	s, err := d.GetFIFOStatus()
	return s.Full, err
}

func (d *Dev) GetFIFOOverrunFlag() (bool, error) {
	s, err := d.GetFIFOStatus()
	return s.Overrun, err
}

func (d *Dev) GetFIFOWatermarkFlag() (bool, error) {
	s, err := d.GetFIFOStatus()
	return s.Watermark, err
}

// GetFIFOSensorTag decodes the tag of the next FIFO word.
func (d *Dev) GetFIFOSensorTag() (FIFOTag, error) {
	v, err := d.readField(tagSensor)
	return decode(d, &fifoTagTable, v), err
}

// FIFOWord is one 7-byte FIFO entry.
type FIFOWord struct {
	Tag  FIFOTag
	Cnt  uint8 // tag counter, 2 bits
	Data [6]byte
}

// ReadFIFOWord pops one word: FIFO_DATA_OUT_TAG and the six data bytes.
func (d *Dev) ReadFIFOWord() (FIFOWord, error) {
	var b [7]byte
	if err := d.ReadRegs(RegFIFODataOutTag, b[:]); err != nil {
		return FIFOWord{}, err
	}
	w := FIFOWord{
		Tag: decode(d, &fifoTagTable, tagSensor.get(b[0])),
		Cnt: (b[0] >> 1) & 0x03,
	}
	copy(w.Data[:], b[1:])
	return w, nil
}

// Vec decodes the data bytes as three little-endian int16.
func (w FIFOWord) Vec() [3]int16 {
	return [3]int16{
		int16(uint16(w.Data[0]) | uint16(w.Data[1])<<8),
		int16(uint16(w.Data[2]) | uint16(w.Data[3])<<8),
		int16(uint16(w.Data[4]) | uint16(w.Data[5])<<8),
	}
}

// SetFIFOPedoBatch batches the step counter in the FIFO.
func (d *Dev) SetFIFOPedoBatch(on bool) error {
	return d.writeBankFlag(EmbeddedFuncBank, pedoFIFOEn, on)
}

func (d *Dev) GetFIFOPedoBatch() (bool, error) {
	return d.readBankFlag(EmbeddedFuncBank, pedoFIFOEn)
}

// SetSHBatchSlave enables FIFO batching of sensor hub slave n (0..3).
func (d *Dev) SetSHBatchSlave(n int, on bool) error {
	f, err := slaveConfigField(n, batchExtSensEn, 1)
	if err != nil {
		return err
	}
	return d.writeBankFlag(SensorHubBank, f, on)
}

func (d *Dev) GetSHBatchSlave(n int) (bool, error) {
	f, err := slaveConfigField(n, batchExtSensEn, 1)
	if err != nil {
		return false, err
	}
	return d.readBankFlag(SensorHubBank, f)
}
