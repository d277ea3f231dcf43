// Package tempmon wraps the TEMPMON temperature sensor register file. The
// sensor reports counts that are converted to milli-degrees Celsius through
// a factory calibration word.
//
// The sensor assumes the bandgap reference and the RTC clock are up and
// settled; nothing here checks that.
package tempmon

import (
	"errors"

	"github.com/hwblocks/edma/mmio"
)

// TEMPSENSE0 fields.
const (
	sense0PowerDown   = 1 << 0
	sense0MeasureTemp = 1 << 1
	sense0Finished    = 1 << 2
	sense0TempCntMask = 0xFFF << 8
	sense0AlarmMask   = 0xFFF << 20
)

// TEMPSENSE1 fields.
const sense1MeasureFreqMask = 0xFFFF

// TEMPSENSE2 fields.
const (
	sense2LowAlarmMask   = 0xFFF
	sense2PanicAlarmMask = 0xFFF << 16
)

// ErrPowerDown reports that the sensor is power gated. Call PowerUp and
// retry.
var ErrPowerDown = errors.New("tempmon: sensor is powered down")

// ErrWouldBlock reports that a measurement is still in flight.
var ErrWouldBlock = errors.New("tempmon: measurement not finished")

// Registers is the TEMPMON register file plus the calibration fuse word.
type Registers struct {
	Sense0 mmio.Reg32
	Sense1 mmio.Reg32
	Sense2 mmio.Reg32

	// Calibration mirrors the OCOTP ANA1 fuse word: room-temperature
	// count in bits 20..31, hot count in bits 8..19, hot temperature in
	// degrees Celsius in bits 0..7.
	Calibration mmio.Reg32
}

// An Uninitialized temperature monitor. Init derives the conversion
// constants and powers the sensor up.
type Uninitialized struct {
	regs *Registers
}

// New wraps a register file.
func New(regs *Registers) Uninitialized {
	return Uninitialized{regs: regs}
}

// Init reads the calibration word and returns a ready monitor.
func (u Uninitialized) Init() *TempMon {
	cal := u.regs.Calibration.Load()

	roomCount := int32(cal >> 20)
	roomTemp := int32(25_000)
	hotCount := int32((cal >> 8) & 0xFFF)
	hotTemp := int32(cal&0xFF) * 1_000

	t := &TempMon{
		regs:     u.regs,
		scaler:   (hotTemp - roomTemp) / (roomCount - hotCount),
		hotCount: hotCount,
		hotTemp:  hotTemp,
	}
	t.PowerUp()
	return t
}

// InitWithMeasureFreq initializes the monitor and programs the automatic
// measurement frequency. The pause between measurements is the field value
// multiplied by the RTC period; zero means single measurements only.
func (u Uninitialized) InitWithMeasureFreq(freq uint16) *TempMon {
	t := u.Init()
	t.SetMeasureFrequency(freq)
	return t
}

// A TempMon is an initialized temperature monitor. Temperatures are in
// milli-degrees Celsius (25500 m°C = 25.5 °C).
type TempMon struct {
	regs     *Registers
	scaler   int32
	hotCount int32
	hotTemp  int32
}

// convert turns a raw count into m°C.
func (t *TempMon) convert(cnt int32) int32 {
	return t.hotTemp - (cnt-t.hotCount)*t.scaler
}

// decode turns m°C back into a raw count.
func (t *TempMon) decode(milliC int32) uint32 {
	v := (milliC - t.hotTemp) / t.scaler
	return uint32(t.hotCount - v)
}

// MeasureTemp triggers a measurement and returns its result once the
// sensor reports it. It never blocks: ErrPowerDown when the sensor is
// gated, ErrWouldBlock while the measurement is in flight.
func (t *TempMon) MeasureTemp() (int32, error) {
	if !t.IsPoweredUp() {
		return 0, ErrPowerDown
	}

	if t.regs.Sense0.Bits(sense0MeasureTemp) == 0 {
		t.regs.Sense0.SetBits(sense0MeasureTemp)
	}

	if t.regs.Sense0.Bits(sense0Finished) == 0 {
		return 0, ErrWouldBlock
	}

	// Clearing the start bit arms the next call's measurement.
	t.regs.Sense0.ClearBits(sense0MeasureTemp)

	cnt := int32(t.regs.Sense0.Bits(sense0TempCntMask) >> 8)
	return t.convert(cnt), nil
}

// Temp returns the last value the sensor captured, without triggering a
// new measurement.
func (t *TempMon) Temp() (int32, error) {
	if !t.IsPoweredUp() {
		return 0, ErrPowerDown
	}

	cnt := int32(t.regs.Sense0.Bits(sense0TempCntMask) >> 8)
	return t.convert(cnt), nil
}

// Start begins the measurement process. With a zero measurement frequency
// this is a single conversion.
func (t *TempMon) Start() error {
	if !t.IsPoweredUp() {
		return ErrPowerDown
	}

	t.regs.Sense0.SetBits(sense0MeasureTemp)
	return nil
}

// Stop halts repeated measurements.
func (t *TempMon) Stop() {
	t.regs.Sense0.ClearBits(sense0MeasureTemp)
}

// IsPoweredUp reports whether the sensor is powered.
func (t *TempMon) IsPoweredUp() bool {
	return t.regs.Sense0.Bits(sense0PowerDown) == 0
}

// PowerDown gates the sensor.
func (t *TempMon) PowerDown() {
	t.regs.Sense0.SetBits(sense0PowerDown)
}

// PowerUp ungates the sensor.
func (t *TempMon) PowerUp() {
	t.regs.Sense0.ClearBits(sense0PowerDown)
}

// SetAlarmValues programs the low, high, and panic alarm thresholds in
// m°C.
func (t *TempMon) SetAlarmValues(lowMilliC, highMilliC, panicMilliC int32) {
	t.regs.Sense0.ReplaceBits(sense0AlarmMask, t.decode(highMilliC)<<20)
	t.regs.Sense2.ReplaceBits(sense2LowAlarmMask, t.decode(lowMilliC))
	t.regs.Sense2.ReplaceBits(sense2PanicAlarmMask, t.decode(panicMilliC)<<16)
}

// AlarmValues returns the programmed low, high, and panic thresholds in
// m°C.
func (t *TempMon) AlarmValues() (low, high, panicAlarm int32) {
	high = t.convert(int32(t.regs.Sense0.Bits(sense0AlarmMask) >> 20))
	low = t.convert(int32(t.regs.Sense2.Bits(sense2LowAlarmMask)))
	panicAlarm = t.convert(int32(t.regs.Sense2.Bits(sense2PanicAlarmMask) >> 16))
	return low, high, panicAlarm
}

// SetMeasureFrequency programs how many RTC clocks to wait before the
// sensor repeats a measurement on its own.
func (t *TempMon) SetMeasureFrequency(freq uint16) {
	t.regs.Sense1.ReplaceBits(sense1MeasureFreqMask, uint32(freq))
}

// MeasureFrequency returns the programmed repeat interval field.
func (t *TempMon) MeasureFrequency() uint16 {
	return uint16(t.regs.Sense1.Bits(sense1MeasureFreqMask))
}
