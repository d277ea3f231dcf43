package tempmon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwblocks/edma/tempmon"
)

const (
	finishedBit    = 1 << 2
	measureBit     = 1 << 1
	tempCountShift = 8
)

// Calibration word: room count 1580, hot count 1360, hot temp 85 °C.
// scaler = (85000 - 25000) / (1580 - 1360) = 272 m°C per count.
const calibration = 1580<<20 | 1360<<8 | 85

func newMonitor() (*tempmon.TempMon, *tempmon.Registers) {
	regs := &tempmon.Registers{}
	regs.Calibration.Store(calibration)
	return tempmon.New(regs).Init(), regs
}

func finishMeasurement(regs *tempmon.Registers, count uint32) {
	regs.Sense0.ReplaceBits(0xFFF<<tempCountShift, count<<tempCountShift)
	regs.Sense0.SetBits(finishedBit)
}

func TestInitPowersUp(t *testing.T) {
	monitor, _ := newMonitor()

	assert.True(t, monitor.IsPoweredUp())
}

func TestConvertMatchesCalibration(t *testing.T) {
	tests := []struct {
		name   string
		count  uint32
		milliC int32
	}{
		{"hot count reads hot temp", 1360, 85_000},
		{"room count reads near room temp", 1580, 85_000 - 220*272},
		{"count above hot count reads hotter", 1300, 85_000 + 60*272},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monitor, regs := newMonitor()
			finishMeasurement(regs, tt.count)

			milliC, err := monitor.MeasureTemp()

			require.NoError(t, err)
			assert.Equal(t, tt.milliC, milliC)
		})
	}
}

func TestMeasureTempWouldBlockUntilFinished(t *testing.T) {
	monitor, regs := newMonitor()

	_, err := monitor.MeasureTemp()
	assert.ErrorIs(t, err, tempmon.ErrWouldBlock)

	// The first call triggered the measurement.
	assert.NotZero(t, regs.Sense0.Bits(measureBit))

	finishMeasurement(regs, 1400)

	milliC, err := monitor.MeasureTemp()
	require.NoError(t, err)
	assert.Equal(t, int32(85_000-40*272), milliC)

	// Acknowledging re-arms the next measurement.
	assert.Zero(t, regs.Sense0.Bits(measureBit))
}

func TestMeasureTempWhilePoweredDown(t *testing.T) {
	monitor, _ := newMonitor()
	monitor.PowerDown()

	_, err := monitor.MeasureTemp()
	assert.ErrorIs(t, err, tempmon.ErrPowerDown)

	err = monitor.Start()
	assert.ErrorIs(t, err, tempmon.ErrPowerDown)

	monitor.PowerUp()
	assert.NoError(t, monitor.Start())
}

func TestAlarmValuesRoundTrip(t *testing.T) {
	monitor, _ := newMonitor()

	monitor.SetAlarmValues(-5_000, 65_000, 95_000)

	low, high, panicAlarm := monitor.AlarmValues()

	// decode/convert round trips lose at most one scaler step.
	assert.InDelta(t, -5_000, low, 272)
	assert.InDelta(t, 65_000, high, 272)
	assert.InDelta(t, 95_000, panicAlarm, 272)
}

func TestMeasureFrequency(t *testing.T) {
	regs := &tempmon.Registers{}
	regs.Calibration.Store(calibration)

	monitor := tempmon.New(regs).InitWithMeasureFreq(0x1000)

	assert.Equal(t, uint16(0x1000), monitor.MeasureFrequency())
}
