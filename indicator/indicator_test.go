package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalarSource(y ...float64) Source {
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i)
	}
	return FromScalars(x, y)
}

func constantSource(v float64, n int) Source {
	y := make([]float64, n)
	for i := range y {
		y[i] = v
	}
	return scalarSource(y...)
}

func TestSMA(t *testing.T) {
	sma := &SMA{Period: 3}
	res, err := sma.Compute(scalarSource(1, 2, 3, 4, 5))
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 3, 4}, res.XData)
	assert.Equal(t, [][]float64{{2}, {3}, {4}}, res.YData)
}

func TestSMAErrors(t *testing.T) {
	sma := &SMA{Period: 0}
	_, err := sma.Compute(scalarSource(1, 2, 3))
	assert.ErrorIs(t, err, ErrBadPeriods)

	sma = &SMA{Period: 5}
	_, err = sma.Compute(scalarSource(1, 2, 3))
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestSMAOHLCUsesClose(t *testing.T) {
	src := Source{
		XData: []float64{0, 1},
		YData: [][]float64{
			{10, 12, 9, 11},
			{11, 14, 10, 13},
		},
	}
	sma := &SMA{Period: 2}
	res, err := sma.Compute(src)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{12}}, res.YData)
}

func TestSMAComponentSelection(t *testing.T) {
	src := Source{
		XData: []float64{0, 1},
		YData: [][]float64{
			{10, 12, 9, 11},
			{11, 14, 10, 13},
		},
	}

	sma := &SMA{Period: 2, Index: IndexHigh}
	res, err := sma.Compute(src)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{13}}, res.YData)

	// Opens are not reachable through Index (its zero value means close);
	// the documented route is a scalar source built from the open column.
	opens := FromScalars(src.XData, src.Column(IndexOpen))
	sma = &SMA{Period: 2}
	res, err = sma.Compute(opens)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{10.5}}, res.YData)
}

func TestEMA(t *testing.T) {
	ema := &EMA{Period: 3}
	res, err := ema.Compute(scalarSource(1, 2, 3, 4, 8))
	require.NoError(t, err)

	// Seeded by the simple average of the first window, then
	// prev + 0.5*(v - prev) for period 3.
	assert.Equal(t, []float64{2, 3, 4}, res.XData)
	assert.Equal(t, [][]float64{{2}, {3}, {5.5}}, res.YData)
}

func TestEMAConstantSeries(t *testing.T) {
	ema := &EMA{Period: 4}
	res, err := ema.Compute(constantSource(7.5, 10))
	require.NoError(t, err)
	for _, row := range res.YData {
		assert.Equal(t, 7.5, row[0])
	}
}

func TestDEMAConstantIdentity(t *testing.T) {
	dema := &DEMA{Period: 3}
	res, err := dema.Compute(constantSource(42, 12))
	require.NoError(t, err)

	// 2*EMA - EMA(EMA) collapses to the constant itself.
	assert.Len(t, res.XData, 12-(2*3-1)+1)
	for _, row := range res.YData {
		assert.Equal(t, 42.0, row[0])
	}
}

func TestDEMAAlignment(t *testing.T) {
	dema := &DEMA{Period: 2}
	src := scalarSource(1, 2, 3, 4, 5, 6)
	res, err := dema.Compute(src)
	require.NoError(t, err)

	// First output sits at index 2*period-2 of the source.
	assert.Equal(t, 2.0, res.XData[0])
	assert.Len(t, res.YData, 4)

	// On a straight line DEMA tracks closer to the data than EMA.
	ema := &EMA{Period: 2}
	emaRes, err := ema.Compute(src)
	require.NoError(t, err)
	for i, row := range res.YData {
		emaVal := emaRes.YData[i+1][0]
		dataVal := src.YData[i+2][0]
		assert.LessOrEqual(t, math.Abs(row[0]-dataVal), math.Abs(emaVal-dataVal))
	}
}

func TestDEMAErrors(t *testing.T) {
	dema := &DEMA{Period: 3}
	_, err := dema.Compute(scalarSource(1, 2, 3, 4))
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestTEMAConstantIdentity(t *testing.T) {
	tema := &TEMA{Period: 3}
	res, err := tema.Compute(constantSource(-5, 15))
	require.NoError(t, err)

	assert.Len(t, res.XData, 15-(3*3-2)+1)
	for _, row := range res.YData {
		assert.Equal(t, -5.0, row[0])
	}
}

func TestTEMAErrors(t *testing.T) {
	tema := &TEMA{Period: 4}
	_, err := tema.Compute(scalarSource(1, 2, 3, 4, 5, 6, 7, 8, 9))
	assert.ErrorIs(t, err, ErrInsufficientData)

	tema = &TEMA{Period: 0}
	_, err = tema.Compute(scalarSource(1, 2, 3))
	assert.ErrorIs(t, err, ErrBadPeriods)
}

func TestPPOConstantSeriesIsZero(t *testing.T) {
	ppo := &PPO{ShortPeriod: 2, LongPeriod: 4}
	res, err := ppo.Compute(constantSource(100, 10))
	require.NoError(t, err)

	assert.Len(t, res.XData, 10-4+1)
	for _, row := range res.YData {
		assert.Equal(t, 0.0, row[0])
	}
}

func TestPPOTrendSign(t *testing.T) {
	ppo := &PPO{ShortPeriod: 2, LongPeriod: 4}
	res, err := ppo.Compute(scalarSource(1, 2, 3, 4, 5, 6, 7, 8))
	require.NoError(t, err)

	// In a rising series the short EMA leads the long one.
	for _, row := range res.YData {
		assert.Positive(t, row[0])
	}
}

func TestPPOBadPeriods(t *testing.T) {
	ppo := &PPO{ShortPeriod: 10, LongPeriod: 5}
	_, err := ppo.Compute(constantSource(1, 20))
	assert.ErrorIs(t, err, ErrBadPeriods)

	ppo = &PPO{ShortPeriod: 5, LongPeriod: 5}
	_, err = ppo.Compute(constantSource(1, 20))
	assert.ErrorIs(t, err, ErrBadPeriods)
}

func ohlcSource(rows ...[4]float64) Source {
	src := Source{
		XData: make([]float64, len(rows)),
		YData: make([][]float64, len(rows)),
	}
	for i, r := range rows {
		src.XData[i] = float64(i)
		src.YData[i] = []float64{r[0], r[1], r[2], r[3]}
	}
	return src
}

func TestStochasticRange(t *testing.T) {
	src := ohlcSource(
		[4]float64{10, 12, 9, 11},
		[4]float64{11, 13, 10, 12},
		[4]float64{12, 14, 11, 13},
		[4]float64{13, 15, 12, 12},
		[4]float64{12, 13, 10, 11},
		[4]float64{11, 12, 9, 10},
	)
	st := &Stochastic{KPeriod: 3, DPeriod: 2}
	res, err := st.Compute(src)
	require.NoError(t, err)

	assert.Len(t, res.XData, 6-(3+2-1)+1)
	for _, row := range res.YData {
		require.Len(t, row, 2)
		assert.GreaterOrEqual(t, row[0], 0.0)
		assert.LessOrEqual(t, row[0], 100.0)
		assert.GreaterOrEqual(t, row[1], 0.0)
		assert.LessOrEqual(t, row[1], 100.0)
	}
}

func TestStochasticCloseAtHigh(t *testing.T) {
	// Close equals the window high every time, so %K pins at 100.
	src := ohlcSource(
		[4]float64{1, 2, 1, 2},
		[4]float64{2, 3, 2, 3},
		[4]float64{3, 4, 3, 4},
		[4]float64{4, 5, 4, 5},
	)
	st := &Stochastic{KPeriod: 2, DPeriod: 2}
	res, err := st.Compute(src)
	require.NoError(t, err)
	for _, row := range res.YData {
		assert.Equal(t, 100.0, row[0])
		assert.Equal(t, 100.0, row[1])
	}
}

func TestStochasticFlatWindow(t *testing.T) {
	src := ohlcSource(
		[4]float64{5, 5, 5, 5},
		[4]float64{5, 5, 5, 5},
		[4]float64{5, 5, 5, 5},
	)
	st := &Stochastic{KPeriod: 2, DPeriod: 2}
	res, err := st.Compute(src)
	require.NoError(t, err)
	for _, row := range res.YData {
		assert.True(t, math.IsNaN(row[0]))
		assert.True(t, math.IsNaN(row[1]))
	}
}

func TestStochasticRecoversAfterFlatWindow(t *testing.T) {
	// Two flat candles make the first %K undefined; the ranging candles
	// after them must bring %D back to finite values instead of letting
	// the NaN ride along in the smoothing.
	src := ohlcSource(
		[4]float64{5, 5, 5, 5},
		[4]float64{5, 5, 5, 5},
		[4]float64{5, 6, 4, 5.8},
		[4]float64{5, 7, 3, 6},
		[4]float64{6, 8, 4, 7},
	)
	st := &Stochastic{KPeriod: 2, DPeriod: 2}
	res, err := st.Compute(src)
	require.NoError(t, err)
	require.Len(t, res.YData, 3)

	// %K: NaN, 90, 75, 80. The first %D window holds the NaN and one
	// finite point; the average skips the NaN rather than absorbing it.
	assert.Equal(t, 90.0, res.YData[0][1])
	assert.Equal(t, 82.5, res.YData[1][1])
	assert.Equal(t, 77.5, res.YData[2][1])
	for _, row := range res.YData {
		assert.False(t, math.IsNaN(row[1]), "%%D poisoned by earlier flat window: %v", row)
	}
}

func TestStochasticNeedsOHLC(t *testing.T) {
	st := &Stochastic{KPeriod: 3, DPeriod: 2}
	_, err := st.Compute(scalarSource(1, 2, 3, 4, 5, 6))
	assert.ErrorIs(t, err, ErrNeedsOHLC)
}

func TestResultValues(t *testing.T) {
	res := Result{
		XData: []float64{1, 2},
		YData: [][]float64{{10, 20}, {11, 21}},
	}
	assert.Equal(t, [][]float64{{1, 10, 20}, {2, 11, 21}}, res.Values())
	assert.Equal(t, []float64{20, 21}, res.Line(1))
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	for _, kind := range []Kind{KindSMA, KindEMA, KindDEMA, KindTEMA, KindPPO, KindStochastic} {
		c, ok := reg.Lookup(kind)
		require.True(t, ok, "kind %s", kind)
		assert.Equal(t, kind, c.Kind())
	}
	_, ok := reg.Lookup("bollinger")
	assert.False(t, ok)
}

func TestRegistryRegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	reg.Register(KindSMA, func() Computer { return &SMA{Period: 5} })
	reg.Register(KindSMA, func() Computer { return &SMA{Period: 9} })

	c, ok := reg.Lookup(KindSMA)
	require.True(t, ok)
	assert.Equal(t, 9, c.(*SMA).Period)
	assert.Equal(t, []Kind{KindSMA}, reg.Kinds())
}
