package indicator

import "fmt"

// EMA computes an exponential moving average with smoothing factor
// 2/(period+1), seeded by the simple average of the first Period points.
type EMA struct {
	Period int

	// Index selects the OHLC component; the zero value means the close.
	Index int
}

func (e *EMA) Kind() Kind { return KindEMA }

func (e *EMA) Validate(src Source) error {
	if e.Period < 1 {
		return fmt.Errorf("%w: period %d", ErrBadPeriods, e.Period)
	}
	if src.Len() < e.Period {
		return fmt.Errorf("%w: need %d points, have %d", ErrInsufficientData, e.Period, src.Len())
	}
	return nil
}

func (e *EMA) Compute(src Source) (Result, error) {
	if err := e.Validate(src); err != nil {
		return Result{}, err
	}
	values := emaValues(src.Column(componentIndex(e.Index)), e.Period)
	res := Result{
		XData: append([]float64(nil), src.XData[e.Period-1:]...),
		YData: make([][]float64, len(values)),
	}
	for i, v := range values {
		res.YData[i] = []float64{v}
	}
	return res, nil
}

// emaValues returns the exponential moving average of values. The first
// output is the plain average of the initial window; each subsequent value
// applies the recurrence prev + factor*(v - prev), rounded at every step
// so cascaded passes stay reproducible.
func emaValues(values []float64, period int) []float64 {
	factor := 2 / (float64(period) + 1)
	out := make([]float64, 0, len(values)-period+1)

	var seed float64
	for _, v := range values[:period] {
		seed += v
	}
	prev := roundTo(seed/float64(period), outputPrecision)
	out = append(out, prev)

	for _, v := range values[period:] {
		prev = roundTo(v*factor+prev*(1-factor), outputPrecision)
		out = append(out, prev)
	}
	return out
}
