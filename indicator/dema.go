package indicator

import "fmt"

// DEMA computes the double exponential moving average 2*EMA - EMA(EMA),
// which tracks turns with less lag than a single EMA of the same period.
type DEMA struct {
	Period int

	// Index selects the OHLC component; the zero value means the close.
	Index int
}

func (d *DEMA) Kind() Kind { return KindDEMA }

// minPoints is the shortest source that yields one output: the first EMA
// needs Period points, and its output must itself span a full window.
func (d *DEMA) minPoints() int { return 2*d.Period - 1 }

func (d *DEMA) Validate(src Source) error {
	if d.Period < 1 {
		return fmt.Errorf("%w: period %d", ErrBadPeriods, d.Period)
	}
	if src.Len() < d.minPoints() {
		return fmt.Errorf("%w: need %d points, have %d", ErrInsufficientData, d.minPoints(), src.Len())
	}
	return nil
}

func (d *DEMA) Compute(src Source) (Result, error) {
	if err := d.Validate(src); err != nil {
		return Result{}, err
	}
	ema1 := emaValues(src.Column(componentIndex(d.Index)), d.Period)
	ema2 := emaValues(ema1, d.Period)

	res := Result{
		XData: append([]float64(nil), src.XData[d.minPoints()-1:]...),
		YData: make([][]float64, len(ema2)),
	}
	for i, v2 := range ema2 {
		// ema2[i] is the second pass over the window ending at
		// ema1[i+Period-1]; both refer to the same source point.
		v := 2*ema1[i+d.Period-1] - v2
		res.YData[i] = []float64{roundTo(v, outputPrecision)}
	}
	return res, nil
}
