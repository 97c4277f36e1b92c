package indicator

import "fmt"

// TEMA computes the triple exponential moving average
// 3*EMA - 3*EMA(EMA) + EMA(EMA(EMA)).
type TEMA struct {
	Period int

	// Index selects the OHLC component; the zero value means the close.
	Index int
}

func (t *TEMA) Kind() Kind { return KindTEMA }

func (t *TEMA) minPoints() int { return 3*t.Period - 2 }

func (t *TEMA) Validate(src Source) error {
	if t.Period < 1 {
		return fmt.Errorf("%w: period %d", ErrBadPeriods, t.Period)
	}
	if src.Len() < t.minPoints() {
		return fmt.Errorf("%w: need %d points, have %d", ErrInsufficientData, t.minPoints(), src.Len())
	}
	return nil
}

func (t *TEMA) Compute(src Source) (Result, error) {
	if err := t.Validate(src); err != nil {
		return Result{}, err
	}
	ema1 := emaValues(src.Column(componentIndex(t.Index)), t.Period)
	ema2 := emaValues(ema1, t.Period)
	ema3 := emaValues(ema2, t.Period)

	res := Result{
		XData: append([]float64(nil), src.XData[t.minPoints()-1:]...),
		YData: make([][]float64, len(ema3)),
	}
	off := t.Period - 1
	for i, v3 := range ema3 {
		v := 3*ema1[i+2*off] - 3*ema2[i+off] + v3
		res.YData[i] = []float64{roundTo(v, outputPrecision)}
	}
	return res, nil
}
