package indicator

import (
	"fmt"

	"github.com/chartgeom/chart"
)

// PPO computes the percentage price oscillator: the gap between a short
// and a long EMA expressed as a percentage of the long one.
type PPO struct {
	ShortPeriod int
	LongPeriod  int

	// Index selects the OHLC component; the zero value means the close.
	Index int
}

func (p *PPO) Kind() Kind { return KindPPO }

func (p *PPO) Validate(src Source) error {
	if p.ShortPeriod < 1 || p.LongPeriod < 1 {
		return fmt.Errorf("%w: short %d, long %d", ErrBadPeriods, p.ShortPeriod, p.LongPeriod)
	}
	if p.ShortPeriod >= p.LongPeriod {
		chart.Logger().Warn("ppo short period must be smaller than long period",
			"short", p.ShortPeriod, "long", p.LongPeriod)
		return fmt.Errorf("%w: short %d >= long %d", ErrBadPeriods, p.ShortPeriod, p.LongPeriod)
	}
	if src.Len() < p.LongPeriod {
		return fmt.Errorf("%w: need %d points, have %d", ErrInsufficientData, p.LongPeriod, src.Len())
	}
	return nil
}

func (p *PPO) Compute(src Source) (Result, error) {
	if err := p.Validate(src); err != nil {
		return Result{}, err
	}
	values := src.Column(componentIndex(p.Index))
	short := emaValues(values, p.ShortPeriod)
	long := emaValues(values, p.LongPeriod)

	res := Result{
		XData: append([]float64(nil), src.XData[p.LongPeriod-1:]...),
		YData: make([][]float64, len(long)),
	}
	// The short series starts earlier; skip its surplus so both align on
	// the long series' first full window.
	skip := p.LongPeriod - p.ShortPeriod
	for i, lv := range long {
		v := (short[i+skip] - lv) / lv * 100
		res.YData[i] = []float64{roundTo(v, outputPrecision)}
	}
	return res, nil
}
