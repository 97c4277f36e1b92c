package indicator

import "fmt"

// SMA computes a simple moving average over Period points.
type SMA struct {
	Period int

	// Index selects the OHLC component to average; the zero value means
	// the close. See componentIndex for reading the open column.
	Index int
}

func (s *SMA) Kind() Kind { return KindSMA }

func (s *SMA) Validate(src Source) error {
	if s.Period < 1 {
		return fmt.Errorf("%w: period %d", ErrBadPeriods, s.Period)
	}
	if src.Len() < s.Period {
		return fmt.Errorf("%w: need %d points, have %d", ErrInsufficientData, s.Period, src.Len())
	}
	return nil
}

func (s *SMA) Compute(src Source) (Result, error) {
	if err := s.Validate(src); err != nil {
		return Result{}, err
	}
	values := src.Column(componentIndex(s.Index))
	avg := smaValues(values, s.Period)
	res := Result{
		XData: append([]float64(nil), src.XData[s.Period-1:]...),
		YData: make([][]float64, len(avg)),
	}
	for i, v := range avg {
		res.YData[i] = []float64{v}
	}
	return res, nil
}

// smaValues returns the simple moving average of values with the given
// period, one output per full window, using a sliding sum.
func smaValues(values []float64, period int) []float64 {
	out := make([]float64, 0, len(values)-period+1)
	var sum float64
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out = append(out, roundTo(sum/float64(period), outputPrecision))
		}
	}
	return out
}
