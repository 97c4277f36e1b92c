package indicator

import (
	"fmt"
	"math"
)

// Stochastic computes the %K/%D stochastic oscillator over OHLC data.
// %K places the close within the high/low range of the last KPeriod
// points on a 0..100 scale; %D smooths %K with a DPeriod simple average.
type Stochastic struct {
	KPeriod int
	DPeriod int
}

func (s *Stochastic) Kind() Kind { return KindStochastic }

func (s *Stochastic) minPoints() int { return s.KPeriod + s.DPeriod - 1 }

func (s *Stochastic) Validate(src Source) error {
	if s.KPeriod < 1 || s.DPeriod < 1 {
		return fmt.Errorf("%w: k %d, d %d", ErrBadPeriods, s.KPeriod, s.DPeriod)
	}
	if !src.HasOHLC() {
		return fmt.Errorf("%w: stochastic", ErrNeedsOHLC)
	}
	if src.Len() < s.minPoints() {
		return fmt.Errorf("%w: need %d points, have %d", ErrInsufficientData, s.minPoints(), src.Len())
	}
	return nil
}

func (s *Stochastic) Compute(src Source) (Result, error) {
	if err := s.Validate(src); err != nil {
		return Result{}, err
	}
	highs := src.Column(IndexHigh)
	lows := src.Column(IndexLow)
	closes := src.Column(IndexClose)

	k := make([]float64, 0, src.Len()-s.KPeriod+1)
	for i := s.KPeriod - 1; i < src.Len(); i++ {
		hi := math.Inf(-1)
		lo := math.Inf(1)
		for j := i - s.KPeriod + 1; j <= i; j++ {
			hi = math.Max(hi, highs[j])
			lo = math.Min(lo, lows[j])
		}
		if hi == lo {
			// Flat window: the position within a zero range is
			// undefined, not zero or one hundred.
			k = append(k, math.NaN())
			continue
		}
		k = append(k, roundTo((closes[i]-lo)/(hi-lo)*100, outputPrecision))
	}

	d := dValues(k, s.DPeriod)

	res := Result{
		XData: append([]float64(nil), src.XData[s.minPoints()-1:]...),
		YData: make([][]float64, len(d)),
	}
	// %K leads %D by DPeriod-1 points; pair each smoothed value with the
	// %K of the row it closes.
	for i, dv := range d {
		res.YData[i] = []float64{k[i+s.DPeriod-1], dv}
	}
	return res, nil
}

// dValues averages each DPeriod window of %K, leaving out the NaN points a
// flat window produced so one undefined %K cannot poison the rest of the
// %D line. A window with no finite value stays NaN. Each window is summed
// afresh; a running sum would carry NaN forever once it entered.
func dValues(k []float64, period int) []float64 {
	out := make([]float64, 0, len(k)-period+1)
	for i := period - 1; i < len(k); i++ {
		var sum float64
		finite := 0
		for j := i - period + 1; j <= i; j++ {
			if math.IsNaN(k[j]) {
				continue
			}
			sum += k[j]
			finite++
		}
		if finite == 0 {
			out = append(out, math.NaN())
			continue
		}
		out = append(out, roundTo(sum/float64(finite), outputPrecision))
	}
	return out
}
