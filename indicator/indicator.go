package indicator

import (
	"errors"
	"math"
	"sort"
	"sync"
)

// Failure modes shared by every computer. Validate wraps these with the
// offending parameters via fmt.Errorf("%w: ..."), so callers test with
// errors.Is.
var (
	// ErrInsufficientData means the source is shorter than the minimum
	// window the parameters require.
	ErrInsufficientData = errors.New("indicator: insufficient data for period")

	// ErrBadPeriods means a period parameter is out of range, or the
	// short/long pair is not strictly ordered.
	ErrBadPeriods = errors.New("indicator: invalid period parameters")

	// ErrNeedsOHLC means the computer requires four-component rows but
	// the source carries scalars.
	ErrNeedsOHLC = errors.New("indicator: source must provide OHLC rows")
)

// Kind identifies an indicator algorithm in the registry.
type Kind string

const (
	KindSMA        Kind = "sma"
	KindEMA        Kind = "ema"
	KindDEMA       Kind = "dema"
	KindTEMA       Kind = "tema"
	KindPPO        Kind = "ppo"
	KindStochastic Kind = "stochastic"
)

// Computer derives an output series from a source series. Validate checks
// parameters against the source without allocating output; Compute assumes
// a prior successful Validate and returns the aligned result.
type Computer interface {
	Kind() Kind
	Validate(src Source) error
	Compute(src Source) (Result, error)
}

// Registry maps kinds to computer factories so callers can construct
// indicators from configuration.
type Registry struct {
	mu        sync.RWMutex
	factories map[Kind]func() Computer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Kind]func() Computer)}
}

// Register binds a factory to a kind, replacing any previous binding.
func (r *Registry) Register(kind Kind, factory func() Computer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = factory
}

// Lookup returns a fresh computer with default parameters, or false when
// the kind is unknown.
func (r *Registry) Lookup(kind Kind) (Computer, bool) {
	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]Kind, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.Register(KindSMA, func() Computer { return &SMA{Period: 14} })
	r.Register(KindEMA, func() Computer { return &EMA{Period: 14} })
	r.Register(KindDEMA, func() Computer { return &DEMA{Period: 14} })
	r.Register(KindTEMA, func() Computer { return &TEMA{Period: 14} })
	r.Register(KindPPO, func() Computer { return &PPO{ShortPeriod: 12, LongPeriod: 26} })
	r.Register(KindStochastic, func() Computer {
		return &Stochastic{KPeriod: 14, DPeriod: 3}
	})
	return r
}()

// DefaultRegistry returns the registry preloaded with the built-in
// computers at their conventional default periods.
func DefaultRegistry() *Registry { return defaultRegistry }

// componentIndex resolves the Index field of the moving-average computers.
// The zero value selects the close, so a bare SMA{Period: n} does the
// conventional thing on OHLC data. That makes IndexOpen unreachable through
// this field; to average opens, build a scalar source from the open column
// (Source.Column(IndexOpen) with FromScalars).
func componentIndex(idx int) int {
	if idx > 0 {
		return idx
	}
	return IndexClose
}

// outputPrecision is the number of decimal places every computed value is
// rounded to. Keeping a fixed precision makes the DEMA and TEMA cascade
// identities hold exactly in tests.
const outputPrecision = 4

func roundTo(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
