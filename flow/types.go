package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/flownet/residual"
)

// Sentinel errors for max-flow execution.
var (
	// ErrSourceOutOfRange is returned when the source id lies outside [0, order).
	ErrSourceOutOfRange = errors.New("flow: source vertex out of range")

	// ErrSinkOutOfRange is returned when the sink id lies outside [0, order).
	ErrSinkOutOfRange = errors.New("flow: sink vertex out of range")

	// ErrSourceIsSink is returned for the degenerate request source == sink,
	// whose flow value is undefined rather than zero.
	ErrSourceIsSink = errors.New("flow: source and sink must differ")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")

	// ErrAugmentationLimit is returned when WithMaxAugmentations is exceeded
	// before the network is saturated; the computation is abandoned, not
	// finished, so no flow value accompanies it.
	ErrAugmentationLimit = errors.New("flow: augmentation limit reached")
)

// DefaultEpsilon is the capacity-comparison tolerance used when WithEpsilon
// is not supplied: residual capacities ≤ DefaultEpsilon are treated as zero.
const DefaultEpsilon = 1e-9

// Option configures MaxFlow via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when MaxFlow is invoked.
type Option func(*Options)

// Options holds the tunable parameters of one MaxFlow invocation.
type Options struct {
	// Ctx allows cancellation and deadlines; it is consulted between
	// augmentations, never inside one, so an augmentation that has begun
	// always commits fully.
	Ctx context.Context

	// Epsilon is the residual-capacity tolerance: an arc is traversable iff
	// its capacity is strictly greater than Epsilon. Zero means exact
	// comparison, appropriate for integer-valued capacities.
	Epsilon float64

	// MaxAugmentations, if > 0, abandons the computation with
	// ErrAugmentationLimit once a further augmenting path is found beyond
	// the allowed count. 0 disables the bound.
	MaxAugmentations int

	// OnAugment, if set, is called after each committed augmentation with
	// the augmenting path (source first, sink last) and its bottleneck.
	// The path slice is freshly allocated per call and may be retained.
	OnAugment func(path []int, bottleneck float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with production defaults:
//   - context.Background()
//   - Epsilon = DefaultEpsilon
//   - no augmentation bound
//   - no augmentation hook.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Epsilon:          DefaultEpsilon,
		MaxAugmentations: 0,
		OnAugment:        nil,
		err:              nil,
	}
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpsilon sets the capacity-comparison tolerance.
//
//	e > 0:  capacities ≤ e are treated as exhausted
//	e == 0: exact comparison (whole-number capacities stay drift-free)
//	e < 0:  invalid option → ErrOptionViolation
func WithEpsilon(e float64) Option {
	return func(o *Options) {
		switch {
		case e < 0:
			o.err = fmt.Errorf("%w: Epsilon cannot be negative (%g)", ErrOptionViolation, e)
		case e == 0:
			// explicit exact comparison
			o.Epsilon = 0
		default:
			o.Epsilon = e
		}
	}
}

// WithMaxAugmentations bounds the number of augmentations committed.
//
//	n > 0:  abandon with ErrAugmentationLimit past n augmentations
//	n == 0: explicit no bound
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxAugmentations(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxAugmentations cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no limit"
			o.MaxAugmentations = 0
		default:
			o.MaxAugmentations = n
		}
	}
}

// WithOnAugment registers a callback observing each committed augmentation.
func WithOnAugment(fn func(path []int, bottleneck float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// Result holds the outcome of a completed MaxFlow computation.
type Result struct {
	// Value is the total flow pushed from source to sink: the sum of every
	// augmentation's bottleneck.
	Value float64

	// Augmentations is the number of augmenting paths committed.
	Augmentations int

	// Residual is the network in its final state. The engine retains no
	// reference to it after returning; callers may inspect it freely.
	Residual *residual.Network

	source int
	eps    float64
}
