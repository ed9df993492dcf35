package forGraphSampleGo

import "github.com/pkg/errors"

// Strategy identifies the per-node edge selection algorithm used by SampleNeighbors.
type Strategy int

const (
	Uniform Strategy = iota
	UniformReplace
	Weighted
	WeightedReplace
	Labor
)

var AllStrategies = []Strategy{Uniform, UniformReplace, Weighted, WeightedReplace, Labor}

func (s Strategy) String() string {
	switch s {
	case Uniform:
		return "uniform"
	case UniformReplace:
		return "uniform-replace"
	case Weighted:
		return "weighted"
	case WeightedReplace:
		return "weighted-replace"
	case Labor:
		return "labor"
	}
	panic("invalid strategy")
}

// Error kinds. Every error returned by the sampling entry points wraps
// exactly one of ErrConfig, ErrRange and ErrAllocation.
var (
	// ErrConfig reports inconsistent sampling parameters or a malformed graph.
	ErrConfig = errors.New("invalid sampling configuration")
	// ErrRange reports a node or edge type id outside its domain.
	ErrRange = errors.New("id out of range")
	// ErrAllocation reports that an output buffer could not be sized.
	// Unlike the other kinds it may succeed when retried with more memory.
	ErrAllocation = errors.New("output allocation failed")
	// ErrInvalidSubgraph is reported by CheckSampledSubgraph.
	ErrInvalidSubgraph = errors.New("invalid sampled subgraph")
)

func configErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrConfig, format, args...)
}

func rangeErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrRange, format, args...)
}

func allocationErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrAllocation, format, args...)
}

// ErrorKind returns the sentinel wrapped by err, or nil.
func ErrorKind(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrConfig):
		return ErrConfig
	case errors.Is(err, ErrRange):
		return ErrRange
	case errors.Is(err, ErrAllocation):
		return ErrAllocation
	}
	return nil
}

func errorKindLabel(err error) string {
	switch ErrorKind(err) {
	case ErrConfig:
		return "config"
	case ErrRange:
		return "range"
	case ErrAllocation:
		return "allocation"
	}
	return "unknown"
}

func try(err error) {
	if err != nil {
		panic(err)
	}
}
