package loader

import (
	"errors"

	"github.com/katalvlaran/qosroute/network"
)

var (
	// ErrMalformedRow is returned for a record with too few fields or an
	// unparsable number. The error text carries the table and line.
	ErrMalformedRow = errors.New("loader: malformed row")

	// ErrEmptyTable is returned when a table has no data records.
	ErrEmptyTable = errors.New("loader: table has no records")
)

// Demand is one row of the demand table.
type Demand struct {
	Source      int     `json:"source" yaml:"source"`
	Destination int     `json:"destination" yaml:"destination"`
	Demand      float64 `json:"demand" yaml:"demand"`
}

// Option configures graph loading.
type Option func(*options)

type options struct {
	lenient        bool
	skipDuplicates bool
}

// WithLenientAttributes admits out-of-range attributes. Links with
// Bandwidth ≤ 0 are kept but never admissible; the cost model clamps
// negative delays to 0 and reliabilities ≤ 0 to a sentinel cost.
func WithLenientAttributes() Option {
	return func(o *options) { o.lenient = true }
}

// WithSkipDuplicateLinks ignores repeated u–v rows instead of failing.
// The first row wins.
func WithSkipDuplicateLinks() Option {
	return func(o *options) { o.skipDuplicates = true }
}

func (o options) graphOptions() []network.GraphOption {
	if o.lenient {
		return []network.GraphOption{network.WithUncheckedAttributes()}
	}
	return nil
}
