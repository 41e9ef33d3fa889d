// SPDX-License-Identifier: MIT

package airframe

import (
	"io"
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/aerolattice/matrix"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "airframe: WithWorkers: n must be >= 1"
	panicReferenceInvalid = "airframe: WithReference: sRef and bRef must be finite and > 0"
	panicLoggerNil        = "airframe: WithLogger: logger must not be nil"
)

// Option configures an Airframe. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	workers    int             // assembly goroutines; 0 → GOMAXPROCS
	sRef, bRef float64         // reference area / span; 0 → derived from geometry
	logger     *slog.Logger    // never nil after gatherOptions
	matrixOpts []matrix.Option // forwarded to matrix.Inverse
}

// WithWorkers bounds the number of goroutines assembling the normalwash
// matrix. The result does not depend on n.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithReference fixes the reference area and span used by Solve. Without it
// both are derived from the geometry (see ReferenceArea, ReferenceSpan).
func WithReference(sRef, bRef float64) Option {
	if !positiveFinite(sRef) || !positiveFinite(bRef) {
		panic(panicReferenceInvalid)
	}

	return func(o *options) { o.sRef, o.bRef = sRef, bRef }
}

// WithLogger routes solve diagnostics to logger. The default discards them.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = logger }
}

// WithMatrixOptions forwards numeric policy (pivot tolerance, condition
// limit) to the linear solve.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

func gatherOptions(user ...Option) options {
	o := options{}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}

func positiveFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}
