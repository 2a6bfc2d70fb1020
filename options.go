package rectree

// Options configures BuildTree. Construct via DefaultOptions and override
// with one or more Option values, the functional-options pattern used
// throughout this lineage.
type Options struct {
	// Alpha is the path-cost weight passed to PrimDijkstra and EdgeFlipper,
	// in [0, 1]. 0 favours minimum wirelength; 1 favours shortest
	// source-to-pin paths.
	Alpha float64
	// MaxFlexibleEdges is the flexible-edge fanout above which
	// HvwSteineriser degrades to its greedy per-edge fallback instead of
	// the full 2^k bitmask search.
	MaxFlexibleEdges int
	// Logf receives non-fatal diagnostics (a heuristic-fallback node, the
	// edge-flip move count). Defaults to a no-op.
	Logf func(string, ...any)
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns the default configuration: alpha=0.5,
// MaxFlexibleEdges=9, and a no-op log sink.
func DefaultOptions() *Options {
	return &Options{
		Alpha:            0.5,
		MaxFlexibleEdges: 9,
		Logf:             func(string, ...any) {},
	}
}

// WithAlpha sets the path-cost weight.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithMaxFlexibleEdges sets the bitmask-enumeration fanout cap.
func WithMaxFlexibleEdges(max int) Option {
	return func(o *Options) { o.MaxFlexibleEdges = max }
}

// WithLogf sets the diagnostic log sink, in the shape of log.Printf.
func WithLogf(logf func(string, ...any)) Option {
	return func(o *Options) { o.Logf = logf }
}
