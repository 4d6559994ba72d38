package lambda

// Verbosity selects how much of the reduction trajectory the driver
// records and reports.
type Verbosity int

const (
	// Basic reports only the initial term and the final fixed form.
	Basic Verbosity = iota
	// Summary buffers every intermediate form for an end-of-run report.
	Summary
	// Verbose delivers every intermediate form to the observer as it is
	// produced, in addition to buffering it.
	Verbose
)

func (v Verbosity) String() string {
	switch v {
	case Basic:
		return "basic"
	case Summary:
		return "summary"
	case Verbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// Options configures a single evaluation run. The zero value evaluates at
// Basic verbosity with no observer and no step limit.
type Options struct {
	Verbosity Verbosity

	// Observer receives each intermediate term immediately under Verbose
	// verbosity. Ignored at lower verbosities. May be nil.
	Observer func(step int, t Term)

	// Continue is consulted once per step before the next reduction is
	// attempted. Returning false abandons the run without reaching a
	// fixed point. Nil means run until a fixed point, which for terms
	// without a normal form is forever.
	Continue func(step int, current Term) bool
}

// Result reports the outcome of an evaluation run.
type Result struct {
	// Final is the fixed form when Fixed is true, or the last observed
	// term when the run was abandoned by the Continue hook.
	Final Term

	// Trace holds every intermediate form in order of production.
	// Empty at Basic verbosity.
	Trace []Term

	// Steps counts the reductions that changed the term's rendering.
	Steps int

	// Fixed reports whether a fixed point was reached.
	Fixed bool
}

// Evaluate drives t through repeated reduction until two successive
// renderings coincide. Rendering is the only equality oracle: structural
// or alpha-equivalence is never computed. There is no internal step bound;
// bounding a run is the caller's business via Options.Continue.
func Evaluate(t Term, opts Options) Result {
	res := Result{}

	current := t
	next := Reduce(current)

	for current.String() != next.String() {
		res.Steps++
		if opts.Verbosity >= Summary {
			res.Trace = append(res.Trace, next)
		}
		if opts.Verbosity >= Verbose && opts.Observer != nil {
			opts.Observer(res.Steps, next)
		}
		if opts.Continue != nil && !opts.Continue(res.Steps, next) {
			res.Final = next
			return res
		}
		current = next
		next = Reduce(current)
	}

	res.Final = current
	res.Fixed = true
	return res
}
