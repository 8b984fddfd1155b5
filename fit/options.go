// Package fit: functional configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters at option
//     construction time (programmer error); data problems return errors.

package fit

// Method selects how the least-squares system is solved.
type Method int

const (
	// MethodQR solves min‖A·θ − y‖₂ by QR factorization. Default.
	MethodQR Method = iota
	// MethodNormal forms AᵀA·θ = Aᵀy and solves by LU.
	MethodNormal
)

// String implements fmt.Stringer for diagnostics and flag parsing.
func (m Method) String() string {
	switch m {
	case MethodQR:
		return "qr"
	case MethodNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// Option configures a Fit call.
type Option func(*config)

type config struct {
	method Method
}

// WithMethod selects the solution path. Panics on an undefined Method
// value: that is a programmer error, not user input.
func WithMethod(m Method) Option {
	if m != MethodQR && m != MethodNormal {
		panic("fit: WithMethod requires MethodQR or MethodNormal")
	}

	return func(c *config) { c.method = m }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) config {
	cfg := config{method: MethodQR}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}
