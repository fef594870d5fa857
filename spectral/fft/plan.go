package fft

import "vv-dsp/core"

// Plan is an immutable, reusable transform descriptor, per spec.md §3:
// fixed n, kind, dir and backend once created; MakePlan is the only
// allocating/validating step, Execute is the hot path.
type Plan struct {
	n         int
	kind      Kind
	dir       Direction
	backendID BackendID
	c2c       c2cPlan

	// scratchFull/scratchOut are the full n-point complex buffers
	// ExecuteR2C/ExecuteC2R need to drive the underlying C2C transform;
	// preallocated here (MakePlan is the documented allocating step) so
	// that execute, a hot path per spec.md §7, never allocates.
	scratchFull []core.Complex
	scratchOut  []core.Complex
}

// Option configures MakePlan. The only option today is WithBackend; more
// can be added without breaking callers, following the functional-options
// shape algo-pde's r2r package uses for plan construction.
type Option func(*planConfig)

type planConfig struct {
	backendID BackendID
	pinned    bool
}

// WithBackend pins plan construction to a specific backend instead of
// whatever SetDefaultBackend currently points at.
func WithBackend(id BackendID) Option {
	return func(c *planConfig) {
		c.backendID = id
		c.pinned = true
	}
}

// MakePlan constructs a Plan for an n-point transform of the given kind
// and direction. n must be >= 1. R2C/C2R Hermitian packing (spec.md §4.D)
// is handled generically here: every kind is backed by a full n-point
// C2C transform, chosen from the active backend.
func MakePlan(n int, kind Kind, dir Direction, opts ...Option) (*Plan, error) {
	if n <= 0 {
		return nil, core.NewError("fft.MakePlan", core.InvalidSize, nil)
	}
	cfg := planConfig{backendID: defaultBackendLocked()}
	for _, o := range opts {
		o(&cfg)
	}
	b, err := resolveBackend(cfg.backendID)
	if err != nil {
		return nil, core.NewError("fft.MakePlan", core.StatusOf(err), err)
	}
	c2c, err := b.makeC2C(n, dir)
	if err != nil {
		return nil, err
	}
	return &Plan{
		n:           n,
		kind:        kind,
		dir:         dir,
		backendID:   b.id(),
		c2c:         c2c,
		scratchFull: make([]core.Complex, n),
		scratchOut:  make([]core.Complex, n),
	}, nil
}

// Destroy releases backend-owned resources. Safe to call once; the Plan
// must not be used afterward.
func (p *Plan) Destroy() {
	if p.c2c != nil {
		p.c2c.close()
		p.c2c = nil
	}
}

func (p *Plan) N() int             { return p.n }
func (p *Plan) Kind() Kind         { return p.kind }
func (p *Plan) Direction() Direction { return p.dir }
func (p *Plan) BackendID() BackendID { return p.backendID }

// ExecuteC2C runs a complex-to-complex transform. p must have been made
// with kind C2C. in and out must not alias (spec.md §4.D non-aliasing
// buffer contract) and must each have length N().
func (p *Plan) ExecuteC2C(out, in []core.Complex) error {
	if p.kind != C2C {
		return core.NewError("fft.Plan.ExecuteC2C", core.OutOfRange, nil)
	}
	return p.c2c.execute(out, in)
}

// ExecuteR2C runs a real-to-complex forward transform. p must have been
// made with kind R2C (and, implicitly, dir Forward). out receives the
// one-sided spectrum X[0..n/2] inclusive, length n/2+1.
func (p *Plan) ExecuteR2C(out []core.Complex, in []core.Real) error {
	if p.kind != R2C || p.dir != Forward {
		return core.NewError("fft.Plan.ExecuteR2C", core.OutOfRange, nil)
	}
	n := p.n
	if len(in) != n || len(out) != n/2+1 {
		return core.NewError("fft.Plan.ExecuteR2C", core.InvalidSize, nil)
	}
	full := p.scratchFull
	scratch := p.scratchOut
	for i, v := range in {
		full[i] = core.Complex(complex(v, 0))
	}
	if err := p.c2c.execute(scratch, full); err != nil {
		return err
	}
	copy(out, scratch[:n/2+1])
	return nil
}

// ExecuteC2R runs a complex-to-real inverse transform. p must have been
// made with kind C2R (and, implicitly, dir Backward). in holds the
// one-sided spectrum X[0..n/2] inclusive (length n/2+1); it is expanded
// to the full Hermitian spectrum X[n-k] = conj(X[k]) for k in (n/2, n)
// before the inverse C2C transform, per spec.md §4.D.
func (p *Plan) ExecuteC2R(out []core.Real, in []core.Complex) error {
	if p.kind != C2R || p.dir != Backward {
		return core.NewError("fft.Plan.ExecuteC2R", core.OutOfRange, nil)
	}
	n := p.n
	if len(in) != n/2+1 || len(out) != n {
		return core.NewError("fft.Plan.ExecuteC2R", core.InvalidSize, nil)
	}
	full := p.scratchFull
	scratch := p.scratchOut
	copy(full, in)
	for k := n/2 + 1; k < n; k++ {
		src := in[n-k]
		full[k] = core.Complex(complex(real(src), -imag(src)))
	}
	if err := p.c2c.execute(scratch, full); err != nil {
		return err
	}
	for i, v := range scratch {
		out[i] = real(v)
	}
	return nil
}
