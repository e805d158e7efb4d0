package parse

type parseOpts struct {
	noStrip bool
}

type ParseOption func(*parseOpts)

// NoStrip treats the input as already comment-free, skipping the
// preprocessing pass.
func NoStrip() ParseOption {
	return func(o *parseOpts) { o.noStrip = true }
}
