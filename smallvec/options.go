package smallvec

import "github.com/webbmaffian/go-smallvec/alloc"

type options struct {
	allocator alloc.Allocator
}

type Option func(*options)

// WithAllocator sets the allocator heap blocks are taken from. Vectors without
// one bind alloc.Default the first time they need a heap block.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

func applyOptions(opts []Option) (o options) {
	for _, opt := range opts {
		opt(&o)
	}

	return
}
