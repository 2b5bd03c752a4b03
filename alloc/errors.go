package alloc

type allocError string

var _ error = allocError("")

func (err allocError) Error() string {
	return string(err)
}

const (
	// ErrTooLarge is returned for requests no allocator could satisfy.
	ErrTooLarge = allocError("alloc: request too large")

	// ErrPointerType is returned by Mmap for element types that hold pointers.
	// Off-heap memory is not scanned by the garbage collector.
	ErrPointerType = allocError("alloc: element type contains pointers")

	// ErrUnaligned is returned when a type needs a larger alignment than the
	// allocator can guarantee.
	ErrUnaligned = allocError("alloc: alignment not supported")

	// ErrBudgetExceeded is returned by Budget when a request would go over its limit.
	ErrBudgetExceeded = allocError("alloc: budget exceeded")

	// ErrClosed is returned by Mmap after Close.
	ErrClosed = allocError("alloc: allocator closed")
)
