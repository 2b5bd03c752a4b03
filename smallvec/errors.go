package smallvec

import "fmt"

type vectorError string

var _ error = vectorError("")

func (err vectorError) Error() string {
	return string(err)
}

const (
	ErrIndexOutOfRange  = vectorError("index out of range")
	ErrCapacityExceeded = vectorError("requested capacity exceeds maximum representable size")
	ErrAllocation       = vectorError("allocation failed")
	ErrIncomparable     = vectorError("iterators of different vectors are not ordered")
	ErrForeignIterator  = vectorError("iterator does not belong to this vector")
)

// IndexError is returned by checked accessors for positions outside [0, Size).
type IndexError struct {
	Index int
	Size  int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d with size %d", ErrIndexOutOfRange, err.Index, err.Size)
}

func (err *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// CapacityError is returned when a request exceeds MaxSize. The vector is left
// unchanged.
type CapacityError struct {
	Requested int
	Max       int
}

func (err *CapacityError) Error() string {
	return fmt.Sprintf("%s: requested %d, max %d", ErrCapacityExceeded, err.Requested, err.Max)
}

func (err *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// AllocationError is returned when the allocator could not provide a block of
// Requested elements. The vector is left unchanged.
type AllocationError struct {
	Requested int
	Cause     error
}

func (err *AllocationError) Error() string {
	return fmt.Sprintf("%s: %d elements: %v", ErrAllocation, err.Requested, err.Cause)
}

func (err *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}

func (err *AllocationError) Unwrap() error {
	return err.Cause
}
