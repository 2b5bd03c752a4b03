package ring

type ringError string

var _ error = ringError("")

func (err ringError) Error() string {
	return string(err)
}

const (
	ErrEmpty           = ringError("ring buffer is empty")
	ErrFull            = ringError("ring buffer is full")
	ErrInvalidCapacity = ringError("ring buffer capacity must be positive")
	ErrNothingToUndo   = ringError("no read to undo")
)
