package matrix

type matrixError string

var _ error = matrixError("")

func (err matrixError) Error() string {
	return string(err)
}

const (
	ErrShape       = matrixError("matrix: dimension mismatch")
	ErrIndexRange  = matrixError("matrix: index out of range")
	ErrEmptyMatrix = matrixError("matrix: dimensions must be positive")
)
