package heap

type heapError string

func (err heapError) Error() string {
	return string(err)
}

const (
	ErrEmpty = heapError("priority queue is empty")
)
