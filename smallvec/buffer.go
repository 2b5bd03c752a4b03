package smallvec

// Buffer is the set of inline block shapes a Vector can embed. The array
// length is the inline capacity N; a zero-length block is not a
// member, so Vector[T, [0]T] does not compile.
type Buffer[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T |
		~[20]T | ~[24]T | ~[32]T | ~[48]T | ~[64]T | ~[96]T | ~[128]T | ~[256]T
}

// Mode tells which block currently holds a vector's elements.
type Mode uint8

const (
	Inline Mode = iota
	Heap
)

func (m Mode) String() string {
	switch m {
	case Inline:
		return "inline"
	case Heap:
		return "heap"
	}

	return "unknown"
}

// noCopy makes `go vet` flag vectors copied by value, which would alias the
// heap block between two owners.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
