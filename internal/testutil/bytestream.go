// Package testutil holds helpers shared by the fuzz and property tests.
package testutil

// ByteStream hands out values derived from fuzz input, one byte at a time.
// An exhausted stream keeps returning zero values, so the same input always
// yields the same sequence.
type ByteStream struct {
	bytes []byte
	pos   int
}

func NewByteStream(b []byte) *ByteStream {
	return &ByteStream{bytes: b}
}

// HasMore reports whether unread bytes remain.
func (s *ByteStream) HasMore() bool {
	return s.pos < len(s.bytes)
}

// NextByte returns the next byte, or 0 if exhausted.
func (s *ByteStream) NextByte() byte {
	if s.pos >= len(s.bytes) {
		return 0
	}

	b := s.bytes[s.pos]
	s.pos++

	return b
}

// NextInt returns a value in [0, maxVal) derived from the next byte.
func (s *ByteStream) NextInt(maxVal int) int {
	if maxVal <= 0 {
		return 0
	}

	return int(s.NextByte()) % maxVal
}

// NextInt16 returns a signed value built from the next two bytes.
func (s *ByteStream) NextInt16() int {
	lo, hi := s.NextByte(), s.NextByte()

	return int(int16(uint16(lo) | uint16(hi)<<8))
}

// NextBool returns a boolean derived from the next byte.
func (s *ByteStream) NextBool() bool {
	return s.NextByte()&1 == 1
}
