package alloc

import (
	"reflect"
	"unsafe"

	"go.uber.org/zap"
)

// Logged reports every allocation and release of an upstream allocator.
type Logged struct {
	upstream Allocator
	logger   *zap.Logger
}

func NewLogged(upstream Allocator, logger *zap.Logger) *Logged {
	if upstream == nil {
		upstream = GoHeap{}
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Logged{
		upstream: upstream,
		logger:   logger.Named("alloc"),
	}
}

func (l *Logged) Allocate(typ reflect.Type, n int) (unsafe.Pointer, error) {
	p, err := l.upstream.Allocate(typ, n)

	if err != nil {
		l.logger.Warn("allocate failed",
			zap.Stringer("type", typ),
			zap.Int("n", n),
			zap.Uintptr("bytes", blockSize(typ, n)),
			zap.Error(err),
		)

		return nil, err
	}

	l.logger.Debug("allocate",
		zap.Stringer("type", typ),
		zap.Int("n", n),
		zap.Uintptr("bytes", blockSize(typ, n)),
		zap.Uintptr("addr", uintptr(p)),
	)

	return p, nil
}

func (l *Logged) Free(p unsafe.Pointer, typ reflect.Type, n int) {
	l.logger.Debug("free",
		zap.Stringer("type", typ),
		zap.Int("n", n),
		zap.Uintptr("addr", uintptr(p)),
	)

	l.upstream.Free(p, typ, n)
}
