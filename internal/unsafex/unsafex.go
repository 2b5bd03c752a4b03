package unsafex

import (
	"reflect"
	"unsafe"
)

// Slice views n consecutive values of T starting at p.
func Slice[T any](p unsafe.Pointer, n int) []T {
	if n == 0 {
		return nil
	}

	return unsafe.Slice((*T)(p), n)
}

// ArrayToSlice views a fixed-size array of T (passed by pointer) as a slice
// without copying it. n must equal the array length.
func ArrayToSlice[T any, A any](arr *A, n int) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(arr)), n)
}

func BytesToPointer[T any](b []byte) *T {
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// PointerFree reports whether values of typ can live in memory the garbage
// collector does not scan, i.e. typ holds no pointers anywhere in its layout.
func PointerFree(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return typ.Len() == 0 || PointerFree(typ.Elem())
	case reflect.Struct:
		for i := 0; i < typ.NumField(); i++ {
			if !PointerFree(typ.Field(i).Type) {
				return false
			}
		}

		return true
	}

	return false
}
