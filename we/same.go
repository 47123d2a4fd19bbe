package we

import (
	"reflect"
	"unsafe"
)

// Same reports whether a and b are the same value for the purpose of Map.Set.
// Comparable values are compared with ==. Slices are the same when they share
// a backing array and length; maps and channels when they share a pointer;
// funcs when they are the same closure. Any other value is never the same as
// anything.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	if va.Comparable() {
		return va.Equal(vb)
	}

	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Map, reflect.Chan:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Func:
		return closureOf(a) == closureOf(b)
	default:
		return false
	}
}

// closureOf returns the data word of an interface holding a func. Funcs are
// pointer shaped, so the word is the closure itself rather than its code.
func closureOf(fn any) unsafe.Pointer {
	return (*[2]unsafe.Pointer)(unsafe.Pointer(&fn))[1]
}
