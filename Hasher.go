package rbtree

import (
	"encoding/binary"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher is a seed for Hash. The zero value is a valid seed. Values are safe to share between goroutines.
type Hasher uint64

// Hash v with xxhash, mixing in the seed u. Values that compare equal hash equally; in particular -0.0 and +0.0 do.
// Strings (including types whose underlying type is string) are hashed by content, every other ordered type by its memory contents.
func Hash[T constraints.Ordered](u Hasher, v T) uintptr {
	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], uint64(u))
	var d xxhash.Digest
	d.Reset()
	d.Write(seed[:])
	if s, ok := any(v).(string); ok {
		d.WriteString(s)
	} else if isString[T]() {
		d.WriteString(reflect.ValueOf(v).String())
	} else {
		return hashMem(u, v)
	}
	return uintptr(d.Sum64())
}

// hashMem hashes the memory contents of v, which must not be of a string type.
func hashMem[T constraints.Ordered](u Hasher, v T) uintptr {
	if v == *new(T) {
		v = *new(T)
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(u))
	var d xxhash.Digest
	d.Reset()
	d.Write(buf[:])
	d.Write(unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)))
	return uintptr(d.Sum64())
}

// isString reports whether the underlying type of T is string, for named string types the type switch misses.
func isString[T constraints.Ordered]() bool {
	return reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.String
}

// Func returns Hash bound to seed u, in the form the hash maps' SetHasher accepts. Whether T is a string type is
// decided once here instead of on every call.
func Func[T constraints.Ordered](u Hasher) func(T) uintptr {
	if isString[T]() {
		return func(v T) uintptr {
			return Hash(u, v)
		}
	}
	return func(v T) uintptr {
		return hashMem(u, v)
	}
}
