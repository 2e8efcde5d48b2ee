package Maps

// Keyed is anything that hash based collections can index by a key of type K. Two Keyed values with equal keys are
// the same entry, and a bare K can be used wherever the Keyed it belongs to is expected.
type Keyed[K comparable] interface {
	Key() K
}

// KeyOf k.
func KeyOf[K comparable](k Keyed[K]) K {
	return k.Key()
}

// Map is a hash map whose entries can be addressed either by a Keyed value or by its bare key.
type Map[K comparable, V any] interface {
	Store(Keyed[K], V)
	StoreValue(K, V)
	Load(Keyed[K]) (V, bool)
	LoadValue(K) (V, bool)
	Delete(Keyed[K]) bool
	DeleteValue(K) bool
	Range(func(K, V) bool)
	Size() uint
}
