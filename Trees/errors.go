package Trees

import "fmt"

// InvalidSliceError is the panic value of From when the given slice isn't strictly ascending.
// L<M and M<R are expected to hold but at least one of them doesn't.
type InvalidSliceError struct {
	L, M, R any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice is not strictly ascending around %v: left %v, right %v", e.M, e.L, e.R)
}
