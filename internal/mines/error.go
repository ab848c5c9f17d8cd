package mines

import "errors"

var ErrOriginMined = errors.New("mines: origin cell is a mine")

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return "assertion failed: " + e.message
}

// recoverAssertion turns an [AssertionError] panic into an error stored
// in *err. Any other panic is re-raised.
func recoverAssertion(err *error) {
	r := recover()
	if r == nil {
		return
	}
	var ae AssertionError
	if e, ok := r.(error); ok && errors.As(e, &ae) {
		*err = ae
		return
	}
	panic(r)
}
