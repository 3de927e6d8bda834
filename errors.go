package tracemem

import "fmt"

// UnauthorizedMutationError reports an attempt to append to the sample log
// through any path other than Point. It signals programmer misuse, not a
// transient failure, and is never retried internally.
type UnauthorizedMutationError struct {
	// Op names the rejected operation.
	Op string
}

// Error returns the error message for an UnauthorizedMutationError.
func (e UnauthorizedMutationError) Error() string {
	return fmt.Sprintf("sample log: %s: the log can be updated only through Point", e.Op)
}

// IllegalMutationError reports an attempt to overwrite a stored sample. The
// log rejects item assignment regardless of whether the index is valid.
type IllegalMutationError struct {
	// Index is the position the caller tried to assign to.
	Index int
}

// Error returns the error message for an IllegalMutationError.
func (e IllegalMutationError) Error() string {
	return fmt.Sprintf("sample log: assignment at index %d: the log does not accept item assignment", e.Index)
}

// OutOfRangeError reports an integer index outside the log's bounds.
type OutOfRangeError struct {
	// Index is the requested position, as given by the caller.
	Index int
	// Len is the log length at the time of the lookup.
	Len int
}

// Error returns the error message for an OutOfRangeError.
func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("sample log: index %d out of range for length %d", e.Index, e.Len)
}
