package unorderedmap

import "github.com/gostonefire/unorderedmap/internal/vector"

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// OutOfRange - Custom error to inform that a bucket number was outside [0, BucketCount()).
// Any OutOfRange matches OutOfRange{} in errors.Is.
type OutOfRange = vector.OutOfRange
