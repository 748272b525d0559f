package common

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound is the shared "not found" sentinel. Service read operations
// return it instead of raising; the route layer maps it to 404.
var ErrRecordNotFound = errors.New("record not found")

// DomainError is an expected business-rule failure (missing field, length rule,
// missing referenced entity). It carries the exact message the route layer writes
// under the "Error" key. Infrastructure failures are plain errors and map to 500.
type DomainError struct {
	Message string
}

func (e DomainError) Error() string {
	return e.Message
}

func NewDomainError(format string, args ...any) DomainError {
	return DomainError{Message: fmt.Sprintf(format, args...)}
}

// IsDomainError reports whether err is an expected domain failure.
func IsDomainError(err error) bool {
	var de DomainError
	return errors.As(err, &de)
}
