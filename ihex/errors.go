package ihex

import (
	"errors"
	"fmt"
)

var (
	ErrorMalformedRecord = errors.New("malformed record")
	ErrorEmptyInput      = errors.New("image contains no records")
	ErrorDataMismatch    = errors.New("image data does not cover its records")
)

func malformed(record int, format string, param ...interface{}) error {
	return fmt.Errorf("%w %d: %s", ErrorMalformedRecord, record, fmt.Sprintf(format, param...))
}
