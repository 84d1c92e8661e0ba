package edid

import "errors"

var (
	ErrorInvalidLength     = errors.New("EDID length must be 128 or 256 bytes")
	ErrorInvalidSignature  = errors.New("EDID header signature is invalid")
	ErrorChecksumMismatch  = errors.New("EDID checksum does not add up to zero")
	ErrorSignatureNotFound = errors.New("no EDID block found")
)
