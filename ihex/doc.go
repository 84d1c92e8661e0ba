// Package ihex decodes and re-encodes Intel HEX firmware images.
//
// Every line of an image is one record:
//
//	:LLAAAATTDD...DDCC
//	  LL   = number of data bytes
//	  AAAA = load address (big endian)
//	  TT   = record type (00 = data, 01 = end of file, 02/04 = address base)
//	  DD   = LL data bytes
//	  CC   = two's complement of the sum of all preceding bytes
//
// Only uppercase hexadecimal digits are accepted. Lines end with any run of
// CR and LF characters, which is kept so an unmodified image is re-encoded
// byte for byte.
//
// The payload of all data records is concatenated into Image.Data. Callers may
// modify that slice in place; Encode writes it back into the original records
// and recomputes every checksum.
package ihex
