package edid

// Prefix pins the first bytes of the block searched for in firmware images:
// the header magic followed by the manufacturer ID the stock firmware carries.
var Prefix = [10]byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x17, 0x10}

func matchAt(buf []byte, i int) bool {
	if buf[i] != Prefix[0] {
		return false
	}

	csum := buf[i]
	for j := 1; j < Size; j++ {
		if j < len(Prefix) && buf[i+j] != Prefix[j] {
			return false
		}
		csum += buf[i+j]
	}

	return csum == 0
}

// Find returns the index of the first Size byte window in buf that starts with
// Prefix and sums to zero.
func Find(buf []byte) (int, error) {
	for i := 0; i+Size <= len(buf); i++ {
		if matchAt(buf, i) {
			return i, nil
		}
	}

	return -1, ErrorSignatureNotFound
}

// FindAll returns every window start Find would accept, in ascending order.
func FindAll(buf []byte) []int {
	var result []int
	for i := 0; i+Size <= len(buf); i++ {
		if matchAt(buf, i) {
			result = append(result, i)
		}
	}
	return result
}
