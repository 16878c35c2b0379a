package common

// ZeroAddress returns a fresh zero address
func ZeroAddress() []byte {
	return make([]byte, AddressLen)
}

// IsZeroAddress returns true if the provided address has all bytes equal to 0. An empty slice is
// treated as the zero address as well.
func IsZeroAddress(address []byte) bool {
	for _, b := range address {
		if b != 0 {
			return false
		}
	}

	return true
}

// IsValidAddress returns true if the provided address has the expected length
func IsValidAddress(address []byte) bool {
	return len(address) == AddressLen
}
