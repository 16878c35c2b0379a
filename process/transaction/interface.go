package transaction

// NonceStorer keeps the next nonce expected from every caller
type NonceStorer interface {
	SaveNonce(caller []byte, nonce uint64) error
	GetNonce(caller []byte) (uint64, error)
	IsInterfaceNil() bool
}
