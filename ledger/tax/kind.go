package tax

// Kind is the classification of a transfer by counterparty role
type Kind uint8

const (
	// KindNone is a mint or burn, one of the sides being the zero address
	KindNone Kind = iota
	// KindPoolToPool is a transfer between two pools
	KindPoolToPool
	// KindSell is a transfer from a regular account to a pool
	KindSell
	// KindBuy is a transfer from a pool to a regular account
	KindBuy
	// KindRegular is a transfer between two regular accounts
	KindRegular
)

// String returns the human readable form of the transfer kind
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPoolToPool:
		return "poolToPool"
	case KindSell:
		return "sell"
	case KindBuy:
		return "buy"
	case KindRegular:
		return "regular"
	default:
		return "unknown"
	}
}
