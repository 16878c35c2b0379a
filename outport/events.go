package outport

// EventData is the external representation of a ledger event
type EventData struct {
	Identifier string   `json:"identifier"`
	Signature  string   `json:"signature"`
	Address    string   `json:"address"`
	Topics     []string `json:"topics"`
}

// EventsBatch holds the events committed by a single ledger call
type EventsBatch struct {
	Operation string       `json:"operation"`
	Caller    string       `json:"caller"`
	Timestamp uint64       `json:"timestamp"`
	Events    []*EventData `json:"events"`
}
