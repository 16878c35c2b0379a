package mock

// PersisterStub -
type PersisterStub struct {
	PutCalled    func(key, val []byte) error
	GetCalled    func(key []byte) ([]byte, error)
	HasCalled    func(key []byte) error
	RemoveCalled func(key []byte) error
	CloseCalled  func() error
}

// Put -
func (p *PersisterStub) Put(key, val []byte) error {
	if p.PutCalled != nil {
		return p.PutCalled(key, val)
	}

	return nil
}

// Get -
func (p *PersisterStub) Get(key []byte) ([]byte, error) {
	if p.GetCalled != nil {
		return p.GetCalled(key)
	}

	return nil, nil
}

// Has -
func (p *PersisterStub) Has(key []byte) error {
	if p.HasCalled != nil {
		return p.HasCalled(key)
	}

	return nil
}

// Remove -
func (p *PersisterStub) Remove(key []byte) error {
	if p.RemoveCalled != nil {
		return p.RemoveCalled(key)
	}

	return nil
}

// Close -
func (p *PersisterStub) Close() error {
	if p.CloseCalled != nil {
		return p.CloseCalled()
	}

	return nil
}

// IsInterfaceNil -
func (p *PersisterStub) IsInterfaceNil() bool {
	return p == nil
}
