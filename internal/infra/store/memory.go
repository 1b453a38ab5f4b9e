package store

// Memory is an in-memory Backend for tests and ephemeral runs.
type Memory struct {
	data map[string]map[string][]byte
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string][]byte)}
}

// Get returns the stored bytes for (namespace, username).
func (m *Memory) Get(namespace, username string) ([]byte, bool, error) {
	ns, ok := m.data[namespace]
	if !ok {
		return nil, false, nil
	}
	raw, ok := ns[username]
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

// Set stores bytes under (namespace, username).
func (m *Memory) Set(namespace, username string, value []byte) error {
	ns, ok := m.data[namespace]
	if !ok {
		ns = make(map[string][]byte)
		m.data[namespace] = ns
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	ns[username] = cp
	return nil
}
