package storage

import "sync"

// Mock is an in-memory Storage for testing. It is safe for concurrent use.
type Mock struct {
	mu     sync.Mutex
	values map[string]string

	// Optional hooks; when set, their error is returned before the value is touched.
	GetFunc    func(key string) error
	SetFunc    func(key, value string) error
	RemoveFunc func(key string) error

	SetCalls []string
}

// NewMock creates an empty mock storage.
func NewMock() *Mock {
	return &Mock{values: make(map[string]string)}
}

func (m *Mock) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		if err := m.GetFunc(key); err != nil {
			return "", false, err
		}
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Mock) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, key)
	if m.SetFunc != nil {
		if err := m.SetFunc(key, value); err != nil {
			return err
		}
	}
	m.values[key] = value
	return nil
}

func (m *Mock) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemoveFunc != nil {
		if err := m.RemoveFunc(key); err != nil {
			return err
		}
	}
	delete(m.values, key)
	return nil
}

// Raw returns the stored value for key without going through the hooks.
func (m *Mock) Raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}
