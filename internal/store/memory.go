package store

import "sync"

// MemoryBackend keeps the document in process memory only. It is the
// "no persistent storage available" execution context: state survives for the
// life of the process and no longer. Also the backend tests run against.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Get() ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.set {
		return nil, false, nil
	}
	return b.data, true, nil
}

func (b *MemoryBackend) Put(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
	b.set = true
	return nil
}

func (b *MemoryBackend) Delete() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
	b.set = false
	return nil
}
