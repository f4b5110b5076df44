package store

// Backend is the key-value slot the document lives in: one opaque blob under
// one fixed key, mirroring the browser storage this data layout came from.
// Get reports ok=false when nothing is stored under the key.
type Backend interface {
	Get() (data []byte, ok bool, err error)
	Put(data []byte) error
	Delete() error
}
