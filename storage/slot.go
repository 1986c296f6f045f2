// Package storage provides the persistent key-value slot behind the cart
// store. A slot holds one serialized cart per key. Writes are last-write-wins:
// two writers racing on the same key end with whichever wrote last, same as
// two browser tabs sharing a storage key. That is a known limitation, not
// something the drivers guard against.
package storage

// Slot is a durable key-value byte slot.
type Slot interface {
	// Read returns the stored value for key. ok is false when the key has
	// never been written (or was deleted); that is not an error.
	Read(key string) (data []byte, ok bool, err error)

	// Write stores value under key, replacing any previous value.
	Write(key string, data []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error
}
