package storage

import "errors"

// Storage keys. The names mirror the browser local-storage keys the portal
// originally used, so an exported dump of one maps onto the other.
const (
	KeyUser            = "user"
	KeyUsedAccessCodes = "usedAccessCodes"
	KeyMaterials       = "learnhub_materials"
	KeyQuestions       = "learnhub_questions"
)

// ErrKeyNotFound is returned by Get when no value is stored under the key.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is a key-value port over JSON-serializable values. Both adapters
// (gorm-backed and in-memory) marshal values to JSON so a record written by
// one can be read back by the other.
type Store interface {
	// Get unmarshals the value stored under key into the given pointer.
	// Returns ErrKeyNotFound when the key is absent.
	Get(key string, into any) error
	Set(key string, value any) error
	Delete(key string) error
}
