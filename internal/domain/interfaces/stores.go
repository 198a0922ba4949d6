package interfaces

// SelectionStore is the persisted key/value state holding the selected school.
type SelectionStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Contains(key string) (bool, error)
}
