package store

import "errors"

// Sentinel errors returned by store operations. Callers match these with
// errors.Is to choose exit codes.
var (
	// ErrStoreExists is returned by Init when a store file is already
	// present at the target path.
	ErrStoreExists = errors.New("store already exists")

	// ErrStoreNotFound is returned by Open (and therefore by every
	// store-dependent operation) when no store file exists.
	ErrStoreNotFound = errors.New("store not found")

	// ErrCorrupt is returned when the store file exists but is not a
	// readable tag database. No recovery is attempted.
	ErrCorrupt = errors.New("corrupt store")

	// ErrEmptyInclude is returned by FindFiles when no required tags are
	// given. Searching with zero required tags is not a supported query.
	ErrEmptyInclude = errors.New("find requires at least one included tag")
)
