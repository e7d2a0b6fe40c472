package main

// Exit codes.
const (
	ExitSuccess    = 0 // Success
	ExitError      = 1 // General error (invalid arguments, runtime failure)
	ExitStoreError = 2 // Store missing, or already present on init
	ExitDataError  = 3 // Corrupt store
	ExitQueryError = 4 // Invalid query (find with no included tags)
)
