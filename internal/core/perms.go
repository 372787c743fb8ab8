package core

import "os"

// File permission constants shared across the codebase.
const (
	// PermOwnerRW is read/write for the owner only (0600).
	PermOwnerRW os.FileMode = 0o600

	// PermPublicRead is owner read/write, everyone else read (0644).
	PermPublicRead os.FileMode = 0o644
)
