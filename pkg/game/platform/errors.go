package platform

import "errors"

// Initialization failure classes. All are fatal: the caller is expected
// to terminate without starting the loop, and no rollback beyond End()
// is attempted.
var (
	// ErrPlatformInit marks a native subsystem that failed to start.
	ErrPlatformInit = errors.New("platform init failed")

	// ErrVideoSurface marks a failure to create or present the surface.
	ErrVideoSurface = errors.New("video surface failed")

	// ErrAssetLoad marks an atlas image or audio asset that failed to
	// load or decode.
	ErrAssetLoad = errors.New("asset load failed")
)
