package collision

import "errors"

var (
	// Sampling preconditions

	ErrInvalidAngularStep = errors.New("angular step must be a positive divisor of 360")
	ErrInvalidRadius      = errors.New("radius must be finite, non-negative and at most MaxExtent")
	ErrInvalidCenter      = errors.New("center must be finite")
	ErrInvalidRotation    = errors.New("rotation must be finite")
	ErrZeroHalfExtent     = errors.New("rectangle half extent x must be non-zero")
	ErrNegativeHalfExtent = errors.New("rectangle half extents must be non-negative")
	ErrExtentTooLarge     = errors.New("rectangle half extents exceed MaxExtent")

	// Tracker state

	ErrTrackerNotInitialized     = errors.New("position tracker is not initialized")
	ErrTrackerAlreadyInitialized = errors.New("position tracker is already initialized")
	ErrTrackerStateMismatch      = errors.New("tracked collider set changed since initialization")
	ErrMissingPosition           = errors.New("entity has no anchor position")

	// Plugin configuration

	ErrPluginNoFeatures = errors.New("collider plugin needs auto move or events enabled")
	ErrPluginNoHost     = errors.New("collider plugin needs a host")
	ErrPluginNoBus      = errors.New("collider plugin events need an event bus")
	ErrUnknownMode      = errors.New("unknown mode")
)
