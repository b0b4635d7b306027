package workflow

import "errors"

var (
	// ErrProgressLoadFailed is returned by Tracker.Load when the store could
	// not be read. The accompanying state is still usable (all incomplete).
	ErrProgressLoadFailed = errors.New("workflow progress load failed")

	// ErrProgressSaveFailed is returned by Tracker.Save when the upsert fails.
	ErrProgressSaveFailed = errors.New("workflow progress save failed")

	// ErrReferenceNotFound marks a toggle or lookup for an unknown step id.
	ErrReferenceNotFound = errors.New("workflow step not found")
)
