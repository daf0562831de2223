package nlu

import "errors"

// ErrResolutionFailed means every attempt (1 + RetryAttempts) failed. The
// caller is expected to fall back to the deterministic path; no partial data
// is carried.
var ErrResolutionFailed = errors.New("generative resolution failed")
