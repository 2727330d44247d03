package systems

import "errors"

var (
	ErrNilSystem               = errors.New("system is nil")
	ErrSystemAlreadyRegistered = errors.New("system already registered")
	ErrRunnerNotInitialized    = errors.New("runner is not initialized")
	ErrRunnerInitialized       = errors.New("runner is already initialized")
	ErrRunnerFailed            = errors.New("runner stopped after a system failure")
)
