package experimenter

import (
	"errors"
	"fmt"
)

var (
	ErrPortsExhausted       = errors.New("no ports available within deadline")
	ErrPortAlreadyReleased  = errors.New("port is already in the pool")
	ErrNoPortLeased         = errors.New("transfer endpoint has no leased port")
	ErrBatchNotFound        = errors.New("no batch found for experiment")
	ErrAlreadySubmitted     = errors.New("experiment has already been submitted")
	ErrMissingExperimentID  = errors.New("agency response did not include an experiment id")
	ErrEmptyCommand         = errors.New("command line is empty")
	ErrCredentialGeneration = errors.New("failed to generate endpoint credentials")
)

// CommandFailedError is returned once an external command has exhausted all
// of its attempts. Err holds the error from the last attempt.
type CommandFailedError struct {
	Command string
	Err     error
}

func (e CommandFailedError) Error() string {
	return fmt.Sprintf("command %q failed after all attempts: %s", e.Command, e.Err)
}

func (e CommandFailedError) Unwrap() error { return e.Err }

type StartFailedError struct {
	Err error
}

func (e StartFailedError) Error() string {
	return fmt.Sprintf("failed to start transfer endpoint: %s", e.Err)
}

func (e StartFailedError) Unwrap() error { return e.Err }

type StopFailedError struct {
	Err error
}

func (e StopFailedError) Error() string {
	return fmt.Sprintf("failed to stop transfer endpoint: %s", e.Err)
}

func (e StopFailedError) Unwrap() error { return e.Err }

type SubmissionFailedError struct {
	Err error
}

func (e SubmissionFailedError) Error() string {
	return fmt.Sprintf("failed to submit experiment: %s", e.Err)
}

func (e SubmissionFailedError) Unwrap() error { return e.Err }

// TransportError wraps network and decoding failures on remote agency calls.
type TransportError struct {
	Op  string
	Err error
}

func (e TransportError) Error() string {
	return fmt.Sprintf("agency request %s failed: %s", e.Op, e.Err)
}

func (e TransportError) Unwrap() error { return e.Err }
