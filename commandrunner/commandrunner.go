package commandrunner

import (
	"os/exec"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/experimenter"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/workpool"
	"github.com/google/shlex"
)

//go:generate counterfeiter -o fakecommandrunner/fake_runner.go . Runner

// Runner executes an external command, retrying on failure, and returns
// the command's standard output on the first success. Total attempts are
// maxRetries + 1.
type Runner interface {
	Run(logger lager.Logger, command string, maxRetries int, retryDelay time.Duration) (string, error)
}

type execRunner struct {
	clock    clock.Clock
	workPool *workpool.WorkPool
}

// NewRunner returns a Runner backed by os/exec. Invocations across all
// callers are throttled through the given work pool so a burst of endpoint
// starts cannot fork-bomb the container CLI.
func NewRunner(clock clock.Clock, workPool *workpool.WorkPool) Runner {
	return &execRunner{
		clock:    clock,
		workPool: workPool,
	}
}

func (r *execRunner) Run(logger lager.Logger, command string, maxRetries int, retryDelay time.Duration) (string, error) {
	logger = logger.Session("run-command", lager.Data{"command": command})

	args, err := shlex.Split(command)
	if err != nil {
		logger.Error("unparseable-command", err)
		return "", experimenter.CommandFailedError{Command: command, Err: err}
	}
	if len(args) == 0 {
		logger.Error("empty-command", experimenter.ErrEmptyCommand)
		return "", experimenter.CommandFailedError{Command: command, Err: experimenter.ErrEmptyCommand}
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			logger.Debug("waiting-before-retry", lager.Data{"attempt": attempt + 1})
			timer := r.clock.NewTimer(retryDelay)
			<-timer.C()
		}

		output, err := r.invoke(args)
		if err == nil {
			logger.Debug("succeeded", lager.Data{"attempt": attempt + 1})
			return output, nil
		}

		lastErr = err
		logger.Error("attempt-failed", err, lager.Data{"attempt": attempt + 1})
	}

	failure := experimenter.CommandFailedError{Command: command, Err: lastErr}
	logger.Error("all-attempts-failed", failure)
	return "", failure
}

type invocationResult struct {
	output []byte
	err    error
}

func (r *execRunner) invoke(args []string) (string, error) {
	resultChan := make(chan invocationResult, 1)

	r.workPool.Submit(func() {
		output, err := exec.Command(args[0], args[1:]...).Output()
		resultChan <- invocationResult{output: output, err: err}
	})

	result := <-resultChan
	return string(result.output), result.err
}
