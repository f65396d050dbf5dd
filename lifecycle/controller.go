package lifecycle

import (
	"os"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/experimenter"
	"code.cloudfoundry.org/lager/v3"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/tedsuo/ifrit"
)

// JobBuilder turns an experiment definition into the document submitted to
// the agency.
type JobBuilder func(experimenter.Experiment) experimenter.JobDescription

// Controller drives one experiment through the remote agency:
// submission, status polling, cancellation, and exactly-once teardown of
// the attached transfer endpoint on whichever terminal path fires first.
type Controller struct {
	experiment   experimenter.Experiment
	agencyClient experimenter.AgencyClient
	endpoint     experimenter.TransferEndpoint
	clock        clock.Clock
	buildJob     JobBuilder

	lock            sync.Mutex
	job             *experimenter.JobDescription
	status          experimenter.Status
	experimentID    string
	batchID         string
	failureReason   string
	endpointStopped bool
	watchdogArmed   bool
	watchdogCancel  chan struct{}
}

// NewController wires a controller for one experiment. endpoint may be nil
// when the experiment needs no data transfer; buildJob may be nil to use
// the default job-description builder.
func NewController(
	experiment experimenter.Experiment,
	agencyClient experimenter.AgencyClient,
	endpoint experimenter.TransferEndpoint,
	clock clock.Clock,
	buildJob JobBuilder,
) *Controller {
	if buildJob == nil {
		buildJob = experimenter.NewJobDescription
	}

	return &Controller{
		experiment:   experiment,
		agencyClient: agencyClient,
		endpoint:     endpoint,
		clock:        clock,
		buildJob:     buildJob,
		status:       experimenter.StatusUnknown,
	}
}

func (c *Controller) Status() experimenter.Status {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.status
}

func (c *Controller) ExperimentID() string {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.experimentID
}

func (c *Controller) BatchID() string {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.batchID
}

// FailureReason returns the diagnostic recorded from the agency's history
// when the experiment was last observed as failed.
func (c *Controller) FailureReason() string {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.failureReason
}

// Submit starts the attached transfer endpoint, if any, then submits the
// job description. Endpoint start failure aborts the submission entirely;
// a submission failure after a successful start stops the endpoint again
// so it cannot leak. On success the timeout watchdog is armed when a
// positive timeout is configured.
func (c *Controller) Submit(logger lager.Logger) error {
	logger = logger.Session("submit", lager.Data{"guid": c.experiment.Guid})

	c.lock.Lock()
	if c.status != experimenter.StatusUnknown {
		c.lock.Unlock()
		logger.Error("already-submitted", experimenter.ErrAlreadySubmitted)
		return experimenter.ErrAlreadySubmitted
	}

	if c.job == nil {
		job := c.buildJob(c.experiment)
		c.job = &job
	}
	job := *c.job
	c.lock.Unlock()

	if c.endpoint != nil {
		if err := c.endpoint.Start(logger); err != nil {
			logger.Error("endpoint-start-failed", err)
			return err
		}
	}

	experimentID, err := c.agencyClient.SubmitExperiment(logger, job)
	if err != nil {
		c.stopEndpoint(logger)
		submissionErr := experimenter.SubmissionFailedError{Err: err}
		logger.Error("submission-failed", submissionErr)
		return submissionErr
	}

	if experimentID == "" {
		c.stopEndpoint(logger)
		submissionErr := experimenter.SubmissionFailedError{Err: experimenter.ErrMissingExperimentID}
		logger.Error("submission-failed", submissionErr)
		return submissionErr
	}

	c.lock.Lock()
	c.experimentID = experimentID
	c.status = experimenter.StatusSubmitted
	if c.experiment.Timeout > 0 {
		c.armWatchdog(logger)
	}
	c.lock.Unlock()

	logger.Info("submitted", lager.Data{"experiment-id": experimentID})
	return nil
}

// PollStatus refreshes the experiment's status from the agency. Status
// reporting favors availability over freshness: any trouble resolving or
// fetching the batch leaves the last known status in place and returns it.
// Reaching a terminal status disarms the watchdog and tears down the
// transfer endpoint; that teardown happens at most once across the poll,
// cancel, and timeout paths.
func (c *Controller) PollStatus(logger lager.Logger) experimenter.Status {
	logger = logger.Session("poll-status", lager.Data{"guid": c.experiment.Guid})

	if err := c.resolveBatch(logger); err != nil {
		logger.Info("batch-unresolved", lager.Data{"error": err.Error(), "status": c.Status()})
		return c.Status()
	}

	detail, err := c.agencyClient.FetchBatch(logger, c.BatchID())
	if err != nil {
		logger.Error("fetch-batch-failed", err)
		return c.Status()
	}

	status := experimenter.StatusFromBatchState(detail.State)
	if status == experimenter.StatusUnknown {
		logger.Info("unrecognized-batch-state", lager.Data{"state": detail.State})
		return c.Status()
	}

	c.lock.Lock()
	c.status = status
	if status == experimenter.StatusFailed {
		c.failureReason = latestFailureDiagnostic(detail.History)
	}
	c.lock.Unlock()

	if status.Terminal() {
		logger.Info("terminal-status-reached", lager.Data{"status": status})
		c.disarmWatchdog(logger)
		if err := c.stopEndpoint(logger); err != nil {
			logger.Error("teardown-failed", err)
		}
	}

	return status
}

// Cancel disarms the watchdog, asks the agency to delete the batch, and
// tears down the transfer endpoint. It reports whether the remote state
// confirms the cancellation. When the batch cannot be resolved it gives up
// with false and no error.
func (c *Controller) Cancel(logger lager.Logger) (bool, error) {
	logger = logger.Session("cancel", lager.Data{"guid": c.experiment.Guid})

	if c.ExperimentID() == "" {
		logger.Info("not-submitted")
		return false, nil
	}

	if err := c.resolveBatch(logger); err != nil {
		logger.Info("batch-unresolved-giving-up", lager.Data{"error": err.Error()})
		return false, nil
	}

	c.disarmWatchdog(logger)

	var result *multierror.Error

	state, err := c.agencyClient.DeleteBatch(logger, c.BatchID())
	if err != nil {
		logger.Error("delete-batch-failed", err)
		result = multierror.Append(result, err)
	}

	if err := c.stopEndpoint(logger); err != nil {
		result = multierror.Append(result, err)
	}

	cancelled := state == experimenter.BatchStateCancelled
	if cancelled {
		c.lock.Lock()
		c.status = experimenter.StatusCancelled
		c.lock.Unlock()
		logger.Info("cancelled")
	}

	return cancelled, result.ErrorOrNil()
}

// FetchOutput retrieves the named stream of the experiment's batch, such
// as its stdout, for diagnostics.
func (c *Controller) FetchOutput(logger lager.Logger, streamName string) (string, error) {
	logger = logger.Session("fetch-output", lager.Data{"guid": c.experiment.Guid})

	if err := c.resolveBatch(logger); err != nil {
		return "", err
	}

	return c.agencyClient.FetchBatchStream(logger, c.BatchID(), streamName)
}

// Monitor returns a runner that polls the experiment on the given cadence
// and exits once a terminal status is reached.
func (c *Controller) Monitor(logger lager.Logger, pollInterval time.Duration) ifrit.Runner {
	logger = logger.Session("monitor", lager.Data{"guid": c.experiment.Guid})

	return ifrit.RunFunc(func(signals <-chan os.Signal, ready chan<- struct{}) error {
		ticker := c.clock.NewTicker(pollInterval)
		defer ticker.Stop()

		close(ready)

		for {
			select {
			case <-signals:
				logger.Info("exiting-monitor-loop")
				return nil

			case <-ticker.C():
				status := c.PollStatus(logger)
				if status.Terminal() {
					logger.Info("monitor-complete", lager.Data{"status": status})
					return nil
				}
			}
		}
	})
}

// resolveBatch lazily discovers the batch tracking this experiment by
// scanning the agency's batches for a matching experiment id. Cached after
// the first success.
func (c *Controller) resolveBatch(logger lager.Logger) error {
	c.lock.Lock()
	batchID := c.batchID
	experimentID := c.experimentID
	c.lock.Unlock()

	if batchID != "" {
		return nil
	}

	batches, err := c.agencyClient.ListBatches(logger, experimentID)
	if err != nil {
		return err
	}

	for _, batch := range batches {
		if batch.ExperimentID == experimentID {
			c.lock.Lock()
			c.batchID = batch.ID
			c.lock.Unlock()

			logger.Debug("batch-resolved", lager.Data{"batch-id": batch.ID})
			return nil
		}
	}

	return experimenter.ErrBatchNotFound
}

// stopEndpoint tears the transfer endpoint down at most once, whichever
// path gets here first.
func (c *Controller) stopEndpoint(logger lager.Logger) error {
	c.lock.Lock()
	if c.endpoint == nil || c.endpointStopped {
		c.lock.Unlock()
		return nil
	}
	c.endpointStopped = true
	c.lock.Unlock()

	if err := c.endpoint.Stop(logger); err != nil {
		logger.Error("endpoint-stop-failed", err)
		return err
	}

	return nil
}

// armWatchdog schedules the one-shot timeout cancellation. Callers must
// hold the lock.
func (c *Controller) armWatchdog(logger lager.Logger) {
	c.watchdogArmed = true
	c.watchdogCancel = make(chan struct{})

	cancelChan := c.watchdogCancel
	timer := c.clock.NewTimer(c.experiment.Timeout)

	logger.Info("watchdog-armed", lager.Data{"timeout": c.experiment.Timeout.String()})

	go func() {
		defer timer.Stop()

		select {
		case <-timer.C():
			if !c.disarmWatchdog(logger) {
				// A terminal transition won the race; nothing to cancel.
				return
			}

			logger.Info("timeout-elapsed")
			if _, err := c.Cancel(logger); err != nil {
				logger.Error("timeout-cancel-failed", err)
			}

		case <-cancelChan:
		}
	}()
}

// disarmWatchdog atomically claims the watchdog. It reports whether the
// watchdog was still armed, so firing and disarming is a single decision:
// exactly one of the timeout path and a terminal transition proceeds.
func (c *Controller) disarmWatchdog(logger lager.Logger) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	if !c.watchdogArmed {
		return false
	}

	c.watchdogArmed = false
	close(c.watchdogCancel)
	logger.Debug("watchdog-disarmed")
	return true
}

func latestFailureDiagnostic(history []experimenter.BatchEvent) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].State == experimenter.BatchStateFailed {
			return history[i].DebugInfo
		}
	}
	return ""
}
