package experimenter

import "code.cloudfoundry.org/lager/v3"

//go:generate counterfeiter -o fakes/fake_agency_client.go . AgencyClient

// AgencyClient is the capability interface over the remote execution
// agency. Implementations authenticate every request with the agency
// credentials they were constructed with.
type AgencyClient interface {
	SubmitExperiment(logger lager.Logger, job JobDescription) (string, error)
	ListBatches(logger lager.Logger, experimentID string) ([]Batch, error)
	FetchBatch(logger lager.Logger, batchID string) (BatchDetail, error)
	DeleteBatch(logger lager.Logger, batchID string) (string, error)
	FetchBatchStream(logger lager.Logger, batchID, streamName string) (string, error)
}

//go:generate counterfeiter -o fakes/fake_transfer_endpoint.go . TransferEndpoint

// TransferEndpoint is an ephemeral SSH-accessible container used to move
// files between the client host and the experiment container.
type TransferEndpoint interface {
	AcquirePort(logger lager.Logger) error
	Start(logger lager.Logger) error
	Stop(logger lager.Logger) error
}

// Batch is the agency's execution-tracking record for one submitted job.
type Batch struct {
	ID           string `json:"id"`
	ExperimentID string `json:"experiment_id"`
}

type BatchDetail struct {
	ID      string       `json:"id"`
	State   string       `json:"state"`
	History []BatchEvent `json:"history"`
}

type BatchEvent struct {
	State     string `json:"state"`
	DebugInfo string `json:"debug_info"`
}
