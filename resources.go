package experimenter

import "time"

type Status string

const (
	StatusUnknown   Status = "unknown"
	StatusSubmitted Status = "submitted"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further status transitions can occur.
func (s Status) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Batch states as reported by the remote agency.
const (
	BatchStateSubmitted = "SUBMITTED"
	BatchStateRunning   = "RUNNING"
	BatchStateSucceeded = "SUCCEEDED"
	BatchStateFailed    = "FAILED"
	BatchStateCancelled = "CANCELLED"
)

func StatusFromBatchState(state string) Status {
	switch state {
	case BatchStateSubmitted:
		return StatusSubmitted
	case BatchStateRunning:
		return StatusRunning
	case BatchStateSucceeded:
		return StatusSucceeded
	case BatchStateFailed:
		return StatusFailed
	case BatchStateCancelled:
		return StatusCancelled
	}
	return StatusUnknown
}

// Experiment is the declarative definition of one containerized experiment.
// It carries everything needed to build a job description; the mutable
// lifecycle state lives in lifecycle.Controller.
type Experiment struct {
	Guid string `json:"guid"`

	Command      string   `json:"command"`
	Image        string   `json:"image"`
	MemoryMB     int      `json:"memory_mb"`
	RequiredGPUs []string `json:"required_gpus,omitempty"`

	Timeout time.Duration `json:"timeout"`

	Inputs  []Input  `json:"inputs"`
	Outputs []Output `json:"outputs"`
}

type Input struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Connector Connector `json:"-"`
}

type Output struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Connector Connector `json:"-"`
}

// NewExperimentWithTransfer returns a copy of exp in which every input and
// output that has no connector yet is bound to one produced by connectorFor,
// keyed by the parameter's path. This replaces per-experiment hand wiring
// when a transfer endpoint serves all parameters.
func NewExperimentWithTransfer(exp Experiment, connectorFor func(path string) Connector) Experiment {
	inputs := make([]Input, len(exp.Inputs))
	copy(inputs, exp.Inputs)
	for i := range inputs {
		if inputs[i].Connector == nil {
			inputs[i].Connector = connectorFor(inputs[i].Path)
		}
	}

	outputs := make([]Output, len(exp.Outputs))
	copy(outputs, exp.Outputs)
	for i := range outputs {
		if outputs[i].Connector == nil {
			outputs[i].Connector = connectorFor(outputs[i].Path)
		}
	}

	exp.Inputs = inputs
	exp.Outputs = outputs
	return exp
}

// JobDescription is the document submitted to the remote agency.
type JobDescription struct {
	Guid         string                 `json:"guid,omitempty"`
	Command      string                 `json:"command"`
	Image        string                 `json:"image"`
	MemoryMB     int                    `json:"memory_mb"`
	RequiredGPUs []string               `json:"required_gpus,omitempty"`
	Inputs       []ParameterDescription `json:"inputs"`
	Outputs      []ParameterDescription `json:"outputs"`
}

type ParameterDescription struct {
	Name      string               `json:"name"`
	Connector ConnectorDescription `json:"connector"`
}

// NewJobDescription builds the agency document from an experiment
// definition. Pure transformation; parameters without connectors get a
// zero-valued descriptor, which the agency rejects, so callers are expected
// to bind connectors first (see NewExperimentWithTransfer).
func NewJobDescription(exp Experiment) JobDescription {
	job := JobDescription{
		Guid:         exp.Guid,
		Command:      exp.Command,
		Image:        exp.Image,
		MemoryMB:     exp.MemoryMB,
		RequiredGPUs: exp.RequiredGPUs,
		Inputs:       []ParameterDescription{},
		Outputs:      []ParameterDescription{},
	}

	for _, input := range exp.Inputs {
		job.Inputs = append(job.Inputs, ParameterDescription{
			Name:      input.Name,
			Connector: describeConnector(input.Connector),
		})
	}

	for _, output := range exp.Outputs {
		job.Outputs = append(job.Outputs, ParameterDescription{
			Name:      output.Name,
			Connector: describeConnector(output.Connector),
		})
	}

	return job
}

func describeConnector(connector Connector) ConnectorDescription {
	if connector == nil {
		return ConnectorDescription{}
	}
	return connector.Describe()
}
