package main

import (
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"code.cloudfoundry.org/experimenter"
	"github.com/ghodss/yaml"
)

// ExperimentDefinition is the YAML document a user hands to the CLI.
// Memory is a human-readable size string ("512M", "4G"); a timeout of 0
// disables the watchdog.
type ExperimentDefinition struct {
	Command        string                `json:"command"`
	Image          string                `json:"image"`
	Memory         string                `json:"memory"`
	GPUs           []string              `json:"gpus,omitempty"`
	TimeoutMinutes int                   `json:"timeout_minutes"`
	Inputs         []ParameterDefinition `json:"inputs"`
	Outputs        []ParameterDefinition `json:"outputs"`
}

type ParameterDefinition struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func LoadDefinition(path string) (ExperimentDefinition, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return ExperimentDefinition{}, err
	}

	var definition ExperimentDefinition
	if err := yaml.Unmarshal(contents, &definition); err != nil {
		return ExperimentDefinition{}, err
	}

	if definition.Command == "" {
		return ExperimentDefinition{}, fmt.Errorf("experiment definition is missing a command")
	}
	if definition.Image == "" {
		return ExperimentDefinition{}, fmt.Errorf("experiment definition is missing an image")
	}

	return definition, nil
}

func (d ExperimentDefinition) ToExperiment(guid string) (experimenter.Experiment, error) {
	memoryMB := 0
	if d.Memory != "" {
		bytes, err := bytefmt.ToMegabytes(d.Memory)
		if err != nil {
			return experimenter.Experiment{}, fmt.Errorf("invalid memory %q: %s", d.Memory, err)
		}
		memoryMB = int(bytes)
	}

	experiment := experimenter.Experiment{
		Guid:         guid,
		Command:      d.Command,
		Image:        d.Image,
		MemoryMB:     memoryMB,
		RequiredGPUs: d.GPUs,
		Timeout:      time.Duration(d.TimeoutMinutes) * time.Minute,
	}

	for _, input := range d.Inputs {
		experiment.Inputs = append(experiment.Inputs, experimenter.Input{
			Name: input.Name,
			Path: input.Path,
		})
	}

	for _, output := range d.Outputs {
		experiment.Outputs = append(experiment.Outputs, experimenter.Output{
			Name: output.Name,
			Path: output.Path,
		})
	}

	return experiment, nil
}

// NeedsTransfer reports whether the definition moves any data and so needs
// an SSH transfer endpoint.
func (d ExperimentDefinition) NeedsTransfer() bool {
	return len(d.Inputs) > 0 || len(d.Outputs) > 0
}
