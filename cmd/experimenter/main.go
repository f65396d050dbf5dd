package main

import (
	"flag"
	"fmt"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/experimenter"
	"code.cloudfoundry.org/experimenter/guidgen"
	"code.cloudfoundry.org/experimenter/initializer"
	"code.cloudfoundry.org/experimenter/transferstore"
	"code.cloudfoundry.org/lager/v3/lagerflags"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/sigmon"
)

var configPath = flag.String(
	"config",
	"",
	"path to the JSON configuration file",
)

var definitionPath = flag.String(
	"experiment",
	"",
	"path to the YAML experiment definition",
)

func main() {
	lagerflags.AddFlags(flag.CommandLine)
	flag.Parse()

	logger, _ := lagerflags.New("experimenter")

	if *definitionPath == "" {
		fmt.Fprintln(os.Stderr, "usage: experimenter -experiment <definition.yml> [-config <config.json>]")
		os.Exit(2)
	}

	config, err := initializer.LoadConfiguration(*configPath)
	if err != nil {
		logger.Fatal("failed-to-load-configuration", err)
	}

	definition, err := LoadDefinition(*definitionPath)
	if err != nil {
		logger.Fatal("failed-to-load-definition", err)
	}

	clk := clock.NewClock()

	components, err := initializer.Initialize(logger, config, clk)
	if err != nil {
		logger.Fatal("failed-to-initialize", err)
	}

	guid := guidgen.DefaultGenerator.Guid(logger)

	experiment, err := definition.ToExperiment(guid)
	if err != nil {
		logger.Fatal("invalid-definition", err)
	}

	var endpoint *transferstore.Endpoint
	if definition.NeedsTransfer() {
		endpoint, err = components.NewTransferEndpoint()
		if err != nil {
			logger.Fatal("failed-to-create-endpoint", err)
		}

		if err := endpoint.AcquirePort(logger); err != nil {
			logger.Fatal("failed-to-lease-port", err)
		}

		experiment = experimenter.NewExperimentWithTransfer(experiment, endpoint.Connector)
	}

	controller := components.NewController(experiment, asTransferEndpoint(endpoint))

	if err := controller.Submit(logger); err != nil {
		logger.Fatal("failed-to-submit", err)
	}

	monitor := ifrit.Invoke(sigmon.New(controller.Monitor(logger, components.StatusPollInterval())))

	if err := <-monitor.Wait(); err != nil {
		logger.Fatal("monitor-failed", err)
	}

	status := controller.Status()
	fmt.Printf("experiment %s finished with status %s\n", controller.ExperimentID(), status)

	if status == experimenter.StatusFailed {
		fmt.Printf("failure: %s\n", controller.FailureReason())

		if stdout, err := controller.FetchOutput(logger, "stdout"); err == nil {
			fmt.Println(stdout)
		}

		os.Exit(1)
	}
}

// asTransferEndpoint avoids handing the controller a non-nil interface
// wrapping a nil *transferstore.Endpoint.
func asTransferEndpoint(endpoint *transferstore.Endpoint) experimenter.TransferEndpoint {
	if endpoint == nil {
		return nil
	}
	return endpoint
}
