package initializer

import (
	"net/http"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/experimenter"
	"code.cloudfoundry.org/experimenter/agency"
	"code.cloudfoundry.org/experimenter/commandrunner"
	"code.cloudfoundry.org/experimenter/lifecycle"
	"code.cloudfoundry.org/experimenter/portpool"
	"code.cloudfoundry.org/experimenter/transferstore"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/workpool"
)

// Components is the composition root: one shared port pool and command
// runner, plus factories for per-experiment endpoints and controllers. The
// pool is explicitly constructed here and handed to everything that needs
// it; nothing reaches for process-global state.
type Components struct {
	Pool         *portpool.Pool
	Runner       commandrunner.Runner
	AgencyClient experimenter.AgencyClient
	Clock        clock.Clock

	config Configuration
}

func Initialize(logger lager.Logger, config Configuration, clk clock.Clock) (*Components, error) {
	if err := config.Validate(); err != nil {
		logger.Error("invalid-configuration", err)
		return nil, err
	}

	pool := portpool.NewPool(clk)
	pool.ConfigureRange(logger, config.FirstPort, config.LastPort)

	workPool, err := workpool.NewWorkPool(config.MaxConcurrentCommands)
	if err != nil {
		return nil, err
	}

	agencyClient := agency.NewClient(
		&http.Client{Timeout: time.Duration(config.RequestTimeout)},
		agency.Config{
			URL:      config.AgencyURL,
			Username: config.AgencyUsername,
			Password: config.AgencyPassword,
		},
	)

	return &Components{
		Pool:         pool,
		Runner:       commandrunner.NewRunner(clk, workPool),
		AgencyClient: agencyClient,
		Clock:        clk,
		config:       config,
	}, nil
}

// NewTransferEndpoint creates an endpoint with fresh credentials over the
// shared pool and runner.
func (c *Components) NewTransferEndpoint() (*transferstore.Endpoint, error) {
	return transferstore.NewEndpoint(c.Pool, c.Runner, transferstore.Config{
		ContainerImage:   c.config.TransferImage,
		InternalPort:     c.config.TransferInternalPort,
		SharedDir:        c.config.TransferSharedDir,
		AdvertisedHost:   c.config.AdvertisedHost,
		PortPollInterval: time.Duration(c.config.PortPollInterval),
		PortMaxWait:      time.Duration(c.config.PortMaxWait),
		StartRetries:     c.config.StartRetries,
		StopRetries:      c.config.StopRetries,
		RetryDelay:       time.Duration(c.config.RetryDelay),
	})
}

// NewController wires a lifecycle controller for the experiment. endpoint
// may be nil when the experiment moves no data.
func (c *Components) NewController(experiment experimenter.Experiment, endpoint experimenter.TransferEndpoint) *lifecycle.Controller {
	return lifecycle.NewController(experiment, c.AgencyClient, endpoint, c.Clock, nil)
}

func (c *Components) StatusPollInterval() time.Duration {
	return time.Duration(c.config.StatusPollInterval)
}
