package transferstore

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"code.cloudfoundry.org/experimenter"
	"code.cloudfoundry.org/experimenter/commandrunner"
	"code.cloudfoundry.org/experimenter/portpool"
	"code.cloudfoundry.org/lager/v3"
)

type Config struct {
	ContainerImage string
	InternalPort   int
	SharedDir      string
	AdvertisedHost string

	PortPollInterval time.Duration
	PortMaxWait      time.Duration

	StartRetries int
	StopRetries  int
	RetryDelay   time.Duration
}

// Endpoint manages one ephemeral SSH-server container and the pooled port
// it listens on. It owns its leased port exclusively until Stop returns the
// port to the pool.
type Endpoint struct {
	pool   *portpool.Pool
	runner commandrunner.Runner
	config Config

	username string
	password string

	lock         sync.Mutex
	externalPort int
	containerID  string
}

// NewEndpoint creates an endpoint with fresh random credentials. No port is
// leased and no container is started until AcquirePort and Start are called.
func NewEndpoint(pool *portpool.Pool, runner commandrunner.Runner, config Config) (*Endpoint, error) {
	username, err := generateCredential()
	if err != nil {
		return nil, err
	}

	password, err := generateCredential()
	if err != nil {
		return nil, err
	}

	return &Endpoint{
		pool:     pool,
		runner:   runner,
		config:   config,
		username: username,
		password: password,
	}, nil
}

func (e *Endpoint) Username() string { return e.username }
func (e *Endpoint) Password() string { return e.password }

func (e *Endpoint) ExternalPort() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.externalPort
}

func (e *Endpoint) ContainerID() string {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.containerID
}

// AcquirePort leases the endpoint's external port from the pool, blocking
// for up to the configured max wait.
func (e *Endpoint) AcquirePort(logger lager.Logger) error {
	port, err := e.pool.Acquire(logger, e.config.PortPollInterval, e.config.PortMaxWait)
	if err != nil {
		return err
	}

	e.lock.Lock()
	e.externalPort = port
	e.lock.Unlock()
	return nil
}

// Start launches the SSH-server container on the leased port and records
// its identifier. It requires a leased port and issues no commands without
// one.
func (e *Endpoint) Start(logger lager.Logger) error {
	logger = logger.Session("start-transfer-endpoint")

	e.lock.Lock()
	port := e.externalPort
	e.lock.Unlock()

	if port == 0 {
		logger.Error("no-port-leased", experimenter.ErrNoPortLeased)
		return experimenter.ErrNoPortLeased
	}

	command := fmt.Sprintf(
		"docker run -d -p %d:%d -v %s:/data -e SSH_USERNAME=%s -e SSH_PASSWORD=%s %s",
		port,
		e.config.InternalPort,
		e.config.SharedDir,
		e.username,
		e.password,
		e.config.ContainerImage,
	)

	output, err := e.runner.Run(logger, command, e.config.StartRetries, e.config.RetryDelay)
	if err != nil {
		logger.Error("start-command-failed", err)
		return experimenter.StartFailedError{Err: err}
	}

	containerID := strings.TrimSpace(output)

	e.lock.Lock()
	e.containerID = containerID
	e.lock.Unlock()

	logger.Info("started", lager.Data{"container-id": containerID, "port": port})
	return nil
}

// Stop shuts down and removes the container, then returns the leased port
// to the pool. If either command exhausts its retries the port is kept out
// of the pool on purpose: the container's state is unknown and a leaked
// port is safer than leasing it to a second endpoint.
func (e *Endpoint) Stop(logger lager.Logger) error {
	logger = logger.Session("stop-transfer-endpoint")

	e.lock.Lock()
	port := e.externalPort
	containerID := e.containerID
	e.lock.Unlock()

	if containerID == "" {
		if port == 0 {
			logger.Debug("nothing-to-stop")
			return nil
		}

		// Leased but never started; there is no container whose state
		// could be unknown, so the port can go straight back.
		e.releasePort(logger, port)
		return nil
	}

	logger = logger.WithData(lager.Data{"container-id": containerID})

	_, err := e.runner.Run(logger, "docker stop "+containerID, e.config.StopRetries, e.config.RetryDelay)
	if err != nil {
		logger.Error("stop-command-failed", err, lager.Data{"leaked-port": port})
		return experimenter.StopFailedError{Err: err}
	}

	_, err = e.runner.Run(logger, "docker rm "+containerID, e.config.StopRetries, e.config.RetryDelay)
	if err != nil {
		logger.Error("remove-command-failed", err, lager.Data{"leaked-port": port})
		return experimenter.StopFailedError{Err: err}
	}

	e.lock.Lock()
	e.containerID = ""
	e.lock.Unlock()

	if port != 0 {
		e.releasePort(logger, port)
	}

	logger.Info("stopped")
	return nil
}

// Connector describes SSH access to a path under the endpoint's shared
// directory, suitable for embedding in a job description.
func (e *Endpoint) Connector(path string) experimenter.Connector {
	return experimenter.SSHConnector{
		Host:     e.config.AdvertisedHost,
		Port:     e.ExternalPort(),
		Path:     path,
		Username: e.username,
		Password: e.password,
	}
}

func (e *Endpoint) releasePort(logger lager.Logger, port int) {
	if err := e.pool.Release(logger, port); err != nil {
		logger.Error("release-failed", err, lager.Data{"port": port})
	}

	e.lock.Lock()
	e.externalPort = 0
	e.lock.Unlock()
}
