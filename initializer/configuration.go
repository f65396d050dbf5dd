package initializer

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"code.cloudfoundry.org/durationjson"
)

var (
	ErrAgencyURLMissing     = errors.New("agency url must be set")
	ErrPortRangeInvalid     = errors.New("first port must be positive and no greater than last port")
	ErrTransferImageMissing = errors.New("transfer endpoint image must be set")
)

type Configuration struct {
	AgencyURL      string `json:"agency_url"`
	AgencyUsername string `json:"agency_username"`
	AgencyPassword string `json:"agency_password"`

	FirstPort int `json:"first_port"`
	LastPort  int `json:"last_port"`

	TransferImage        string `json:"transfer_image"`
	TransferInternalPort int    `json:"transfer_internal_port"`
	TransferSharedDir    string `json:"transfer_shared_dir"`
	AdvertisedHost       string `json:"advertised_host"`

	PortPollInterval   durationjson.Duration `json:"port_poll_interval,omitempty"`
	PortMaxWait        durationjson.Duration `json:"port_max_wait,omitempty"`
	StartRetries       int                   `json:"start_retries"`
	StopRetries        int                   `json:"stop_retries"`
	RetryDelay         durationjson.Duration `json:"retry_delay,omitempty"`
	StatusPollInterval durationjson.Duration `json:"status_poll_interval,omitempty"`
	RequestTimeout     durationjson.Duration `json:"request_timeout,omitempty"`

	MaxConcurrentCommands int `json:"max_concurrent_commands"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		FirstPort:             10000,
		LastPort:              10099,
		TransferInternalPort:  22,
		TransferSharedDir:     "/tmp/experimenter",
		AdvertisedHost:        "localhost",
		PortPollInterval:      durationjson.Duration(1 * time.Second),
		PortMaxWait:           durationjson.Duration(1 * time.Minute),
		StartRetries:          3,
		StopRetries:           3,
		RetryDelay:            durationjson.Duration(5 * time.Second),
		StatusPollInterval:    durationjson.Duration(10 * time.Second),
		RequestTimeout:        durationjson.Duration(30 * time.Second),
		MaxConcurrentCommands: 4,
	}
}

// LoadConfiguration reads a JSON configuration file over the defaults.
func LoadConfiguration(path string) (Configuration, error) {
	config := DefaultConfiguration()

	if path == "" {
		return config, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, err
	}

	if err := json.Unmarshal(contents, &config); err != nil {
		return Configuration{}, err
	}

	return config, nil
}

func (c Configuration) Validate() error {
	if c.AgencyURL == "" {
		return ErrAgencyURLMissing
	}

	if c.FirstPort <= 0 || c.FirstPort > c.LastPort {
		return ErrPortRangeInvalid
	}

	if c.TransferImage == "" {
		return ErrTransferImageMissing
	}

	return nil
}
