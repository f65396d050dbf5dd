package agency

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"code.cloudfoundry.org/experimenter"
	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/rata"
)

type Config struct {
	URL      string
	Username string
	Password string
}

type client struct {
	httpClient *http.Client
	config     Config
	reqGen     *rata.RequestGenerator
}

// NewClient returns an AgencyClient speaking the agency's HTTP API with
// basic authentication on every request.
func NewClient(httpClient *http.Client, config Config) experimenter.AgencyClient {
	return &client{
		httpClient: httpClient,
		config:     config,
		reqGen:     rata.NewRequestGenerator(config.URL, Routes),
	}
}

func (c *client) SubmitExperiment(logger lager.Logger, job experimenter.JobDescription) (string, error) {
	logger = logger.Session("submit-experiment")

	var payload struct {
		ExperimentID string `json:"experiment_id"`
	}

	err := c.doRequest(logger, SubmitExperiment, nil, nil, job, &payload)
	if err != nil {
		return "", err
	}

	return payload.ExperimentID, nil
}

func (c *client) ListBatches(logger lager.Logger, experimentID string) ([]experimenter.Batch, error) {
	logger = logger.Session("list-batches")

	query := url.Values{}
	if experimentID != "" {
		query.Set("experiment_id", experimentID)
	}

	var batches []experimenter.Batch
	err := c.doRequest(logger, ListBatches, nil, query, nil, &batches)
	if err != nil {
		return nil, err
	}

	return batches, nil
}

func (c *client) FetchBatch(logger lager.Logger, batchID string) (experimenter.BatchDetail, error) {
	logger = logger.Session("fetch-batch", lager.Data{"batch-id": batchID})

	var detail experimenter.BatchDetail
	err := c.doRequest(logger, FetchBatch, rata.Params{"batch_id": batchID}, nil, nil, &detail)
	if err != nil {
		return experimenter.BatchDetail{}, err
	}

	return detail, nil
}

func (c *client) DeleteBatch(logger lager.Logger, batchID string) (string, error) {
	logger = logger.Session("delete-batch", lager.Data{"batch-id": batchID})

	var payload struct {
		State string `json:"state"`
	}

	err := c.doRequest(logger, DeleteBatch, rata.Params{"batch_id": batchID}, nil, nil, &payload)
	if err != nil {
		return "", err
	}

	return payload.State, nil
}

func (c *client) FetchBatchStream(logger lager.Logger, batchID, streamName string) (string, error) {
	logger = logger.Session("fetch-batch-stream", lager.Data{"batch-id": batchID, "stream": streamName})

	response, err := c.do(logger, FetchBatchStream, rata.Params{"batch_id": batchID, "stream_name": streamName}, nil, nil)
	if err != nil {
		return "", err
	}

	defer response.Body.Close()

	text, err := io.ReadAll(response.Body)
	if err != nil {
		return "", c.transportError(logger, FetchBatchStream, err)
	}

	return string(text), nil
}

func (c *client) doRequest(logger lager.Logger, name string, params rata.Params, query url.Values, request, response interface{}) error {
	httpResponse, err := c.do(logger, name, params, query, request)
	if err != nil {
		return err
	}

	defer httpResponse.Body.Close()

	err = json.NewDecoder(httpResponse.Body).Decode(response)
	if err != nil {
		return c.transportError(logger, name, err)
	}

	return nil
}

func (c *client) do(logger lager.Logger, name string, params rata.Params, query url.Values, request interface{}) (*http.Response, error) {
	var body io.Reader
	if request != nil {
		encoded, err := json.Marshal(request)
		if err != nil {
			return nil, c.transportError(logger, name, err)
		}
		body = bytes.NewReader(encoded)
	}

	httpRequest, err := c.reqGen.CreateRequest(name, params, body)
	if err != nil {
		return nil, c.transportError(logger, name, err)
	}

	httpRequest.SetBasicAuth(c.config.Username, c.config.Password)
	if request != nil {
		httpRequest.Header.Set("Content-Type", "application/json")
	}
	if query != nil {
		httpRequest.URL.RawQuery = query.Encode()
	}

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, c.transportError(logger, name, err)
	}

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		httpResponse.Body.Close()
		return nil, c.transportError(logger, name, fmt.Errorf("unexpected status %d", httpResponse.StatusCode))
	}

	return httpResponse, nil
}

func (c *client) transportError(logger lager.Logger, op string, err error) error {
	transportErr := experimenter.TransportError{Op: op, Err: err}
	logger.Error("request-failed", transportErr)
	return transportErr
}
