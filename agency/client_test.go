package agency_test

import (
	"net/http"

	"code.cloudfoundry.org/experimenter"
	"code.cloudfoundry.org/experimenter/agency"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("Client", func() {
	var (
		logger *lagertest.TestLogger
		server *ghttp.Server
		client experimenter.AgencyClient
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("test")
		server = ghttp.NewServer()

		client = agency.NewClient(http.DefaultClient, agency.Config{
			URL:      server.URL(),
			Username: "user",
			Password: "hunter2",
		})
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("SubmitExperiment", func() {
		var job experimenter.JobDescription

		BeforeEach(func() {
			job = experimenter.JobDescription{
				Guid:     "exp-guid",
				Command:  "python train.py",
				Image:    "example/trainer",
				MemoryMB: 2048,
				Inputs:   []experimenter.ParameterDescription{},
				Outputs:  []experimenter.ParameterDescription{},
			}
		})

		It("POSTs the job description with basic auth and returns the experiment id", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("POST", "/experiments"),
				ghttp.VerifyBasicAuth("user", "hunter2"),
				ghttp.VerifyContentType("application/json"),
				ghttp.VerifyJSONRepresenting(job),
				ghttp.RespondWithJSONEncoded(http.StatusCreated, map[string]string{"experiment_id": "exp-123"}),
			))

			experimentID, err := client.SubmitExperiment(logger, job)
			Expect(err).NotTo(HaveOccurred())
			Expect(experimentID).To(Equal("exp-123"))
		})

		Context("when the agency responds with an error status", func() {
			It("returns a TransportError", func() {
				server.AppendHandlers(ghttp.RespondWith(http.StatusInternalServerError, "boom"))

				_, err := client.SubmitExperiment(logger, job)
				Expect(err).To(BeAssignableToTypeOf(experimenter.TransportError{}))
			})
		})

		Context("when the response is not JSON", func() {
			It("returns a TransportError", func() {
				server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "<html>nope</html>"))

				_, err := client.SubmitExperiment(logger, job)
				Expect(err).To(BeAssignableToTypeOf(experimenter.TransportError{}))
			})
		})

		Context("when the agency is unreachable", func() {
			It("returns a TransportError", func() {
				unreachable := agency.NewClient(http.DefaultClient, agency.Config{
					URL: "http://127.0.0.1:0",
				})

				_, err := unreachable.SubmitExperiment(logger, job)
				Expect(err).To(BeAssignableToTypeOf(experimenter.TransportError{}))
			})
		})
	})

	Describe("ListBatches", func() {
		It("filters by experiment id and decodes the batches", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/batches", "experiment_id=exp-123"),
				ghttp.VerifyBasicAuth("user", "hunter2"),
				ghttp.RespondWithJSONEncoded(http.StatusOK, []experimenter.Batch{
					{ID: "batch-1", ExperimentID: "exp-123"},
				}),
			))

			batches, err := client.ListBatches(logger, "exp-123")
			Expect(err).NotTo(HaveOccurred())
			Expect(batches).To(Equal([]experimenter.Batch{{ID: "batch-1", ExperimentID: "exp-123"}}))
		})
	})

	Describe("FetchBatch", func() {
		It("decodes the batch state and history", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/batches/batch-1"),
				ghttp.RespondWithJSONEncoded(http.StatusOK, experimenter.BatchDetail{
					ID:    "batch-1",
					State: experimenter.BatchStateFailed,
					History: []experimenter.BatchEvent{
						{State: experimenter.BatchStateRunning},
						{State: experimenter.BatchStateFailed, DebugInfo: "OOM killed"},
					},
				}),
			))

			detail, err := client.FetchBatch(logger, "batch-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.State).To(Equal(experimenter.BatchStateFailed))
			Expect(detail.History).To(HaveLen(2))
			Expect(detail.History[1].DebugInfo).To(Equal("OOM killed"))
		})
	})

	Describe("DeleteBatch", func() {
		It("returns the remote state after deletion", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("DELETE", "/batches/batch-1"),
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]string{"state": experimenter.BatchStateCancelled}),
			))

			state, err := client.DeleteBatch(logger, "batch-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(state).To(Equal(experimenter.BatchStateCancelled))
		})
	})

	Describe("FetchBatchStream", func() {
		It("returns the raw stream text", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/batches/batch-1/streams/stdout"),
				ghttp.RespondWith(http.StatusOK, "epoch 1: loss 0.32\n"),
			))

			text, err := client.FetchBatchStream(logger, "batch-1", "stdout")
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("epoch 1: loss 0.32\n"))
		})
	})
})
