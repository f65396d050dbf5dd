package initializer_test

import (
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/experimenter/initializer"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Initialize", func() {
	var (
		logger    *lagertest.TestLogger
		fakeClock *fakeclock.FakeClock
		config    initializer.Configuration
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("test")
		fakeClock = fakeclock.NewFakeClock(time.Now())

		config = initializer.DefaultConfiguration()
		config.AgencyURL = "https://agency.example.com"
		config.TransferImage = "example/sshd:latest"
		config.FirstPort = 5000
		config.LastPort = 5002
	})

	It("wires the shared components and configures the pool", func() {
		components, err := initializer.Initialize(logger, config, fakeClock)
		Expect(err).NotTo(HaveOccurred())

		Expect(components.Pool.List()).To(Equal([]int{5000, 5001, 5002}))
		Expect(components.Runner).NotTo(BeNil())
		Expect(components.AgencyClient).NotTo(BeNil())
		Expect(components.StatusPollInterval()).To(Equal(time.Duration(config.StatusPollInterval)))
	})

	It("creates endpoints with distinct credentials over the shared pool", func() {
		components, err := initializer.Initialize(logger, config, fakeClock)
		Expect(err).NotTo(HaveOccurred())

		first, err := components.NewTransferEndpoint()
		Expect(err).NotTo(HaveOccurred())

		second, err := components.NewTransferEndpoint()
		Expect(err).NotTo(HaveOccurred())

		Expect(first.Username()).NotTo(Equal(second.Username()))

		Expect(first.AcquirePort(logger)).To(Succeed())
		Expect(second.AcquirePort(logger)).To(Succeed())
		Expect(first.ExternalPort()).NotTo(Equal(second.ExternalPort()))
	})

	Context("with an invalid configuration", func() {
		It("refuses to initialize", func() {
			config.AgencyURL = ""

			_, err := initializer.Initialize(logger, config, fakeClock)
			Expect(err).To(MatchError(initializer.ErrAgencyURLMissing))
		})
	})
})
