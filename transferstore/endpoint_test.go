package transferstore_test

import (
	"errors"
	"fmt"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/experimenter"
	"code.cloudfoundry.org/experimenter/commandrunner/fakecommandrunner"
	"code.cloudfoundry.org/experimenter/portpool"
	"code.cloudfoundry.org/experimenter/transferstore"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Endpoint", func() {
	var (
		logger     *lagertest.TestLogger
		fakeClock  *fakeclock.FakeClock
		pool       *portpool.Pool
		fakeRunner *fakecommandrunner.FakeRunner
		config     transferstore.Config
		endpoint   *transferstore.Endpoint
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("test")
		fakeClock = fakeclock.NewFakeClock(time.Now())

		pool = portpool.NewPool(fakeClock)
		pool.ConfigureRange(logger, 5000, 5001)

		fakeRunner = new(fakecommandrunner.FakeRunner)

		config = transferstore.Config{
			ContainerImage:   "example/sshd:latest",
			InternalPort:     22,
			SharedDir:        "/var/experiment/shared",
			AdvertisedHost:   "10.0.0.1",
			PortPollInterval: 50 * time.Millisecond,
			PortMaxWait:      0,
			StartRetries:     2,
			StopRetries:      2,
			RetryDelay:       10 * time.Millisecond,
		}

		var err error
		endpoint, err = transferstore.NewEndpoint(pool, fakeRunner, config)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("credentials", func() {
		It("generates fixed-length opaque credentials per instance", func() {
			Expect(endpoint.Username()).To(HaveLen(32))
			Expect(endpoint.Password()).To(HaveLen(32))
			Expect(endpoint.Username()).NotTo(Equal(endpoint.Password()))
		})

		It("generates distinct credentials across instances", func() {
			other, err := transferstore.NewEndpoint(pool, fakeRunner, config)
			Expect(err).NotTo(HaveOccurred())

			Expect(other.Username()).NotTo(Equal(endpoint.Username()))
			Expect(other.Password()).NotTo(Equal(endpoint.Password()))
		})
	})

	Describe("AcquirePort", func() {
		It("leases the head of the pool", func() {
			Expect(endpoint.AcquirePort(logger)).To(Succeed())
			Expect(endpoint.ExternalPort()).To(Equal(5000))
			Expect(pool.List()).To(Equal([]int{5001}))
		})

		Context("when the pool is exhausted", func() {
			BeforeEach(func() {
				for i := 0; i < 2; i++ {
					_, err := pool.Acquire(logger, 50*time.Millisecond, 0)
					Expect(err).NotTo(HaveOccurred())
				}
			})

			It("fails with ErrPortsExhausted", func() {
				Expect(endpoint.AcquirePort(logger)).To(MatchError(experimenter.ErrPortsExhausted))
				Expect(endpoint.ExternalPort()).To(Equal(0))
			})
		})
	})

	Describe("Start", func() {
		Context("without a leased port", func() {
			It("fails with ErrNoPortLeased and issues no commands", func() {
				Expect(endpoint.Start(logger)).To(MatchError(experimenter.ErrNoPortLeased))
				Expect(fakeRunner.RunCallCount()).To(Equal(0))
			})
		})

		Context("with a leased port", func() {
			BeforeEach(func() {
				Expect(endpoint.AcquirePort(logger)).To(Succeed())
				fakeRunner.RunReturns("deadbeefcafe\n", nil)
			})

			It("starts the container with the leased port, bind, and credentials", func() {
				Expect(endpoint.Start(logger)).To(Succeed())

				Expect(fakeRunner.RunCallCount()).To(Equal(1))
				_, command, maxRetries, retryDelay := fakeRunner.RunArgsForCall(0)
				Expect(command).To(ContainSubstring("docker run -d"))
				Expect(command).To(ContainSubstring("-p 5000:22"))
				Expect(command).To(ContainSubstring("-v /var/experiment/shared:/data"))
				Expect(command).To(ContainSubstring("SSH_USERNAME=" + endpoint.Username()))
				Expect(command).To(ContainSubstring("SSH_PASSWORD=" + endpoint.Password()))
				Expect(command).To(HaveSuffix("example/sshd:latest"))
				Expect(maxRetries).To(Equal(2))
				Expect(retryDelay).To(Equal(10 * time.Millisecond))
			})

			It("records the trimmed container identifier", func() {
				Expect(endpoint.Start(logger)).To(Succeed())
				Expect(endpoint.ContainerID()).To(Equal("deadbeefcafe"))
			})

			Context("when the start command exhausts its retries", func() {
				BeforeEach(func() {
					fakeRunner.RunReturns("", experimenter.CommandFailedError{Command: "docker", Err: errors.New("boom")})
				})

				It("fails with StartFailedError and keeps the port leased", func() {
					err := endpoint.Start(logger)
					Expect(err).To(BeAssignableToTypeOf(experimenter.StartFailedError{}))
					Expect(endpoint.ExternalPort()).To(Equal(5000))
					Expect(pool.List()).To(Equal([]int{5001}))
				})
			})
		})
	})

	Describe("Stop", func() {
		Context("after a successful start", func() {
			BeforeEach(func() {
				Expect(endpoint.AcquirePort(logger)).To(Succeed())
				fakeRunner.RunReturns("deadbeefcafe\n", nil)
				Expect(endpoint.Start(logger)).To(Succeed())
				fakeRunner.RunReturns("", nil)
			})

			It("stops then removes the container and returns the port to the pool", func() {
				Expect(endpoint.Stop(logger)).To(Succeed())

				Expect(fakeRunner.RunCallCount()).To(Equal(3))
				_, stopCommand, _, _ := fakeRunner.RunArgsForCall(1)
				Expect(stopCommand).To(Equal("docker stop deadbeefcafe"))
				_, removeCommand, _, _ := fakeRunner.RunArgsForCall(2)
				Expect(removeCommand).To(Equal("docker rm deadbeefcafe"))

				Expect(endpoint.ExternalPort()).To(Equal(0))
				Expect(endpoint.ContainerID()).To(BeEmpty())
				Expect(pool.List()).To(Equal([]int{5001, 5000}))
			})

			Context("when the stop command exhausts its retries", func() {
				BeforeEach(func() {
					fakeRunner.RunStub = func(_ lager.Logger, command string, _ int, _ time.Duration) (string, error) {
						return "", experimenter.CommandFailedError{Command: command, Err: errors.New("daemon unreachable")}
					}
				})

				It("fails with StopFailedError and leaks the port rather than re-leasing it", func() {
					err := endpoint.Stop(logger)
					Expect(err).To(BeAssignableToTypeOf(experimenter.StopFailedError{}))

					Expect(pool.List()).NotTo(ContainElement(5000))
					Expect(endpoint.ExternalPort()).To(Equal(5000))
				})

				It("does not attempt removal after a failed stop", func() {
					_ = endpoint.Stop(logger)
					Expect(fakeRunner.RunCallCount()).To(Equal(2))
				})
			})

			Context("when the remove command exhausts its retries", func() {
				BeforeEach(func() {
					fakeRunner.RunStub = func(_ lager.Logger, command string, _ int, _ time.Duration) (string, error) {
						if command == fmt.Sprintf("docker rm %s", "deadbeefcafe") {
							return "", experimenter.CommandFailedError{Command: command, Err: errors.New("still running")}
						}
						return "", nil
					}
				})

				It("fails with StopFailedError and does not release the port", func() {
					err := endpoint.Stop(logger)
					Expect(err).To(BeAssignableToTypeOf(experimenter.StopFailedError{}))
					Expect(pool.List()).NotTo(ContainElement(5000))
				})
			})
		})

		Context("with a leased port but no started container", func() {
			BeforeEach(func() {
				Expect(endpoint.AcquirePort(logger)).To(Succeed())
			})

			It("returns the port without issuing any commands", func() {
				Expect(endpoint.Stop(logger)).To(Succeed())
				Expect(fakeRunner.RunCallCount()).To(Equal(0))
				Expect(pool.List()).To(Equal([]int{5001, 5000}))
			})
		})

		Context("when nothing was leased or started", func() {
			It("is a no-op", func() {
				Expect(endpoint.Stop(logger)).To(Succeed())
				Expect(fakeRunner.RunCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Connector", func() {
		BeforeEach(func() {
			Expect(endpoint.AcquirePort(logger)).To(Succeed())
		})

		It("describes SSH access to the shared path", func() {
			description := endpoint.Connector("results/out.csv").Describe()

			Expect(description.Kind).To(Equal(experimenter.ConnectorKindSSH))
			Expect(description.Host).To(Equal("10.0.0.1"))
			Expect(description.Port).To(Equal(5000))
			Expect(description.Path).To(Equal("results/out.csv"))
			Expect(description.Username).To(Equal(endpoint.Username()))
			Expect(description.Password).To(Equal(endpoint.Password()))
		})
	})
})
