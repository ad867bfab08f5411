package pathenv_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ruping/ruping-setup/internal/pathenv"
	"github.com/ruping/ruping-setup/pkg/logger"
)

func TestPathenv(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pathenv Suite")
}

// memStore is an in-memory Store for exercising the mutator logic.
type memStore struct {
	value  string
	getErr error
	setErr error
	sets   int
}

func (s *memStore) Get() (string, error) {
	return s.value, s.getErr
}

func (s *memStore) Set(value string) error {
	if s.setErr != nil {
		return s.setErr
	}

	s.value = value
	s.sets++

	return nil
}

var _ = Describe("Mutator", func() {
	var (
		store   *memStore
		mutator *pathenv.Mutator
	)

	newMutator := func(initial string) {
		store = &memStore{value: initial}
		mutator = pathenv.NewMutatorWithDelimiter(store, ";", logger.NewNoOpLogger())
	}

	Describe("Add", func() {
		It("appends to a populated list", func() {
			newMutator(`C:\Windows;C:\Windows\System32`)

			added, err := mutator.Add(`C:\Program Files\RuPing`)
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(BeTrue())
			Expect(store.value).To(Equal(`C:\Windows;C:\Windows\System32;C:\Program Files\RuPing`))
		})

		It("writes the directory alone into an empty list", func() {
			newMutator("")

			added, err := mutator.Add(`C:\RuPing`)
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(BeTrue())
			Expect(store.value).To(Equal(`C:\RuPing`))
		})

		It("is idempotent: a second add writes nothing", func() {
			newMutator(`C:\Windows`)

			added, err := mutator.Add(`C:\RuPing`)
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(BeTrue())

			added, err = mutator.Add(`C:\RuPing`)
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(BeFalse())
			Expect(store.sets).To(Equal(1))
			Expect(store.value).To(Equal(`C:\Windows;C:\RuPing`))
		})

		It("treats a substring match as already present", func() {
			// Known defect carried over from the original installer:
			// membership is a raw substring test, so an entry that merely
			// contains the directory suppresses the append.
			newMutator(`C:\RuPing\nested`)

			added, err := mutator.Add(`C:\RuPing`)
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(BeFalse())
			Expect(store.sets).To(BeZero())
		})

		It("propagates store read failures", func() {
			newMutator("")
			store.getErr = errors.New("access denied")

			_, err := mutator.Add(`C:\RuPing`)
			Expect(err).To(HaveOccurred())
		})

		It("propagates store write failures", func() {
			newMutator("")
			store.setErr = errors.New("access denied")

			_, err := mutator.Add(`C:\RuPing`)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Remove", func() {
		It("removes every occurrence and keeps unrelated entries intact", func() {
			newMutator(`C:\Windows;C:\RuPing;C:\Tools;C:\RuPing`)

			removed, err := mutator.Remove(`C:\RuPing`)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeTrue())
			Expect(store.value).To(Equal(`C:\Windows;C:\Tools`))
		})

		It("handles the leading-entry case", func() {
			newMutator(`C:\RuPing;C:\Windows`)

			_, err := mutator.Remove(`C:\RuPing`)
			Expect(err).NotTo(HaveOccurred())
			Expect(store.value).To(Equal(`C:\Windows`))
		})

		It("handles the trailing-entry case", func() {
			newMutator(`C:\Windows;C:\RuPing`)

			_, err := mutator.Remove(`C:\RuPing`)
			Expect(err).NotTo(HaveOccurred())
			Expect(store.value).To(Equal(`C:\Windows`))
		})

		It("handles the sole-entry case", func() {
			newMutator(`C:\RuPing`)

			_, err := mutator.Remove(`C:\RuPing`)
			Expect(err).NotTo(HaveOccurred())
			Expect(store.value).To(Equal(""))
		})

		It("does not write when the directory is absent", func() {
			newMutator(`C:\Windows;C:\Tools`)

			removed, err := mutator.Remove(`C:\RuPing`)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeFalse())
			Expect(store.sets).To(BeZero())
		})

		It("only removes exact entries, not substring matches", func() {
			newMutator(`C:\RuPing\nested;C:\RuPing`)

			_, err := mutator.Remove(`C:\RuPing`)
			Expect(err).NotTo(HaveOccurred())
			Expect(store.value).To(Equal(`C:\RuPing\nested`))
		})
	})

	Describe("install/uninstall round trip", func() {
		It("leaves the list exactly as it started", func() {
			newMutator(`C:\Windows;C:\Windows\System32`)

			_, err := mutator.Add(`C:\Program Files\RuPing`)
			Expect(err).NotTo(HaveOccurred())

			_, err = mutator.Remove(`C:\Program Files\RuPing`)
			Expect(err).NotTo(HaveOccurred())

			Expect(store.value).To(Equal(`C:\Windows;C:\Windows\System32`))
		})
	})
})
