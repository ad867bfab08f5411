//go:build !windows

package pathenv_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ruping/ruping-setup/internal/pathenv"
)

var _ = Describe("FileStore", func() {
	var path string

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "environment")
	})

	It("returns an empty value for a missing file", func() {
		store := pathenv.NewFileStore(path)

		value, err := store.Get()
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(BeEmpty())
	})

	It("round-trips the PATH value with quoting", func() {
		store := pathenv.NewFileStore(path)

		Expect(store.Set("/usr/bin:/opt/RuPing")).To(Succeed())

		value, err := store.Get()
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal("/usr/bin:/opt/RuPing"))

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("PATH=\"/usr/bin:/opt/RuPing\"\n"))
	})

	It("preserves unrelated lines when rewriting PATH", func() {
		content := "LANG=en_US.UTF-8\nPATH=\"/usr/bin\"\nEDITOR=vi\n"
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

		store := pathenv.NewFileStore(path)
		Expect(store.Set("/usr/bin:/opt/RuPing")).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(
			"LANG=en_US.UTF-8\nPATH=\"/usr/bin:/opt/RuPing\"\nEDITOR=vi\n",
		))
	})

	It("appends a PATH line when none exists", func() {
		Expect(os.WriteFile(path, []byte("LANG=C\n"), 0o644)).To(Succeed())

		store := pathenv.NewFileStore(path)
		Expect(store.Set("/opt/RuPing")).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("LANG=C\nPATH=\"/opt/RuPing\"\n"))
	})
})
