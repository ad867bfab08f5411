package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ruping/ruping-setup/internal/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Loader", func() {
	var home string

	BeforeEach(func() {
		home = GinkgoT().TempDir()
	})

	writeGlobal := func(content string) {
		dir := filepath.Join(home, config.GlobalConfigDir)
		Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
		Expect(os.WriteFile(
			filepath.Join(dir, config.GlobalConfigFile),
			[]byte(content),
			0o644,
		)).To(Succeed())
	}

	It("returns defaults when no other source exists", func() {
		cfg, err := config.NewLoaderWithHome(home).Load(nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Build.Command).To(Equal("cargo"))
		Expect(cfg.Build.Args).To(Equal([]string{"build", "--release"}))
		Expect(cfg.Install.Silent).To(BeFalse())
		Expect(cfg.Install.NoPath).To(BeFalse())
		Expect(cfg.Install.Dir).To(BeEmpty())
	})

	It("merges the global TOML file over defaults", func() {
		writeGlobal("[install]\nsilent = true\ndir = \"/srv/RuPing\"\n")

		cfg, err := config.NewLoaderWithHome(home).Load(nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Install.Silent).To(BeTrue())
		Expect(cfg.Install.Dir).To(Equal("/srv/RuPing"))
		// Unrelated defaults survive the merge.
		Expect(cfg.Build.Command).To(Equal("cargo"))
	})

	It("lets environment variables override the file", func() {
		writeGlobal("[install]\nsilent = false\n")
		GinkgoT().Setenv("RUPING_SETUP_INSTALL_SILENT", "true")

		cfg, err := config.NewLoaderWithHome(home).Load(nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Install.Silent).To(BeTrue())
	})

	It("gives CLI flags the highest priority", func() {
		writeGlobal("[install]\ndir = \"/srv/RuPing\"\n")
		GinkgoT().Setenv("RUPING_SETUP_INSTALL_DIR", "/env/RuPing")

		cfg, err := config.NewLoaderWithHome(home).Load(map[string]any{
			"install.dir": "/flag/RuPing",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Install.Dir).To(Equal("/flag/RuPing"))
	})

	It("rejects a world-writable config file", func() {
		writeGlobal("[install]\nsilent = true\n")
		Expect(os.Chmod(
			filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile),
			0o666,
		)).To(Succeed())

		_, err := config.NewLoaderWithHome(home).Load(nil)
		Expect(err).To(HaveOccurred())
	})

	It("fails on unparseable TOML", func() {
		writeGlobal("not [valid toml\n")

		_, err := config.NewLoaderWithHome(home).Load(nil)
		Expect(err).To(HaveOccurred())
	})
})
