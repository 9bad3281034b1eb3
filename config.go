package intake

import (
	"os"
	"path/filepath"
)

// Config locates the app directory, which holds the draft-state sidecar,
// the debug log, and the default CSV target.
type Config struct {
	Dir string
	// VCFDir, when set, mirrors each saved entry as a .vcf file there.
	VCFDir string
}

func NewConfig() *Config {
	cfg := &Config{Dir: defaultDir()}
	if d := os.Getenv("INTAKE_DIR"); d != "" {
		cfg.Dir = d
	}
	cfg.VCFDir = os.Getenv("INTAKE_VCF_DIR")
	return cfg
}

// defaultDir keeps files next to the program itself, falling back to the
// working directory when the executable path cannot be resolved.
func defaultDir() string {
	exe, err := os.Executable()
	if err != nil {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
		return "."
	}
	return filepath.Dir(exe)
}

func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0755)
}

// DefaultCSVPath is the target used until the user chooses one.
func (c *Config) DefaultCSVPath() string {
	return filepath.Join(c.Dir, "contacts.csv")
}
