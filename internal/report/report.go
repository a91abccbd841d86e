// Package report writes the end-of-run YAML summary the --report flag
// requests: the configuration used, the paths targeted, and whether the
// run completed without a fatal error. It is the write-side counterpart of
// the teacher's internal/policy.Load / internal/mcp.Load, which both
// unmarshal YAML policy documents with gopkg.in/yaml.v3; this package
// marshals instead, but keeps the same "read the whole thing, decode with
// yaml.v3" shape reversed.
package report

import (
	"os"

	"github.com/gzhole/goshred/internal/config"
	"gopkg.in/yaml.v3"
)

// Summary is the document written to the report path.
type Summary struct {
	Paths   []string      `yaml:"paths"`
	Config  config.Config `yaml:"config"`
	Success bool          `yaml:"success"`
}

// Write marshals s as YAML and writes it to path, creating or truncating
// the file as needed.
func Write(path string, s Summary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
