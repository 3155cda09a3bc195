package entry

import (
	"os"

	"github.com/goccy/go-yaml"
)

const baseLast = "last.yaml"

// lastSubmission is the cached copy of the most recent successful curve
// entry, restored into the form on the next run.
type lastSubmission struct {
	X     string `yaml:"x"`
	Y     string `yaml:"y"`
	Where string `yaml:"where,omitempty"`
}

// loadLast reads the cached submission from path. A missing file is not an
// error and yields an empty submission.
func loadLast(path string) (lastSubmission, error) {
	var last lastSubmission

	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return last, nil
		}

		return last, err
	}

	if err := yaml.Unmarshal(buf, &last); err != nil {
		return lastSubmission{}, err
	}

	return last, nil
}

// saveLast writes the submission to path, replacing any previous entry.
func saveLast(path string, last lastSubmission) error {
	buf, err := yaml.Marshal(last)
	if err != nil {
		return err
	}

	return os.WriteFile(path, buf, 0o600)
}
