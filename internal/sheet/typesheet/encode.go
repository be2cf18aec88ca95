package typesheet

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Account shows struct tags driving two encoders from one definition.
type Account struct {
	Name  string `json:"name" yaml:"name"`
	Age   int    `json:"age" yaml:"age"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Encode marshals the same value as JSON and as YAML.
func Encode(w io.Writer) error {
	acct := Account{Name: "alex", Age: 21}

	j, err := json.Marshal(acct)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "json: %s\n", j)

	y, err := yaml.Marshal(acct)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "yaml:\n%s", y)
	return nil
}
