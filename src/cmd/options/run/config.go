package run

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

// WriteConfig prints the effective server config, defaults included.
func WriteConfig(config *eventmodels.ServerConfigYAML, out io.Writer) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)

	if err := enc.Encode(config); err != nil {
		return fmt.Errorf("WriteConfig: failed to encode yaml: %w", err)
	}

	return enc.Close()
}
