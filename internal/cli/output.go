package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// render writes the decoded API payload to w in the requested format.
func render(w io.Writer, format string, payload any) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unsupported output format %q (expected json or yaml)", format)
	}
}
