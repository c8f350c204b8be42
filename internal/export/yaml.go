package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/brandkit/internal/brand"
)

type yamlExporter struct{}

func (yamlExporter) Format() Format    { return FormatYAML }
func (yamlExporter) Extension() string { return "yaml" }

// Export writes the token registry in its canonical nested shape.
func (yamlExporter) Export(w io.Writer, sys brand.System, opts Options) error {
	if opts.Header != "" {
		if _, err := fmt.Fprintf(w, "# %s\n", opts.Header); err != nil {
			return err
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sys.Registry); err != nil {
		return err
	}
	return enc.Close()
}
