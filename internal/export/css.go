package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/brandkit/internal/brand"
)

// variableInfix is inserted between the prefix and the entry name.
func variableInfix(kind brand.GroupKind) string {
	switch kind {
	case brand.GroupGradient:
		return "gradient-"
	case brand.GroupSpacing:
		return "space-"
	case brand.GroupRadius:
		return "radius-"
	case brand.GroupShadow:
		return "shadow-"
	default:
		return ""
	}
}

// variableName builds "<prefix>-<infix><name>", e.g. br-space-md.
func variableName(prefix string, kind brand.GroupKind, name string) string {
	return prefix + "-" + variableInfix(kind) + name
}

type cssExporter struct{}

func (cssExporter) Format() Format    { return FormatCSS }
func (cssExporter) Extension() string { return "css" }

func (cssExporter) Export(w io.Writer, sys brand.System, opts Options) error {
	bw := bufio.NewWriter(w)
	if opts.Header != "" {
		fmt.Fprintf(bw, "/* %s */\n", opts.Header)
	}
	bw.WriteString(":root {\n")
	for i, group := range sys.Groups() {
		if i > 0 {
			bw.WriteString("\n")
		}
		for _, entry := range group.Entries {
			fmt.Fprintf(bw, "  --%s: %s;\n", variableName(opts.prefix(), group.Kind, entry.Name), entry.Value)
		}
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

type scssExporter struct{}

func (scssExporter) Format() Format    { return FormatSCSS }
func (scssExporter) Extension() string { return "scss" }

func (scssExporter) Export(w io.Writer, sys brand.System, opts Options) error {
	bw := bufio.NewWriter(w)
	if opts.Header != "" {
		fmt.Fprintf(bw, "// %s\n", opts.Header)
	}
	for i, group := range sys.Groups() {
		if i > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "// %s\n", group.Key)
		for _, entry := range group.Entries {
			fmt.Fprintf(bw, "$%s: %s;\n", variableName(opts.prefix(), group.Kind, entry.Name), entry.Value)
		}
	}
	return bw.Flush()
}
