package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/onceui/internal/config"
	"github.com/alexisbeaulieu97/onceui/internal/style"
)

var (
	nodeStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	diagnosticStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
)

type compileOptions struct {
	primitive  string
	jsonOutput bool
}

// compileNode is one entry of a nodes document.
type compileNode struct {
	Name      string      `yaml:"name"`
	Primitive string      `yaml:"primitive"`
	Props     style.Props `yaml:"props"`
}

type compileDocument struct {
	Nodes []compileNode `yaml:"nodes"`
}

type compiledNode struct {
	Name      string
	Primitive string
	Result    style.Compiled
}

func newCompileCmd(app *AppContext) *cobra.Command {
	opts := &compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile FILE",
		Short: "Compile style props into class names and inline styles",
		Long: `Compile a YAML or JSON props document. FILE holds either a single mapping of
style props or a list of nodes:

  nodes:
    - name: card
      primitive: flex
      props: {direction: column, padding: "16"}

Use "-" to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, app, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.primitive, "primitive", "p", "flex", "Primitive for props without one (flex, grid, text, heading)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runCompile(cmd *cobra.Command, app *AppContext, opts *compileOptions, path string) error {
	data, err := readInput(cmd, path)
	if err != nil {
		return newCommandError("compile", path, err, "Check that the file exists and is readable.")
	}

	nodes, err := parseCompileInput(path, data, opts.primitive)
	if err != nil {
		return newCommandError("compile", path, err, "Write a mapping of style props, or a 'nodes' list whose entries have name, primitive and props.")
	}

	results := make([]compiledNode, 0, len(nodes))
	for _, node := range nodes {
		prim, ok := style.LookupPrimitive(node.Primitive)
		if !ok {
			return newCommandError("compile", fmt.Sprintf("node %q", node.Name), fmt.Errorf("unknown primitive %q", node.Primitive), "Use one of flex, grid, text or heading.")
		}
		results = append(results, compiledNode{
			Name:      node.Name,
			Primitive: prim.Name,
			Result:    app.Resolver.Resolve(prim, node.Props),
		})
	}

	app.Logger.WithFields(map[string]any{"path": path, "nodes": len(results)}).Debug("compiled props document")

	if opts.jsonOutput {
		return renderCompileJSON(cmd, results)
	}
	return renderCompileText(cmd, results)
}

func parseCompileInput(path string, data []byte, primitive string) ([]compileNode, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("document is empty")
	}

	var root yaml.Node
	if err := config.DecodeYAML(path, data, &root); err != nil {
		return nil, err
	}

	if !hasKey(&root, "nodes") {
		var props style.Props
		if err := config.DecodeYAML(path, data, &props); err != nil {
			return nil, err
		}
		return []compileNode{{Name: documentName(path), Primitive: primitive, Props: props}}, nil
	}

	var doc compileDocument
	if err := config.DecodeYAML(path, data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Nodes) == 0 {
		return nil, errors.New("nodes list is empty")
	}
	for i := range doc.Nodes {
		if strings.TrimSpace(doc.Nodes[i].Name) == "" {
			doc.Nodes[i].Name = fmt.Sprintf("node-%d", i+1)
		}
		if strings.TrimSpace(doc.Nodes[i].Primitive) == "" {
			doc.Nodes[i].Primitive = primitive
		}
	}
	return doc.Nodes, nil
}

// hasKey reports whether the document's top-level mapping holds key.
func hasKey(doc *yaml.Node, key string) bool {
	node := doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

func documentName(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func renderCompileText(cmd *cobra.Command, results []compiledNode) error {
	out := cmd.OutOrStdout()
	styled := isTerminal(out)

	for i, node := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		header := fmt.Sprintf("%s (%s)", node.Name, node.Primitive)
		if styled {
			header = nodeStyle.Render(header)
		}
		fmt.Fprintln(out, header)
		fmt.Fprintf(out, "  class=%q\n", node.Result.ClassName())
		if len(node.Result.Style) > 0 {
			fmt.Fprintf(out, "  style=%q\n", node.Result.Style.String())
		}
		for _, d := range node.Result.Diagnostics {
			line := "  ! " + d.String()
			if styled {
				line = diagnosticStyle.Render(line)
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

type compileJSONNode struct {
	Name        string             `json:"name"`
	Primitive   string             `json:"primitive"`
	ClassName   string             `json:"className"`
	Classes     []string           `json:"classes"`
	Style       map[string]string  `json:"style"`
	Diagnostics []style.Diagnostic `json:"diagnostics"`
}

type compileJSONPayload struct {
	Version string            `json:"version"`
	Count   int               `json:"count"`
	Nodes   []compileJSONNode `json:"nodes"`
}

func renderCompileJSON(cmd *cobra.Command, results []compiledNode) error {
	payload := compileJSONPayload{
		Version: "1.0",
		Count:   len(results),
		Nodes:   make([]compileJSONNode, len(results)),
	}

	for i, node := range results {
		diags := node.Result.Diagnostics
		if diags == nil {
			diags = []style.Diagnostic{}
		}
		payload.Nodes[i] = compileJSONNode{
			Name:        node.Name,
			Primitive:   node.Primitive,
			ClassName:   node.Result.ClassName(),
			Classes:     node.Result.Classes.List(),
			Style:       node.Result.Style,
			Diagnostics: diags,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
