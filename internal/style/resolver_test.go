package style

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/onceui/internal/logger"
	"github.com/alexisbeaulieu97/onceui/internal/tokens"
)

func sampleProps() Props {
	return Props{
		Direction:    "column",
		Horizontal:   "center",
		Vertical:     "space-between",
		Padding:      tokens.Token("16"),
		PaddingX:     tokens.Rem(1.25),
		Gap:          tokens.Token("m"),
		Background:   "surface",
		Solid:        "brand-strong",
		Border:       "neutral-alpha-medium",
		BorderLeft:   "brand-medium",
		Radius:       "l",
		Fill:         true,
		MaxHeight:    tokens.Token("xl"),
		Variant:      "body-default-m",
		Weight:       "strong",
		OnBackground: "neutral-strong",

		TabletDirection: "row",
		Breakpoints: map[string]BreakpointProps{
			"mobile": {Direction: "column-reverse"},
		},
		ClassName: "card  card--active",
		Style:     map[string]string{"boxShadow": "none", "--card-index": "3"},
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil)
	first := r.Resolve(Flex, sampleProps())
	for i := 0; i < 50; i++ {
		next := r.Resolve(Flex, sampleProps())
		require.Equal(t, first.ClassName(), next.ClassName())
		if diff := cmp.Diff(first.Style, next.Style); diff != "" {
			t.Fatalf("style changed on run %d (-first +next):\n%s", i, diff)
		}
		require.Equal(t, first.Diagnostics, next.Diagnostics)
	}
}

func TestResolveEndToEnd(t *testing.T) {
	t.Parallel()

	out := Resolve(nil, Flex, sampleProps())

	want := []string{
		"display-flex",
		"p-16",
		"g-m",
		"surface-background",
		"neutral-border-alpha-medium",
		"brand-border-medium",
		"border-solid",
		"border-1",
		"border-reset",
		"border-left-1",
		"radius-l",
		"flex-column",
		"align-center",
		"justify-space-between",
		"fill",
		"min-width-0",
		"min-height-0",
		"font-body",
		"font-default",
		"font-m",
		"neutral-on-background-strong",
		"tablet-flex-row",
		"mobile-flex-column-reverse",
		"card",
		"card--active",
	}
	if diff := cmp.Diff(want, out.Classes.List()); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}

	wantStyle := Declarations{
		"max-height":    "var(--responsive-height-xl)",
		"padding-left":  "1.25rem",
		"padding-right": "1.25rem",
		"box-shadow":    "none",
		"--card-index":  "3",
	}
	if diff := cmp.Diff(wantStyle, out.Style); diff != "" {
		t.Fatalf("style mismatch (-want +got):\n%s", diff)
	}

	codes := make([]string, 0, len(out.Diagnostics))
	for _, d := range out.Diagnostics {
		codes = append(codes, d.Code)
	}
	require.Equal(t, []string{CodeConflict, CodeVariantOverride}, codes)
}

func TestResolveClassNamePassthroughDedups(t *testing.T) {
	t.Parallel()

	out := Resolve(nil, Flex, Props{ClassName: " custom display-flex "})
	require.Equal(t, "display-flex custom", out.ClassName())
}

func TestResolveConcurrentCallsAgree(t *testing.T) {
	t.Parallel()

	r := NewResolver(tokens.DefaultRegistry())
	want := r.Resolve(Grid, Props{Columns: "4", MobileColumns: "1", Padding: tokens.Token("l")}).ClassName()

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Resolve(Grid, Props{Columns: "4", MobileColumns: "1", Padding: tokens.Token("l")}).ClassName()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.Equal(t, want, got, fmt.Sprintf("goroutine %d", i))
	}
	require.Equal(t, "display-grid p-l columns-4 mobile-columns-1", want)
}

func TestResolverLogsDiagnostics(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	var props Props
	require.NoError(t, yaml.Unmarshal([]byte("dark: true\nlight: true\nshimmer: fast\n"), &props))
	require.Contains(t, props.Unknown, "shimmer")

	r := NewResolver(nil, WithLogger(log))
	out := r.Resolve(Flex, props)
	require.Equal(t, "display-flex dark-flex", out.ClassName())

	var entries []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.Len(t, entries, 2)

	require.Equal(t, "warn", entries[0]["level"])
	require.Equal(t, CodeConflict, entries[0]["code"])
	require.Equal(t, "flex", entries[0]["primitive"])
	require.Equal(t, []any{"dark", "light"}, entries[0]["props"])

	require.Equal(t, "debug", entries[1]["level"])
	require.Equal(t, "ignoring unknown props", entries[1]["message"])
	require.Equal(t, []any{"shimmer"}, entries[1]["props"])
}

func TestResolverWithoutLoggerIsSilent(t *testing.T) {
	t.Parallel()

	out := NewResolver(nil).Resolve(Text, Props{OnBackground: "brand-strong", OnSolid: "brand-weak"})
	require.Equal(t, "brand-on-background-strong", out.ClassName())
	require.Len(t, out.Diagnostics, 1)
}

func TestPropsDecodeFromYAML(t *testing.T) {
	t.Parallel()

	doc := `
direction: column
padding: "16"
paddingX: 1.5
horizontal: center
mobileColumns: "2"
breakpoints:
  tablet:
    direction: row
style:
  maxWidth: 40rem
`
	var props Props
	require.NoError(t, yaml.Unmarshal([]byte(doc), &props))
	require.Equal(t, tokens.Token("16"), props.Padding)
	require.Equal(t, tokens.Rem(1.5), props.PaddingX)
	require.Empty(t, props.Unknown)

	out := Resolve(nil, Flex, props)
	require.Equal(t, "display-flex p-16 flex-column align-center tablet-flex-row", out.ClassName())
	require.Equal(t, "max-width: 40rem; padding-left: 1.5rem; padding-right: 1.5rem", out.Style.String())
}
