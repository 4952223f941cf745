package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/onceui/internal/tokens"
)

func TestResponsiveLayersAfterBase(t *testing.T) {
	t.Parallel()

	out := Resolve(nil, Flex, Props{Direction: "row", MobileDirection: "column"})
	want := []string{"display-flex", "flex-row", "mobile-flex-column"}
	if diff := cmp.Diff(want, out.Classes.List()); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
}

func TestResponsiveColumns(t *testing.T) {
	t.Parallel()

	out := Resolve(nil, Grid, Props{Columns: "3", TabletColumns: "2", MobileColumns: "1", MobileDirection: "column"})
	want := []string{"display-grid", "columns-3", "tablet-columns-2", "mobile-columns-1"}
	if diff := cmp.Diff(want, out.Classes.List()); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
}

func TestResponsiveIgnoresUnknownValues(t *testing.T) {
	t.Parallel()

	set := CompileResponsive(nil, Flex, Props{TabletDirection: "sideways", MobileColumns: "2"})
	require.Equal(t, 0, set.Len())
}

func TestResponsiveCustomBreakpoints(t *testing.T) {
	t.Parallel()

	tables := tokens.DefaultTables()
	tables.Breakpoints = []string{"tablet", "mobile", "wide"}
	reg := tokens.NewRegistry(tables)

	props := Props{
		TabletDirection: "column",
		Breakpoints: map[string]BreakpointProps{
			"tablet": {Direction: "row"},
			"wide":   {Direction: "row-reverse"},
		},
	}
	got := CompileResponsive(reg, Flex, props).List()
	if diff := cmp.Diff([]string{"tablet-flex-column", "wide-flex-row-reverse"}, got); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
}
