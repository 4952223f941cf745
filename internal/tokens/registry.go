package tokens

// Registry is the lookup form of Tables. It is immutable after construction
// and safe for concurrent use.
type Registry struct {
	tables Tables
	sets   map[Category]map[string]struct{}
}

// NewRegistry indexes the supplied tables. Empty categories are filled from
// the defaults first.
func NewRegistry(t Tables) *Registry {
	t = t.Normalize()
	r := &Registry{
		tables: t,
		sets:   make(map[Category]map[string]struct{}, len(Categories())),
	}
	for _, c := range Categories() {
		values := t.List(c)
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		r.sets[c] = set
	}
	return r
}

// DefaultRegistry indexes DefaultTables.
func DefaultRegistry() *Registry {
	return NewRegistry(DefaultTables())
}

// Has reports whether value is a member of the category.
func (r *Registry) Has(c Category, value string) bool {
	if r == nil || value == "" {
		return false
	}
	_, ok := r.sets[c][value]
	return ok
}

// Tables returns a copy of the tables the registry was built from.
func (r *Registry) Tables() Tables {
	out := Tables{}
	for _, c := range Categories() {
		*out.field(c) = r.tables.List(c)
	}
	return out
}

// Breakpoints returns the breakpoint scopes in overlay order.
func (r *Registry) Breakpoints() []string {
	return r.tables.List(CategoryBreakpoints)
}
