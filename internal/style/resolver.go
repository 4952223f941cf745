package style

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/onceui/internal/logger"
	"github.com/alexisbeaulieu97/onceui/internal/tokens"
)

// Compiled is the output of one resolution: the ordered class set, the
// inline declarations and any diagnostics raised along the way.
type Compiled struct {
	Classes     *ClassSet
	Style       Declarations
	Diagnostics []Diagnostic
}

// ClassName returns the class attribute value.
func (c Compiled) ClassName() string {
	return c.Classes.String()
}

// Resolver compiles prop bags against one token registry. It holds no
// per-call state and may be shared between goroutines.
type Resolver struct {
	reg *tokens.Registry
	log *logger.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger routes diagnostics to log as warnings.
func WithLogger(log *logger.Logger) Option {
	return func(r *Resolver) {
		r.log = log
	}
}

// NewResolver creates a resolver over reg, or over the default tokens when
// reg is nil.
func NewResolver(reg *tokens.Registry, opts ...Option) *Resolver {
	if reg == nil {
		reg = tokens.DefaultRegistry()
	}
	r := &Resolver{reg: reg}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry exposes the token registry the resolver compiles against.
func (r *Resolver) Registry() *tokens.Registry {
	return r.reg
}

// Resolve compiles props for prim. It never fails: unknown tokens are
// dropped and conflicts are resolved first-wins and reported.
func (r *Resolver) Resolve(prim Primitive, props Props) Compiled {
	diags := CheckConflicts(prim, props)

	classes := CompileClasses(r.reg, prim, props)
	classes.Merge(CompileResponsive(r.reg, prim, props))
	classes.Add(strings.Fields(props.ClassName)...)

	r.report(prim, props, diags)

	return Compiled{
		Classes:     classes,
		Style:       CompileInlineStyle(r.reg, prim, props),
		Diagnostics: diags,
	}
}

// Resolve compiles props against reg without logging.
func Resolve(reg *tokens.Registry, prim Primitive, props Props) Compiled {
	return NewResolver(reg).Resolve(prim, props)
}

func (r *Resolver) report(prim Primitive, props Props, diags []Diagnostic) {
	if r.log == nil {
		return
	}
	for _, d := range diags {
		r.log.WithFields(map[string]any{
			"primitive": d.Primitive,
			"code":      d.Code,
			"props":     d.Props,
		}).Warn(d.Message)
	}
	if len(props.Unknown) > 0 && r.log.DebugEnabled() {
		keys := make([]string, 0, len(props.Unknown))
		for k := range props.Unknown {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		r.log.WithFields(map[string]any{
			"primitive": prim.Name,
			"props":     keys,
		}).Debug("ignoring unknown props")
	}
}
