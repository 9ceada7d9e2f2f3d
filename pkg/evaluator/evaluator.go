// Package evaluator implements the JSH evaluation engine.
//
// The evaluator walks a parsed AST against a memory tree it owns. It
// supports:
//   - statement sequences, list and object literals, variable lookups
//   - calls resolved against an overloaded, type-checked function table
//   - template arguments evaluated lazily by control-flow builtins
//   - timeout and cancellation via context.Context
//   - a bounded evaluation depth
//
// # Example
//
//	e := evaluator.New()
//	if err := e.SetValue(types.String("root"), doc); err != nil {
//	    log.Fatal(err)
//	}
//	result, err := e.EvalJSH(ctx, `(get root.books.book1.name)`)
//
// # Concurrency
//
// An Evaluator owns mutable memory and must not be used by several
// goroutines at once. Hosts serving concurrent requests serialize them.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/sandrolain/gojsh/pkg/cache"
	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/memory"
	"github.com/sandrolain/gojsh/pkg/parser"
	"github.com/sandrolain/gojsh/pkg/path"
	"github.com/sandrolain/gojsh/pkg/types"
)

// DefaultSystemName is stored under "system" when no name is configured.
const DefaultSystemName = "JSH"

// DefaultMaxDepth bounds evaluation nesting when no positive limit is set.
const DefaultMaxDepth = 10000

// Evaluator evaluates JSH expressions against its memory.
type Evaluator struct {
	opts   EvalOptions
	logger *slog.Logger
	cache  *cache.Cache // non-nil when Caching is enabled
	memory *memory.Memory
	funcs  functions.Table
}

// EvalOptions configures evaluator behavior.
type EvalOptions struct {
	// Caching enables expression compilation caching for EvalJSH and the
	// jsh builtin. The default cache holds up to 256 entries with LRU
	// eviction.
	Caching bool
	// CacheSize sets the maximum number of cached expressions.
	// Only used when Caching is true and no explicit Cache is provided.
	CacheSize int
	// Cache is a custom expression cache. If non-nil, Caching is implicitly enabled.
	Cache *cache.Cache
	// MaxDepth limits evaluation nesting.
	MaxDepth int
	// MaxScopeDepth limits scope nesting when parsing source.
	MaxScopeDepth int
	// Timeout bounds a single evaluation. Zero means no timeout.
	Timeout time.Duration
	// Debug enables debug logging.
	Debug bool
	// Logger for structured logging.
	Logger *slog.Logger
	// SystemName is stored under the "system" key of a new memory.
	SystemName string
	// Memory replaces the memory the evaluator creates for itself.
	Memory *memory.Memory

	aliases   [][2]string
	removed   []string
	functions []namedFunction
}

type namedFunction struct {
	name string
	fn   functions.Function
}

// New creates a new Evaluator with default options.
func New(opts ...EvalOption) *Evaluator {
	options := EvalOptions{
		MaxDepth:   DefaultMaxDepth,
		SystemName: DefaultSystemName,
	}

	for _, opt := range opts {
		opt(&options)
	}
	if options.MaxDepth <= 0 {
		options.MaxDepth = DefaultMaxDepth
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	// Initialise expression cache when caching is enabled.
	var c *cache.Cache
	if options.Cache != nil {
		c = options.Cache
	} else if options.Caching {
		c = cache.New(options.CacheSize)
	}

	mem := options.Memory
	if mem == nil {
		mem = memory.New(options.SystemName)
	}

	e := &Evaluator{
		opts:   options,
		logger: options.Logger,
		cache:  c,
		memory: mem,
		funcs:  builtinTable().Clone(),
	}
	e.applyOverrides()
	return e
}

// applyOverrides changes the function table: aliases first, then removals,
// then added or replaced functions.
func (e *Evaluator) applyOverrides() {
	base := e.funcs.Clone()
	for _, a := range e.opts.aliases {
		fn, ok := base[a[1]]
		if !ok {
			e.logger.Warn("alias of unknown function ignored", "alias", a[0], "function", a[1])
			continue
		}
		e.funcs[a[0]] = fn
	}
	for _, name := range e.opts.removed {
		delete(e.funcs, name)
	}
	for _, nf := range e.opts.functions {
		if err := nf.fn.Validate(); err != nil {
			e.logger.Error("invalid function ignored", "function", nf.name, "err", err)
			continue
		}
		e.funcs[nf.name] = slices.Clone(nf.fn)
	}
}

// Cache returns the expression cache, or nil if caching is disabled.
func (e *Evaluator) Cache() *cache.Cache {
	return e.cache
}

// Memory returns the memory the evaluator operates on.
func (e *Evaluator) Memory() *memory.Memory {
	return e.memory
}

// Functions returns the sorted names of the callable functions.
func (e *Evaluator) Functions() []string {
	names := make([]string, 0, len(e.funcs))
	for name := range e.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Compile parses source, going through the cache when one is configured.
func (e *Evaluator) Compile(source string) (*types.Expression, error) {
	compile := func() (*types.Expression, error) {
		return parser.Compile(source, parser.WithMaxDepth(e.opts.MaxScopeDepth))
	}
	if e.cache == nil {
		return compile()
	}
	return e.cache.GetOrCompile(source, compile)
}

// Eval evaluates a compiled expression. A nil result with a nil error means
// the expression produced no value.
func (e *Evaluator) Eval(ctx context.Context, expr *types.Expression) (types.Value, error) {
	if expr == nil || expr.AST() == nil {
		return nil, fmt.Errorf("invalid expression")
	}

	// Apply timeout if configured
	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	// Nested evaluations share the depth counter of the outermost one.
	if getDepthPtr(ctx) == nil {
		ctx = withNewDepthPtr(ctx)
	}

	return e.evalNode(ctx, expr.AST())
}

// EvalJSH parses and evaluates source.
func (e *Evaluator) EvalJSH(ctx context.Context, source string) (types.Value, error) {
	expr, err := e.Compile(source)
	if err != nil {
		return nil, err
	}
	return e.Eval(ctx, expr)
}

// EvalSource implements functions.Caller.
func (e *Evaluator) EvalSource(ctx context.Context, source string) (types.Value, error) {
	return e.EvalJSH(ctx, source)
}

// Evaluate implements functions.Caller.
func (e *Evaluator) Evaluate(ctx context.Context, node *types.ASTNode) (types.Value, error) {
	return e.evalNode(ctx, node)
}

// GetValue returns the value at p, a dotted string or an array of segments.
func (e *Evaluator) GetValue(p types.Value) (types.Value, error) {
	segs, err := path.Parse(p)
	if err != nil {
		return nil, err
	}
	return e.memory.Get(segs)
}

// SetValue stores v at p.
func (e *Evaluator) SetValue(p types.Value, v types.Value) error {
	segs, err := path.Parse(p)
	if err != nil {
		return err
	}
	return e.memory.Set(segs, v)
}

// PatchValue merges v into the value at p. See types.Merge for depth.
func (e *Evaluator) PatchValue(p types.Value, v types.Value, depth int) error {
	segs, err := path.Parse(p)
	if err != nil {
		return err
	}
	return e.memory.Patch(segs, v, depth)
}

// DeleteValue removes the value at p and returns it.
func (e *Evaluator) DeleteValue(p types.Value) (types.Value, error) {
	segs, err := path.Parse(p)
	if err != nil {
		return nil, err
	}
	return e.memory.Delete(segs)
}

// ResetMemory drops every top-level memory key except keep and the system
// name.
func (e *Evaluator) ResetMemory(keep ...string) {
	e.memory.Reset(keep...)
}

// EvalOption configures evaluation behavior.
type EvalOption func(*EvalOptions)

// WithCaching enables or disables expression compilation caching.
// When enabled, a default LRU cache of 256 entries is created.
// To control the cache size use WithCacheSize; to supply your own cache use WithCache.
func WithCaching(enabled bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Caching = enabled
	}
}

// WithCacheSize sets the maximum number of cached expressions.
// Only effective when combined with WithCaching(true).
func WithCacheSize(size int) EvalOption {
	return func(opts *EvalOptions) {
		opts.CacheSize = size
	}
}

// WithCache attaches an external expression cache.
// The evaluator will use this cache regardless of the Caching flag.
func WithCache(c *cache.Cache) EvalOption {
	return func(opts *EvalOptions) {
		opts.Cache = c
	}
}

// WithTimeout sets the evaluation timeout.
func WithTimeout(timeout time.Duration) EvalOption {
	return func(opts *EvalOptions) {
		opts.Timeout = timeout
	}
}

// WithDebug enables or disables debug logging.
func WithDebug(enabled bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Debug = enabled
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(opts *EvalOptions) {
		opts.Logger = logger
	}
}

// WithMaxDepth sets the maximum evaluation depth. Values below 1 select
// DefaultMaxDepth.
func WithMaxDepth(depth int) EvalOption {
	return func(opts *EvalOptions) {
		opts.MaxDepth = depth
	}
}

// WithMaxScopeDepth sets the maximum scope nesting accepted by the parser.
func WithMaxScopeDepth(depth int) EvalOption {
	return func(opts *EvalOptions) {
		opts.MaxScopeDepth = depth
	}
}

// WithSystemName sets the name stored under "system".
func WithSystemName(name string) EvalOption {
	return func(opts *EvalOptions) {
		opts.SystemName = name
	}
}

// WithMemory makes the evaluator operate on m.
func WithMemory(m *memory.Memory) EvalOption {
	return func(opts *EvalOptions) {
		opts.Memory = m
	}
}

// WithFunction adds a function or replaces a builtin of the same name.
//
// Example:
//
//	e := evaluator.New(evaluator.WithFunction("double", functions.Function{
//	    functions.Sig(func(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
//	        return types.Number(args[0].Float() * 2), nil
//	    }, "number"),
//	}))
func WithFunction(name string, fn functions.Function) EvalOption {
	return func(opts *EvalOptions) {
		opts.functions = append(opts.functions, namedFunction{name: name, fn: fn})
	}
}

// WithCustomFunction registers a single-signature user-defined function.
func WithCustomFunction(def functions.CustomFunctionDef) EvalOption {
	return WithFunction(def.Name, def.Function())
}

// WithCustomFunctions registers several user-defined functions, typically
// a bundle from pkg/ext.
func WithCustomFunctions(defs ...functions.CustomFunctionDef) EvalOption {
	return func(opts *EvalOptions) {
		for _, def := range defs {
			opts.functions = append(opts.functions, namedFunction{name: def.Name, fn: def.Function()})
		}
	}
}

// WithAlias makes name call the builtin existing.
func WithAlias(name, existing string) EvalOption {
	return func(opts *EvalOptions) {
		opts.aliases = append(opts.aliases, [2]string{name, existing})
	}
}

// WithoutFunction removes a function from the table.
func WithoutFunction(name string) EvalOption {
	return func(opts *EvalOptions) {
		opts.removed = append(opts.removed, name)
	}
}
