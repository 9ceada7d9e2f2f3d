// Package parser turns JSH source into an AST.
//
// JSH source is a sequence of statements built from:
//   - calls: (name arg ...)
//   - lists: [item ...]
//   - objects: {key value ...}
//   - variables: @a.b.c
//   - strings: "..." or '...'
//   - bare tokens: numbers, true, false, null, anything else is a string
//   - comments: # up to the end of the line
//
// Commas, colons and semicolons are whitespace, so {a: 1, b: 2} and
// {a 1 b 2} parse the same.
//
// The parser is a single left to right pass with an explicit scope stack;
// nesting depth is bounded by WithMaxDepth.
//
// # Example
//
//	expr, err := parser.Parse(`(map @root.list v (add @v 1))`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ast := expr.AST()
package parser

import (
	"fmt"
	"strings"

	"github.com/sandrolain/gojsh/pkg/types"
)

// DefaultMaxDepth bounds scope nesting when no option overrides it.
const DefaultMaxDepth = 1000

// Parse parses JSH source and returns the compiled Expression.
func Parse(source string, opts ...CompileOption) (*types.Expression, error) {
	return NewParser(source, opts...).Parse()
}

// Compile is an alias for Parse, provided for API consistency.
func Compile(source string, opts ...CompileOption) (*types.Expression, error) {
	return Parse(source, opts...)
}

// CompileOption configures compilation behavior.
type CompileOption func(*CompileOptions)

// CompileOptions holds parser configuration.
type CompileOptions struct {
	// MaxDepth limits scope nesting. Zero or less means DefaultMaxDepth.
	MaxDepth int
}

// WithMaxDepth sets the maximum scope nesting depth.
func WithMaxDepth(depth int) CompileOption {
	return func(opts *CompileOptions) {
		opts.MaxDepth = depth
	}
}

// Parser builds the AST of one source string.
type Parser struct {
	source string
	sc     *scanner
	opts   CompileOptions

	stack []*types.ASTNode
	curr  *types.ASTNode

	buf      strings.Builder
	reading  bool // inside a bare token
	tokenPos int
}

// NewParser creates a new parser for the given source.
func NewParser(source string, opts ...CompileOption) *Parser {
	options := CompileOptions{
		MaxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.MaxDepth <= 0 {
		options.MaxDepth = DefaultMaxDepth
	}

	return &Parser{
		source: source,
		sc:     newScanner(source),
		opts:   options,
		curr:   types.NewASTNode(types.NodeBase, 0),
	}
}

// Parse runs the parser. The returned Expression's root is a base node
// holding the top-level statements.
func (p *Parser) Parse() (*types.Expression, error) {
	for {
		pos := p.sc.current
		r := p.sc.nextRune()
		if r == eof {
			break
		}

		if node, ok := lookupOpen(r); ok {
			if err := p.startScope(node, pos); err != nil {
				return nil, err
			}
			continue
		}
		if node, ok := lookupClose(r); ok {
			if err := p.endScope(node, pos); err != nil {
				return nil, err
			}
			continue
		}
		if r == '#' {
			p.flush()
			p.sc.skipComment()
			continue
		}

		if p.reading {
			switch {
			case isSeparator(r):
				p.flush()
			case r == '\\':
				p.sc.escaped(&p.buf)
			default:
				p.buf.WriteRune(r)
			}
			continue
		}

		switch {
		case isSeparator(r):
		case r == '"' || r == '\'':
			p.push(types.NewLiteral(types.String(p.sc.scanString(r)), pos))
		case r == '@':
			node := types.NewASTNode(types.NodeGet, pos)
			node.Path = p.sc.scanVariable()
			p.push(node)
		case r == '\\':
			p.startToken(pos)
			p.sc.escaped(&p.buf)
		default:
			p.startToken(pos)
			p.buf.WriteRune(r)
		}
	}
	p.flush()

	if len(p.stack) > 0 {
		return nil, types.NewError(types.ErrOpenScopes, "Open scopes found.", p.curr.Position)
	}
	return types.NewExpression(p.curr, p.source), nil
}

func (p *Parser) push(node *types.ASTNode) {
	p.curr.Children = append(p.curr.Children, node)
}

func (p *Parser) startToken(pos int) {
	p.reading = true
	p.tokenPos = pos
}

// flush emits the pending bare token, if any.
func (p *Parser) flush() {
	if p.buf.Len() > 0 {
		p.push(types.NewLiteral(literal(p.buf.String()), p.tokenPos))
		p.buf.Reset()
	}
	p.reading = false
}

func (p *Parser) startScope(node types.NodeType, pos int) error {
	p.flush()
	if len(p.stack) >= p.opts.MaxDepth {
		msg := fmt.Sprintf("Maximum scope depth of %d exceeded.", p.opts.MaxDepth)
		return types.NewError(types.ErrScopeDepth, msg, pos).WithToken(string(node))
	}
	p.stack = append(p.stack, p.curr)
	p.curr = types.NewASTNode(node, pos)
	return nil
}

func (p *Parser) endScope(node types.NodeType, pos int) error {
	p.flush()
	if p.curr.Type != node {
		msg := fmt.Sprintf("Attempting to close '%s' scope with '%s' end char.", p.curr.Type, node)
		return types.NewError(types.ErrScopeMismatch, msg, pos)
	}
	done := p.curr
	p.curr = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.push(done)
	return nil
}
