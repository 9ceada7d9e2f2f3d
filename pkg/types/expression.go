// Package types defines the core data model of JSH.
//
// This package contains:
//   - Value: the closed JSON value union (Null, Bool, Number, String, *Array, *Object)
//   - converters, deep equality and structural merge over values
//   - an order-preserving JSON codec for values
//   - ASTNode and Expression: parsed JSH programs
//   - Error: structured errors with codes and kinds
package types

// Expression represents a parsed JSH program.
//
// An Expression is immutable once parsed and can be evaluated any number of
// times, by any number of evaluators.
type Expression struct {
	ast    *ASTNode
	source string
}

// NewExpression creates a new Expression from an AST.
func NewExpression(ast *ASTNode, source string) *Expression {
	return &Expression{
		ast:    ast,
		source: source,
	}
}

// AST returns the root (base) node of the expression.
func (e *Expression) AST() *ASTNode {
	return e.ast
}

// Source returns the original source code of the expression.
func (e *Expression) Source() string {
	return e.source
}

// String returns a string representation of the expression.
func (e *Expression) String() string {
	return e.source
}
