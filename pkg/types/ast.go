package types

import "strings"

// NodeType identifies the type of an AST node.
type NodeType string

// AST node types.
const (
	NodeBase  NodeType = "base"  // top-level statement sequence
	NodeCall  NodeType = "call"  // ( name args... )
	NodeList  NodeType = "list"  // [ items... ]
	NodeObj   NodeType = "obj"   // { key value ... }
	NodeGet   NodeType = "get"   // @a.b.c
	NodeValue NodeType = "value" // literal JSON scalar
)

// ASTNode represents a node in the Abstract Syntax Tree. Nodes are built once
// by the parser and never modified afterwards.
type ASTNode struct {
	Type     NodeType
	Value    Value      // literal for NodeValue
	Path     []string   // raw segments for NodeGet
	Children []*ASTNode // scope contents for base/call/list/obj
	Position int
}

// NewASTNode creates a new AST node of the specified type.
func NewASTNode(nodeType NodeType, position int) *ASTNode {
	return &ASTNode{
		Type:     nodeType,
		Position: position,
	}
}

// NewLiteral creates a literal node.
func NewLiteral(v Value, position int) *ASTNode {
	return &ASTNode{Type: NodeValue, Value: v, Position: position}
}

// String renders the node back into JSH-like source, mostly for debugging
// and error messages.
func (n *ASTNode) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *ASTNode) write(sb *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Type {
	case NodeValue:
		if s, ok := n.Value.(String); ok {
			b, _ := Marshal(s)
			sb.Write(b)
			return
		}
		sb.WriteString(Stringify(n.Value))
	case NodeGet:
		sb.WriteByte('@')
		for i, seg := range n.Path {
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(strings.ReplaceAll(seg, ".", `\.`))
		}
	default:
		open, end := "", ""
		switch n.Type {
		case NodeCall:
			open, end = "(", ")"
		case NodeList:
			open, end = "[", "]"
		case NodeObj:
			open, end = "{", "}"
		}
		sb.WriteString(open)
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteByte(' ')
			}
			c.write(sb)
		}
		sb.WriteString(end)
	}
}
