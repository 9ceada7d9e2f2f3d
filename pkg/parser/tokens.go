package parser

import "github.com/sandrolain/gojsh/pkg/types"

// scope describes a bracket pair that opens a nested node.
type scope struct {
	open, close rune
	node        types.NodeType
}

var scopes = []scope{
	{'(', ')', types.NodeCall},
	{'[', ']', types.NodeList},
	{'{', '}', types.NodeObj},
}

// lookupOpen returns the node type opened by r.
func lookupOpen(r rune) (types.NodeType, bool) {
	for _, s := range scopes {
		if s.open == r {
			return s.node, true
		}
	}
	return "", false
}

// lookupClose returns the node type closed by r.
func lookupClose(r rune) (types.NodeType, bool) {
	for _, s := range scopes {
		if s.close == r {
			return s.node, true
		}
	}
	return "", false
}

// isSeparator reports whether r ends a bare token or a variable.
// Commas, semicolons and colons are plain whitespace in JSH.
func isSeparator(r rune) bool {
	switch r {
	case ' ', '\r', '\t', '\n', ',', ';', ':':
		return true
	default:
		return false
	}
}

// isBoundary reports whether r ends a variable without being consumed by it.
func isBoundary(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', '#':
		return true
	default:
		return false
	}
}

// literal classifies a bare token.
func literal(text string) types.Value {
	switch text {
	case "true":
		return types.Bool(true)
	case "false":
		return types.Bool(false)
	case "null":
		return types.Null{}
	}
	if n, ok := types.ParseNumber(text); ok {
		return types.Number(n)
	}
	return types.String(text)
}
