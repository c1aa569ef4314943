// Package schema declares the provider-agnostic structured-output schemas as
// pure data. The two trees (Advisory, Weather) are built once at package init
// and shared for the life of the process; consumers must never mutate them.
package schema

import "fmt"

// Kind is the closed set of schema node kinds.
type Kind string

const (
	String  Kind = "STRING"
	Number  Kind = "NUMBER"
	Integer Kind = "INTEGER"
	Boolean Kind = "BOOLEAN"
	Array   Kind = "ARRAY"
	Object  Kind = "OBJECT"
)

// Node is a recursive schema descriptor. An OBJECT node has Properties and
// may list Required names; an ARRAY node has exactly one Items node.
type Node struct {
	Kind        Kind
	Properties  map[string]*Node
	Items       *Node
	Required    []string
	Description string
	Default     any
}

// Validate checks the structural invariants of the node and every child.
func (n *Node) Validate() error {
	if n == nil {
		return fmt.Errorf("nil schema node")
	}
	switch n.Kind {
	case Object:
		if len(n.Properties) == 0 {
			return fmt.Errorf("OBJECT node has no properties")
		}
		for _, name := range n.Required {
			if _, ok := n.Properties[name]; !ok {
				return fmt.Errorf("required field %q is not a property", name)
			}
		}
		for name, child := range n.Properties {
			if err := child.Validate(); err != nil {
				return fmt.Errorf("property %q: %w", name, err)
			}
		}
	case Array:
		if n.Items == nil {
			return fmt.Errorf("ARRAY node has no items")
		}
		if err := n.Items.Validate(); err != nil {
			return fmt.Errorf("items: %w", err)
		}
	case String, Number, Integer, Boolean:
		if len(n.Properties) != 0 || n.Items != nil || len(n.Required) != 0 {
			return fmt.Errorf("scalar %s node carries structural fields", n.Kind)
		}
	default:
		return fmt.Errorf("unknown kind %q", n.Kind)
	}
	return nil
}

func obj(props map[string]*Node, required ...string) *Node {
	return &Node{Kind: Object, Properties: props, Required: required}
}

func arr(items *Node) *Node {
	return &Node{Kind: Array, Items: items}
}

func str() *Node {
	return &Node{Kind: String}
}

func strDefault(def string) *Node {
	return &Node{Kind: String, Default: def}
}

func num() *Node {
	return &Node{Kind: Number}
}

func enumStr(desc string) *Node {
	return &Node{Kind: String, Description: desc}
}
