package element

import "github.com/marktree/marktree/pkg/keypath"

// Props carries the attribute payload of a Node.
type Props map[string]any

// Node is the element descriptor produced by the default renderer. It
// serializes to JSON directly, so a host can ship element trees across a
// process boundary or feed them straight into a component factory.
type Node struct {
	Tag      string      `json:"tag"`
	Key      keypath.Key `json:"key,omitempty"`
	Props    Props       `json:"props,omitempty"`
	Children []Element   `json:"children,omitempty"`
}
