package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// TemplNode wraps a templ.Component so it can be placed inside a gomponents
// tree.
type TemplNode struct {
	Component templ.Component
}

// Render implements gomponents.Node. gomponents does not pass a context
// through Render, so the component receives context.Background().
func (n *TemplNode) Render(w io.Writer) error {
	return n.Component.Render(context.Background(), w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents.Node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplNode{Component: component}
}
