package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Document is a parsed HTML page flattened into document order, so that
// every node can be addressed by its position.
type Document struct {
	nodes []*Node
	byRaw map[*html.Node]*Node
}

// Node is one element, text or comment node of a Document.
type Node struct {
	doc   *Document
	index int
	raw   *html.Node
}

// Parse reads an HTML page and indexes its nodes in document order.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return NewDocument(root), nil
}

// NewDocument indexes an already parsed tree. The root itself gets
// position 0, its descendants follow in pre-order.
func NewDocument(root *html.Node) *Document {
	d := &Document{byRaw: make(map[*html.Node]*Node)}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		w := &Node{doc: d, index: len(d.nodes), raw: n}
		d.nodes = append(d.nodes, w)
		d.byRaw[n] = w
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return d
}

// Len returns the number of indexed nodes.
func (d *Document) Len() int { return len(d.nodes) }

// Nth returns the node at position i.
func (d *Document) Nth(i int) (*Node, bool) {
	if i < 0 || i >= len(d.nodes) {
		return nil, false
	}
	return d.nodes[i], true
}

// Find returns every element with the given tag in document order.
func (d *Document) Find(tag string) []*Node {
	var out []*Node
	for _, n := range d.nodes {
		if n.Is(tag) {
			out = append(out, n)
		}
	}
	return out
}

// first returns the first element with the given tag and exact text.
func (d *Document) first(tag, text string) (*Node, bool) {
	for _, n := range d.nodes {
		if n.Is(tag) && n.Text() == text {
			return n, true
		}
	}
	return nil, false
}

// Index returns the node's position in the document.
func (n *Node) Index() int { return n.index }

// Tag returns the lower-case element name, or "" for non-element nodes.
func (n *Node) Tag() string {
	if n.raw.Type != html.ElementNode {
		return ""
	}
	return n.raw.Data
}

// Is reports whether n is an element with the given tag.
func (n *Node) Is(tag string) bool {
	return n.raw.Type == html.ElementNode && n.raw.Data == tag
}

// Text returns the concatenated text of n and all of its descendants,
// NFC-normalised.
func (n *Node) Text() string {
	var b strings.Builder
	var walk func(h *html.Node)
	walk = func(h *html.Node) {
		if h.Type == html.TextNode {
			b.WriteString(h.Data)
			return
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n.raw)
	return norm.NFC.String(b.String())
}

// Children returns the direct element children of n with the given tag.
// An empty tag matches every element child.
func (n *Node) Children(tag string) []*Node {
	var out []*Node
	for c := n.raw.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (tag != "" && c.Data != tag) {
			continue
		}
		out = append(out, n.doc.byRaw[c])
	}
	return out
}

// Descendants returns every element below n with the given tag, in
// document order.
func (n *Node) Descendants(tag string) []*Node {
	var out []*Node
	for i := n.index + 1; i < len(n.doc.nodes); i++ {
		c := n.doc.nodes[i]
		if !n.contains(c) {
			break
		}
		if c.Is(tag) {
			out = append(out, c)
		}
	}
	return out
}

// HasAncestor reports whether some element above n has the given tag.
func (n *Node) HasAncestor(tag string) bool {
	for p := n.raw.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == tag {
			return true
		}
	}
	return false
}

func (n *Node) contains(c *Node) bool {
	for p := c.raw.Parent; p != nil; p = p.Parent {
		if p == n.raw {
			return true
		}
	}
	return false
}
