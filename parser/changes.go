package parser

import (
	"log/slog"
	"strings"
)

// versionPrefix starts the one paragraph of a changelog entry that names the
// release, e.g. "Bot API 7.0". Other paragraphs in the section are noise.
const versionPrefix = "Bot API"

// RawChange is one dated changelog entry: the <h4> date, the "Bot API x.y"
// paragraph and the items of the list that follows.
type RawChange struct {
	Heading     string
	Description *string
	Items       []string
}

// SegmentChanges splits the region bounded by sel into one RawChange per <h4>.
//
// Only top-level lists contribute items; lists nested inside an item are
// already part of that item's text.
func SegmentChanges(doc *Document, sel Selector) ([]RawChange, error) {
	start, stop, err := sel.Bounds(doc)
	if err != nil {
		return nil, err
	}

	var changes []RawChange
	for i := start; i < stop; i++ {
		node, ok := doc.Nth(i)
		if !ok {
			continue
		}

		switch node.Tag() {
		case "h4":
			changes = append(changes, RawChange{Heading: node.Text()})

		case "p":
			text := node.Text()
			if !strings.HasPrefix(text, versionPrefix) {
				continue
			}
			if len(changes) == 0 {
				slog.Warn("changes: skipped version paragraph before first heading", "text", abbreviate(text))
				continue
			}
			appendDescription(&changes[len(changes)-1].Description, text)

		case "ul":
			if node.HasAncestor("li") {
				continue
			}
			if len(changes) == 0 {
				slog.Warn("changes: skipped list before first heading", "index", node.Index())
				continue
			}
			last := &changes[len(changes)-1]
			for _, li := range node.Children("li") {
				last.Items = append(last.Items, li.Text())
			}
		}
	}
	return changes, nil
}
