// Package linkcheck verifies that in-page anchors of a rendered document
// point at elements that exist in the same document.
package linkcheck

import (
	"fmt"
	"io"
	"strings"

	"github.com/nfrund/gigagent/internal/domain"
	"golang.org/x/net/html"
)

// Report is the result of scanning one document.
type Report struct {
	// Anchors are the distinct in-page targets linked to, in first-seen order.
	Anchors []string
	// IDs are all element ids found in the document.
	IDs map[string]struct{}
	// Dangling are the anchors with no matching id.
	Dangling []string
}

// Scan tokenizes the document and collects anchors and ids. A bare "#" is
// treated as a link to the top of the page and ignored.
func Scan(r io.Reader) (*Report, error) {
	rep := &Report{IDs: make(map[string]struct{})}
	seen := make(map[string]bool)

	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("failed to tokenize document: %w", err)
			}
			rep.resolve()
			return rep, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			for _, attr := range tok.Attr {
				switch {
				case attr.Key == "id" && attr.Val != "":
					rep.IDs[attr.Val] = struct{}{}
				case attr.Key == "href" && tok.Data == "a":
					target, ok := strings.CutPrefix(attr.Val, "#")
					if !ok || target == "" || seen[target] {
						continue
					}
					seen[target] = true
					rep.Anchors = append(rep.Anchors, target)
				}
			}
		}
	}
}

func (r *Report) resolve() {
	for _, a := range r.Anchors {
		if _, ok := r.IDs[a]; !ok {
			r.Dangling = append(r.Dangling, a)
		}
	}
}

// Err returns an error wrapping domain.ErrDanglingAnchor when any anchor is
// dangling, nil otherwise.
func (r *Report) Err() error {
	if len(r.Dangling) == 0 {
		return nil
	}
	return fmt.Errorf("%w: #%s", domain.ErrDanglingAnchor, strings.Join(r.Dangling, ", #"))
}

// Check scans the document and returns the dangling-anchor error, if any.
func Check(r io.Reader) error {
	rep, err := Scan(r)
	if err != nil {
		return err
	}
	return rep.Err()
}
