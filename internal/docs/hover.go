package docs

import (
	"fmt"
	"strings"
)

const (
	// CodeLanguage is the fence tag used for signatures
	CodeLanguage = "luna"
	// Separator is the line placed between signature and body
	Separator = "---"
)

// FormattedHover is the display form of one Entry
type FormattedHover struct {
	Signature string
	Language  string
	Separator string
	Body      string
}

// GetHoverInfo looks up word and formats its entry. It returns false when
// the word is not documented, which is the normal outcome for most tokens.
func GetHoverInfo(word string) (*FormattedHover, bool) {
	entry, ok := Lookup(word)
	if !ok {
		return nil, false
	}

	return &FormattedHover{
		Signature: entry.Signature,
		Language:  CodeLanguage,
		Separator: Separator,
		Body:      entry.Body,
	}, true
}

// Markdown renders the hover as a fenced code block, a rule and the body
func (h *FormattedHover) Markdown() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("```%s\n%s\n```\n", h.Language, h.Signature))
	sb.WriteString(h.Separator + "\n")
	sb.WriteString(h.Body)
	return sb.String()
}

// PlainText renders the hover for clients without markdown support
func (h *FormattedHover) PlainText() string {
	return h.Signature + "\n" + h.Separator + "\n" + h.Body
}
