package protocol

// TextDocumentIdentifier identifies a text document by its URI
type TextDocumentIdentifier struct {
	URI string `json:"uri"`
}

// Range represents a range in a document
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Position represents a position in a document.
// Character is measured in UTF-16 code units.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}
