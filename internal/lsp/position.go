package lsp

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/luna-video/luna-lsp/internal/lsp/protocol"
)

// offsetAt converts an LSP position (line, UTF-16 character) to a byte
// offset in text. It returns -1 when the line does not exist or the
// character lies past the end of the line.
func offsetAt(text string, pos protocol.Position) int {
	if pos.Line < 0 || pos.Character < 0 {
		return -1
	}

	offset := 0
	for l := 0; l < pos.Line; l++ {
		nl := strings.IndexByte(text[offset:], '\n')
		if nl < 0 {
			return -1
		}
		offset += nl + 1
	}

	lineText := text[offset:]
	if nl := strings.IndexByte(lineText, '\n'); nl >= 0 {
		lineText = lineText[:nl]
	}
	lineText = strings.TrimSuffix(lineText, "\r")

	u16 := 0
	byteOffset := 0
	for byteOffset < len(lineText) && u16 < pos.Character {
		r, size := utf8.DecodeRuneInString(lineText[byteOffset:])
		u16 += runeUTF16Len(r)
		byteOffset += size
	}
	if u16 < pos.Character {
		return -1
	}

	return offset + byteOffset
}

// positionAt converts a byte offset in text to an LSP position
func positionAt(text string, offset int) protocol.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	line := 0
	lineStart := 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	char := 0
	for _, r := range text[lineStart:offset] {
		char += runeUTF16Len(r)
	}

	return protocol.Position{Line: line, Character: char}
}

func runeUTF16Len(r rune) int {
	return len(utf16.Encode([]rune{r}))
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wordAt returns the word touching pos and its range. A word is a maximal
// run of letters, digits and underscores; a position right after the last
// character of a word still selects it.
func wordAt(text string, pos protocol.Position) (string, protocol.Range, bool) {
	offset := offsetAt(text, pos)
	if offset < 0 {
		return "", protocol.Range{}, false
	}

	start := offset
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if !isWordRune(r) {
			break
		}
		start -= size
	}

	end := offset
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if !isWordRune(r) {
			break
		}
		end += size
	}

	if start == end {
		return "", protocol.Range{}, false
	}

	return text[start:end], protocol.Range{
		Start: positionAt(text, start),
		End:   positionAt(text, end),
	}, true
}
