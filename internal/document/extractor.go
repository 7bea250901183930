// Package document extracts the linear text content of a PDF binary, page by
// page. It has no knowledge of résumé semantics.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Text is the result of extracting a document: the concatenated text of
// every page in page order, and the page count reported by the document.
// Line breaks within a page follow the document's text objects; pages are
// joined by a line break.
type Text struct {
	Content string
	Pages   int
}

// ExtractText decodes a PDF binary and returns its linear text. Pages are
// processed sequentially to bound memory and preserve ordering.
//
// Returns *UnreadableError when the binary cannot be parsed (the pdf library
// panics on some malformed inputs, so decoding is wrapped in recover), and
// *EmptyError when extraction yields zero pages or no text.
func ExtractText(data []byte) (result *Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &UnreadableError{Cause: fmt.Errorf("panic during PDF decode: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &UnreadableError{Cause: err}
	}

	pages := reader.NumPage()
	if pages < 1 {
		return nil, &EmptyError{}
	}

	var sb strings.Builder
	extracted := 0
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if extracted > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(pageText)
		extracted++
	}

	if extracted == 0 {
		return nil, &EmptyError{}
	}

	return &Text{Content: sb.String(), Pages: pages}, nil
}
