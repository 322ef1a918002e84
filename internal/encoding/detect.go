// Package encoding turns HR export bytes into UTF-8 text. Spreadsheet tools
// export CSV as UTF-8 with or without BOM, UTF-16, or a legacy Windows code page
// depending on the machine, and the importer must read all of them.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset names the encoding a source was decoded from.
type Charset string

const (
	CharsetUTF8        Charset = "UTF-8"
	CharsetUTF8BOM     Charset = "UTF-8-BOM"
	CharsetUTF16LE     Charset = "UTF-16LE"
	CharsetUTF16BE     Charset = "UTF-16BE"
	CharsetWindows1252 Charset = "windows-1252"
	CharsetISO8859_15  Charset = "ISO-8859-15"
)

const sniffLen = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect inspects the first bytes of a source and picks a charset.
//
// Detection order:
//  1. BOM (UTF-8, UTF-16 LE/BE)
//  2. valid UTF-8
//  3. chardet heuristics
//  4. Windows-1252, which covers the Spanish exports seen in practice
func Detect(head []byte) Charset {
	switch {
	case bytes.HasPrefix(head, bomUTF8):
		return CharsetUTF8BOM
	case bytes.HasPrefix(head, bomUTF16LE):
		return CharsetUTF16LE
	case bytes.HasPrefix(head, bomUTF16BE):
		return CharsetUTF16BE
	}

	if utf8.Valid(head) {
		return CharsetUTF8
	}

	result, err := chardet.NewTextDetector().DetectBest(head)
	if err == nil {
		switch result.Charset {
		case "UTF-8":
			return CharsetUTF8
		case "ISO-8859-1", "windows-1252":
			return CharsetWindows1252
		case "ISO-8859-15":
			return CharsetISO8859_15
		}
	}

	return CharsetWindows1252
}

// NewUTF8Reader detects the encoding of r and returns a reader producing UTF-8,
// together with the detected charset. A UTF-8 BOM is discarded.
func NewUTF8Reader(r io.Reader) (io.Reader, Charset, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("peek: %w", err)
	}

	charset := Detect(head)

	var dec transform.Transformer

	switch charset {
	case CharsetUTF8:
		return br, charset, nil
	case CharsetUTF8BOM:
		_, _ = br.Discard(len(bomUTF8))
		return br, charset, nil
	case CharsetUTF16LE:
		dec = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case CharsetUTF16BE:
		dec = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case CharsetISO8859_15:
		dec = charmap.ISO8859_15.NewDecoder()
	default:
		dec = charmap.Windows1252.NewDecoder()
	}

	return transform.NewReader(br, dec), charset, nil
}

// ReadAll reads the whole source and returns it as UTF-8 text.
func ReadAll(r io.Reader) (string, Charset, error) {
	utf8r, charset, err := NewUTF8Reader(r)
	if err != nil {
		return "", "", fmt.Errorf("detect encoding: %w", err)
	}

	b, err := io.ReadAll(utf8r)
	if err != nil {
		return "", "", fmt.Errorf("read %s content: %w", charset, err)
	}

	return string(b), charset, nil
}
