package internal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/language"
)

// codec converts between a string in some encoding and its characters.
// UTF-8 text is read as code points. The binary encoding maps every byte
// to one character, which gives byte-wise semantics.
type codec struct {
	name   string
	enc    encoding.Encoding // nil for UTF-8 and binary
	binary bool
}

var utf8Codec = codec{name: EncodingUTF8}

// lookupCodec resolves an encoding name. An empty name selects fallback,
// and an empty fallback selects UTF-8.
func lookupCodec(name, fallback string) (codec, error) {
	if name == "" {
		name = fallback
	}
	norm := strings.ToLower(strings.TrimSpace(name))
	switch norm {
	case "", EncodingUTF8, "utf8":
		return utf8Codec, nil
	case EncodingBinary, "binary", "ascii":
		return codec{name: EncodingBinary, binary: true}, nil
	}

	enc, err := htmlindex.Get(norm)
	if err != nil {
		return codec{}, fmt.Errorf(ErrFmtWithSubject, ErrMsgUnknownEncoding, name)
	}
	canonical, _ := htmlindex.Name(enc)
	if canonical == EncodingUTF8 {
		return utf8Codec, nil
	}
	return codec{name: canonical, enc: enc}, nil
}

// decode splits s into characters
func (c codec) decode(s string) ([]rune, error) {
	switch {
	case c.binary:
		out := make([]rune, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = rune(s[i])
		}
		return out, nil
	case c.enc != nil:
		decoded, err := c.enc.NewDecoder().String(s)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtWithSubject, ErrMsgDecodeFailed, c.name)
		}
		return []rune(decoded), nil
	default:
		return []rune(s), nil
	}
}

// encode joins characters back into a string in this encoding
func (c codec) encode(r []rune) (string, error) {
	switch {
	case c.binary:
		out := make([]byte, len(r))
		for i, ch := range r {
			out[i] = byte(ch)
		}
		return string(out), nil
	case c.enc != nil:
		encoded, err := c.enc.NewEncoder().String(string(r))
		if err != nil {
			return "", fmt.Errorf(ErrFmtWithSubject, ErrMsgEncodeFailed, c.name)
		}
		return encoded, nil
	default:
		return string(r), nil
	}
}

// length returns the character count of s
func (c codec) length(s string) (int, error) {
	if c.binary {
		return len(s), nil
	}
	if c.enc == nil {
		return utf8.RuneCountInString(s), nil
	}
	r, err := c.decode(s)
	return len(r), err
}

// caseMapper folds case for one codec. Binary mode only touches ASCII
// letters so multi-byte sequences are never split.
type caseMapper struct {
	lang   language.Tag
	binary bool
}

func (m caseMapper) upper(r []rune) []rune {
	if m.binary {
		return asciiMap(r, 'a', 'z', 'A'-'a')
	}
	return []rune(cases.Upper(m.lang).String(string(r)))
}

func (m caseMapper) lower(r []rune) []rune {
	if m.binary {
		return asciiMap(r, 'A', 'Z', 'a'-'A')
	}
	return []rune(cases.Lower(m.lang).String(string(r)))
}

func asciiMap(r []rune, lo, hi, delta rune) []rune {
	out := make([]rune, len(r))
	for i, ch := range r {
		if ch >= lo && ch <= hi {
			ch += delta
		}
		out[i] = ch
	}
	return out
}
