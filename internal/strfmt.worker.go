package internal

import (
	"errors"
	"math"
	"regexp"
	"runtime"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// ReplaceFunc computes the replacement for a matched substring.
// current is the whole string as it is before the replacement.
type ReplaceFunc func(match, current string) string

// RegexReplaceFunc computes the replacement for a regex match.
// groups[0] is the full match, followed by the submatches.
type RegexReplaceFunc func(groups []string) string

// TransformFunc is an arbitrary string operation with extra arguments
type TransformFunc func(s string, args ...any) string

// WorkerConfig holds defaults for encoding-aware operations
type WorkerConfig struct {
	Encoding string       // Default encoding name; empty means UTF-8
	Language language.Tag // Language used for case mapping
}

// Worker holds the string being transformed and applies operations to it
// in place. Character positions are code points unless an operation is
// given an encoding.
type Worker struct {
	text   string
	config WorkerConfig
}

// NewWorker creates a worker over text
func NewWorker(text string, config WorkerConfig) *Worker {
	return &Worker{text: text, config: config}
}

// String returns the current text
func (w *Worker) String() string {
	return w.text
}

func (w *Worker) codec(enc string) (codec, error) {
	return lookupCodec(enc, w.config.Encoding)
}

// mapChars decodes the text, applies fn and encodes the result
func (w *Worker) mapChars(enc string, fn func(c codec, chars []rune) ([]rune, error)) error {
	c, err := w.codec(enc)
	if err != nil {
		return err
	}
	chars, err := c.decode(w.text)
	if err != nil {
		return err
	}
	chars, err = fn(c, chars)
	if err != nil {
		return err
	}
	out, err := c.encode(chars)
	if err != nil {
		return err
	}
	w.text = out
	return nil
}

// Transform replaces the text with fn(text, args...)
func (w *Worker) Transform(fn TransformFunc, args ...any) {
	w.text = fn(w.text, args...)
}

// Replace replaces every occurrence of from with to
func (w *Worker) Replace(from, to string) {
	if from == "" {
		return
	}
	w.text = strings.ReplaceAll(w.text, from, to)
}

// ReplaceFunc replaces every occurrence of from with fn(from, text)
func (w *Worker) ReplaceFunc(from string, fn ReplaceFunc) {
	if from == "" || !strings.Contains(w.text, from) {
		return
	}
	w.text = strings.ReplaceAll(w.text, from, fn(from, w.text))
}

// IReplace replaces every case-insensitive occurrence of from with to
func (w *Worker) IReplace(from, to string) {
	if from == "" {
		return
	}
	w.text = caseInsensitive(from).ReplaceAllLiteralString(w.text, to)
}

// IReplaceFunc is IReplace with a computed replacement. fn runs once per
// distinct matched spelling.
func (w *Worker) IReplaceFunc(from string, fn ReplaceFunc) {
	if from == "" {
		return
	}
	current := w.text
	computed := map[string]string{}
	w.text = caseInsensitive(from).ReplaceAllStringFunc(current, func(match string) string {
		if out, ok := computed[match]; ok {
			return out
		}
		out := fn(match, current)
		computed[match] = out
		return out
	})
}

func caseInsensitive(literal string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(literal))
}

// RegexReplace replaces up to limit matches of re (all when limit < 0).
// repl is a template in regexp.Expand syntax ($1, ${name}).
func (w *Worker) RegexReplace(re *regexp.Regexp, repl string, limit int) {
	w.regexReplace(re, limit, func(match []int) string {
		return string(re.ExpandString(nil, repl, w.text, match))
	})
}

// RegexReplaceFunc replaces up to limit matches of re with fn(groups)
func (w *Worker) RegexReplaceFunc(re *regexp.Regexp, fn RegexReplaceFunc, limit int) {
	w.regexReplace(re, limit, func(match []int) string {
		groups := make([]string, len(match)/2)
		for i := range groups {
			if match[2*i] >= 0 {
				groups[i] = w.text[match[2*i]:match[2*i+1]]
			}
		}
		return fn(groups)
	})
}

func (w *Worker) regexReplace(re *regexp.Regexp, limit int, repl func(match []int) string) {
	if limit == 0 {
		return
	}
	matches := re.FindAllStringSubmatchIndex(w.text, limit)
	if len(matches) == 0 {
		return
	}
	var sb strings.Builder
	last := 0
	for _, m := range matches {
		sb.WriteString(w.text[last:m[0]])
		sb.WriteString(repl(m))
		last = m[1]
	}
	sb.WriteString(w.text[last:])
	w.text = sb.String()
}

// Strip trims characters in chars from both ends. chars supports a..z ranges.
func (w *Worker) Strip(chars string) {
	w.text = strings.Trim(w.text, expandCharset(chars))
}

// LStrip trims characters in chars from the start
func (w *Worker) LStrip(chars string) {
	w.text = strings.TrimLeft(w.text, expandCharset(chars))
}

// RStrip trims characters in chars from the end
func (w *Worker) RStrip(chars string) {
	w.text = strings.TrimRight(w.text, expandCharset(chars))
}

// expandCharset expands "x..y" ranges into the characters they cover
func expandCharset(chars string) string {
	if !strings.Contains(chars, CharsetRangeMarker) {
		return chars
	}
	r := []rune(chars)
	var sb strings.Builder
	for i := 0; i < len(r); i++ {
		if i+3 < len(r) && r[i+1] == '.' && r[i+2] == '.' && r[i+3] >= r[i] {
			for ch := r[i]; ch <= r[i+3]; ch++ {
				sb.WriteRune(ch)
			}
			i += 3
			continue
		}
		sb.WriteRune(r[i])
	}
	return sb.String()
}

// Upper upper-cases the whole text
func (w *Worker) Upper(enc string) error {
	return w.mapChars(enc, func(c codec, chars []rune) ([]rune, error) {
		return w.cases(c).upper(chars), nil
	})
}

// Lower lower-cases the whole text
func (w *Worker) Lower(enc string) error {
	return w.mapChars(enc, func(c codec, chars []rune) ([]rune, error) {
		return w.cases(c).lower(chars), nil
	})
}

// UpperFirst upper-cases the first character
func (w *Worker) UpperFirst(enc string) error {
	return w.mapChars(enc, func(c codec, chars []rune) ([]rune, error) {
		if len(chars) == 0 {
			return chars, nil
		}
		return append(w.cases(c).upper(chars[:1]), chars[1:]...), nil
	})
}

// LowerFirst lower-cases the first character
func (w *Worker) LowerFirst(enc string) error {
	return w.mapChars(enc, func(c codec, chars []rune) ([]rune, error) {
		if len(chars) == 0 {
			return chars, nil
		}
		return append(w.cases(c).lower(chars[:1]), chars[1:]...), nil
	})
}

func (w *Worker) cases(c codec) caseMapper {
	return caseMapper{lang: w.config.Language, binary: c.binary}
}

// UpperWords upper-cases the first character of the text and every
// character that follows one of delimiters
func (w *Worker) UpperWords(delimiters string) {
	chars := []rune(w.text)
	atStart := true
	for i, ch := range chars {
		if atStart {
			chars[i] = unicode.ToUpper(ch)
		}
		atStart = strings.ContainsRune(delimiters, ch)
	}
	w.text = string(chars)
}

// WordWrap wraps the text, see WordWrap
func (w *Worker) WordWrap(width int, brk string, cut bool) error {
	out, err := WordWrap(w.text, width, brk, cut)
	if err != nil {
		return err
	}
	w.text = out
	return nil
}

// Substr keeps length characters starting at start. Negative start counts
// from the end; negative length leaves that many characters off the end;
// hasLength false keeps everything up to the end.
func (w *Worker) Substr(start, length int, hasLength bool, enc string) error {
	return w.mapChars(enc, func(_ codec, chars []rune) ([]rune, error) {
		n := len(chars)
		if start < 0 {
			start = max(n+start, 0)
		}
		if start > n {
			return nil, nil
		}
		end := n
		if hasLength {
			if length < 0 {
				end = n + length
			} else {
				end = start + min(length, n-start)
			}
		}
		if end <= start {
			return nil, nil
		}
		return chars[start:end], nil
	})
}

// Repeat concatenates the text count times
func (w *Worker) Repeat(count int) error {
	if count < 0 {
		return errors.New(ErrMsgNegativeRepeat)
	}
	if len(w.text) > 0 && count > math.MaxInt/len(w.text) {
		return errors.New(ErrMsgRepeatOverflow)
	}
	w.text = strings.Repeat(w.text, count)
	return nil
}

// Reverse reverses the character order
func (w *Worker) Reverse(enc string) error {
	return w.mapChars(enc, func(_ codec, chars []rune) ([]rune, error) {
		for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
			chars[i], chars[j] = chars[j], chars[i]
		}
		return chars, nil
	})
}

// SquashWhitechars collapses whitespace runs into one space and trims the ends
func (w *Worker) SquashWhitechars() {
	w.text = strings.Join(strings.Fields(w.text), " ")
}

// Insert inserts sub before character idx. idx <= 0 prefixes, idx past the
// end suffixes.
func (w *Worker) Insert(sub string, idx int, enc string) error {
	if idx <= 0 {
		w.Prefix(sub)
		return nil
	}
	return w.mapChars(enc, func(c codec, chars []rune) ([]rune, error) {
		subChars, err := c.decode(sub)
		if err != nil {
			return nil, err
		}
		if idx >= len(chars) {
			return append(chars, subChars...), nil
		}
		out := make([]rune, 0, len(chars)+len(subChars))
		out = append(out, chars[:idx]...)
		out = append(out, subChars...)
		return append(out, chars[idx:]...), nil
	})
}

// EnsurePrefix prepends sub unless the text already starts with it
func (w *Worker) EnsurePrefix(sub string, enc string) error {
	has, err := w.affix(sub, enc, func(chars, subChars []rune) bool {
		return len(subChars) <= len(chars) && equalRunes(chars[:len(subChars)], subChars)
	})
	if err != nil {
		return err
	}
	if !has {
		w.Prefix(sub)
	}
	return nil
}

// EnsureSuffix appends sub unless the text already ends with it
func (w *Worker) EnsureSuffix(sub string, enc string) error {
	has, err := w.affix(sub, enc, func(chars, subChars []rune) bool {
		return len(subChars) <= len(chars) && equalRunes(chars[len(chars)-len(subChars):], subChars)
	})
	if err != nil {
		return err
	}
	if !has {
		w.Suffix(sub)
	}
	return nil
}

func (w *Worker) affix(sub, enc string, test func(chars, subChars []rune) bool) (bool, error) {
	c, err := w.codec(enc)
	if err != nil {
		return false, err
	}
	chars, err := c.decode(w.text)
	if err != nil {
		return false, err
	}
	subChars, err := c.decode(sub)
	if err != nil {
		return false, err
	}
	return test(chars, subChars), nil
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Prefix prepends s
func (w *Worker) Prefix(s string) {
	w.text = s + w.text
}

// Suffix appends s
func (w *Worker) Suffix(s string) {
	w.text += s
}

// Surround prepends and appends s
func (w *Worker) Surround(s string) {
	w.text = s + w.text + s
}

// EOL appends the platform line terminator
func (w *Worker) EOL() {
	w.text += PlatformEOL()
}

// EOLRN appends CRLF
func (w *Worker) EOLRN() {
	w.text += EOLWindows
}

// EOLN appends LF
func (w *Worker) EOLN() {
	w.text += EOLUnix
}

// PlatformEOL returns the line terminator of the running platform
func PlatformEOL() string {
	if runtime.GOOS == "windows" {
		return EOLWindows
	}
	return EOLUnix
}
