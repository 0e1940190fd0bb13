package internal

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TokenKind names the placeholder form a token was classified as
type TokenKind string

// Token kinds, in classification order
const (
	TokenKindKey     TokenKind = "key"
	TokenKindAlign   TokenKind = "align"
	TokenKindPrintf  TokenKind = "printf"
	TokenKindMember  TokenKind = "member"
	TokenKindBase    TokenKind = "base"
	TokenKindIndex   TokenKind = "index"
	TokenKindKeyword TokenKind = "keyword"
	TokenKindUnknown TokenKind = "unknown"
)

// ruleOutcome tells the compiler what to do after a rule ran
type ruleOutcome int

const (
	// ruleSkip means the rule does not apply; try the next one
	ruleSkip ruleOutcome = iota
	// ruleResolved means the returned text replaces the token
	ruleResolved
	// ruleLiteral means the token is kept verbatim; a diagnostic was reported
	ruleLiteral
)

// tokenRule is one placeholder form: a pattern built from the mode's key
// grammar and a resolver. Rules whose pattern captures a key in group 1
// only run when that key exists.
type tokenRule struct {
	kind    TokenKind
	usesKey bool
	pattern func(key string) string
	resolve func(c *Compiler, token string, m []string) (string, ruleOutcome)
}

// tokenRules is the ordered rule table; the first matching rule wins
var tokenRules = []tokenRule{
	{
		kind:    TokenKindKey,
		usesKey: true,
		pattern: func(key string) string { return `^(` + key + `)$` },
		resolve: resolveKey,
	},
	{
		kind:    TokenKindAlign,
		usesKey: true,
		pattern: func(key string) string { return `^(` + key + `):(.)?([<>^])(\d+)$` },
		resolve: resolveAlign,
	},
	{
		kind:    TokenKindPrintf,
		usesKey: true,
		pattern: func(key string) string { return `^(` + key + `)%(.*)$` },
		resolve: resolvePrintf,
	},
	{
		kind:    TokenKindMember,
		usesKey: true,
		pattern: func(key string) string { return `^(` + key + `)->(\w+)$` },
		resolve: resolveMember,
	},
	{
		kind:    TokenKindBase,
		usesKey: true,
		pattern: func(key string) string { return `^(` + key + `)#(?:(\d+)#)?([dxXob]|\d\d?)$` },
		resolve: resolveBase,
	},
	{
		kind:    TokenKindIndex,
		usesKey: true,
		pattern: func(key string) string { return `^(` + key + `)\[(\w+)\]$` },
		resolve: resolveIndex,
	},
	{
		kind:    TokenKindKeyword,
		usesKey: false,
		pattern: func(string) string { return `^@(` + strings.Join(Keywords, "|") + `)$` },
		resolve: resolveKeyword,
	},
}

// compiledRule pairs a rule with its pattern for one mode
type compiledRule struct {
	tokenRule
	re *regexp.Regexp
}

var (
	tokenRegexp   = regexp.MustCompile(TokenPattern)
	compiledRules = map[Mode][]compiledRule{
		ModeIndexed: compileRules(KeyPatternIndexed),
		ModeNamed:   compileRules(KeyPatternNamed),
	}
)

func compileRules(key string) []compiledRule {
	rules := make([]compiledRule, len(tokenRules))
	for i, r := range tokenRules {
		rules[i] = compiledRule{tokenRule: r, re: regexp.MustCompile(r.pattern(key))}
	}
	return rules
}

// rulesFor returns the rule table for mode, defaulting to indexed
func rulesFor(mode Mode) []compiledRule {
	if rules, ok := compiledRules[mode]; ok {
		return rules
	}
	return compiledRules[ModeIndexed]
}

// ClassifyToken returns the first form whose structure matches body.
// Parameter existence is not considered.
func ClassifyToken(mode Mode, body string) TokenKind {
	for _, r := range rulesFor(mode) {
		if r.re.MatchString(body) {
			return r.kind
		}
	}
	return TokenKindUnknown
}

// FindTokens returns every token of format, braces included, in order
func FindTokens(format string) []string {
	return tokenRegexp.FindAllString(format, -1)
}

func resolveKey(c *Compiler, token string, m []string) (string, ruleOutcome) {
	val, ok := c.get(token, m[1])
	if !ok {
		return "", ruleLiteral
	}
	return Stringify(val), ruleResolved
}

func resolveAlign(c *Compiler, token string, m []string) (string, ruleOutcome) {
	val, ok := c.get(token, m[1])
	if !ok {
		return "", ruleLiteral
	}
	width, err := strconv.Atoi(m[4])
	if err != nil {
		c.report(Diagnostic{Kind: DiagnosticConversionFailed, Token: token, Message: ErrMsgInvalidNumber, Err: err})
		return "", ruleLiteral
	}
	if width > MaxPadWidth {
		c.report(Diagnostic{Kind: DiagnosticConversionFailed, Token: token, Message: ErrMsgPadWidthTooLarge})
		return "", ruleLiteral
	}
	padChar := m[2]
	if padChar == "" {
		padChar = DefaultPadChar
	}
	return Pad(Stringify(val), width, padChar, m[3]), ruleResolved
}

func resolvePrintf(c *Compiler, token string, m []string) (string, ruleOutcome) {
	val, ok := c.get(token, m[1])
	if !ok {
		return "", ruleLiteral
	}
	return fmt.Sprintf(m[2], PrintfArgs(val)...), ruleResolved
}

func resolveMember(c *Compiler, token string, m []string) (string, ruleOutcome) {
	val, ok := c.get(token, m[1])
	if !ok {
		return "", ruleLiteral
	}
	out, found, err := ResolveMember(val, m[2])
	if err != nil {
		msg := ErrMsgMemberCallFailed
		var pe *PanicError
		if errors.As(err, &pe) {
			msg = pe.Message
		}
		c.report(Diagnostic{Kind: DiagnosticUnresolvedMember, Token: token, Message: msg, Err: err})
		return "", ruleLiteral
	}
	if !found {
		c.report(Diagnostic{Kind: DiagnosticUnresolvedMember, Token: token, Message: ErrMsgUnresolvedMember})
		return "", ruleLiteral
	}
	return Stringify(out), ruleResolved
}

func resolveBase(c *Compiler, token string, m []string) (string, ruleOutcome) {
	val, ok := c.get(token, m[1])
	if !ok {
		return "", ruleLiteral
	}
	from, okFrom := ParseBase(m[2], DefaultBaseFrom)
	to, okTo := ParseBase(m[3], DefaultBaseFrom)
	if !okFrom || !okTo {
		c.report(Diagnostic{Kind: DiagnosticConversionFailed, Token: token, Message: ErrMsgInvalidBase})
		return "", ruleLiteral
	}
	out, err := ConvertBase(val, from, to, m[3] == BaseMnemonicHexUpper)
	if err != nil {
		c.report(Diagnostic{Kind: DiagnosticConversionFailed, Token: token, Message: ErrMsgInvalidNumber, Err: err})
		return "", ruleLiteral
	}
	return out, ruleResolved
}

func resolveIndex(c *Compiler, token string, m []string) (string, ruleOutcome) {
	val, ok := c.get(token, m[1])
	if !ok {
		return "", ruleLiteral
	}
	item, found := LookupIndex(val, m[2])
	if !found {
		return "", ruleSkip
	}
	return Stringify(item), ruleResolved
}

func resolveKeyword(c *Compiler, token string, m []string) (string, ruleOutcome) {
	out, failure := c.config.Caller.ResolveKeyword(m[1])
	if failure != "" {
		c.report(Diagnostic{Kind: DiagnosticBadKeywordUsage, Token: token, Message: failure})
		return "", ruleResolved
	}
	return out, ruleResolved
}
