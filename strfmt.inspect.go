package strfmt

import "github.com/itsatony/go-strfmt/internal"

// TokenKind names the placeholder form a token belongs to
type TokenKind = internal.TokenKind

// Token kinds in classification order
const (
	TokenKindKey     = internal.TokenKindKey
	TokenKindAlign   = internal.TokenKindAlign
	TokenKindPrintf  = internal.TokenKindPrintf
	TokenKindMember  = internal.TokenKindMember
	TokenKindBase    = internal.TokenKindBase
	TokenKindIndex   = internal.TokenKindIndex
	TokenKindKeyword = internal.TokenKindKeyword
	TokenKindUnknown = internal.TokenKindUnknown
)

// TokenInfo describes one token of a format
type TokenInfo struct {
	Token string    `json:"token" yaml:"token"`
	Kind  TokenKind `json:"kind" yaml:"kind"`
}

// Tokens lists the tokens of format with the form each one takes in mode.
// Classification is structural; whether parameters exist is not checked.
func Tokens(format string, mode Mode) []TokenInfo {
	found := internal.FindTokens(format)
	out := make([]TokenInfo, 0, len(found))
	for _, tok := range found {
		body := tok[len(internal.TokenOpen) : len(tok)-len(internal.TokenClose)]
		out = append(out, TokenInfo{Token: tok, Kind: internal.ClassifyToken(mode, body)})
	}
	return out
}

// StepNames returns the names of all pipeline steps, sorted
func StepNames() []string {
	return internal.DefaultSteps().List()
}
