package rgx

// TokenType identifies the lexical category of a Token.
type TokenType int

const (
	TokenError TokenType = iota
	TokenEOF

	TokenChar     // literal rune (already escape-resolved)
	TokenAny      // .
	TokenPipe     // |
	TokenLParen   // ( plain capturing group
	TokenLParenNC // (?: non-capturing group
	TokenLParenNamed // (name: named capturing group, Name holds the group name
	TokenRParen   // )
	TokenClass    // [...] already-scanned character class, Ranges/Negated set
	TokenQuant    // *, +, ?, {n}, {n,}, {n,m}, each with optional trailing ?
	TokenAnchorStart // ^
	TokenAnchorEnd   // $
	TokenBackrefNum    // \1 .. \9, or \g{N} — Num holds the group number
	TokenBackrefName   // \g{name} — Name holds the group name
	TokenBackrefRel    // \g{-k} — Num holds k (positive)
)

// Token is one lexical unit produced by the Lexer.
type Token struct {
	Type    TokenType
	Val     rune        // for TokenChar
	Ranges  []ClassRange // for TokenClass
	Negated bool         // for TokenClass
	Name    string       // for TokenLParenNamed, TokenBackrefName
	Num     int          // for TokenBackrefNum, TokenBackrefRel
	Quant   Quantifier   // for TokenQuant
	Start   int          // byte offset of the token in the source pattern
	End     int
}
