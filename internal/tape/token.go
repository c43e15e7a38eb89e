package tape

// TokenType represents the type of a token in a .tape file
type TokenType string

const (
	// Special tokens
	TOKEN_EOF     TokenType = "EOF"
	TOKEN_ILLEGAL TokenType = "ILLEGAL"
	TOKEN_NEWLINE TokenType = "NEWLINE"

	// Literals
	TOKEN_STRING     TokenType = "STRING"
	TOKEN_NUMBER     TokenType = "NUMBER"
	TOKEN_DURATION   TokenType = "DURATION"
	TOKEN_IDENTIFIER TokenType = "IDENTIFIER"

	// Commands - Viewport and windows
	TOKEN_VIEWPORT TokenType = "Viewport"
	TOKEN_OPEN     TokenType = "Open"
	TOKEN_CLOSE    TokenType = "Close"
	TOKEN_FOCUS    TokenType = "Focus"

	// Commands - Pointer
	TOKEN_CLICK   TokenType = "Click"
	TOKEN_PRESS   TokenType = "Press"
	TOKEN_MOVE_TO TokenType = "MoveTo"
	TOKEN_RELEASE TokenType = "Release"
	TOKEN_DRAG    TokenType = "Drag"
	TOKEN_CANCEL  TokenType = "Cancel"

	// Commands - History
	TOKEN_BACK    TokenType = "Back"
	TOKEN_FORWARD TokenType = "Forward"
	TOKEN_VISIT   TokenType = "Visit"

	// Commands - Synchronization
	TOKEN_SLEEP TokenType = "Sleep"

	// Commands - Assertions
	TOKEN_EXPECT_OPEN     TokenType = "ExpectOpen"
	TOKEN_EXPECT_TOP      TokenType = "ExpectTop"
	TOKEN_EXPECT_POSITION TokenType = "ExpectPosition"
	TOKEN_EXPECT_SIZE     TokenType = "ExpectSize"
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// IsCommand returns true if the token type is a command
func (tt TokenType) IsCommand() bool {
	_, ok := commandTokens[tt]
	return ok
}

// IsExpectation returns true if the token is an assertion command
func (tt TokenType) IsExpectation() bool {
	switch tt {
	case TOKEN_EXPECT_OPEN, TOKEN_EXPECT_TOP, TOKEN_EXPECT_POSITION, TOKEN_EXPECT_SIZE:
		return true
	}
	return false
}

// KeywordTokenMap maps string keywords to token types
var KeywordTokenMap = map[string]TokenType{
	"Viewport": TOKEN_VIEWPORT,
	"Open":     TOKEN_OPEN,
	"Close":    TOKEN_CLOSE,
	"Focus":    TOKEN_FOCUS,

	"Click":   TOKEN_CLICK,
	"Press":   TOKEN_PRESS,
	"MoveTo":  TOKEN_MOVE_TO,
	"Release": TOKEN_RELEASE,
	"Drag":    TOKEN_DRAG,
	"Cancel":  TOKEN_CANCEL,

	"Back":    TOKEN_BACK,
	"Forward": TOKEN_FORWARD,
	"Visit":   TOKEN_VISIT,

	"Sleep": TOKEN_SLEEP,

	"ExpectOpen":     TOKEN_EXPECT_OPEN,
	"ExpectTop":      TOKEN_EXPECT_TOP,
	"ExpectPosition": TOKEN_EXPECT_POSITION,
	"ExpectSize":     TOKEN_EXPECT_SIZE,
}

var commandTokens = func() map[TokenType]struct{} {
	m := make(map[TokenType]struct{}, len(KeywordTokenMap))
	for _, tt := range KeywordTokenMap {
		m[tt] = struct{}{}
	}
	return m
}()

// LookupKeyword returns the token type for a keyword, or TOKEN_IDENTIFIER if not a keyword
func LookupKeyword(ident string) TokenType {
	if tt, ok := KeywordTokenMap[ident]; ok {
		return tt
	}
	return TOKEN_IDENTIFIER
}
