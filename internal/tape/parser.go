package tape

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ParseError is a syntax error at a source position.
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Msg)
}

// Parser parses .tape files into commands
type Parser struct {
	lexer   *Lexer
	curTok  Token
	peekTok Token
	errors  []error
}

// NewParser creates a new parser from a lexer
func NewParser(l *Lexer) *Parser {
	p := &Parser{lexer: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse is a shortcut for parsing src in one go. Every syntax error is
// reported, joined.
func Parse(src string) ([]Command, error) {
	p := NewParser(NewLexer(src))
	cmds := p.Parse()
	return cmds, errors.Join(p.Errors()...)
}

// Errors returns the errors collected by Parse
func (p *Parser) Errors() []error {
	return p.errors
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lexer.NextToken()
}

func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, &ParseError{
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
		Msg:    fmt.Sprintf(format, args...),
	})
}

// skipToNextLine skips tokens until the start of the next line
func (p *Parser) skipToNextLine() {
	for p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.nextToken()
	}
}

func (p *Parser) atLineEnd() bool {
	return p.curTok.Type == TOKEN_NEWLINE || p.curTok.Type == TOKEN_EOF
}

// Parse parses the entire tape file and returns all valid commands
func (p *Parser) Parse() []Command {
	var commands []Command

	for p.curTok.Type != TOKEN_EOF {
		if p.curTok.Type == TOKEN_NEWLINE {
			p.nextToken()
			continue
		}

		cmd, ok := p.parseCommand()
		if ok {
			commands = append(commands, cmd)
		}
		p.skipToNextLine()
	}

	return commands
}

// parseCommand parses a single command line
func (p *Parser) parseCommand() (Command, bool) {
	sig, ok := signatures[p.curTok.Type]
	if !ok {
		p.addError("unknown command %q", p.curTok.Literal)
		return Command{}, false
	}

	cmd := Command{
		Type:   sig.cmd,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}
	p.nextToken() // consume the command

	for _, kind := range sig.args {
		if !p.parseArg(&cmd, kind) {
			return cmd, false
		}
	}

	if !p.atLineEnd() {
		p.addError("%s: unexpected %q", cmd.Type, p.curTok.Literal)
		return cmd, false
	}
	return cmd, true
}

func (p *Parser) parseArg(cmd *Command, kind argKind) bool {
	tok := p.curTok
	switch kind {
	case argIDs:
		for !p.atLineEnd() {
			if tok := p.curTok; tok.Type != TOKEN_IDENTIFIER && tok.Type != TOKEN_STRING {
				p.addError("%s expects window ids, got %q", cmd.Type, tok.Literal)
				return false
			}
			cmd.Args = append(cmd.Args, p.curTok.Literal)
			p.nextToken()
		}
		return true

	case argID:
		if tok.Type != TOKEN_IDENTIFIER && tok.Type != TOKEN_STRING {
			p.addError("%s expects a window id, got %s", cmd.Type, describe(tok))
			return false
		}
		cmd.Args = append(cmd.Args, tok.Literal)

	case argInt:
		if tok.Type != TOKEN_NUMBER {
			p.addError("%s expects a number, got %s", cmd.Type, describe(tok))
			return false
		}
		n, err := strconv.Atoi(tok.Literal)
		if err != nil {
			p.addError("%s: invalid number %q", cmd.Type, tok.Literal)
			return false
		}
		cmd.Ints = append(cmd.Ints, n)

	case argPath:
		if tok.Type != TOKEN_STRING {
			p.addError("%s expects a quoted path, got %s", cmd.Type, describe(tok))
			return false
		}
		cmd.Args = append(cmd.Args, tok.Literal)

	case argDuration:
		if tok.Type != TOKEN_DURATION {
			p.addError("%s expects a duration, got %s", cmd.Type, describe(tok))
			return false
		}
		d, err := time.ParseDuration(tok.Literal)
		if err != nil {
			p.addError("%s: invalid duration %q", cmd.Type, tok.Literal)
			return false
		}
		cmd.Delay = d
	}

	p.nextToken()
	return true
}

func describe(tok Token) string {
	switch tok.Type {
	case TOKEN_NEWLINE, TOKEN_EOF:
		return "end of line"
	}
	return fmt.Sprintf("%q", tok.Literal)
}
