package shast

import (
	"fmt"
	"strconv"
	"strings"

	"bash2pwsh/pkg/shlex"
)

// Parse performs the recursive-descent parse described in spec.md §4.2.
// The only errors raised are structural (an unmatched '(' whose matching
// ')' never arrives); soft lexical issues are already absorbed by shlex.
func Parse(toks []shlex.Token) (*Script, error) {
	p := &parser{toks: toks}
	stmts, err := p.parseStatements(false)
	if err != nil {
		return nil, err
	}
	return &Script{Statements: stmts}, nil
}

type parser struct {
	toks []shlex.Token
	pos  int
}

func (p *parser) cur() shlex.Token {
	if p.pos >= len(p.toks) {
		return shlex.Token{Kind: shlex.EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) advance() shlex.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) isSeparator() bool {
	switch p.cur().Kind {
	case shlex.Semi, shlex.Newline:
		return true
	}
	return false
}

// parseStatements parses a flat list of statements (spec.md's `list`
// production), stopping at EOF or, inside a subshell, at ')'.
func (p *parser) parseStatements(inSubshell bool) ([]Statement, error) {
	var stmts []Statement
	for {
		for p.isSeparator() {
			p.advance()
		}
		if p.cur().Kind == shlex.EOF {
			break
		}
		if inSubshell && p.cur().Kind == shlex.RightParen {
			break
		}
		before := p.pos
		stmt, err := p.parseAndOr(inSubshell)
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.pos == before {
			// Nothing consumed — avoid looping forever on unexpected input.
			p.advance()
		}
	}
	return stmts, nil
}

func (p *parser) parseAndOr(inSubshell bool) (Statement, error) {
	left, err := p.parsePipelineStmt(inSubshell)
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Kind {
		case shlex.And:
			p.advance()
			right, err := p.parsePipelineStmt(inSubshell)
			if err != nil {
				return nil, err
			}
			left = &LogicalExpr{Op: "&&", Left: left, Right: right}
		case shlex.Or:
			p.advance()
			right, err := p.parsePipelineStmt(inSubshell)
			if err != nil {
				return nil, err
			}
			left = &LogicalExpr{Op: "||", Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parsePipelineStmt(inSubshell bool) (Statement, error) {
	negated := false
	if p.cur().Kind == shlex.Word && p.cur().Value == "!" {
		negated = true
		p.advance()
	}

	first, err := p.parseCommand(inSubshell)
	if err != nil {
		return nil, err
	}
	commands := []Command{first}
	for p.cur().Kind == shlex.Pipe {
		p.advance()
		next, err := p.parseCommand(inSubshell)
		if err != nil {
			return nil, err
		}
		commands = append(commands, next)
	}

	background := false
	if p.cur().Kind == shlex.Background {
		background = true
		p.advance()
	}

	if !negated && !background && len(commands) == 1 {
		if sc, ok := commands[0].(*SimpleCommand); ok && sc.Name == nil && len(sc.Redirects) == 0 {
			if len(sc.Assignments) > 0 {
				return &AssignmentStatement{Assignments: sc.Assignments}, nil
			}
			return &Pipeline{Commands: commands}, nil
		}
	}

	return &Pipeline{Commands: commands, Negated: negated, Background: background}, nil
}

func (p *parser) parseCommand(inSubshell bool) (Command, error) {
	if p.cur().Kind == shlex.LeftParen {
		p.advance()
		body, err := p.parseStatements(true)
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != shlex.RightParen {
			return nil, fmt.Errorf("unmatched '(': expected ')'")
		}
		p.advance()
		redirs, err := p.parseRedirects()
		if err != nil {
			return nil, err
		}
		return &Subshell{Body: &Script{Statements: body}, Redirects: redirs}, nil
	}
	return p.parseSimpleCommand()
}

func isWordLikeKind(k shlex.Kind) bool {
	switch k {
	case shlex.Word, shlex.SingleQuoted, shlex.DoubleQuoted, shlex.DollarSingleQuoted:
		return true
	}
	return false
}

func isRedirectKind(k shlex.Kind) bool {
	switch k {
	case shlex.RedirectOut, shlex.RedirectAppend, shlex.RedirectIn, shlex.HereDoc, shlex.HereString:
		return true
	}
	return false
}

// assignmentName returns (name, valueWord, true) if the given raw Word
// token is of the form NAME=VALUE.
func assignmentName(raw string) (string, string, bool) {
	eq := strings.IndexByte(raw, '=')
	if eq <= 0 {
		return "", "", false
	}
	name := raw[:eq]
	for i := 0; i < len(name); i++ {
		c := name[i]
		ok := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (i > 0 && c >= '0' && c <= '9')
		if !ok {
			return "", "", false
		}
	}
	return name, raw[eq+1:], true
}

func (p *parser) parseSimpleCommand() (*SimpleCommand, error) {
	sc := &SimpleCommand{}

	for p.cur().Kind == shlex.Word {
		if name, value, ok := assignmentName(p.cur().Value); ok {
			p.advance()
			sc.Assignments = append(sc.Assignments, Assignment{
				Name:  name,
				Value: &Word{Parts: splitWordRaw(value)},
			})
			continue
		}
		break
	}

	if isWordLikeKind(p.cur().Kind) {
		tok := p.advance()
		sc.Name = WordFromToken(tok)
		sc.Args = append(sc.Args, sc.Name)
	}

	for {
		if isWordLikeKind(p.cur().Kind) {
			tok := p.advance()
			sc.Args = append(sc.Args, WordFromToken(tok))
			continue
		}
		if isRedirectKind(p.cur().Kind) {
			redirs, err := p.parseRedirects()
			if err != nil {
				return nil, err
			}
			sc.Redirects = append(sc.Redirects, redirs...)
			continue
		}
		break
	}

	return sc, nil
}

func (p *parser) parseRedirects() ([]*Redirect, error) {
	var out []*Redirect
	for isRedirectKind(p.cur().Kind) {
		r, err := p.parseOneRedirect()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (p *parser) parseOneRedirect() (*Redirect, error) {
	tok := p.advance()
	switch tok.Kind {
	case shlex.RedirectOut, shlex.RedirectAppend, shlex.RedirectIn:
		op := "<"
		defaultFd := 0
		switch tok.Kind {
		case shlex.RedirectOut:
			op, defaultFd = ">", 1
		case shlex.RedirectAppend:
			op, defaultFd = ">>", 1
		}
		fd := defaultFd
		if tok.HasFd {
			fd = tok.Fd
		}
		if tok.Value == ">&" {
			r := &Redirect{Op: ">&", Fd: fd, HasTargetFd: tok.HasTgtFd, TargetFd: tok.TargetFd}
			r.Target = &Word{Parts: []WordPart{Literal{Value: "&" + strconv.Itoa(tok.TargetFd), Quoting: Unquoted}}}
			return r, nil
		}
		if !isWordLikeKind(p.cur().Kind) {
			return &Redirect{Op: op, Fd: fd, Target: &Word{Parts: []WordPart{Literal{Quoting: Unquoted}}}}, nil
		}
		target := p.advance()
		return &Redirect{Op: op, Fd: fd, Target: WordFromToken(target)}, nil

	case shlex.HereDoc:
		expand := tok.Fd == 1
		var target *Word
		if expand {
			target = &Word{Parts: splitExpansions(tok.Value, Double)}
		} else {
			target = &Word{Parts: []WordPart{Literal{Value: tok.Value, Quoting: Single}}}
		}
		return &Redirect{Op: "<", Fd: 0, Target: target, IsHeredoc: true, HeredocBody: tok.Value, Expand: expand}, nil

	case shlex.HereString:
		var target *Word
		if isWordLikeKind(p.cur().Kind) {
			target = WordFromToken(p.advance())
		} else {
			target = &Word{Parts: []WordPart{Literal{Quoting: Unquoted}}}
		}
		return &Redirect{Op: "<<<", Fd: 0, Target: target}, nil
	}
	return nil, fmt.Errorf("unexpected token in redirect: %s", tok.Kind)
}
