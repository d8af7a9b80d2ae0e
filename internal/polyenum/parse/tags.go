package parse

import (
	"go/ast"
	"go/scanner"
	"go/token"

	"github.com/jesmaz/poly-enum/internal/codefmt"
)

type tagState int

const (
	expectIdent tagState = iota
	expectComma
)

// ParseTags parses a comma-separated list of identifiers:
//
//	IDENT (',' IDENT)* [',']
//
// pos is the position of args in the source code. The returned identifiers
// and errors are positioned accordingly. An empty list is valid. A trailing
// comment is ignored.
func ParseTags(pkger codefmt.Pkger, pos token.Pos, args string) ([]*ast.Ident, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", -1, len(args))

	var s scanner.Scanner
	s.Init(file, []byte(args), nil, 0)

	var idents []*ast.Ident
	state := expectIdent
	for {
		tokPos, tok, lit := s.Scan()
		if tok == token.EOF {
			return idents, nil
		}
		if tok == token.SEMICOLON && lit == "\n" {
			// Automatically inserted at the end of input.
			continue
		}

		at := pos + token.Pos(file.Offset(tokPos))
		found := lit
		if found == "" {
			found = tok.String()
		}

		switch state {
		case expectIdent:
			if tok != token.IDENT {
				return nil, codefmt.Errorf(pkger, codefmt.Span(at, at+token.Pos(len(found))), "expected identifier, found %s", found)
			}
			idents = append(idents, &ast.Ident{NamePos: at, Name: lit})
			state = expectComma

		case expectComma:
			if tok != token.COMMA {
				return nil, codefmt.Errorf(pkger, codefmt.Span(at, at+token.Pos(len(found))), "expected ',', found %s", found)
			}
			state = expectIdent
		}
	}
}
