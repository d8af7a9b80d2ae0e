package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError is an error at a span of the user's source code, such as a
// misplaced directive or an unsupported field type.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Unwrap returns the error without its position.
func (e CodeError) Unwrap() error { return e.err }

// Message returns the error message without its position.
func (e CodeError) Message() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

// Pos returns the start of the span. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns the end of the span. It is invalid if only the start is known.
func (e CodeError) End() token.Pos { return e.end }

// Error prefixes the message with "file:line:col" when the start is known.
func (e CodeError) Error() string {
	msg := e.Message()
	if !e.pos.IsValid() || e.fset == nil || msg == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", FormatPosition(e.fset.Position(e.pos)), msg)
}

// Errorf formats an error at the span of poser. The span is empty if poser
// is nil. Errors in args are formatted, never wrapped, so that a CodeError
// always has exactly one position.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	var pos, end token.Pos
	if poser != nil {
		pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			end = ender.End()
		}
	}

	args = f.wrapPrintfArgs(args)
	return &CodeError{fmt.Errorf(format, args...), pos, end, f.Fset}
}

// CodeErrors flattens errors joined by errors.Join and returns the code
// errors among them in depth-first order. Other errors are dropped.
func CodeErrors(err error) []*CodeError {
	var out []*CodeError
	var walk func(error)
	walk = func(err error) {
		if codeErr, ok := err.(*CodeError); ok {
			out = append(out, codeErr)
			return
		}
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, err := range joined.Unwrap() {
				walk(err)
			}
		}
	}
	walk(err)
	return out
}
