package signature

import (
	"strings"

	"github.com/mhpenta/sigdef/typespec"
)

// Error is a compilation failure. Its message is self-contained: it states
// what was wrong, echoes the offending expression, shows canonical syntax
// examples and enumerates every supported type so the fix does not require
// consulting documentation.
type Error struct {
	Owner      string
	Reason     string
	Expression string
	Missing    bool // true when no signature expression was supplied at all
}

const syntaxExamples = `    question: string -> answer: string
    context: string, question: string -> answer: string, confidence: float`

func (e *Error) Error() string {
	var b strings.Builder

	if e.Missing {
		b.WriteString("no signature defined for ")
		b.WriteString(e.Owner)
		b.WriteString(": declare one with an arrow expression, e.g.\n\n")
		b.WriteString(syntaxExamples)
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("invalid signature for ")
	b.WriteString(e.Owner)
	b.WriteString(": ")
	b.WriteString(e.Reason)
	b.WriteString("\n\noffending expression:\n    ")
	b.WriteString(e.Expression)
	b.WriteString("\n\nexpected syntax:\n")
	b.WriteString(syntaxExamples)
	b.WriteString("\n\nsupported basic types: ")
	b.WriteString(strings.Join(typespec.BasicTypeNames(), ", "))
	b.WriteString("\nsupported ML types: ")
	b.WriteString(strings.Join(typespec.MLTypeNames(), ", "))
	b.WriteString("\ncomposite constructors: list[T], dict[K,V], union[T1,T2,...]\n")
	return b.String()
}

func missingError(owner string) *Error {
	return &Error{Owner: owner, Missing: true}
}

func invalidError(owner, expr, reason string) *Error {
	return &Error{Owner: owner, Reason: reason, Expression: expr}
}
