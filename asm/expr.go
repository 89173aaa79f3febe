package asm

import (
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// exprPattern matches `$(...)`, allowing one level of nested parentheses.
var exprPattern = regexp.MustCompile(`\$\((?:[^()]|\([^()]*\))*\)`)

// parenEval does compile-time $(...) evaluations. Every label is predeclared
// as its address, and PC as the address of the current line.
func parenEval(expr string, labels map[string]uint32, pc uint32) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"PC": starlark.MakeUint64(uint64(pc)),
	}
	for label, addr := range labels {
		pred[label] = starlark.MakeUint64(uint64(addr))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// expandExpressions replaces every $(...) in text with its decimal value.
func expandExpressions(text string, labels map[string]uint32, pc uint32) (expanded string, err error) {
	expanded = exprPattern.ReplaceAllStringFunc(text, func(str string) string {
		value, _err := parenEval(str[2:len(str)-1], labels, pc)
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return strconv.FormatInt(value, 10)
	})

	return
}
