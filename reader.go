package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errSyntax = errors.New("malformed form")

// literal checks that src holds exactly one form, dropping any trailing ';'
// comment, and rewrites every number atom into a string literal. The lisp
// reader keeps floats in single precision and splits exponents off, so
// numbers are parsed after reading, with all 64 bits of them.
func literal(src string) (string, error) {
	var (
		out   strings.Builder
		depth int
		done  bool
	)
scan:
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ';':
			break scan
		case isSpace(c):
			out.WriteByte(c)
			i++
			continue
		case done:
			return "", fmt.Errorf("%w: unexpected %q after the first form", errSyntax, src[i:])
		}

		switch c {
		case '(':
			depth++
			out.WriteByte(c)
			i++
			continue

		case '\'':
			out.WriteByte(c)
			i++
			continue

		case ')':
			if depth == 0 {
				return "", fmt.Errorf("%w: unbalanced ')' in %q", errSyntax, src)
			}
			depth--
			out.WriteByte(c)
			i++

		case '"':
			j := i + 1
			for ; j < len(src) && src[j] != '"'; j++ {
				if src[j] == '\\' {
					j++
				}
			}
			if j >= len(src) {
				return "", fmt.Errorf("%w: unterminated string in %q", errSyntax, src)
			}
			out.WriteString(src[i : j+1])
			i = j + 1

		default:
			j := i
			for j < len(src) && !isDelim(src[j]) {
				j++
			}
			if atom := src[i:j]; isNumberAtom(atom) {
				out.WriteString(strconv.Quote(atom))
			} else {
				out.WriteString(atom)
			}
			i = j
		}
		done = depth == 0
	}

	switch {
	case depth > 0:
		return "", fmt.Errorf("%w: unclosed '(' in %q", errSyntax, src)
	case !done:
		return "", fmt.Errorf("%w: no form in %q", errSyntax, src)
	}
	return out.String(), nil
}

func isNumberAtom(atom string) bool {
	_, err := strconv.ParseFloat(atom, 64)
	return err == nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDelim(c byte) bool {
	return isSpace(c) || c == '(' || c == ')' || c == '"' || c == '\'' || c == ';'
}
