// Package destructure binds names to the positions of a sequence, following a template like
//
//	(first second &rest others)
//
// A template is parsed and compiled once into a Program,
// which can then be run against any number of runtime values.
//
// Binding is tolerant: a position that the value doesn't have binds as absent instead of failing,
// and so does a nested template over an element that is not a sequence.
// This is the opposite of seqkit.At, which fails loudly on a missing index.
package destructure

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrInvalidTemplate errorkit.Error = "destructure: invalid template"

const (
	// Ignore is the slot name that skips a position without binding it.
	Ignore = "_"
	// RestMarker introduces the trailing rest capture of a template.
	RestMarker = "&rest"
)

// Template describes how the positions of a sequence map to names.
type Template struct {
	Slots []Slot
	// Rest names the capture of every element after the last slot.
	// An empty Rest means no rest capture.
	Rest string
}

// Slot is either a Name or a Nested template, never both.
type Slot struct {
	Name   string
	Nested *Template
}

// Names returns the bound names in binding order: slots depth-first, then the rest capture.
// Ignored positions are not listed.
func (t Template) Names() []string {
	var names []string
	for _, slot := range t.Slots {
		switch {
		case slot.Nested != nil:
			names = append(names, slot.Nested.Names()...)
		case slot.Name != Ignore:
			names = append(names, slot.Name)
		}
	}
	if t.Rest != "" && t.Rest != Ignore {
		names = append(names, t.Rest)
	}
	return names
}

func (t Template) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t Template) write(sb *strings.Builder) {
	sb.WriteByte('(')
	for i, slot := range t.Slots {
		if 0 < i {
			sb.WriteByte(' ')
		}
		if slot.Nested != nil {
			slot.Nested.write(sb)
			continue
		}
		sb.WriteString(slot.Name)
	}
	if t.Rest != "" {
		if 0 < len(t.Slots) {
			sb.WriteByte(' ')
		}
		sb.WriteString(RestMarker)
		sb.WriteByte(' ')
		sb.WriteString(t.Rest)
	}
	sb.WriteByte(')')
}

// Parse reads a textual template.
// Both parentheses and square brackets delimit a template,
// but an opening delimiter has to be closed by its own pair.
func Parse(src string) (Template, error) {
	p := parser{tokens: tokenize(src)}
	open, ok := p.next()
	if !ok {
		return Template{}, ErrInvalidTemplate.F("empty template")
	}
	if open.typ != tokenOpen {
		return Template{}, ErrInvalidTemplate.F("template must start with ( or [, got %q at offset %d", open.text, open.offset)
	}
	t, err := p.template(open)
	if err != nil {
		return Template{}, err
	}
	if extra, ok := p.next(); ok {
		return Template{}, ErrInvalidTemplate.F("unexpected %q at offset %d after the template", extra.text, extra.offset)
	}
	return t, nil
}

func MustParse(src string) Template {
	t, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return t
}

type parser struct {
	tokens []token
}

func (p *parser) next() (token, bool) {
	if len(p.tokens) == 0 {
		return token{}, false
	}
	tok := p.tokens[0]
	p.tokens = p.tokens[1:]
	return tok, true
}

func (p *parser) template(open token) (Template, error) {
	var t Template
	for {
		tok, ok := p.next()
		if !ok {
			return t, ErrInvalidTemplate.F("%q at offset %d is never closed", open.text, open.offset)
		}
		switch tok.typ {
		case tokenClose:
			if closing[open.text] != tok.text {
				return t, ErrInvalidTemplate.F("%q at offset %d closes %q from offset %d", tok.text, tok.offset, open.text, open.offset)
			}
			return t, nil
		case tokenOpen:
			nested, err := p.template(tok)
			if err != nil {
				return t, err
			}
			t.Slots = append(t.Slots, Slot{Nested: &nested})
		case tokenRest:
			name, ok := p.next()
			if !ok || name.typ != tokenSymbol {
				return t, ErrInvalidTemplate.F("%s at offset %d must be followed by a name", RestMarker, tok.offset)
			}
			end, ok := p.next()
			if !ok || end.typ != tokenClose {
				return t, ErrInvalidTemplate.F("%s must be the last element of the template at offset %d", RestMarker, tok.offset)
			}
			if closing[open.text] != end.text {
				return t, ErrInvalidTemplate.F("%q at offset %d closes %q from offset %d", end.text, end.offset, open.text, open.offset)
			}
			t.Rest = name.text
			return t, nil
		case tokenSymbol:
			t.Slots = append(t.Slots, Slot{Name: tok.text})
		default:
			return t, ErrInvalidTemplate.F("unexpected %q at offset %d", tok.text, tok.offset)
		}
	}
}

var closing = map[string]string{"(": ")", "[": "]"}

type tokenType uint

const (
	tokenSymbol tokenType = iota
	tokenOpen
	tokenClose
	tokenRest
	tokenInvalid
)

type token struct {
	typ    tokenType
	text   string
	offset int
}

func tokenize(src string) []token {
	var (
		tokens []token
		offset int
	)
	for offset < len(src) {
		r, size := utf8.DecodeRuneInString(src[offset:])
		switch {
		case unicode.IsSpace(r):
			offset += size
		case r == '(' || r == '[':
			tokens = append(tokens, token{typ: tokenOpen, text: string(r), offset: offset})
			offset += size
		case r == ')' || r == ']':
			tokens = append(tokens, token{typ: tokenClose, text: string(r), offset: offset})
			offset += size
		default:
			end := offset
			for end < len(src) {
				r, size := utf8.DecodeRuneInString(src[end:])
				if unicode.IsSpace(r) || strings.ContainsRune("()[]", r) {
					break
				}
				end += size
			}
			text := src[offset:end]
			tokens = append(tokens, token{typ: symbolType(text), text: text, offset: offset})
			offset = end
		}
	}
	return tokens
}

func symbolType(text string) tokenType {
	if text == RestMarker {
		return tokenRest
	}
	if !isName(text) {
		return tokenInvalid
	}
	return tokenSymbol
}

// isName accepts identifier-like words, with the dash and a trailing ? or ! allowed.
func isName(text string) bool {
	if text == "" {
		return false
	}
	for i, r := range text {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case 0 < i && (unicode.IsDigit(r) || r == '-'):
		case 0 < i && i == len(text)-1 && (r == '?' || r == '!'):
		default:
			return false
		}
	}
	return true
}
