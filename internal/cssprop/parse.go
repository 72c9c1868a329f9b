package cssprop

import (
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseInline reads the declarations of an inline style attribute such as
// `color: red; margin: 0 auto`. Property names are lowercased, custom
// properties are kept verbatim and later declarations win. Whitespace inside
// a value is collapsed to single spaces, so `!important` markers and comma
// separated lists keep their original spacing.
func ParseInline(style string) (Properties, error) {
	props := Properties{}
	if strings.TrimSpace(style) == "" {
		return props, nil
	}

	lexer := css.NewLexer(parse.NewInputString(style))
	var d declaration
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			d.flush(props)
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return props, err
			}
			return props, nil
		}
		if tt == css.CommentToken {
			continue
		}
		if d.inValue {
			d.value(tt, data, props)
			continue
		}
		d.header(tt, data)
	}
}

// declaration accumulates one `name: value` pair while the lexer walks the
// attribute.
type declaration struct {
	name    string
	custom  bool
	broken  bool
	inValue bool
	depth   int
	buf     strings.Builder
}

func (d *declaration) header(tt css.TokenType, data []byte) {
	switch tt {
	case css.WhitespaceToken:
	case css.SemicolonToken:
		d.reset()
	case css.IdentToken:
		if d.name != "" {
			d.broken = true
			return
		}
		d.name = strings.ToLower(string(data))
	case css.CustomPropertyNameToken:
		if d.name != "" {
			d.broken = true
			return
		}
		d.name = string(data)
		d.custom = true
	case css.ColonToken:
		if d.name == "" || d.broken {
			d.broken = true
			return
		}
		d.inValue = true
	default:
		d.broken = true
	}
}

func (d *declaration) value(tt css.TokenType, data []byte, props Properties) {
	switch tt {
	case css.SemicolonToken:
		if d.depth == 0 {
			d.flush(props)
			return
		}
	case css.WhitespaceToken:
		d.buf.WriteByte(' ')
		return
	case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken, css.LeftBraceToken:
		d.depth++
	case css.RightParenthesisToken, css.RightBracketToken, css.RightBraceToken:
		if d.depth > 0 {
			d.depth--
		}
	}
	d.buf.Write(data)
}

func (d *declaration) flush(props Properties) {
	if d.inValue && !d.broken {
		props.Set(d.name, strings.TrimSpace(d.buf.String()))
	}
	d.reset()
}

func (d *declaration) reset() {
	d.name = ""
	d.custom = false
	d.broken = false
	d.inValue = false
	d.depth = 0
	d.buf.Reset()
}
