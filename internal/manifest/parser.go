package manifest

import (
	"strconv"
	"strings"

	"stp/internal/domain"
)

// Parse parses one manifest line into a directive.
//
// Grammar: FILENAME [TOT_ERRORS] [-i] [-v=VERSION]. An unescaped '#' starts a
// comment; a space or '#' preceded by a backslash is a literal character, not
// a separator. Blank lines and full-line comments yield ErrNotDirective; any
// other parse problem is a *ConfigError.
func Parse(line string) (domain.Directive, error) {
	d := domain.Directive{SchemaVersion: domain.SchemaVersion10}

	tokens := tokenize(line)
	if len(tokens) == 0 {
		return domain.Directive{}, ErrNotDirective
	}

	positionals := 0
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case tok == "-i":
			d.Inspect = true
		case tok == "-v":
			if i+1 >= len(tokens) {
				return domain.Directive{}, configErrorf("flag -v requires a version value")
			}
			i++
			if err := setVersion(&d, tokens[i]); err != nil {
				return domain.Directive{}, err
			}
		case strings.HasPrefix(tok, "-v="):
			if err := setVersion(&d, strings.TrimPrefix(tok, "-v=")); err != nil {
				return domain.Directive{}, err
			}
		case len(tok) > 1 && tok[0] == '-':
			return domain.Directive{}, configErrorf("unknown flag %q", tok)
		default:
			switch positionals {
			case 0:
				d.Filename = tok
			case 1:
				n, err := strconv.Atoi(tok)
				if err != nil {
					return domain.Directive{}, configErrorf("expected error count %q is not an integer", tok)
				}
				d.ExpectErrors = n
			default:
				return domain.Directive{}, configErrorf("unexpected argument %q", tok)
			}
			positionals++
		}
	}

	if d.Filename == "" {
		return domain.Directive{}, configErrorf("missing test filename")
	}
	return d, nil
}

func setVersion(d *domain.Directive, value string) error {
	switch value {
	case domain.SchemaVersion10, domain.SchemaVersion11:
		d.SchemaVersion = value
		return nil
	default:
		return configErrorf("%q is not an XSD version", value)
	}
}

// tokenize strips the comment portion of a line and splits the rest on
// unescaped spaces. Escaped characters ("\ ", "\#", "\\") are kept literally
// in the surviving token, without the backslash.
func tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	escaped := false
	for _, r := range line {
		if escaped {
			cur.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '#':
			flush()
			return tokens
		case ' ', '\t':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if escaped {
		// A trailing backslash escapes nothing; keep it.
		cur.WriteByte('\\')
	}
	flush()
	return tokens
}
