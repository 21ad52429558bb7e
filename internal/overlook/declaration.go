package overlook

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-overlook/internal/game"
)

// SynonymSeparator splits a primary name from its synonyms in a single
// string declaration, e.g. "walls // four".
const SynonymSeparator = "//"

// Pair is the structured declaration form: a primary name and a string of
// space-separated synonyms.
type Pair struct {
	Name     string
	Synonyms string
}

// Normalized is a parsed declaration ready for construction. Synonyms is
// empty, never absent, when the declaration carried none.
type Normalized struct {
	Name     string
	Synonyms string
}

// ParseAll normalizes decls in order. The first invalid declaration aborts
// the batch.
func ParseAll(decls ...any) ([]Normalized, error) {
	out := make([]Normalized, 0, len(decls))
	for i, d := range decls {
		n, err := Parse(d)
		if err != nil {
			return nil, fmt.Errorf("declaration %d: %w", i, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Parse normalizes a single declaration. Accepted forms are a bare name,
// a "name // synonyms" string, a Pair, and two-element lists whose second
// element is a synonym string or a list of synonyms.
func Parse(decl any) (Normalized, error) {
	var n Normalized

	switch d := decl.(type) {
	case string:
		n = parseString(d)
	case Pair:
		n = normalize(d.Name, d.Synonyms)
	case *Pair:
		if d == nil {
			return Normalized{}, fmt.Errorf("%w: nil pair", ErrInvalidDeclaration)
		}
		n = normalize(d.Name, d.Synonyms)
	case [2]string:
		n = normalize(d[0], d[1])
	case []string:
		if len(d) != 2 {
			return Normalized{}, fmt.Errorf("%w: pair must have 2 elements, got %d", ErrInvalidDeclaration, len(d))
		}
		n = normalize(d[0], d[1])
	case []any:
		p, err := parseList(d)
		if err != nil {
			return Normalized{}, err
		}
		n = p
	default:
		return Normalized{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDeclaration, decl)
	}

	if n.Name == "" {
		return Normalized{}, fmt.Errorf("%w: name is empty", ErrInvalidDeclaration)
	}
	if !game.Addressable(n.Name) {
		return Normalized{}, fmt.Errorf("%w: name %q has no words besides articles", ErrInvalidDeclaration, n.Name)
	}

	return n, nil
}

func parseString(s string) Normalized {
	name, synonyms, _ := strings.Cut(s, SynonymSeparator)
	return normalize(name, synonyms)
}

func parseList(l []any) (Normalized, error) {
	if len(l) != 2 {
		return Normalized{}, fmt.Errorf("%w: pair must have 2 elements, got %d", ErrInvalidDeclaration, len(l))
	}

	name, ok := l[0].(string)
	if !ok {
		return Normalized{}, fmt.Errorf("%w: pair name must be a string, got %T", ErrInvalidDeclaration, l[0])
	}

	switch syn := l[1].(type) {
	case string:
		return normalize(name, syn), nil
	case []string:
		return normalize(name, strings.Join(syn, " ")), nil
	case []any:
		words := make([]string, 0, len(syn))
		for _, s := range syn {
			str, ok := s.(string)
			if !ok {
				return Normalized{}, fmt.Errorf("%w: synonym must be a string, got %T", ErrInvalidDeclaration, s)
			}
			words = append(words, str)
		}
		return normalize(name, strings.Join(words, " ")), nil
	default:
		return Normalized{}, fmt.Errorf("%w: synonyms must be a string or list, got %T", ErrInvalidDeclaration, l[1])
	}
}

func normalize(name, synonyms string) Normalized {
	return Normalized{
		Name:     strings.TrimSpace(name),
		Synonyms: strings.TrimSpace(synonyms),
	}
}
