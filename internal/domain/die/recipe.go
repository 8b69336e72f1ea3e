package die

import (
	"strconv"
	"strings"

	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
)

// SizeKind is the composition of the size part of a recipe
type SizeKind int

const (
	SizePlain SizeKind = iota
	SizeSwing
	SizeTwin
	SizeOption
)

// Size is the size part of a recipe: 20, X, 4,4 or 4/12
type Size struct {
	Kind  SizeKind
	Sides []int
	Swing string
}

// Plain returns a fixed size
func Plain(sides int) Size { return Size{Kind: SizePlain, Sides: []int{sides}} }

// Swing returns a swing size such as X
func Swing(letter string) Size { return Size{Kind: SizeSwing, Swing: letter} }

// Twin returns a twin size such as 4,4
func Twin(a, b int) Size { return Size{Kind: SizeTwin, Sides: []int{a, b}} }

// Option returns an option size such as 4/12
func Option(a, b int) Size { return Size{Kind: SizeOption, Sides: []int{a, b}} }

func (s Size) clone() Size {
	s.Sides = append([]int(nil), s.Sides...)
	return s
}

func (s Size) String() string {
	switch s.Kind {
	case SizeSwing:
		return s.Swing
	case SizeTwin:
		return joinInts(s.Sides, ",")
	case SizeOption:
		return joinInts(s.Sides, "/")
	default:
		return joinInts(s.Sides, "")
	}
}

var swingRanges = map[string][2]int{
	"R": {2, 16},
	"S": {6, 20},
	"T": {2, 12},
	"U": {8, 30},
	"V": {6, 12},
	"W": {4, 12},
	"X": {4, 20},
	"Y": {1, 20},
	"Z": {4, 30},
}

// SwingRange returns the legal sizes for a swing letter
func SwingRange(letter string) (low, high int, ok bool) {
	r, ok := swingRanges[letter]
	return r[0], r[1], ok
}

// SkillLookup resolves recipe letters to skills
type SkillLookup interface {
	ByLetter(letter string) (Skill, bool)
}

// ParseRecipe builds an unrolled die from a recipe such as "B(20)", "z(X)",
// "(4,4)" or "Bs(4/12)".
func ParseRecipe(id string, owner PlayerID, recipe string, lookup SkillLookup) (*Die, error) {
	open := strings.IndexByte(recipe, '(')
	if open < 0 || !strings.HasSuffix(recipe, ")") || open > len(recipe)-2 {
		return nil, dnderr.InvalidArgumentf("malformed recipe %q", recipe)
	}

	var skills []Skill
	for _, r := range recipe[:open] {
		letter := string(r)
		if lookup == nil {
			return nil, dnderr.InvalidArgumentf("recipe %q has skills but no skill lookup", recipe)
		}
		s, ok := lookup.ByLetter(letter)
		if !ok {
			return nil, dnderr.InvalidArgumentf("unknown skill letter %q in recipe %q", letter, recipe)
		}
		skills = append(skills, s)
	}

	size, err := parseSize(recipe[open+1 : len(recipe)-1])
	if err != nil {
		return nil, dnderr.Wrapf(err, "malformed recipe %q", recipe)
	}

	return New(id, owner, size, skills...), nil
}

func parseSize(text string) (Size, error) {
	if text == "" {
		return Size{}, dnderr.InvalidArgument("empty size")
	}
	if _, _, ok := SwingRange(text); ok {
		return Swing(text), nil
	}

	for _, sep := range []string{",", "/"} {
		if !strings.Contains(text, sep) {
			continue
		}
		parts := strings.Split(text, sep)
		if len(parts) != 2 {
			return Size{}, dnderr.InvalidArgumentf("size %q must have two parts", text)
		}
		a, err := parseSides(parts[0])
		if err != nil {
			return Size{}, err
		}
		b, err := parseSides(parts[1])
		if err != nil {
			return Size{}, err
		}
		if sep == "," {
			return Twin(a, b), nil
		}
		return Option(a, b), nil
	}

	n, err := parseSides(text)
	if err != nil {
		return Size{}, err
	}
	return Plain(n), nil
}

func parseSides(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 {
		return 0, dnderr.InvalidArgumentf("invalid sides %q", text)
	}
	return n, nil
}

// Recipe returns the canonical recipe: skill letters in attachment order, then size
func (d *Die) Recipe() string {
	var b strings.Builder
	for _, s := range d.Skills {
		b.WriteString(s.Letter)
	}
	b.WriteString("(")
	b.WriteString(d.Size.String())
	b.WriteString(")")
	return b.String()
}

// RecipeStatus is the recipe with the current size choice and value, e.g. "z(X=7):3"
func (d *Die) RecipeStatus() string {
	var b strings.Builder
	for _, s := range d.Skills {
		b.WriteString(s.Letter)
	}
	b.WriteString("(")
	b.WriteString(d.Size.String())
	if d.Size.Kind == SizeSwing || d.Size.Kind == SizeOption {
		b.WriteString("=")
		b.WriteString(strconv.Itoa(d.Sides))
	}
	b.WriteString("):")
	b.WriteString(strconv.Itoa(d.Value))
	return b.String()
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
