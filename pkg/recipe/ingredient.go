package recipe

import (
	"fmt"
	"strings"

	"github.com/recipemd/recipemd/pkg/quantity"
)

// Ingredient is one parsed Markdown list item. Indent is the text before
// the "- " marker and reproduces byte for byte on render, preserving
// nesting depth.
type Ingredient struct {
	Indent   string            `json:"indent" yaml:"indent"`
	Quantity quantity.Quantity `json:"quantity" yaml:"quantity"`
	Name     string            `json:"name" yaml:"name"`
}

// ParseIngredient parses a single list-item substring as produced by the
// ingredients segmenter. The leading tokens after "- " are probed as
// (amount, unit) for a volume, then as a bare amount, and otherwise the
// whole tail is the name.
//
// The input must contain a "- " marker; the segmenter guarantees this, so a
// missing marker is a caller contract violation and panics.
func ParseIngredient(src string) Ingredient {
	indent, tail, ok := strings.Cut(src, "- ")
	if !ok {
		panic(fmt.Sprintf("recipe: ingredient line %q has no \"- \" marker", src))
	}
	if amount, unit, name, ok := cutTwice(tail, " "); ok {
		if v, ok := quantity.ParseVolume(amount, unit); ok {
			return Ingredient{Indent: indent, Quantity: quantity.FromVolume(v), Name: name}
		}
	}
	if amount, name, ok := strings.Cut(tail, " "); ok {
		if n, err := quantity.ParseAmount(amount); err == nil {
			return Ingredient{Indent: indent, Quantity: quantity.Simple(n), Name: name}
		}
	}
	return Ingredient{Indent: indent, Quantity: quantity.None(), Name: tail}
}

// Scale returns a copy of the ingredient with its quantity multiplied by
// factor.
func (i Ingredient) Scale(factor float64) Ingredient {
	return Ingredient{
		Indent:   i.Indent,
		Quantity: i.Quantity.Scale(factor),
		Name:     i.Name,
	}
}

// String renders the ingredient back to its Markdown list-item form.
func (i Ingredient) String() string {
	var out strings.Builder
	out.WriteString(i.Indent)
	out.WriteString("- ")
	switch i.Quantity.Kind() {
	case quantity.KindSimple, quantity.KindVolume:
		out.WriteString(i.Quantity.String())
		out.WriteByte(' ')
	}
	out.WriteString(i.Name)
	return out.String()
}

// cutTwice splits s around the first two occurrences of sep.
func cutTwice(s, sep string) (a, b, c string, ok bool) {
	a, rest, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", "", false
	}
	b, c, ok = strings.Cut(rest, sep)
	if !ok {
		return "", "", "", false
	}
	return a, b, c, true
}
