package recipe

import "strings"

// ingredientsHeader separates the preface from the ingredient list. The
// parser matches it literally, blank line included.
const ingredientsHeader = "\n## Ingredients\n\n"

// Recipe is a parsed document: the preface (through the ingredients header),
// the ordered ingredient list, and the instructions (from the next "##"
// header to the end).
type Recipe struct {
	Preface      string       `json:"preface" yaml:"preface"`
	Ingredients  []Ingredient `json:"ingredients" yaml:"ingredients"`
	Instructions string       `json:"instructions" yaml:"instructions"`
}

// Parse parses a Markdown recipe. It never fails: a document without the
// ingredients header is returned whole as the preface with no ingredients.
func Parse(src string) *Recipe {
	start := strings.Index(src, ingredientsHeader)
	if start < 0 {
		return &Recipe{Preface: src}
	}
	start += len(ingredientsHeader)
	preface, rest := src[:start], src[start:]

	block, instructions := rest, ""
	if end := strings.Index(rest, "\n##"); end >= 0 {
		block, instructions = rest[:end], rest[end:]
	}

	var ingredients []Ingredient
	it := items{rest: block}
	for {
		item, ok := it.next()
		if !ok {
			break
		}
		ingredients = append(ingredients, ParseIngredient(item))
	}

	return &Recipe{
		Preface:      preface,
		Ingredients:  ingredients,
		Instructions: instructions,
	}
}

// Scale returns a new Recipe with every ingredient quantity multiplied by
// factor. Preface and instructions carry over unchanged and the original
// recipe is untouched.
func (r *Recipe) Scale(factor float64) *Recipe {
	scaled := &Recipe{
		Preface:      r.Preface,
		Ingredients:  make([]Ingredient, 0, len(r.Ingredients)),
		Instructions: r.Instructions,
	}
	for _, ing := range r.Ingredients {
		scaled.Ingredients = append(scaled.Ingredients, ing.Scale(factor))
	}
	return scaled
}

// String renders the recipe back to Markdown: preface, each ingredient in
// order, then instructions, with no separators beyond what each part
// carries. For an unscaled parse the output equals the original input.
func (r *Recipe) String() string {
	var out strings.Builder
	out.WriteString(r.Preface)
	for _, ing := range r.Ingredients {
		out.WriteString(ing.String())
	}
	out.WriteString(r.Instructions)
	return out.String()
}
