package recipe

import (
	"testing"

	"github.com/recipemd/recipemd/pkg/quantity"
)

func TestParseIngredient(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantIndent string
		wantKind   quantity.Kind
		wantName   string
	}{
		{
			name:       "volume quantity",
			src:        "- 1 cup flour\n",
			wantIndent: "",
			wantKind:   quantity.KindVolume,
			wantName:   "flour\n",
		},
		{
			name:       "fractional volume",
			src:        "- 1/2 tsp salt\n",
			wantIndent: "",
			wantKind:   quantity.KindVolume,
			wantName:   "salt\n",
		},
		{
			name:       "simple count when unit is not a volume",
			src:        "- 2 eggs\n",
			wantIndent: "",
			wantKind:   quantity.KindSimple,
			wantName:   "eggs\n",
		},
		{
			name:       "no quantity",
			src:        "- salt to taste\n",
			wantIndent: "",
			wantKind:   quantity.KindNone,
			wantName:   "salt to taste\n",
		},
		{
			name:       "nested item keeps its indent",
			src:        "  - 1 tbsp butter\n",
			wantIndent: "  ",
			wantKind:   quantity.KindVolume,
			wantName:   "butter\n",
		},
		{
			name:       "wrapped lines stay in the name",
			src:        "- 1 cup stock\n  warmed\n",
			wantIndent: "",
			wantKind:   quantity.KindVolume,
			wantName:   "stock\n  warmed\n",
		},
		{
			name:       "single token after marker",
			src:        "- parsley",
			wantIndent: "",
			wantKind:   quantity.KindNone,
			wantName:   "parsley",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing := ParseIngredient(tt.src)
			if ing.Indent != tt.wantIndent {
				t.Errorf("indent = %q, want %q", ing.Indent, tt.wantIndent)
			}
			if ing.Quantity.Kind() != tt.wantKind {
				t.Errorf("quantity kind = %v, want %v", ing.Quantity.Kind(), tt.wantKind)
			}
			if ing.Name != tt.wantName {
				t.Errorf("name = %q, want %q", ing.Name, tt.wantName)
			}
			if got := ing.String(); got != tt.src {
				t.Errorf("render = %q, want %q", got, tt.src)
			}
		})
	}
}

func TestParseIngredientFallbackOrder(t *testing.T) {
	// A valid two-token volume wins over the simple-number reading.
	ing := ParseIngredient("- 2 cups flour")
	if ing.Quantity.Kind() != quantity.KindVolume {
		t.Errorf("kind = %v, want KindVolume", ing.Quantity.Kind())
	}

	// "eggs" is not a unit, so the same shape degrades to a simple count.
	ing = ParseIngredient("- 2 eggs")
	if ing.Quantity.Kind() != quantity.KindSimple {
		t.Errorf("kind = %v, want KindSimple", ing.Quantity.Kind())
	}
	if ing.Quantity.Amount() != 2 {
		t.Errorf("amount = %v, want 2", ing.Quantity.Amount())
	}

	// No leading number at all degrades to no quantity.
	ing = ParseIngredient("- salt to taste")
	if ing.Quantity.Kind() != quantity.KindNone {
		t.Errorf("kind = %v, want KindNone", ing.Quantity.Kind())
	}
}

func TestParseIngredientPanicsWithoutMarker(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for input without a \"- \" marker")
		}
	}()
	ParseIngredient("no marker here")
}

func TestIngredientScale(t *testing.T) {
	ing := ParseIngredient("- 1 cup flour\n")
	scaled := ing.Scale(2)

	if got := scaled.String(); got != "- 2 cups flour\n" {
		t.Errorf("scaled = %q, want %q", got, "- 2 cups flour\n")
	}
	if got := ing.String(); got != "- 1 cup flour\n" {
		t.Errorf("scale mutated the original: %q", got)
	}
}
