package quantity

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// Unit sizes in quarter-teaspoons.
const (
	quarterTeaspoon = 1
	halfTeaspoon    = 2
	teaspoon        = 4
	halfTablespoon  = 6
	tablespoon      = 12
	quarterCup      = 48
	thirdCup        = 64
	halfCup         = 96
	twoThirdsCup    = 128
	threeQuarterCup = 144
	cup             = 192
)

// cupFractions are tested in strictly descending order so at most one
// fraction token is emitted per decomposition pass.
var cupFractions = []struct {
	size  float64
	label string
}{
	{threeQuarterCup, "3/4"},
	{twoThirdsCup, "2/3"},
	{halfCup, "1/2"},
	{thirdCup, "1/3"},
	{quarterCup, "1/4"},
}

// Volume is an exact amount of a volume measurement, counted in
// quarter-teaspoons. The zero value is an empty volume. Volumes are never
// mutated; Scale returns a new value.
type Volume struct {
	quarterTeaspoons float64
}

// FromQuarterTeaspoons constructs a Volume directly from a quarter-teaspoon
// count. Used when rebuilding volumes from structured (JSON/YAML) input.
func FromQuarterTeaspoons(qtsp float64) Volume {
	return Volume{quarterTeaspoons: qtsp}
}

// QuarterTeaspoons returns the quarter-teaspoon count.
func (v Volume) QuarterTeaspoons() float64 {
	return v.quarterTeaspoons
}

// Scale returns a new Volume multiplied by factor.
func (v Volume) Scale(factor float64) Volume {
	return Volume{quarterTeaspoons: v.quarterTeaspoons * factor}
}

// ParseVolume parses an (amount, unit) token pair into a Volume. The amount
// accepts decimals and integer fractions (see ParseAmount); the unit is
// matched caselessly against the fixed alias table. The second return value
// is false when either token does not parse, in which case callers fall
// back to a simple or empty quantity.
func ParseVolume(amount, unit string) (Volume, bool) {
	n, err := ParseAmount(amount)
	if err != nil {
		return Volume{}, false
	}
	var size float64
	switch cases.Fold().String(unit) {
	case "cup", "cups":
		size = cup
	case "tablespoon", "tablespoons", "tb", "tbs", "tbsp", "tbsps":
		size = tablespoon
	case "teaspoon", "teaspoons", "tsp", "tsps":
		size = teaspoon
	default:
		return Volume{}, false
	}
	return Volume{quarterTeaspoons: n * size}, true
}

// String renders the volume as a human mixed fraction, largest unit first:
// whole cups and at most one cup fraction, then tablespoons with an optional
// half, then teaspoons down to 1/16. Additional tokens within and across
// unit groups are joined with "+ ". An exactly zero volume renders as the
// empty string.
func (v Volume) String() string {
	rem := v.quarterTeaspoons
	var out strings.Builder

	// Cups: whole cups, then the largest fraction the remainder covers.
	plural := false
	cups := math.Floor(rem / cup)
	rem -= cups * cup
	if cups > 0 {
		out.WriteString(formatAmount(cups))
		out.WriteByte(' ')
	}
	for _, f := range cupFractions {
		if rem >= f.size {
			if out.Len() > 0 {
				out.WriteString("+ ")
				plural = true
			}
			out.WriteString(f.label)
			out.WriteByte(' ')
			rem -= f.size
		}
	}
	if cups > 1 || plural {
		out.WriteString("cups")
	} else if out.Len() > 0 {
		out.WriteString("cup")
	}

	// Tablespoons on the cup remainder.
	hasTablespoons := false
	plural = false
	tablespoons := math.Floor(rem / tablespoon)
	rem -= tablespoons * tablespoon
	if tablespoons > 0 {
		hasTablespoons = true
		if out.Len() > 0 {
			out.WriteString("+ ")
		}
		out.WriteString(formatAmount(tablespoons))
		out.WriteByte(' ')
	}
	// Two teaspoons exceed half a tablespoon, so the half-tablespoon form
	// only applies below that; anything larger is reported as teaspoons.
	if rem >= halfTablespoon && rem < 2*teaspoon {
		if out.Len() > 0 {
			out.WriteString("+ ")
		}
		plural = hasTablespoons
		hasTablespoons = true
		out.WriteString("1/2 ")
		rem -= halfTablespoon
	}
	if tablespoons > 1 || plural {
		out.WriteString("tbsps")
	} else if hasTablespoons {
		out.WriteString("tbsp")
	}

	// Teaspoons on the tablespoon remainder.
	hasTeaspoons := false
	plural = false
	teaspoons := math.Floor(rem / teaspoon)
	rem -= teaspoons * teaspoon
	if teaspoons > 0 {
		hasTeaspoons = true
		if out.Len() > 0 {
			out.WriteString("+ ")
		}
		out.WriteString(formatAmount(teaspoons))
		out.WriteByte(' ')
	}
	if rem >= halfTeaspoon {
		plural = hasTeaspoons
		hasTeaspoons = true
		if out.Len() > 0 {
			out.WriteString("+ ")
		}
		out.WriteString("1/2 ")
		rem -= halfTeaspoon
	}
	if rem >= quarterTeaspoon {
		plural = hasTeaspoons
		hasTeaspoons = true
		if out.Len() > 0 {
			out.WriteString("+ ")
		}
		out.WriteString("1/4 ")
		rem -= quarterTeaspoon
	}
	if rem > 0 {
		plural = hasTeaspoons
		hasTeaspoons = true
		if out.Len() > 0 {
			out.WriteString("+ ")
		}
		switch tsps := rem / teaspoon; tsps {
		case 0.0625:
			out.WriteString("1/16 ")
		case 0.125:
			out.WriteString("1/8 ")
		default:
			out.WriteString(formatAmount(tsps))
			out.WriteByte(' ')
		}
	}
	if teaspoons > 1 || plural {
		out.WriteString("tsps")
	} else if hasTeaspoons {
		out.WriteString("tsp")
	}

	return out.String()
}
