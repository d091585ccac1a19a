// Package quantity implements the measurement model for recipe ingredients.
//
// # Overview
//
// The package represents US kitchen volumes exactly by counting
// quarter-teaspoons, the smallest subdivision the Markdown recipe format
// recognizes. Every supported measure (cup, tablespoon, teaspoon, and their
// common fractions down to 1/16 teaspoon) is an exact multiple of it, so
// scaling by common factors never accumulates floating-point drift.
//
// # Types
//
// Volume is an immutable amount in quarter-teaspoons. It is parsed from an
// (amount, unit) token pair, scaled by multiplication, and rendered back as
// a greedy largest-unit-first mixed fraction, e.g.:
//
//	336 quarter-teaspoons -> "1 + 3/4 cups"
//	6 quarter-teaspoons   -> "1/2 tbsp"
//	1 quarter-teaspoon    -> "1/4 tsp"
//
// Quantity is a closed tagged union over the three shapes an ingredient
// amount can take:
//
//   - KindNone: no numeric quantity ("salt to taste")
//   - KindSimple: a bare number with no recognized unit ("2 eggs")
//   - KindVolume: a recognized volume measurement ("1 1/2 cups flour")
//
// Both types are value types: Scale returns a new value and never mutates
// the receiver.
//
// # Unit Aliases
//
// Unit matching is caseless (Unicode case folding) against a fixed alias
// table: cup/cups, tablespoon/tablespoons/tb/tbs/tbsp/tbsps, and
// teaspoon/teaspoons/tsp/tsps. Anything else is not a volume; callers fall
// back to the simple-number or no-quantity forms.
package quantity
