package quantity

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which Quantity variant is active.
type Kind int

const (
	// KindNone marks an ingredient with no numeric quantity.
	KindNone Kind = iota
	// KindSimple marks a bare numeric amount with no recognized unit.
	KindSimple
	// KindVolume marks a recognized volume measurement.
	KindVolume
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindVolume:
		return "volume"
	default:
		return "none"
	}
}

// Quantity is the amount attached to one ingredient: nothing, a bare
// number, or a volume. Exactly one variant is active. Quantities are value
// types; Scale returns a new value.
type Quantity struct {
	kind   Kind
	amount float64
	vol    Volume
}

// None returns the no-quantity variant.
func None() Quantity {
	return Quantity{kind: KindNone}
}

// Simple returns a bare numeric quantity, e.g. a count of eggs.
func Simple(amount float64) Quantity {
	return Quantity{kind: KindSimple, amount: amount}
}

// FromVolume returns a volume quantity.
func FromVolume(v Volume) Quantity {
	return Quantity{kind: KindVolume, vol: v}
}

// Kind reports the active variant.
func (q Quantity) Kind() Kind {
	return q.kind
}

// Amount returns the bare numeric amount. Only meaningful for KindSimple.
func (q Quantity) Amount() float64 {
	return q.amount
}

// Volume returns the volume payload. Only meaningful for KindVolume.
func (q Quantity) Volume() Volume {
	return q.vol
}

// Scale returns the quantity multiplied by factor. None is unchanged.
func (q Quantity) Scale(factor float64) Quantity {
	switch q.kind {
	case KindSimple:
		return Simple(q.amount * factor)
	case KindVolume:
		return FromVolume(q.vol.Scale(factor))
	default:
		return q
	}
}

// String renders the quantity the way it appears in an ingredient line,
// without the trailing separator: the bare number for KindSimple, the mixed
// fraction text for KindVolume, and the empty string for KindNone.
func (q Quantity) String() string {
	switch q.kind {
	case KindSimple:
		return formatAmount(q.amount)
	case KindVolume:
		return q.vol.String()
	default:
		return ""
	}
}

// quantityDoc is the structured wire form of a Quantity. Text is
// display-only output and ignored on input.
type quantityDoc struct {
	Type             string   `json:"type" yaml:"type"`
	Amount           *float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	QuarterTeaspoons *float64 `json:"quarterTeaspoons,omitempty" yaml:"quarterTeaspoons,omitempty"`
	Text             string   `json:"text,omitempty" yaml:"text,omitempty"`
}

func (q Quantity) doc() quantityDoc {
	d := quantityDoc{Type: q.kind.String(), Text: q.String()}
	switch q.kind {
	case KindSimple:
		amount := q.amount
		d.Amount = &amount
	case KindVolume:
		qtsp := q.vol.quarterTeaspoons
		d.QuarterTeaspoons = &qtsp
	}
	return d
}

func fromDoc(d quantityDoc) (Quantity, error) {
	switch d.Type {
	case "", "none":
		return None(), nil
	case "simple":
		if d.Amount == nil {
			return Quantity{}, fmt.Errorf("simple quantity is missing amount")
		}
		return Simple(*d.Amount), nil
	case "volume":
		if d.QuarterTeaspoons == nil {
			return Quantity{}, fmt.Errorf("volume quantity is missing quarterTeaspoons")
		}
		return FromVolume(FromQuarterTeaspoons(*d.QuarterTeaspoons)), nil
	default:
		return Quantity{}, fmt.Errorf("unknown quantity type: %q", d.Type)
	}
}

// MarshalJSON implements json.Marshaler.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.doc())
}

// UnmarshalJSON implements json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var d quantityDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	parsed, err := fromDoc(d)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (q Quantity) MarshalYAML() (any, error) {
	return q.doc(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *Quantity) UnmarshalYAML(unmarshal func(any) error) error {
	var d quantityDoc
	if err := unmarshal(&d); err != nil {
		return err
	}
	parsed, err := fromDoc(d)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
