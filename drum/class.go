// Package drum models percussion classes and their gate tuning profiles.
//
// A [Class] identifies which drum or percussion type a recording contains.
// Each class maps to an immutable [Profile] describing where its energy
// lives, how its gate should behave, and how its detection sidechain should
// be conditioned. Profiles are package-level constants shared read-only
// across any number of gate engines.
package drum

// classKind enumerates the closed set of built-in percussion variants.
type classKind int

const (
	kindUnknown classKind = iota
	kindKick
	kindSnare
	kindHiHat
	kindTambourine
	kindClaps
	kindToms
	kindCustom
)

// Class is a percussion classification. The zero value is the unknown class,
// which resolves to the generic profile. Class values are comparable and can
// be used as map keys; a custom class compares by its label.
type Class struct {
	kind  classKind
	label string
}

// Built-in percussion classes.
var (
	Kick       = Class{kind: kindKick}
	Snare      = Class{kind: kindSnare}
	HiHat      = Class{kind: kindHiHat}
	Tambourine = Class{kind: kindTambourine}
	Claps      = Class{kind: kindClaps}
	Toms       = Class{kind: kindToms}
)

// Custom returns a class carrying an arbitrary label. Custom classes resolve
// to the generic profile but remain distinguishable from each other and from
// the unknown class.
func Custom(label string) Class {
	return Class{kind: kindCustom, label: label}
}

// IsCustom reports whether c was created via [Custom].
func (c Class) IsCustom() bool { return c.kind == kindCustom }

// Label returns the label of a custom class and "" otherwise.
func (c Class) Label() string { return c.label }

// String returns a human-readable class name.
func (c Class) String() string {
	switch c.kind {
	case kindKick:
		return "kick"
	case kindSnare:
		return "snare"
	case kindHiHat:
		return "hihat"
	case kindTambourine:
		return "tambourine"
	case kindClaps:
		return "claps"
	case kindToms:
		return "toms"
	case kindCustom:
		if c.label == "" {
			return "custom"
		}

		return "custom:" + c.label
	default:
		return "unknown"
	}
}
