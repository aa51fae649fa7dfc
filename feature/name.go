// SPDX-License-Identifier: MIT

package feature

// Name is an optional strategy identifier: Some(name) or None.
// The zero value is None.
type Name struct {
	value string
	set   bool
}

// None selects the identity strategy.
var None = Name{}

// Some wraps a strategy name.
func Some(name string) Name { return Name{value: name, set: true} }

// Get returns the wrapped name and whether one is set.
func (n Name) Get() (string, bool) { return n.value, n.set }

// IsNone reports whether no name is set.
func (n Name) IsNone() bool { return !n.set }

// String returns the name, or "none".
func (n Name) String() string {
	if !n.set {
		return "none"
	}

	return n.value
}
