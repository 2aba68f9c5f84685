package splitter

import "fmt"

// HiddenAlpha is the alpha every sub-element rests at while the control is closed.
const HiddenAlpha = 0.0

// Registry holds the sub-elements in provider order. Index i always refers to
// the i-th element the provider returned during the last rebuild.
type Registry struct {
	elements []SubElement
	built    bool
}

// NewRegistry returns an empty, unbuilt registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Rebuild discards the current elements and queries the provider for a new set.
// On error the previous elements are kept.
func (r *Registry) Rebuild(provider ElementProvider) error {
	if provider == nil {
		return configError("provider", "no element provider", nil)
	}

	count := provider.Count()
	if count < 0 {
		return configError("provider", fmt.Sprintf("negative element count %d", count), nil)
	}

	elements := make([]SubElement, 0, count)
	for i := 0; i < count; i++ {
		view := provider.ElementAt(i)
		if view == nil {
			return configError("provider", fmt.Sprintf("nil element at index %d", i), nil)
		}
		elements = append(elements, SubElement{Index: i, View: view})
	}

	for _, e := range elements {
		e.View.SetAlpha(HiddenAlpha)
	}

	r.elements = elements
	r.built = true
	return nil
}

// Elements returns a copy of the elements in index order.
func (r *Registry) Elements() []SubElement {
	out := make([]SubElement, len(r.elements))
	copy(out, r.elements)
	return out
}

// Get returns the element registered under index.
func (r *Registry) Get(index int) (SubElement, error) {
	if index < 0 || index >= len(r.elements) {
		return SubElement{}, &IndexOutOfRangeError{Index: index, Count: len(r.elements)}
	}
	return r.elements[index], nil
}

// IndexOf returns the index view was registered under, or -1.
func (r *Registry) IndexOf(view View) int {
	for _, e := range r.elements {
		if e.View == view {
			return e.Index
		}
	}
	return -1
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	return len(r.elements)
}

// Built reports whether Rebuild has succeeded at least once.
func (r *Registry) Built() bool {
	return r.built
}
