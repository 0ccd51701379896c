package ledger

import "strings"

// Tag is a key-value annotation rendered inline after a semicolon.
type Tag struct {
	Name  string
	Value string
}

// Tags is an ordered tag list. Order is insertion order; an upsert of
// an existing name overwrites its value without moving it.
type Tags []Tag

// Upsert sets the value for name, appending when absent.
func (t Tags) Upsert(name, value string) Tags {
	for i := range t {
		if t[i].Name == name {
			t[i].Value = value
			return t
		}
	}
	return append(t, Tag{Name: name, Value: value})
}

// String renders the list as "k1:v1, k2:v2" in order. Empty for an
// empty list.
func (t Tags) String() string {
	parts := make([]string, len(t))
	for i, tag := range t {
		parts[i] = tag.Name + ":" + tag.Value
	}
	return strings.Join(parts, ", ")
}
