package discovery

import (
	"reflect"

	"github.com/vk/sectreg/section"
)

// Entry is the runtime result of resolving one registration record: a
// decoded name paired with either a live type handle or an explicit
// unresolved marker.
type Entry struct {
	// Name is the full decoded record, "namespace.typeName".
	Name string
	// Namespace is everything before the final '.' in Name; dotted
	// namespaces survive the split intact.
	Namespace string
	// TypeName is everything after the final '.' in Name.
	TypeName string
	// Category is the region the record was found in.
	Category section.Category
	// Type is the resolved handle, nil when Resolved is false.
	Type reflect.Type
	// Resolved reports whether the name resolved to a usable type.
	Resolved bool
}

// NewInstance constructs a fresh value of the resolved type and returns a
// pointer to it, or nil for an unresolved entry.
func (e Entry) NewInstance() any {
	if !e.Resolved {
		return nil
	}
	return reflect.New(e.Type).Interface()
}
