package registry

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/vk/sectreg/section"
)

// Token is the zero-sized result of a registration call. It exists only so
// call sites can run the call at package init time via `var _ = ...`.
type Token struct{}

// Registrar deposits registration records into one arena and binds type
// handles into its own type table. The zero value writes to a nil arena and
// is not usable; use New or the package-level functions, which target the
// running image.
type Registrar struct {
	arena *section.Arena

	mu    sync.RWMutex
	types map[string]reflect.Type
}

// New creates a Registrar bound to the given arena.
func New(arena *section.Arena) *Registrar {
	return &Registrar{
		arena: arena,
		types: make(map[string]reflect.Type),
	}
}

// defaultRegistrar serves the package-level registration functions and is
// bound to the running image.
var defaultRegistrar = New(section.Default())

// Default returns the registrar bound to the running image. Discovery uses
// it as the type-resolution collaborator.
func Default() *Registrar {
	return defaultRegistrar
}

// QualifiedName joins a namespace and type name with the canonical separator.
func QualifiedName(namespace, typeName string) string {
	return namespace + "." + typeName
}

// validateIdentity panics on identifiers that would make the deposited
// record undecodable. The namespace may itself contain separators (dotted
// namespaces are split on the final separator at discovery time); the type
// name must not, or the split becomes ambiguous.
func validateIdentity(namespace, typeName string) {
	if namespace == "" {
		panic("registry: namespace must not be empty")
	}
	if typeName == "" {
		panic("registry: type name must not be empty")
	}
	if strings.Contains(typeName, ".") {
		panic(fmt.Sprintf("registry: type name %q must not contain '.'", typeName))
	}
}

// Register deposits one record of the given category. Name-only registration
// is legal: the record is discoverable but resolves to no type handle.
func (r *Registrar) Register(cat section.Category, namespace, typeName string) Token {
	validateIdentity(namespace, typeName)
	r.arena.Deposit(cat, QualifiedName(namespace, typeName))
	return Token{}
}

// RegisterType deposits one record and binds typ as its resolvable handle.
func (r *Registrar) RegisterType(cat section.Category, namespace, typeName string, typ reflect.Type) Token {
	tok := r.Register(cat, namespace, typeName)
	r.Bind(QualifiedName(namespace, typeName), typ)
	return tok
}

// Bind associates a qualified name with a concrete Go type in the type
// table. Re-binding the identical type is a no-op so the same declaration may
// appear at several call sites; binding a different type under an existing
// name is a programmer error and panics.
func (r *Registrar) Bind(name string, typ reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.types[name]; ok {
		if existing == typ {
			return
		}
		panic(fmt.Sprintf("registry: %q already bound to %s, cannot rebind to %s", name, existing, typ))
	}
	r.types[name] = typ
}

// LookupType resolves a qualified name to its bound Go type. It is the
// in-process stand-in for a runtime's resolve-type-by-name facility: a miss
// is reported through the boolean, never by panicking.
func (r *Registrar) LookupType(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	typ, ok := r.types[name]
	return typ, ok
}

// RegisterModule deposits a name-only module record into the running image.
func RegisterModule(namespace, typeName string) Token {
	return defaultRegistrar.Register(section.CategoryModule, namespace, typeName)
}

// RegisterService deposits a name-only service record into the running image.
func RegisterService(namespace, typeName string) Token {
	return defaultRegistrar.Register(section.CategoryService, namespace, typeName)
}

// RegisterModuleType deposits a module record and binds T as its resolvable
// type handle.
func RegisterModuleType[T any](namespace, typeName string) Token {
	return defaultRegistrar.RegisterType(section.CategoryModule, namespace, typeName, reflect.TypeOf((*T)(nil)).Elem())
}

// RegisterServiceType deposits a service record and binds T as its resolvable
// type handle.
func RegisterServiceType[T any](namespace, typeName string) Token {
	return defaultRegistrar.RegisterType(section.CategoryService, namespace, typeName, reflect.TypeOf((*T)(nil)).Elem())
}
