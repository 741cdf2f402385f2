// Package registry is the declaration-site surface of the module system.
//
// A package declares itself as a module or service where it is defined, with
// no central list, by assigning a registration call to a package-scope blank
// variable:
//
//	var _ = registry.RegisterModuleType[Collector]("Envinfo", "Collector")
//
// The call runs during package initialization, before main, and deposits an
// immutable record naming "Envinfo.Collector" into the module region of the
// image (see package section). Declaration sites need not know about each
// other or about whoever later consumes the registry; the one requirement,
// inherited from the init-hook emulation of linker sections, is that the
// declaring package is linked into the binary — a blank import suffices.
//
// Two declarations in one package that synthesize the same variable name are
// rejected by the compiler itself (duplicate package-scope declaration),
// matching the fail-at-build contract for identifier collisions. The same
// name registered from distinct call sites is legal; discovery de-duplicates.
package registry
