// Package discovery enumerates the registration records present in the image
// and resolves each decoded name to a live type handle.
//
// A scan walks the module and service regions once, decodes their fixed-size
// record slots, de-duplicates by identity, and asks the resolver for a type
// handle per distinct name. Resolution misses are surfaced as unresolved
// entries, never dropped: the caller decides whether a missing optional
// service is fatal.
//
// Entry order within a category follows scan order inside the region. Because
// independently compiled packages deposit in package-initialization order,
// which the language leaves partially unspecified, consumers must treat the
// relative order of entries from different packages as unordered.
package discovery
