// Package section emulates the dedicated binary regions that hold
// registration records: one contiguous byte region per category (module,
// service), densely packed with fixed-size record slots.
//
// Go offers no portable way to place data into a named linker section, so the
// regions live in an Arena populated by package init hooks instead of by the
// linker. The record encoding is still a flat byte format decodable without
// any symbol table, which keeps the region contract (and its corruption
// failure modes) identical to a true image section.
package section
