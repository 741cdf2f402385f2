package cli

// The registry works through declaration-site init hooks, so every package
// that declares a module or service must be linked into the binary. Blank
// imports are the whole linkage; nothing references these packages' symbols.
import (
	_ "github.com/vk/sectreg/modules/clock"
	_ "github.com/vk/sectreg/modules/envinfo"
	_ "github.com/vk/sectreg/modules/printer"
)
