// Package manifest loads HCL manifests declaring which modules and services
// a build is expected to contain, and verifies a discovery snapshot against
// them.
//
// A manifest file holds one block per expected declaration:
//
//	module "Envinfo" "Collector" {
//	  description = "host environment inspector"
//	}
//
//	service "Clock" "Service" {
//	  optional = true
//	}
//
// Verification gives operators the same parity guarantee the registry gives
// developers: a binary that silently lost a declaration site fails its
// manifest check instead of failing at first use.
package manifest
