// Package modules contains the self-contained sign-in form variants.
//
// Each subdirectory is a module that implements the `module.Module` interface.
// Modules are listed in `internal/app/modules.go`; the server registers them,
// then boots them onto the root router group.
package modules
