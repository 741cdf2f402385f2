// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the operations exposed by the command line:
// inspecting the registry of the running image and verifying it against a
// manifest. It is decoupled from any specific entrypoint.
package app
