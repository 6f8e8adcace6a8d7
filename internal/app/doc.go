// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (plan, solve, report),
// decoupled from any specific entrypoint like a CLI.
package app
