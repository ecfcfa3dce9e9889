// Package cli provides the interactive projecthub command-line client.
//
// It wires configuration and the HTTP API client into a small REPL. The
// session keeps the bearer token in memory; it can be seeded with -t or
// PROJECTHUB_TOKEN and is replaced by every successful register or login.
//
// Commands: register, login, create, get <id>, delete <id>, health, logout,
// help, exit.
package cli
