// Package cli provides the interactive versa command-line client.
//
// It wires configuration, the local session store and the gRPC services,
// restores a saved session if there is one, and runs a read-eval-print loop
// until the user exits.
//
// Commands:
//   - register, login, logout, me
//   - post [cost], edit <id>, delete <id>
//   - list (own posts), all (every post, administrators only)
//
// See App and runREPL for details.
package cli
