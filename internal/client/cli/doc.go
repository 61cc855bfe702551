// Package cli provides the interactive jobtrack command-line client.
//
// It wires configuration, the local session store, the remote record
// store client, and an interactive REPL. Typical flow: resume a stored
// session (or log in), then list, inspect, and edit job applications.
//
// Key features:
//   - Login / Signup / Logout with a locally persisted session
//   - List with search, status filter, and date sorting
//   - Add / Edit / Delete applications
//
// The REPL is started via App.Run(ctx), which blocks until the user
// exits. See App and runREPL for details.
package cli
