// Package cli provides the interactive ClientDesk command-line client.
//
// It wires configuration, the local token store, the HTTP gateway, and an
// interactive REPL for working with customer records. Typical flow: log in,
// search by name or phone, then edit, delete, or create records.
//
// Key features:
//   - Register / Login / Logout
//   - Search clients by name or by exact phone number
//   - Inline edit of a single record at a time
//   - Delete with an explicit confirmation step
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
