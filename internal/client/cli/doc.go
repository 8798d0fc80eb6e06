// Package cli provides the interactive filekeeper command-line client.
//
// It wires configuration, the REST API client and a REPL. A background
// watcher pings the server and flips the prompt between online and offline.
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
