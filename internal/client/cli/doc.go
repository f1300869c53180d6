// Package cli provides the interactive command-line client for the League
// feed.
//
// NewApp wires configuration, the local SQLite cache, the encrypted token
// store, the HTTP client and the services; App.Run starts a REPL that blocks
// until the user exits. Reads are offline-first: once posts and users are
// cached they are served locally until the user runs purge.
package cli
