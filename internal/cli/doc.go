// Package cli implements the interactive terminal front end of the
// storefront client.
//
// The front end plays the part of the app's screens: it restores the saved
// session at startup, then runs a REPL whose commands call the services and
// re-render whenever the navigator reports a new route (login, catalog,
// detail). Output is colored with the effective theme's palette when stdout
// is a terminal.
package cli
