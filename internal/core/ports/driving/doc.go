// Package driving defines the interfaces through which external actors
// (the HTTP layer) drive the core services.
package driving
