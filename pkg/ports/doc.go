// Package ports declares the interfaces through which external
// collaborators plug into the machina core.
package ports
