// Package session serializes machine graphs and simulation snapshots
// into portable session documents and back.
//
// A session document bundles the canonical machine definition with
// the simulation's history, log and step count plus creation metadata.
// Import deliberately does not re-validate the embedded definition;
// callers must re-run the compiler before trusting it.
package session
