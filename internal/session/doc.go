// Package session owns the single persisted authentication flag and its
// in-memory mirror.
//
// Store writes through to a KeyValueStore before touching the mirror, so the
// mirror never reports a value the backend has not accepted. Observers
// registered with Subscribe hear about every successful write, once.
package session
