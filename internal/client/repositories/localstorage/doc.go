// Package localstorage is the durable key/value store of the client. It
// plays the role a browser's localStorage plays for a web front end: the
// auth store keeps its persisted session snapshot here.
//
// Get returns (nil, nil) for an absent key and Delete is idempotent, so
// callers can treat "missing" as an ordinary state rather than an error.
package localstorage
