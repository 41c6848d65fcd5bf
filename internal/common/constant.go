// Package common contains constants and small helpers shared by the
// storefront client packages.
package common

// RequestIDHeaderName is the HTTP header carrying the per-request
// correlation id on outbound API calls.
const RequestIDHeaderName = "X-Request-ID"

// UserStorageKey is the local storage key holding the serialized user record.
const UserStorageKey = "user"
