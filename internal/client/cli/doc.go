// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, local storage, the API client and the auth store
// into an interactive REPL. On start the saved session, if any, is restored,
// so a user who logged in earlier stays logged in across runs.
//
// Commands:
//   - register / login / logout
//   - profile      update profile fields (name=value lines)
//   - whoami       print the current user record
//   - categories   list category groups, or show one: categories <key>
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
