// Package models contains the data types exchanged between the storefront
// client, its backend and local storage.
package models

import (
	"encoding/json"
)

// User is the account record returned by the backend. The client does not
// interpret its fields; it is stored and handed back as is.
type User map[string]any

// Clone returns a deep copy of u: nested objects and arrays are copied too,
// so the result shares no mutable state with u. A nil User clones to nil.
func (u User) Clone() User {
	if u == nil {
		return nil
	}
	return cloneObject(u)
}

func cloneObject(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		if v == nil {
			return v
		}
		return cloneObject(v)
	case []any:
		if v == nil {
			return v
		}
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Email returns the "email" field when the backend provides one.
func (u User) Email() string {
	s, _ := u["email"].(string)
	return s
}

// Credentials is the request body of login and register calls.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the set of profile fields sent on update.
type Profile map[string]any

// DecodeUser parses a JSON object into a User. JSON null decodes to a nil
// User without error.
func DecodeUser(data []byte) (User, error) {
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	return u, nil
}
