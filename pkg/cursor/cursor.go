// Package cursor implements the opaque keyset-pagination token: a
// base64-encoded JSON pair of (created_at, id). The encoding is a
// convenience, not a security boundary; tokens are reversible.
package cursor

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

type Payload struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
}

// Encode produces a URL-safe token for the payload.
func Encode(p Payload) string {
	raw, err := json.Marshal(p)
	if err != nil {
		// Payload is two plain fields; marshalling cannot fail.
		return ""
	}
	return base64.URLEncoding.EncodeToString(raw)
}

// Decode parses a token back into a payload. Malformed input of any
// kind (bad base64, bad JSON, missing fields) yields nil; callers
// treat nil as "no cursor, start from the beginning".
func Decode(token string) *Payload {
	if token == "" {
		return nil
	}
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		// Tolerate standard-alphabet tokens produced by older clients.
		raw, err = base64.StdEncoding.DecodeString(token)
		if err != nil {
			return nil
		}
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	if p.CreatedAt.IsZero() || p.ID == "" {
		return nil
	}
	return &p
}
