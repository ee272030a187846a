package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidToken is returned for tokens this package did not produce.
var ErrInvalidToken = errors.New("invalid pagination token")

// Cursor is the opaque position in a "liked you" list, ordered by
// (updated_at DESC, actor_id DESC). UpdatedUnix is in milliseconds.
type Cursor struct {
	ActorID     uint64 `json:"actor_id"`
	UpdatedUnix int64  `json:"updated_unix,omitempty"`
}

// IsZero reports the first-page cursor.
func (c Cursor) IsZero() bool { return c.ActorID == 0 && c.UpdatedUnix == 0 }

// Encode converts a Cursor into a URL-safe token.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Decode parses a token into a Cursor.
// Empty token → zero cursor (first page). A cursor must carry both fields.
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidToken
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return Cursor{}, ErrInvalidToken
	}
	if c.ActorID == 0 || c.UpdatedUnix <= 0 {
		return Cursor{}, ErrInvalidToken
	}
	return c, nil
}
