package pagination

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Cursor is a keyset position in a (created_at, id) ordered listing.
// It travels over the wire as base64-encoded JSON.
type Cursor struct {
	CreatedAt time.Time
	ID        int64
}

func (c Cursor) Encode() *string {
	b, _ := json.Marshal(c)
	s := base64.StdEncoding.EncodeToString(b)
	return &s
}

// Decode parses an optional wire cursor. A nil or empty input yields a nil
// cursor without error.
func Decode(s *string) (*Cursor, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(*s)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal cursor: %w", err)
	}
	return &c, nil
}
