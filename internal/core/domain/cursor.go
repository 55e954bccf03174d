package domain

import (
	"encoding/base64"
	"encoding/json"
)

type cursorToken struct {
	Folder   string    `json:"f"`
	Kind     MediaKind `json:"k"`
	Provider string    `json:"c"`
}

// EncodeCursor wraps a provider continuation token with the listing it belongs to.
// An empty provider token encodes to an empty cursor.
func EncodeCursor(folder string, kind MediaKind, providerCursor string) string {
	if providerCursor == "" {
		return ""
	}
	raw, _ := json.Marshal(cursorToken{Folder: folder, Kind: kind, Provider: providerCursor})
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor unwraps a cursor issued by EncodeCursor for the same folder and kind
func DecodeCursor(folder string, kind MediaKind, cursor string) (string, error) {
	if cursor == "" {
		return "", nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return "", ErrInvalidCursor
	}
	var token cursorToken
	if err := json.Unmarshal(raw, &token); err != nil {
		return "", ErrInvalidCursor
	}
	if token.Folder != folder || token.Kind != kind || token.Provider == "" {
		return "", ErrInvalidCursor
	}
	return token.Provider, nil
}
