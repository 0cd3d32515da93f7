package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
)

// AppLink is a labeled navigation target shown in the console menu.
// The zero value is the empty link used by decoders.
type AppLink struct {
	displayText string
	pageLink    string
}

func NewAppLink(displayText, pageLink string) AppLink {
	return AppLink{displayText: displayText, pageLink: pageLink}
}

func (l AppLink) DisplayText() string { return l.displayText }

func (l AppLink) PageLink() string { return l.pageLink }

const (
	displayTextKey = "displayText"
	pageLinkKey    = "pageLink"
)

func (l AppLink) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		displayTextKey: l.displayText,
		pageLinkKey:    l.pageLink,
	})
}

// UnmarshalJSON matches keys exactly; "DisplayText" is not "displayText".
func (l *AppLink) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: link must be an object, got %s", ErrMalformedLinks, string(trimmed))
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedLinks, err)
	}
	var link AppLink
	if raw, ok := fields[displayTextKey]; ok {
		if err := json.Unmarshal(raw, &link.displayText); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedLinks, displayTextKey, err)
		}
	}
	if raw, ok := fields[pageLinkKey]; ok {
		if err := json.Unmarshal(raw, &link.pageLink); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedLinks, pageLinkKey, err)
		}
	}
	*l = link
	return nil
}

var ErrMalformedLinks = errors.New("malformed links column")

// LinksColumn is the jsonb form of the link list. Nil is SQL NULL.
func LinksColumn(links []AppLink) *datatypes.JSONSlice[AppLink] {
	if len(links) == 0 {
		return nil
	}
	col := datatypes.JSONSlice[AppLink](links)
	return &col
}

// MalformedLinks marks a JSON decode failure of the links column with
// ErrMalformedLinks. Other errors are returned unchanged.
func MalformedLinks(err error) error {
	if err == nil || errors.Is(err, ErrMalformedLinks) {
		return err
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %v", ErrMalformedLinks, err)
	}
	return err
}

// ParseAppLinks decodes a JSON array of {displayText, pageLink} objects.
// Empty input and null mean no links.
func ParseAppLinks(data []byte) ([]AppLink, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrMalformedLinks, string(trimmed))
	}
	var col datatypes.JSONSlice[AppLink]
	if err := col.Scan(trimmed); err != nil {
		return nil, MalformedLinks(err)
	}
	if len(col) == 0 {
		return nil, nil
	}
	return []AppLink(col), nil
}
