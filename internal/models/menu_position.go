package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// MenuPosition is the screen corner the console menu control is anchored to.
// It is stored by name, never by ordinal.
type MenuPosition string

const (
	MenuPositionBottomLeft  MenuPosition = "BOTTOM_LEFT"
	MenuPositionBottomRight MenuPosition = "BOTTOM_RIGHT"
	MenuPositionTopLeft     MenuPosition = "TOP_LEFT"
	MenuPositionTopRight    MenuPosition = "TOP_RIGHT"
)

var ErrInvalidMenuPosition = errors.New("invalid menu position")

// MenuPositions lists every valid position.
func MenuPositions() []MenuPosition {
	return []MenuPosition{
		MenuPositionBottomLeft,
		MenuPositionBottomRight,
		MenuPositionTopLeft,
		MenuPositionTopRight,
	}
}

// ParseMenuPosition decodes a stored name. Names are case-sensitive.
func ParseMenuPosition(name string) (MenuPosition, error) {
	switch p := MenuPosition(name); p {
	case MenuPositionBottomLeft, MenuPositionBottomRight, MenuPositionTopLeft, MenuPositionTopRight:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMenuPosition, name)
}

func (p MenuPosition) String() string {
	return string(p)
}

func (p MenuPosition) Value() (driver.Value, error) {
	if _, err := ParseMenuPosition(string(p)); err != nil {
		return nil, err
	}
	return string(p), nil
}

func (p *MenuPosition) Scan(src interface{}) error {
	if p == nil {
		return fmt.Errorf("MenuPosition: nil receiver")
	}
	var name string
	switch v := src.(type) {
	case string:
		name = v
	case []byte:
		name = string(v)
	case nil:
		return fmt.Errorf("%w: null", ErrInvalidMenuPosition)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidMenuPosition, src)
	}
	parsed, err := ParseMenuPosition(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p *MenuPosition) UnmarshalText(text []byte) error {
	parsed, err := ParseMenuPosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
