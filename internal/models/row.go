package models

import (
	"gorm.io/datatypes"
)

// ConsoleAppConfigRow is the stored form of a ConsoleAppConfig. Its columns
// follow ConsoleAppConfigSchema.
type ConsoleAppConfigRow struct {
	ID             int64                         `gorm:"column:id;primaryKey;autoIncrement:false"`
	Realm          string                        `gorm:"column:realm;size:255;not null"`
	InitialURL     string                        `gorm:"column:initial_url;size:255;not null"`
	URL            string                        `gorm:"column:url;size:255;not null"`
	MenuEnabled    bool                          `gorm:"column:menu_enabled;not null"`
	MenuPosition   MenuPosition                  `gorm:"column:menu_position;size:32;not null"`
	MenuImage      string                        `gorm:"column:menu_image;size:255;not null"`
	PrimaryColor   string                        `gorm:"column:primary_color;size:255;not null"`
	SecondaryColor string                        `gorm:"column:secondary_color;size:255;not null"`
	Links          *datatypes.JSONSlice[AppLink] `gorm:"column:links;type:jsonb"`
}

func (ConsoleAppConfigRow) TableName() string {
	return ConsoleAppConfigSchema.Table
}

// ToRow maps a config to its row. No links are stored as NULL.
func ToRow(c *ConsoleAppConfig) ConsoleAppConfigRow {
	return ConsoleAppConfigRow{
		ID:             c.id,
		Realm:          c.realm,
		InitialURL:     c.initialURL,
		URL:            c.url,
		MenuEnabled:    c.menuEnabled,
		MenuPosition:   c.menuPosition,
		MenuImage:      c.menuImage,
		PrimaryColor:   c.primaryColor,
		SecondaryColor: c.secondaryColor,
		Links:          LinksColumn(c.links),
	}
}

// Entity materializes the row. A menu position outside the closed set is an
// error, never coerced.
func (r ConsoleAppConfigRow) Entity() (*ConsoleAppConfig, error) {
	pos, err := ParseMenuPosition(string(r.MenuPosition))
	if err != nil {
		return nil, err
	}
	var links []AppLink
	if r.Links != nil && len(*r.Links) > 0 {
		links = []AppLink(*r.Links)
	}
	return &ConsoleAppConfig{
		id:             r.ID,
		realm:          r.Realm,
		initialURL:     r.InitialURL,
		url:            r.URL,
		menuEnabled:    r.MenuEnabled,
		menuPosition:   pos,
		menuImage:      r.MenuImage,
		primaryColor:   r.PrimaryColor,
		secondaryColor: r.SecondaryColor,
		links:          links,
	}, nil
}

// MissingRequired returns the required columns with no value. Go strings
// and bools always hold a value, empty ones included; only the zero
// MenuPosition names no member of the set.
func (r ConsoleAppConfigRow) MissingRequired() []string {
	var missing []string
	for _, col := range ConsoleAppConfigSchema.RequiredColumns() {
		if col == "menu_position" && r.MenuPosition == "" {
			missing = append(missing, col)
		}
	}
	return missing
}
