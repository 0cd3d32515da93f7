package models

// ConsoleAppConfig describes how the console app looks and behaves for one realm.
// The zero value is the empty shape filled in by the row mapper; application
// code builds configs with NewConsoleAppConfig. Required columns are declared
// by ConsoleAppConfigSchema and checked by the repository, not here.
type ConsoleAppConfig struct {
	id             int64
	realm          string
	initialURL     string
	url            string
	menuEnabled    bool
	menuPosition   MenuPosition
	menuImage      string
	primaryColor   string
	secondaryColor string
	links          []AppLink
}

// NewConsoleAppConfig assigns every argument as given. The id stays unset
// until the config is first saved.
func NewConsoleAppConfig(
	realm, initialURL, url string,
	menuEnabled bool,
	menuPosition MenuPosition,
	menuImage, primaryColor, secondaryColor string,
	links []AppLink,
) *ConsoleAppConfig {
	return &ConsoleAppConfig{
		realm:          realm,
		initialURL:     initialURL,
		url:            url,
		menuEnabled:    menuEnabled,
		menuPosition:   menuPosition,
		menuImage:      menuImage,
		primaryColor:   primaryColor,
		secondaryColor: secondaryColor,
		links:          links,
	}
}

// ID is zero until the config has been persisted.
func (c *ConsoleAppConfig) ID() int64 { return c.id }

func (c *ConsoleAppConfig) Realm() string              { return c.realm }
func (c *ConsoleAppConfig) InitialURL() string         { return c.initialURL }
func (c *ConsoleAppConfig) URL() string                { return c.url }
func (c *ConsoleAppConfig) MenuEnabled() bool          { return c.menuEnabled }
func (c *ConsoleAppConfig) MenuPosition() MenuPosition { return c.menuPosition }
func (c *ConsoleAppConfig) MenuImage() string          { return c.menuImage }
func (c *ConsoleAppConfig) PrimaryColor() string       { return c.primaryColor }
func (c *ConsoleAppConfig) SecondaryColor() string     { return c.secondaryColor }

// Links returns a copy of the links in display order. Use SetLinks to
// change them.
func (c *ConsoleAppConfig) Links() []AppLink {
	if len(c.links) == 0 {
		return nil
	}
	return append([]AppLink(nil), c.links...)
}

func (c *ConsoleAppConfig) SetRealm(realm string)                 { c.realm = realm }
func (c *ConsoleAppConfig) SetInitialURL(initialURL string)       { c.initialURL = initialURL }
func (c *ConsoleAppConfig) SetURL(url string)                     { c.url = url }
func (c *ConsoleAppConfig) SetMenuEnabled(enabled bool)           { c.menuEnabled = enabled }
func (c *ConsoleAppConfig) SetMenuPosition(position MenuPosition) { c.menuPosition = position }
func (c *ConsoleAppConfig) SetMenuImage(menuImage string)         { c.menuImage = menuImage }
func (c *ConsoleAppConfig) SetPrimaryColor(color string)          { c.primaryColor = color }
func (c *ConsoleAppConfig) SetSecondaryColor(color string)        { c.secondaryColor = color }
func (c *ConsoleAppConfig) SetLinks(links []AppLink)              { c.links = links }
