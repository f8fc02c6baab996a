package model

// ShopItemType enumerates what a shop item unlocks.
type ShopItemType string

const (
	// ShopItemTheme unlocks a color theme.
	ShopItemTheme ShopItemType = "theme"
	// ShopItemIcon unlocks a profile icon.
	ShopItemIcon ShopItemType = "icon"
)

// ShopItem is one entry in the fixed cosmetic catalog, purchasable
// with the XP reward currency.
type ShopItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Cost        int          `json:"cost"`
	Type        ShopItemType `json:"type"`
	Value       string       `json:"value"`
	IsOwned     bool         `json:"isOwned"`
}

// DefaultShopItems is the catalog seeded on first run.
func DefaultShopItems() []ShopItem {
	return []ShopItem{
		{ID: "theme_rose", Name: "Rose Red Theme", Description: "A passionate red theme.", Cost: 100, Type: ShopItemTheme, Value: "rose"},
		{ID: "theme_violet", Name: "Ultra Violet", Description: "Deep purple vibes.", Cost: 200, Type: ShopItemTheme, Value: "violet"},
		{ID: "theme_amber", Name: "Sunset Amber", Description: "Warm and energetic.", Cost: 150, Type: ShopItemTheme, Value: "amber"},
		{ID: "icon_king", Name: "King Status", Description: "Unlock the crown icon.", Cost: 500, Type: ShopItemIcon, Value: "👑"},
	}
}
