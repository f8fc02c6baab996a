package ledger

import (
	"context"
	"fmt"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
)

// BuyShopItem purchases a catalog item against the XP balance. It
// returns false with no mutation when the item is unknown or the
// balance is too low.
func (l *Ledger) BuyShopItem(ctx context.Context, itemID string) (bool, error) {
	var item *model.ShopItem
	for i := range l.shopItems {
		if l.shopItems[i].ID == itemID {
			item = &l.shopItems[i]
			break
		}
	}
	if item == nil {
		return false, fmt.Errorf("shop item %q: %w", itemID, common.ErrNotFound)
	}

	if l.settings.SpentXP < item.Cost {
		l.notifier.Notify("Not enough XP for " + item.Name)
		return false, nil
	}

	l.settings.SpentXP -= item.Cost
	item.IsOwned = true

	if err := l.persist(ctx); err != nil {
		return false, err
	}

	l.notifier.Notify("Purchased " + item.Name + " 🎉")
	return true, nil
}

// EquipShopItem activates an owned item. Theme items overwrite the
// active theme selection; icon items are cosmetic and need no state
// beyond ownership.
func (l *Ledger) EquipShopItem(ctx context.Context, itemID string, kind model.ShopItemType) error {
	var item *model.ShopItem
	for i := range l.shopItems {
		if l.shopItems[i].ID == itemID {
			item = &l.shopItems[i]
			break
		}
	}
	if item == nil || !item.IsOwned {
		return fmt.Errorf("shop item %q: %w", itemID, common.ErrNotOwned)
	}

	if kind == model.ShopItemTheme {
		l.settings.ThemeColor = item.Value
		l.settings.AutoThemeFromWallpaper = false
		if err := l.persist(ctx); err != nil {
			return err
		}
		l.notifier.Notify("Theme activated: " + item.Name + " 🎨")
	}
	return nil
}
