package catalog

import (
	"context"
	"fmt"
)

// Slot is one inventory slot as read from save data. An empty name is an
// empty slot.
type Slot struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SlotView is a slot ready for display.
type SlotView struct {
	Slot
	Known    bool     `json:"known"`
	Category string   `json:"category,omitempty"`
	Icon     *IconRef `json:"icon,omitempty"`
}

// ResolveSlots looks up each slot in the index. Slots keep their order;
// unknown names and empty slots come back without an icon.
func (s *Service) ResolveSlots(ctx context.Context, slots []Slot) ([]SlotView, error) {
	views := make([]SlotView, len(slots))
	cache := make(map[string]*SlotView)

	for i, slot := range slots {
		views[i].Slot = slot
		if slot.Name == "" {
			continue
		}

		if cached, ok := cache[slot.Name]; ok {
			views[i].Known, views[i].Category, views[i].Icon = cached.Known, cached.Category, cached.Icon
			continue
		}

		item, err := s.firstItem(ctx, slot.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve slot %d: %w", i, err)
		}
		if item != nil {
			views[i].Known = true
			views[i].Category = item.Category
			views[i].Icon = resolveLocator(item.Icon)
		}
		cache[slot.Name] = &views[i]
	}

	return views, nil
}
