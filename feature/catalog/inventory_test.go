package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ResolveSlots(t *testing.T) {
	root := catalogTree(t)
	svc := newTestService(t, root)

	views, err := svc.ResolveSlots(context.Background(), []Slot{
		{Name: "apple", Count: 3},
		{},
		{Name: "nope", Count: 1},
		{Name: "shirt", Count: 1},
		{Name: "apple", Count: 2},
		{Name: "Banana", Count: 5},
	})
	require.NoError(t, err)
	require.Len(t, views, 6)

	apple := &IconRef{Path: filepath.Join(root, "items", "generic", "apple.png")}

	assert.Equal(t, SlotView{Slot: Slot{Name: "apple", Count: 3}, Known: true, Category: "consumable", Icon: apple}, views[0])
	assert.Equal(t, SlotView{}, views[1])
	assert.Equal(t, SlotView{Slot: Slot{Name: "nope", Count: 1}}, views[2])
	assert.Equal(t, 16, views[3].Icon.Offset)
	assert.Equal(t, "chest", views[3].Category)
	assert.Equal(t, SlotView{Slot: Slot{Name: "apple", Count: 2}, Known: true, Category: "consumable", Icon: apple}, views[4])
	assert.True(t, views[5].Known)
	assert.Nil(t, views[5].Icon)
}

func TestService_ResolveSlotsEmpty(t *testing.T) {
	svc := newTestService(t, catalogTree(t))

	views, err := svc.ResolveSlots(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, views)
}
