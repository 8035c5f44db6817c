package index

import (
	"path/filepath"
	"testing"

	"asset-indexer/core/assets"
	"asset-indexer/feature/index/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func byName(rows []models.Item) map[string]models.Item {
	out := make(map[string]models.Item, len(rows))
	for _, r := range rows {
		out[r.Name] = r
	}
	return out
}

func TestItemIndexer_Collect(t *testing.T) {
	root := sampleTree(t)
	roots := assets.Config{Folder: root}.Resolve()
	progress := newRecordingProgress()

	rows, err := NewItemIndexer(roots, zap.NewNop()).Collect(progress)
	require.NoError(t, err)

	assert.Equal(t, 7, progress.found[KindItems])
	assert.Equal(t, 7, progress.steps[KindItems])
	assert.Equal(t, 6, progress.rows[KindItems])
	require.Len(t, rows, 6)

	items := byName(rows)

	t.Run("RelativeIcon", func(t *testing.T) {
		apple := items["apple"]
		assert.Equal(t, "apple.consumable", apple.Filename)
		assert.Equal(t, filepath.Join(root, "items", "generic"), apple.Folder)
		assert.Equal(t, "consumable", apple.Category)
		assert.Equal(t, filepath.Join(root, "items", "generic", "apple.png"), apple.Icon)
	})

	t.Run("RegionSuffixKept", func(t *testing.T) {
		shirt := items["shirt"]
		assert.Equal(t, "chest", shirt.Category)
		assert.Equal(t, filepath.Join(root, "items", "armors", "icons.png:chest"), shirt.Icon)
	})

	t.Run("GeneratedSword", func(t *testing.T) {
		sword := items["Sword of Testing"]
		assert.Equal(t, "generatedsword", sword.Category)
		assert.Equal(t, filepath.Join(root, "interface", "inventory", "sword.png"), sword.Icon)
	})

	t.Run("AssetRootAbsoluteIcon", func(t *testing.T) {
		chair := items["woodenchair"]
		assert.Equal(t, "object", chair.Category)
		assert.Equal(t, filepath.Join(root, "interface", "chair.png"), chair.Icon)
	})

	t.Run("TechChip", func(t *testing.T) {
		base, ok := items["jetpack"]
		require.True(t, ok)
		chip, ok := items["jetpack-chip"]
		require.True(t, ok)

		assert.Equal(t, filepath.Join(root, "tech", "jetpack", "icon.png"), base.Icon)
		assert.Equal(t, base.Icon, chip.Icon)
		assert.Equal(t, base.Category, chip.Category)
		assert.Equal(t, base.Folder, chip.Folder)
		assert.Equal(t, base.Filename, chip.Filename)
		assert.Equal(t, "techitem", chip.Category)
	})

	t.Run("SkippedAssets", func(t *testing.T) {
		for _, r := range rows {
			assert.NotEqual(t, "bad.item", r.Filename)
			assert.NotEqual(t, "unnamed.item", r.Filename)
		}
	})
}

func TestItemIndexer_Records(t *testing.T) {
	root := t.TempDir()
	roots := assets.Config{Folder: root}.Resolve()
	x := NewItemIndexer(roots, zap.NewNop())

	tests := []struct {
		name     string
		file     string
		content  string
		wantName string
		wantIcon string
		wantErr  error
	}{
		{
			name:     "ItemNameWins",
			file:     "a.item",
			content:  `{"itemName": "first", "name": "second", "objectName": "third"}`,
			wantName: "first",
			wantIcon: roots.MissingIcon(),
		},
		{
			name:     "NameBeforeObjectName",
			file:     "b.item",
			content:  `{"name": "second", "objectName": "third"}`,
			wantName: "second",
			wantIcon: roots.MissingIcon(),
		},
		{
			name:     "ObjectName",
			file:     "c.object",
			content:  `{"objectName": "third"}`,
			wantName: "third",
			wantIcon: roots.MissingIcon(),
		},
		{
			name:     "NonStringNameSkipped",
			file:     "f.item",
			content:  `{"itemName": 42, "name": "second"}`,
			wantName: "second",
			wantIcon: roots.MissingIcon(),
		},
		{
			name:     "NullNameSkipped",
			file:     "g.object",
			content:  `{"itemName": null, "objectName": "third"}`,
			wantName: "third",
			wantIcon: roots.MissingIcon(),
		},
		{
			name:     "Shield",
			file:     "d.shield",
			content:  `{"itemName": "buckler"}`,
			wantName: "buckler",
			wantIcon: filepath.Join(roots.Inventory, "shield.png"),
		},
		{
			name:    "Unnamed",
			file:    "e.item",
			content: `{"description": "nothing to call it"}`,
			wantErr: ErrUnresolvedName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeFile(t, root, tt.file, tt.content)

			recs, err := x.records(candidate{Filename: tt.file, Folder: root})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, recs, 1)
			assert.Equal(t, tt.wantName, recs[0].Name)
			assert.Equal(t, tt.wantIcon, recs[0].Icon)
		})
	}
}

func TestItemCategory(t *testing.T) {
	assert.Equal(t, "generatedsword", itemCategory("test.generatedsword"))
	assert.Equal(t, "png.bak", itemCategory("apple.png.bak"))
	assert.Equal(t, "", itemCategory("README"))
}

func TestItemIndexer_ModItems(t *testing.T) {
	root := t.TempDir()
	mod := t.TempDir()
	writeFile(t, root, "items/a.item", `{"itemName": "vanilla"}`)
	writeFile(t, mod, "items/b.item", `{"itemName": "modded"}`)

	roots := assets.Config{Folder: root, ModFolder: mod}.Resolve()
	rows, err := NewItemIndexer(roots, zap.NewNop()).Collect(NopProgress{})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "vanilla", rows[0].Name)
	assert.Equal(t, "modded", rows[1].Name)
	assert.Equal(t, filepath.Join(mod, "items"), rows[1].Folder)
}
