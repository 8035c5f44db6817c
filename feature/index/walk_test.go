package index

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFilters(t *testing.T) {
	tests := []struct {
		name  string
		match func(string) bool
		file  string
		want  bool
	}{
		{"ItemConsumable", isItemFile, "apple.consumable", true},
		{"ItemPNG", isItemFile, "apple.png", false},
		{"ItemConfig", isItemFile, "gun.config", false},
		{"ItemFrames", isItemFile, "apple.frames", false},
		{"ItemCoin", isItemFile, "money.coinitem", false},
		{"ItemPNGChain", isItemFile, "apple.png.bak", false},
		{"Object", isObjectFile, "chair.object", true},
		{"ObjectFrames", isObjectFile, "chair.object.frames", false},
		{"Tech", isTechFile, "jetpack.techitem", true},
		{"TechDefinition", isTechFile, "jetpack.tech", false},
		{"Recipe", isRecipeFile, "apple.recipe", true},
		{"RecipeChain", isRecipeFile, "apple.recipe.old", true},
		{"NotRecipe", isRecipeFile, "apple.item", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.match(tt.file))
		})
	}
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b/two.object", "{}")
	writeFile(t, root, "a/one.object", "{}")
	writeFile(t, root, "a/one.png", "")

	t.Run("LexicalOrder", func(t *testing.T) {
		found, err := collect(root, isObjectFile)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, candidate{Filename: "one.object", Folder: filepath.Join(root, "a")}, found[0])
		assert.Equal(t, candidate{Filename: "two.object", Folder: filepath.Join(root, "b")}, found[1])
	})

	t.Run("MissingRoot", func(t *testing.T) {
		found, err := collect(filepath.Join(root, "absent"), isObjectFile)
		assert.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("EmptyRoot", func(t *testing.T) {
		found, err := collect("", isObjectFile)
		assert.NoError(t, err)
		assert.Empty(t, found)
	})
}
