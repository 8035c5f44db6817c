package index

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates path under root with content, making parent folders.
func writeFile(t *testing.T, root, path, content string) string {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(path))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	return full
}

// recordingProgress remembers every callback.
type recordingProgress struct {
	mu    sync.Mutex
	found map[string]int
	steps map[string]int
	rows  map[string]int
}

func newRecordingProgress() *recordingProgress {
	return &recordingProgress{
		found: make(map[string]int),
		steps: make(map[string]int),
		rows:  make(map[string]int),
	}
}

func (p *recordingProgress) Found(kind string, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.found[kind] = total
}

func (p *recordingProgress) Step(kind string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.steps[kind]++
}

func (p *recordingProgress) Done(kind string, rows int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rows[kind] = rows
}

// sampleTree lays out a small asset tree covering every indexing rule.
func sampleTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, root, "items/generic/apple.consumable", `{
  // comment before the name
  "itemName" : "apple",
  "inventoryIcon" : "apple.png"
}`)
	writeFile(t, root, "items/generic/apple.png", "png")
	writeFile(t, root, "items/generic/apple.frames", "{}")
	writeFile(t, root, "items/weapons/test.generatedsword", `{ "itemName" : "Sword of Testing" }`)
	writeFile(t, root, "items/armors/shirt.chest", `{
  "itemName" : "shirt",
  "inventoryIcon" : "icons.png:chest" /* region */
}`)
	writeFile(t, root, "items/broken/bad.item", `{ "itemName" : `)
	writeFile(t, root, "items/broken/unnamed.item", `{ "price" : 10 }`)
	writeFile(t, root, "objects/furniture/chair.object", `{ "objectName" : "woodenchair", "inventoryIcon" : "/interface/chair.png" }`)
	writeFile(t, root, "objects/furniture/chair.png", "png")
	writeFile(t, root, "tech/jetpack/jetpack.techitem", `{ "name" : "jetpack", "inventoryIcon" : "/tech/jetpack/icon.png" }`)
	writeFile(t, root, "tech/jetpack/jetpack.tech", `{ "name" : "jetpack-tech" }`)

	writeFile(t, root, "recipes/food/apple.recipe", `{ "groups" : [ "craftingfood", "food" ] }`)
	writeFile(t, root, "recipes/misc/rope.recipe", `{ "groups" : [ "plain" ] }`)
	writeFile(t, root, "recipes/misc/torch.recipe", `{ /* no groups */ }`)
	writeFile(t, root, "recipes/misc/broken.recipe", `{ "groups" : [ `)
	writeFile(t, root, "recipes/misc/readme.txt", `not a recipe`)

	return root
}
