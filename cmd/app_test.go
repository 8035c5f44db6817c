package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"asset-indexer/feature/catalog"
	"asset-indexer/feature/index/models"
	"asset-indexer/feature/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		in      string
		want    catalog.Slot
		wantErr bool
	}{
		{"apple", catalog.Slot{Name: "apple", Count: 1}, false},
		{"apple=12", catalog.Slot{Name: "apple", Count: 12}, false},
		{"Sword of Testing=1", catalog.Slot{Name: "Sword of Testing", Count: 1}, false},
		{"apple=lots", catalog.Slot{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSlot(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintResult(t *testing.T) {
	t.Cleanup(func() { outputFlag = outputJSON })
	info := &snapshot.Info{Bucket: "assets", Key: "index/assets.db", Size: 6}

	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, info))
	assert.JSONEq(t, `{"bucket":"assets","key":"index/assets.db","size":6,"etag":""}`, buf.String())

	outputFlag = outputYAML
	buf.Reset()
	require.NoError(t, printResult(&buf, info))
	assert.Contains(t, buf.String(), "key: index/assets.db")

	outputFlag = "xml"
	assert.Error(t, printResult(&buf, info))
}

func TestItemsListCommand(t *testing.T) {
	root := t.TempDir()
	writeAsset := func(path, content string) {
		full := filepath.Join(root, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	writeAsset("items/generic/apple.consumable", `{ "itemName" : "apple" }`)
	writeAsset("items/generic/pear.consumable", `{ "itemName" : "pear" }`)

	t.Setenv("ASSETS_FOLDER", root)
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_NAME", filepath.Join(t.TempDir(), "assets.db"))
	t.Setenv("LOG_LEVEL", "error")

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{"items", "list", "--name", "app"})
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})

	require.NoError(t, RootCmd.Execute())

	var rows []models.Item
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "apple", rows[0].Name)
}
