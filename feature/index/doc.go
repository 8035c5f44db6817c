// Package index builds the persisted asset index.
//
// Two indexers walk the unpacked asset tree and turn asset files into rows:
//
//   - ItemIndexer walks items (and mod items), objects and tech. It resolves a
//     display name from itemName, name or objectName, uses the filename
//     extension chain as category and picks an icon locator: the declared
//     inventoryIcon, a generic weapon icon for swords and shields, or the
//     missing-icon placeholder. Tech assets also yield a "<name>-chip" row.
//   - BlueprintIndexer walks recipes, naming them after the file and
//     categorizing them by their second declared group ("other" by default).
//
// Files that fail to parse, and items without a name, are skipped.
//
// # Store
//
// Store owns the schema. Open builds the index when a table is missing.
// Rebuild walks everything first and then replaces the contents of both tables
// in a single transaction: either the new index is committed in full or the
// previous one is left untouched.
//
// # HTTP Endpoints
//
//   - GET /index : Row counts.
//   - POST /index/rebuild : Full rebuild (only when enabled in config).
package index
