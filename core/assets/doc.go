// Package assets describes where the unpacked game assets live on disk.
//
// Only the asset root is required; the item, object, tech and recipe roots
// default to the conventional sub-folders and may be overridden one by one.
// A mod asset root adds its items folder to the item walk.
package assets
