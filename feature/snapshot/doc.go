// Package snapshot shares a built sqlite index through object storage.
//
// Publish uploads the index file to the configured bucket under
// "<prefix>/<file name>", creating the bucket on first use. Fetch downloads
// the same key and swaps it in place of a local index file, so a machine
// without the unpacked assets can still serve queries.
package snapshot
