// Package models defines the rows persisted in the asset index.
//
// The schema is deliberately flat: two text-only tables without keys,
// indexes or constraints beyond NOT NULL.
//
//	items(name, filename, folder, icon, category)
//	blueprints(name, filename, folder, category)
package models
