// Package catalog answers read queries against a built asset index.
//
// Lists are ordered by name ignoring case. Filters take an exact category,
// or "<all>" for any, and a name substring.
//
// # Icons
//
// Item rows store their icon as a locator string, a file path optionally
// followed by ":" and a sprite sheet region. ParseIconLocator is the only
// decoder for that form. The "chest" region starts 16 pixels into the sheet
// and "pants" 32; every other region starts at 0. ResolveIcon and
// ResolveImage report missing files as an empty result rather than an error.
//
// # HTTP Endpoints
//
//   - GET /items : Items, filtered by ?category= and ?name=.
//   - GET /items/categories : Distinct item categories.
//   - GET /items/:name : Item with its parsed asset file.
//   - GET /items/:name/icon : Icon path and region offset.
//   - GET /items/:name/image : Full-size image path.
//   - POST /items/resolve : Display data for inventory slots.
//   - GET /blueprints : Blueprints, filtered like items.
//   - GET /blueprints/categories : Distinct blueprint categories.
package catalog
