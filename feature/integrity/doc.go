// Package integrity checks that the asset tree and the index store are in the
// shape the indexers expect.
//
// # Checks Provided
//
//   - Structure: the items, objects, tech, recipes and interface/inventory
//     folders exist under the asset root (supports creating them empty).
//   - Schema: the items and blueprints tables carry exactly the columns and
//     types declared on the index models.
//   - Icons: every stored icon locator points at an existing file.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/icons : Runs icon check.
package integrity
