// Package database handles the index store connection and schema inspection.
//
// It wraps GORM to open either an embedded SQLite file (the default) or a
// MySQL database, based on the application's configuration.
//
// # Connect
//
// Connect opens the configured store and verifies it with a ping. SQLite
// connections are limited to a single open connection so that in-memory
// databases stay visible across queries and transactions.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for either dialect. The
// integrity feature uses it to verify that the persisted index still matches
// the expected item and blueprint tables.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "items")
package database
