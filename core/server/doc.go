// Package server holds the HTTP server configuration.
//
// The start command serves the catalog, index and integrity features over
// HTTP. This package only defines where it listens, the API key protecting
// it and whether clients may trigger a full index rebuild.
package server
