// Package middleware groups the Fiber middleware used by the HTTP server.
//
//   - rayid: tags every request with an X-Ray-ID, reusing the caller's one when
//     present, so log lines of one request can be correlated.
//   - auth: rejects requests without the configured API key. An empty key
//     leaves the API open.
//
// Both are registered globally in the start command, rayid first.
package middleware
