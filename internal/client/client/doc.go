// Package client contains the remote side of the feed client and the local
// database bootstrap.
//
// # Overview
//
// The package provides:
//  1. The Client contract used by the repositories: Login, Users and Posts.
//  2. HTTPClient, a REST implementation that sends the access token in the
//     x-access-token header, tags every request with an X-Request-Id and
//     maps HTTP failures to sentinel errors.
//  3. InitDatabase and RunMigrations, which open the SQLite cache and apply
//     the embedded goose migrations.
//
// # Error Handling
//
// Callers match conditions with errors.Is: ErrUnavailable (transport
// failures, timeouts, 5xx) and ErrUnauthorized (401, 403). Other non-2xx
// responses wrap a *netx.StatusError.
package client
