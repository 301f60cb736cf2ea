// Package api provides an HTTP implementation of the domain.FeedClient
// interface used by the feed container.
//
// Supported operations:
//   - Fetching the viewer's feed (GET posts/feed/).
//   - Creating a post (POST posts/).
//   - Toggling a like on a post (POST posts/{id}/like/).
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Paths are appended to the base URL as-is, so the base is kept
// with a trailing slash. Non-2xx statuses are returned as *Error carrying the
// status and, when the body has one, the server's "detail" message.
package api
