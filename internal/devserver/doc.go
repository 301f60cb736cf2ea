// Package devserver is an in-memory implementation of the posts API used for
// local development and tests.
//
// HTTP API
//
//	GET  /posts/feed/
//	    Return every post, newest first.
//
//	POST /posts/ { "content": "..." }
//	    Create a post and return it. Empty content is rejected with 400.
//
//	POST /posts/{id}/like/
//	    Toggle the viewer's like on {id}. The response shape depends on
//	    LikeResponse: the legacy status message ("Curtiu!" or
//	    "Curtiu cancelada!"), the explicit liked/likes_count fields, or both.
//
// Errors are JSON bodies of the form {"detail": "..."}. There is a single,
// implicit viewer; authentication is not modelled. All state is lost on exit.
package devserver
