// Package state holds the client-side containers the presentation layer
// renders from: Feed (posts plus request status) and Theme (the visual
// preference).
//
// Containers own their state exclusively. Collaborators (API client,
// preference store, root class list) are injected at construction so each
// container can be exercised with test doubles. Reads go through Snapshot or
// a Subscribe listener; callers never hold references into live state.
package state
