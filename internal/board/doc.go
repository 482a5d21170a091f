package board

// Package board manages the card collection: submission from form
// values, removal by identity, image load bookkeeping, and update
// callbacks toward the UI.
