package model

// Package model defines domain data structures used across the app:
// meme cards, caption normalization, and load status enums. Structures
// are designed for direct use in the UI and explicit state transitions.
