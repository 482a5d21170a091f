package selection

// Package selection implements the single-curtain selection state
// machine: click, hover, and keyboard activations all dispatch through
// one point, so a second activation on the armed card confirms its
// deletion and two curtains can never be visible at once.
