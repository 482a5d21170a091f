package fit

// Package fit contains the text-fit engine: it finds the largest font
// size, within bounds, at which a card's two caption lines fit inside
// the card's rendered image box. Measurement is injected so the loop
// stays independent of the UI toolkit.
