// Package ui implements the graphical interface: the generator form,
// the card board with its fitted captions, the delete-confirmation
// curtain interactions, localization, theming and settings.
package ui
