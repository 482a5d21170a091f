package model

// CardStatus represents the load state of a card's image
type CardStatus string

const (
	// CardStatusLoading means the image fetch is still in flight
	CardStatusLoading CardStatus = "Loading"

	// CardStatusLoaded means the image decoded successfully
	CardStatusLoaded CardStatus = "Loaded"

	// CardStatusBroken means the image failed to load; the card shows
	// its alt text fallback instead
	CardStatusBroken CardStatus = "Broken"
)

// String returns the string representation of CardStatus
func (cs CardStatus) String() string {
	return string(cs)
}

// IsLoaded returns true if the card's image decoded successfully
func (cs CardStatus) IsLoaded() bool {
	return cs == CardStatusLoaded
}

// IsBroken returns true if the image failed to load
func (cs CardStatus) IsBroken() bool {
	return cs == CardStatusBroken
}
