package board

import (
	"github.com/memegrid/memegrid/internal/model"
)

// Boarder defines the interface for the card collection service.
type Boarder interface {
	SetUpdateCallback(func(*model.Card))
	Submit(imageURL, topText, bottomText string) (*model.Card, error)
	Get(id string) (*model.Card, bool)
	Cards() []*model.Card
	Len() int
	Remove(id string) error

	// MarkLoaded records the natural bitmap dimensions once the image
	// decoded successfully
	MarkLoaded(id string, width, height int) error

	// MarkBroken records an image load failure; the card keeps the
	// font size it was created with
	MarkBroken(id string) error

	// SetArmed persists the curtain flag on the card model
	SetArmed(id string, armed bool)
}
