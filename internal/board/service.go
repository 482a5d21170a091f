package board

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/memegrid/memegrid/internal/model"
)

// DefaultFontSize is the caption size a card starts with before any
// fit pass has run.
const DefaultFontSize float32 = 32

// Service owns the card collection: an insertion-ordered sequence,
// append-only except for removal by identity.
type Service struct {
	cards    []*model.Card
	index    map[string]*model.Card
	mu       sync.RWMutex
	fontSize float32
	onUpdate func(*model.Card) // callback for UI updates
}

// NewService creates a new board service. initialFontSize is the
// caption size assigned to new cards; zero means DefaultFontSize.
func NewService(initialFontSize float32) *Service {
	if initialFontSize <= 0 {
		initialFontSize = DefaultFontSize
	}
	return &Service{
		index:    make(map[string]*model.Card),
		fontSize: initialFontSize,
	}
}

// SetUpdateCallback sets the callback function for card updates
func (s *Service) SetUpdateCallback(callback func(*model.Card)) {
	s.onUpdate = callback
}

// Submit creates a card from the three form fields. Captions are
// normalized (upper-cased, whitespace collapsed) and may be empty;
// the image URL may not.
func (s *Service) Submit(imageURL, topText, bottomText string) (*model.Card, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("image URL is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card := &model.Card{
		ID:         uuid.NewString(),
		ImageURL:   imageURL,
		TopText:    model.NormalizeCaption(topText),
		BottomText: model.NormalizeCaption(bottomText),
		FontSize:   s.fontSize,
		Status:     model.CardStatusLoading,
		CreatedAt:  time.Now(),
	}

	s.cards = append(s.cards, card)
	s.index[card.ID] = card

	log.Printf("Card submitted: id=%s url=%s top=%q bottom=%q", card.ID, card.ImageURL, card.TopText, card.BottomText)
	return card, nil
}

// Get returns a card by ID
func (s *Service) Get(id string) (*model.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	card, exists := s.index[id]
	return card, exists
}

// Cards returns the collection in insertion order
func (s *Service) Cards() []*model.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := make([]*model.Card, len(s.cards))
	copy(cards, s.cards)
	return cards
}

// Len returns the number of cards on the board
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}

// Remove deletes exactly the identified card, preserving the order of
// the rest.
func (s *Service) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[id]; !exists {
		return fmt.Errorf("card not found: %s", id)
	}

	for i, card := range s.cards {
		if card.ID == id {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			break
		}
	}
	delete(s.index, id)

	log.Printf("Card removed: id=%s, %d remaining", id, len(s.cards))
	return nil
}

// MarkLoaded records a successful image load with natural dimensions
func (s *Service) MarkLoaded(id string, width, height int) error {
	s.mu.Lock()
	card, exists := s.index[id]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("card not found: %s", id)
	}
	card.Status = model.CardStatusLoaded
	card.NaturalWidth = width
	card.NaturalHeight = height
	s.mu.Unlock()

	log.Printf("Card image loaded: id=%s %dx%d", id, width, height)
	s.notifyUpdate(card)
	return nil
}

// MarkBroken records an image load failure
func (s *Service) MarkBroken(id string) error {
	s.mu.Lock()
	card, exists := s.index[id]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("card not found: %s", id)
	}
	card.Status = model.CardStatusBroken
	s.mu.Unlock()

	log.Printf("Card image failed to load: id=%s url=%s", id, card.ImageURL)
	s.notifyUpdate(card)
	return nil
}

// SetArmed persists the curtain flag on the card model
func (s *Service) SetArmed(id string, armed bool) {
	s.mu.Lock()
	card, exists := s.index[id]
	if exists {
		card.Armed = armed
	}
	s.mu.Unlock()

	if exists {
		s.notifyUpdate(card)
	}
}

// ArmedCount returns how many cards are currently armed. The selection
// machine keeps this at most one; the board only reports it.
func (s *Service) ArmedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, card := range s.cards {
		if card.Armed {
			count++
		}
	}
	return count
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(card *model.Card) {
	if s.onUpdate != nil {
		s.onUpdate(card)
	}
}
