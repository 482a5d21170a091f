package board

import (
	"testing"

	"github.com/memegrid/memegrid/internal/model"
)

func TestService_SubmitNormalizesCaptions(t *testing.T) {
	svc := NewService(0)

	card, err := svc.Submit("https://example.com/cat.png", "Hello", "World")
	if err != nil {
		t.Fatalf("Submit() returned error: %v", err)
	}

	if card.TopText != "HELLO" {
		t.Errorf("TopText = %q, expected 'HELLO'", card.TopText)
	}
	if card.BottomText != "WORLD" {
		t.Errorf("BottomText = %q, expected 'WORLD'", card.BottomText)
	}
	if card.FontSize != DefaultFontSize {
		t.Errorf("FontSize = %.0f, expected default %.0f", card.FontSize, DefaultFontSize)
	}
	if card.Status != model.CardStatusLoading {
		t.Errorf("Status = %s, expected Loading", card.Status)
	}
	if card.ID == "" {
		t.Error("card should get a generated ID")
	}
	if svc.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", svc.Len())
	}
}

func TestService_SubmitEmptyCaptionsAreValid(t *testing.T) {
	svc := NewService(0)

	card, err := svc.Submit("https://example.com/cat.png", "", "")
	if err != nil {
		t.Fatalf("Submit() with empty captions returned error: %v", err)
	}
	if card.HasCaption() {
		t.Error("card with empty captions should report no caption")
	}
}

func TestService_SubmitRequiresURL(t *testing.T) {
	svc := NewService(0)

	if _, err := svc.Submit("", "top", "bottom"); err == nil {
		t.Error("Submit() with empty URL should return an error")
	}
	if svc.Len() != 0 {
		t.Errorf("failed submit must not add a card, Len() = %d", svc.Len())
	}
}

func TestService_CardsPreserveInsertionOrder(t *testing.T) {
	svc := NewService(0)

	urls := []string{"https://e.com/1.png", "https://e.com/2.png", "https://e.com/3.png"}
	for _, u := range urls {
		if _, err := svc.Submit(u, "", ""); err != nil {
			t.Fatalf("Submit(%s) failed: %v", u, err)
		}
	}

	cards := svc.Cards()
	if len(cards) != len(urls) {
		t.Fatalf("Cards() length = %d, expected %d", len(cards), len(urls))
	}
	for i, u := range urls {
		if cards[i].ImageURL != u {
			t.Errorf("card %d URL = %s, expected %s", i, cards[i].ImageURL, u)
		}
	}
}

func TestService_RemoveExactlyOne(t *testing.T) {
	svc := NewService(0)

	a, _ := svc.Submit("https://e.com/a.png", "A", "")
	b, _ := svc.Submit("https://e.com/b.png", "B", "")
	c, _ := svc.Submit("https://e.com/c.png", "C", "")

	if err := svc.Remove(b.ID); err != nil {
		t.Fatalf("Remove() returned error: %v", err)
	}

	cards := svc.Cards()
	if len(cards) != 2 {
		t.Fatalf("Len after remove = %d, expected 2", len(cards))
	}
	if cards[0].ID != a.ID || cards[1].ID != c.ID {
		t.Error("remaining cards should keep insertion order a, c")
	}
	if _, exists := svc.Get(b.ID); exists {
		t.Error("removed card should not be retrievable")
	}
	for _, card := range cards {
		if card.Armed {
			t.Errorf("card %s armed state changed by unrelated removal", card.ID)
		}
	}
}

func TestService_RemoveUnknownID(t *testing.T) {
	svc := NewService(0)

	if err := svc.Remove("missing"); err == nil {
		t.Error("Remove() of unknown ID should return an error")
	}
}

func TestService_MarkLoadedAndBroken(t *testing.T) {
	svc := NewService(0)

	var updated []*model.Card
	svc.SetUpdateCallback(func(card *model.Card) {
		updated = append(updated, card)
	})

	card, _ := svc.Submit("https://e.com/a.png", "A", "B")

	if err := svc.MarkLoaded(card.ID, 640, 480); err != nil {
		t.Fatalf("MarkLoaded() returned error: %v", err)
	}
	if card.Status != model.CardStatusLoaded {
		t.Errorf("Status = %s, expected Loaded", card.Status)
	}
	if card.NaturalWidth != 640 || card.NaturalHeight != 480 {
		t.Errorf("natural size = %dx%d, expected 640x480", card.NaturalWidth, card.NaturalHeight)
	}

	other, _ := svc.Submit("https://e.com/b.png", "", "")
	sizeBefore := other.FontSize
	if err := svc.MarkBroken(other.ID); err != nil {
		t.Fatalf("MarkBroken() returned error: %v", err)
	}
	if other.Status != model.CardStatusBroken {
		t.Errorf("Status = %s, expected Broken", other.Status)
	}
	if other.FontSize != sizeBefore {
		t.Error("broken card must keep the font size it was created with")
	}

	if len(updated) != 2 {
		t.Errorf("update callback fired %d times, expected 2", len(updated))
	}

	if err := svc.MarkLoaded("missing", 1, 1); err == nil {
		t.Error("MarkLoaded() of unknown ID should return an error")
	}
	if err := svc.MarkBroken("missing"); err == nil {
		t.Error("MarkBroken() of unknown ID should return an error")
	}
}

func TestService_SetArmedAndArmedCount(t *testing.T) {
	svc := NewService(0)

	a, _ := svc.Submit("https://e.com/a.png", "", "")
	b, _ := svc.Submit("https://e.com/b.png", "", "")

	svc.SetArmed(a.ID, true)
	if svc.ArmedCount() != 1 {
		t.Errorf("ArmedCount() = %d, expected 1", svc.ArmedCount())
	}

	svc.SetArmed(a.ID, false)
	svc.SetArmed(b.ID, true)
	if svc.ArmedCount() != 1 {
		t.Errorf("ArmedCount() = %d, expected 1 after moving curtain", svc.ArmedCount())
	}
	if a.Armed {
		t.Error("card a should be disarmed")
	}
	if !b.Armed {
		t.Error("card b should be armed")
	}

	// Unknown IDs are ignored.
	svc.SetArmed("missing", true)
	if svc.ArmedCount() != 1 {
		t.Errorf("ArmedCount() = %d, expected 1", svc.ArmedCount())
	}
}
