package selection

import "log"

// Machine tracks which card, if any, currently shows its
// delete-confirmation curtain. At most one card is armed at a time;
// every transition disarms the previous card before arming the next,
// so the invariant holds after every event.
//
// All events arrive on the UI event loop; the machine is deliberately
// not goroutine-safe.
type Machine struct {
	armedID string

	onArm    func(cardID string)
	onDisarm func(cardID string)
	onDelete func(cardID string)
}

// NewMachine creates a machine in the NoneArmed state.
func NewMachine() *Machine {
	return &Machine{}
}

// SetCallbacks sets the side-effect callbacks: raising a curtain,
// lowering it, and confirming a delete.
func (m *Machine) SetCallbacks(
	onArm func(cardID string),
	onDisarm func(cardID string),
	onDelete func(cardID string),
) {
	if onArm == nil {
		log.Printf("Warning: onArm callback is nil")
	}
	if onDisarm == nil {
		log.Printf("Warning: onDisarm callback is nil")
	}
	if onDelete == nil {
		log.Printf("Warning: onDelete callback is nil")
	}

	m.onArm = onArm
	m.onDisarm = onDisarm
	m.onDelete = onDelete
}

// ArmedID returns the armed card's ID, or "" in the NoneArmed state.
func (m *Machine) ArmedID() string {
	return m.armedID
}

// Activate handles a click, tap, or keyboard activation resolved to a
// card. Activating the armed card again confirms the delete; activating
// a different card moves the curtain; an empty id means the interaction
// landed outside any card.
func (m *Machine) Activate(cardID string) {
	if cardID == "" {
		m.ActivateOutside()
		return
	}

	switch m.armedID {
	case "":
		m.arm(cardID)
	case cardID:
		// Second activation on the armed card: disarm first, then
		// delete, so the delete handler never sees a stale curtain.
		m.disarm()
		log.Printf("Delete confirmed for card %s", cardID)
		if m.onDelete != nil {
			m.onDelete(cardID)
		}
	default:
		m.disarm()
		m.arm(cardID)
	}
}

// ActivateOutside handles an activation that hit no card: the armed
// card, if any, is disarmed.
func (m *Machine) ActivateOutside() {
	if m.armedID != "" {
		m.disarm()
	}
}

// HoverEnter arms a card on pointer hover. Capability gating (only
// hover-capable devices deliver these) lives with the caller.
func (m *Machine) HoverEnter(cardID string) {
	if cardID == "" || m.armedID == cardID {
		return
	}
	if m.armedID != "" {
		m.disarm()
	}
	m.arm(cardID)
}

// HoverLeave disarms the card the pointer left, but only if it is the
// one currently armed.
func (m *Machine) HoverLeave(cardID string) {
	if cardID != "" && m.armedID == cardID {
		m.disarm()
	}
}

// Forget clears the armed state without side effects when the card was
// removed by someone other than the machine.
func (m *Machine) Forget(cardID string) {
	if m.armedID == cardID {
		m.armedID = ""
	}
}

func (m *Machine) arm(cardID string) {
	m.armedID = cardID
	if m.onArm != nil {
		m.onArm(cardID)
	}
}

func (m *Machine) disarm() {
	id := m.armedID
	m.armedID = ""
	if id != "" && m.onDisarm != nil {
		m.onDisarm(id)
	}
}
