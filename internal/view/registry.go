package view

import (
	"github.com/EMMA019/black-jackgames/internal/ui"
)

// Target is anything the renderer can write a label into.
type Target interface {
	SetText(s string)
	SetVisible(v bool)
}

// HandTarget holds a participant's cards. Renders by full replacement; the
// renderer never diffs against previous contents.
type HandTarget interface {
	SetCards(glyphs []string)
}

// Field names the renderer writes to. Each belongs to one screen.
type Field string

const (
	FieldStatus      Field = "status"
	FieldBalance     Field = "balance"
	FieldCurrentBet  Field = "current_bet"
	FieldBetInput    Field = "bet_input"
	FieldNextRound   Field = "next_round"
	FieldWinner      Field = "winner"
	FieldThinking    Field = "thinking"
	FieldActions     Field = "actions"
	FieldDealerScore Field = "dealer_score"
	FieldAIScore     Field = "ai_score"
	FieldPlayerScore Field = "player_score"
	FieldNotice      Field = "notice"
)

type key struct {
	screen ui.Screen
	field  Field
}

// Registry maps (screen, field) to its render target. It is built once at
// startup and passed into the renderer; nothing process-wide.
type Registry struct {
	targets map[key]Target
	hands   map[Field]HandTarget
}

const (
	HandDealer Field = "dealer_hand"
	HandAI     Field = "ai_hand"
	HandPlayer Field = "player_hand"
)

func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[key]Target),
		hands:   make(map[Field]HandTarget),
	}
}

func (r *Registry) Bind(screen ui.Screen, field Field, t Target) {
	r.targets[key{screen, field}] = t
}

func (r *Registry) BindHand(field Field, h HandTarget) {
	r.hands[field] = h
}

// Lookup returns a no-op target when nothing is bound, so the renderer stays
// total even with a partially wired frontend.
func (r *Registry) Lookup(screen ui.Screen, field Field) Target {
	if t, ok := r.targets[key{screen, field}]; ok {
		return t
	}
	return nopTarget{}
}

func (r *Registry) Hand(field Field) HandTarget {
	if h, ok := r.hands[field]; ok {
		return h
	}
	return nopHand{}
}

type nopTarget struct{}

func (nopTarget) SetText(string)  {}
func (nopTarget) SetVisible(bool) {}

type nopHand struct{}

func (nopHand) SetCards([]string) {}

// Element is a plain value Target, used by the terminal frontend and tests.
type Element struct {
	Text    string
	Visible bool
}

func (e *Element) SetText(s string)  { e.Text = s }
func (e *Element) SetVisible(v bool) { e.Visible = v }

// Hand is a plain value HandTarget.
type Hand struct {
	Cards []string
}

func (h *Hand) SetCards(glyphs []string) {
	h.Cards = append(h.Cards[:0], glyphs...)
}
