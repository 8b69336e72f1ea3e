package attack

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
)

// Proposal is a concrete attack: a type plus the participating die ids in
// roster order
type Proposal struct {
	Type      Name     `json:"type"`
	Attackers []string `json:"attackers"`
	Defenders []string `json:"defenders"`
}

// NewProposal builds a proposal from dice
func NewProposal(name Name, attackers, defenders []*die.Die) Proposal {
	return Proposal{
		Type:      name,
		Attackers: ids(attackers),
		Defenders: ids(defenders),
	}
}

// Key identifies the proposal independently of the order of its ids
func (p Proposal) Key() string {
	return string(p.Type) + ":" + sortedJoin(p.Attackers) + ">" + sortedJoin(p.Defenders)
}

// Identity identifies a combination by the recipe statuses of its dice, so dice
// with the same recipe and value are interchangeable
func Identity(name Name, attackers, defenders []*die.Die) string {
	return string(name) + ":" + sortedJoin(statuses(attackers)) + ">" + sortedJoin(statuses(defenders))
}

func ids(dice []*die.Die) []string {
	out := make([]string, len(dice))
	for i, d := range dice {
		out[i] = d.ID
	}
	return out
}

func statuses(dice []*die.Die) []string {
	out := make([]string, len(dice))
	for i, d := range dice {
		out[i] = d.RecipeStatus()
	}
	return out
}

func sortedJoin(values []string) string {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return strings.Join(sorted, ",")
}

// proposalSet collects proposals, dropping combinations already seen
type proposalSet struct {
	seen  map[string]bool
	items []Proposal
}

func newProposalSet() *proposalSet {
	return &proposalSet{seen: make(map[string]bool)}
}

func (s *proposalSet) add(name Name, attackers, defenders []*die.Die) {
	key := Identity(name, attackers, defenders)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.items = append(s.items, NewProposal(name, attackers, defenders))
}

func (s *proposalSet) proposals() []Proposal {
	return s.items
}
