package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/KirkDiggler/buttonmen-rules/internal/domain/die"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/skill"
)

// scenario is a game position stored as JSON
type scenario struct {
	ID       string     `json:"id"`
	Round    int        `json:"round"`
	State    string     `json:"state"`
	Attacker rosterJSON `json:"attacker"`
	Defender rosterJSON `json:"defender"`
}

type rosterJSON struct {
	Player string    `json:"player"`
	Dice   []dieJSON `json:"dice"`
}

// dieJSON describes one die. Sides picks the swing size or option, SubValues
// the faces of a twin die.
type dieJSON struct {
	ID        string `json:"id"`
	Recipe    string `json:"recipe"`
	Sides     int    `json:"sides,omitempty"`
	Value     int    `json:"value"`
	SubValues []int  `json:"subValues,omitempty"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var s scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &s, nil
}

func (s *scenario) game(skills *skill.Registry) (*game.Game, error) {
	state := game.StateStartTurn
	if s.State != "" {
		var ok bool
		if state, ok = game.ParseState(s.State); !ok {
			return nil, fmt.Errorf("unknown game state %q", s.State)
		}
	}

	attacker, err := s.Attacker.roster("a", skills)
	if err != nil {
		return nil, err
	}
	defender, err := s.Defender.roster("d", skills)
	if err != nil {
		return nil, err
	}

	return &game.Game{
		ID:       s.ID,
		State:    state,
		Round:    max(s.Round, 1),
		Attacker: attacker,
		Defender: defender,
	}, nil
}

func (r rosterJSON) roster(prefix string, skills *skill.Registry) (game.Roster, error) {
	roster := game.Roster{Player: game.PlayerID(r.Player)}
	for i, entry := range r.Dice {
		id := entry.ID
		if id == "" {
			id = fmt.Sprintf("%s%d", prefix, i+1)
		}
		d, err := entry.die(id, roster.Player, skills)
		if err != nil {
			return roster, err
		}
		roster.Dice = append(roster.Dice, d)
	}
	return roster, nil
}

func (s dieJSON) die(id string, owner die.PlayerID, skills *skill.Registry) (*die.Die, error) {
	d, err := die.ParseRecipe(id, owner, s.Recipe, skills)
	if err != nil {
		return nil, err
	}

	if s.Sides > 0 {
		switch d.Size.Kind {
		case die.SizeSwing:
			err = d.SetSwing(s.Sides)
		case die.SizeOption:
			err = d.ChooseOption(s.Sides)
		default:
			err = fmt.Errorf("die %s: sides only apply to swing and option dice", id)
		}
		if err != nil {
			return nil, err
		}
	}

	if s.Value < 0 || s.Value > d.Sides {
		return nil, fmt.Errorf("die %s: value %d outside 0-%d", id, s.Value, d.Sides)
	}
	d.Value = s.Value
	if d.Size.Kind == die.SizeTwin && s.Value > 0 {
		if len(s.SubValues) != 2 || s.SubValues[0]+s.SubValues[1] != s.Value {
			return nil, fmt.Errorf("die %s: twin needs two sub values adding up to %d", id, s.Value)
		}
		d.SubValues = append([]int(nil), s.SubValues...)
	}
	return d, nil
}
