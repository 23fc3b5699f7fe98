package board

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// State is the board as seen by the persistence layer. The bench is
// internal roster filler and is deliberately not part of it.
type State struct {
	Unit      int      `json:"unit"`
	View      View     `json:"view"`
	Side      Side     `json:"side"`
	Allies    []Player `json:"allies"`
	Opponents []Player `json:"opps"`
	Arrows    []Arrow  `json:"arrows"`
	Ball      Ball     `json:"ball"`
}

// Patch is a partial State. Nil fields are left untouched by SetState; an
// empty non-nil slice clears the corresponding list.
type Patch struct {
	Unit      *int
	View      *View
	Side      *Side
	Allies    []Player
	Opponents []Player
	Arrows    []Arrow
	Ball      *Ball
}

// Patch converts a full State into a Patch that sets every field.
func (s State) Patch() Patch {
	unit, view, side, ball := s.Unit, s.View, s.Side, s.Ball
	p := Patch{Unit: &unit, View: &view, Side: &side, Ball: &ball}
	p.Allies = nonNilPlayers(s.Allies)
	p.Opponents = nonNilPlayers(s.Opponents)
	p.Arrows = cloneArrows(s.Arrows)
	if p.Arrows == nil {
		p.Arrows = []Arrow{}
	}
	return p
}

func nonNilPlayers(in []Player) []Player {
	if in == nil {
		return []Player{}
	}
	return clonePlayers(in)
}

// GetState returns an independent copy of the persistent board fields.
func (b *Board) GetState() State {
	s := &b.scene
	return State{
		Unit:      s.Unit,
		View:      s.View,
		Side:      s.Side,
		Allies:    nonNilPlayers(s.Allies),
		Opponents: nonNilPlayers(s.Opponents),
		Arrows:    nonNilArrows(s.Arrows),
		Ball:      s.Ball,
	}
}

func nonNilArrows(in []Arrow) []Arrow {
	if in == nil {
		return []Arrow{}
	}
	return cloneArrows(in)
}

// SetState merges p into the scene. Absent and invalid fields are ignored.
// While a gesture is in progress the merge is held back until it ends so a
// drag never observes a half-replaced scene.
func (b *Board) SetState(p Patch) {
	if !b.idle() {
		b.queue(func() { b.SetState(p) })
		return
	}
	s := &b.scene
	var fields []string
	if p.Unit != nil && validUnit(*p.Unit) {
		if *p.Unit != s.Unit {
			s.Bench = Bench(*p.Unit)
		}
		s.Unit = *p.Unit
		fields = append(fields, "unit")
	}
	if p.View != nil {
		if v, ok := parseView(string(*p.View)); ok {
			s.View = v
			fields = append(fields, "view")
		}
	}
	if p.Side != nil {
		if v, ok := parseSide(string(*p.Side)); ok {
			s.Side = v
			fields = append(fields, "side")
		}
	}
	if p.Allies != nil {
		s.Allies = clonePlayers(p.Allies)
		fields = append(fields, "allies")
	}
	if p.Opponents != nil {
		s.Opponents = clonePlayers(p.Opponents)
		fields = append(fields, "opps")
	}
	if p.Arrows != nil {
		s.Arrows = cloneArrows(p.Arrows)
		fields = append(fields, "arrows")
	}
	if p.Ball != nil {
		s.Ball = *p.Ball
		fields = append(fields, "ball")
	}
	b.hover = nil
	b.cursor = CursorDefault
	b.log.Debug("state merged", zap.Strings("fields", fields))
	b.render()
}

// SetStateJSON merges a JSON document into the scene. Only a document that
// is not a JSON object is an error; fields that fail to decode are skipped.
func (b *Board) SetStateJSON(data []byte) error {
	p, err := DecodePatch(data)
	if err != nil {
		return err
	}
	b.SetState(p)
	return nil
}

// DecodePatch reads a board document leniently: each known key is decoded on
// its own and dropped if its value has the wrong shape.
func DecodePatch(data []byte) (Patch, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Patch{}, fmt.Errorf("decode board state: %w", err)
	}
	var p Patch
	if v, ok := raw["unit"]; ok {
		var unit int
		if json.Unmarshal(v, &unit) == nil {
			p.Unit = &unit
		}
	}
	if v, ok := raw["view"]; ok {
		var view View
		if json.Unmarshal(v, &view) == nil {
			p.View = &view
		}
	}
	if v, ok := raw["side"]; ok {
		var side Side
		if json.Unmarshal(v, &side) == nil {
			p.Side = &side
		}
	}
	if v, ok := raw["allies"]; ok {
		var allies []Player
		if json.Unmarshal(v, &allies) == nil {
			p.Allies = allies
		}
	}
	if v, ok := raw["opps"]; ok {
		var opps []Player
		if json.Unmarshal(v, &opps) == nil {
			p.Opponents = opps
		}
	}
	if v, ok := raw["arrows"]; ok {
		var arrows []Arrow
		if json.Unmarshal(v, &arrows) == nil {
			p.Arrows = arrows
		}
	}
	if v, ok := raw["ball"]; ok && !isNull(v) {
		var ball Ball
		if json.Unmarshal(v, &ball) == nil {
			p.Ball = &ball
		}
	}
	return p, nil
}

func isNull(v json.RawMessage) bool {
	return strings.TrimSpace(string(v)) == "null"
}

func parseView(v string) (View, bool) {
	switch View(strings.ToUpper(v)) {
	case ViewAll:
		return ViewAll, true
	case ViewFW:
		return ViewFW, true
	case ViewBK:
		return ViewBK, true
	}
	return "", false
}

func parseSide(v string) (Side, bool) {
	switch Side(strings.ToUpper(v)) {
	case SideBoth:
		return SideBoth, true
	case SideAlly:
		return SideAlly, true
	case SideOpp:
		return SideOpp, true
	}
	return "", false
}

// MarshalIndent renders the state the way exported play files are written.
func (s State) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
