// Package evolution defines the fixed evolutionary tree: the creature forms,
// the player inputs, and the table of which input moves which form where.
package evolution

import (
	"fmt"
	"strings"
)

// State is one creature form. Its value doubles as the index of its artwork.
type State uint8

const (
	Egg State = iota
	EggCrack1
	EggCrack2
	BigEgg
	BigEggCrack1
	BigEggCrack2
	Chick
	BabyTurtle
	SmallDragon
	Kraken
	Duckling
	Bird
	Duck
	Goose
	Phoenix
	Eagle
	SeaTurtle
	Tortoise
	Dragon
	Wyvern
	Leviathan

	// StateCount is the number of forms and the required artwork count.
	StateCount = int(Leviathan) + 1
)

// Initial is the form every game starts (and restarts) from.
const Initial = Egg

var stateNames = [StateCount]string{
	Egg:          "Egg",
	EggCrack1:    "EggCrack1",
	EggCrack2:    "EggCrack2",
	BigEgg:       "BigEgg",
	BigEggCrack1: "BigEggCrack1",
	BigEggCrack2: "BigEggCrack2",
	Chick:        "Chick",
	BabyTurtle:   "BabyTurtle",
	SmallDragon:  "SmallDragon",
	Kraken:       "Kraken",
	Duckling:     "Duckling",
	Bird:         "Bird",
	Duck:         "Duck",
	Goose:        "Goose",
	Phoenix:      "Phoenix",
	Eagle:        "Eagle",
	SeaTurtle:    "SeaTurtle",
	Tortoise:     "Tortoise",
	Dragon:       "Dragon",
	Wyvern:       "Wyvern",
	Leviathan:    "Leviathan",
}

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", uint8(s))
	}
	return stateNames[s]
}

// Valid reports whether s is one of the defined forms.
func (s State) Valid() bool {
	return int(s) < StateCount
}

// Slug returns the snake_case name used for artwork file names.
// EggCrack1 becomes "egg_crack_1".
func (s State) Slug() string {
	name := s.String()
	var b strings.Builder
	for i, r := range name {
		upper := r >= 'A' && r <= 'Z'
		digit := r >= '0' && r <= '9'
		if i > 0 && (upper || digit) {
			b.WriteByte('_')
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// States returns every form in artwork order.
func States() []State {
	out := make([]State, StateCount)
	for i := range out {
		out[i] = State(i)
	}
	return out
}

// Input is one of the elemental choices offered to the player.
type Input uint8

const (
	Sun Input = iota
	Water
	Arrowhead
	Restart

	// InputCount is the number of inputs (and buttons).
	InputCount = int(Restart) + 1
)

var inputNames = [InputCount]string{
	Sun:       "sun",
	Water:     "water",
	Arrowhead: "arrowhead",
	Restart:   "restart",
}

func (in Input) String() string {
	if int(in) >= InputCount {
		return fmt.Sprintf("Input(%d)", uint8(in))
	}
	return inputNames[in]
}

// ParseInput converts a lower-case input name back to its Input.
func ParseInput(name string) (Input, error) {
	for i, n := range inputNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return Input(i), nil
		}
	}
	return 0, fmt.Errorf("unknown input %q", name)
}

// AllInputs returns every input in button order.
func AllInputs() []Input {
	out := make([]Input, InputCount)
	for i := range out {
		out[i] = Input(i)
	}
	return out
}

// ParseState converts a form name (as printed by String) back to its State.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", name)
}

// MarshalCSV writes the form name.
func (s State) MarshalCSV() (string, error) {
	return s.String(), nil
}

// UnmarshalCSV reads a form name.
func (s *State) UnmarshalCSV(field string) error {
	v, err := ParseState(field)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalCSV writes the input name.
func (in Input) MarshalCSV() (string, error) {
	return in.String(), nil
}

// UnmarshalCSV reads an input name.
func (in *Input) UnmarshalCSV(field string) error {
	v, err := ParseInput(field)
	if err != nil {
		return err
	}
	*in = v
	return nil
}
