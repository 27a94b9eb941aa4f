package evolution

import (
	"fmt"
	"sort"
)

// Effect describes how a table edge is carried out.
type Effect uint8

const (
	// EffectRegular is a crossfade between two resting forms.
	EffectRegular Effect = iota
	// EffectCrack starts the two-stage egg-cracking sequence.
	EffectCrack
	// EffectReset returns to Initial immediately, without a transition.
	EffectReset
)

func (e Effect) String() string {
	switch e {
	case EffectRegular:
		return "regular"
	case EffectCrack:
		return "crack"
	case EffectReset:
		return "reset"
	default:
		return fmt.Sprintf("Effect(%d)", uint8(e))
	}
}

// Step is the result of applying an input to a resting form.
type Step struct {
	Goal   State
	Effect Effect
}

// Edge is one row of the evolution table.
type Edge struct {
	From  State  `csv:"from"`
	Input Input  `csv:"input"`
	Goal  State  `csv:"goal"`
	Kind  Effect `csv:"effect"`
}

type key struct {
	state State
	input Input
}

var table = map[key]Step{
	{Egg, Sun}:       {EggCrack1, EffectCrack},
	{Egg, Water}:     {EggCrack1, EffectCrack},
	{Egg, Arrowhead}: {BigEgg, EffectRegular},

	{BigEgg, Sun}:   {BigEggCrack1, EffectCrack},
	{BigEgg, Water}: {BigEggCrack1, EffectCrack},

	{Chick, Water}:     {Duckling, EffectRegular},
	{Chick, Arrowhead}: {Bird, EffectRegular},

	{Duckling, Water}: {Duck, EffectRegular},
	{Duckling, Sun}:   {Goose, EffectRegular},

	{Bird, Sun}:       {Phoenix, EffectRegular},
	{Bird, Arrowhead}: {Eagle, EffectRegular},

	{BabyTurtle, Water}: {SeaTurtle, EffectRegular},
	{BabyTurtle, Sun}:   {Tortoise, EffectRegular},

	{SmallDragon, Sun}:       {Dragon, EffectRegular},
	{SmallDragon, Arrowhead}: {Wyvern, EffectRegular},

	{Kraken, Water}: {Leviathan, EffectRegular},

	{Duck, Restart}:      {Initial, EffectReset},
	{Goose, Restart}:     {Initial, EffectReset},
	{Phoenix, Restart}:   {Initial, EffectReset},
	{Eagle, Restart}:     {Initial, EffectReset},
	{SeaTurtle, Restart}: {Initial, EffectReset},
	{Tortoise, Restart}:  {Initial, EffectReset},
	{Dragon, Restart}:    {Initial, EffectReset},
	{Wyvern, Restart}:    {Initial, EffectReset},
	{Leviathan, Restart}: {Initial, EffectReset},
}

// Crack chain: first stage -> second stage.
var crackChain = map[State]State{
	EggCrack1:    EggCrack2,
	BigEggCrack1: BigEggCrack2,
}

// Hatchlings keyed by second crack stage and the input that started the crack.
var hatchlings = map[key]State{
	{EggCrack2, Sun}:      Chick,
	{EggCrack2, Water}:    BabyTurtle,
	{BigEggCrack2, Sun}:   SmallDragon,
	{BigEggCrack2, Water}: Kraken,
}

// Lookup returns the step for (s, in) and whether the pair is in the table.
func Lookup(s State, in Input) (Step, bool) {
	step, ok := table[key{s, in}]
	return step, ok
}

// Next returns the goal form for (s, in).
// Pairs outside the table are a bookkeeping bug upstream and panic.
func Next(s State, in Input) State {
	step, ok := Lookup(s, in)
	if !ok {
		panic(fmt.Sprintf("evolution: no edge for state %s with input %s", s, in))
	}
	return step.Goal
}

// Accepts reports whether in is a valid input while resting at s.
func Accepts(s State, in Input) bool {
	_, ok := table[key{s, in}]
	return ok
}

// Inputs returns the inputs valid at s, in button order.
func Inputs(s State) []Input {
	var out []Input
	for i := 0; i < InputCount; i++ {
		if Accepts(s, Input(i)) {
			out = append(out, Input(i))
		}
	}
	return out
}

// IsTerminal reports whether s is a final form (only Restart is accepted).
func IsTerminal(s State) bool {
	ins := Inputs(s)
	return len(ins) == 1 && ins[0] == Restart
}

// CrackStage returns 1 or 2 for crack forms and 0 for everything else.
func CrackStage(s State) int {
	switch s {
	case EggCrack1, BigEggCrack1:
		return 1
	case EggCrack2, BigEggCrack2:
		return 2
	default:
		return 0
	}
}

// NextCrack returns the second crack stage following a first one.
func NextCrack(s State) (State, bool) {
	next, ok := crackChain[s]
	return next, ok
}

// Hatchling returns the form that hatches from a second crack stage,
// given the input that started the crack.
func Hatchling(crack State, started Input) (State, bool) {
	h, ok := hatchlings[key{crack, started}]
	return h, ok
}

// Edges returns the whole table sorted by form then input.
func Edges() []Edge {
	edges := make([]Edge, 0, len(table))
	for k, step := range table {
		edges = append(edges, Edge{From: k.state, Input: k.input, Goal: step.Goal, Kind: step.Effect})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].Input < edges[j].Input
	})
	return edges
}

// MarshalCSV writes the effect name.
func (e Effect) MarshalCSV() (string, error) {
	return e.String(), nil
}
