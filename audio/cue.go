// Package audio picks and dispatches the sound cue for each transition stage.
package audio

import "fmt"

// Cue identifies one of the loaded sounds.
type Cue uint8

const (
	CueCrack1 Cue = iota
	CueCrack2
	CueScale1
	CueScale2

	// CueCount is the number of sound assets the loader must provide.
	CueCount = int(CueScale2) + 1
)

var cueNames = [CueCount]string{
	CueCrack1: "crack_1",
	CueCrack2: "crack_2",
	CueScale1: "scale_1",
	CueScale2: "scale_2",
}

func (c Cue) String() string {
	if int(c) >= CueCount {
		return fmt.Sprintf("Cue(%d)", uint8(c))
	}
	return cueNames[c]
}

// MarshalCSV writes the cue name.
func (c Cue) MarshalCSV() (string, error) {
	return c.String(), nil
}

// Category groups cues that share a volume.
type Category uint8

const (
	CategoryCrack Category = iota
	CategoryScale
)

// Category returns the volume group of c.
func (c Cue) Category() Category {
	if c == CueCrack1 || c == CueCrack2 {
		return CategoryCrack
	}
	return CategoryScale
}

// Volumes holds the playback volume per category, 0..1.
type Volumes struct {
	Crack float32
	Scale float32
}

// DefaultVolumes plays cracks louder than the hatching scales.
func DefaultVolumes() Volumes {
	return Volumes{Crack: 1.0, Scale: 0.6}
}

// For returns the volume for c.
func (v Volumes) For(c Cue) float32 {
	if c.Category() == CategoryCrack {
		return v.Crack
	}
	return v.Scale
}
