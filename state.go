package implicit

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// State is everything needed to redraw a plot without recomputing it.
type State struct {
	Equation string    `yaml:"equation"`
	Viewport Viewport  `yaml:"viewport"`
	Spacing  Spacing   `yaml:"spacing"`
	Segments []Segment `yaml:"segments,omitempty"`
}

// SaveState writes st to w as YAML.
func SaveState(w io.Writer, st *State) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	return enc.Close()
}

// LoadState reads a state written by [SaveState].
func LoadState(r io.Reader) (*State, error) {
	var st State
	if err := yaml.NewDecoder(r).Decode(&st); err != nil {
		return nil, fmt.Errorf("decoding state: %w", err)
	}
	if err := st.Viewport.Validate(); err != nil {
		return nil, err
	}
	return &st, nil
}

// Result returns st as a published result with sequence number zero.
func (st *State) Result() *Result {
	return &Result{
		Equation: st.Equation,
		Viewport: st.Viewport,
		Spacing:  st.Spacing,
		Segments: st.Segments,
	}
}
