// SPDX-License-Identifier: MIT

package beam

import "fmt"

const ctxTransport = "beam.Transport"

// Element is one stage of a beamline: a named transfer map.
type Element struct {
	Name string
	Phi  *PhaseMatrix
}

// State is the beam after an element.
type State struct {
	Index   int
	Element string
	Sigma   *CovarianceMatrix
}

// Observer receives every State as Transport produces it.
type Observer func(State)

// Transport propagates σ0 through the beamline, σₖ₊₁ = Φₖ·σₖ·Φₖᵀ, and returns
// the state after each element. observe may be nil. σ0 is not modified.
//
// Errors:
//   - ErrNilTransfer for an element without a transfer matrix; the states
//     before it are returned with the error.
func Transport(sigma0 *CovarianceMatrix, line []Element, observe Observer) ([]State, error) {
	states := make([]State, 0, len(line))
	sigma := sigma0
	for k, el := range line {
		next, err := sigma.Propagate(el.Phi)
		if err != nil {
			return states, fmt.Errorf("%s: element %d %q: %w", ctxTransport, k, el.Name, err)
		}
		st := State{Index: k, Element: el.Name, Sigma: next}
		states = append(states, st)
		if observe != nil {
			observe(st)
		}
		sigma = next
	}

	return states, nil
}
