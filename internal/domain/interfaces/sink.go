package interfaces

import domaintypes "nycschools/internal/domain/types"

// StateSink renders published UI states.
type StateSink interface {
	Render(state domaintypes.UIState) error
}
