package model

import "fmt"

type EditPhase int

const (
	PhaseIdle EditPhase = iota
	PhaseEditing
	PhaseConfirmingSave
	PhaseConfirmingDiscard
)

func (p EditPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEditing:
		return "editing"
	case PhaseConfirmingSave:
		return "confirming_save"
	case PhaseConfirmingDiscard:
		return "confirming_discard"
	default:
		return "unknown"
	}
}

func (p EditPhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *EditPhase) UnmarshalText(text []byte) error {
	for _, phase := range []EditPhase{PhaseIdle, PhaseEditing, PhaseConfirmingSave, PhaseConfirmingDiscard} {
		if phase.String() == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown edit phase %q", text)
}

// EditSession is a snapshot of the in-progress edit, if any.
type EditSession struct {
	TargetPostID   PostID    `json:"target_post_id,omitempty"`
	PendingContent string    `json:"pending_content,omitempty"`
	Phase          EditPhase `json:"phase"`
}

func (s EditSession) Active() bool {
	return s.Phase != PhaseIdle
}
