package videocall

import (
	"context"

	"github.com/venahealth/backend/libs/hms"
)

type hmsTokenSource struct {
	gen    *hms.TokenGenerator
	roomID string
	userID string
	role   hms.Role
}

// NewHMSTokenSource returns a TokenSource minting HMS room tokens for a
// single participant. Every call produces a fresh token, as joins and
// rejoins require.
func NewHMSTokenSource(gen *hms.TokenGenerator, roomID, userID string, role hms.Role) TokenSource {
	return &hmsTokenSource{
		gen:    gen,
		roomID: roomID,
		userID: userID,
		role:   role,
	}
}

func (s *hmsTokenSource) Token(ctx context.Context) (string, error) {
	return s.gen.RoomToken(s.roomID, s.userID, s.role)
}
