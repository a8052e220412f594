package videocall

import (
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/venahealth/backend/libs/errors"
)

// SessionStatus is the server reported status of a consultation session.
type SessionStatus string

const (
	// SessionStatusScheduled means neither side has joined yet.
	SessionStatusScheduled SessionStatus = "SCHEDULED"
	// SessionStatusCounterpartWaiting means the other party has joined the
	// room and is waiting.
	SessionStatusCounterpartWaiting SessionStatus = "COUNTERPART_WAITING"
	// SessionStatusInProgress means both parties have connected.
	SessionStatusInProgress SessionStatus = "IN_PROGRESS"
	// SessionStatusEnded means the consultation is over.
	SessionStatusEnded SessionStatus = "ENDED"
)

// Valid returns true iff the value is a supported session status.
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusScheduled, SessionStatusCounterpartWaiting, SessionStatusInProgress, SessionStatusEnded:
		return true
	}
	return false
}

// Session is the client's view of a scheduled consultation, refreshed by
// polling the server while the call screen is active.
type Session struct {
	ID               string
	ConsultationID   string
	DoctorID         string
	PatientID        string
	Status           SessionStatus
	ScheduledStart   time.Time
	ScheduledEnd     time.Time
	RecordingConsent bool
	RoomID           string
}

// sessionPayload is the wire shape of a session as the server sends it.
// Times are unix seconds.
type sessionPayload struct {
	ID               string `mapstructure:"id"`
	ConsultationID   string `mapstructure:"consultation_id"`
	DoctorID         string `mapstructure:"doctor_id"`
	PatientID        string `mapstructure:"patient_id"`
	Status           string `mapstructure:"status"`
	ScheduledStart   int64  `mapstructure:"scheduled_start"`
	ScheduledEnd     int64  `mapstructure:"scheduled_end"`
	RecordingConsent bool   `mapstructure:"recording_consent"`
	RoomID           string `mapstructure:"room_id"`
}

// ParseSession decodes a server session payload. An unrecognized status
// is an error; the caller treats it as "no data" and keeps its last view.
func ParseSession(data map[string]interface{}) (*Session, error) {
	var p sessionPayload
	if err := mapstructure.Decode(data, &p); err != nil {
		return nil, errors.Trace(err)
	}
	status := SessionStatus(p.Status)
	if !status.Valid() {
		return nil, errors.Errorf("videocall: unknown session status %q", p.Status)
	}
	s := &Session{
		ID:               p.ID,
		ConsultationID:   p.ConsultationID,
		DoctorID:         p.DoctorID,
		PatientID:        p.PatientID,
		Status:           status,
		RecordingConsent: p.RecordingConsent,
		RoomID:           p.RoomID,
	}
	if p.ScheduledStart != 0 {
		s.ScheduledStart = time.Unix(p.ScheduledStart, 0)
	}
	if p.ScheduledEnd != 0 {
		s.ScheduledEnd = time.Unix(p.ScheduledEnd, 0)
	}
	return s, nil
}
