package videocall

import (
	"testing"
	"time"

	"github.com/venahealth/backend/libs/test"
)

func TestParseSession(t *testing.T) {
	sess, err := ParseSession(map[string]interface{}{
		"id":                "sess-1",
		"consultation_id":   "consult-1",
		"doctor_id":         "doc-1",
		"patient_id":        "patient-1",
		"status":            "COUNTERPART_WAITING",
		"scheduled_start":   int64(1700000000),
		"scheduled_end":     int64(1700001200),
		"recording_consent": true,
		"room_id":           "room-1",
	})
	test.OK(t, err)
	test.Equals(t, "sess-1", sess.ID)
	test.Equals(t, "consult-1", sess.ConsultationID)
	test.Equals(t, SessionStatusCounterpartWaiting, sess.Status)
	test.Equals(t, time.Unix(1700000000, 0), sess.ScheduledStart)
	test.Equals(t, time.Unix(1700001200, 0), sess.ScheduledEnd)
	test.Equals(t, true, sess.RecordingConsent)
	test.Equals(t, "room-1", sess.RoomID)
}

func TestParseSessionUnknownStatus(t *testing.T) {
	_, err := ParseSession(map[string]interface{}{
		"id":     "sess-1",
		"status": "LOITERING",
	})
	test.Assert(t, err != nil, "expected an error for an unknown status")
}

func TestParseSessionBadShape(t *testing.T) {
	_, err := ParseSession(map[string]interface{}{
		"id":     "sess-1",
		"status": "SCHEDULED",
		// a string where unix seconds belong
		"scheduled_start": "tomorrow-ish",
	})
	test.Assert(t, err != nil, "expected an error for a malformed payload")
}

func TestParseSessionOmittedTimesStayZero(t *testing.T) {
	sess, err := ParseSession(map[string]interface{}{
		"id":     "sess-1",
		"status": "SCHEDULED",
	})
	test.OK(t, err)
	test.Assert(t, sess.ScheduledStart.IsZero(), "expected a zero start time")
	test.Assert(t, sess.ScheduledEnd.IsZero(), "expected a zero end time")
}
