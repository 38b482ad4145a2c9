package recording

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Client-to-server message types.
const (
	MsgStartMeeting  = "start-meeting"
	MsgAudioChunk    = "audio-chunk"
	MsgCompleteAudio = "complete-audio"
	MsgStopMeeting   = "stop-meeting"
)

// Server-to-client message types.
const (
	MsgMeetingStarted     = "meeting-started"
	MsgTranscriptSegment  = "transcript-segment"
	MsgCompleteTranscript = "complete-transcript"
	MsgTranscriptError    = "transcript-error"
	MsgMeetingStopped     = "meeting-stopped"
	MsgError              = "error"
)

// ClientMessage is the decoded form of one inbound channel frame. The
// envelope is decoded exactly once, here; handlers switch on Type over a
// closed set.
type ClientMessage struct {
	Type      string
	MeetingID uuid.UUID
	Audio     []byte
}

type wireClientMessage struct {
	Type      string `json:"type"`
	MeetingID string `json:"meetingId,omitempty"`
	Audio     string `json:"audio,omitempty"`
}

// DecodeClientMessage parses and validates one inbound frame. Unknown
// types are rejected explicitly rather than ignored.
func DecodeClientMessage(data []byte) (ClientMessage, error) {
	var wire wireClientMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return ClientMessage{}, fmt.Errorf("malformed message: %w", err)
	}

	msg := ClientMessage{Type: wire.Type}
	switch wire.Type {
	case MsgStartMeeting:
		id, err := uuid.Parse(wire.MeetingID)
		if err != nil {
			return ClientMessage{}, fmt.Errorf("%s requires a valid meetingId", wire.Type)
		}
		msg.MeetingID = id
	case MsgAudioChunk, MsgCompleteAudio:
		id, err := uuid.Parse(wire.MeetingID)
		if err != nil {
			return ClientMessage{}, fmt.Errorf("%s requires a valid meetingId", wire.Type)
		}
		msg.MeetingID = id
		audio, err := base64.StdEncoding.DecodeString(wire.Audio)
		if err != nil {
			return ClientMessage{}, fmt.Errorf("%s carries invalid base64 audio", wire.Type)
		}
		msg.Audio = audio
	case MsgStopMeeting:
		// No payload.
	default:
		return ClientMessage{}, fmt.Errorf("unknown message type %q", wire.Type)
	}
	return msg, nil
}

// ServerMessage is one outbound channel frame.
type ServerMessage struct {
	Type      string `json:"type"`
	MeetingID string `json:"meetingId,omitempty"`
	Text      string `json:"text,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
}

func MeetingStarted(meetingID uuid.UUID) ServerMessage {
	return ServerMessage{Type: MsgMeetingStarted, MeetingID: meetingID.String()}
}

func TranscriptSegmentMsg(meetingID uuid.UUID, text string, tsMillis int64) ServerMessage {
	return ServerMessage{Type: MsgTranscriptSegment, MeetingID: meetingID.String(), Text: text, Timestamp: tsMillis}
}

func CompleteTranscript(meetingID uuid.UUID, text string, tsMillis int64) ServerMessage {
	return ServerMessage{Type: MsgCompleteTranscript, MeetingID: meetingID.String(), Text: text, Timestamp: tsMillis}
}

func TranscriptError(meetingID uuid.UUID, errMsg string) ServerMessage {
	return ServerMessage{Type: MsgTranscriptError, MeetingID: meetingID.String(), Error: errMsg}
}

func MeetingStopped() ServerMessage {
	return ServerMessage{Type: MsgMeetingStopped}
}

func ErrorMessage(msg string) ServerMessage {
	return ServerMessage{Type: MsgError, Message: msg}
}
