package recording

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestDecodeStartMeeting(t *testing.T) {
	id := uuid.New()
	msg, err := DecodeClientMessage([]byte(fmt.Sprintf(`{"type":"start-meeting","meetingId":"%s"}`, id)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Type != MsgStartMeeting {
		t.Errorf("expected type %q, got %q", MsgStartMeeting, msg.Type)
	}
	if msg.MeetingID != id {
		t.Errorf("expected meeting id %s, got %s", id, msg.MeetingID)
	}
}

func TestDecodeAudioChunk(t *testing.T) {
	id := uuid.New()
	audio := []byte("pcm-bytes")
	encoded := base64.StdEncoding.EncodeToString(audio)
	msg, err := DecodeClientMessage([]byte(fmt.Sprintf(`{"type":"audio-chunk","meetingId":"%s","audio":"%s"}`, id, encoded)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(msg.Audio) != string(audio) {
		t.Errorf("expected audio %q, got %q", audio, msg.Audio)
	}
}

func TestDecodeCompleteAudio(t *testing.T) {
	id := uuid.New()
	encoded := base64.StdEncoding.EncodeToString([]byte("blob"))
	msg, err := DecodeClientMessage([]byte(fmt.Sprintf(`{"type":"complete-audio","meetingId":"%s","audio":"%s"}`, id, encoded)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Type != MsgCompleteAudio {
		t.Errorf("expected type %q, got %q", MsgCompleteAudio, msg.Type)
	}
}

func TestDecodeStopMeeting(t *testing.T) {
	msg, err := DecodeClientMessage([]byte(`{"type":"stop-meeting"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Type != MsgStopMeeting {
		t.Errorf("expected type %q, got %q", MsgStopMeeting, msg.Type)
	}
}

func TestDecodeRejectsUnknownType(t *testing.T) {
	_, err := DecodeClientMessage([]byte(`{"type":"resume-meeting"}`))
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
	if !strings.Contains(err.Error(), "unknown message type") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDecodeRejectsMissingMeetingID(t *testing.T) {
	if _, err := DecodeClientMessage([]byte(`{"type":"start-meeting"}`)); err == nil {
		t.Error("expected error for start-meeting without meetingId")
	}
	if _, err := DecodeClientMessage([]byte(`{"type":"audio-chunk","audio":"AAAA"}`)); err == nil {
		t.Error("expected error for audio-chunk without meetingId")
	}
}

func TestDecodeRejectsBadBase64(t *testing.T) {
	id := uuid.New()
	_, err := DecodeClientMessage([]byte(fmt.Sprintf(`{"type":"audio-chunk","meetingId":"%s","audio":"!!not-base64!!"}`, id)))
	if err == nil {
		t.Fatal("expected error for invalid base64 audio")
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	if _, err := DecodeClientMessage([]byte(`{"type":`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
