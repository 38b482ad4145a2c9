package recording

import (
	"bytes"
	"context"
	"strings"
	"time"

	"minutes/minutes/services/ai"
	"minutes/minutes/utils/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Mode string

const (
	// ModeFull buffers all audio in memory and transcribes once on stop.
	ModeFull Mode = "full"
	// ModeChunked transcribes incrementally as chunks accumulate and
	// streams partial results back over the channel.
	ModeChunked Mode = "chunked"
)

func ParseMode(s string) Mode {
	if s == string(ModeChunked) {
		return ModeChunked
	}
	return ModeFull
}

// Transcriber is the speech-to-text gateway seen from a session.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// SessionStore is the slice of persistence a session needs.
type SessionStore interface {
	AppendTranscript(ctx context.Context, meetingID uuid.UUID, speaker, text string, at time.Time, confidence float64) error
	SetAudioKey(ctx context.Context, meetingID uuid.UUID, key string) error
}

// AudioArchive stores the raw recording; nil disables archiving.
type AudioArchive interface {
	StoreRecording(ctx context.Context, meetingID uuid.UUID, audio []byte) (string, error)
}

type Config struct {
	Mode           Mode
	FlushThreshold int
	FlushInterval  time.Duration
	MinAudioBytes  int
}

// The gateway does not report per-segment confidence, so segments carry a
// fixed best-effort score.
const defaultConfidence = 0.9

// Session owns the recording state of one connection: the active meeting
// id and the audio buffered since the last flush. It is created when the
// channel opens, used only by that channel's handler goroutine, and
// discarded when the channel closes.
type Session struct {
	cfg         Config
	transcriber Transcriber
	labeler     ai.SpeakerLabeler
	store       SessionStore
	archive     AudioArchive
	notify      func(ServerMessage)

	meetingID uuid.UUID
	active    bool
	pending   [][]byte
	recording []byte
	lastFlush time.Time
	now       func() time.Time
}

func NewSession(cfg Config, transcriber Transcriber, labeler ai.SpeakerLabeler, store SessionStore, archive AudioArchive, notify func(ServerMessage)) *Session {
	if notify == nil {
		notify = func(ServerMessage) {}
	}
	return &Session{
		cfg:         cfg,
		transcriber: transcriber,
		labeler:     labeler,
		store:       store,
		archive:     archive,
		notify:      notify,
		now:         time.Now,
	}
}

// Active reports the currently recording meeting, if any.
func (s *Session) Active() (uuid.UUID, bool) {
	return s.meetingID, s.active
}

// Begin registers meetingID as this connection's active session. A second
// begin without an intervening end is logged and overwrites: last start
// wins, dropping any audio buffered for the previous meeting.
func (s *Session) Begin(ctx context.Context, meetingID uuid.UUID) {
	if s.active {
		logging.AppLogger.Warn("begin with session already active, replacing",
			zap.String("previous", s.meetingID.String()),
			zap.String("meeting", meetingID.String()),
		)
		s.reset()
	}
	s.meetingID = meetingID
	s.active = true
	s.lastFlush = s.now()
	s.notify(MeetingStarted(meetingID))
}

// Ingest buffers one audio payload. Payloads for any meeting other than
// the active one are discarded with a diagnostic.
func (s *Session) Ingest(ctx context.Context, meetingID uuid.UUID, audio []byte) {
	if !s.active || meetingID != s.meetingID {
		logging.AppLogger.Warn("audio for inactive meeting dropped",
			zap.String("meeting", meetingID.String()),
			zap.Bool("session_active", s.active),
		)
		return
	}
	s.pending = append(s.pending, audio)
	s.recording = append(s.recording, audio...)

	if s.cfg.Mode == ModeChunked {
		if len(s.pending) >= s.cfg.FlushThreshold || s.now().Sub(s.lastFlush) >= s.cfg.FlushInterval {
			s.flush(ctx, false)
		}
	}
}

// End flushes remaining audio, archives the recording, and clears all
// in-memory state. It returns false when meetingID does not match the
// active session, which makes a duplicate stop a no-op.
func (s *Session) End(ctx context.Context, meetingID uuid.UUID) bool {
	if !s.active || meetingID != s.meetingID {
		logging.AppLogger.Warn("end for inactive meeting ignored",
			zap.String("meeting", meetingID.String()),
		)
		return false
	}
	s.flush(ctx, s.cfg.Mode == ModeFull)

	if s.archive != nil && len(s.recording) > 0 {
		key, err := s.archive.StoreRecording(ctx, s.meetingID, s.recording)
		if err != nil {
			logging.ErrorLogger.Error("failed to archive recording",
				zap.String("meeting", s.meetingID.String()),
				zap.Error(err),
			)
		} else if err := s.store.SetAudioKey(ctx, s.meetingID, key); err != nil {
			logging.ErrorLogger.Error("failed to persist audio key",
				zap.String("meeting", s.meetingID.String()),
				zap.Error(err),
			)
		}
	}

	s.reset()
	return true
}

// flush transcribes everything buffered since the last flush and appends
// the result as one transcript segment. final selects the
// complete-transcript frame used for full-conversation mode.
func (s *Session) flush(ctx context.Context, final bool) {
	buf := bytes.Join(s.pending, nil)
	s.pending = nil
	s.lastFlush = s.now()

	if len(buf) == 0 {
		return
	}
	if len(buf) < s.cfg.MinAudioBytes {
		// Too short to plausibly contain speech; skip the gateway call.
		logging.AppLogger.Info("dropping sub-threshold audio buffer",
			zap.String("meeting", s.meetingID.String()),
			zap.Int("bytes", len(buf)),
		)
		return
	}

	text, err := s.transcriber.Transcribe(ctx, buf)
	if err != nil {
		s.notify(TranscriptError(s.meetingID, "transcription failed"))
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	speaker, cleaned := s.labeler.Label(ctx, text)
	at := s.now()
	if err := s.store.AppendTranscript(ctx, s.meetingID, speaker, cleaned, at, defaultConfidence); err != nil {
		logging.ErrorLogger.Error("failed to persist transcript segment",
			zap.String("meeting", s.meetingID.String()),
			zap.Error(err),
		)
		s.notify(TranscriptError(s.meetingID, "failed to save transcript"))
		return
	}

	if final {
		s.notify(CompleteTranscript(s.meetingID, cleaned, at.UnixMilli()))
	} else {
		s.notify(TranscriptSegmentMsg(s.meetingID, cleaned, at.UnixMilli()))
	}
}

func (s *Session) reset() {
	s.meetingID = uuid.Nil
	s.active = false
	s.pending = nil
	s.recording = nil
}
