package routes

import (
	"encoding/json"
	"net/http"

	"minutes/minutes/config"
	"minutes/minutes/controllers"
	"minutes/minutes/middlewares"
	"minutes/minutes/services/ai"
	"minutes/minutes/services/recording"
	"minutes/minutes/utils/logging"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RecordingDeps bundles what each recording channel needs. One Session is
// created per connection and dies with it.
type RecordingDeps struct {
	Meetings    *controllers.MeetingsController
	Transcriber recording.Transcriber
	Labeler     ai.SpeakerLabeler
	Archive     recording.AudioArchive
}

func RecordingRoutes(deps RecordingDeps, cfg config.Config) chi.Router {
	sessCfg := recording.Config{
		Mode:           recording.ParseMode(cfg.RecordingMode),
		FlushThreshold: cfg.ChunkFlushThreshold,
		FlushInterval:  cfg.ChunkFlushInterval(),
		MinAudioBytes:  cfg.MinAudioBytes,
	}

	r := chi.NewRouter()
	r.HandleFunc("/recording", func(w http.ResponseWriter, req *http.Request) {
		conn, err := websocket.Accept(w, req, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := req.Context()

		// The first frame authenticates the channel.
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			conn.Close(websocket.StatusUnsupportedData, "unsupported data")
			return
		}
		var handshake struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(data, &handshake); err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"type":"error","message":"invalid handshake"}`))
			return
		}
		if _, ok := middlewares.ParseUserID(cfg, handshake.Token); !ok {
			conn.Write(ctx, websocket.MessageText, []byte(`{"type":"error","message":"invalid token"}`))
			conn.Close(websocket.StatusPolicyViolation, "invalid token")
			return
		}

		write := func(msg recording.ServerMessage) {
			payload, err := json.Marshal(msg)
			if err != nil {
				return
			}
			if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
				logging.AppLogger.Warn("recording channel write failed", zap.Error(err))
			}
		}

		sess := recording.NewSession(sessCfg, deps.Transcriber, deps.Labeler, deps.Meetings, deps.Archive, write)

		for {
			typ, data, err := conn.Read(ctx)
			if err != nil {
				// Connection gone; per-connection session state goes with it.
				return
			}
			if typ != websocket.MessageText {
				write(recording.ErrorMessage("binary frames are not supported"))
				continue
			}
			msg, err := recording.DecodeClientMessage(data)
			if err != nil {
				write(recording.ErrorMessage(err.Error()))
				continue
			}
			switch msg.Type {
			case recording.MsgStartMeeting:
				sess.Begin(ctx, msg.MeetingID)
			case recording.MsgAudioChunk, recording.MsgCompleteAudio:
				sess.Ingest(ctx, msg.MeetingID, msg.Audio)
			case recording.MsgStopMeeting:
				meetingID, ok := sess.Active()
				if !ok {
					write(recording.ErrorMessage("no active meeting"))
					continue
				}
				sess.End(ctx, meetingID)
				if err := deps.Meetings.StopMeeting(ctx, meetingID); err != nil {
					write(recording.ErrorMessage("failed to stop meeting"))
					continue
				}
				write(recording.MeetingStopped())
			}
		}
	})
	return r
}
