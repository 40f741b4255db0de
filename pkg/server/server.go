package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/tapeytape/internal/logger"
	"github.com/bastiangx/tapeytape/pkg/steno"
	"github.com/bastiangx/tapeytape/pkg/tape"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Recorder receives the decoded events. *tape.Tape implements it.
type Recorder interface {
	OnStroked(stroke steno.Stroke, history tape.History) error
	Close() error
}

// Server handles the IPC for one engine session
type Server struct {
	recorder Recorder
	dec      *msgpack.Decoder
	enc      *msgpack.Encoder
	writer   io.Writer
	log      *log.Logger
	events   int
}

// NewServer creates a server reading requests from r and replying on w.
func NewServer(recorder Recorder, r io.Reader, w io.Writer) *Server {
	return &Server{
		recorder: recorder,
		dec:      msgpack.NewDecoder(r),
		enc:      msgpack.NewEncoder(w),
		writer:   w,
		log:      logger.New("server"),
	}
}

// Start serves requests until stop, EOF or a fatal tape error.
func (s *Server) Start() error {
	s.log.Debug("Starting Server.")

	if err := s.send(Response{Status: StatusReady}); err != nil {
		return err
	}

	for {
		raw, err := s.dec.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("Input closed after %d events", s.events)
				return s.recorder.Close()
			}
			s.log.Errorf("Reading request: %v", err)
			return fmt.Errorf("read request: %w", err)
		}

		stop, err := s.handleRequest(raw)
		if err != nil || stop {
			return err
		}
	}
}

// handleRequest processes one encoded request. It reports whether the
// session is over.
func (s *Server) handleRequest(raw msgpack.RawMessage) (bool, error) {
	var request Request
	if err := msgpack.Unmarshal(raw, &request); err != nil {
		s.log.Errorf("Unmarshaling request: %v", err)
		return false, s.sendError("", "invalid request")
	}

	switch request.Action {
	case ActionStroke:
		return false, s.handleStroke(request)
	case ActionHealth:
		return false, s.send(Response{ID: request.ID, Status: StatusOK})
	case ActionStop:
		if err := s.recorder.Close(); err != nil {
			return true, s.fatal(request.ID, err)
		}
		return true, s.send(Response{ID: request.ID, Status: StatusStopped})
	default:
		return false, s.sendError(request.ID, fmt.Sprintf("unknown action: %s", request.Action))
	}
}

func (s *Server) handleStroke(request Request) error {
	if request.Stroke == nil {
		return s.sendError(request.ID, "missing stroke")
	}
	if request.Paused {
		s.log.Debugf("Ignoring paused stroke %s", request.Stroke.RTFCRE)
		return s.send(Response{ID: request.ID, Status: StatusIgnored})
	}

	s.events++
	if err := s.recorder.OnStroked(request.Stroke.toStroke(), toHistory(request.Translations)); err != nil {
		return s.fatal(request.ID, err)
	}
	return s.send(Response{ID: request.ID, Status: StatusOK})
}

// fatal reports err to the engine and returns it to end the session.
func (s *Server) fatal(id string, err error) error {
	s.log.Errorf("Writing tape: %v", err)
	if sendErr := s.sendError(id, err.Error()); sendErr != nil {
		return errors.Join(err, sendErr)
	}
	return err
}

func (s *Server) sendError(id, message string) error {
	return s.send(Response{ID: id, Status: StatusError, Error: message})
}

// send encodes response and flushes the writer if it buffers.
func (s *Server) send(response Response) error {
	if err := s.enc.Encode(response); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if f, ok := s.writer.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	return nil
}

func (m StrokeMessage) toStroke() steno.Stroke {
	stroke := steno.Stroke{
		Keys:         m.Keys,
		RTFCRE:       m.RTFCRE,
		IsCorrection: m.Correction,
	}
	if m.Time > 0 {
		stroke.Time = time.UnixMilli(m.Time)
	}
	return stroke
}

func toHistory(messages []TranslationMessage) tape.History {
	history := make(tape.History, len(messages))
	for i, m := range messages {
		actions := make([]tape.Action, len(m.Actions))
		for j, a := range m.Actions {
			actions[j] = tape.Action{
				Text:        a.Text,
				DeleteCount: a.DeleteCount,
				PrevAttach:  a.PrevAttach,
				NextAttach:  a.NextAttach,
				Glue:        a.Glue,
				Space:       a.Space,
			}
		}
		history[i] = tape.Translation{
			Strokes:  m.Strokes,
			English:  m.English,
			Replaced: m.Replaced,
			Actions:  actions,
		}
	}
	return history
}
