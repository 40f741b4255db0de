/*
Package server implements the msgpack IPC between a steno engine and the tape.

The engine runs the daemon as a child process and streams one msgpack message per
event on stdin. Each message carries the stroke just pressed together with a
snapshot of the translation stack, oldest entry first. The daemon feeds the
event to the tape and answers on stdout with a short status message.

# IPC

On start the daemon announces itself:

	{"status": "ready"}

A stroke event looks like this:

	{"id": "17", "action": "stroke",
	 "stroke": {"keys": ["K-", "A-", "-T"], "rtfcre": "KAT", "t": 1718000000123},
	 "translations": [{"strokes": ["KAT"], "english": "cat",
	                   "actions": [{"text": "cat", "space": " "}]}]}

and is answered with

	{"id": "17", "status": "ok"}

Events flagged "paused" (engine output turned off) are acknowledged with status
"ignored" and never reach the tape.

The "health" action answers "ok" without touching the tape. "stop" flushes any
pending line, answers "stopped" and ends the session, as does EOF on stdin.

Requests that cannot be decoded are answered with status "error" and the
daemon keeps reading. Failing to write the tape is fatal: the error is sent
back and Start returns it.

# Message Types

Request is the envelope for every incoming message. StrokeMessage,
TranslationMessage and ActionMessage mirror the engine's stroke, translation
stack entry and formatting action. english and text are nil-able: a
translation without a definition (an untranslate) and an action without
visible output are sent as nil.
*/
package server

// Actions understood by the daemon.
const (
	ActionStroke = "stroke"
	ActionHealth = "health"
	ActionStop   = "stop"
)

// Response statuses.
const (
	StatusReady   = "ready"
	StatusOK      = "ok"
	StatusIgnored = "ignored"
	StatusStopped = "stopped"
	StatusError   = "error"
)

// Request - one event from the engine
type Request struct {
	ID           string               `msgpack:"id"`
	Action       string               `msgpack:"action"`
	Stroke       *StrokeMessage       `msgpack:"stroke,omitempty"`
	Translations []TranslationMessage `msgpack:"translations,omitempty"`
	Paused       bool                 `msgpack:"paused,omitempty"`
}

// StrokeMessage - the stroke that triggered the event
type StrokeMessage struct {
	Keys       []string `msgpack:"keys"`
	RTFCRE     string   `msgpack:"rtfcre"`
	Correction bool     `msgpack:"correction,omitempty"`
	// Time is a Unix timestamp in milliseconds; 0 means "now".
	Time int64 `msgpack:"t,omitempty"`
}

// TranslationMessage - one translation stack entry
type TranslationMessage struct {
	Strokes  []string        `msgpack:"strokes"`
	English  *string         `msgpack:"english"`
	Replaced bool            `msgpack:"replaced,omitempty"`
	Actions  []ActionMessage `msgpack:"actions"`
}

// ActionMessage - one formatting action of a translation
type ActionMessage struct {
	Text        *string `msgpack:"text"`
	DeleteCount int     `msgpack:"delete_count,omitempty"`
	PrevAttach  bool    `msgpack:"prev_attach,omitempty"`
	NextAttach  bool    `msgpack:"next_attach,omitempty"`
	Glue        bool    `msgpack:"glue,omitempty"`
	Space       string  `msgpack:"space,omitempty"`
}

// Response - reply to a request
type Response struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
}
