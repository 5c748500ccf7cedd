package editor

import (
	"errors"
	"io/fs"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit"

// Model is a Bubble Tea model owning one editing session: the document, the
// cursor, the scroll offset and the message bar.
type Model struct {
	cfg Config
	doc *buffer.Document

	cursor buffer.Pos
	offset Offset

	// Terminal size and the text area derived from it.
	width, height int
	size          Size

	message    string
	messageGen int

	quitting bool
}

type messageExpiredMsg struct {
	gen int
}

// New creates a session for cfg. A file that cannot be loaded is not fatal:
// the session starts empty, still named after cfg.Path, and reports the
// failure in the message bar.
func New(cfg Config) Model {
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}

	m := Model{cfg: cfg, message: helpMessage}
	switch {
	case cfg.Path == "":
		m.doc = buffer.FromText(cfg.Text)
	default:
		doc, err := buffer.Open(cfg.Path)
		if err != nil {
			log.Printf("editor: %v", err)
			doc = buffer.NewNamed(cfg.Path)
			if errors.Is(err, fs.ErrNotExist) {
				m.message = "New file: " + cfg.Path
			} else {
				m.message = "Could not load the file: " + cfg.Path
			}
		}
		m.doc = doc
	}
	return m
}

// Init starts the expiry timer of the initial message.
func (m Model) Init() tea.Cmd { return m.expireMessage() }

func (m Model) Document() *buffer.Document { return m.doc }

func (m Model) Cursor() buffer.Pos { return m.cursor }

func (m Model) Offset() Offset { return m.offset }

func (m Model) Size() Size { return m.size }

func (m Model) Message() string { return m.message }

func (m Model) Quitting() bool { return m.quitting }

// CursorScreenPos returns the cursor position relative to the top-left cell
// of the text area.
func (m Model) CursorScreenPos() (x, y int) {
	return m.cursor.Col - m.offset.Col, m.cursor.Line - m.offset.Line
}

// SetSize sets the terminal size. Two rows are reserved for the status and
// message bars.
func (m Model) SetSize(width, height int) Model {
	m.width = maxInt(width, 0)
	m.height = maxInt(height, 0)
	m.size = Size{Width: m.width, Height: maxInt(m.height-2, 0)}
	m.offset = Scroll(m.cursor, m.size, m.offset)
	return m
}

// SetCursor moves the cursor to p, clamped to the document, and scrolls it
// into view.
func (m Model) SetCursor(p buffer.Pos) Model {
	m.cursor = buffer.ClampPos(p, m.doc)
	m.offset = Scroll(m.cursor, m.size, m.offset)
	return m
}

// SetMessage replaces the message bar text and returns the command that
// clears it once it expires.
func (m Model) SetMessage(s string) (Model, tea.Cmd) {
	m.message = s
	m.messageGen++
	return m, m.expireMessage()
}

func (m Model) expireMessage() tea.Cmd {
	ttl := m.cfg.messageTTL()
	if ttl < 0 || m.message == "" {
		return nil
	}
	gen := m.messageGen
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return messageExpiredMsg{gen: gen}
	})
}
