package editor

import "time"

// DefaultMessageTTL is how long a message stays in the message bar.
const DefaultMessageTTL = 5 * time.Second

// Config configures the editor Model.
type Config struct {
	// Path of the file to edit. When empty the document starts unnamed and
	// holds Text.
	Path string
	Text string

	// Version is shown in the welcome line of an empty document.
	Version string

	Style  Style
	KeyMap KeyMap

	// MessageTTL controls message bar expiry. Zero means DefaultMessageTTL,
	// a negative value keeps messages until replaced.
	MessageTTL time.Duration
}

func (c Config) messageTTL() time.Duration {
	if c.MessageTTL == 0 {
		return DefaultMessageTTL
	}
	return c.MessageTTL
}
