package domain

// InboundEvent is a message observed in a monitored chat. MessageID is
// unique within ChatID and stays the same when the message is edited.
type InboundEvent struct {
	Kind            EventKind
	ChatID          int64
	ChatUsername    string
	MessageID       int
	SenderID        int64
	Text            string
	TextEntities    []Entity
	Caption         string
	CaptionEntities []Entity
	Media           *Media
}

// EffectiveText returns the message text, or the media caption when the
// message has no text, together with the formatting that belongs to it.
func (e InboundEvent) EffectiveText() (string, []Entity) {
	if e.Text != "" {
		return e.Text, e.TextEntities
	}
	return e.Caption, e.CaptionEntities
}

// Media references an attachment already stored on the platform.
type Media struct {
	Type   MediaType `json:"type"`
	FileID string    `json:"file_id"`
}

// Entity is a formatting span over a text. Offset and Length are in UTF-16
// code units.
type Entity struct {
	Type          string `json:"type"`
	Offset        int    `json:"offset"`
	Length        int    `json:"length"`
	URL           string `json:"url,omitempty"`
	Language      string `json:"language,omitempty"`
	CustomEmojiID string `json:"custom_emoji_id,omitempty"`
}

// OutboundMessage is freshly composed content for the destination channel.
type OutboundMessage struct {
	Text     string
	Entities []Entity
	Media    *Media
}
