//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// EventKind tells whether a message was just posted or edited
// ENUM(new_message,edited_message)
type EventKind string

// MediaType represents the type of media content
// ENUM(photo,video,document,audio,animation,voice)
type MediaType string
