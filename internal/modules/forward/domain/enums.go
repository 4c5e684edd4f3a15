//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Outcome describes what the pipeline did with one event
// ENUM(forwarded,duplicate,not_approved,own_message)
type Outcome string
