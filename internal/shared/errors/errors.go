package errors

import "errors"

var (
	ErrMissingBotToken     = errors.New("TELEGRAM_BOT_TOKEN is required")
	ErrNoMonitoredGroups   = errors.New("MONITORED_GROUPS must list at least one chat")
	ErrMissingTarget       = errors.New("TARGET_CHANNEL is required")
	ErrNoKeywords          = errors.New("APPROVED_KEYWORDS must list at least one keyword")
	ErrInvalidChatRef      = errors.New("invalid chat reference")
	ErrUnknownDedupBackend = errors.New("unknown dedup backend")
	ErrUnknownHealthMode   = errors.New("unknown health mode")
	ErrUnsupportedMedia    = errors.New("unsupported media type")
	ErrBotStopped          = errors.New("telegram update loop stopped")
)
