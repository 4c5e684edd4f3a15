package telegram

import (
	"context"
	"unicode/utf16"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	messageDomain "github.com/reshetovitsme/approval-relay/internal/modules/message/domain"
	sourceDomain "github.com/reshetovitsme/approval-relay/internal/modules/source/domain"
	apperrors "github.com/reshetovitsme/approval-relay/internal/shared/errors"
	"github.com/samber/oops"
)

// captionLimit is the Bot API limit for media captions, in UTF-16 units.
const captionLimit = 1024

// Sender composes new messages in the destination chat. It never uses
// forwardMessage or copyMessage, so no attribution is attached.
type Sender struct {
	bot         *bot.Bot
	destination sourceDomain.ChatRef
}

// NewSender creates a sender bound to one destination chat
func NewSender(b *bot.Bot, destination sourceDomain.ChatRef) *Sender {
	return &Sender{bot: b, destination: destination}
}

// Send posts msg to the destination. Media is re-sent by file id with the
// text as caption. A text too long for a caption follows as a separate
// message after the media.
func (s *Sender) Send(ctx context.Context, msg messageDomain.OutboundMessage) error {
	errb := oops.In("telegram").With("destination", s.destination.String())

	if msg.Media == nil {
		if err := s.sendText(ctx, msg.Text, msg.Entities); err != nil {
			return errb.With("method", "sendMessage").Wrap(err)
		}
		return nil
	}

	caption, entities := msg.Text, msg.Entities
	overflow := len(utf16.Encode([]rune(caption))) > captionLimit
	if overflow {
		caption, entities = "", nil
	}

	if err := s.sendMedia(ctx, msg.Media, caption, entities); err != nil {
		return errb.With("media_type", msg.Media.Type.String()).Wrap(err)
	}

	if overflow {
		if err := s.sendText(ctx, msg.Text, msg.Entities); err != nil {
			return errb.With("method", "sendMessage", "context", "media sent, text failed").Wrap(err)
		}
	}
	return nil
}

func (s *Sender) sendText(ctx context.Context, text string, entities []messageDomain.Entity) error {
	_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:   s.destination.Value(),
		Text:     text,
		Entities: toEntities(entities),
	})
	return err
}

func (s *Sender) sendMedia(ctx context.Context, media *messageDomain.Media, caption string, entities []messageDomain.Entity) error {
	chatID := s.destination.Value()
	file := &models.InputFileString{Data: media.FileID}
	captionEntities := toEntities(entities)

	var err error
	switch media.Type {
	case messageDomain.MediaTypePhoto:
		_, err = s.bot.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID: chatID, Photo: file, Caption: caption, CaptionEntities: captionEntities,
		})
	case messageDomain.MediaTypeVideo:
		_, err = s.bot.SendVideo(ctx, &bot.SendVideoParams{
			ChatID: chatID, Video: file, Caption: caption, CaptionEntities: captionEntities,
		})
	case messageDomain.MediaTypeDocument:
		_, err = s.bot.SendDocument(ctx, &bot.SendDocumentParams{
			ChatID: chatID, Document: file, Caption: caption, CaptionEntities: captionEntities,
		})
	case messageDomain.MediaTypeAudio:
		_, err = s.bot.SendAudio(ctx, &bot.SendAudioParams{
			ChatID: chatID, Audio: file, Caption: caption, CaptionEntities: captionEntities,
		})
	case messageDomain.MediaTypeAnimation:
		_, err = s.bot.SendAnimation(ctx, &bot.SendAnimationParams{
			ChatID: chatID, Animation: file, Caption: caption, CaptionEntities: captionEntities,
		})
	case messageDomain.MediaTypeVoice:
		_, err = s.bot.SendVoice(ctx, &bot.SendVoiceParams{
			ChatID: chatID, Voice: file, Caption: caption, CaptionEntities: captionEntities,
		})
	default:
		return oops.With("media_type", media.Type.String()).Wrap(apperrors.ErrUnsupportedMedia)
	}
	return err
}
