package telegram

import (
	"github.com/go-telegram/bot/models"
	messageDomain "github.com/reshetovitsme/approval-relay/internal/modules/message/domain"
	"github.com/samber/lo"
)

// eventMessage picks the message carried by an update together with its kind.
func eventMessage(update *models.Update) (*models.Message, messageDomain.EventKind, bool) {
	switch {
	case update == nil:
		return nil, "", false
	case update.Message != nil:
		return update.Message, messageDomain.EventKindNewMessage, true
	case update.ChannelPost != nil:
		return update.ChannelPost, messageDomain.EventKindNewMessage, true
	case update.EditedMessage != nil:
		return update.EditedMessage, messageDomain.EventKindEditedMessage, true
	case update.EditedChannelPost != nil:
		return update.EditedChannelPost, messageDomain.EventKindEditedMessage, true
	default:
		return nil, "", false
	}
}

func toInboundEvent(msg *models.Message, kind messageDomain.EventKind) messageDomain.InboundEvent {
	return messageDomain.InboundEvent{
		Kind:            kind,
		ChatID:          msg.Chat.ID,
		ChatUsername:    msg.Chat.Username,
		MessageID:       msg.ID,
		SenderID:        senderID(msg),
		Text:            msg.Text,
		TextEntities:    fromEntities(msg.Entities),
		Caption:         msg.Caption,
		CaptionEntities: fromEntities(msg.CaptionEntities),
		Media:           extractMedia(msg),
	}
}

// senderID is the user id, or the chat id for messages posted on behalf of
// a channel or an anonymous group admin.
func senderID(msg *models.Message) int64 {
	if msg.From != nil {
		return msg.From.ID
	}
	if msg.SenderChat != nil {
		return msg.SenderChat.ID
	}
	return 0
}

// extractMedia returns the single attachment of a message, if any. An
// animation also carries a document, so it is checked first.
func extractMedia(msg *models.Message) *messageDomain.Media {
	switch {
	case len(msg.Photo) > 0:
		photo := msg.Photo[len(msg.Photo)-1]
		return &messageDomain.Media{Type: messageDomain.MediaTypePhoto, FileID: photo.FileID}
	case msg.Video != nil:
		return &messageDomain.Media{Type: messageDomain.MediaTypeVideo, FileID: msg.Video.FileID}
	case msg.Animation != nil:
		return &messageDomain.Media{Type: messageDomain.MediaTypeAnimation, FileID: msg.Animation.FileID}
	case msg.Document != nil:
		return &messageDomain.Media{Type: messageDomain.MediaTypeDocument, FileID: msg.Document.FileID}
	case msg.Audio != nil:
		return &messageDomain.Media{Type: messageDomain.MediaTypeAudio, FileID: msg.Audio.FileID}
	case msg.Voice != nil:
		return &messageDomain.Media{Type: messageDomain.MediaTypeVoice, FileID: msg.Voice.FileID}
	default:
		return nil
	}
}

func fromEntities(entities []models.MessageEntity) []messageDomain.Entity {
	if len(entities) == 0 {
		return nil
	}
	return lo.Map(entities, func(e models.MessageEntity, _ int) messageDomain.Entity {
		return messageDomain.Entity{
			Type:          string(e.Type),
			Offset:        e.Offset,
			Length:        e.Length,
			URL:           e.URL,
			Language:      e.Language,
			CustomEmojiID: e.CustomEmojiID,
		}
	})
}

func toEntities(entities []messageDomain.Entity) []models.MessageEntity {
	if len(entities) == 0 {
		return nil
	}
	return lo.Map(entities, func(e messageDomain.Entity, _ int) models.MessageEntity {
		return models.MessageEntity{
			Type:          models.MessageEntityType(e.Type),
			Offset:        e.Offset,
			Length:        e.Length,
			URL:           e.URL,
			Language:      e.Language,
			CustomEmojiID: e.CustomEmojiID,
		}
	})
}
