package domain

import (
	"testing"

	apperrors "github.com/reshetovitsme/approval-relay/internal/shared/errors"
	"github.com/stretchr/testify/require"
)

func TestParseChatRef(t *testing.T) {
	tests := []struct {
		in      string
		want    ChatRef
		wantErr bool
	}{
		{in: "-1003309759576", want: ChatRef{ID: -1003309759576}},
		{in: " 12345 ", want: ChatRef{ID: 12345}},
		{in: "@COACH_BETA_1", want: ChatRef{Username: "coach_beta_1"}},
		{in: "coach_beta_3", want: ChatRef{Username: "coach_beta_3"}},
		{in: "https://t.me/Coach_Beta_4/", want: ChatRef{Username: "coach_beta_4"}},
		{in: "", wantErr: true},
		{in: "@", wantErr: true},
		{in: "0", wantErr: true},
		{in: "two words", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChatRef(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, apperrors.ErrInvalidChatRef)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestChatRef_Value(t *testing.T) {
	req := require.New(t)

	req.Equal(int64(-100), ChatRef{ID: -100}.Value())
	req.Equal("@approvals", ChatRef{Username: "approvals"}.Value())
	req.Equal("-100", ChatRef{ID: -100}.String())
}

func TestSet_Contains(t *testing.T) {
	req := require.New(t)
	set, err := NewSet([]string{"@COACH_BETA_1", "-1001111111111", "@coach_beta_1"})
	req.NoError(err)
	req.Equal(2, set.Len())

	req.True(set.Contains(-1001111111111, ""))
	req.True(set.Contains(-1009999999999, "Coach_Beta_1"))
	req.True(set.Contains(-1009999999999, "@coach_beta_1"))
	req.False(set.Contains(-1009999999999, "coach_beta_2"))
	req.False(set.Contains(-1009999999999, ""))
}

func TestNewSet_RejectsInvalidReference(t *testing.T) {
	_, err := NewSet([]string{"@ok", "not valid"})
	require.ErrorIs(t, err, apperrors.ErrInvalidChatRef)
}
