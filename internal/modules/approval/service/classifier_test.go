package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var defaultKeywords = []string{
	"Approved",
	"Approved ✅",
	"Status – Approved",
	"Status - Approved",
}

func TestClassifier_IsApproved(t *testing.T) {
	req := require.New(t)
	classifier, err := NewClassifier(defaultKeywords)
	req.NoError(err)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "en dash status", text: "Status – Approved", want: true},
		{name: "status with emoji", text: "Status – Approved ✅", want: true},
		{name: "uppercase", text: "PAYMENT APPROVED", want: true},
		{name: "lowercase inside sentence", text: "your request was approved today", want: true},
		{name: "negation still matches", text: "Not Approved", want: true},
		{name: "glued to other word", text: "preapprovedlist", want: true},
		{name: "no keyword", text: "Processing", want: false},
		{name: "partial keyword", text: "Approv", want: false},
		{name: "empty", text: "", want: false},
		{name: "emoji only", text: "✅", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, classifier.IsApproved(tt.text))
		})
	}
}

func TestClassifier_MultipleDistinctKeywords(t *testing.T) {
	req := require.New(t)
	classifier, err := NewClassifier([]string{"Ship It", "go live"})
	req.NoError(err)

	req.True(classifier.IsApproved("we can SHIP IT now"))
	req.True(classifier.IsApproved("ready to Go Live"))
	req.False(classifier.IsApproved("ship later, go home"))

	keyword, ok := classifier.Match("GO LIVE")
	req.True(ok)
	req.Equal("go live", keyword)
}

func TestClassifier_NonLatinKeywords(t *testing.T) {
	req := require.New(t)
	classifier, err := NewClassifier([]string{"Одобрено"})
	req.NoError(err)

	req.True(classifier.IsApproved("Статус: ОДОБРЕНО"))
	req.False(classifier.IsApproved("Статус: отклонено"))
}

func TestClassifier_BlankKeywords(t *testing.T) {
	req := require.New(t)
	classifier, err := NewClassifier([]string{"", "  "})
	req.NoError(err)

	req.Empty(classifier.Keywords())
	req.False(classifier.IsApproved("Approved"))
}

func TestClassifier_NormalizesKeywords(t *testing.T) {
	req := require.New(t)
	classifier, err := NewClassifier([]string{" Approved ", "APPROVED", "approved"})
	req.NoError(err)

	req.Equal([]string{"approved"}, classifier.Keywords())
}
