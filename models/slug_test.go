package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Scaling Your Business in 2026", "scaling-your-business-in-2026"},
		{"  Leading   Through Change  ", "leading-through-change"},
		{"What's Next?", "what-s-next"},
		{"ALL CAPS TITLE", "all-caps-title"},
		{"---", ""},
		{"", ""},
		{"café & croissants", "caf-croissants"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "Slugify(%q)", tc.title)
	}
}

func TestCommentIsAuthoredBy(t *testing.T) {
	authorID := uuid.New()
	otherID := uuid.New()

	authored := Comment{AuthorID: &authorID}
	assert.True(t, authored.IsAuthoredBy(authorID))
	assert.False(t, authored.IsAuthoredBy(otherID))

	guest := Comment{}
	assert.False(t, guest.IsAuthoredBy(authorID))
}

func TestStatusValidators(t *testing.T) {
	assert.True(t, ValidContactStatus(ContactStatusInProgress))
	assert.False(t, ValidContactStatus("OPEN"))

	assert.True(t, ValidInquiryStatus(InquiryStatusResolved))
	assert.False(t, ValidInquiryStatus(""))

	assert.True(t, ValidConsultationStatus(ConsultationStatusCancelled))
	assert.False(t, ValidConsultationStatus("cancelled"))
}
