package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a visitor or client comment attached to exactly one of an
// article or a story. Signed-in commenters are linked through AuthorID; anonymous
// visitors leave a guest identity instead.
type Comment struct {
	ID             uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Content        string     `json:"content" db:"content" gorm:"type:text;not null"`
	AuthorID       *uuid.UUID `json:"authorId,omitempty" db:"author_id" gorm:"type:uuid"`
	Author         *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	GuestFirstName *string    `json:"guestFirstName,omitempty" db:"guest_first_name" gorm:"type:text"`
	GuestLastName  *string    `json:"guestLastName,omitempty" db:"guest_last_name" gorm:"type:text"`
	GuestEmail     *string    `json:"guestEmail,omitempty" db:"guest_email" gorm:"type:text"`
	ArticleID      *uuid.UUID `json:"articleId,omitempty" db:"article_id" gorm:"type:uuid"`
	StoryID        *uuid.UUID `json:"storyId,omitempty" db:"story_id" gorm:"type:uuid"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at" gorm:"type:timestamp"`
}

// IsAuthoredBy reports whether the comment belongs to the given user.
func (c Comment) IsAuthoredBy(userID uuid.UUID) bool {
	return c.AuthorID != nil && *c.AuthorID == userID
}
