package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo         *UserRepo
	articleRepo      *ArticleRepo
	storyRepo        *StoryRepo
	teamRepo         *TeamRepo
	commentRepo      *CommentRepo
	contactRepo      *ContactRepo
	inquiryRepo      *InquiryRepo
	consultationRepo *ConsultationRepo
	messageRepo      *MessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:         NewUserRepo(db),
		articleRepo:      NewArticleRepo(db),
		storyRepo:        NewStoryRepo(db),
		teamRepo:         NewTeamRepo(db),
		commentRepo:      NewCommentRepo(db),
		contactRepo:      NewContactRepo(db),
		inquiryRepo:      NewInquiryRepo(db),
		consultationRepo: NewConsultationRepo(db),
		messageRepo:      NewMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ArticleRepo() *ArticleRepo {
	return d.articleRepo
}

func (d Database) StoryRepo() *StoryRepo {
	return d.storyRepo
}

func (d Database) TeamRepo() *TeamRepo {
	return d.teamRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) InquiryRepo() *InquiryRepo {
	return d.inquiryRepo
}

func (d Database) ConsultationRepo() *ConsultationRepo {
	return d.consultationRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}
