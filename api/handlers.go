package api

import (
	"time"

	"github.com/francislub/busines-consultant-sub001/cache"
	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(
	db database.Database,
	notifier *services.Notifier,
	imageStore *services.ImageStore,
	viewCache *cache.ViewCache,
	sessionSecret string,
	sessionTTL time.Duration,
	localAuth bool,
	startupTime time.Time,
) *routeHandlers {
	return &routeHandlers{
		authHandler:         newAuthHandler(db.UserRepo(), sessionSecret, sessionTTL, localAuth),
		userHandler:         newUserHandler(db.UserRepo()),
		articleHandler:      newArticleHandler(db.ArticleRepo(), viewCache),
		storyHandler:        newStoryHandler(db.StoryRepo(), viewCache),
		teamHandler:         newTeamHandler(db.TeamRepo(), viewCache),
		commentHandler:      newCommentHandler(db.CommentRepo(), viewCache),
		contactHandler:      newContactHandler(db.ContactRepo()),
		inquiryHandler:      newInquiryHandler(db.InquiryRepo()),
		consultationHandler: newConsultationHandler(db.ConsultationRepo(), notifier),
		messageHandler:      newMessageHandler(db.MessageRepo()),
		dashboardHandler:    newDashboardHandler(db),
		uploadHandler:       newUploadHandler(imageStore),
		healthHandler:       newHealthHandler(db.UserRepo().GetDB(), startupTime),
	}
}
