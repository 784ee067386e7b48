package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/francislub/busines-consultant-sub001/cache"
)

// setupRoutes mounts the public marketing surface, the authenticated client
// portal and the admin dashboard onto the router. Ownership checks beyond the
// admin gate live in the individual handlers.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, viewCache *cache.ViewCache) {
	r.Get("/api/health", handlers.healthHandler.getHealth())

	// Public marketing site. Reads go through the view cache; comment posting
	// attaches a principal when a session token is present so signed-in
	// authors are credited.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.optional)

		r.Post("/api/auth/register", handlers.authHandler.register())
		r.Post("/api/auth/login", handlers.authHandler.login())

		r.Group(func(r chi.Router) {
			r.Use(CacheViews(viewCache))

			r.Get("/api/articles", handlers.articleHandler.getAllArticles())
			r.Get("/api/article/{articleID}", handlers.articleHandler.getArticle())

			r.Get("/api/stories", handlers.storyHandler.getAllStories())
			r.Get("/api/story/{storyID}", handlers.storyHandler.getStory())

			r.Get("/api/team", handlers.teamHandler.getAllMembers())
			r.Get("/api/team/{memberID}", handlers.teamHandler.getMember())

			r.Get("/api/comments", handlers.commentHandler.getComments())
		})

		r.Post("/api/comment", handlers.commentHandler.createComment())
		r.Post("/api/contact", handlers.contactHandler.createContact())
	})

	// Client portal, any signed-in account
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Get("/api/auth/me", handlers.authHandler.me())
		r.Put("/api/user/{userID}", handlers.userHandler.updateUser())

		r.Put("/api/comment/{commentID}", handlers.commentHandler.updateComment())
		r.Delete("/api/comment/{commentID}", handlers.commentHandler.deleteComment())

		r.Get("/api/inquiries", handlers.inquiryHandler.getAllInquiries())
		r.Post("/api/inquiry", handlers.inquiryHandler.createInquiry())
		r.Get("/api/inquiry/{inquiryID}", handlers.inquiryHandler.getInquiry())
		r.Delete("/api/inquiry/{inquiryID}", handlers.inquiryHandler.deleteInquiry())

		r.Get("/api/consultations", handlers.consultationHandler.getAllConsultations())
		r.Post("/api/consultation", handlers.consultationHandler.createConsultation())
		r.Get("/api/consultation/{consultationID}", handlers.consultationHandler.getConsultation())
		r.Put("/api/consultation/{consultationID}", handlers.consultationHandler.updateConsultation())
		r.Delete("/api/consultation/{consultationID}", handlers.consultationHandler.deleteConsultation())

		r.Get("/api/messages", handlers.messageHandler.getAllMessages())
		r.Post("/api/message", handlers.messageHandler.createMessage())
		r.Put("/api/message/{messageID}/read", handlers.messageHandler.markMessageRead())
		r.Delete("/api/message/{messageID}", handlers.messageHandler.deleteMessage())

		r.Get("/api/client/dashboard", handlers.dashboardHandler.getClientDashboard())
	})

	// Admin dashboard
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)
		r.Use(authMiddleware.requireAdmin)

		r.Post("/api/article", handlers.articleHandler.createArticle())
		r.Put("/api/article/{articleID}", handlers.articleHandler.updateArticle())
		r.Delete("/api/article/{articleID}", handlers.articleHandler.deleteArticle())

		r.Post("/api/story", handlers.storyHandler.createStory())
		r.Put("/api/story/{storyID}", handlers.storyHandler.updateStory())
		r.Delete("/api/story/{storyID}", handlers.storyHandler.deleteStory())

		r.Post("/api/team", handlers.teamHandler.createMember())
		r.Put("/api/team/{memberID}", handlers.teamHandler.updateMember())
		r.Delete("/api/team/{memberID}", handlers.teamHandler.deleteMember())

		r.Get("/api/contacts", handlers.contactHandler.getAllContacts())
		r.Get("/api/contact/{contactID}", handlers.contactHandler.getContact())
		r.Put("/api/contact/{contactID}/status", handlers.contactHandler.updateContactStatus())
		r.Delete("/api/contact/{contactID}", handlers.contactHandler.deleteContact())

		r.Put("/api/inquiry/{inquiryID}/status", handlers.inquiryHandler.updateInquiryStatus())

		r.Get("/api/users", handlers.userHandler.getAllUsers())
		r.Get("/api/user/{userID}", handlers.userHandler.getUser())
		r.Delete("/api/user/{userID}", handlers.userHandler.deleteUser())

		r.Get("/api/admin/dashboard", handlers.dashboardHandler.getAdminDashboard())

		r.Post("/api/uploads", handlers.uploadHandler.uploadImage())
	})
}
