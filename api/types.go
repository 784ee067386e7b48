package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler         authHandler
	userHandler         userHandler
	articleHandler      articleHandler
	storyHandler        storyHandler
	teamHandler         teamHandler
	commentHandler      commentHandler
	contactHandler      contactHandler
	inquiryHandler      inquiryHandler
	consultationHandler consultationHandler
	messageHandler      messageHandler
	dashboardHandler    dashboardHandler
	uploadHandler       uploadHandler
	healthHandler       healthHandler
}
