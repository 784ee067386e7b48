package api

import (
	"fmt"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/errs"
	"github.com/francislub/busines-consultant-sub001/models"
)

type dashboardHandler struct {
	responder        Responder
	logger           zerolog.Logger
	userRepo         *database.UserRepo
	articleRepo      *database.ArticleRepo
	storyRepo        *database.StoryRepo
	commentRepo      *database.CommentRepo
	contactRepo      *database.ContactRepo
	inquiryRepo      *database.InquiryRepo
	consultationRepo *database.ConsultationRepo
	messageRepo      *database.MessageRepo
}

func newDashboardHandler(db database.Database) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		userRepo:         db.UserRepo(),
		articleRepo:      db.ArticleRepo(),
		storyRepo:        db.StoryRepo(),
		commentRepo:      db.CommentRepo(),
		contactRepo:      db.ContactRepo(),
		inquiryRepo:      db.InquiryRepo(),
		consultationRepo: db.ConsultationRepo(),
		messageRepo:      db.MessageRepo(),
	}
}

// calculateGrowth returns the percentage change from previous to current,
// rounded to the nearest integer. A previous count of zero reads as 100%
// growth whenever anything arrived at all, and 0% when nothing did.
func calculateGrowth(current, previous int64) int {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

// timeRangeWindow resolves a timeRange query value to the span of one
// reporting window and the bucketing used for the time series.
func timeRangeWindow(timeRange string, now time.Time) (span time.Duration, buckets int, byMonth bool, err error) {
	switch timeRange {
	case "", "week":
		return 7 * 24 * time.Hour, 7, false, nil
	case "month":
		return 30 * 24 * time.Hour, 30, false, nil
	case "year":
		return now.Sub(now.AddDate(-1, 0, 0)), 12, true, nil
	}
	return 0, 0, false, errs.NewValidationError(
		errs.InvalidField("timeRange", "must be one of week, month, year"),
	)
}

// SeriesPoint is one bucket of a dashboard time series
type SeriesPoint struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// ActivityItem is one entry in the recent-activity feed, tagged with the
// entity it came from
type ActivityItem struct {
	Type      string    `json:"type"`
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// EntityStat pairs a total with its growth against the previous window
type EntityStat struct {
	Total  int64 `json:"total"`
	Growth int   `json:"growth"`
}

// AdminDashboard aggregates the firm-wide numbers shown on the admin home page
type AdminDashboard struct {
	Users          EntityStat               `json:"users"`
	Contacts       EntityStat               `json:"contacts"`
	Inquiries      EntityStat               `json:"inquiries"`
	Consultations  EntityStat               `json:"consultations"`
	Messages       EntityStat               `json:"messages"`
	Articles       int64                    `json:"articles"`
	Stories        int64                    `json:"stories"`
	UnreadMessages int64                    `json:"unreadMessages"`
	NewContacts    int64                    `json:"newContacts"`
	Series         map[string][]SeriesPoint `json:"series"`
	RecentActivity []ActivityItem           `json:"recentActivity"`
}

// countRange is the slice of Repo[T] the dashboard needs for growth and series math
type countRange interface {
	Count() (int64, error)
	CountCreatedBetween(from, to time.Time) (int64, error)
}

func entityStat(repo countRange, from, to time.Time) (EntityStat, error) {
	span := to.Sub(from)

	total, err := repo.Count()
	if err != nil {
		return EntityStat{}, err
	}
	current, err := repo.CountCreatedBetween(from, to)
	if err != nil {
		return EntityStat{}, err
	}
	previous, err := repo.CountCreatedBetween(from.Add(-span), from)
	if err != nil {
		return EntityStat{}, err
	}

	return EntityStat{Total: total, Growth: calculateGrowth(current, previous)}, nil
}

// timeSeries counts rows per bucket over the window ending at to
func timeSeries(repo countRange, to time.Time, buckets int, byMonth bool) ([]SeriesPoint, error) {
	points := make([]SeriesPoint, 0, buckets)

	for i := buckets - 1; i >= 0; i-- {
		var from, until time.Time
		var label string
		if byMonth {
			monthStart := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, to.Location())
			from = monthStart.AddDate(0, -i, 0)
			until = from.AddDate(0, 1, 0)
			label = from.Format("Jan 2006")
		} else {
			dayStart := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
			from = dayStart.AddDate(0, 0, -i)
			until = from.AddDate(0, 0, 1)
			label = from.Format("2006-01-02")
		}

		count, err := repo.CountCreatedBetween(from, until)
		if err != nil {
			return nil, err
		}
		points = append(points, SeriesPoint{Label: label, Count: count})
	}

	return points, nil
}

// mergeActivity interleaves per-entity feeds newest first and caps the result
func mergeActivity(limit int, feeds ...[]ActivityItem) []ActivityItem {
	var merged []ActivityItem
	for _, feed := range feeds {
		merged = append(merged, feed...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

func articleActivity(articles []*models.Article) []ActivityItem {
	items := make([]ActivityItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, ActivityItem{
			Type:      "article",
			ID:        a.ID,
			Title:     a.Title,
			Status:    a.Category,
			CreatedAt: a.CreatedAt,
		})
	}
	return items
}

func storyActivity(stories []*models.Story) []ActivityItem {
	items := make([]ActivityItem, 0, len(stories))
	for _, s := range stories {
		items = append(items, ActivityItem{
			Type:      "story",
			ID:        s.ID,
			Title:     s.Title,
			Status:    s.Category,
			CreatedAt: s.CreatedAt,
		})
	}
	return items
}

func commentActivity(comments []*models.Comment) []ActivityItem {
	items := make([]ActivityItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, ActivityItem{
			Type:      "comment",
			ID:        c.ID,
			Title:     c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return items
}

func contactActivity(contacts []*models.Contact) []ActivityItem {
	items := make([]ActivityItem, 0, len(contacts))
	for _, c := range contacts {
		items = append(items, ActivityItem{
			Type:      "contact",
			ID:        c.ID,
			Title:     fmt.Sprintf("%s %s", c.FirstName, c.LastName),
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
		})
	}
	return items
}

func inquiryActivity(inquiries []*models.Inquiry) []ActivityItem {
	items := make([]ActivityItem, 0, len(inquiries))
	for _, q := range inquiries {
		items = append(items, ActivityItem{
			Type:      "inquiry",
			ID:        q.ID,
			Title:     q.Subject,
			Status:    q.Status,
			CreatedAt: q.CreatedAt,
		})
	}
	return items
}

func consultationActivity(consultations []*models.Consultation) []ActivityItem {
	items := make([]ActivityItem, 0, len(consultations))
	for _, c := range consultations {
		items = append(items, ActivityItem{
			Type:      "consultation",
			ID:        c.ID,
			Title:     c.Subject,
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
		})
	}
	return items
}

func messageActivity(messages []*models.Message) []ActivityItem {
	items := make([]ActivityItem, 0, len(messages))
	for _, m := range messages {
		status := "UNREAD"
		if m.IsRead {
			status = "READ"
		}
		items = append(items, ActivityItem{
			Type:      "message",
			ID:        m.ID,
			Title:     m.Content,
			Status:    status,
			CreatedAt: m.CreatedAt,
		})
	}
	return items
}

// getAdminDashboard fans the aggregate queries out concurrently and assembles
// the firm-wide dashboard. timeRange selects the reporting window: week (7
// daily buckets), month (30 daily buckets) or year (12 monthly buckets).
func (h dashboardHandler) getAdminDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		span, buckets, byMonth, err := timeRangeWindow(r.URL.Query().Get("timeRange"), now)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		from := now.Add(-span)

		var dashboard AdminDashboard
		var contactSeries, inquirySeries, consultationSeries []SeriesPoint

		group, _ := errgroup.WithContext(r.Context())

		group.Go(func() (err error) {
			dashboard.Users, err = entityStat(h.userRepo, from, now)
			return err
		})
		group.Go(func() (err error) {
			dashboard.Contacts, err = entityStat(h.contactRepo, from, now)
			return err
		})
		group.Go(func() (err error) {
			dashboard.Inquiries, err = entityStat(h.inquiryRepo, from, now)
			return err
		})
		group.Go(func() (err error) {
			dashboard.Consultations, err = entityStat(h.consultationRepo, from, now)
			return err
		})
		group.Go(func() (err error) {
			dashboard.Messages, err = entityStat(h.messageRepo, from, now)
			return err
		})
		group.Go(func() (err error) {
			dashboard.Articles, err = h.articleRepo.Count()
			return err
		})
		group.Go(func() (err error) {
			dashboard.Stories, err = h.storyRepo.Count()
			return err
		})
		group.Go(func() (err error) {
			dashboard.UnreadMessages, err = h.messageRepo.CountUnread()
			return err
		})
		group.Go(func() (err error) {
			dashboard.NewContacts, err = h.contactRepo.CountByStatus(models.ContactStatusNew)
			return err
		})
		group.Go(func() (err error) {
			contactSeries, err = timeSeries(h.contactRepo, now, buckets, byMonth)
			return err
		})
		group.Go(func() (err error) {
			inquirySeries, err = timeSeries(h.inquiryRepo, now, buckets, byMonth)
			return err
		})
		group.Go(func() (err error) {
			consultationSeries, err = timeSeries(h.consultationRepo, now, buckets, byMonth)
			return err
		})

		var articles []*models.Article
		var stories []*models.Story
		var comments []*models.Comment
		var contacts []*models.Contact
		var consultations []*models.Consultation
		group.Go(func() (err error) {
			articles, err = h.articleRepo.Recent(10)
			return err
		})
		group.Go(func() (err error) {
			stories, err = h.storyRepo.Recent(10)
			return err
		})
		group.Go(func() (err error) {
			comments, err = h.commentRepo.Recent(10)
			return err
		})
		group.Go(func() (err error) {
			contacts, err = h.contactRepo.Recent(10)
			return err
		})
		group.Go(func() (err error) {
			consultations, err = h.consultationRepo.Recent(10)
			return err
		})

		if err := group.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate", "dashboard", err))
			return
		}

		dashboard.Series = map[string][]SeriesPoint{
			"contacts":      contactSeries,
			"inquiries":     inquirySeries,
			"consultations": consultationSeries,
		}
		dashboard.RecentActivity = mergeActivity(10,
			articleActivity(articles),
			storyActivity(stories),
			commentActivity(comments),
			contactActivity(contacts),
			consultationActivity(consultations),
		)

		h.responder.WriteJSON(w, dashboard)
	}
}

// ClientDashboard aggregates a single client's portal numbers
type ClientDashboard struct {
	Inquiries        int64          `json:"inquiries"`
	PendingInquiries int64          `json:"pendingInquiries"`
	Consultations    int64          `json:"consultations"`
	Messages         int64          `json:"messages"`
	RecentActivity   []ActivityItem `json:"recentActivity"`
}

func (h dashboardHandler) getClientDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		var dashboard ClientDashboard
		var inquiries []*models.Inquiry
		var consultations []*models.Consultation
		var messages []*models.Message

		group, _ := errgroup.WithContext(r.Context())

		group.Go(func() (err error) {
			dashboard.Inquiries, err = h.inquiryRepo.CountByUser(principal.UserID)
			return err
		})
		group.Go(func() (err error) {
			dashboard.PendingInquiries, err = h.inquiryRepo.CountByUserAndStatus(principal.UserID, models.InquiryStatusPending)
			return err
		})
		group.Go(func() (err error) {
			dashboard.Consultations, err = h.consultationRepo.CountByClient(principal.UserID)
			return err
		})
		group.Go(func() (err error) {
			dashboard.Messages, err = h.messageRepo.CountBySender(principal.UserID)
			return err
		})
		group.Go(func() (err error) {
			inquiries, err = h.inquiryRepo.FindByUser(principal.UserID)
			return err
		})
		group.Go(func() (err error) {
			consultations, err = h.consultationRepo.FindByClient(principal.UserID)
			return err
		})
		group.Go(func() (err error) {
			messages, err = h.messageRepo.FindBySender(principal.UserID)
			return err
		})

		if err := group.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate", "dashboard", err))
			return
		}

		dashboard.RecentActivity = mergeActivity(5,
			inquiryActivity(inquiries),
			consultationActivity(consultations),
			messageActivity(messages),
		)

		h.responder.WriteJSON(w, dashboard)
	}
}
