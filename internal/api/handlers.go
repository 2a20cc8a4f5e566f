package api

import (
	"time"

	"github.com/nordvik/inkwell/internal/db"
	"github.com/nordvik/inkwell/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories    *db.Repositories
	authService     *services.AuthService
	postService     *services.PostService
	workLogService  *services.WorkLogService
	settingsService *services.CycleSettingsService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
	}
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.postService = services.NewPostService(handler.repositories.Posts, handler.repositories.Categories)
	handler.workLogService = services.NewWorkLogService(handler.repositories.WorkLogs, location)
	handler.settingsService = services.NewCycleSettingsService(handler.repositories.CycleSettings, location)
	return handler
}

type credentialsInput struct {
	Email       string `json:"email" form:"email"`
	Password    string `json:"password" form:"password"`
	DisplayName string `json:"display_name" form:"display_name"`
	RememberMe  bool   `json:"remember_me" form:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
}

type postPayload struct {
	Title      string `json:"title" form:"title"`
	Body       string `json:"body" form:"body"`
	CoverImage string `json:"cover_image" form:"cover_image"`
	CategoryID *uint  `json:"category_id" form:"category_id"`
	Published  bool   `json:"published" form:"published"`
}

type categoryPayload struct {
	Name string `json:"name" form:"name"`
}

type entryPayload struct {
	Date          string `json:"date" form:"date"`
	ProjectCode   string `json:"project_code" form:"project_code"`
	Description   string `json:"description" form:"description"`
	ContactPerson string `json:"contact_person" form:"contact_person"`
	Duration      string `json:"duration" form:"duration"`
	LogTime       bool   `json:"log_time" form:"log_time"`
	IsLeaveDay    bool   `json:"is_leave_day" form:"is_leave_day"`
}

type cyclePayload struct {
	Month     int    `json:"month" form:"month"`
	Year      int    `json:"year" form:"year"`
	StartDate string `json:"start_date" form:"start_date"`
	EndDate   string `json:"end_date" form:"end_date"`
}
