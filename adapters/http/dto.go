package http

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/khoahotran/portfolio-api/internal/domain/account"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/leadership"
	"github.com/khoahotran/portfolio-api/pkg/validation"
)

const wireDateLayout = "2006-01-02"

// StringList tolerates both a JSON array and a single comma-joined string,
// which is how the old frontend submitted list fields.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	if strings.TrimSpace(joined) == "" {
		*l = []string{}
		return nil
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	*l = out
	return nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(wireDateLayout, s)
}

// parseDatePtr maps an absent field to nil and an empty string to nil as well;
// callers that distinguish "clear" from "absent" check the raw pointer first.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// --- auth ---

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

var registerLabels = validation.Labels{
	"Username": "Username",
	"Email":    "Email",
	"Password": "Password",
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

var loginLabels = validation.Labels{
	"Username": "Username",
	"Password": "Password",
}

type AccountDTO struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toAccountDTO(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:          a.ID.String(),
		Username:    a.Username,
		Email:       a.Email,
		Role:        a.Role,
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
	}
}

// --- hero ---

type SocialLinksRequest struct {
	GitHub   string `json:"github" binding:"omitempty,startswith=http"`
	LinkedIn string `json:"linkedin" binding:"omitempty,startswith=http"`
	Twitter  string `json:"twitter" binding:"omitempty,startswith=http"`
	Website  string `json:"website" binding:"omitempty,startswith=http"`
}

type UpsertHeroRequest struct {
	Name      string             `json:"name" binding:"required,max=100"`
	Title     string             `json:"title" binding:"required,max=150"`
	Summary   string             `json:"summary" binding:"required,max=2000"`
	Email     string             `json:"email" binding:"required,email"`
	Phone     *string            `json:"phone"`
	Location  *string            `json:"location"`
	Socials   SocialLinksRequest `json:"socials"`
	ImageURL  *string            `json:"image_url" binding:"omitempty,startswith=http"`
	ResumeURL *string            `json:"resume_url" binding:"omitempty,startswith=http"`
}

var heroLabels = validation.Labels{
	"Name":      "Name",
	"Title":     "Title",
	"Summary":   "Summary",
	"Email":     "Email",
	"ImageURL":  "Image URL",
	"ResumeURL": "Resume URL",
	"GitHub":    "GitHub link",
	"LinkedIn":  "LinkedIn link",
	"Twitter":   "Twitter link",
	"Website":   "Website link",
}

// --- project ---

type CreateProjectRequest struct {
	Title        string     `json:"title" binding:"required,max=200"`
	Summary      string     `json:"summary" binding:"required,max=300"`
	Description  string     `json:"description" binding:"required"`
	Technologies StringList `json:"technologies"`
	ImageURL     *string    `json:"image_url" binding:"omitempty,startswith=http"`
	LiveURL      *string    `json:"live_url" binding:"omitempty,startswith=http"`
	SourceURL    *string    `json:"source_url" binding:"omitempty,startswith=http"`
	Featured     bool       `json:"featured"`
	DisplayOrder int        `json:"display_order" binding:"gte=0"`
	Category     string     `json:"category" binding:"required,oneof=web mobile ai blockchain devops other"`
	TeamSize     int        `json:"team_size" binding:"gte=0"`
	Duration     string     `json:"duration" binding:"max=50"`
	Achievements StringList `json:"achievements"`
	Priority     int        `json:"priority" binding:"gte=0"`
}

type UpdateProjectRequest struct {
	Title        *string    `json:"title" binding:"omitempty,max=200"`
	Summary      *string    `json:"summary" binding:"omitempty,max=300"`
	Description  *string    `json:"description"`
	Technologies StringList `json:"technologies"`
	ImageURL     *string    `json:"image_url" binding:"omitempty,startswith=http"`
	LiveURL      *string    `json:"live_url" binding:"omitempty,startswith=http"`
	SourceURL    *string    `json:"source_url" binding:"omitempty,startswith=http"`
	Featured     *bool      `json:"featured"`
	DisplayOrder *int       `json:"display_order" binding:"omitempty,gte=0"`
	Category     *string    `json:"category" binding:"omitempty,oneof=web mobile ai blockchain devops other"`
	TeamSize     *int       `json:"team_size" binding:"omitempty,gte=0"`
	Duration     *string    `json:"duration" binding:"omitempty,max=50"`
	Achievements StringList `json:"achievements"`
	IsActive     *bool      `json:"is_active"`
	Priority     *int       `json:"priority" binding:"omitempty,gte=0"`
}

var projectLabels = validation.Labels{
	"Title":        "Project title",
	"Summary":      "Project summary",
	"Description":  "Project description",
	"Category":     "Project category",
	"ImageURL":     "Image URL",
	"LiveURL":      "Live URL",
	"SourceURL":    "Source URL",
	"DisplayOrder": "Display order",
	"TeamSize":     "Team size",
	"Duration":     "Duration",
	"Priority":     "Priority",
}

// --- experience ---

type CreateExperienceRequest struct {
	Company      string     `json:"company" binding:"required,max=150"`
	Position     string     `json:"position" binding:"required,max=150"`
	StartDate    string     `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate      *string    `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
	Achievements StringList `json:"achievements"`
	Technologies StringList `json:"technologies"`
	Location     *string    `json:"location"`
	DisplayOrder int        `json:"display_order" binding:"gte=0"`
}

type UpdateExperienceRequest struct {
	Company      *string    `json:"company" binding:"omitempty,max=150"`
	Position     *string    `json:"position" binding:"omitempty,max=150"`
	StartDate    *string    `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate      *string    `json:"end_date" binding:"omitempty"`
	Current      *bool      `json:"current"`
	Description  *string    `json:"description"`
	Achievements StringList `json:"achievements"`
	Technologies StringList `json:"technologies"`
	Location     *string    `json:"location"`
	DisplayOrder *int       `json:"display_order" binding:"omitempty,gte=0"`
	IsActive     *bool      `json:"is_active"`
}

var experienceLabels = validation.Labels{
	"Company":      "Company",
	"Position":     "Position",
	"StartDate":    "Start date",
	"EndDate":      "End date",
	"DisplayOrder": "Display order",
}

type ExperienceDTO struct {
	*experience.Experience
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date"`
	DurationDays int     `json:"duration_days"`
}

func toExperienceDTO(e *experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		Experience:   e,
		StartDate:    e.StartDate.Format(wireDateLayout),
		EndDate:      formatDatePtr(e.EndDate),
		DurationDays: e.DurationDays(time.Now().UTC()),
	}
}

// --- education ---

type CreateEducationRequest struct {
	Institution  string     `json:"institution" binding:"required,max=200"`
	Degree       string     `json:"degree" binding:"required,max=150"`
	Field        string     `json:"field" binding:"required,max=150"`
	StartDate    string     `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate      string     `json:"end_date" binding:"required,datetime=2006-01-02"`
	GPA          *float64   `json:"gpa" binding:"omitempty,gte=0,lte=10"`
	Percentage   *float64   `json:"percentage" binding:"omitempty,gte=0,lte=100"`
	Description  string     `json:"description"`
	Location     string     `json:"location" binding:"max=150"`
	Achievements StringList `json:"achievements"`
	DisplayOrder int        `json:"display_order" binding:"gte=0"`
}

type UpdateEducationRequest struct {
	Institution  *string    `json:"institution" binding:"omitempty,max=200"`
	Degree       *string    `json:"degree" binding:"omitempty,max=150"`
	Field        *string    `json:"field" binding:"omitempty,max=150"`
	StartDate    *string    `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate      *string    `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	GPA          *float64   `json:"gpa" binding:"omitempty,gte=0,lte=10"`
	Percentage   *float64   `json:"percentage" binding:"omitempty,gte=0,lte=100"`
	Description  *string    `json:"description"`
	Location     *string    `json:"location" binding:"omitempty,max=150"`
	Achievements StringList `json:"achievements"`
	DisplayOrder *int       `json:"display_order" binding:"omitempty,gte=0"`
	IsActive     *bool      `json:"is_active"`
}

var educationLabels = validation.Labels{
	"Institution": "Institution",
	"Degree":      "Degree",
	"Field":       "Field of study",
	"StartDate":   "Start date",
	"EndDate":     "End date",
	"GPA":         "GPA",
	"Percentage":  "Percentage",
	"Location":    "Location",
}

type EducationDTO struct {
	*education.Education
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DurationYears float64 `json:"duration_years"`
}

func toEducationDTO(e *education.Education) EducationDTO {
	return EducationDTO{
		Education:     e,
		StartDate:     e.StartDate.Format(wireDateLayout),
		EndDate:       e.EndDate.Format(wireDateLayout),
		DurationYears: math.Round(e.DurationYears()*10) / 10,
	}
}

// --- achievement ---

type PrizeRequest struct {
	Amount      float64 `json:"amount" binding:"gte=0"`
	Currency    string  `json:"currency" binding:"max=10"`
	Description string  `json:"description" binding:"max=300"`
}

type CreateAchievementRequest struct {
	Title        string        `json:"title" binding:"required,max=200"`
	Description  string        `json:"description"`
	Category     string        `json:"category" binding:"required,oneof=academic hackathon competition certification publication leadership other"`
	Date         string        `json:"date" binding:"required,datetime=2006-01-02"`
	Organization *string       `json:"organization" binding:"omitempty,max=200"`
	Participants int           `json:"participants" binding:"gte=0"`
	Rank         string        `json:"rank" binding:"max=50"`
	Prize        *PrizeRequest `json:"prize"`
	DisplayOrder int           `json:"display_order" binding:"gte=0"`
}

type UpdateAchievementRequest struct {
	Title        *string       `json:"title" binding:"omitempty,max=200"`
	Description  *string       `json:"description"`
	Category     *string       `json:"category" binding:"omitempty,oneof=academic hackathon competition certification publication leadership other"`
	Date         *string       `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Organization *string       `json:"organization" binding:"omitempty,max=200"`
	Participants *int          `json:"participants" binding:"omitempty,gte=0"`
	Rank         *string       `json:"rank" binding:"omitempty,max=50"`
	Prize        *PrizeRequest `json:"prize"`
	DisplayOrder *int          `json:"display_order" binding:"omitempty,gte=0"`
	IsActive     *bool         `json:"is_active"`
}

var achievementLabels = validation.Labels{
	"Title":        "Title",
	"Category":     "Category",
	"Date":         "Date",
	"Organization": "Organization",
	"Participants": "Participants",
	"Rank":         "Rank",
	"Amount":       "Prize amount",
	"Currency":     "Prize currency",
}

// --- leadership ---

type CreateLeadershipRequest struct {
	Role          string     `json:"role" binding:"required,max=150"`
	Organization  string     `json:"organization" binding:"required,max=200"`
	StartDate     string     `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       *string    `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Current       bool       `json:"current"`
	Description   string     `json:"description"`
	Contributions StringList `json:"contributions"`
	TeamSize      int        `json:"team_size" binding:"gte=0"`
	Impact        string     `json:"impact" binding:"max=500"`
	Skills        StringList `json:"skills"`
	DisplayOrder  int        `json:"display_order" binding:"gte=0"`
}

type UpdateLeadershipRequest struct {
	Role          *string    `json:"role" binding:"omitempty,max=150"`
	Organization  *string    `json:"organization" binding:"omitempty,max=200"`
	StartDate     *string    `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string    `json:"end_date" binding:"omitempty"`
	Current       *bool      `json:"current"`
	Description   *string    `json:"description"`
	Contributions StringList `json:"contributions"`
	TeamSize      *int       `json:"team_size" binding:"omitempty,gte=0"`
	Impact        *string    `json:"impact" binding:"omitempty,max=500"`
	Skills        StringList `json:"skills"`
	DisplayOrder  *int       `json:"display_order" binding:"omitempty,gte=0"`
	IsActive      *bool      `json:"is_active"`
}

var leadershipLabels = validation.Labels{
	"Role":         "Role",
	"Organization": "Organization",
	"StartDate":    "Start date",
	"EndDate":      "End date",
	"TeamSize":     "Team size",
	"Impact":       "Impact",
}

type LeadershipDTO struct {
	*leadership.Leadership
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date"`
	DurationDays int     `json:"duration_days"`
}

func toLeadershipDTO(l *leadership.Leadership) LeadershipDTO {
	return LeadershipDTO{
		Leadership:   l,
		StartDate:    l.StartDate.Format(wireDateLayout),
		EndDate:      formatDatePtr(l.EndDate),
		DurationDays: l.DurationDays(time.Now().UTC()),
	}
}

// --- skills ---

type SkillItemRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Icon        string  `json:"icon" binding:"max=50"`
	Color       string  `json:"color" binding:"max=20"`
	Proficiency int     `json:"proficiency" binding:"gte=0,lte=100"`
	Years       float64 `json:"years" binding:"gte=0"`
	IsActive    *bool   `json:"is_active"`
}

type CreateSkillCategoryRequest struct {
	Name         string             `json:"name" binding:"required,max=100"`
	Description  *string            `json:"description" binding:"omitempty,max=300"`
	Skills       []SkillItemRequest `json:"skills" binding:"dive"`
	DisplayOrder int                `json:"display_order" binding:"gte=0"`
}

type UpdateSkillCategoryRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Description  *string `json:"description" binding:"omitempty,max=300"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,gte=0"`
	IsActive     *bool   `json:"is_active"`
}

var skillLabels = validation.Labels{
	"Name":         "Name",
	"Description":  "Description",
	"Proficiency":  "Proficiency",
	"Years":        "Years of experience",
	"DisplayOrder": "Display order",
}

// --- chatbot ---

type ChatTurnRequest struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type ChatQueryRequest struct {
	Message string            `json:"message"`
	History []ChatTurnRequest `json:"history" binding:"omitempty,dive"`
}

var chatLabels = validation.Labels{
	"Message": "Message",
	"Role":    "Turn role",
	"Content": "Turn content",
	"Rating":  "Rating",
}

type ChatQueryResponse struct {
	Response string `json:"response"`
	Model    string `json:"model"`
}

type ChatFeedbackRequest struct {
	Message string `json:"message" binding:"required"`
	Rating  int    `json:"rating" binding:"gte=0,lte=5"`
}

// --- upload ---

type TransformRequest struct {
	PublicID string `json:"public_id" binding:"required"`
	Width    int    `json:"width" binding:"gte=0,lte=4000"`
	Height   int    `json:"height" binding:"gte=0,lte=4000"`
	Crop     string `json:"crop" binding:"omitempty,oneof=fill fit scale crop thumb"`
	Quality  string `json:"quality" binding:"omitempty,max=10"`
}

var transformLabels = validation.Labels{
	"PublicID": "Public ID",
	"Width":    "Width",
	"Height":   "Height",
	"Crop":     "Crop mode",
	"Quality":  "Quality",
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(wireDateLayout)
	return &s
}
