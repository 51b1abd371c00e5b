package seed

import (
	"time"

	"github.com/khoahotran/portfolio-api/internal/domain/achievement"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/leadership"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func starterProjects() []*project.Project {
	liveURL := "https://khoahotran.dev"
	sourceURL := "https://github.com/khoahotran/portfolio-api"
	return []*project.Project{
		{
			Title:        "Portfolio API",
			Summary:      "Go backend powering this website",
			Description:  "REST API for portfolio content, media uploads and an AI assistant. Gin, PostgreSQL, Cloudinary and Gemini behind a hexagonal core.",
			Technologies: []string{"Go", "Gin", "PostgreSQL", "Redis", "Kafka"},
			LiveURL:      &liveURL,
			SourceURL:    &sourceURL,
			Featured:     true,
			Category:     project.CategoryWeb,
			TeamSize:     1,
			Duration:     "3 months",
			Achievements: []string{},
			Priority:     10,
		},
		{
			Title:        "Personal OS",
			Summary:      "Self-hosted knowledge base",
			Description:  "Notes, bookmarks and documents with full-text and semantic search over a single Postgres instance.",
			Technologies: []string{"Go", "PostgreSQL", "pgvector"},
			Category:     project.CategoryAI,
			TeamSize:     1,
			Duration:     "6 months",
			Achievements: []string{},
			DisplayOrder: 1,
			Priority:     5,
		},
	}
}

func starterExperience() []*experience.Experience {
	location := "Ho Chi Minh City, Vietnam"
	return []*experience.Experience{
		{
			Company:      "Lumen Pay",
			Position:     "Backend Engineer",
			StartDate:    date(2022, time.July, 1),
			Current:      true,
			Description:  "Payment reconciliation pipelines and internal settlement tooling.",
			Achievements: []string{"Cut nightly reconciliation from 4 hours to 20 minutes"},
			Technologies: []string{"Go", "PostgreSQL", "Kafka"},
			Location:     &location,
		},
		{
			Company:      "Skyline Cloud",
			Position:     "Software Engineering Intern",
			StartDate:    date(2021, time.June, 1),
			EndDate:      datePtr(2021, time.December, 31),
			Description:  "Internal CLI tooling for provisioning preview environments.",
			Achievements: []string{},
			Technologies: []string{"Go", "Terraform"},
			Location:     &location,
			DisplayOrder: 1,
		},
	}
}

func starterEducation() []*education.Education {
	gpa := 8.4
	return []*education.Education{
		{
			Institution:  "Ho Chi Minh City University of Technology",
			Degree:       "Bachelor of Engineering",
			Field:        "Computer Science",
			StartDate:    date(2018, time.September, 1),
			EndDate:      date(2022, time.June, 30),
			GPA:          &gpa,
			Description:  "Focused on distributed systems and databases.",
			Location:     "Ho Chi Minh City, Vietnam",
			Achievements: []string{"Dean's list 2020, 2021"},
		},
	}
}

func starterAchievements() []*achievement.Achievement {
	org := "Amazon Web Services"
	hackOrg := "National Innovation Hackathon"
	return []*achievement.Achievement{
		{
			Title:        "AWS Solutions Architect Associate",
			Description:  "Professional cloud architecture certification.",
			Category:     achievement.CategoryCertification,
			Date:         date(2023, time.March, 15),
			Organization: &org,
		},
		{
			Title:        "National Hackathon Finalist",
			Description:  "Top 10 of 400 teams with a real-time logistics tracker.",
			Category:     achievement.CategoryHackathon,
			Date:         date(2021, time.November, 20),
			Organization: &hackOrg,
			Participants: 400,
			Rank:         "Finalist",
			DisplayOrder: 1,
		},
	}
}

func starterLeadership() []*leadership.Leadership {
	return []*leadership.Leadership{
		{
			Role:          "Technical Lead",
			Organization:  "University Google Developer Student Club",
			StartDate:     date(2020, time.September, 1),
			EndDate:       datePtr(2022, time.June, 30),
			Description:   "Ran the backend study track and mentored project teams.",
			Contributions: []string{"Organized 12 workshops", "Mentored 5 student project teams"},
			TeamSize:      8,
			Impact:        "Grew the backend track from 15 to 60 active members",
			Skills:        []string{"Mentoring", "Public speaking"},
		},
	}
}

func starterSkillCategories() []*skill.Category {
	backendDesc := "Languages and services I build with daily"
	infraDesc := "Infrastructure and delivery"
	return []*skill.Category{
		{
			Name:        "Backend",
			Description: &backendDesc,
			Skills: []skill.Skill{
				{Name: "Go", Icon: "go", Color: "#00ADD8", Proficiency: 90, Years: 4},
				{Name: "PostgreSQL", Icon: "postgresql", Color: "#336791", Proficiency: 85, Years: 4},
				{Name: "Redis", Icon: "redis", Color: "#DC382D", Proficiency: 75, Years: 3},
				{Name: "Kafka", Icon: "kafka", Color: "#231F20", Proficiency: 70, Years: 2},
			},
		},
		{
			Name:        "Infrastructure",
			Description: &infraDesc,
			Skills: []skill.Skill{
				{Name: "Docker", Icon: "docker", Color: "#2496ED", Proficiency: 85, Years: 4},
				{Name: "Kubernetes", Icon: "kubernetes", Color: "#326CE5", Proficiency: 65, Years: 2},
			},
			DisplayOrder: 1,
		},
	}
}
