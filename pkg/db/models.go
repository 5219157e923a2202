package db

import (
	"time"
)

type AdminUser struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"` // bcrypt hash, never serialized
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type Project struct {
	ID           int64      `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description"`
	Technologies StringList `db:"technologies" json:"technologies"`
	GithubLink   string     `db:"github_link" json:"github_link"`
	LiveLink     string     `db:"live_link" json:"live_link"`
	YoutubeLink  string     `db:"youtube_link" json:"youtube_link"`
	ImageURLs    StringList `db:"image_urls" json:"image_urls"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// About is the singleton biography section.
type About struct {
	ID          int64       `db:"id" json:"id"`
	FullName    string      `db:"full_name" json:"fullName"`
	Title       string      `db:"title" json:"title"`
	Specialties StringList  `db:"specialties" json:"specialties"`
	Content     string      `db:"content" json:"content"`
	PhotoURL    string      `db:"photo_url" json:"photo_url"`
	Skills      SkillLevels `db:"skills" json:"skills"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// ContactInfo is the singleton public contact card.
type ContactInfo struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Address   string    `db:"address" json:"address"`
	Linkedin  string    `db:"linkedin" json:"linkedin"`
	Github    string    `db:"github" json:"github"`
	Twitter   string    `db:"twitter" json:"twitter"`
	Facebook  string    `db:"facebook" json:"facebook"`
	Instagram string    `db:"instagram" json:"instagram"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Intro is the singleton home page hero block.
type Intro struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Subtitle    string    `db:"subtitle" json:"subtitle"`
	Description string    `db:"description" json:"description"`
	ButtonText  string    `db:"button_text" json:"button_text"`
	ButtonLink  string    `db:"button_link" json:"button_link"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type Message struct {
	ID      int64     `db:"id" json:"id"`
	Name    string    `db:"name" json:"name"`
	Email   string    `db:"email" json:"email"`
	Message string    `db:"message" json:"message"`
	SentAt  time.Time `db:"sent_at" json:"sent_at"`
}

type Experience struct {
	ID          int64      `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Company     string     `db:"company" json:"company"`
	Location    string     `db:"location" json:"location"`
	StartDate   time.Time  `db:"start_date" json:"startDate"`
	EndDate     *time.Time `db:"end_date" json:"endDate"` // nil while Current is true
	Current     bool       `db:"is_current" json:"current"`
	Description string     `db:"description" json:"description"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

type Skill struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Category  string    `db:"category" json:"category"`
	Level     int       `db:"level" json:"level"`
	Order     int       `db:"sort_order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Skill defaults applied when a create request omits them.
const (
	DefaultSkillLevel = 80
	DefaultSkillOrder = 0
)

// DefaultAbout returns the row materialized on the first read of /about.
func DefaultAbout() About {
	return About{
		ID:          SingletonID,
		FullName:    "Not specified",
		Title:       "Fullstack Developer",
		Specialties: StringList{"Web & Mobile"},
		Content:     "Welcome to my portfolio. Edit this section to introduce yourself.",
		Skills: SkillLevels{
			{Name: "HTML/CSS", Level: 90},
			{Name: "JavaScript", Level: 85},
			{Name: "React", Level: 80},
			{Name: "Node.js", Level: 75},
		},
	}
}

// DefaultContactInfo returns the placeholder contact card.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		ID:       SingletonID,
		Email:    "contact@example.com",
		Phone:    "+33 6 12 34 56 78",
		Address:  "Paris, France",
		Linkedin: "https://linkedin.com/in/username",
		Github:   "https://github.com/username",
	}
}

// DefaultIntro returns the placeholder hero block.
func DefaultIntro() Intro {
	return Intro{
		ID:         SingletonID,
		Title:      "Welcome to my Portfolio",
		Subtitle:   "Fullstack developer passionate about building modern, performant web applications.",
		ButtonText: "Learn more",
		ButtonLink: "/about",
	}
}
