package domain

import (
	"time"
)

// PortfolioItem represents a portfolio entry shown on the public site
type PortfolioItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	ImageKey     string    `json:"-"` // object storage identifier, used for delete-on-replace
	Category     string    `json:"category"`
	Technologies []string  `json:"technologies"`
	Year         string    `json:"year"`
	Link         string    `json:"link,omitempty"`
	Featured     bool      `json:"featured"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Testimonial represents a client testimonial
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position,omitempty"`
	Company   string    `json:"company,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	ImageURL  string    `json:"image_url,omitempty"`
	ImageKey  string    `json:"-"`
	IsActive  bool      `json:"is_active"`
	Featured  bool      `json:"featured"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SocialLinks holds optional social links for a team member
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// TeamMember represents a team member profile
type TeamMember struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Position  string      `json:"position"`
	Bio       string      `json:"bio"`
	Email     string      `json:"email,omitempty"`
	ImageURL  string      `json:"image_url"`
	ImageKey  string      `json:"-"`
	Socials   SocialLinks `json:"socials"`
	IsActive  bool        `json:"is_active"`
	Order     int         `json:"order"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// SubscriptionStatus represents the lifecycle state of a subscription
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

// Subscription represents a plan subscription
type Subscription struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Plan      string             `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	StartDate time.Time          `json:"start_date"`
	EndDate   *time.Time         `json:"end_date,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ConsultationStatus represents the handling state of a consultation request
type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "pending"
	ConsultationContacted ConsultationStatus = "contacted"
	ConsultationClosed    ConsultationStatus = "closed"
)

// Consultation represents a consultation request from the public site
type Consultation struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone,omitempty"`
	Service   string             `json:"service"`
	Message   string             `json:"message"`
	Status    ConsultationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ContactStatus represents the handling state of a contact message
type ContactStatus string

const (
	ContactNew      ContactStatus = "new"
	ContactRead     ContactStatus = "read"
	ContactReplied  ContactStatus = "replied"
	ContactArchived ContactStatus = "archived"
)

// ContactMessage represents a message sent through the contact form
type ContactMessage struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
