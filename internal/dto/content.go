package dto

// CreatePortfolioRequest represents a portfolio item creation request.
// The image itself arrives as a multipart file alongside this form.
type CreatePortfolioRequest struct {
	Title        string   `form:"title" binding:"required,max=200"`
	Description  string   `form:"description" binding:"required"`
	Category     string   `form:"category" binding:"required"`
	Technologies []string `form:"technologies"`
	Year         string   `form:"year" binding:"required,len=4"`
	Link         string   `form:"link" binding:"omitempty,url"`
	Featured     bool     `form:"featured"`
}

// UpdatePortfolioRequest represents a portfolio item update request
type UpdatePortfolioRequest struct {
	Title        string   `form:"title" binding:"omitempty,max=200"`
	Description  string   `form:"description"`
	Category     string   `form:"category"`
	Technologies []string `form:"technologies"`
	Year         string   `form:"year" binding:"omitempty,len=4"`
	Link         string   `form:"link" binding:"omitempty,url"`
	Featured     *bool    `form:"featured"`
	IsActive     *bool    `form:"is_active"`
}

// CreateTestimonialRequest represents a testimonial creation request
type CreateTestimonialRequest struct {
	Name     string `form:"name" binding:"required,max=100"`
	Position string `form:"position"`
	Company  string `form:"company"`
	Content  string `form:"content" binding:"required"`
	Rating   int    `form:"rating" binding:"required,min=1,max=5"`
	Featured bool   `form:"featured"`
	Order    int    `form:"order"`
}

// UpdateTestimonialRequest represents a testimonial update request
type UpdateTestimonialRequest struct {
	Name     string `form:"name" binding:"omitempty,max=100"`
	Position string `form:"position"`
	Company  string `form:"company"`
	Content  string `form:"content"`
	Rating   *int   `form:"rating" binding:"omitempty,min=1,max=5"`
	Featured *bool  `form:"featured"`
	IsActive *bool  `form:"is_active"`
	Order    *int   `form:"order"`
}

// CreateTeamMemberRequest represents a team member creation request
type CreateTeamMemberRequest struct {
	Name      string `form:"name" binding:"required,max=100"`
	Position  string `form:"position" binding:"required,max=100"`
	Bio       string `form:"bio" binding:"required"`
	Email     string `form:"email" binding:"omitempty,email"`
	LinkedIn  string `form:"linkedin"`
	Twitter   string `form:"twitter"`
	GitHub    string `form:"github"`
	Portfolio string `form:"portfolio"`
	Order     int    `form:"order"`
}

// UpdateTeamMemberRequest represents a team member update request
type UpdateTeamMemberRequest struct {
	Name      string `form:"name" binding:"omitempty,max=100"`
	Position  string `form:"position" binding:"omitempty,max=100"`
	Bio       string `form:"bio"`
	Email     string `form:"email" binding:"omitempty,email"`
	LinkedIn  string `form:"linkedin"`
	Twitter   string `form:"twitter"`
	GitHub    string `form:"github"`
	Portfolio string `form:"portfolio"`
	IsActive  *bool  `form:"is_active"`
	Order     *int   `form:"order"`
}

// CreateSubscriptionRequest represents a subscription signup
type CreateSubscriptionRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email"`
	Plan  string `json:"plan" binding:"required,max=50"`
}

// UpdateSubscriptionStatusRequest updates a subscription's status
type UpdateSubscriptionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active cancelled expired"`
}

// CreateConsultationRequest represents a consultation request
type CreateConsultationRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,max=30"`
	Service string `json:"service" binding:"required,max=100"`
	Message string `json:"message" binding:"required,max=2000"`
}

// UpdateConsultationStatusRequest updates a consultation's status
type UpdateConsultationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending contacted closed"`
}

// CreateContactRequest represents a contact form submission
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=2000"`
}

// UpdateContactStatusRequest updates a contact message's status
type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read replied archived"`
}
