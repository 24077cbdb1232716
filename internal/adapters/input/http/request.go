package http

import "talentscout/internal/domain"

type (
	// DetailsRequest struct - HTTP request DTO for the personal details form.
	// Presence of each field is checked by the domain so the reply can name the labels.
	DetailsRequest struct {
		FullName        string `json:"full_name" validate:"max=200"`
		Email           string `json:"email" validate:"max=320"`
		Phone           string `json:"phone" validate:"max=50"`
		Experience      int    `json:"experience" validate:"gte=0,lte=100"`
		DesiredPosition string `json:"desired_position" validate:"max=200"`
		Location        string `json:"location" validate:"max=200"`
	}

	// TechStackRequest struct - HTTP request DTO for the tech stack form
	TechStackRequest struct {
		TechStack []string `json:"tech_stack" validate:"dive,oneof=Python JavaScript Django React Node.js SQL Java HTML CSS"`
	}

	// AnswerRequest struct - HTTP request DTO for an interview answer
	AnswerRequest struct {
		Answer string `json:"answer" validate:"max=4000"`
	}
)

func (r DetailsRequest) toDomain(sessionID string) domain.DetailsRequest {
	return domain.DetailsRequest{
		SessionID: sessionID,
		Profile: domain.CandidateProfile{
			FullName:        r.FullName,
			Email:           r.Email,
			Phone:           r.Phone,
			Experience:      r.Experience,
			DesiredPosition: r.DesiredPosition,
			Location:        r.Location,
		},
	}
}

func (r TechStackRequest) toDomain(sessionID string) domain.TechStackRequest {
	stack := make([]domain.TechID, 0, len(r.TechStack))
	for _, t := range r.TechStack {
		stack = append(stack, domain.TechID(t))
	}
	return domain.TechStackRequest{SessionID: sessionID, TechStack: stack}
}
