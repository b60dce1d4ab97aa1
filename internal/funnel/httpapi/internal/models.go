package internal

import (
	"time"

	"havenground-server/internal/funnel/domain"
)

type SessionCreateRequest struct {
	Step string `json:"step,omitempty"`
}

type SessionAdvanceRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type SessionResponse struct {
	ID               string            `json:"id"`
	CurrentStep      string            `json:"current_step"`
	Answers          map[string]string `json:"answers"`
	Disqualified     bool              `json:"disqualified"`
	DisqualifyReason string            `json:"disqualify_reason,omitempty"`
	ReadyForOtp      bool              `json:"ready_for_otp"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func ToSessionResponse(session domain.QualificationSession) SessionResponse {
	answers := make(map[string]string, len(session.Answers))
	for field, value := range session.Answers {
		answers[string(field)] = value
	}

	return SessionResponse{
		ID:               session.ID.String(),
		CurrentStep:      string(session.Current),
		Answers:          answers,
		Disqualified:     session.Disqualified,
		DisqualifyReason: string(session.DisqualifyReason),
		ReadyForOtp:      session.ReadyForOtp(),
		CreatedAt:        session.CreatedAt,
		UpdatedAt:        session.UpdatedAt,
	}
}

type SessionSubmitResponse struct {
	Success  bool   `json:"success"`
	Redirect string `json:"redirect"`
	LeadID   string `json:"lead_id,omitempty"`
}

type SendOtpRequest struct {
	Phone string `json:"phone"`
}

type SendOtpResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type VerifyOtpRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type VerifyOtpResponse struct {
	Success  bool   `json:"success"`
	Verified bool   `json:"verified"`
	Error    string `json:"error,omitempty"`
}

type SubmitLeadRequest struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Role           string `json:"role,omitempty"`
	Acreage        string `json:"acreage,omitempty"`
	HomeOnProperty string `json:"home_on_property,omitempty"`
	PropertyListed string `json:"property_listed,omitempty"`
	IsInherited    string `json:"is_inherited,omitempty"`
	OwnedFourYears string `json:"owned_four_years,omitempty"`
	WhySelling     string `json:"why_selling,omitempty"`
	State          string `json:"state,omitempty"`
	County         string `json:"county,omitempty"`
	Address        string `json:"address,omitempty"`
	DeedNames      string `json:"deed_names,omitempty"`
	Source         string `json:"source,omitempty"`
}

func (r SubmitLeadRequest) ToDomain() domain.Lead {
	return domain.Lead{
		FullName:       r.FullName,
		Email:          r.Email,
		PhoneDisplay:   domain.FormatForDisplay(r.Phone),
		Role:           r.Role,
		Acreage:        r.Acreage,
		HomeOnProperty: r.HomeOnProperty,
		PropertyListed: r.PropertyListed,
		IsInherited:    r.IsInherited,
		OwnedFourYears: r.OwnedFourYears,
		WhySelling:     r.WhySelling,
		State:          r.State,
		County:         r.County,
		Address:        r.Address,
		DeedNames:      r.DeedNames,
		Source:         r.Source,
	}
}

type SubmitLeadResponse struct {
	Success bool   `json:"success"`
	LeadID  string `json:"lead_id,omitempty"`
	Message string `json:"message"`
}

type LeadResponse struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PhoneVerified  bool      `json:"phone_verified"`
	Role           string    `json:"role,omitempty"`
	Acreage        string    `json:"acreage,omitempty"`
	HomeOnProperty string    `json:"home_on_property,omitempty"`
	PropertyListed string    `json:"property_listed,omitempty"`
	IsInherited    string    `json:"is_inherited,omitempty"`
	OwnedFourYears string    `json:"owned_four_years,omitempty"`
	WhySelling     string    `json:"why_selling,omitempty"`
	State          string    `json:"state,omitempty"`
	County         string    `json:"county,omitempty"`
	Address        string    `json:"address,omitempty"`
	DeedNames      string    `json:"deed_names,omitempty"`
	Source         string    `json:"source"`
	Outcome        string    `json:"outcome"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

func ToLeadResponse(lead domain.Lead) LeadResponse {
	return LeadResponse{
		ID:             lead.ID.String(),
		FullName:       lead.FullName,
		Email:          lead.Email,
		Phone:          lead.PhoneE164,
		PhoneVerified:  lead.PhoneVerified,
		Role:           lead.Role,
		Acreage:        lead.Acreage,
		HomeOnProperty: lead.HomeOnProperty,
		PropertyListed: lead.PropertyListed,
		IsInherited:    lead.IsInherited,
		OwnedFourYears: lead.OwnedFourYears,
		WhySelling:     lead.WhySelling,
		State:          lead.State,
		County:         lead.County,
		Address:        lead.Address,
		DeedNames:      lead.DeedNames,
		Source:         lead.Source,
		Outcome:        string(lead.Outcome),
		SubmittedAt:    lead.SubmittedAt,
	}
}

type ParcelLookupRequest struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	County  string `json:"county"`
}

type ValidateReasonRequest struct {
	Reason string `json:"reason"`
}

type ValidateReasonResponse struct {
	Result string `json:"result"`
}
