package internal

import (
	"time"

	"havenground-server/internal/funnel/domain"
)

type Lead struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	PhoneDisplay   string    `json:"phone_display"`
	PhoneE164      string    `json:"phone_e164" gorm:"index;not null"`
	PhoneVerified  bool      `json:"phone_verified"`
	Role           string    `json:"role"`
	Acreage        string    `json:"acreage"`
	HomeOnProperty string    `json:"home_on_property"`
	PropertyListed string    `json:"property_listed"`
	IsInherited    string    `json:"is_inherited"`
	OwnedFourYears string    `json:"owned_four_years"`
	WhySelling     string    `json:"why_selling"`
	State          string    `json:"state"`
	County         string    `json:"county"`
	Address        string    `json:"address"`
	DeedNames      string    `json:"deed_names"`
	Source         string    `json:"source" gorm:"index"`
	Outcome        string    `json:"outcome"`
	SubmittedAt    time.Time `json:"submitted_at" gorm:"index"`
}

func (Lead) TableName() string {
	return "leads"
}

func (l Lead) ToDomain() domain.Lead {
	return domain.Lead{
		ID:             domain.ID(l.ID),
		FullName:       l.FullName,
		Email:          l.Email,
		PhoneDisplay:   l.PhoneDisplay,
		PhoneE164:      l.PhoneE164,
		PhoneVerified:  l.PhoneVerified,
		Role:           l.Role,
		Acreage:        l.Acreage,
		HomeOnProperty: l.HomeOnProperty,
		PropertyListed: l.PropertyListed,
		IsInherited:    l.IsInherited,
		OwnedFourYears: l.OwnedFourYears,
		WhySelling:     l.WhySelling,
		State:          l.State,
		County:         l.County,
		Address:        l.Address,
		DeedNames:      l.DeedNames,
		Source:         l.Source,
		Outcome:        domain.Outcome(l.Outcome),
		SubmittedAt:    l.SubmittedAt,
	}
}

func FromLead(value domain.Lead) Lead {
	return Lead{
		ID:             value.ID.String(),
		FullName:       value.FullName,
		Email:          value.Email,
		PhoneDisplay:   value.PhoneDisplay,
		PhoneE164:      value.PhoneE164,
		PhoneVerified:  value.PhoneVerified,
		Role:           value.Role,
		Acreage:        value.Acreage,
		HomeOnProperty: value.HomeOnProperty,
		PropertyListed: value.PropertyListed,
		IsInherited:    value.IsInherited,
		OwnedFourYears: value.OwnedFourYears,
		WhySelling:     value.WhySelling,
		State:          value.State,
		County:         value.County,
		Address:        value.Address,
		DeedNames:      value.DeedNames,
		Source:         value.Source,
		Outcome:        string(value.Outcome),
		SubmittedAt:    value.SubmittedAt,
	}
}
