package models

import (
	"fmt"
	"strings"
)

// SubmitProfileRequest carries the multi-step submission form. All fields
// arrive flat; ToProfile keeps only the group matching the declared role.
type SubmitProfileRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	HeadshotURL  string `json:"headshot_url"`
	Location     string `json:"location"`
	LinkedInURL  string `json:"linkedin_url"`
	ShortBio     string `json:"short_bio"`
	Availability string `json:"availability"`
	LookingFor   string `json:"looking_for"`
	Role         string `json:"role"`

	// Founder step
	StartupName     string `json:"startup_name"`
	StartupStage    string `json:"startup_stage"`
	Industry        string `json:"industry"`
	WhatBuilding    string `json:"what_building"`
	CofounderWanted string `json:"cofounder_wanted"`

	// Cofounder step
	SkillsExpertise   string `json:"skills_expertise"`
	ExperienceLevel   string `json:"experience_level"`
	IndustryInterests string `json:"industry_interests"`
	PastProjects      string `json:"past_projects"`
	Motivation        string `json:"motivation"`

	// Investor step
	InvestmentRange    string `json:"investment_range"`
	InvestmentStage    string `json:"investment_stage"`
	InvestmentFocus    string `json:"investment_focus"`
	PortfolioCompanies string `json:"portfolio_companies"`
	InvestmentCriteria string `json:"investment_criteria"`
}

// Validate enforces the fields the submission form requires before the final
// step is allowed to submit.
func (r SubmitProfileRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return fmt.Errorf("full name is required")
	}
	if strings.TrimSpace(r.Email) == "" || !strings.Contains(r.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if !ValidRole(strings.ToLower(strings.TrimSpace(r.Role))) {
		return fmt.Errorf("role must be one of founder, cofounder or investor")
	}
	return nil
}

// ToProfile builds a Profile from the request, attaching only the detail
// group that matches the role. Identity, approval and timestamps are left
// for the caller to assign.
func (r SubmitProfileRequest) ToProfile() Profile {
	p := Profile{
		FullName:     r.FullName,
		Email:        r.Email,
		HeadshotURL:  r.HeadshotURL,
		Location:     r.Location,
		LinkedInURL:  r.LinkedInURL,
		ShortBio:     r.ShortBio,
		Availability: r.Availability,
		LookingFor:   r.LookingFor,
		Role:         strings.ToLower(strings.TrimSpace(r.Role)),
	}

	switch p.Role {
	case RoleFounder:
		p.Founder = &FounderDetails{
			StartupName:     r.StartupName,
			StartupStage:    r.StartupStage,
			Industry:        r.Industry,
			WhatBuilding:    r.WhatBuilding,
			CofounderWanted: r.CofounderWanted,
		}
	case RoleCofounder:
		p.Cofounder = &CofounderDetails{
			SkillsExpertise:   r.SkillsExpertise,
			ExperienceLevel:   r.ExperienceLevel,
			IndustryInterests: r.IndustryInterests,
			PastProjects:      r.PastProjects,
			Motivation:        r.Motivation,
		}
	case RoleInvestor:
		p.Investor = &InvestorDetails{
			InvestmentRange:    r.InvestmentRange,
			InvestmentStage:    r.InvestmentStage,
			InvestmentFocus:    r.InvestmentFocus,
			PortfolioCompanies: r.PortfolioCompanies,
			InvestmentCriteria: r.InvestmentCriteria,
		}
	}
	return p
}

// ContactRequest is the body for contacting a profile owner.
type ContactRequest struct {
	SenderName  string `json:"sender_name"`
	SenderEmail string `json:"sender_email"`
	Message     string `json:"message"`
}

// Validate checks the contact form fields.
func (r ContactRequest) Validate() error {
	if strings.TrimSpace(r.SenderName) == "" {
		return fmt.Errorf("sender name is required")
	}
	if strings.TrimSpace(r.SenderEmail) == "" || !strings.Contains(r.SenderEmail, "@") {
		return fmt.Errorf("a valid sender email is required")
	}
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
