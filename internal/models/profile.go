package models

import (
	"strings"
	"time"
)

// Profile roles. A profile's role is set at submission and never changes.
const (
	RoleFounder   = "founder"
	RoleCofounder = "cofounder"
	RoleInvestor  = "investor"
)

// Profile represents one directory entrant. Exactly one of the role detail
// groups is non-nil, matching the Role field.
type Profile struct {
	ID           string    `json:"id" db:"id"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	HeadshotURL  string    `json:"headshot_url,omitempty" db:"headshot_url"`
	Location     string    `json:"location" db:"location"`
	LinkedInURL  string    `json:"linkedin_url" db:"linkedin_url"`
	ShortBio     string    `json:"short_bio" db:"short_bio"`
	Availability string    `json:"availability" db:"availability"`
	LookingFor   string    `json:"looking_for" db:"looking_for"`
	Role         string    `json:"role" db:"role"`
	Approved     bool      `json:"approved" db:"approved"`
	Featured     bool      `json:"featured" db:"featured"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Founder   *FounderDetails   `json:"founder,omitempty"`
	Cofounder *CofounderDetails `json:"cofounder,omitempty"`
	Investor  *InvestorDetails  `json:"investor,omitempty"`
}

// FounderDetails holds the founder-only attributes.
type FounderDetails struct {
	StartupName     string `json:"startup_name,omitempty"`
	StartupStage    string `json:"startup_stage,omitempty"`
	Industry        string `json:"industry,omitempty"`
	WhatBuilding    string `json:"what_building,omitempty"`
	CofounderWanted string `json:"cofounder_wanted,omitempty"`
}

// CofounderDetails holds the cofounder-only attributes.
type CofounderDetails struct {
	SkillsExpertise   string `json:"skills_expertise,omitempty"`
	ExperienceLevel   string `json:"experience_level,omitempty"`
	IndustryInterests string `json:"industry_interests,omitempty"`
	PastProjects      string `json:"past_projects,omitempty"`
	Motivation        string `json:"motivation,omitempty"`
}

// InvestorDetails holds the investor-only attributes.
type InvestorDetails struct {
	InvestmentRange    string `json:"investment_range,omitempty"`
	InvestmentStage    string `json:"investment_stage,omitempty"`
	InvestmentFocus    string `json:"investment_focus,omitempty"`
	PortfolioCompanies string `json:"portfolio_companies,omitempty"`
	InvestmentCriteria string `json:"investment_criteria,omitempty"`
}

// IndustryValue returns the industry text relevant to the profile's role, or
// an empty string when the role carries none. Investors have no industry
// attribute, so the industry filter dimension never narrows them.
func (p Profile) IndustryValue() string {
	switch {
	case p.Founder != nil:
		return p.Founder.Industry
	case p.Cofounder != nil:
		return p.Cofounder.IndustryInterests
	}
	return ""
}

// StartupName returns the founder's startup name, if any.
func (p Profile) StartupName() string {
	if p.Founder != nil {
		return p.Founder.StartupName
	}
	return ""
}

// SkillsExpertise returns the cofounder's skills text, if any.
func (p Profile) SkillsExpertise() string {
	if p.Cofounder != nil {
		return p.Cofounder.SkillsExpertise
	}
	return ""
}

// FirstName returns the leading token of the full name, used when addressing
// transactional email.
func (p Profile) FirstName() string {
	fields := strings.Fields(p.FullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ValidRole reports whether role is one of the three directory roles.
func ValidRole(role string) bool {
	switch role {
	case RoleFounder, RoleCofounder, RoleInvestor:
		return true
	}
	return false
}
