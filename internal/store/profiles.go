// Package store implements the PostgreSQL persistence layer for profiles,
// advertisements and admin settings.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cofounderbase/cofounderbase/internal/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

const profileColumns = `id, full_name, email, headshot_url, location, linkedin_url,
	short_bio, availability, looking_for, role, approved, featured, created_at,
	startup_name, startup_stage, industry, what_building, cofounder_wanted,
	skills_expertise, experience_level, industry_interests, past_projects, motivation,
	investment_range, investment_stage, investment_focus, portfolio_companies, investment_criteria`

// profileRow is the flat table shape. Role-specific columns are nullable;
// toModel folds them into the tagged variant matching the role.
type profileRow struct {
	ID           string         `db:"id"`
	FullName     string         `db:"full_name"`
	Email        string         `db:"email"`
	HeadshotURL  sql.NullString `db:"headshot_url"`
	Location     string         `db:"location"`
	LinkedInURL  string         `db:"linkedin_url"`
	ShortBio     string         `db:"short_bio"`
	Availability string         `db:"availability"`
	LookingFor   string         `db:"looking_for"`
	Role         string         `db:"role"`
	Approved     bool           `db:"approved"`
	Featured     bool           `db:"featured"`
	CreatedAt    time.Time      `db:"created_at"`

	StartupName     sql.NullString `db:"startup_name"`
	StartupStage    sql.NullString `db:"startup_stage"`
	Industry        sql.NullString `db:"industry"`
	WhatBuilding    sql.NullString `db:"what_building"`
	CofounderWanted sql.NullString `db:"cofounder_wanted"`

	SkillsExpertise   sql.NullString `db:"skills_expertise"`
	ExperienceLevel   sql.NullString `db:"experience_level"`
	IndustryInterests sql.NullString `db:"industry_interests"`
	PastProjects      sql.NullString `db:"past_projects"`
	Motivation        sql.NullString `db:"motivation"`

	InvestmentRange    sql.NullString `db:"investment_range"`
	InvestmentStage    sql.NullString `db:"investment_stage"`
	InvestmentFocus    sql.NullString `db:"investment_focus"`
	PortfolioCompanies sql.NullString `db:"portfolio_companies"`
	InvestmentCriteria sql.NullString `db:"investment_criteria"`
}

func (r profileRow) toModel() models.Profile {
	p := models.Profile{
		ID:           r.ID,
		FullName:     r.FullName,
		Email:        r.Email,
		HeadshotURL:  r.HeadshotURL.String,
		Location:     r.Location,
		LinkedInURL:  r.LinkedInURL,
		ShortBio:     r.ShortBio,
		Availability: r.Availability,
		LookingFor:   r.LookingFor,
		Role:         r.Role,
		Approved:     r.Approved,
		Featured:     r.Featured,
		CreatedAt:    r.CreatedAt,
	}
	switch r.Role {
	case models.RoleFounder:
		p.Founder = &models.FounderDetails{
			StartupName:     r.StartupName.String,
			StartupStage:    r.StartupStage.String,
			Industry:        r.Industry.String,
			WhatBuilding:    r.WhatBuilding.String,
			CofounderWanted: r.CofounderWanted.String,
		}
	case models.RoleCofounder:
		p.Cofounder = &models.CofounderDetails{
			SkillsExpertise:   r.SkillsExpertise.String,
			ExperienceLevel:   r.ExperienceLevel.String,
			IndustryInterests: r.IndustryInterests.String,
			PastProjects:      r.PastProjects.String,
			Motivation:        r.Motivation.String,
		}
	case models.RoleInvestor:
		p.Investor = &models.InvestorDetails{
			InvestmentRange:    r.InvestmentRange.String,
			InvestmentStage:    r.InvestmentStage.String,
			InvestmentFocus:    r.InvestmentFocus.String,
			PortfolioCompanies: r.PortfolioCompanies.String,
			InvestmentCriteria: r.InvestmentCriteria.String,
		}
	}
	return p
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func rowFromModel(p models.Profile) profileRow {
	r := profileRow{
		ID:           p.ID,
		FullName:     p.FullName,
		Email:        p.Email,
		HeadshotURL:  nullable(p.HeadshotURL),
		Location:     p.Location,
		LinkedInURL:  p.LinkedInURL,
		ShortBio:     p.ShortBio,
		Availability: p.Availability,
		LookingFor:   p.LookingFor,
		Role:         p.Role,
		Approved:     p.Approved,
		Featured:     p.Featured,
		CreatedAt:    p.CreatedAt,
	}
	if p.Founder != nil {
		r.StartupName = nullable(p.Founder.StartupName)
		r.StartupStage = nullable(p.Founder.StartupStage)
		r.Industry = nullable(p.Founder.Industry)
		r.WhatBuilding = nullable(p.Founder.WhatBuilding)
		r.CofounderWanted = nullable(p.Founder.CofounderWanted)
	}
	if p.Cofounder != nil {
		r.SkillsExpertise = nullable(p.Cofounder.SkillsExpertise)
		r.ExperienceLevel = nullable(p.Cofounder.ExperienceLevel)
		r.IndustryInterests = nullable(p.Cofounder.IndustryInterests)
		r.PastProjects = nullable(p.Cofounder.PastProjects)
		r.Motivation = nullable(p.Cofounder.Motivation)
	}
	if p.Investor != nil {
		r.InvestmentRange = nullable(p.Investor.InvestmentRange)
		r.InvestmentStage = nullable(p.Investor.InvestmentStage)
		r.InvestmentFocus = nullable(p.Investor.InvestmentFocus)
		r.PortfolioCompanies = nullable(p.Investor.PortfolioCompanies)
		r.InvestmentCriteria = nullable(p.Investor.InvestmentCriteria)
	}
	return r
}

// ProfileStore persists directory profiles.
type ProfileStore struct {
	db *sqlx.DB
}

func NewProfileStore(db *sqlx.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// ListApproved returns approved profiles ordered featured-first then newest,
// limited to one page.
func (s *ProfileStore) ListApproved(ctx context.Context, limit int) ([]models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles
		WHERE approved = TRUE ORDER BY featured DESC, created_at DESC LIMIT $1`
	return s.list(ctx, query, limit)
}

// ListApprovedByRole narrows the approved listing to one role.
func (s *ProfileStore) ListApprovedByRole(ctx context.Context, role string, limit int) ([]models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles
		WHERE approved = TRUE AND role = $1 ORDER BY featured DESC, created_at DESC LIMIT $2`
	return s.list(ctx, query, role, limit)
}

// ListAll returns every profile, newest first, for the admin dashboard.
func (s *ProfileStore) ListAll(ctx context.Context) ([]models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`
	return s.list(ctx, query)
}

func (s *ProfileStore) list(ctx context.Context, query string, args ...interface{}) ([]models.Profile, error) {
	var rows []profileRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	profiles := make([]models.Profile, 0, len(rows))
	for _, r := range rows {
		profiles = append(profiles, r.toModel())
	}
	return profiles, nil
}

// GetByID fetches a single profile.
func (s *ProfileStore) GetByID(ctx context.Context, id string) (models.Profile, error) {
	var row profileRow
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrNotFound
		}
		return models.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return row.toModel(), nil
}

// Insert persists a new profile, assigning an identifier and creation
// timestamp when absent. The assigned ID is returned on the profile.
func (s *ProfileStore) Insert(ctx context.Context, p models.Profile) (models.Profile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO profiles (` + profileColumns + `) VALUES (
		:id, :full_name, :email, :headshot_url, :location, :linkedin_url,
		:short_bio, :availability, :looking_for, :role, :approved, :featured, :created_at,
		:startup_name, :startup_stage, :industry, :what_building, :cofounder_wanted,
		:skills_expertise, :experience_level, :industry_interests, :past_projects, :motivation,
		:investment_range, :investment_stage, :investment_focus, :portfolio_companies, :investment_criteria)`

	if _, err := s.db.NamedExecContext(ctx, query, rowFromModel(p)); err != nil {
		return models.Profile{}, fmt.Errorf("failed to insert profile: %w", err)
	}
	return p, nil
}

// Approve makes a profile publicly visible.
func (s *ProfileStore) Approve(ctx context.Context, id string) error {
	return s.exec(ctx, `UPDATE profiles SET approved = TRUE WHERE id = $1`, id)
}

// SetFeatured toggles the featured highlight flag.
func (s *ProfileStore) SetFeatured(ctx context.Context, id string, featured bool) error {
	return s.exec(ctx, `UPDATE profiles SET featured = $1 WHERE id = $2`, featured, id)
}

// DisplayUpdate carries the admin-editable display fields. Role and the
// role-specific attribute group are immutable after submission.
type DisplayUpdate struct {
	FullName     string `json:"full_name"`
	Location     string `json:"location"`
	LinkedInURL  string `json:"linkedin_url"`
	ShortBio     string `json:"short_bio"`
	Availability string `json:"availability"`
	LookingFor   string `json:"looking_for"`
	HeadshotURL  string `json:"headshot_url"`
}

// UpdateDisplay overwrites the admin-editable fields of a profile.
func (s *ProfileStore) UpdateDisplay(ctx context.Context, id string, u DisplayUpdate) error {
	query := `UPDATE profiles SET full_name = $1, location = $2, linkedin_url = $3,
		short_bio = $4, availability = $5, looking_for = $6, headshot_url = $7 WHERE id = $8`
	return s.exec(ctx, query, u.FullName, u.Location, u.LinkedInURL,
		u.ShortBio, u.Availability, u.LookingFor, nullable(u.HeadshotURL), id)
}

// Delete removes a profile outright. Rejection is deletion, not a status.
func (s *ProfileStore) Delete(ctx context.Context, id string) error {
	return s.exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
}

func (s *ProfileStore) exec(ctx context.Context, query string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
