package store

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cofounderbase/cofounderbase/internal/models"
)

var profileCols = []string{
	"id", "full_name", "email", "headshot_url", "location", "linkedin_url",
	"short_bio", "availability", "looking_for", "role", "approved", "featured", "created_at",
	"startup_name", "startup_stage", "industry", "what_building", "cofounder_wanted",
	"skills_expertise", "experience_level", "industry_interests", "past_projects", "motivation",
	"investment_range", "investment_stage", "investment_focus", "portfolio_companies", "investment_criteria",
}

func newTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func founderRow(created time.Time) []driver.Value {
	return []driver.Value{
		"p1", "bob smith", "bob@example.com", nil, "san francisco", "https://linkedin.com/in/bob",
		"building payments", "Full-time", "technical cofounder", "founder", true, false, created,
		"acme pay", "Seed", "fintech", "payments rails", "CTO type",
		nil, nil, nil, nil, nil,
		nil, nil, nil, nil, nil,
	}
}

func TestListApproved(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewProfileStore(db)

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM profiles WHERE approved = TRUE ORDER BY featured DESC, created_at DESC LIMIT \$1`).
		WithArgs(50).
		WillReturnRows(sqlmock.NewRows(profileCols).AddRow(founderRow(created)...))

	profiles, err := s.ListApproved(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	p := profiles[0]
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, models.RoleFounder, p.Role)
	assert.True(t, p.Approved)
	require.NotNil(t, p.Founder, "founder rows carry the founder detail group")
	assert.Equal(t, "fintech", p.Founder.Industry)
	assert.Nil(t, p.Cofounder)
	assert.Nil(t, p.Investor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApprovedByRole(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewProfileStore(db)

	mock.ExpectQuery(`SELECT (.+) FROM profiles WHERE approved = TRUE AND role = \$1`).
		WithArgs("investor", 50).
		WillReturnRows(sqlmock.NewRows(profileCols))

	profiles, err := s.ListApprovedByRole(context.Background(), "investor", 50)
	require.NoError(t, err)
	assert.Empty(t, profiles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAssignsIdentity(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewProfileStore(db)

	mock.ExpectExec(`INSERT INTO profiles`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	p := models.Profile{
		FullName: "ana lee",
		Email:    "ana@example.com",
		Role:     models.RoleInvestor,
		Investor: &models.InvestorDetails{InvestmentRange: "$1M-$5M"},
	}
	inserted, err := s.Insert(context.Background(), p)
	require.NoError(t, err)
	assert.NotEmpty(t, inserted.ID)
	assert.False(t, inserted.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewProfileStore(db)

	mock.ExpectQuery(`SELECT (.+) FROM profiles WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(profileCols))

	_, err := s.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApproveAndDelete(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewProfileStore(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE profiles SET approved = TRUE WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.Approve(ctx, "p1"))

	mock.ExpectExec(`DELETE FROM profiles WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.Delete(ctx, "p1"))

	// Mutating a missing profile reports not found.
	mock.ExpectExec(`UPDATE profiles SET featured = \$1 WHERE id = \$2`).
		WithArgs(true, "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, s.SetFeatured(ctx, "ghost", true), ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
