package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cofounderbase/cofounderbase/internal/models"
)

func TestGetBoolDefaultsWhenUnset(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewSettingStore(db)

	mock.ExpectQuery(`SELECT value FROM admin_settings WHERE key = \$1`).
		WithArgs(models.SettingAutoApprove).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	got, err := s.GetBool(context.Background(), models.SettingAutoApprove, true)
	require.NoError(t, err)
	assert.True(t, got, "missing setting falls back to the default")
}

func TestGetBoolReadsStoredValue(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewSettingStore(db)

	mock.ExpectQuery(`SELECT value FROM admin_settings WHERE key = \$1`).
		WithArgs(models.SettingAutoApprove).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(false))

	got, err := s.GetBool(context.Background(), models.SettingAutoApprove, true)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestSetBoolUpserts(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewSettingStore(db)

	mock.ExpectExec(`INSERT INTO admin_settings (.+) ON CONFLICT \(key\) DO UPDATE`).
		WithArgs(models.SettingAutoApprove, false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.SetBool(context.Background(), models.SettingAutoApprove, false))
	assert.NoError(t, mock.ExpectationsWereMet())
}
