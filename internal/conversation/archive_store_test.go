package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveStoreNilSafe(t *testing.T) {
	var store *ArchiveStore

	assert.NoError(t, store.SaveTurn(context.Background(), NewSession("x"), "hi", "hello"))

	results, err := store.ListResults(context.Background(), 10)
	assert.NoError(t, err)
	assert.Nil(t, results)
}

func TestArchiveStoreSaveTurn(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sess := NewSession("arch-1")
	sess.TurnCount = 2
	sess.ScamType = "digital_arrest"

	mock.ExpectExec("INSERT INTO honeypot_sessions").
		WithArgs(
			"arch-1", sess.Persona.Name, "digital_arrest", 2,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO honeypot_turns").
		WithArgs(
			sqlmock.AnyArg(), "arch-1", 2,
			"send otp", "which otp beta", string(sess.Phase), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewArchiveStore(db)
	require.NoError(t, store.SaveTurn(context.Background(), sess, "send otp", "which otp beta"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveStoreListResults(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"session_id", "persona_name", "scam_type", "turn_count", "intel", "agent_notes", "updated_at",
	}).
		AddRow("s1", "Kamala Devi", "bank_fraud", 5, []byte(`{"upiIds":["fraud@ybl"]}`), "notes", now).
		AddRow("s2", "Shanti Sharma", "", 1, []byte(`{}`), "", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT session_id, persona_name").
		WithArgs(25).
		WillReturnRows(rows)

	store := NewArchiveStore(db)
	results, err := store.ListResults(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "s1", results[0].SessionID)
	assert.Equal(t, "bank_fraud", results[0].ScamType)
	assert.JSONEq(t, `{"upiIds":["fraud@ybl"]}`, string(results[0].Intel))
	assert.NoError(t, mock.ExpectationsWereMet())
}
