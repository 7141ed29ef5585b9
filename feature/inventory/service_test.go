package inventory

import (
	"context"
	"testing"

	"loanhub/feature/inventory/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGet(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop(), nil, "")

	rows := sqlmock.NewRows([]string{"item_id", "item_name", "qty_available"}).
		AddRow(42, "Drone", 5)
	mock.ExpectQuery("SELECT (.+) FROM `hub_inv`").WillReturnRows(rows)

	item, err := svc.Get(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "Drone", item.ItemName)
	if assert.NotNil(t, item.QtyAvailable) {
		assert.Equal(t, 5, *item.QtyAvailable)
	}
}

func TestGetNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop(), nil, "")

	mock.ExpectQuery("SELECT (.+) FROM `hub_inv`").
		WillReturnRows(sqlmock.NewRows([]string{"item_id"}))

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestReconcile(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop(), nil, "")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `hub_inv`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	item, err := svc.Reconcile(context.Background(), models.ImportRecord{
		ItemID:     7,
		ItemName:   "Drone",
		TotalQty:   "",
		IsLoanable: "Yes",
	})

	require.NoError(t, err)
	// Empty numeric input is stored as absent, never as zero.
	assert.Nil(t, item.TotalQty)
	assert.True(t, item.IsLoanable)
	assert.Equal(t, 7, item.ItemID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileMissingKey(t *testing.T) {
	db, _ := setupMockDB(t)
	svc := NewService(db, zap.NewNop(), nil, "")

	_, err := svc.Reconcile(context.Background(), models.ImportRecord{ItemName: "Drone"})
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = svc.Reconcile(context.Background(), models.ImportRecord{ItemID: 7})
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestReconcilePersistenceFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop(), nil, "")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `hub_inv`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.Reconcile(context.Background(), models.ImportRecord{ItemID: 7, ItemName: "Drone"})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportAll(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop(), nil, "")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `hub_inv`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `hub_inv`").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	count, err := svc.ImportAll(context.Background(), []models.ImportRecord{
		{ItemID: 1, ItemName: "Drone", TotalQty: "4"},
		{ItemID: 2, ItemName: "Camera", TotalQty: ""},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportAllAbortsOnBadRow(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop(), nil, "")

	// Second row lacks its natural key; the first row must not survive.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `hub_inv`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectRollback()

	_, err := svc.ImportAll(context.Background(), []models.ImportRecord{
		{ItemID: 1, ItemName: "Drone"},
		{ItemName: "Nameless"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.Contains(t, err.Error(), "row 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop(), nil, "")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `hub_inv` SET").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := svc.Update(context.Background(), 999, &models.Item{ItemName: "Drone"})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop(), nil, "")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `hub_inv`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, svc.Delete(context.Background(), 42))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `hub_inv`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrItemNotFound)
}
