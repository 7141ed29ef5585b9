package intake

import (
	"context"
	"testing"

	"loanhub/feature/people"

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

func setupService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	logg := zap.NewNop()
	svc := NewService(db, logg, people.NewService(db, logg), nil, nil, "")
	return svc, mock
}

func expectStudentResolve(mock sqlmock.Sqlmock, id int) {
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `hub_students`").WillReturnResult(sqlmock.NewResult(int64(id), 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT (.+) FROM `hub_students`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(id, "ada@example.edu"))
}

func TestSubmit(t *testing.T) {
	svc, mock := setupService(t)

	expectStudentResolve(mock, 5)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `hub_form_submissions`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	raw := []byte(`{"studentName":"Ada","studentEmail":"ada@example.edu","purpose":"Final year project"}`)
	sub, err := svc.Submit(context.Background(), SubmissionRequest{
		StudentName:  "Ada",
		StudentEmail: "ada@example.edu",
		Purpose:      "Final year project",
	}, raw)

	require.NoError(t, err)
	assert.NotEmpty(t, sub.Reference)
	assert.Equal(t, uint(5), sub.StudentID)
	assert.Nil(t, sub.SupervisorID)
	assert.Equal(t, string(raw), sub.Payload)
}

func TestSubmitWithSupervisor(t *testing.T) {
	svc, mock := setupService(t)

	expectStudentResolve(mock, 5)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `hub_supervisors`").WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT (.+) FROM `hub_supervisors`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(3, "grace@example.edu"))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `hub_form_submissions`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	sub, err := svc.Submit(context.Background(), SubmissionRequest{
		StudentName:     "Ada",
		StudentEmail:    "ada@example.edu",
		SupervisorName:  "Grace",
		SupervisorEmail: "grace@example.edu",
	}, []byte(`{}`))

	require.NoError(t, err)
	require.NotNil(t, sub.SupervisorID)
	assert.Equal(t, uint(3), *sub.SupervisorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitMissingStudent(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Submit(context.Background(), SubmissionRequest{StudentName: "Ada"}, []byte(`{}`))
	assert.ErrorIs(t, err, ErrMissingStudent)

	_, err = svc.Submit(context.Background(), SubmissionRequest{StudentEmail: "ada@example.edu"}, []byte(`{}`))
	assert.ErrorIs(t, err, ErrMissingStudent)
}

func TestSubmitPersistenceFailure(t *testing.T) {
	svc, mock := setupService(t)

	expectStudentResolve(mock, 5)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `hub_form_submissions`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.Submit(context.Background(), SubmissionRequest{
		StudentName:  "Ada",
		StudentEmail: "ada@example.edu",
	}, []byte(`{}`))

	require.Error(t, err)
}
