package inventory

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"loanhub/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock, *mocks.Client) {
	app := fiber.New()
	db, sqlMock := setupMockDB(t)
	store := new(mocks.Client)
	svc := NewService(db, zap.NewNop(), store, "test-bucket")
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, sqlMock, store
}

func TestHandleGetNotFound(t *testing.T) {
	app, sqlMock, _ := setupTestApp(t)

	sqlMock.ExpectQuery("SELECT (.+) FROM `hub_inv`").
		WillReturnRows(sqlmock.NewRows([]string{"item_id"}))

	req := httptest.NewRequest("GET", "/inventory/999", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Item not found", body["message"])
}

func TestHandleList(t *testing.T) {
	app, sqlMock, _ := setupTestApp(t)

	rows := sqlmock.NewRows([]string{"item_id", "item_name"}).
		AddRow(1, "Drone").
		AddRow(2, "Camera")
	sqlMock.ExpectQuery("SELECT (.+) FROM `hub_inv`").WillReturnRows(rows)

	req := httptest.NewRequest("GET", "/inventory/", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Len(t, body, 2)
}

func TestHandleImport(t *testing.T) {
	app, sqlMock, _ := setupTestApp(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `hub_inv`").WillReturnResult(sqlmock.NewResult(7, 1))
	sqlMock.ExpectCommit()

	payload := `{"itemId":7,"itemName":"Drone","totalQty":"","isLoanable":"Yes"}`
	req := httptest.NewRequest("POST", "/inventory/import", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Data imported successfully", body["message"])

	result, ok := body["result"].(map[string]any)
	require.True(t, ok)
	assert.Nil(t, result["totalQty"])
	assert.Equal(t, true, result["isLoanable"])
}

func TestHandleImportPersistenceFailure(t *testing.T) {
	app, sqlMock, _ := setupTestApp(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `hub_inv`").WillReturnError(assert.AnError)
	sqlMock.ExpectRollback()

	payload := `{"itemId":7,"itemName":"Drone"}`
	req := httptest.NewRequest("POST", "/inventory/import", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Server error", body["message"])
}

func TestHandleImportFile(t *testing.T) {
	app, sqlMock, store := setupTestApp(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `hub_inv`").WillReturnResult(sqlmock.NewResult(7, 1))
	sqlMock.ExpectExec("INSERT INTO `hub_inv`").WillReturnResult(sqlmock.NewResult(8, 1))
	sqlMock.ExpectCommit()

	store.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile("file", "items.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/inventory/import/file", buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Data imported successfully", body["message"])

	result, ok := body["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), result["rows"])
	store.AssertCalled(t, "PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleImportFileBadFormat(t *testing.T) {
	app, _, _ := setupTestApp(t)

	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile("file", "items.pdf")
	require.NoError(t, err)
	part.Write([]byte("not a spreadsheet"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/inventory/import/file", buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
