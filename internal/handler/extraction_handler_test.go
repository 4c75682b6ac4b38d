package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
	"github.com/novainvoice/invoice-dashboard-service/internal/model"
	"github.com/novainvoice/invoice-dashboard-service/internal/service"
)

// fakeExtractor is a scripted InvoiceExtractor for tests
type fakeExtractor struct {
	result domain.ExtractionResult
	err    error
}

func (f *fakeExtractor) ExtractInvoice(ctx context.Context, image []byte, mimeType string) (domain.ExtractionResult, error) {
	return f.result, f.err
}

func newScanRouter(t *testing.T, extractor service.InvoiceExtractor) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewExtractionHandler(service.NewExtractionService(extractor)).RegisterRoutes(router)
	return router
}

func newScanRequest(t *testing.T, draft *model.InvoiceDTO) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "receipt.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)

	if draft != nil {
		raw, err := json.Marshal(draft)
		require.NoError(t, err)
		require.NoError(t, writer.WriteField("draft", string(raw)))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/invoices/scan", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestScanInvoiceMergesIntoDraft(t *testing.T) {
	router := newScanRouter(t, &fakeExtractor{
		result: domain.ExtractionResult{
			ClientName: "Extracted Co",
			Items: []domain.ExtractedItem{
				{Description: "Widgets", Quantity: 3, Price: 12.5},
			},
		},
	})

	draft := &model.InvoiceDTO{
		ClientName: "Kept Client",
		IssueDate:  "2024-04-01",
		DueDate:    "2024-05-01",
		Status:     "Draft",
		Items:      []model.InvoiceItemDTO{{ID: "old", Description: "stale", Quantity: 1, Price: 1}},
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newScanRequest(t, draft))
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Extracted Co", resp.Draft.ClientName)
	assert.Equal(t, "2024-04-01", resp.Draft.IssueDate, "absent field keeps draft value")
	require.Len(t, resp.Draft.Items, 1)
	assert.Equal(t, "Widgets", resp.Draft.Items[0].Description)
	assert.NotEqual(t, "old", resp.Draft.Items[0].ID, "item ids are regenerated")
}

func TestScanInvoiceWithoutDraftUsesDefaults(t *testing.T) {
	router := newScanRouter(t, &fakeExtractor{
		result: domain.ExtractionResult{ClientName: "Extracted Co"},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newScanRequest(t, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Extracted Co", resp.Draft.ClientName)
	assert.Equal(t, "Draft", resp.Draft.Status)
	assert.NotEmpty(t, resp.Draft.IssueDate)
	assert.NotEmpty(t, resp.Draft.DueDate)
}

func TestScanInvoiceAdapterFailure(t *testing.T) {
	router := newScanRouter(t, &fakeExtractor{err: errors.New("model unavailable")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newScanRequest(t, nil))
	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to extract data from the image.", resp.Message)
}

func TestScanInvoiceMissingFile(t *testing.T) {
	router := newScanRouter(t, &fakeExtractor{})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/invoices/scan", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
