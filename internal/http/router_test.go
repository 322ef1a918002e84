package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/mobility/internal/catalog"
	"github.com/MrJamesThe3rd/mobility/internal/employee"
	apihttp "github.com/MrJamesThe3rd/mobility/internal/http"
	catalogHandler "github.com/MrJamesThe3rd/mobility/internal/http/catalog"
	employeeHandler "github.com/MrJamesThe3rd/mobility/internal/http/employee"
	importHandler "github.com/MrJamesThe3rd/mobility/internal/http/importcsv"
	"github.com/MrJamesThe3rd/mobility/internal/importer"
)

func newRouter(t *testing.T, setupMock func(m *employee.MockClient)) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := employee.NewMockClient(ctrl)

	if setupMock != nil {
		setupMock(client)
	}

	cat := catalog.Default()

	return apihttp.New(
		apihttp.Options{CORSOrigins: []string{"http://localhost:5173"}},
		importHandler.NewHandler(importer.NewService(cat), 1<<20),
		catalogHandler.NewHandler(cat),
		employeeHandler.NewHandler(employee.NewService(client)),
	)
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)

	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestImport(t *testing.T) {
	body, contentType := multipartBody(t, "file", "mobility.csv", "Fecha Inicio,Ubicación,GPID\n28/08/2025,Barcelona,123\n")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	newRouter(t, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success        bool              `json:"success"`
		FieldsImported int               `json:"fieldsImported"`
		Warnings       []string          `json:"warnings"`
		Fields         map[string]string `json:"fields"`
		ImportID       string            `json:"importId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.FieldsImported)
	assert.NotNil(t, resp.Warnings)
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, "2025-08-28", resp.Fields["startDate"])
	assert.Equal(t, "Barcelona", resp.Fields["location"])
	assert.Equal(t, "123", resp.Fields["gpid"])
	assert.Equal(t, "start", resp.Fields["mobilityType"])
	assert.Len(t, resp.ImportID, 36)
}

func TestImport_NoData(t *testing.T) {
	body, contentType := multipartBody(t, "file", "empty.csv", "GPID\n")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	newRouter(t, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), `"warnings":["no data found"]`)
}

func TestImport_MissingFile(t *testing.T) {
	body, contentType := multipartBody(t, "attachment", "mobility.csv", "GPID\n1\n")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	newRouter(t, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalog(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Positions     []string `json:"positions"`
		HRBPs         []string `json:"hrbps"`
		MobilityTypes []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"mobilityTypes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Len(t, resp.Positions, 10)
	assert.Equal(t, []string{"Jesus Tejado", "Marta Mengual"}, resp.HRBPs)
	require.Len(t, resp.MobilityTypes, 3)
	assert.Equal(t, "fixed-period", resp.MobilityTypes[2].Value)
	assert.Equal(t, "Periodo Fijo", resp.MobilityTypes[2].Label)
}

const validEmployee = `{
	"mobilityType": "start",
	"startDate": "2025-08-28",
	"location": "Barcelona",
	"fullName": "Jane Doe",
	"gpid": "123",
	"temporaryPosition": "Delivery Driver (Conductor)",
	"originalPosition": "Sales replenisher (Reponedor)",
	"hrbp": "Marta Mengual",
	"unknown": "ignored"
}`

func TestCreateEmployee(t *testing.T) {
	type testCase struct {
		name       string
		body       string
		setupMock  func(m *employee.MockClient)
		wantStatus int
		wantBody   string
	}

	tests := []testCase{
		{
			name: "Created",
			body: validEmployee,
			setupMock: func(m *employee.MockClient) {
				m.EXPECT().
					CreateEmployee(gomock.Any(), gomock.Any()).
					Return(json.RawMessage(`{"id":7}`), nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":7}`,
		},
		{
			name:       "Validation errors",
			body:       `{"mobilityType":"end","gpid":"123"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody: `{"errors":{
				"endDate":"this field is required",
				"location":"this field is required",
				"fullName":"this field is required",
				"temporaryPosition":"this field is required",
				"originalPosition":"this field is required",
				"hrbp":"this field is required"}}`,
		},
		{
			name: "Upstream failure",
			body: validEmployee,
			setupMock: func(m *employee.MockClient) {
				m.EXPECT().
					CreateEmployee(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("GPID already registered"))
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "Malformed body",
			body:       `{"gpid":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			newRouter(t, tt.setupMock).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestCreateEmployee_RequiresJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader("gpid=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	newRouter(t, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/import", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	newRouter(t, nil).ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
