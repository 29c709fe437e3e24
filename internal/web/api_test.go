package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BerylCAtieno/careerpath-agent/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiProfile() models.StudentProfile {
	p := models.DefaultProfile()
	p.Name = "李明"
	p.Phone = "13800000000"
	p.School = "上海财经大学"
	p.Major = "金融学"
	p.ExpectedCity = "上海"
	return p
}

func postJSON(t *testing.T, b *browser, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return b.do(req)
}

func marshal(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestCreateReport(t *testing.T) {
	gen := &stubGenerator{report: loadReport(t)}
	b := newBrowser(t, Options{Generator: gen})

	w := postJSON(t, b, "/api/reports", marshal(t, apiProfile()))
	require.Equal(t, http.StatusOK, w.Code)

	var report models.CareerReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, gen.report, &report)
	assert.Nil(t, b.cookie, "the API is stateless")
}

func TestCreateReport_Markdown(t *testing.T) {
	gen := &stubGenerator{report: loadReport(t)}
	b := newBrowser(t, Options{Generator: gen})

	w := postJSON(t, b, "/api/reports?format=markdown", marshal(t, apiProfile()))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	assert.True(t, strings.HasPrefix(w.Body.String(), "# 职业规划报告: 李明"))
}

func TestCreateReport_Errors(t *testing.T) {
	invalid := apiProfile()
	invalid.EmploymentGoals = []string{models.TrackUndecided, models.EmploymentTracks[0]}

	tests := []struct {
		name       string
		body       string
		genErr     error
		wantStatus int
		wantError  string
		wantField  string
	}{
		{"malformed json", `{"name":`, nil, http.StatusBadRequest, "invalid JSON body", ""},
		{"invalid profile", marshal(t, invalid), nil, http.StatusBadRequest, "invalid profile", "employmentGoals"},
		{"generation failure", marshal(t, apiProfile()), errors.New("boom"), http.StatusBadGateway, models.GenerationFailedMessage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{report: loadReport(t), err: tt.genErr}
			b := newBrowser(t, Options{Generator: gen})

			w := postJSON(t, b, "/api/reports", tt.body)
			require.Equal(t, tt.wantStatus, w.Code)

			var body struct {
				Error  string              `json:"error"`
				Fields []models.FieldError `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body.Error, tt.wantError)
			if tt.wantField != "" {
				require.NotEmpty(t, body.Fields)
				assert.Equal(t, tt.wantField, body.Fields[0].Field)
			}
			if tt.genErr == nil {
				assert.Equal(t, 0, gen.calls())
			}
		})
	}
}
