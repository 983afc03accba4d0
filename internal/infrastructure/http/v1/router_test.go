package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policywizard/internal/core/apperror"
	"policywizard/internal/infrastructure/http/v1/dto"
	"policywizard/internal/infrastructure/storage/memory"
	"policywizard/pkg/logger"
)

type testServer struct {
	router *gin.Engine
	store  *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	router := NewRouter(RouterConfig{
		Store:          store,
		Logger:         logger.Nop(),
		MetricsEnabled: true,
		MetricsPath:    "/metrics",
	})
	return &testServer{router: router, store: store}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func budgetOrg(industry any) map[string]any {
	return map[string]any{
		"name":              "City Hospital No. 1",
		"inn":               "7701234567",
		"kpp":               "770101001",
		"accountingType":    "budget",
		"industry":          industry,
		"centralizedOffice": "Central Accounting Office",
	}
}

func (s *testServer) createOrg(t *testing.T, body map[string]any) dto.OrganizationResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/organizations", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.OrganizationResponse](t, w)
}

func TestOrganizations_CreateListGet(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/organizations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	created := s.createOrg(t, budgetOrg("healthcare"))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "budget", created.AccountingType)
	require.NotNil(t, created.Industry)
	assert.Equal(t, "healthcare", *created.Industry)

	second := s.createOrg(t, budgetOrg(nil))
	assert.Equal(t, int64(2), second.ID)
	assert.Nil(t, second.Industry)

	w = s.do(t, http.MethodGet, "/api/organizations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]dto.OrganizationResponse](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)

	w = s.do(t, http.MethodGet, "/api/organizations/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dto.OrganizationResponse](t, w)
	assert.Equal(t, created, got)
}

func TestOrganizations_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown id",
			method:   http.MethodGet,
			path:     "/api/organizations/99",
			wantCode: http.StatusNotFound,
			wantErr:  apperror.CodeNotFound,
		},
		{
			name:     "non numeric id",
			method:   http.MethodGet,
			path:     "/api/organizations/abc",
			wantCode: http.StatusBadRequest,
			wantErr:  apperror.CodeValidation,
		},
		{
			name:   "missing required field",
			method: http.MethodPost,
			path:   "/api/organizations",
			body: map[string]any{
				"name":           "No INN",
				"accountingType": "budget",
			},
			wantCode: http.StatusBadRequest,
			wantErr:  apperror.CodeValidation,
		},
		{
			name:   "unknown accounting type",
			method: http.MethodPost,
			path:   "/api/organizations",
			body: func() map[string]any {
				b := budgetOrg(nil)
				b["accountingType"] = "cash"
				return b
			}(),
			wantCode: http.StatusBadRequest,
			wantErr:  apperror.CodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, tt.body)
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			body := decode[dto.ErrorResponse](t, w)
			assert.Equal(t, tt.wantErr, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}

	assert.Zero(t, s.store.Stats(context.Background()).Organizations)
}

func TestPolicySections_Filters(t *testing.T) {
	s := newTestServer(t)
	catalogSize := len(memory.DefaultCatalog())

	w := s.do(t, http.MethodGet, "/api/policy-sections", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[[]dto.PolicySectionResponse](t, w)
	assert.Len(t, all, catalogSize)

	w = s.do(t, http.MethodGet, "/api/policy-sections?accountingType=budget", nil)
	require.Equal(t, http.StatusOK, w.Code)
	budget := decode[[]dto.PolicySectionResponse](t, w)
	require.NotEmpty(t, budget)
	assert.Less(t, len(budget), catalogSize)
	for _, sec := range budget {
		assert.True(t, sec.BudgetAccounting, sec.Title)
	}

	w = s.do(t, http.MethodGet, "/api/policy-sections?industry=culture", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, sec := range decode[[]dto.PolicySectionResponse](t, w) {
		if sec.IndustrySpecific {
			assert.Contains(t, sec.Industries, "culture")
		}
	}

	w = s.do(t, http.MethodGet, "/api/policy-sections?accountingType=accounting&industry=construction", nil)
	require.Equal(t, http.StatusOK, w.Code)
	both := decode[[]dto.PolicySectionResponse](t, w)
	require.NotEmpty(t, both)
	var sawConstruction bool
	for _, sec := range both {
		assert.True(t, sec.BusinessAccounting, sec.Title)
		if sec.IndustrySpecific {
			assert.Equal(t, []string{"construction"}, sec.Industries)
			sawConstruction = true
		}
	}
	assert.True(t, sawConstruction)

	w = s.do(t, http.MethodGet, "/api/policy-sections?accountingType=&industry=", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.PolicySectionResponse](t, w), catalogSize)

	w = s.do(t, http.MethodGet, "/api/policy-sections?accountingType=cash", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, decode[dto.ErrorResponse](t, w).Code)
}

func TestOrganizations_ApplicableSections(t *testing.T) {
	s := newTestServer(t)
	withIndustry := s.createOrg(t, budgetOrg("healthcare"))
	withoutIndustry := s.createOrg(t, budgetOrg(nil))

	w := s.do(t, http.MethodGet, "/api/organizations/1/applicable-sections", nil)
	require.Equal(t, http.StatusOK, w.Code)
	healthcare := decode[[]dto.PolicySectionResponse](t, w)

	var industrySpecific int
	for _, sec := range healthcare {
		assert.True(t, sec.BudgetAccounting, sec.Title)
		if sec.IndustrySpecific {
			industrySpecific++
			assert.Contains(t, sec.Industries, *withIndustry.Industry)
		}
	}
	assert.Positive(t, industrySpecific)

	w = s.do(t, http.MethodGet, "/api/organizations/2/applicable-sections", nil)
	require.Equal(t, http.StatusOK, w.Code)
	plain := decode[[]dto.PolicySectionResponse](t, w)
	for _, sec := range plain {
		assert.True(t, sec.BudgetAccounting, sec.Title)
		assert.False(t, sec.IndustrySpecific, sec.Title)
	}
	assert.Nil(t, withoutIndustry.Industry)
	assert.Len(t, plain, len(healthcare)-industrySpecific)

	w = s.do(t, http.MethodGet, "/api/organizations/42/applicable-sections", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeneratedPolicies_CreateAndDetail(t *testing.T) {
	s := newTestServer(t)
	org := s.createOrg(t, budgetOrg("healthcare"))

	w := s.do(t, http.MethodPost, "/api/generated-policies", map[string]any{
		"organizationId":   org.ID,
		"selectedSections": []int64{3, 1, 3},
		"generatedDate":    "2026-10-19",
		"status":           "draft",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.GeneratedPolicyResponse](t, w)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, []int64{3, 1, 3}, created.SelectedSections)

	w = s.do(t, http.MethodGet, "/api/generated-policies/1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	detail := decode[dto.GeneratedPolicyDetailResponse](t, w)
	assert.Equal(t, created, detail.GeneratedPolicyResponse)
	assert.Equal(t, org, detail.Organization)
	require.Len(t, detail.Sections, 3)
	assert.Equal(t, int64(3), detail.Sections[0].ID)
	assert.Equal(t, int64(1), detail.Sections[1].ID)
	assert.Equal(t, int64(3), detail.Sections[2].ID)
	assert.NotEmpty(t, detail.Sections[0].Content)

	w = s.do(t, http.MethodGet, "/api/generated-policies/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeneratedPolicies_InvalidSectionsStoreNothing(t *testing.T) {
	s := newTestServer(t)
	org := s.createOrg(t, budgetOrg(nil))

	w := s.do(t, http.MethodPost, "/api/generated-policies", map[string]any{
		"organizationId":   org.ID,
		"selectedSections": []int64{1, 999},
		"generatedDate":    "2026-10-19",
		"status":           "draft",
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	body := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, apperror.CodeInvalidSections, body.Code)
	assert.Equal(t, []int64{999}, body.InvalidIDs)

	w = s.do(t, http.MethodGet, "/api/generated-policies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGeneratedPolicies_CreateErrors(t *testing.T) {
	s := newTestServer(t)
	s.createOrg(t, budgetOrg(nil))

	valid := func() map[string]any {
		return map[string]any{
			"organizationId":   1,
			"selectedSections": []int64{1},
			"generatedDate":    "2026-10-19",
			"status":           "draft",
		}
	}

	tests := []struct {
		name     string
		mutate   func(b map[string]any)
		wantCode string
	}{
		{"unknown organization", func(b map[string]any) { b["organizationId"] = 77 }, apperror.CodeNotFound},
		{"missing sections", func(b map[string]any) { delete(b, "selectedSections") }, apperror.CodeValidation},
		{"malformed date", func(b map[string]any) { b["generatedDate"] = "19.10.2026" }, apperror.CodeValidation},
		{"unknown status", func(b map[string]any) { b["status"] = "published" }, apperror.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := valid()
			tt.mutate(body)

			w := s.do(t, http.MethodPost, "/api/generated-policies", body)

			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, tt.wantCode, decode[dto.ErrorResponse](t, w).Code)
		})
	}

	assert.Zero(t, s.store.Stats(context.Background()).GeneratedPolicies)
}

func TestGeneratedPolicies_ListByOrganization(t *testing.T) {
	s := newTestServer(t)
	s.createOrg(t, budgetOrg(nil))
	s.createOrg(t, budgetOrg(nil))

	for _, orgID := range []int64{1, 2, 1} {
		w := s.do(t, http.MethodPost, "/api/generated-policies", map[string]any{
			"organizationId":   orgID,
			"selectedSections": []int64{},
			"generatedDate":    "2026-10-19",
			"status":           "draft",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := s.do(t, http.MethodGet, "/api/generated-policies?organizationId=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]dto.GeneratedPolicyResponse](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(3), list[1].ID)
	assert.Equal(t, []int64{}, list[0].SelectedSections)

	w = s.do(t, http.MethodGet, "/api/generated-policies?organizationId=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/health/info", nil)
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[struct {
		Storage memory.Stats `json:"storage"`
	}](t, w)
	assert.Equal(t, len(memory.DefaultCatalog()), info.Storage.PolicySections)

	w = s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
}

func TestHealthReady_EmptyCatalog(t *testing.T) {
	router := NewRouter(RouterConfig{
		Store:  memory.NewStoreWithCatalog(nil),
		Logger: logger.Nop(),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
