package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
	"github.com/sawamura/stagepedia-backend/internal/service/agency"
)

type mockAgencyService struct {
	createFunc func(ctx context.Context, p *domain.Principal, input agency.CreateInput) (*domain.Draft[domain.AgencyAttrs], error)
	editFunc   func(ctx context.Context, p *domain.Principal, input agency.EditInput) (*domain.Draft[domain.AgencyAttrs], error)
}

func (m *mockAgencyService) Create(ctx context.Context, p *domain.Principal, input agency.CreateInput) (*domain.Draft[domain.AgencyAttrs], error) {
	return m.createFunc(ctx, p, input)
}

func (m *mockAgencyService) Edit(ctx context.Context, p *domain.Principal, input agency.EditInput) (*domain.Draft[domain.AgencyAttrs], error) {
	return m.editFunc(ctx, p, input)
}

func agencyMux(svc *mockAgencyService) *http.ServeMux {
	h := NewAgencyHandler(svc, testLogger())
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/agencies/drafts", h.Create)
	mux.HandleFunc("PUT /v1/agencies/drafts/{id}", h.Edit)
	return mux
}

func TestAgencyCreate(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := &mockAgencyService{
		createFunc: func(_ context.Context, _ *domain.Principal, input agency.CreateInput) (*domain.Draft[domain.AgencyAttrs], error) {
			if input.Language != domain.LanguageJA {
				t.Errorf("expected language ja, got %s", input.Language)
			}
			if input.Name != "sunrise pro" {
				t.Errorf("expected name 'sunrise pro', got %q", input.Name)
			}
			return &domain.Draft[domain.AgencyAttrs]{
				ID:               uuid.New(),
				TranslationSetID: uuid.New(),
				EditorID:         uuid.New(),
				Language:         input.Language,
				Status:           domain.StatusPending,
				Attrs:            domain.AgencyAttrs{AgencyID: uuid.New(), Name: input.Name},
				CreatedAt:        now,
				UpdatedAt:        now,
			}, nil
		},
	}

	body := `{"language":"ja","name":"sunrise pro"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/agencies/drafts", strings.NewReader(body))
	req = asPrincipal(req, domain.RoleCollaborator)
	rec := httptest.NewRecorder()

	agencyMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp draftResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "PENDING" {
		t.Errorf("expected status PENDING, got %q", resp.Status)
	}
	if resp.EntityType != "AGENCY" {
		t.Errorf("expected entity type AGENCY, got %q", resp.EntityType)
	}
}

func TestAgencyCreate_Anonymous(t *testing.T) {
	t.Parallel()

	svc := &mockAgencyService{
		createFunc: func(_ context.Context, _ *domain.Principal, _ agency.CreateInput) (*domain.Draft[domain.AgencyAttrs], error) {
			t.Error("service must not be called for an anonymous request")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/agencies/drafts", strings.NewReader(`{"language":"ja","name":"x"}`))
	rec := httptest.NewRecorder()

	agencyMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestAgencyCreate_UnsupportedLanguage(t *testing.T) {
	t.Parallel()

	svc := &mockAgencyService{
		createFunc: func(_ context.Context, _ *domain.Principal, _ agency.CreateInput) (*domain.Draft[domain.AgencyAttrs], error) {
			t.Error("service must not be called for an unsupported language")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/agencies/drafts", strings.NewReader(`{"language":"fr","name":"x"}`))
	req = asPrincipal(req, domain.RoleCollaborator)
	rec := httptest.NewRecorder()

	agencyMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAgencyCreate_ValidationFields(t *testing.T) {
	t.Parallel()

	svc := &mockAgencyService{
		createFunc: func(_ context.Context, _ *domain.Principal, _ agency.CreateInput) (*domain.Draft[domain.AgencyAttrs], error) {
			return nil, domain.NewValidationErrors([]domain.FieldError{
				{Field: "name", Message: "required"},
			})
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/agencies/drafts", strings.NewReader(`{"language":"ja"}`))
	req = asPrincipal(req, domain.RoleCollaborator)
	rec := httptest.NewRecorder()

	agencyMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Fields) != 1 || resp.Fields[0].Field != "name" {
		t.Errorf("expected a field error on 'name', got %+v", resp.Fields)
	}
}

func TestAgencyCreate_BadBody(t *testing.T) {
	t.Parallel()

	svc := &mockAgencyService{}

	req := httptest.NewRequest(http.MethodPost, "/v1/agencies/drafts", strings.NewReader("{not json"))
	req = asPrincipal(req, domain.RoleCollaborator)
	rec := httptest.NewRecorder()

	agencyMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAgencyEdit(t *testing.T) {
	t.Parallel()

	draftID := uuid.New()
	agencyID := uuid.New()
	svc := &mockAgencyService{
		editFunc: func(_ context.Context, _ *domain.Principal, input agency.EditInput) (*domain.Draft[domain.AgencyAttrs], error) {
			if input.DraftID != draftID {
				t.Errorf("expected draft id %s, got %s", draftID, input.DraftID)
			}
			if input.AgencyID != agencyID {
				t.Errorf("expected agency id %s, got %s", agencyID, input.AgencyID)
			}
			return &domain.Draft[domain.AgencyAttrs]{
				ID:       draftID,
				Language: domain.LanguageJA,
				Status:   domain.StatusPending,
				Attrs:    domain.AgencyAttrs{AgencyID: agencyID, Name: input.Name},
			}, nil
		},
	}

	body := `{"agencyId":"` + agencyID.String() + `","name":"renamed"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/agencies/drafts/"+draftID.String(), strings.NewReader(body))
	req = asPrincipal(req, domain.RoleCollaborator)
	rec := httptest.NewRecorder()

	agencyMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
