package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"talentscout/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// MockInterviewService implements input.InterviewService for testing
type MockInterviewService struct {
	StartSessionFunc    func() (*domain.SessionView, error)
	GetSessionFunc      func(sessionID string) (*domain.SessionView, error)
	SubmitDetailsFunc   func(request domain.DetailsRequest) (*domain.SessionView, error)
	SubmitTechStackFunc func(request domain.TechStackRequest) (*domain.SessionView, error)
	SubmitAnswerFunc    func(request domain.AnswerRequest) (*domain.SessionView, error)
	ResetFunc           func(sessionID string) (*domain.SessionView, error)
	EndSessionFunc      func(sessionID string) error

	// Captured values for assertions
	DetailsCalls   []domain.DetailsRequest
	TechStackCalls []domain.TechStackRequest
	AnswerCalls    []domain.AnswerRequest
}

func (m *MockInterviewService) StartSession() (*domain.SessionView, error) {
	if m.StartSessionFunc != nil {
		return m.StartSessionFunc()
	}
	return &domain.SessionView{ID: "s-1", Stage: domain.StagePersonalDetails}, nil
}

func (m *MockInterviewService) GetSession(sessionID string) (*domain.SessionView, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(sessionID)
	}
	return &domain.SessionView{ID: sessionID, Stage: domain.StagePersonalDetails}, nil
}

func (m *MockInterviewService) SubmitDetails(request domain.DetailsRequest) (*domain.SessionView, error) {
	m.DetailsCalls = append(m.DetailsCalls, request)
	if m.SubmitDetailsFunc != nil {
		return m.SubmitDetailsFunc(request)
	}
	return &domain.SessionView{ID: request.SessionID, Stage: domain.StageTechStack}, nil
}

func (m *MockInterviewService) SubmitTechStack(request domain.TechStackRequest) (*domain.SessionView, error) {
	m.TechStackCalls = append(m.TechStackCalls, request)
	if m.SubmitTechStackFunc != nil {
		return m.SubmitTechStackFunc(request)
	}
	return &domain.SessionView{ID: request.SessionID, Stage: domain.StageInterview}, nil
}

func (m *MockInterviewService) SubmitAnswer(request domain.AnswerRequest) (*domain.SessionView, error) {
	m.AnswerCalls = append(m.AnswerCalls, request)
	if m.SubmitAnswerFunc != nil {
		return m.SubmitAnswerFunc(request)
	}
	return &domain.SessionView{ID: request.SessionID, Stage: domain.StageInterview}, nil
}

func (m *MockInterviewService) Reset(sessionID string) (*domain.SessionView, error) {
	if m.ResetFunc != nil {
		return m.ResetFunc(sessionID)
	}
	return &domain.SessionView{ID: sessionID, Stage: domain.StagePersonalDetails}, nil
}

func (m *MockInterviewService) EndSession(sessionID string) error {
	if m.EndSessionFunc != nil {
		return m.EndSessionFunc(sessionID)
	}
	return nil
}

func (m *MockInterviewService) Technologies() []domain.TechID {
	return append([]domain.TechID(nil), domain.Technologies...)
}

// MockHealthChecker implements HealthChecker for testing
type MockHealthChecker struct {
	Err error
}

func (m *MockHealthChecker) Ping() error { return m.Err }

type testResponse struct {
	Status Status          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func newTestApp(srv *MockInterviewService, health *MockHealthChecker) *fiber.App {
	app := fiber.New()
	New(srv, health).Register(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, testResponse) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var out testResponse
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("invalid JSON body %q: %v", raw, err)
	}
	return resp.StatusCode, out
}

// TestHealthCheck tests the record store ping
func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		expected int
	}{
		{name: "store reachable", expected: http.StatusOK},
		{name: "store unreachable", pingErr: errors.New("disk gone"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&MockInterviewService{}, &MockHealthChecker{Err: tt.pingErr})
			code, body := doRequest(t, app, http.MethodGet, "/health", "")
			if code != tt.expected || body.Status.Code != tt.expected {
				t.Errorf("expected %d, got %d (body %d)", tt.expected, code, body.Status.Code)
			}
		})
	}
}

// TestListTechnologies tests the catalog endpoint
func TestListTechnologies(t *testing.T) {
	app := newTestApp(&MockInterviewService{}, &MockHealthChecker{})

	code, body := doRequest(t, app, http.MethodGet, "/v1/api/technologies", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var techs []string
	if err := json.Unmarshal(body.Data, &techs); err != nil {
		t.Fatalf("expected a list of technologies: %v", err)
	}
	if len(techs) != len(domain.Technologies) || techs[5] != "SQL" {
		t.Errorf("unexpected catalog %v", techs)
	}
}

// TestStartSession tests session creation
func TestStartSession(t *testing.T) {
	app := newTestApp(&MockInterviewService{}, &MockHealthChecker{})

	code, body := doRequest(t, app, http.MethodPost, "/v1/api/sessions", "")
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	var view domain.SessionView
	if err := json.Unmarshal(body.Data, &view); err != nil {
		t.Fatalf("expected a session view: %v", err)
	}
	if view.ID != "s-1" || view.Stage != domain.StagePersonalDetails {
		t.Errorf("unexpected view %+v", view)
	}
}

// TestSubmitDetails_MapsBody tests the request conversion
func TestSubmitDetails_MapsBody(t *testing.T) {
	srv := &MockInterviewService{}
	app := newTestApp(srv, &MockHealthChecker{})

	payload := `{"full_name":"Ada","email":"ada@example.com","phone":"1","experience":3,"desired_position":"Dev","location":"London"}`
	code, body := doRequest(t, app, http.MethodPost, "/v1/api/sessions/abc/details", payload)

	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(body.Status.Message) != 1 || body.Status.Message[0] != domain.MsgDetailsSaved {
		t.Errorf("expected saved message, got %v", body.Status.Message)
	}
	if len(srv.DetailsCalls) != 1 {
		t.Fatalf("expected 1 SubmitDetails call, got %d", len(srv.DetailsCalls))
	}
	got := srv.DetailsCalls[0]
	if got.SessionID != "abc" || got.Profile.FullName != "Ada" || got.Profile.Experience != 3 || got.Profile.DesiredPosition != "Dev" {
		t.Errorf("unexpected domain request %+v", got)
	}
}

// TestSubmitDetails_NegativeExperience tests validator rejection
func TestSubmitDetails_NegativeExperience(t *testing.T) {
	srv := &MockInterviewService{}
	app := newTestApp(srv, &MockHealthChecker{})

	code, _ := doRequest(t, app, http.MethodPost, "/v1/api/sessions/abc/details", `{"experience":-2}`)
	if code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
	if len(srv.DetailsCalls) != 0 {
		t.Error("expected service not to be called")
	}
}

// TestSubmitDetails_MalformedBody tests body parsing failure
func TestSubmitDetails_MalformedBody(t *testing.T) {
	app := newTestApp(&MockInterviewService{}, &MockHealthChecker{})

	code, body := doRequest(t, app, http.MethodPost, "/v1/api/sessions/abc/details", `{"experience":`)
	if code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
	if body.Status.Code != http.StatusBadRequest {
		t.Errorf("expected status code 400 in body, got %d", body.Status.Code)
	}
}

// TestSubmitTechStack_UnknownTechnology tests the oneof rule
func TestSubmitTechStack_UnknownTechnology(t *testing.T) {
	srv := &MockInterviewService{}
	app := newTestApp(srv, &MockHealthChecker{})

	code, _ := doRequest(t, app, http.MethodPost, "/v1/api/sessions/abc/tech-stack", `{"tech_stack":["Python","COBOL"]}`)
	if code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
	if len(srv.TechStackCalls) != 0 {
		t.Error("expected service not to be called")
	}
}

// TestSubmitTechStack_MapsBody tests the request conversion
func TestSubmitTechStack_MapsBody(t *testing.T) {
	srv := &MockInterviewService{}
	app := newTestApp(srv, &MockHealthChecker{})

	code, _ := doRequest(t, app, http.MethodPost, "/v1/api/sessions/abc/tech-stack", `{"tech_stack":["Node.js","SQL"]}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	want := []domain.TechID{domain.TechNodeJS, domain.TechSQL}
	got := srv.TechStackCalls[0].TechStack
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestSubmitAnswer_MapsBody tests the answer request conversion
func TestSubmitAnswer_MapsBody(t *testing.T) {
	srv := &MockInterviewService{}
	app := newTestApp(srv, &MockHealthChecker{})

	code, _ := doRequest(t, app, http.MethodPost, "/v1/api/sessions/abc/answers", `{"answer":"goroutines"}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(srv.AnswerCalls) != 1 || srv.AnswerCalls[0].Answer != "goroutines" || srv.AnswerCalls[0].SessionID != "abc" {
		t.Errorf("unexpected calls %+v", srv.AnswerCalls)
	}
}

// TestErrorStatusMapping tests how use case errors become HTTP statuses
func TestErrorStatusMapping(t *testing.T) {
	unchanged := &domain.SessionView{ID: "abc", Stage: domain.StageInterview}

	tests := []struct {
		name        string
		err         error
		view        *domain.SessionView
		expected    int
		wantMessage string
		wantData    bool
	}{
		{
			name:        "missing fields",
			err:         &domain.ValidationError{Fields: []string{domain.LabelEmail}},
			view:        unchanged,
			expected:    http.StatusBadRequest,
			wantMessage: "Please fill in the following fields: Email Address",
			wantData:    true,
		},
		{
			name:        "blank answer",
			err:         domain.ErrBlankAnswer,
			view:        unchanged,
			expected:    http.StatusBadRequest,
			wantMessage: domain.MsgFallback,
			wantData:    true,
		},
		{
			name:     "unknown session",
			err:      domain.ErrSessionNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "wrong stage",
			err:      fmt.Errorf("cannot answer: %w", domain.ErrInvalidTransition),
			view:     unchanged,
			expected: http.StatusConflict,
			wantData: true,
		},
		{
			name:        "persistence failure",
			err:         errors.New("failed to append candidate record: disk full"),
			view:        unchanged,
			expected:    http.StatusInternalServerError,
			wantMessage: "failed to append candidate record: disk full",
			wantData:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := &MockInterviewService{
				SubmitAnswerFunc: func(domain.AnswerRequest) (*domain.SessionView, error) {
					return tt.view, tt.err
				},
			}
			app := newTestApp(srv, &MockHealthChecker{})

			code, body := doRequest(t, app, http.MethodPost, "/v1/api/sessions/abc/answers", `{"answer":"x"}`)
			if code != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, code)
			}
			if tt.wantMessage != "" && (len(body.Status.Message) != 1 || body.Status.Message[0] != tt.wantMessage) {
				t.Errorf("expected message %q, got %v", tt.wantMessage, body.Status.Message)
			}
			if hasData := len(body.Data) > 0 && string(body.Data) != "null"; hasData != tt.wantData {
				t.Errorf("expected data present=%v, got %s", tt.wantData, body.Data)
			}
		})
	}
}

// TestEndSession tests session deletion
func TestEndSession(t *testing.T) {
	var ended string
	srv := &MockInterviewService{
		EndSessionFunc: func(id string) error {
			ended = id
			return nil
		},
	}
	app := newTestApp(srv, &MockHealthChecker{})

	code, _ := doRequest(t, app, http.MethodDelete, "/v1/api/sessions/abc", "")
	if code != http.StatusOK {
		t.Errorf("expected 200, got %d", code)
	}
	if ended != "abc" {
		t.Errorf("expected EndSession(abc), got %q", ended)
	}
}

// TestReset_WrongStage tests the conflict status
func TestReset_WrongStage(t *testing.T) {
	srv := &MockInterviewService{
		ResetFunc: func(id string) (*domain.SessionView, error) {
			return &domain.SessionView{ID: id, Stage: domain.StageInterview}, domain.ErrInvalidTransition
		},
	}
	app := newTestApp(srv, &MockHealthChecker{})

	code, _ := doRequest(t, app, http.MethodPost, "/v1/api/sessions/abc/reset", "")
	if code != http.StatusConflict {
		t.Errorf("expected 409, got %d", code)
	}
}
