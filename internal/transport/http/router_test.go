package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sanjay-dhavanam/CivicConnect/internal/config"
	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/memory"
	"github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/translate"
	"github.com/sanjay-dhavanam/CivicConnect/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingSender keeps sent SMS messages so tests can read back the code.
type capturingSender struct{ messages []string }

func (s *capturingSender) SendSMS(_ context.Context, _, message string) error {
	s.messages = append(s.messages, message)
	return nil
}

func (s *capturingSender) lastCode(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, s.messages)
	msg := s.messages[len(s.messages)-1]
	return msg[len(msg)-6:]
}

func testConfig() *config.Config {
	return &config.Config{
		AppPort:        "0",
		AppEnv:         "test",
		OTPTTL:         10 * time.Minute,
		SessionTTL:     24 * time.Hour,
		AllowedOrigins: []string{"*"},
	}
}

func testDeps(sms *capturingSender) *Deps {
	return &Deps{
		UserRepo:           memory.NewUserRepo(),
		SessionRepo:        memory.NewSessionRepo(),
		OTPRepo:            memory.NewOTPRepo(),
		IssueRepo:          memory.NewIssueRepo(),
		CommentRepo:        memory.NewCommentRepo(),
		VoteRepo:           memory.NewVoteRepo(),
		BudgetRepo:         memory.NewBudgetRepo(),
		RepresentativeRepo: memory.NewRepresentativeRepo(),
		LocationRepo:       memory.NewLocationRepo(),
		SpeechRepo:         memory.NewSpeechRepo(),
		SMSSender:          sms,
		Translator:         translate.NewStaticTranslator(),
	}
}

func postJSON(t *testing.T, h http.Handler, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		r.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

func getPath(t *testing.T, h http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func registerAndLogin(t *testing.T, router http.Handler, phone, username, userType string) *http.Cookie {
	t.Helper()
	rr := postJSON(t, router, "/api/auth/register", domain.RegisterRequest{
		Username: username,
		FullName: "Test " + username,
		Phone:    phone,
		Password: "secret123",
		UserType: userType,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	path := "/api/auth/login"
	body := map[string]string{"phone": phone, "password": "secret123"}
	if userType == domain.UserTypeGovernment {
		path = "/api/auth/govt-login"
		body = map[string]string{"username": username, "password": "secret123"}
	}
	rr = postJSON(t, router, path, body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return sessionCookie(t, rr)
}

func TestOTPFlow_EndToEnd(t *testing.T) {
	sms := &capturingSender{}
	router := NewRouter(testConfig(), testDeps(sms))

	rr := postJSON(t, router, "/api/auth/send-otp", map[string]string{"phone": "9876543210"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	code := sms.lastCode(t)
	rr = postJSON(t, router, "/api/auth/verify-otp", map[string]string{"phone": "9876543210", "otp": code})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"verified":true`)

	// The code is spent.
	rr = postJSON(t, router, "/api/auth/verify-otp", map[string]string{"phone": "9876543210", "otp": code})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid or expired OTP")
}

func TestSendOTP_ShortPhone(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))

	rr := postJSON(t, router, "/api/auth/send-otp", map[string]string{"phone": "12345"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_DuplicatePhoneConflict(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))

	body := domain.RegisterRequest{
		Username: "alice", FullName: "Alice Kumar", Phone: "9123456780", Password: "secret123",
	}
	rr := postJSON(t, router, "/api/auth/register", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	body.Username = "bob"
	rr = postJSON(t, router, "/api/auth/register", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestLoginMeLogout_CookieLifecycle(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))
	cookie := registerAndLogin(t, router, "9876543210", "alice", domain.UserTypeCitizen)
	assert.True(t, cookie.HttpOnly)

	rr := getPath(t, router, "/api/auth/me", cookie)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rr.Body.String(), "password")

	rr = postJSON(t, router, "/api/auth/logout", struct{}{}, cookie)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = getPath(t, router, "/api/auth/me", cookie)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMe_NoCookie(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))

	rr := getPath(t, router, "/api/auth/me")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))
	registerAndLogin(t, router, "9876543210", "alice", domain.UserTypeCitizen)

	rr := postJSON(t, router, "/api/auth/login", map[string]string{"phone": "9876543210", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGovtLogin_CitizenRejected(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))
	registerAndLogin(t, router, "9876543210", "alice", domain.UserTypeCitizen)

	rr := postJSON(t, router, "/api/auth/govt-login", map[string]string{"username": "alice", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestIssueLifecycle_ReportCommentVoteResolve(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))
	citizen := registerAndLogin(t, router, "9876543210", "alice", domain.UserTypeCitizen)
	officer := registerAndLogin(t, router, "9123456780", "officer", domain.UserTypeGovernment)

	rr := postJSON(t, router, "/api/issues", domain.CreateIssueRequest{
		Title:       "Pothole on main road",
		Description: "Large pothole near the market",
		Type:        "road",
		LocationID:  "loc-1",
		Address:     "Main Road, Jayanagar",
	}, citizen)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created domain.Issue
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = postJSON(t, router, fmt.Sprintf("/api/issues/%s/comments", created.IssueID),
		domain.CreateCommentRequest{Content: "This needs urgent attention"}, citizen)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = postJSON(t, router, fmt.Sprintf("/api/issues/%s/vote", created.IssueID), struct{}{}, citizen)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	// Second vote by the same user conflicts.
	rr = postJSON(t, router, fmt.Sprintf("/api/issues/%s/vote", created.IssueID), struct{}{}, citizen)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Citizens cannot change status.
	r := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/issues/%s/status", created.IssueID),
		bytes.NewBufferString(`{"status":"resolved"}`))
	r.AddCookie(citizen)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Government resolves it.
	r = httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/issues/%s/status", created.IssueID),
		bytes.NewBufferString(`{"status":"resolved"}`))
	r.AddCookie(officer)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"resolved"`)

	rr = getPath(t, router, "/api/issues/"+created.IssueID)
	require.Equal(t, http.StatusOK, rr.Code)
	var got domain.Issue
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Upvotes)
	assert.Equal(t, 1, got.Comments)
	require.NotNil(t, got.ResolvedAt)
}

func TestIssueCreate_AnonymousAllowed(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))

	rr := postJSON(t, router, "/api/issues", domain.CreateIssueRequest{
		Title:       "Overflowing drain",
		Description: "Drain blocked after rains",
		Type:        "drainage",
		LocationID:  "loc-1",
		Address:     "2nd Main, Malleswaram",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"reported_by":"anonymous"`)
}

func TestSetLocation_ScopesIssueList(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))
	citizen := registerAndLogin(t, router, "9876543210", "alice", domain.UserTypeCitizen)

	for _, loc := range []string{"loc-1", "loc-2"} {
		rr := postJSON(t, router, "/api/issues", domain.CreateIssueRequest{
			Title:       "Issue in " + loc,
			Description: "description",
			Type:        "road",
			LocationID:  loc,
			Address:     "somewhere",
		})
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := postJSON(t, router, "/api/set-location", map[string]string{"location_id": "loc-2"}, citizen)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = getPath(t, router, "/api/issues", citizen)
	require.Equal(t, http.StatusOK, rr.Code)
	var issues []domain.Issue
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &issues))
	require.Len(t, issues, 1)
	assert.Equal(t, "loc-2", issues[0].LocationID)

	// Other filter params leave the session scoping in place.
	rr = getPath(t, router, "/api/issues?status=pending", citizen)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &issues))
	require.Len(t, issues, 1)
	assert.Equal(t, "loc-2", issues[0].LocationID)

	// An explicit location_id overrides the session location.
	rr = getPath(t, router, "/api/issues?location_id=loc-1", citizen)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &issues))
	require.Len(t, issues, 1)
	assert.Equal(t, "loc-1", issues[0].LocationID)
}

func TestBudgetList_SessionLocationFallback(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))
	officer := registerAndLogin(t, router, "9123456780", "officer", domain.UserTypeGovernment)

	for _, loc := range []string{"loc-1", "loc-2"} {
		rr := postJSON(t, router, "/api/budgets", domain.CreateBudgetRequest{
			Title: "Budget for " + loc, Amount: 1000000, Category: "infrastructure",
			LocationID: loc, FiscalYear: "2026-27",
		}, officer)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}

	rr := postJSON(t, router, "/api/set-location", map[string]string{"location_id": "loc-2"}, officer)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = getPath(t, router, "/api/budgets", officer)
	require.Equal(t, http.StatusOK, rr.Code)
	var budgets []domain.Budget
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &budgets))
	require.Len(t, budgets, 1)
	assert.Equal(t, "loc-2", budgets[0].LocationID)

	// Other filter params do not disable the session scoping.
	rr = getPath(t, router, "/api/budgets?fiscal_year=2026-27", officer)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &budgets))
	require.Len(t, budgets, 1)
	assert.Equal(t, "loc-2", budgets[0].LocationID)

	// An explicit location wins over the session's.
	rr = getPath(t, router, "/api/budgets?location_id=loc-1", officer)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &budgets))
	require.Len(t, budgets, 1)
	assert.Equal(t, "loc-1", budgets[0].LocationID)
}

func TestRepresentativeList_SessionLocationFallback(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))
	officer := registerAndLogin(t, router, "9123456780", "officer", domain.UserTypeGovernment)

	for i, loc := range []string{"loc-1", "loc-2"} {
		rr := postJSON(t, router, "/api/representatives", domain.CreateRepresentativeRequest{
			Name: fmt.Sprintf("Rep %d", i), Position: "Councillor", LocationID: loc,
		}, officer)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}

	rr := postJSON(t, router, "/api/set-location", map[string]string{"location_id": "loc-1"}, officer)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = getPath(t, router, "/api/representatives", officer)
	require.Equal(t, http.StatusOK, rr.Code)
	var reps []domain.Representative
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reps))
	require.Len(t, reps, 1)
	assert.Equal(t, "loc-1", reps[0].LocationID)

	// Anonymous callers have no session location and see everything.
	rr = getPath(t, router, "/api/representatives")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reps))
	assert.Len(t, reps, 2)
}

func TestBudgets_GovernmentOnlyCreate(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))
	citizen := registerAndLogin(t, router, "9876543210", "alice", domain.UserTypeCitizen)
	officer := registerAndLogin(t, router, "9123456780", "officer", domain.UserTypeGovernment)

	body := domain.CreateBudgetRequest{
		Title: "Road resurfacing", Amount: 5000000, Category: "infrastructure",
		LocationID: "loc-1", FiscalYear: "2026-27",
	}
	rr := postJSON(t, router, "/api/budgets", body, citizen)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = postJSON(t, router, "/api/budgets", body, officer)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = getPath(t, router, "/api/budgets?fiscal_year=2026-27")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Road resurfacing")
}

func TestSpeechTranslate(t *testing.T) {
	deps := testDeps(&capturingSender{})
	router := NewRouter(testConfig(), deps)
	memory.Seed(context.Background(), deps.LocationRepo, deps.RepresentativeRepo, deps.BudgetRepo, deps.SpeechRepo)

	rr := getPath(t, router, "/api/speeches")
	require.Equal(t, http.StatusOK, rr.Code)
	var speeches []domain.Speech
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &speeches))
	require.NotEmpty(t, speeches)

	rr = getPath(t, router, "/api/speeches/"+speeches[0].SpeechID+"/translate?language=Hindi")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), "Hindi")

	rr = getPath(t, router, "/api/speeches/"+speeches[0].SpeechID+"/translate")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploads_UnconfiguredStorage(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))
	citizen := registerAndLogin(t, router, "9876543210", "alice", domain.UserTypeCitizen)

	rr := postJSON(t, router, "/api/uploads", struct{}{}, citizen)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestUpdateMe_RequiresSession(t *testing.T) {
	router := NewRouter(testConfig(), testDeps(&capturingSender{}))
	citizen := registerAndLogin(t, router, "9876543210", "alice", domain.UserTypeCitizen)

	name := "Alice K."
	r := httptest.NewRequest(http.MethodPut, "/api/users/me", bytes.NewBufferString(`{"full_name":"Alice K."}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	r = httptest.NewRequest(http.MethodPut, "/api/users/me", bytes.NewBufferString(`{"full_name":"`+name+`"}`))
	r.AddCookie(citizen)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Alice K.")
}
