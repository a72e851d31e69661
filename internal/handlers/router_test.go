package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"

	"eduprep/internal/middleware"
	"eduprep/internal/models"
	"eduprep/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testApp struct {
	router   *gin.Engine
	db       *gorm.DB
	auth     *services.AuthService
	catalog  *services.CatalogService
	attempts *services.AttemptService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Quiz{},
		&models.Question{},
		&models.Attempt{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	auth := services.NewAuthService(db, "test-secret")
	catalog := services.NewCatalogService(db)
	attempts := services.NewAttemptService(db)

	return &testApp{
		router:   NewRouter(auth, catalog, attempts),
		db:       db,
		auth:     auth,
		catalog:  catalog,
		attempts: attempts,
	}
}

// sessionCookie registers a user (admin or not) and returns a valid session
// cookie for it.
func (app *testApp) sessionCookie(t *testing.T, username string, isAdmin bool) (*http.Cookie, *models.User) {
	t.Helper()

	user, err := app.auth.Register(username, "pw1")
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	if isAdmin {
		if err := app.db.Model(user).Update("is_admin", true).Error; err != nil {
			t.Fatalf("promote %s: %v", username, err)
		}
		user.IsAdmin = true
	}

	token, err := app.auth.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}, user
}

func (app *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func formRequest(path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return req
}

func TestAPIQuizzesNewestFirst(t *testing.T) {
	app := newTestApp(t)

	if _, err := app.catalog.CreateQuiz("Older", nil); err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	if _, err := app.catalog.CreateQuiz("Newer", nil); err != nil {
		t.Fatalf("create quiz: %v", err)
	}

	rec := app.do(httptest.NewRequest(http.MethodGet, "/api/quizzes", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var items []QuizSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].Title != "Newer" || items[1].Title != "Older" {
		t.Fatalf("order = [%q %q], want [Newer Older]", items[0].Title, items[1].Title)
	}
}

func TestAPIQuizzesEmpty(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/api/quizzes", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("body = %q, want []", got)
	}
}

func TestDashboardRedirectsAnonymous(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("location = %q, want /login", loc)
	}
}

func TestAdminGating(t *testing.T) {
	app := newTestApp(t)
	userCookie, _ := app.sessionCookie(t, "student", false)
	adminCookie, _ := app.sessionCookie(t, "teacher", true)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(userCookie)
	if rec := app.do(req); rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("non-admin: status = %d location = %q, want redirect to /login", rec.Code, rec.Header().Get("Location"))
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(adminCookie)
	if rec := app.do(req); rec.Code != http.StatusOK {
		t.Fatalf("admin: status = %d, want 200", rec.Code)
	}
}

func TestRegisterThenLogin(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(formRequest("/register", url.Values{"username": {"alice"}, "password": {"pw1"}}))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("register: status = %d location = %q, want redirect to /login", rec.Code, rec.Header().Get("Location"))
	}

	rec = app.do(formRequest("/login", url.Values{"username": {"alice"}, "password": {"pw1"}}))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("login: status = %d location = %q, want redirect to /dashboard", rec.Code, rec.Header().Get("Location"))
	}

	var sessionSet bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie && cookie.Value != "" {
			sessionSet = true
		}
	}
	if !sessionSet {
		t.Fatalf("login did not set a session cookie")
	}
}

func TestLoginInvalidCredentialsRedirectsBack(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(formRequest("/login", url.Values{"username": {"ghost"}, "password": {"nope"}}))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("status = %d location = %q, want redirect back to /login", rec.Code, rec.Header().Get("Location"))
	}
}

func TestQuizNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/quiz/999", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestQuizSubmitFlow(t *testing.T) {
	app := newTestApp(t)
	cookie, user := app.sessionCookie(t, "alice", false)

	quiz, err := app.catalog.CreateQuiz("Math 1", nil)
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	q1, err := app.catalog.CreateQuestion(quiz.ID, "2+2?", "4", "5", "6", "7", "A")
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	q2, err := app.catalog.CreateQuestion(quiz.ID, "3*3?", "6", "8", "9", "12", "C")
	if err != nil {
		t.Fatalf("create question: %v", err)
	}

	form := url.Values{
		"student_name":              {"Alice"},
		"q_" + itoa(q1.ID):          {"a"},
		"q_" + itoa(q2.ID):          {"b"},
		"q_424242":                  {"a"},
		"unrelated_field_untouched": {"x"},
	}
	rec := app.do(formRequest("/quiz/"+itoa(quiz.ID), form, cookie))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("submit: status = %d location = %q, want redirect to /dashboard", rec.Code, rec.Header().Get("Location"))
	}

	var attempt models.Attempt
	if err := app.db.Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).First(&attempt).Error; err != nil {
		t.Fatalf("load attempt: %v", err)
	}
	if attempt.Score != 1 || attempt.Total != 2 {
		t.Fatalf("attempt = %d/%d, want 1/2", attempt.Score, attempt.Total)
	}

	// Resubmitting bounces to the dashboard without adding a row.
	rec = app.do(formRequest("/quiz/"+itoa(quiz.ID), form, cookie))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("resubmit: status = %d location = %q, want redirect to /dashboard", rec.Code, rec.Header().Get("Location"))
	}
	var count int64
	app.db.Model(&models.Attempt{}).Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).Count(&count)
	if count != 1 {
		t.Fatalf("attempt rows = %d, want 1", count)
	}
}

func TestQuizSubmitRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	quiz, err := app.catalog.CreateQuiz("Math 1", nil)
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}

	rec := app.do(formRequest("/quiz/"+itoa(quiz.ID), url.Values{"student_name": {"Alice"}}))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("status = %d location = %q, want redirect to /login", rec.Code, rec.Header().Get("Location"))
	}
}

func TestAdminActions(t *testing.T) {
	app := newTestApp(t)
	adminCookie, _ := app.sessionCookie(t, "teacher", true)

	rec := app.do(formRequest("/admin", url.Values{
		"action": {"create_subject"},
		"name":   {"Math"},
		"grade":  {"5"},
		"term":   {"1"},
	}, adminCookie))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin" {
		t.Fatalf("create_subject: status = %d location = %q, want redirect to /admin", rec.Code, rec.Header().Get("Location"))
	}

	rec = app.do(formRequest("/admin", url.Values{
		"action":     {"create_quiz"},
		"title":      {"Math 1"},
		"subject_id": {"1"},
	}, adminCookie))
	if rec.Code != http.StatusFound {
		t.Fatalf("create_quiz: status = %d, want 302", rec.Code)
	}

	rec = app.do(formRequest("/admin", url.Values{
		"action":   {"add_question"},
		"quiz_id":  {"1"},
		"question": {"2+2?"},
		"a":        {"3"},
		"b":        {"4"},
		"c":        {"5"},
		"d":        {"6"},
		"correct":  {"b"},
	}, adminCookie))
	if rec.Code != http.StatusFound {
		t.Fatalf("add_question: status = %d, want 302", rec.Code)
	}

	var question models.Question
	if err := app.db.First(&question).Error; err != nil {
		t.Fatalf("load question: %v", err)
	}
	if question.Correct != "B" {
		t.Fatalf("correct = %q, want normalized B", question.Correct)
	}

	rec = app.do(formRequest("/admin", url.Values{
		"action":      {"delete_question"},
		"question_id": {itoa(question.ID)},
	}, adminCookie))
	if rec.Code != http.StatusFound {
		t.Fatalf("delete_question: status = %d, want 302", rec.Code)
	}
	var count int64
	app.db.Model(&models.Question{}).Count(&count)
	if count != 0 {
		t.Fatalf("questions remaining = %d, want 0", count)
	}
}

func TestAdminInvalidCorrectOptionRejected(t *testing.T) {
	app := newTestApp(t)
	adminCookie, _ := app.sessionCookie(t, "teacher", true)

	if _, err := app.catalog.CreateQuiz("Math 1", nil); err != nil {
		t.Fatalf("create quiz: %v", err)
	}

	rec := app.do(formRequest("/admin", url.Values{
		"action":   {"add_question"},
		"quiz_id":  {"1"},
		"question": {"2+2?"},
		"correct":  {"E"},
	}, adminCookie))
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}

	var count int64
	app.db.Model(&models.Question{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid question persisted, rows = %d, want 0", count)
	}
}
