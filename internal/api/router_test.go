package api

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	dbpkg "canteen_system/internal/db"
	"canteen_system/internal/middleware"
	"canteen_system/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testSecret = "test-secret"
	testTTL    = time.Hour
)

// Minimal stand-ins for the HTML templates; tests assert on these markers
// and on persisted state, not on markup.
const testTemplates = `
{{define "login.html"}}login page {{.flash}}{{end}}
{{define "register.html"}}register page {{.flash}}{{end}}
{{define "index.html"}}menu for {{.username}} {{.flash}}{{end}}
{{define "order_success.html"}}order placed total={{.total}} lines={{len .items}}{{end}}
{{define "my_orders.html"}}my orders{{range .orders}} #{{.ID}}{{end}}{{end}}
{{define "admin_orders.html"}}all orders{{range .orders}} #{{.ID}}:{{.Username}}{{end}} total={{.total}} pages={{.total_pages}}{{end}}
`

type testApp struct {
	db     *gorm.DB
	store  *session.MemoryStore
	router *gin.Engine
}

// newTestApp wires the real handlers, middleware, migrations and admin seed
// against an in-memory sqlite database and an in-memory session store.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	gormDB, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gormDB))
	require.NoError(t, dbpkg.EnsureAdmin(gormDB, "adminpass"))

	store := session.NewMemoryStore(testTTL)

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("test").Parse(testTemplates)))

	r.GET("/register", ShowRegisterHandler())
	r.POST("/register", RegisterHandler(gormDB))
	r.GET("/login", ShowLoginHandler())
	r.POST("/login", LoginHandler(gormDB, store, testSecret, testTTL))
	r.GET("/logout", LogoutHandler(store, testSecret))

	userGroup := r.Group("/")
	userGroup.Use(middleware.SessionAuthMiddleware(store, testSecret))
	userGroup.GET("", IndexHandler())
	userGroup.POST("/order", PlaceOrderHandler(gormDB))
	userGroup.GET("/myorders", MyOrdersHandler(gormDB))

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.SessionAuthMiddleware(store, testSecret), middleware.AdminOnlyMiddleware(gormDB))
	adminGroup.GET("/orders", AdminOrdersHandler(gormDB))

	return &testApp{db: gormDB, store: store, router: r}
}

// do performs one request against the test router
func (a *testApp) do(method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// register creates an account through the registration endpoint
func (a *testApp) register(t *testing.T, username, password string) {
	t.Helper()
	w := a.do(http.MethodPost, "/register", url.Values{"username": {username}, "password": {password}})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}

// login authenticates and returns the session cookie
func (a *testApp) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	w := a.do(http.MethodPost, "/login", url.Values{"username": {username}, "password": {password}})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie && ck.Value != "" {
			return ck
		}
	}
	t.Fatalf("no session cookie set for %s", username)
	return nil
}
