package integration

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finledger/internal/database"
	"finledger/internal/ledger"
	"finledger/internal/logger"
	"finledger/internal/persistence"
	"finledger/internal/server"
	"finledger/internal/testutil"
	"finledger/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	KV     *database.KVStore
	Store  *ledger.Store
	Syncer *persistence.Syncer
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	return openApp(t, testutil.SetupTestDB(t))
}

// openApp starts the application over an existing database, as a restart
// or a second process would.
func openApp(t *testing.T, db *gorm.DB) *testApp {
	t.Helper()

	kv := database.NewKVStore(db)
	store := ledger.NewStore()
	syncer := persistence.NewSyncer(kv, store)
	syncer.Load(context.Background())
	syncer.Start(context.Background())
	t.Cleanup(syncer.Stop)

	return &testApp{
		DB:     db,
		KV:     kv,
		Store:  store,
		Syncer: syncer,
		Router: server.NewRouter(server.NewServices(store)),
	}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// mustCreate posts body to path, expects 201 and returns the object under key.
func (app *testApp) mustCreate(t *testing.T, path, body, key string) map[string]interface{} {
	t.Helper()
	rec := app.request("POST", path, body)
	if rec.Code != 201 {
		t.Fatalf("POST %s: expected 201, got %d: %s", path, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)[key].(map[string]interface{})
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
