package audit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Draketheb4dass/reaction-admin/api"
	auditRepo "github.com/Draketheb4dass/reaction-admin/model/repository/audit"
)

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAudit_NotConfigured(t *testing.T) {
	e := echo.New()
	RegisterAuditRoutes(e.Group("/api"), &api.Deps{})

	rec := get(e, "/api/audit")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestAudit_ListsRecentEntries(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repo, err := auditRepo.NewAuditRepository(db)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := repo.Record(context.Background(), auditRepo.Entry{Operation: "archiveProducts", ProductID: "p1", Status: "success"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	e := echo.New()
	RegisterAuditRoutes(e.Group("/api"), &api.Deps{Audit: repo})

	rec := get(e, "/api/audit?limit=10")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Count   int `json:"count"`
		Entries []struct {
			Operation string `json:"operation"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 1 || len(body.Entries) != 1 || body.Entries[0].Operation != "archiveProducts" {
		t.Errorf("body = %+v", body)
	}
}
