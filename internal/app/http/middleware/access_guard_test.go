package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"link2pay-backend/internal/domain/access"

	"github.com/gin-gonic/gin"
)

func guardRouter(snap access.Snapshot, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set("user_id", userID)
		}
	})
	r.Use(RequireActiveAccess(func(ctx context.Context, uid uint) access.Snapshot {
		return snap
	}))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func TestRequireActiveAccessAllowsTrial(t *testing.T) {
	snap := access.Snapshot{Status: access.Status{IsTrialActive: true}, Stage: access.StageTrialActive}
	r := guardRouter(snap, 7)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRequireActiveAccessAllowsSubscriber(t *testing.T) {
	snap := access.Snapshot{Status: access.Status{HasActiveSubscription: true}, Stage: access.StageSubscribed}
	r := guardRouter(snap, 7)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRequireActiveAccessDeniesExpiredTrial(t *testing.T) {
	snap := access.Snapshot{
		Status:    access.Status{TrialExpired: true},
		Stage:     access.StageTrialExpired,
		Directive: access.DirectiveNeedsSubscriptionPay,
	}
	r := guardRouter(snap, 7)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusPaymentRequired)
	}

	var body struct {
		Directive string `json:"directive"`
		Stage     string `json:"stage"`
		Upgrade   string `json:"upgrade"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Directive != string(access.DirectiveNeedsSubscriptionPay) {
		t.Errorf("directive = %q, want %q", body.Directive, access.DirectiveNeedsSubscriptionPay)
	}
	if body.Upgrade != "/billing/subscribe" {
		t.Errorf("upgrade = %q, want /billing/subscribe", body.Upgrade)
	}
}

func TestRequireActiveAccessDeniesDegradedSnapshot(t *testing.T) {
	r := guardRouter(access.FailClosed(), 7)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if w.Code != http.StatusPaymentRequired {
		t.Errorf("status = %d, want %d (fail-closed must deny, not error)", w.Code, http.StatusPaymentRequired)
	}
}

func TestRequireActiveAccessRejectsMissingUser(t *testing.T) {
	snap := access.Snapshot{Status: access.Status{HasActiveSubscription: true}}
	r := guardRouter(snap, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
