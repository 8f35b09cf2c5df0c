package api

import (
	"net/http"
	"testing"

	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/token"
)

func TestDeleteAMCPlan(t *testing.T) {
	env := newTestEnv(t)
	env.addAdmin("admin1")
	plan := env.addPlan(db.AmcPlanStatusActive)

	sub := activeSubscription(env, "u1", testNow)
	sub.PlanID = plan.ID

	recorder := env.request(t, http.MethodDelete, "/v1/admin/amc/plans/"+plan.ID.String(), "admin1", token.RoleAdmin, nil)
	requireStatus(t, recorder, http.StatusBadRequest)

	if got := decodeMessage(t, recorder); got != "Cannot delete plan with 1 active subscriptions." {
		t.Errorf("message = %q", got)
	}

	sub.Status = db.AmcSubscriptionStatusCancelled

	recorder = env.request(t, http.MethodDelete, "/v1/admin/amc/plans/"+plan.ID.String(), "admin1", token.RoleAdmin, nil)
	requireStatus(t, recorder, http.StatusOK)

	if _, ok := env.store.plans[plan.ID]; ok {
		t.Errorf("plan was not deleted")
	}
}

func TestGetAMCPlan(t *testing.T) {
	env := newTestEnv(t)
	env.addAdmin("admin1")
	active := env.addPlan(db.AmcPlanStatusActive)
	inactive := env.addPlan(db.AmcPlanStatusInactive)

	requireStatus(t, env.request(t, http.MethodGet, "/v1/amc/plans/"+active.ID.String(), "", "", nil), http.StatusOK)
	requireStatus(t, env.request(t, http.MethodGet, "/v1/amc/plans/"+inactive.ID.String(), "", "", nil), http.StatusNotFound)
	requireStatus(t, env.request(t, http.MethodGet, "/v1/amc/plans/not-a-uuid", "", "", nil), http.StatusBadRequest)

	// Admins still see inactive plans
	requireStatus(t, env.request(t, http.MethodGet, "/v1/admin/amc/plans/"+inactive.ID.String(), "admin1", token.RoleAdmin, nil), http.StatusOK)
}
