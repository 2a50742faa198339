package routes

import (
	"net/http"

	"perfmonitor/handlers"
	"perfmonitor/middlewares"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Organization *handlers.OrganizationHandler
	Deliverable  *handlers.DeliverableHandler
	Performance  *handlers.PerformanceHandler
	Project      *handlers.ProjectHandler
}

// Setup mounts all API routes on a fresh ServeMux. Every route is JWT
// protected except login and user registration.
func Setup(h Handlers, jwtSecret string) *http.ServeMux {
	mux := http.NewServeMux()

	jwtMiddleware := middlewares.JWTMiddleware(jwtSecret)
	protected := func(handler http.HandlerFunc) http.Handler {
		return jwtMiddleware(handler)
	}

	// Open routes
	mux.Handle("POST /api/auth/login", http.HandlerFunc(h.Auth.Login))
	mux.Handle("POST /api/users", http.HandlerFunc(h.User.Create))

	// User routes
	mux.Handle("GET /api/users", protected(h.User.FindAll))
	mux.Handle("GET /api/users/stats", protected(h.User.GetStats))
	mux.Handle("GET /api/users/{email}", protected(h.User.FindOne))
	mux.Handle("PATCH /api/users/{email}", protected(h.User.Update))
	mux.Handle("DELETE /api/users/{email}", protected(h.User.Remove))

	// Organization routes
	mux.Handle("POST /api/organization", protected(h.Organization.Create))
	mux.Handle("GET /api/organization", protected(h.Organization.FindAll))
	mux.Handle("GET /api/organization/{code}", protected(h.Organization.FindOne))
	mux.Handle("PATCH /api/organization/{code}", protected(h.Organization.Update))
	mux.Handle("DELETE /api/organization/{code}", protected(h.Organization.Remove))

	// Department routes
	mux.Handle("POST /api/organization/department", protected(h.Organization.CreateDepartment))
	mux.Handle("GET /api/organization/department/{id}", protected(h.Organization.FindOneDepartment))
	mux.Handle("PATCH /api/organization/department/{id}", protected(h.Organization.UpdateDepartment))

	// Priority area routes
	mux.Handle("POST /api/organization/{code}/priority-areas", protected(h.Organization.CreatePriorityArea))
	mux.Handle("GET /api/organization/{code}/priority-areas", protected(h.Organization.FindPriorityAreas))

	// Deliverable routes
	mux.Handle("POST /api/deliverables", protected(h.Deliverable.Create))
	mux.Handle("GET /api/deliverables", protected(h.Deliverable.FindAll))
	mux.Handle("GET /api/deliverables/summary", protected(h.Deliverable.GetSummary))
	mux.Handle("GET /api/deliverables/{id}", protected(h.Deliverable.FindOne))
	mux.Handle("PATCH /api/deliverables/{id}", protected(h.Deliverable.Update))
	mux.Handle("DELETE /api/deliverables/{id}", protected(h.Deliverable.Remove))

	// Monthly submission routes
	mux.Handle("POST /api/deliverables/{id}/submissions", protected(h.Deliverable.CreateSubmission))
	mux.Handle("GET /api/deliverables/{id}/submissions", protected(h.Deliverable.GetSubmissions))
	mux.Handle("GET /api/deliverables/{id}/submissions/{year}/{month}", protected(h.Deliverable.GetSubmission))
	mux.Handle("PATCH /api/deliverables/submissions/{submissionId}", protected(h.Deliverable.UpdateSubmission))
	mux.Handle("DELETE /api/deliverables/submissions/{submissionId}", protected(h.Deliverable.RemoveSubmission))

	// Department monthly performance routes
	mux.Handle("POST /api/performance/department-monthly", protected(h.Performance.RecordMonthlyPerformance))
	mux.Handle("PATCH /api/performance/department-monthly/{id}", protected(h.Performance.UpdateMonthlyPerformance))
	mux.Handle("GET /api/performance/department/{departmentId}/current", protected(h.Performance.GetCurrent))
	mux.Handle("GET /api/performance/department/{departmentId}/history", protected(h.Performance.GetHistory))
	mux.Handle("GET /api/performance/department/{departmentId}/summary", protected(h.Performance.GetMonthlySummary))

	// Project routes
	mux.Handle("POST /api/projects", protected(h.Project.Create))
	mux.Handle("GET /api/projects", protected(h.Project.FindAll))
	mux.Handle("GET /api/projects/{id}", protected(h.Project.FindOne))
	mux.Handle("PATCH /api/projects/{id}", protected(h.Project.Update))
	mux.Handle("DELETE /api/projects/{id}", protected(h.Project.Remove))
	mux.Handle("POST /api/projects/{id}/milestones", protected(h.Project.CreateMilestone))
	mux.Handle("PATCH /api/projects/milestones/{milestoneId}", protected(h.Project.UpdateMilestone))
	mux.Handle("POST /api/projects/{id}/comments", protected(h.Project.CreateComment))
	mux.Handle("POST /api/projects/{id}/challenges", protected(h.Project.CreateChallenge))
	mux.Handle("POST /api/projects/{id}/recommendations", protected(h.Project.CreateRecommendation))

	return mux
}
