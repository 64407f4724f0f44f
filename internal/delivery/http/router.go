package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventdesk/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	listing *controllers.ListingController,
	drafts *controllers.DraftController,
	views *controllers.ViewController,
	orphans *controllers.OrphanController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Listing
	mux.HandleFunc("GET /events", listing.ListEvents)

	// Authoring
	mux.HandleFunc("POST /drafts", drafts.OpenDraft)
	mux.HandleFunc("GET /drafts/{draftID}", drafts.GetDraft)
	mux.HandleFunc("PATCH /drafts/{draftID}", drafts.UpdateDraft)
	mux.HandleFunc("DELETE /drafts/{draftID}", drafts.DiscardDraft)
	mux.HandleFunc("POST /drafts/{draftID}/categories", drafts.AddDraftCategory)
	mux.HandleFunc("DELETE /drafts/{draftID}/categories/{name}", drafts.RemoveDraftCategory)
	mux.HandleFunc("POST /drafts/{draftID}/submit", drafts.SubmitDraft)

	// Event page
	mux.HandleFunc("POST /events/{eventID}/view", views.OpenView)
	mux.HandleFunc("GET /views/{viewID}", views.GetView)
	mux.HandleFunc("DELETE /views/{viewID}", views.CloseView)
	mux.HandleFunc("POST /views/{viewID}/edit", views.BeginEdit)
	mux.HandleFunc("PATCH /views/{viewID}/draft", views.UpdateEditDraft)
	mux.HandleFunc("POST /views/{viewID}/draft/categories", views.AddEditCategory)
	mux.HandleFunc("DELETE /views/{viewID}/draft/categories/{name}", views.RemoveEditCategory)
	mux.HandleFunc("POST /views/{viewID}/save", views.SaveEdit)
	mux.HandleFunc("POST /views/{viewID}/cancel", views.CancelEdit)
	mux.HandleFunc("POST /views/{viewID}/delete", views.RequestDelete)
	mux.HandleFunc("POST /views/{viewID}/delete/cancel", views.CancelDelete)
	mux.HandleFunc("POST /views/{viewID}/delete/confirm", views.ConfirmDelete)

	// Operations
	mux.HandleFunc("GET /orphans", orphans.ListOrphans)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
