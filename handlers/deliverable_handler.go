package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"perfmonitor/models"
	service "perfmonitor/services"
	"perfmonitor/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliverableHandler struct {
	service service.DeliverableService
}

func NewDeliverableHandler(service service.DeliverableService) *DeliverableHandler {
	return &DeliverableHandler{
		service: service,
	}
}

func (h *DeliverableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var deliverable models.Deliverable
	if err := utils.DecodeAndValidate(w, r, &deliverable); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.Create(ctx, &deliverable)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Deliverable created successfully", created, http.StatusCreated)
}

func (h *DeliverableHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := models.QueryDeliverablesInput{
		Ministry:              params.Get("ministry"),
		PriorityArea:          params.Get("priorityArea"),
		ResponsibleDepartment: params.Get("responsibleDepartment"),
	}
	if raw := params.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			utils.HandleMessageResponse(w, "Invalid year filter", http.StatusBadRequest)
			return
		}
		query.Year = year
	}
	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 1 {
			utils.HandleMessageResponse(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		query.Limit = limit
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	deliverables, err := h.service.FindAll(ctx, query)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Deliverables retrieved successfully", deliverables, http.StatusOK)
}

func (h *DeliverableHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summary, err := h.service.GetSummary(ctx)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Deliverable summary retrieved successfully", summary, http.StatusOK)
}

func (h *DeliverableHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid deliverable ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	deliverable, err := h.service.FindOne(ctx, id)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Deliverable retrieved successfully", deliverable, http.StatusOK)
}

func (h *DeliverableHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid deliverable ID format", http.StatusBadRequest)
		return
	}

	var input models.UpdateDeliverableInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.Update(ctx, id, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Deliverable updated successfully", updated, http.StatusOK)
}

func (h *DeliverableHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid deliverable ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.Remove(ctx, id); err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DeliverableHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	deliverableID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid deliverable ID format", http.StatusBadRequest)
		return
	}

	var input models.CreateMonthlySubmissionInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	submission, err := h.service.CreateSubmission(ctx, deliverableID, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Submission created successfully", submission, http.StatusCreated)
}

func (h *DeliverableHandler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	deliverableID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid deliverable ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	submissions, err := h.service.GetSubmissions(ctx, deliverableID)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Submissions retrieved successfully", submissions, http.StatusOK)
}

func (h *DeliverableHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	deliverableID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid deliverable ID format", http.StatusBadRequest)
		return
	}
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || month < 1 || month > 12 {
		utils.HandleMessageResponse(w, "Invalid month", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	submission, err := h.service.GetSubmission(ctx, deliverableID, year, month)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Submission retrieved successfully", submission, http.StatusOK)
}

func (h *DeliverableHandler) UpdateSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID, err := primitive.ObjectIDFromHex(r.PathValue("submissionId"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid submission ID format", http.StatusBadRequest)
		return
	}

	var input models.UpdateMonthlySubmissionInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	submission, err := h.service.UpdateSubmission(ctx, submissionID, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Submission updated successfully", submission, http.StatusOK)
}

func (h *DeliverableHandler) RemoveSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID, err := primitive.ObjectIDFromHex(r.PathValue("submissionId"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid submission ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.RemoveSubmission(ctx, submissionID); err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
