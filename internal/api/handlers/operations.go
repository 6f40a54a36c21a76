package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/request"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/response"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/apperrors"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/service"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/validation"
)

// OperationHandler handles HTTP requests for operation endpoints.
// It parses requests and delegates business logic to the operationService.
type OperationHandler struct {
	operationService *service.OperationService
}

// NewOperationHandler creates a new OperationHandler with the provided service dependency.
func NewOperationHandler(operationService *service.OperationService) *OperationHandler {
	return &OperationHandler{
		operationService: operationService,
	}
}

// Operations handles GET requests to list operations.
// With user_uid, only operations where that user is the primary or additional advisor are returned.
//
// Endpoint: GET /api/operation?user_uid={id}&estado={estado}
// Response: 200 OK with array of model.Operation
// Error: 400 Bad Request if estado is unknown
// Error: 500 Internal Server Error if retrieval fails
func (h *OperationHandler) Operations(w http.ResponseWriter, r *http.Request) {
	filter, err := request.ParseOperationFilter(r.URL.Query().Get("user_uid"), r.URL.Query().Get("estado"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	operations, err := h.operationService.GetOperations(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOperations.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, operations)
}

// GetOperation handles GET requests to retrieve a single operation by ID.
//
// Endpoint: GET /api/operation/{uuid}
// Response: 200 OK with model.Operation
// Error: 400 Bad Request if operation ID is invalid (validated by middleware)
// Error: 404 Not Found if operation not found
// Error: 500 Internal Server Error if retrieval fails
func (h *OperationHandler) GetOperation(w http.ResponseWriter, r *http.Request) {
	operationID := chi.URLParam(r, "uuid")

	operation, err := h.operationService.GetOperation(operationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOperationNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOperationNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOperation.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, operation)
}

// CreateOperation handles POST requests to create a new operation.
// Fee amounts omitted from the body are derived from valor_reserva and the fee percentages.
//
// Endpoint: POST /api/operation
// Request Body: CreateOperationRequest
// Response: 201 Created with model.Operation
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *OperationHandler) CreateOperation(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateOperationRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateOperation(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", validationDetails(err))
		return
	}

	operation, err := h.operationService.CreateOperation(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create operation", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, operation)
}

// UpdateOperation handles PUT requests to update an existing operation.
//
// Endpoint: PUT /api/operation/{uuid}
// Request Body: UpdateOperationRequest (all fields optional)
// Response: 200 OK with updated model.Operation
// Error: 400 Bad Request if operation ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if operation not found
// Error: 500 Internal Server Error if update fails
func (h *OperationHandler) UpdateOperation(w http.ResponseWriter, r *http.Request) {
	operationID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateOperationRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateOperation(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", validationDetails(err))
		return
	}

	operation, err := h.operationService.UpdateOperation(r.Context(), operationID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOperationNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOperationNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update operation", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, operation)
}

// ToggleStatus handles PUT requests switching an operation between En Curso and Cerrada.
//
// Endpoint: PUT /api/operation/{uuid}/status
// Response: 200 OK with updated model.Operation
// Error: 404 Not Found if operation not found
// Error: 409 Conflict if the operation is Caída
// Error: 500 Internal Server Error if update fails
func (h *OperationHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	operationID := chi.URLParam(r, "uuid")

	operation, err := h.operationService.ToggleEstado(r.Context(), operationID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrOperationNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOperationNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrStatusNotTogglable):
			response.RespondError(w, http.StatusConflict, apperrors.ErrStatusNotTogglable.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update operation status", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, operation)
}

// DeleteOperation handles DELETE requests to remove an operation.
//
// Endpoint: DELETE /api/operation/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if operation not found
// Error: 500 Internal Server Error if deletion fails
func (h *OperationHandler) DeleteOperation(w http.ResponseWriter, r *http.Request) {
	operationID := chi.URLParam(r, "uuid")

	if err := h.operationService.DeleteOperation(r.Context(), operationID); err != nil {
		if errors.Is(err, apperrors.ErrOperationNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOperationNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete operation", err.Error())
		return
	}

	response.RespondNoContent(w)
}
