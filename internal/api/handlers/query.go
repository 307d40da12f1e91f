package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cloo-solutions/krishisahay/internal/api"
	"github.com/cloo-solutions/krishisahay/internal/domain"
)

type QueryService interface {
	Handle(ctx context.Context, question string) (*domain.Answer, error)
}

type QueryHandler struct {
	svc QueryService
}

func NewQueryHandler(svc QueryService) *QueryHandler {
	return &QueryHandler{svc: svc}
}

// QueryRequest keeps question untyped so a non-string value reads as missing
// instead of failing the whole decode.
type QueryRequest struct {
	Question interface{} `json:"question"`
}

type QueryResponse struct {
	Source string `json:"source"`
	Answer string `json:"answer"`
}

func (h *QueryHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			api.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		api.HandleError(w, domain.ErrQuestionRequired)
		return
	}

	question, _ := req.Question.(string)
	answer, err := h.svc.Handle(r.Context(), question)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, QueryResponse{
		Source: string(answer.Source),
		Answer: answer.Text,
	})
}
