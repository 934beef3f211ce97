package user_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/user"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var userCreateDTO dto.UserCreate
	err := json.NewDecoder(r.Body).Decode(&userCreateDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	// роль из тела не передается, сервис всегда создает user
	u, err := h.service.CreateUser(r.Context(), entities.User{
		Email: userCreateDTO.Email,
		Name:  pointer.GetString(userCreateDTO.Name),
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidEmail):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, user.ErrAlreadyExists):
			response.Error(w, h.log, http.StatusConflict, err.Error())
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.InsertResponse{
		InsertedId: u.ID,
	})
}
