package handlers

import (
	"net/http"

	"github.com/cloo-solutions/krishisahay/internal/api"
)

// RootMessage is returned by GET / to show the service is up.
const RootMessage = "🌾 KrishiSahay Backend Running Successfully"

func Root(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, api.MessageResponse{Message: RootMessage})
}

func Health(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
