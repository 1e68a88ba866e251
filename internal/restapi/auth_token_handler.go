package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"gaia.climateintel.org/internal/auth"
	"gaia.climateintel.org/internal/models"
	"gaia.climateintel.org/internal/utils"
)

type authTokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (api *RestAPI) authTokenHandler(w http.ResponseWriter, r *http.Request) {
	var request authTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"Request body must be valid JSON."},
		})
		return
	}

	fieldErrors := make(map[string][]string)
	if request.Username == "" {
		fieldErrors["username"] = append(fieldErrors["username"], "Missing required field \"username\".")
	}
	if request.Password == "" {
		fieldErrors["password"] = append(fieldErrors["password"], "Missing required field \"password\".")
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	session, err := api.Auth.Login(r.Context(), request.Username, request.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		api.sendUnauthorized(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(session, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

type authRegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// minPasswordLength bounds self-service registration passwords.
const minPasswordLength = 8

func (api *RestAPI) authRegisterHandler(w http.ResponseWriter, r *http.Request) {
	var request authRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"Request body must be valid JSON."},
		})
		return
	}

	fieldErrors := make(map[string][]string)
	if request.Username == "" {
		fieldErrors["username"] = append(fieldErrors["username"], "Missing required field \"username\".")
	} else if err := utils.ValidateID(request.Username); err != nil {
		fieldErrors["username"] = append(fieldErrors["username"], err.Error())
	}
	if len(request.Password) < minPasswordLength {
		fieldErrors["password"] = append(fieldErrors["password"], "Invalid field value for field \"password\".")
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	session, err := api.Auth.Register(r.Context(), request.Username, utils.SanitizeInput(request.Email), request.Password)
	if errors.Is(err, auth.ErrUsernameTaken) {
		api.validationErrorResponse(w, r, map[string][]string{
			"username": {"Username is already taken."},
		})
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(session, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
