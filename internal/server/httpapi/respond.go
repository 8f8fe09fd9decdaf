package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// StatusFor maps an API error code to its HTTP status.
func StatusFor(code string) int {
	switch code {
	case common.CodeEmailTaken:
		return http.StatusConflict
	case common.CodeInvalidCredentials, common.CodeMissingToken, common.CodeTokenExpired,
		common.CodeTokenInvalid, common.CodeAccountNotFound:
		return http.StatusUnauthorized
	case common.CodePostNotFound:
		return http.StatusNotFound
	case common.CodeInsufficientCredits:
		return http.StatusPaymentRequired
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeUpstreamIdentity:
		return http.StatusBadGateway
	case common.CodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {"error":{"code","message"}}. The message is
// always the sentinel's own text, so wrapped details never leak.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := common.ErrorCode(err)
	status := StatusFor(code)

	if status == http.StatusInternalServerError {
		s.log.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	JSON(w, status, errorBody{Error: errorDetail{Code: code, Message: common.ErrorForCode(code).Error()}})
}

// writeInvalid reports a malformed or invalid request body.
func writeInvalid(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{Code: common.CodeInvalidInput, Message: msg}})
}

// decodeJSON decodes the body into dst and validates it.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeInvalid(w, "invalid request body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeInvalid(w, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid input"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
