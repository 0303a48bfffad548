package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/mbolis/survei-haji/database"
	"github.com/mbolis/survei-haji/export"
	"github.com/mbolis/survei-haji/log"
	"github.com/mbolis/survei-haji/survey"
)

// ErrorResponse is the JSON body of every non-2xx API answer.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message,omitempty"`
	Fields  []survey.FieldError `json:"fields,omitempty"`
}

// Will send a JSON error body with the given status
func Status(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: code, Message: msg})
}

// Will log an error, and send an HTTP response with status 500 and a retry notice
func LogInternalError(w http.ResponseWriter, r *http.Request, code string, err error) {
	log.Errorf("%s: %s", code, err)
	Status(w, r, http.StatusInternalServerError, "internal", "Terjadi kesalahan, silakan coba lagi.")
}

// Will log a debug message, and send an HTTP response with status 404
func LogNotFound(w http.ResponseWriter, r *http.Request, code string, id any) {
	log.Debugf("%s: not found (%v)", code, id)
	Status(w, r, http.StatusNotFound, "not-found", "")
}

// Will log an error code at the given level, and send
// an HTTP response with status and default text
func LogStatus(w http.ResponseWriter, r *http.Request, status int, level log.Level, code string) {
	log.Log(level, code)
	Status(w, r, status, code, http.StatusText(status))
}

// Will log an error code and message at the given level,
// and send an HTTP response with the given status and formatted message
func LogStatusMsg(w http.ResponseWriter, r *http.Request, status int, level log.Level, code string, msg string, args ...any) {
	errMsg := fmt.Sprintf(msg, args...)
	log.Log(level, code+":", errMsg)
	Status(w, r, status, code, errMsg)
}

// Fail classifies err and answers with the matching status. code is the
// dotted log code of the failed operation.
func Fail(w http.ResponseWriter, r *http.Request, code string, err error) {
	var verrs survey.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		log.Debugf("%s: %s", code, err)
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, ErrorResponse{Error: "validation", Fields: verrs})
	case errors.Is(err, database.ErrNotFound):
		LogNotFound(w, r, code, err)
	case errors.Is(err, export.ErrEmpty):
		log.Debugf("%s: %s", code, err)
		Status(w, r, http.StatusNotFound, "export.empty", "Tidak ada data untuk diekspor.")
	case errors.Is(err, database.ErrConflict):
		log.Warnf("%s: %s", code, err)
		Status(w, r, http.StatusConflict, "conflict", "Data telah diubah oleh pengguna lain.")
	case errors.Is(err, database.ErrPermission):
		log.Warnf("%s: %s", code, err)
		Status(w, r, http.StatusForbidden, "permission-denied", "Akses ditolak.")
	default:
		LogInternalError(w, r, code, err)
	}
}
