// Package handlers contiene los helpers HTTP compartidos por todos los
// handlers: decodificación de JSON y respuestas con forma uniforme.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// MsgInternalError es el mensaje genérico que ve el usuario ante fallas de
// los servicios de respaldo; el detalle real solo sale en desarrollo
const MsgInternalError = "Ocurrió un error. Por favor intenta nuevamente."

// Development habilita el detalle de errores internos en las respuestas.
// Se setea una vez al arrancar, antes de servir tráfico.
var Development bool

// ErrorResponse respuesta de error con un único mensaje
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse respuesta de validación con mensajes por campo
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

// DecodeJSON decodifica el body JSON de la petición en dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// RespondJSON escribe una respuesta JSON con el status indicado
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError escribe una respuesta de error con un mensaje
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest escribe un 400 con el mensaje indicado
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondValidationErrors escribe un 400 con la lista de mensajes de
// validación por campo
func RespondValidationErrors(w http.ResponseWriter, messages []string) {
	RespondJSON(w, http.StatusBadRequest, ValidationResponse{Errors: messages})
}

// RespondUnauthorized escribe un 401 con el mensaje indicado
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden escribe un 403 con el mensaje indicado
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound escribe un 404 con el mensaje indicado
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict escribe un 409 con el mensaje indicado
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError escribe un 500; en producción el usuario solo ve el
// mensaje genérico, en desarrollo se incluye el error real
func RespondInternalError(w http.ResponseWriter, err error) {
	message := MsgInternalError
	if Development && err != nil {
		message = err.Error()
	}
	RespondError(w, http.StatusInternalServerError, message)
}
