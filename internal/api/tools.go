package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DMarby/unsplash-tool/internal/handler"
	"github.com/DMarby/unsplash-tool/internal/tool"
	"github.com/DMarby/unsplash-tool/internal/unsplash"
	"github.com/gorilla/mux"
)

const maxRequestBodySize = 1 << 20

// ToolList is the response for the tool declarations
type ToolList struct {
	Tools []tool.Definition `json:"tools"`
}

// InvokeRequest is the body of a tool invocation
type InvokeRequest struct {
	Parameters map[string]interface{} `json:"parameters"`
}

// ValidateResponse is the response for a successful credential validation
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// Lists the declared tools
func (a *API) listToolsHandler(w http.ResponseWriter, r *http.Request) *handler.Error {
	if err := handler.WriteJSON(w, http.StatusOK, ToolList{Tools: a.Tools.Definitions()}); err != nil {
		a.logError(r, "error encoding tool list", err)
		return handler.InternalServerError()
	}

	return nil
}

// Invokes a tool with the parameters in the request body
func (a *API) invokeHandler(w http.ResponseWriter, r *http.Request) *handler.Error {
	name := mux.Vars(r)["name"]

	var body InvokeRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil {
		return handler.BadRequest("Invalid request body")
	}

	result, err := a.Tools.Invoke(r.Context(), name, a.credential(r), body.Parameters)
	if err != nil {
		return a.toolError(r, err)
	}

	if err := handler.WriteJSON(w, http.StatusOK, result); err != nil {
		a.logError(r, "error encoding tool result", err)
		return handler.InternalServerError()
	}

	return nil
}

// Checks the supplied access key against Unsplash
func (a *API) validateCredentialHandler(w http.ResponseWriter, r *http.Request) *handler.Error {
	if err := a.Tools.ValidateCredential(r.Context(), a.credential(r)); err != nil {
		return a.toolError(r, err)
	}

	if err := handler.WriteJSON(w, http.StatusOK, ValidateResponse{Valid: true}); err != nil {
		a.logError(r, "error encoding validation result", err)
		return handler.InternalServerError()
	}

	return nil
}

// toolError maps tool and provider errors to http errors
func (a *API) toolError(r *http.Request, err error) *handler.Error {
	var (
		validationErr *unsplash.ValidationError
		upstreamErr   *unsplash.UpstreamError
		transportErr  *unsplash.TransportError
	)

	switch {
	case errors.Is(err, tool.ErrUnknownTool):
		return handler.NotFound(err.Error())
	case errors.As(err, &validationErr):
		return handler.BadRequest(validationErr.Message)
	case errors.As(err, &upstreamErr):
		a.Log.Infow("unsplash returned an error", handler.LogFields(r,
			"status-code", upstreamErr.StatusCode,
			"error", upstreamErr.Message,
		)...)
		return handler.BadGateway(upstreamErr.Message)
	case errors.As(err, &transportErr):
		if errors.Is(err, context.Canceled) {
			a.Log.Debugw("request cancelled", handler.LogFields(r)...)
		} else {
			a.logError(r, "error calling unsplash", transportErr.Err)
		}
		return handler.BadGateway(transportErr.Error())
	default:
		a.logError(r, "error invoking tool", err)
		return handler.InternalServerError()
	}
}
