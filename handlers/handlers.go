package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/umakantv/go-utils/httpserver"
	logger "github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// logRequest logs the request with route/auth details pulled from the
// request context, plus any custom fields (e.g. zap.Error for errors).
func logRequest(ctx context.Context, level string, message string, fields ...zap.Field) {
	routeName := httpserver.GetRouteName(ctx)
	method := httpserver.GetRouteMethod(ctx)
	path := httpserver.GetRoutePath(ctx)
	auth := httpserver.GetRequestAuth(ctx)

	logMsg := time.Now().Format("2006-01-02 15:04:05") + " - " + routeName + " - " + method + " - " + path
	if auth != nil {
		logMsg += " - client:" + auth.Client
	}
	if message != "" {
		logMsg += " - " + message
	}

	allFields := append([]zap.Field{
		zap.String("route", routeName),
		zap.String("method", method),
		zap.String("path", path),
	}, fields...)

	switch level {
	case "info":
		logger.Info(logMsg, allFields...)
	case "error":
		logger.Error(logMsg, allFields...)
	case "debug":
		logger.Debug(logMsg, allFields...)
	}
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// decodeBody reads credentials from either a JSON body or an HTML form
// post, so browser forms and API clients hit the same routes.
func decodeBody(r *http.Request, dst interface{}) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return json.NewDecoder(r.Body).Decode(dst)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}
	values := map[string]string{}
	for key := range r.PostForm {
		values[key] = r.PostForm.Get(key)
	}
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// flashCookieName carries a one-shot message for the next page load.
// Readable by page script, so deliberately not HTTP-only.
const flashCookieName = "flash"

func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:   flashCookieName,
		Value:  strings.ReplaceAll(message, " ", "+"),
		Path:   "/",
		MaxAge: 30,
	})
}

// redirectWithFlash flashes a message and sends the browser elsewhere.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, target, message string) {
	setFlash(w, message)
	http.Redirect(w, r, target, http.StatusFound)
}

// userIDFromAuth extracts the authenticated user id injected by the
// server's session check. Returns 0 when the route was not gated.
func userIDFromAuth(ctx context.Context) int {
	auth := httpserver.GetRequestAuth(ctx)
	if auth == nil {
		return 0
	}
	if claims, ok := auth.Claims.(map[string]interface{}); ok {
		if id, ok := claims["user_id"].(int); ok {
			return id
		}
	}
	return 0
}
