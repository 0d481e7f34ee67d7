package handlers

import (
	"encoding/json"
	"net/http"

	"booking_service/casbinAuthorization"
	"booking_service/domain"
)

func jsonResponse(object interface{}, writer http.ResponseWriter) {
	resp, err := json.Marshal(object)
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	writer.Write(resp)
}

// claimsFromRequest returns the identity the authorization middleware
// attached to the request, or nil for anonymous callers.
func claimsFromRequest(req *http.Request) *domain.Claims {
	claims, ok := req.Context().Value(casbinAuthorization.ClaimsContextKey).(*domain.Claims)
	if !ok {
		return nil
	}
	return claims
}
