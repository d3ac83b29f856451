package middleware

import (
	"net/http"
	"net/url"

	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/internal/usecase"
	"videvida-booking-api/pkg/response"
)

type ProfileGuard struct {
	profileUsecase usecase.ProfileUsecase
}

func NewProfileGuard(profileUsecase usecase.ProfileUsecase) *ProfileGuard {
	return &ProfileGuard{profileUsecase: profileUsecase}
}

// Require sends users with an absent or incomplete profile to the
// completion route with 303. The from query parameter carries the
// originating path and only decides the post-save redirect target.
func (g *ProfileGuard) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "User information not found")
			return
		}

		validation, err := g.profileUsecase.GetValidation(r.Context(), userID)
		if err != nil {
			response.InternalServerError(w, "Failed to check profile")
			return
		}

		if !validation.IsValid {
			target := entity.RouteProfileComplete + "?from=" + url.QueryEscape(r.URL.Path)
			response.Redirect(w, target, "Profile must be completed first")
			return
		}

		next.ServeHTTP(w, r)
	})
}
