package handlers

import (
	"net/http"

	"salvatore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// AuthRedirectHandler sends the operator to Google's consent screen. Offline
// access with a forced consent prompt so a refresh token is always issued.
func AuthRedirectHandler(c *gin.Context) {
	conf := utils.GoogleOAuthConfig()
	url := conf.AuthCodeURL("state",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	c.Redirect(http.StatusFound, url)
}

// AuthCallbackHandler exchanges the authorization code and persists the
// resulting token to the tokens file.
func AuthCallbackHandler(c *gin.Context) {
	logger := utils.GetLogger()

	code := c.Query("code")
	if code == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing authorization code", "")
		return
	}

	tok, err := utils.GoogleOAuthConfig().Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Error("OAuth token exchange failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve tokens", err.Error())
		return
	}

	if err := utils.SaveGoogleToken(tok); err != nil {
		logger.Error("Failed to persist tokens", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save tokens", err.Error())
		return
	}

	logger.Info("Google tokens saved")
	c.String(http.StatusOK, "Authorization successful! Tokens saved. Restart the server to enable calendar and sheet writes.")
}
