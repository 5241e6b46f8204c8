package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"gamecatalog/backend/internal/logger"
	"gamecatalog/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// TokenInput holds client credentials exchanged for a bearer token.
type TokenInput struct {
	ClientID     string `json:"client_id" binding:"required" example:"catalog-client"`
	ClientSecret string `json:"client_secret" binding:"required" example:"change-me"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"86400"`
}

// TokenHandler issues bearer tokens to the configured client.
type TokenHandler struct {
	clientID   string
	secretHash []byte
	jwtSecret  string
	ttl        time.Duration
}

// NewTokenHandler creates a token handler. secretHash is a bcrypt hash of
// the client secret; with an empty hash every request is rejected.
func NewTokenHandler(clientID, secretHash, jwtSecret string, ttl time.Duration) *TokenHandler {
	if ttl <= 0 {
		ttl = jwt.DefaultTTL
	}
	return &TokenHandler{clientID: clientID, secretHash: []byte(secretHash), jwtSecret: jwtSecret, ttl: ttl}
}

// IssueToken godoc
// @Summary      Issue a bearer token
// @Description  Exchanges client credentials for a bearer token accepted by /search.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body TokenInput true "Client credentials"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /token [post]
func (h *TokenHandler) IssueToken(c *gin.Context) {
	var input TokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	idOK := h.clientID != "" && subtle.ConstantTimeCompare([]byte(input.ClientID), []byte(h.clientID)) == 1
	if len(h.secretHash) == 0 || !idOK || bcrypt.CompareHashAndPassword(h.secretHash, []byte(input.ClientSecret)) != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "Invalid client credentials"})
		return
	}

	token, err := jwt.GenerateToken(h.jwtSecret, input.ClientID, h.ttl)
	if err != nil {
		log := logger.FromContext(c.Request.Context())
		log.Error().Err(err).Msg("failed to generate token")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer", ExpiresIn: int64(h.ttl.Seconds())})
}
