package auth

import (
	"net/http"

	"github.com/hiredeck/talentgate/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeMissingToken  = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Authentication required")
	CodeInvalidToken  = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeTokenRevoked  = ErrRegistry.Register("TOKEN_REVOKED", errx.TypeAuthentication, http.StatusUnauthorized, "Token has been revoked")
	CodeAdminRequired = ErrRegistry.Register("ADMIN_REQUIRED", errx.TypeAuthorization, http.StatusForbidden, "Access denied. Admin privileges required.")
)

func ErrMissingToken() *errx.Error  { return ErrRegistry.New(CodeMissingToken) }
func ErrInvalidToken() *errx.Error  { return ErrRegistry.New(CodeInvalidToken) }
func ErrTokenRevoked() *errx.Error  { return ErrRegistry.New(CodeTokenRevoked) }
func ErrAdminRequired() *errx.Error { return ErrRegistry.New(CodeAdminRequired) }
