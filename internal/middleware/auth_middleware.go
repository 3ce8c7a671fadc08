package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edugate/students/internal/app/auth"
	"github.com/edugate/students/internal/app/metrics"
	"github.com/edugate/students/internal/app/models/dto"
)

// Request headers carrying the pre-validated caller context. An upstream
// gateway authenticates the caller and forwards identity, roles and tenant
// scope in these headers; this service trusts them as-is.
const (
	HeaderUserID        = "X-User-Id"
	HeaderUserRoles     = "X-User-Roles"
	HeaderInstitutionID = "X-Institution-Id"
)

// Context keys set by RequireAuthHeaders.
const (
	ContextUserID        = "userID"
	ContextUserRoles     = "userRoles"
	ContextInstitutionID = "institutionID"
)

// AuthMiddleware enforces the header gate and the role policy.
type AuthMiddleware struct {
	policy  *auth.Policy
	metrics *metrics.Metrics
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(policy *auth.Policy, m *metrics.Metrics) *AuthMiddleware {
	return &AuthMiddleware{
		policy:  policy,
		metrics: m,
	}
}

// RequireAuthHeaders rejects any request missing one of the three context
// headers with 401, and otherwise stores the parsed context for handlers.
func (m *AuthMiddleware) RequireAuthHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		rolesHeader := strings.TrimSpace(c.GetHeader(HeaderUserRoles))
		institutionID := strings.TrimSpace(c.GetHeader(HeaderInstitutionID))

		if userID == "" || rolesHeader == "" || institutionID == "" {
			if m.metrics != nil {
				m.metrics.RequestsUnauthorized.Inc()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("missing required authentication headers"))
			return
		}

		roles := parseRoles(rolesHeader)
		if len(roles) == 0 {
			if m.metrics != nil {
				m.metrics.RequestsUnauthorized.Inc()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("missing required authentication headers"))
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRoles, roles)
		c.Set(ContextInstitutionID, institutionID)

		c.Next()
	}
}

// RequireRole checks the caller's roles against the policy table for the
// given operation. RequireAuthHeaders must run first.
func (m *AuthMiddleware) RequireRole(operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := RolesFromContext(c)
		if roles == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("missing required authentication headers"))
			return
		}

		if !m.policy.Allowed(operation, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("insufficient permissions for this operation"))
			return
		}

		c.Next()
	}
}

// InstitutionFromContext returns the institution scope set by the header
// gate. The scope always comes from the header, never from the body, so a
// caller cannot reach another institution's data by editing the payload.
func InstitutionFromContext(c *gin.Context) string {
	return c.GetString(ContextInstitutionID)
}

// RolesFromContext returns the caller's role tags, or nil when the header
// gate did not run.
func RolesFromContext(c *gin.Context) []string {
	value, exists := c.Get(ContextUserRoles)
	if !exists {
		return nil
	}
	roles, ok := value.([]string)
	if !ok {
		return nil
	}
	return roles
}

func parseRoles(header string) []string {
	parts := strings.Split(header, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if role := strings.TrimSpace(p); role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}
