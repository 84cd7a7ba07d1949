package middleware

import (
	"log"
	"net/http"
	"os"
	"strings"
	"sync"

	"RoomAllocator/internal/auth"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	"github.com/casbin/casbin/v2/util"
	"github.com/labstack/echo/v4"
)

var (
	enforcer     *casbin.Enforcer
	enforcerOnce sync.Once
)

// getCasbinModel returns the RBAC-by-role model used to gate /api routes.
// rbac_policy.csv lets admin use GET, POST, PUT and DELETE; viewer only GET.
func getCasbinModel() string {
	modelStr := `[request_definition]
	r = sub, obj, act

	[policy_definition]
	p = sub, obj, act, eft

	[role_definition]
	g = _, _

	[policy_effect]
	e = some(where (p.eft == allow))

	[matchers]
	m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && r.act == p.act`
	if len(modelStr) < 50 || !containsAllSections(modelStr) {
		panic("casbin model string is empty or missing required sections")
	}
	return modelStr
}

func containsAllSections(s string) bool {
	sections := []string{"[request_definition]", "[policy_definition]", "[role_definition]", "[policy_effect]", "[matchers]"}
	for _, sec := range sections {
		if !strings.Contains(s, sec) {
			return false
		}
	}
	return true
}

// InitCasbinEnforcer initializes the Casbin enforcer singleton from
// rbac_policy.csv, shipped at the repository root.
func InitCasbinEnforcer() (*casbin.Enforcer, error) {
	var err error
	enforcerOnce.Do(func() {
		if _, statErr := os.Stat("rbac_policy.csv"); os.IsNotExist(statErr) {
			log.Fatalf("rbac_policy.csv not found: %v", statErr)
		}
		m, errM := model.NewModelFromString(getCasbinModel())
		if errM != nil {
			err = errM
			return
		}
		adapter := fileadapter.NewAdapter("rbac_policy.csv")
		enforcer, err = casbin.NewEnforcer(m, adapter)
		if err != nil || enforcer == nil {
			log.Fatalf("error creating casbin enforcer: %v", err)
		}
		enforcer.AddFunction("keyMatch", util.KeyMatchFunc)
	})
	return enforcer, err
}

// CasbinMiddleware enforces RBAC using Casbin for each request, matching
// the authenticated operator's role against the request path and method.
func CasbinMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get("user").(*auth.JWTClaims)
		if !ok || claims == nil {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "missing user claims"})
		}
		enf, err := InitCasbinEnforcer()
		if err != nil {
			log.Println("casbin enforcer error:", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "rbac system error"})
		}
		role := claims.Role
		obj := c.Request().URL.Path
		act := c.Request().Method
		allowed, err := enf.Enforce(role, obj, act)
		if err != nil {
			log.Println("casbin enforce error:", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "rbac system error"})
		}
		if !allowed {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
		}
		return next(c)
	}
}
