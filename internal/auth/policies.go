package auth

import (
	"fmt"
	"go-cms-app/internal/config"
	"go-cms-app/internal/logger"

	"github.com/casbin/casbin/v2"
)

// RoleClient is the role every environment holds: full access to the content API.
const RoleClient = "client"

var clientPolicies = [][]string{
	{RoleClient, "/api/categories", "*"},
	{RoleClient, "/api/categories/:id", "*"},
	{RoleClient, "/api/categories/:id/pages", "GET"},
	{RoleClient, "/api/pages", "*"},
	{RoleClient, "/api/pages/:id", "*"},
	{RoleClient, "/api/items", "*"},
	{RoleClient, "/api/items/:id", "*"},
}

// developmentPolicies are granted to the development environment only.
var developmentPolicies = [][]string{
	{config.EnvDevelopment, "/api/init-db", "POST"},
}

// SeedDefaultPolicies grants env the client role, plus the bootstrap endpoint when env is
// development. Existing policies are skipped, so repeated calls are harmless.
func SeedDefaultPolicies(e casbin.IEnforcer, env string, log logger.Logger) {
	log.Info("Seeding default authorization policies...")

	policies := clientPolicies
	if env == config.EnvDevelopment {
		policies = append(append([][]string{}, clientPolicies...), developmentPolicies...)
	}
	for _, p := range policies {
		if has, _ := e.HasPolicy(p); !has {
			if _, err := e.AddPolicy(p); err != nil {
				log.Error(err, fmt.Sprintf("Failed to add policy %v", p))
			}
		}
	}

	if has, _ := e.HasRoleForUser(env, RoleClient); !has {
		if _, err := e.AddRoleForUser(env, RoleClient); err != nil {
			log.Error(err, fmt.Sprintf("Failed to add role '%s' -> '%s'", env, RoleClient))
		}
	}
	log.Info("Policy seeding complete.")
}
