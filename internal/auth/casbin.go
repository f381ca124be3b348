package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/util"
)

// accessModel grants a subject an action on a path pattern, directly or through a role.
// A policy action of "*" matches every method.
const accessModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// NewEnforcer creates a Casbin enforcer over the built-in access model.
// Policies are kept in memory; SeedDefaultPolicies fills them in.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(accessModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse access model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}

	// Route patterns such as /api/pages/:id need keyMatch2.
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)

	return enforcer, nil
}
