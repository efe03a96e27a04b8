package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karimbadr/mohasib-api/internal/domain/policy"
)

func TestAutoApprove(t *testing.T) {
	assert.True(t, policy.AutoApprove(policy.Actor{ID: "u1", Role: "manager"}))
	assert.True(t, policy.AutoApprove(policy.Actor{ID: "u2", Role: "accountant"}))
	assert.False(t, policy.AutoApprove(policy.Actor{ID: "u3", Role: "employee"}))
	assert.False(t, policy.AutoApprove(policy.Actor{ID: "u4", Role: ""}))
}

func TestCanApprove_ManagerOnly(t *testing.T) {
	assert.True(t, policy.CanApprove(policy.Actor{Role: "manager"}))
	assert.False(t, policy.CanApprove(policy.Actor{Role: "accountant"}))
	assert.False(t, policy.CanApprove(policy.Actor{Role: "employee"}))
}

func TestCanManageUsers_ManagerOnly(t *testing.T) {
	assert.True(t, policy.CanManageUsers(policy.Actor{Role: "manager"}))
	assert.False(t, policy.CanManageUsers(policy.Actor{Role: "accountant"}))
	assert.False(t, policy.CanManageUsers(policy.Actor{Role: "employee"}))
}
