package scope

import (
	"context"
	"testing"

	"partner-dashboard-srv/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestScopeContext(t *testing.T) {
	ctx := SetScopeToContext(context.Background(), model.Scope{SessionID: "sid-1"})
	assert.Equal(t, "sid-1", GetScopeFromContext(ctx).SessionID)
	assert.Equal(t, model.Scope{}, GetScopeFromContext(context.Background()))
}
