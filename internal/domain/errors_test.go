package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("gone")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("no")))
	assert.Equal(t, KindConflict, KindOf(Conflict("dup")))
	assert.Equal(t, KindInvalid, KindOf(Invalid("bad")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("who")))

	// Anything outside the tagged set is internal.
	assert.Equal(t, KindInternal, KindOf(errors.New("db down")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("resolve access: %w", Forbidden("not the owner"))
	assert.Equal(t, KindForbidden, KindOf(err))
}
