package registry

import (
	"testing"

	"github.com/nfrund/gigagent/internal/config"
	"github.com/stretchr/testify/assert"
)

type greeter struct{ name string }

func TestRegistry(t *testing.T) {
	cfg := &config.Config{ServerAddr: ":0"}
	reg := New(cfg)

	assert.Same(t, cfg, reg.Config())

	key := Key[*greeter]("test.greeter")
	_, ok := Get(reg, key)
	assert.False(t, ok, "nothing registered yet")

	g := &greeter{name: "lantern"}
	Set(reg, key, g)

	got, ok := Get(reg, key)
	assert.True(t, ok)
	assert.Same(t, g, got)
	assert.Same(t, g, MustGet(reg, key))
}

func TestRegistry_TypeMismatch(t *testing.T) {
	reg := New(&config.Config{})
	Set(reg, Key[string]("shared"), "text")

	_, ok := Get(reg, Key[int]("shared"))
	assert.False(t, ok)
}

func TestMustGet_PanicsWhenMissing(t *testing.T) {
	reg := New(&config.Config{})
	assert.PanicsWithValue(t, "service not found for key: missing", func() {
		MustGet(reg, Key[int]("missing"))
	})
}
