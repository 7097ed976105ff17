package main

import (
	"testing"

	"github.com/lshigami/trivia/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestDependencyGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(options()))
}

func TestNewGinEngineServesSwagger(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.AllowOrigins = []string{"*"}

	router := NewGinEngine(cfg)

	var paths []string
	for _, route := range router.Routes() {
		paths = append(paths, route.Path)
	}
	assert.Contains(t, paths, "/swagger/*any")
}
