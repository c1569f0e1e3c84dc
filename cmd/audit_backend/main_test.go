package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	portsrepo "github.com/SscSPs/mma_audit/internal/core/ports/repositories"
	"github.com/SscSPs/mma_audit/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenRepositories_Memory(t *testing.T) {
	repos, closeStore, err := openRepositories(context.Background(), &config.Config{StorageDriver: config.StorageDriverMemory}, discardLogger())
	require.NoError(t, err)
	require.NotNil(t, closeStore)
	defer closeStore()

	assert.NotNil(t, repos.AuditRepo)
	assert.NotNil(t, repos.LedgerLookup)
}

func TestOpenRepositories_Failures(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"unsupported driver", &config.Config{StorageDriver: "mongodb"}},
		{"postgres without url", &config.Config{StorageDriver: config.StorageDriverPostgres}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, closeStore, err := openRepositories(context.Background(), tt.cfg, discardLogger())
			assert.Error(t, err)
			assert.Nil(t, closeStore)
			assert.Equal(t, portsrepo.RepositoryProvider{}, repos)
		})
	}
}
