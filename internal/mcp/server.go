// ABOUTME: MCP server initialization and configuration for daytrack.
// ABOUTME: Sets up server with mood and habit tools for AI agent access.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/developer-ongar/daytrack/internal/models"
	"github.com/developer-ongar/daytrack/internal/store"
)

// Server wraps the MCP server with mood and habit storage.
type Server struct {
	mcp    *gomcp.Server
	moods  *store.RecordStore[models.MoodEntry]
	habits *store.KeyedStore[models.Habit]
	icons  *store.BlobStore
}

// ServerOption configures optional Server dependencies.
type ServerOption func(*Server)

// WithIconStore sets the blob store used for habit icons.
func WithIconStore(icons *store.BlobStore) ServerOption {
	return func(s *Server) {
		s.icons = icons
	}
}

// NewServer creates an MCP server with mood and habit capabilities.
func NewServer(moods *store.RecordStore[models.MoodEntry], habits *store.KeyedStore[models.Habit], opts ...ServerOption) (*Server, error) {
	if moods == nil {
		return nil, fmt.Errorf("mood store is required")
	}
	if habits == nil {
		return nil, fmt.Errorf("habit store is required")
	}

	mcpServer := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "daytrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:    mcpServer,
		moods:  moods,
		habits: habits,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.registerMoodTools()
	s.registerHabitTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}
