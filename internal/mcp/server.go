package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tallyworks/shopledger/internal/domain/item"
	"github.com/tallyworks/shopledger/internal/domain/reference"
	"github.com/tallyworks/shopledger/internal/domain/submission"
)

const serverInstructions = `Estimating ledger for a small production shop.
Use get_reference_data for materials and personnel lookups, submit_item to
append or update a project line item, and fetch_for_edit to reload a prior
submission by its log ID. A submission carrying originalRowNumber (top-level
or inside formData) edits that ledger row in place; otherwise a new row is
appended.`

// SubmissionService defines submission operations needed by MCP.
type SubmissionService interface {
	Submit(ctx context.Context, kind item.Kind, sub item.Submission) submission.Result
	FetchForEdit(ctx context.Context, kind item.Kind, logID string) (item.Submission, error)
}

// ReferenceService defines reference data operations needed by MCP.
type ReferenceService interface {
	Dataset(ctx context.Context, name string) ([]reference.Item, error)
}

// AllocatorService previews display ID allocation.
type AllocatorService interface {
	NextFabricationID(ctx context.Context) (string, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Submissions SubmissionService
	Reference   ReferenceService
	Allocator   AllocatorService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "shopledger",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
