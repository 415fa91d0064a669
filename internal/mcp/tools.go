package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tallyworks/shopledger/internal/domain/item"
	"github.com/tallyworks/shopledger/internal/domain/submission"
)

// GetReferenceDataInput selects a reference dataset.
type GetReferenceDataInput struct {
	Dataset string `json:"dataset" jsonschema:"dataset name: materials or personnel"`
}

// ReferenceItemOutput is one normalized reference record.
type ReferenceItemOutput struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// GetReferenceDataOutput lists the projected dataset.
type GetReferenceDataOutput struct {
	Dataset string                `json:"dataset"`
	Items   []ReferenceItemOutput `json:"items"`
}

// SubmitItemInput carries one form submission.
type SubmitItemInput struct {
	Kind       string         `json:"kind" jsonschema:"item kind: FABRICATION or GENERIC"`
	Submission map[string]any `json:"submission" jsonschema:"raw form payload; include originalRowNumber to edit an existing row"`
}

// FetchForEditInput identifies a prior submission.
type FetchForEditInput struct {
	Kind  string `json:"kind" jsonschema:"item kind: FABRICATION or GENERIC"`
	LogID string `json:"log_id" jsonschema:"log ID returned by submit_item"`
}

// FetchForEditOutput returns the journaled payload.
type FetchForEditOutput struct {
	Submission map[string]any `json:"submission"`
}

// NextFabricationIDInput has no fields.
type NextFabricationIDInput struct{}

// NextFabricationIDOutput previews the next display ID.
type NextFabricationIDOutput struct {
	DisplayID string `json:"display_id"`
}

func registerTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_reference_data",
		Description: "Read a reference dataset (materials with unit costs, personnel with project rates)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetReferenceDataInput) (*sdkmcp.CallToolResult, GetReferenceDataOutput, error) {
		items, err := services.Reference.Dataset(ctx, input.Dataset)
		if err != nil {
			return nil, GetReferenceDataOutput{}, MapError(err)
		}
		out := GetReferenceDataOutput{
			Dataset: input.Dataset,
			Items:   make([]ReferenceItemOutput, 0, len(items)),
		}
		for _, itm := range items {
			out.Items = append(out.Items, ReferenceItemOutput{
				Name:  itm.Name,
				Value: itm.Value.InexactFloat64(),
			})
		}
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "submit_item",
		Description: "Append a line item to the project ledger, or update one in place when the submission carries originalRowNumber",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input SubmitItemInput) (*sdkmcp.CallToolResult, submission.Result, error) {
		kind, err := item.ParseKind(input.Kind)
		if err != nil {
			return nil, submission.Result{}, &APIError{Code: "INVALID_KIND", Message: err.Error()}
		}
		// The coordinator never errors; failures come back structured.
		result := services.Submissions.Submit(ctx, kind, item.Submission(input.Submission))
		return nil, result, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "fetch_for_edit",
		Description: "Retrieve the original form payload of a prior submission by its log ID",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input FetchForEditInput) (*sdkmcp.CallToolResult, FetchForEditOutput, error) {
		kind, err := item.ParseKind(input.Kind)
		if err != nil {
			return nil, FetchForEditOutput{}, &APIError{Code: "INVALID_KIND", Message: err.Error()}
		}
		payload, err := services.Submissions.FetchForEdit(ctx, kind, input.LogID)
		if err != nil {
			return nil, FetchForEditOutput{}, MapError(err)
		}
		return nil, FetchForEditOutput{Submission: payload}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "next_fabrication_id",
		Description: "Preview the next fabrication display ID without allocating it",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input NextFabricationIDInput) (*sdkmcp.CallToolResult, NextFabricationIDOutput, error) {
		id, err := services.Allocator.NextFabricationID(ctx)
		if err != nil {
			return nil, NextFabricationIDOutput{}, MapError(err)
		}
		return nil, NextFabricationIDOutput{DisplayID: id}, nil
	})
}
