// Package a2a exposes the report generator as an A2A agent over JSON-RPC.
package a2a

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/BerylCAtieno/careerpath-agent/internal/llm"
	"github.com/BerylCAtieno/careerpath-agent/internal/models"
	"github.com/BerylCAtieno/careerpath-agent/internal/render"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EndpointPath is where HandlePlanner is mounted.
const EndpointPath = "/a2a/planner"

// ReportArtifactName names the artifact carrying the report JSON.
const ReportArtifactName = "career-report"

var errNoProfile = errors.New("message carries no student profile")

// Generator is the report generation contract the agent serves.
type Generator interface {
	GenerateCareerReport(ctx context.Context, profile models.StudentProfile) (*models.CareerReport, error)
}

type A2AHandler struct {
	generator Generator
	card      AgentCard
	logger    *slog.Logger
}

func NewA2AHandler(generator Generator, card AgentCard, logger *slog.Logger) *A2AHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &A2AHandler{
		generator: generator,
		card:      card,
		logger:    logger,
	}
}

// ServeAgentCard serves the agent card
func (h *A2AHandler) ServeAgentCard(c *gin.Context) {
	c.JSON(http.StatusOK, h.card)
}

// HandlePlanner processes A2A JSON-RPC messages
func (h *A2AHandler) HandlePlanner(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.sendErrorResponse(c, nil, CodeParseError, "Failed to read request body", nil)
		return
	}

	var rpcReq JSONRPCRequest
	if err := json.Unmarshal(body, &rpcReq); err != nil {
		h.logger.Warn("unparseable a2a request", "error", err)
		h.sendErrorResponse(c, nil, CodeParseError, "Parse error", nil)
		return
	}

	if rpcReq.JSONRPC != "2.0" {
		h.sendErrorResponse(c, rpcReq.ID, CodeInvalidRequest, "Invalid JSON-RPC version", nil)
		return
	}

	h.logger.Info("a2a request", "method", rpcReq.Method, "id", rpcReq.ID)

	switch rpcReq.Method {
	case "agent/task", "message/send":
		h.handleTask(c, rpcReq)
	default:
		h.sendErrorResponse(c, rpcReq.ID, CodeMethodNotFound, fmt.Sprintf("Method not found: %s", rpcReq.Method), nil)
	}
}

func (h *A2AHandler) handleTask(c *gin.Context, rpcReq JSONRPCRequest) {
	var params MessageParams
	if len(rpcReq.Params) == 0 {
		h.sendErrorResponse(c, rpcReq.ID, CodeInvalidParams, "Missing parameters", nil)
		return
	}
	if err := json.Unmarshal(rpcReq.Params, &params); err != nil {
		h.sendErrorResponse(c, rpcReq.ID, CodeInvalidParams, "Invalid parameters", nil)
		return
	}

	profile, err := extractProfile(params.Message)
	if err != nil {
		h.sendErrorResponse(c, rpcReq.ID, CodeInvalidParams, err.Error(), nil)
		return
	}
	if err := profile.Validate(); err != nil {
		var perr *models.ProfileError
		if errors.As(err, &perr) {
			h.sendErrorResponse(c, rpcReq.ID, CodeInvalidParams, "Invalid student profile", perr.Fields)
			return
		}
		h.sendErrorResponse(c, rpcReq.ID, CodeInvalidParams, err.Error(), nil)
		return
	}

	taskID := params.Message.TaskID
	if taskID == "" {
		taskID = uuid.NewString()
	}
	contextID := params.Message.ContextID
	if contextID == "" {
		contextID = uuid.NewString()
	}

	report, err := h.generator.GenerateCareerReport(c.Request.Context(), profile)
	if err != nil {
		h.logger.Error("a2a report generation failed", "task", taskID, "error", err)
		h.sendSuccessResponse(c, rpcReq.ID, failedTask(taskID, contextID, params.Message))
		return
	}

	result, err := completedTask(taskID, contextID, params.Message, report)
	if err != nil {
		h.logger.Error("failed to encode report artifact", "task", taskID, "error", err)
		h.sendSuccessResponse(c, rpcReq.ID, failedTask(taskID, contextID, params.Message))
		return
	}

	h.logger.Info("a2a task completed", "task", taskID, "student", report.StudentName)
	h.sendSuccessResponse(c, rpcReq.ID, result)
}

// extractProfile takes the first part that decodes to a JSON object: a data
// part, or a text part holding JSON (optionally fenced).
func extractProfile(msg A2AMessage) (models.StudentProfile, error) {
	for _, part := range msg.Parts {
		var raw []byte
		switch part.Kind {
		case "data":
			raw = part.Data
		case "text":
			raw = []byte(llm.CleanJSONBlock(part.Text))
		default:
			continue
		}

		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '{' {
			continue
		}

		var profile models.StudentProfile
		if err := json.Unmarshal(raw, &profile); err != nil {
			return models.StudentProfile{}, fmt.Errorf("student profile is not valid JSON: %w", err)
		}
		profile.TargetInstitution = strings.TrimSpace(profile.TargetInstitution)
		return profile, nil
	}
	return models.StudentProfile{}, errNoProfile
}

func completedTask(taskID, contextID string, userMsg A2AMessage, report *models.CareerReport) (TaskResult, error) {
	data, err := DataPart(report)
	if err != nil {
		return TaskResult{}, err
	}

	return TaskResult{
		ID:        taskID,
		ContextID: contextID,
		Kind:      "task",
		Status: TaskStatus{
			State:     StateCompleted,
			Timestamp: Timestamp(),
			Message: &A2AMessage{
				Kind:      "message",
				Role:      RoleAgent,
				MessageID: uuid.NewString(),
				TaskID:    taskID,
				ContextID: contextID,
				Parts:     []MessagePart{TextPart(render.Markdown(report))},
			},
		},
		Artifacts: []Artifact{
			{
				ArtifactID: uuid.NewString(),
				Name:       ReportArtifactName,
				Parts:      []MessagePart{data},
			},
		},
		History: []A2AMessage{userMsg},
	}, nil
}

func failedTask(taskID, contextID string, userMsg A2AMessage) TaskResult {
	return TaskResult{
		ID:        taskID,
		ContextID: contextID,
		Kind:      "task",
		Status: TaskStatus{
			State:     StateFailed,
			Timestamp: Timestamp(),
			Message: &A2AMessage{
				Kind:      "message",
				Role:      RoleAgent,
				MessageID: uuid.NewString(),
				TaskID:    taskID,
				ContextID: contextID,
				Parts:     []MessagePart{TextPart(models.GenerationFailedMessage)},
			},
		},
		History: []A2AMessage{userMsg},
	}
}

func (h *A2AHandler) sendSuccessResponse(c *gin.Context, id any, result any) {
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

// JSON-RPC errors are sent with 200 OK.
func (h *A2AHandler) sendErrorResponse(c *gin.Context, id any, code int, message string, data any) {
	h.logger.Warn("a2a error response", "code", code, "message", message)
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	})
}
