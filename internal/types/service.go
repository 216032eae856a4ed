package types

// Category represents service categories
type Category string

const (
	CategoryFilesystem Category = "filesystem"
	CategorySystem     Category = "system"
)

// Service represents a service definition
type Service struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Capabilities []string `json:"capabilities"`
	Tools        []Tool   `json:"tools"`
}

// Tool represents a callable service tool
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`

	// Deterministic marks tools whose result depends only on their
	// arguments. Filesystem tools observe or mutate external state, so
	// the engine must not reuse their results across invocations.
	Deterministic bool `json:"deterministic"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Context provides execution context for a single tool invocation
type Context struct {
	QueryID *string `json:"query_id,omitempty"`
	UserID  *string `json:"user_id,omitempty"`
}

// Result represents a tool execution result
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}

// ExecuteRequest represents a tool execution request
type ExecuteRequest struct {
	ToolID  string                 `json:"tool_id" binding:"required"`
	Params  map[string]interface{} `json:"params"`
	QueryID *string                `json:"query_id,omitempty"`
}
