package dto

// ── model / option / header / do-not-show DTOs ──

// CreateModelRequest creates one boat model.
type CreateModelRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateModelRequest renames one boat model.
type UpdateModelRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// ModelResponse is one boat model.
type ModelResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OptionTextRequest carries a single option line (model options, do-not-show
// entries, header lines all share this shape).
type OptionTextRequest struct {
	OptionText string `json:"option_text" binding:"required,min=1"`
}

// ModelOptionResponse is one catalog option for a model.
type ModelOptionResponse struct {
	ID         int64  `json:"id"`
	ModelID    int64  `json:"model_id"`
	OptionText string `json:"option_text"`
}

// DoNotShowOptionResponse is one suppressed option line.
type DoNotShowOptionResponse struct {
	ID         int64  `json:"id"`
	OptionText string `json:"option_text"`
}

// HeaderTextRequest carries a header line for a model.
type HeaderTextRequest struct {
	HeaderText string `json:"header_text" binding:"required,min=1"`
}

// HeaderResponse is one known section-header line for a model.
type HeaderResponse struct {
	ID         int64  `json:"id"`
	ModelID    int64  `json:"model_id"`
	HeaderText string `json:"header_text"`
}
