package dto

// ── boat order DTOs ──

// BoatOrderListRequest filters the order list.
type BoatOrderListRequest struct {
	Search string `form:"search"`
}

// BoatOrderResponse is one ingested order.
type BoatOrderResponse struct {
	ID           int64  `json:"id"`
	HullNumber   string `json:"hull_number"`
	RevisionDate string `json:"revision_date"`
	FileName     string `json:"file_name"`
	Model        *int64 `json:"model,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// BoatOrderOptionResponse is one extracted order line.
type BoatOrderOptionResponse struct {
	ID         int64  `json:"id"`
	OptionText string `json:"option_text"`
	IsHeader   bool   `json:"is_header"`
}

// BoatOrderDetailResponse is an order with its extracted option lines and the
// model's known header lines.
type BoatOrderDetailResponse struct {
	Order   BoatOrderResponse         `json:"order"`
	Options []BoatOrderOptionResponse `json:"options"`
	Headers []HeaderResponse          `json:"headers"`
}

// IngestOrderResponse reports what the ingestion pipeline created.
type IngestOrderResponse struct {
	OrderID        int64  `json:"order_id"`
	HullNumber     string `json:"hull_number"`
	RevisionDate   string `json:"revision_date"`
	FileName       string `json:"file_name"`
	Model          *int64 `json:"model,omitempty"`
	TasksCreated   int    `json:"tasks_created"`
	OptionsCreated int    `json:"options_created"`
}

// BoatOrderPDFResponse carries the public retrieval URL for the stored PDF.
type BoatOrderPDFResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
