package model

import (
	"encoding/json"
	"time"
)

type Inventory struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Questions   json.RawMessage `json:"questions"`
}

type CreateInventoryRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Questions   json.RawMessage `json:"questions"`
}

// InventoryResponse is one filled-in questionnaire.
type InventoryResponse struct {
	ID             int64           `json:"id"`
	InventoryID    *int64          `json:"inventoryId,omitempty"`
	MedicalRecord  *string         `json:"medicalRecord,omitempty"`
	RespondentName string          `json:"respondentName"`
	Answers        json.RawMessage `json:"answers"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type CreateInventoryResponseRequest struct {
	RespondentName string          `json:"respondentName"`
	Answers        json.RawMessage `json:"answers"`
	MedicalRecord  *string         `json:"medicalRecord"`
}
