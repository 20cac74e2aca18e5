package entity

import (
	"github.com/google/uuid"
)

type Deliverable struct {
	Id        uuid.UUID `json:"id" db:"id"`
	ProjectId uuid.UUID `json:"projectId" db:"project_id"`
	FileUrl   string    `json:"fileUrl" db:"file_url"`
	CreatedAt string    `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateDeliverableInput struct {
	ProjectId string // given
	FileUrl   string // public path of the stored file
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// controller model
type DeliverableOutputModel struct {
	Id        string `json:"id"`
	ProjectId string `json:"projectId"`
	FileUrl   string `json:"fileUrl"`
	CreatedAt string `json:"createdAt"`
}
