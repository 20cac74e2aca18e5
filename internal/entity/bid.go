package entity

import (
	"github.com/google/uuid"
)

type Bid struct {
	Id        uuid.UUID `json:"id" db:"id"`
	ProjectId uuid.UUID `json:"projectId" db:"project_id"`
	SellerId  uuid.UUID `json:"sellerId" db:"seller_id"`
	Amount    float64   `json:"amount" db:"amount"`
	EtaDays   int       `json:"etaDays" db:"eta_days"`
	Message   string    `json:"message" db:"message"`
	CreatedAt string    `json:"createdAt" db:"created_at"`
}

// repo join result, bid plus its bidder's identity
type BidWithBidder struct {
	Bid    Bid
	Bidder UserRef
}

// service + repo input model
type CreateBidInput struct {
	ProjectId string  // given
	SellerId  string  // taken from the caller's token
	Amount    float64 // given, positive
	EtaDays   int     // given, positive
	Message   string  // given
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// controller model
type BidOutputModel struct {
	Id        string   `json:"id"`
	ProjectId string   `json:"projectId"`
	SellerId  string   `json:"sellerId"`
	Amount    float64  `json:"amount"`
	EtaDays   int      `json:"etaDays"`
	Message   string   `json:"message"`
	CreatedAt string   `json:"createdAt"`
	Seller    *UserRef `json:"seller,omitempty"`
}
