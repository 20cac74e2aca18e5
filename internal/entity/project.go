package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type Project struct {
	Id          uuid.UUID     `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	BudgetMin   float64       `json:"budgetMin" db:"budget_min"`
	BudgetMax   float64       `json:"budgetMax" db:"budget_max"`
	Deadline    string        `json:"deadline" db:"deadline"`
	BuyerId     uuid.UUID     `json:"buyerId" db:"buyer_id"`
	SellerId    uuid.NullUUID `json:"sellerId" db:"seller_id"`
	Status      string        `json:"status" db:"status"`
	CreatedAt   string        `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateProjectInput struct {
	Title       string    // given
	Description string    // given
	BudgetMin   float64   // given
	BudgetMax   float64   // given
	Deadline    time.Time // given, date only
	BuyerId     string    // taken from the caller's token
	Status      string    // should be set: "OPEN"
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// controller model
type ProjectOutputModel struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	BudgetMin   float64 `json:"budgetMin"`
	BudgetMax   float64 `json:"budgetMax"`
	Deadline    string  `json:"deadline"`
	BuyerId     string  `json:"buyerId"`
	SellerId    *string `json:"sellerId"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// controller model with related records attached
type ProjectDetailsOutputModel struct {
	ProjectOutputModel
	Buyer        *UserRef                 `json:"buyer,omitempty"`
	Seller       *UserRef                 `json:"seller,omitempty"`
	Bids         []BidOutputModel         `json:"bids,omitempty"`
	Deliverables []DeliverableOutputModel `json:"deliverables,omitempty"`
}

// controller model for the seller's own listing, deliberately
// excludes the buyer's identity
type SellerProjectOutputModel struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Deadline    string  `json:"deadline"`
	BudgetMin   float64 `json:"budgetMin"`
	BudgetMax   float64 `json:"budgetMax"`
}
