package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loan statuses. Pending is the only non-terminal state; approved and
// rejected are reachable from pending alone.
const (
	LoanStatusPending  = "pending"
	LoanStatusApproved = "approved"
	LoanStatusRejected = "rejected"
)

// LoanRecord is a persisted loan request. Interest and Total are computed
// once at creation with the rate quoted for the requested duration and are
// never re-derived; later base-rate changes do not touch existing records.
type LoanRecord struct {
	RemoteID  primitive.ObjectID `bson:"_id,omitempty" json:"remoteId,omitempty"`
	LoanID    string             `bson:"loanId" json:"id"`
	Wallet    string             `bson:"wallet" json:"wallet"`
	Amount    float64            `bson:"amount" json:"amount"`
	Duration  int                `bson:"duration" json:"duration"`
	Rate      float64            `bson:"rate" json:"rate"`
	Interest  float64            `bson:"interest" json:"interest"`
	Total     float64            `bson:"total" json:"total"`
	Purpose   string             `bson:"purpose" json:"purpose"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func IsTerminalStatus(status string) bool {
	return status == LoanStatusApproved || status == LoanStatusRejected
}

// LoanStats is the admin dashboard aggregate over a loan snapshot.
type LoanStats struct {
	Total       int     `json:"total"`
	Pending     int     `json:"pending"`
	Approved    int     `json:"approved"`
	Rejected    int     `json:"rejected"`
	TotalVolume float64 `json:"totalVolume"`
}
