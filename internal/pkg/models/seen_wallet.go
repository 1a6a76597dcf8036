package models

import "time"

// SeenWalletRecord marks an address as already connected once. Existence of
// the record is the payload; it is written once and never mutated.
type SeenWalletRecord struct {
	Wallet string    `bson:"_id" json:"wallet"`
	SeenAt time.Time `bson:"seenAt" json:"seenAt"`
}
