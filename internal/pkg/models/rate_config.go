package models

// RateConfig is the singleton administrative base rate document. It is
// created implicitly on first read when absent and only ever mutated by an
// admin save.
type RateConfig struct {
	ID   string  `bson:"_id" json:"-"`
	Rate float64 `bson:"rate" json:"rate"`
}
