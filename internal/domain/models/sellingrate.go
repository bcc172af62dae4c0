package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PieceBreakdown splits a rate entry's piece count by broiler size.
type PieceBreakdown struct {
	BoilerBig   int `bson:"boilerBig" json:"boilerBig"`
	BoilerSmall int `bson:"boilerSmall" json:"boilerSmall"`
}

// RateEntry is one customer's pricing data for a specific date within the
// selling-rate document's embedded list.
type RateEntry struct {
	CustomerName       string         `bson:"customerName" json:"customerName"`
	ProposalPrice      float64        `bson:"proposalPrice" json:"proposalPrice"`
	ActualSellingPrice float64        `bson:"actualSellingPrice" json:"actualSellingPrice"`
	Piece              PieceBreakdown `bson:"piece" json:"piece"`
}

// SellingRate is the per-date rate ledger document. Entries are appended in
// arrival order; duplicate customer names within one date are representable.
type SellingRate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date      string             `bson:"date" json:"date"`
	CreatedAt string             `bson:"createdAt" json:"createdAt"`
	Rates     []RateEntry        `bson:"rates" json:"rates"`
}

// AppendRatesRequest is the payload for appending entries to a date's ledger.
type AppendRatesRequest struct {
	Date      string      `json:"date"`
	CreatedAt string      `json:"createdAt"`
	Rates     []RateEntry `json:"rates"`
}

// PiecePatch mirrors PieceBreakdown with float inputs so callers may send
// fractional or negative values; they are clamped to non-negative integers.
type PiecePatch struct {
	BoilerBig   float64 `json:"boilerBig"`
	BoilerSmall float64 `json:"boilerSmall"`
}

// Clamp converts the patch into a sanitized PieceBreakdown.
func (p PiecePatch) Clamp() PieceBreakdown {
	big := int(p.BoilerBig)
	small := int(p.BoilerSmall)
	if big < 0 {
		big = 0
	}
	if small < 0 {
		small = 0
	}
	return PieceBreakdown{BoilerBig: big, BoilerSmall: small}
}

// PatchRateRequest updates the first entry matching customerName within the
// date's ledger. Nil fields are left untouched.
type PatchRateRequest struct {
	Date               string      `json:"date"`
	CustomerName       string      `json:"customerName"`
	ProposalPrice      *float64    `json:"proposalPrice"`
	ActualSellingPrice *float64    `json:"actualSellingPrice"`
	Piece              *PiecePatch `json:"piece"`
}

// RemoveCustomerRateRequest pulls every entry matching customerName from the
// date's ledger. Unlike patch, this affects all matches.
type RemoveCustomerRateRequest struct {
	Date         string `json:"date"`
	CustomerName string `json:"customerName"`
}

// RemoveDateRequest deletes an entire per-date ledger document.
type RemoveDateRequest struct {
	Date string `json:"date"`
}
