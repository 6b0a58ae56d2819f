// Package queue defines message payloads exchanged over the message broker.
package queue

// SelectionFinalizedEvent is published when a client finalizes their photo
// selection.  It carries the computed Lightroom filter string so downstream
// consumers (notification mail, editing queue) never have to rebuild it.
type SelectionFinalizedEvent struct {
	SessionID       uint64 `json:"session_id"`
	PhotographerID  uint64 `json:"photographer_id"`
	AccessCode      string `json:"access_code"`
	SessionName     string `json:"session_name"`
	ClientName      string `json:"client_name"`
	FilterCode      string `json:"filter_code"`
	LightroomFilter string `json:"lightroom_filter"`
	SelectedCount   int    `json:"selected_count"`
	TotalPhotos     int    `json:"total_photos"`
	FinalizedAt     string `json:"finalized_at"`
}

// OrderPaidEvent is published when a payment settles an order.
type OrderPaidEvent struct {
	OrderID        uint64  `json:"order_id"`
	SessionID      uint64  `json:"session_id"`
	PhotographerID uint64  `json:"photographer_id"`
	ClientName     string  `json:"client_name"`
	Amount         float64 `json:"amount"`
	Method         string  `json:"method"`
	Gateway        string  `json:"gateway"`
	TransactionID  string  `json:"transaction_id"`
	PaidAt         string  `json:"paid_at"`
}
