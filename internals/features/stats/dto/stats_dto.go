package dto

import "time"

type MonthlyVolumeRow struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type TotalByKeyRow struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
	Total int64  `json:"total"`
}

// FinancialReport — totaux encaissés, ventilés par moyen de paiement et
// par type de service, sur la période demandée.
type FinancialReport struct {
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	GrandTotal int64           `json:"grand_total"`
	Count      int64           `json:"count"`
	ByMethod   []TotalByKeyRow `json:"by_method"`
	ByService  []TotalByKeyRow `json:"by_service"`
}

type ActivityRow struct {
	Kind       string    `json:"kind"`
	Ticket     string    `json:"ticket,omitempty"`
	Label      string    `json:"label"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ReportFilter struct {
	DateFrom string `query:"date_from"`
	DateTo   string `query:"date_to"`
}
