package model

// TicketCounterModel — compteur journalier incrémenté atomiquement
// (INSERT ... ON CONFLICT DO UPDATE ... RETURNING) dans la transaction de
// création, pour que deux créations simultanées ne se partagent jamais
// le même numéro de séquence.
type TicketCounterModel struct {
	Day   string `gorm:"column:day;size:8;primaryKey" json:"day"` // YYYYMMDD
	Value int64  `gorm:"column:value;not null" json:"value"`
}

func (TicketCounterModel) TableName() string {
	return "ticket_counters"
}
