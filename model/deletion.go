package model

// DeletionRecord is the append-only backup written when an account is removed.
type DeletionRecord struct {
	ID          string    `json:"id"`
	Identity    string    `json:"usuario_id"`
	Bank        string    `json:"banco"`
	CardBalance int64     `json:"saldo_tarjeta"`
	CashBalance int64     `json:"saldo_efectivo"`
	TotalLost   int64     `json:"total_perdido"`
	DeletedBy   string    `json:"staff_id"`
	DeletedOn   Date      `json:"fecha_eliminacion"`
	Timestamp   Timestamp `json:"timestamp"`
}
