package dto

type StatementResponse struct {
	ID        string `json:"id"`
	FileName  string `json:"file_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CreatedAt string `json:"created_at"`
}

type UploadStatementResponse struct {
	Message          string                `json:"message"`
	Statement        StatementResponse     `json:"statement"`
	TransactionCount int                   `json:"transaction_count"`
	Transactions     []TransactionResponse `json:"transactions"`
}
