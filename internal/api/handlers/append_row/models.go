package append_row

// AppendRowRequest HTTP request model
type AppendRowRequest struct {
	Type  string   `json:"type"`
	Cells []string `json:"cells"`
}

// AppendRowResponse HTTP response model; RowIndex es la fila 1-based donde
// quedó la fila nueva, para que el dashboard pueda editarla enseguida
type AppendRowResponse struct {
	RowIndex int64 `json:"rowIndex"`
}
