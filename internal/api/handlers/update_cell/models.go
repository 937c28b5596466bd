package update_cell

// UpdateCellRequest HTTP request model. RowIndex es 1-based (fila 1 son los
// encabezados), ColIndex es 0-based, tal como los entrega el endpoint de hoja.
type UpdateCellRequest struct {
	Type     string `json:"type"`
	RowIndex int64  `json:"rowIndex"`
	ColIndex int64  `json:"colIndex"`
	Value    string `json:"value"`
}

// UpdateCellResponse HTTP response model. La escritura es diferida: el
// estado inicial siempre es pending y las transiciones se observan del lado
// del servidor.
type UpdateCellResponse struct {
	State string `json:"state"`
}
