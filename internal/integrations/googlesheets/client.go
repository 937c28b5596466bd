package googlesheets

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client envuelve el servicio de Google Sheets. Se construye una vez al
// arrancar y se comparte; el wrapper es sin estado y seguro para uso
// concurrente.
type Client struct {
	svc *sheets.Service
	log Logger
}

// New crea el cliente con credenciales de service account. Sin credenciales
// el cliente queda deshabilitado y cada operación retorna ErrNotConfigured.
func New(ctx context.Context, serviceAccountJSON []byte, log Logger) (*Client, error) {
	if len(serviceAccountJSON) == 0 {
		log.Warn("Google Sheets not configured — finance features disabled")
		return &Client{log: log}, nil
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(serviceAccountJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create sheets service: %v", ErrInternal, err)
	}

	return &Client{svc: svc, log: log}, nil
}

// GetValues lee todas las filas de un rango como strings
func (c *Client) GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	if c.svc == nil {
		return nil, ErrNotConfigured
	}

	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get values in %s: %v", ErrUpstream, readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// UpdateCell escribe un único valor en la celda indicada (notación A1).
// No hay control de concurrencia contra ediciones externas: gana la última
// escritura.
func (c *Client) UpdateCell(ctx context.Context, spreadsheetID, cellRange, value string) error {
	if c.svc == nil {
		return ErrNotConfigured
	}

	body := &sheets.ValueRange{Values: [][]interface{}{{value}}}

	_, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, cellRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: failed to update cell %s: %v", ErrUpstream, cellRange, err)
	}

	return nil
}

// AppendRow agrega una fila al final del rango y retorna el índice 1-based
// que el servicio le asignó, extraído del updatedRange reportado
func (c *Client) AppendRow(ctx context.Context, spreadsheetID, appendRange string, cells []string) (int64, error) {
	if c.svc == nil {
		return 0, ErrNotConfigured
	}

	raw := make([]interface{}, len(cells))
	for i, cell := range cells {
		raw[i] = cell
	}
	body := &sheets.ValueRange{Values: [][]interface{}{raw}}

	resp, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, appendRange, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to append row: %v", ErrUpstream, err)
	}

	if resp.Updates == nil || resp.Updates.UpdatedRange == "" {
		return 0, fmt.Errorf("%w: append response has no updated range", ErrInvalidResponse)
	}

	rowIndex, err := ParseRowIndex(resp.Updates.UpdatedRange)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return rowIndex, nil
}

var rowNumberRe = regexp.MustCompile(`(\d+)`)

// ParseRowIndex extrae el índice de fila de un updatedRange tipo
// "Facturacion!A42:F42"; el último número del rango es la fila asignada
func ParseRowIndex(updatedRange string) (int64, error) {
	matches := rowNumberRe.FindAllString(updatedRange, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("no row number in updated range %q", updatedRange)
	}
	return strconv.ParseInt(matches[len(matches)-1], 10, 64)
}

// ColumnLetter convierte un índice de columna 0-based a su letra en
// notación A1 (0=A, 25=Z, 26=AA)
func ColumnLetter(index int64) string {
	letter := ""
	for i := index; i >= 0; i = i/26 - 1 {
		letter = string(rune('A'+i%26)) + letter
	}
	return letter
}
