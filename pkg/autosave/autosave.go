// Package autosave implementa el guardado automático por celda del dashboard
// de finanzas: ediciones rápidas sobre la misma celda se agrupan en una sola
// escritura que se dispara un tiempo después del último cambio.
//
// Cada celda pasa por los estados idle → pending → saving → saved/error,
// observables vía callback. Escrituras concurrentes a la misma celda desde
// dos sesiones no se reconcilian: gana la última.
package autosave

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce es la espera tras la última edición antes de escribir
const DefaultDebounce = 800 * time.Millisecond

// State representa el estado observable de una celda
type State int

const (
	StateIdle State = iota
	StatePending
	StateSaving
	StateSaved
	StateError
)

var stateNames = map[State]string{
	StateIdle:    "idle",
	StatePending: "pending",
	StateSaving:  "saving",
	StateSaved:   "saved",
	StateError:   "error",
}

// String retorna el nombre del estado
func (s State) String() string {
	return stateNames[s]
}

// CellRef identifica una celda: tipo de hoja, fila 1-based, columna 0-based
type CellRef struct {
	SheetType string
	RowIndex  int64
	ColIndex  int64
}

// Event es una transición de estado de una celda
type Event struct {
	Cell  CellRef
	State State
	Err   error
}

// CellWriter escribe una celda en la hoja de cálculo
type CellWriter interface {
	WriteCell(ctx context.Context, sheetType string, rowIndex, colIndex int64, value string) error
}

type pendingCell struct {
	value string
	timer *time.Timer
}

// Saver agrupa ediciones por celda y las escribe con debounce
type Saver struct {
	writer   CellWriter
	debounce time.Duration
	notify   func(Event)

	mu      sync.Mutex
	pending map[CellRef]*pendingCell
	wg      sync.WaitGroup
}

// New crea un Saver; notify puede ser nil si no interesa observar estados
func New(writer CellWriter, debounce time.Duration, notify func(Event)) *Saver {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if notify == nil {
		notify = func(Event) {}
	}
	return &Saver{
		writer:   writer,
		debounce: debounce,
		notify:   notify,
		pending:  make(map[CellRef]*pendingCell),
	}
}

// Edit registra una edición de celda. Ediciones consecutivas a la misma celda
// antes de que venza el debounce se colapsan en una sola escritura con el
// último valor.
func (s *Saver) Edit(ctx context.Context, cell CellRef, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, exists := s.pending[cell]; exists {
		p.value = value
		// Si Stop falla el timer ya disparó y la escritura en vuelo va a
		// tomar este valor; rearmarlo duplicaría el flush de la celda
		if p.timer.Stop() {
			p.timer.Reset(s.debounce)
		}
		s.notify(Event{Cell: cell, State: StatePending})
		return
	}

	p := &pendingCell{value: value}
	s.pending[cell] = p
	s.wg.Add(1)
	p.timer = time.AfterFunc(s.debounce, func() {
		s.flushCell(ctx, cell)
	})
	s.notify(Event{Cell: cell, State: StatePending})
}

// flushCell escribe el valor acumulado de una celda
func (s *Saver) flushCell(ctx context.Context, cell CellRef) {
	s.mu.Lock()
	p, exists := s.pending[cell]
	if !exists {
		// Otro flush ya consumió la celda; ese flush responde por el Done
		s.mu.Unlock()
		return
	}
	delete(s.pending, cell)
	value := p.value
	s.mu.Unlock()

	defer s.wg.Done()

	s.notify(Event{Cell: cell, State: StateSaving})

	if err := s.writer.WriteCell(ctx, cell.SheetType, cell.RowIndex, cell.ColIndex, value); err != nil {
		s.notify(Event{Cell: cell, State: StateError, Err: err})
		return
	}
	s.notify(Event{Cell: cell, State: StateSaved})
}

// Flush fuerza la escritura inmediata de todo lo pendiente y espera a que
// terminen las escrituras en curso
func (s *Saver) Flush(ctx context.Context) {
	s.mu.Lock()
	cells := make([]CellRef, 0, len(s.pending))
	for cell, p := range s.pending {
		// Solo disparamos las que aún no vencieron; las demás ya están en vuelo
		if p.timer.Stop() {
			cells = append(cells, cell)
		}
	}
	s.mu.Unlock()

	for _, cell := range cells {
		s.flushCell(ctx, cell)
	}
	s.wg.Wait()
}
