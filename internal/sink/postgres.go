package sink

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WriterConfig controls batching behaviour of the postgres writer.
type WriterConfig struct {
	BatchSize     int
	FlushInterval time.Duration
}

// DefaultWriterConfig returns the batching defaults.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		BatchSize:     500,
		FlushInterval: time.Second,
	}
}

// WriterMetrics holds insert counters for a writer.
type WriterMetrics struct {
	Inserts   int64
	Conflicts int64
	Flushes   int64
	Errors    int64
}

// messageRow is the database shape of a normalized record.
type messageRow struct {
	SessionID   uuid.UUID
	Seq         int64
	Type        string
	Tracking    int32
	TsNanos     int64
	OptionID    int64
	Symbol      string
	Side        string
	Code        string
	Price       int64
	Volume      int64
	AuxPrice    int64
	AuxVolume   int64
	Ref         int64
	NewRef      int64
	AuxRef      int64
	NewAuxRef   int64
	CrossNumber int64
	MatchNumber int64
}

// Writer consumes records from a buffer and writes them to the
// messages table in batches. Each run gets a fresh session id, and a
// per-session sequence number orders the rows as they were decoded.
type Writer struct {
	cfg    WriterConfig
	logger *slog.Logger

	// Input from the decode pipeline
	input *Buffer[Record]

	// Database
	db *pgxpool.Pool

	// Session identity
	session uuid.UUID
	seq     int64

	// Batching
	batch       []messageRow
	batchMu     sync.Mutex
	flushTicker *time.Ticker

	// Lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Insert indirection, replaced in tests.
	insert func(ctx context.Context, rows []messageRow) (int, error)

	// Metrics
	metrics WriterMetrics
}

// NewWriter creates a postgres writer reading from input.
func NewWriter(cfg WriterConfig, input *Buffer[Record], db *pgxpool.Pool, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Writer{
		cfg:     cfg,
		input:   input,
		db:      db,
		logger:  logger,
		session: uuid.New(),
		batch:   make([]messageRow, 0, cfg.BatchSize),
	}
	w.insert = w.batchInsert
	return w
}

// Session returns the writer's session id.
func (w *Writer) Session() uuid.UUID { return w.session }

// Start begins consuming records and writing to the database.
func (w *Writer) Start(ctx context.Context) error {
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.flushTicker = time.NewTicker(w.cfg.FlushInterval)

	w.wg.Add(1)
	go w.consumeLoop()

	w.wg.Add(1)
	go w.flushLoop()

	w.logger.Info("postgres writer started",
		"session", w.session,
		"batch_size", w.cfg.BatchSize,
		"flush_interval", w.cfg.FlushInterval,
	)
	return nil
}

// Stop gracefully shuts down the writer.
func (w *Writer) Stop(ctx context.Context) error {
	w.logger.Info("stopping postgres writer")

	if w.cancel != nil {
		w.cancel()
	}

	if w.flushTicker != nil {
		w.flushTicker.Stop()
	}

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("postgres writer stopped")
	case <-ctx.Done():
		w.logger.Warn("postgres writer stop timed out")
	}

	// Final flush. w.ctx is already cancelled, so the tail batch goes
	// out under the caller's context.
	w.flush(ctx)

	return nil
}

// Stats returns current metrics.
func (w *Writer) Stats() WriterMetrics {
	w.batchMu.Lock()
	defer w.batchMu.Unlock()
	return w.metrics
}

// consumeLoop reads from the input buffer and accumulates batches.
func (w *Writer) consumeLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		default:
			rec, ok := w.input.TryGet()
			if !ok {
				select {
				case <-w.ctx.Done():
					return
				case <-time.After(10 * time.Millisecond):
					continue
				}
			}

			w.handleRecord(rec)
		}
	}
}

// flushLoop periodically flushes the batch.
func (w *Writer) flushLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.flushTicker.C:
			w.flush(w.ctx)
		}
	}
}

// handleRecord transforms and adds a record to the batch.
func (w *Writer) handleRecord(rec Record) {
	w.batchMu.Lock()
	w.seq++
	w.batch = append(w.batch, w.transform(rec, w.seq))
	shouldFlush := len(w.batch) >= w.cfg.BatchSize
	w.batchMu.Unlock()

	if shouldFlush {
		w.flush(w.ctx)
	}
}

// transform converts a Record into its database row.
func (w *Writer) transform(rec Record, seq int64) messageRow {
	return messageRow{
		SessionID:   w.session,
		Seq:         seq,
		Type:        rec.Type,
		Tracking:    int32(rec.Tracking),
		TsNanos:     int64(rec.Timestamp),
		OptionID:    int64(rec.OptionID),
		Symbol:      rec.Symbol,
		Side:        charColumn(rec.Side),
		Code:        charColumn(rec.Code),
		Price:       int64(rec.Price),
		Volume:      int64(rec.Volume),
		AuxPrice:    int64(rec.AuxPrice),
		AuxVolume:   int64(rec.AuxVolume),
		Ref:         int64(rec.Ref),
		NewRef:      int64(rec.NewRef),
		AuxRef:      int64(rec.AuxRef),
		NewAuxRef:   int64(rec.NewAuxRef),
		CrossNumber: int64(rec.CrossNumber),
		MatchNumber: int64(rec.MatchNumber),
	}
}

// flush writes the current batch to the database.
func (w *Writer) flush(ctx context.Context) {
	w.batchMu.Lock()
	if len(w.batch) == 0 {
		w.batchMu.Unlock()
		return
	}

	// Take ownership of current batch
	batch := w.batch
	w.batch = make([]messageRow, 0, w.cfg.BatchSize)
	w.batchMu.Unlock()

	start := time.Now()

	conflicts, err := w.insert(ctx, batch)
	if err != nil {
		w.logger.Error("batch insert failed", "error", err, "count", len(batch))
		w.batchMu.Lock()
		w.metrics.Errors++
		w.batchMu.Unlock()
		return
	}

	w.batchMu.Lock()
	w.metrics.Inserts += int64(len(batch) - conflicts)
	w.metrics.Conflicts += int64(conflicts)
	w.metrics.Flushes++
	w.batchMu.Unlock()

	w.logger.Debug("flushed messages",
		"count", len(batch),
		"conflicts", conflicts,
		"duration", time.Since(start),
	)
}

// batchInsert inserts rows using pgx.Batch with ON CONFLICT DO NOTHING.
func (w *Writer) batchInsert(ctx context.Context, rows []messageRow) (conflicts int, err error) {
	batch := &pgx.Batch{}
	for _, r := range rows {
		batch.Queue(`
			INSERT INTO messages (
				session_id, seq, type, tracking, ts_nanos,
				option_id, symbol, side, code,
				price, volume, aux_price, aux_volume,
				ref, new_ref, aux_ref, new_aux_ref,
				cross_number, match_number
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
			ON CONFLICT (session_id, seq) DO NOTHING
		`, r.SessionID, r.Seq, r.Type, r.Tracking, r.TsNanos,
			r.OptionID, r.Symbol, r.Side, r.Code,
			r.Price, r.Volume, r.AuxPrice, r.AuxVolume,
			r.Ref, r.NewRef, r.AuxRef, r.NewAuxRef,
			r.CrossNumber, r.MatchNumber)
	}

	results := w.db.SendBatch(ctx, batch)
	defer results.Close()

	for range rows {
		ct, err := results.Exec()
		if err != nil {
			return 0, err
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	return conflicts, nil
}
