package logstore

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kuaforun/booking-backend/internal/models"
)

// Entry is one structured application log line.
type Entry struct {
	TenantID      string
	Level         string
	Service       string
	Message       string
	Context       map[string]any
	CorrelationID string
	RequestID     string
}

var levels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
}

func ValidLevel(level string) bool {
	return levels[level]
}

// ======================================================
// PERSISTER
// ======================================================

type Writer struct {
	db *gorm.DB
}

func NewWriter(db *gorm.DB) *Writer {
	return &Writer{db: db}
}

func (w *Writer) Write(e Entry) error {
	var ctxJSON string
	if e.Context != nil {
		if b, err := json.Marshal(e.Context); err == nil {
			ctxJSON = string(b)
		}
	}

	rec := models.LogRecord{
		TenantID:      e.TenantID,
		Level:         e.Level,
		Service:       e.Service,
		Message:       e.Message,
		Context:       ctxJSON,
		CorrelationID: e.CorrelationID,
		RequestID:     e.RequestID,
	}

	return w.db.Create(&rec).Error
}

// ======================================================
// DISPATCHER
// ======================================================

// Sink is what producing code depends on; the Dispatcher is the only
// production implementation.
type Sink interface {
	Dispatch(Entry)
}

// Dispatcher mirrors every entry to the console sink and hands it to a
// background worker for persistence. Neither path may block or fail the
// caller: a full queue drops the entry, a failed write is swallowed.
type Dispatcher struct {
	writer *Writer
	mirror *zap.Logger
	queue  chan Entry
}

func NewDispatcher(writer *Writer, mirror *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		mirror: mirror,
		queue:  make(chan Entry, 256),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for e := range d.queue {
		if err := d.writer.Write(e); err != nil {
			d.mirror.Error("log write failed",
				zap.String("tenant", e.TenantID),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(e Entry) {
	if !ValidLevel(e.Level) {
		e.Level = "info"
	}

	d.mirrorEntry(e)

	select {
	case d.queue <- e:
	default:
		// full queue: the console copy is all we keep
		d.mirror.Warn("log queue full, dropping entry",
			zap.String("tenant", e.TenantID),
			zap.String("service", e.Service),
		)
	}
}

func (d *Dispatcher) mirrorEntry(e Entry) {
	fields := []zap.Field{
		zap.String("tenant", e.TenantID),
		zap.String("service", e.Service),
	}
	if e.CorrelationID != "" {
		fields = append(fields, zap.String("correlation_id", e.CorrelationID))
	}
	if e.RequestID != "" {
		fields = append(fields, zap.String("request_id", e.RequestID))
	}
	if e.Context != nil {
		fields = append(fields, zap.Any("context", e.Context))
	}

	switch e.Level {
	case "debug":
		d.mirror.Debug(e.Message, fields...)
	case "warn":
		d.mirror.Warn(e.Message, fields...)
	case "error", "fatal":
		d.mirror.Error(e.Message, fields...)
	default:
		d.mirror.Info(e.Message, fields...)
	}
}
