package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"referrify/internal/toast"
)

// Adapter writes every value to both backends and reads primary first.
// The secondary copy is URI-encoded and carries an expiry horizon, the way
// the browser build mirrored localStorage into cookies.
//
// Storage failures never reach callers: they are logged, toasted and turned
// into "absent" (reads) or "not written" (writes).
type Adapter struct {
	primary   Backend
	secondary Backend
	sink      toast.Sink
	logger    *slog.Logger
}

func NewAdapter(primary, secondary Backend, sink toast.Sink, logger *slog.Logger) *Adapter {
	if sink == nil {
		sink = toast.Discard{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		primary:   primary,
		secondary: secondary,
		sink:      sink,
		logger:    logger,
	}
}

// Set stores value in both backends. It reports whether the primary write succeeded.
func (a *Adapter) Set(ctx context.Context, k Key, value any) bool {
	raw, err := encodeValue(value)
	if err != nil {
		a.logger.Error("encode_failed", "key", k.Primary, "error", err)
		a.sink.Notify(toast.Failure("Storage Error", "Failed to save data. Changes may not persist."))
		return false
	}

	primaryOK := true
	if err := a.primary.Write(ctx, k.Primary, raw, 0); err != nil {
		primaryOK = false
		a.logger.Error("primary_write_failed",
			"backend", a.primary.Name(),
			"key", k.Primary,
			"error", err,
		)
	}

	// the secondary write happens regardless of the primary outcome
	secondaryOK := true
	if err := a.secondary.Write(ctx, k.Secondary, url.PathEscape(raw), k.TTL); err != nil {
		secondaryOK = false
		a.logger.Error("secondary_write_failed",
			"backend", a.secondary.Name(),
			"key", k.Secondary,
			"error", err,
		)
	}

	if !primaryOK || !secondaryOK {
		a.sink.Notify(toast.Failure("Storage Error", "Failed to save data. Changes may not persist."))
	}
	return primaryOK
}

// Get decodes the stored value into dst. Primary wins; on a primary miss the
// secondary copy is decoded and, if it is valid JSON, written back to primary.
func (a *Adapter) Get(ctx context.Context, k Key, dst any) bool {
	if raw, ok := a.readPrimary(ctx, k); ok {
		_, err := decodeValue(raw, dst)
		if err == nil {
			return true
		}
		a.logger.Warn("primary_decode_failed", "key", k.Primary, "error", err)
	}

	raw, ok := a.readSecondary(ctx, k)
	if !ok {
		return false
	}
	isJSON, err := decodeValue(raw, dst)
	if err != nil {
		a.logger.Warn("secondary_decode_failed", "key", k.Secondary, "error", err)
		return false
	}
	if isJSON {
		// back-fill so the next read is served by primary
		if err := a.primary.Write(ctx, k.Primary, raw, 0); err != nil {
			a.logger.Warn("primary_backfill_failed", "key", k.Primary, "error", err)
		} else {
			a.logger.Debug("primary_backfilled", "key", k.Primary)
		}
	}
	return true
}

// Remove deletes the key from both backends; a missing key is not an error
func (a *Adapter) Remove(ctx context.Context, k Key) {
	if err := a.primary.Delete(ctx, k.Primary); err != nil {
		a.logger.Error("primary_delete_failed", "key", k.Primary, "error", err)
	}
	if err := a.secondary.Delete(ctx, k.Secondary); err != nil {
		a.logger.Error("secondary_delete_failed", "key", k.Secondary, "error", err)
	}
}

// Toast forwards user feedback to the adapter's sink so repositories share one sink
func (a *Adapter) Toast(t toast.Toast) {
	a.sink.Notify(t)
}

// Logger is the adapter's logger, shared with repositories built on top of it
func (a *Adapter) Logger() *slog.Logger {
	return a.logger
}

func (a *Adapter) readPrimary(ctx context.Context, k Key) (string, bool) {
	raw, err := a.primary.Read(ctx, k.Primary)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			a.logger.Error("primary_read_failed", "backend", a.primary.Name(), "key", k.Primary, "error", err)
		}
		return "", false
	}
	return raw, true
}

func (a *Adapter) readSecondary(ctx context.Context, k Key) (string, bool) {
	raw, err := a.secondary.Read(ctx, k.Secondary)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			a.logger.Error("secondary_read_failed", "backend", a.secondary.Name(), "key", k.Secondary, "error", err)
		}
		return "", false
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		// written by something that did not encode it; use as is
		return raw, true
	}
	return decoded, true
}

// strings are stored verbatim, everything else as JSON
func encodeValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case json.RawMessage:
		return string(v), nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal value: %w", err)
	}
	return string(b), nil
}

// decodeValue reports whether raw was valid JSON. A *string destination
// accepts non-JSON text verbatim.
func decodeValue(raw string, dst any) (bool, error) {
	err := json.Unmarshal([]byte(raw), dst)
	if err == nil {
		return true, nil
	}
	if s, ok := dst.(*string); ok {
		*s = raw
		return false, nil
	}
	return false, err
}
