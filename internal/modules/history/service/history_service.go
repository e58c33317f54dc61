package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/history/domain"
	historyout "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/port/out"
	apperrors "github.com/teamit2026-cmd/cgpatracker/internal/platform/errors"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/logging"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/tx"
)

type HistoryService struct {
	store historyout.KVStore
	tx    tx.Manager
	log   *logrus.Logger
}

func NewHistoryService(store historyout.KVStore, txm tx.Manager) *HistoryService {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	return &HistoryService{store: store, tx: txm, log: logging.Log}
}

// Save appends to the history log and overwrites the per-context and latest slots. A retry of
// the same result does not append twice.
func (s *HistoryService) Save(ctx context.Context, result domain.Result) error {
	result.Timestamp = result.Timestamp.UTC()
	if err := result.Validate(); err != nil {
		return err
	}
	payload, err := encodeResult(result)
	if err != nil {
		return err
	}
	err = s.tx.Within(ctx, func(ctx context.Context) error {
		entries, err := s.logEntries(ctx, result.Timestamp)
		if err != nil {
			return err
		}
		if n := len(entries); n == 0 || !s.sameAsRecord(entries[n-1], result) {
			entries = append(entries, payload)
		}
		if err := s.store.Set(ctx, domain.HistoryKey, "["+strings.Join(entries, ",")+"]"); err != nil {
			return fmt.Errorf("write history log: %w", err)
		}
		if err := s.store.Set(ctx, domain.ResultKey(result.Context), payload); err != nil {
			return fmt.Errorf("write %s: %w", domain.ResultKey(result.Context), err)
		}
		if err := s.store.Set(ctx, domain.LatestKey, payload); err != nil {
			return fmt.Errorf("write latest result: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save result: %w: %w", apperrors.ErrPersistence, err)
	}
	return nil
}

// logEntries returns the raw records of the history log. Without a log, a decodable latest slot
// seeds it so results saved before the log existed are kept. A malformed log is copied to a
// backup key before the caller replaces it.
func (s *HistoryService) logEntries(ctx context.Context, at time.Time) ([]string, error) {
	raw, ok, err := s.store.Get(ctx, domain.HistoryKey)
	if err != nil {
		return nil, fmt.Errorf("read history log: %w", err)
	}
	if !ok {
		return s.seedFromLatest(ctx)
	}
	if !gjson.Valid(raw) || !gjson.Parse(raw).IsArray() {
		backup := domain.CorruptHistoryKey(at)
		if err := s.store.Set(ctx, backup, raw); err != nil {
			return nil, fmt.Errorf("back up malformed history log: %w", err)
		}
		s.log.WithFields(logrus.Fields{"key": domain.HistoryKey, "backup": backup}).Warn("history log is malformed; moved aside, starting a new one")
		return nil, nil
	}
	var entries []string
	gjson.Parse(raw).ForEach(func(_, value gjson.Result) bool {
		entries = append(entries, value.Raw)
		return true
	})
	return entries, nil
}

func (s *HistoryService) seedFromLatest(ctx context.Context) ([]string, error) {
	raw, ok, err := s.store.Get(ctx, domain.LatestKey)
	if err != nil {
		return nil, fmt.Errorf("read latest result: %w", err)
	}
	if !ok {
		return nil, nil
	}
	if _, err := decodeResult(raw); err != nil {
		s.log.WithField("key", domain.LatestKey).WithError(err).Warn("latest result not carried into history")
		return nil, nil
	}
	return []string{raw}, nil
}

func (s *HistoryService) sameAsRecord(raw string, result domain.Result) bool {
	last, err := decodeResult(raw)
	return err == nil && last.Same(result)
}

// LoadAll returns saved results oldest first. Records that cannot be decoded are skipped.
// A store without a log but with a latest slot yields that single result.
func (s *HistoryService) LoadAll(ctx context.Context) ([]domain.Result, error) {
	raw, ok, err := s.store.Get(ctx, domain.HistoryKey)
	if err != nil {
		return nil, fmt.Errorf("load history: %w: %w", apperrors.ErrPersistence, err)
	}
	if !ok {
		latest, found, err := s.loadSingle(ctx, domain.LatestKey)
		if err != nil || !found {
			return []domain.Result{}, err
		}
		return []domain.Result{latest}, nil
	}
	if !gjson.Valid(raw) || !gjson.Parse(raw).IsArray() {
		s.log.WithField("key", domain.HistoryKey).Warn("skipping malformed history log")
		return []domain.Result{}, nil
	}
	results := []domain.Result{}
	gjson.Parse(raw).ForEach(func(index, value gjson.Result) bool {
		result, err := decodeResult(value.Raw)
		if err != nil {
			s.log.WithFields(logrus.Fields{"key": domain.HistoryKey, "index": index.Int()}).WithError(err).Warn("skipping history record")
			return true
		}
		results = append(results, result)
		return true
	})
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp.Before(results[j].Timestamp)
	})
	return results, nil
}

func (s *HistoryService) LoadLatest(ctx context.Context) (domain.Result, bool, error) {
	return s.loadSingle(ctx, domain.LatestKey)
}

func (s *HistoryService) LoadByContext(ctx context.Context, c domain.Context) (domain.Result, bool, error) {
	return s.loadSingle(ctx, domain.ResultKey(c))
}

func (s *HistoryService) Stats(ctx context.Context) (domain.Stats, error) {
	results, err := s.LoadAll(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Summarize(results), nil
}

func (s *HistoryService) loadSingle(ctx context.Context, key string) (domain.Result, bool, error) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return domain.Result{}, false, fmt.Errorf("load %s: %w: %w", key, apperrors.ErrPersistence, err)
	}
	if !ok {
		return domain.Result{}, false, nil
	}
	result, err := decodeResult(raw)
	if err != nil {
		s.log.WithField("key", key).WithError(err).Warn("skipping saved result")
		return domain.Result{}, false, nil
	}
	return result, true, nil
}
