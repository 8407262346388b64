package service

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/systemfailed/internal/models"
	"github.com/sirupsen/logrus"
)

// isTransient сообщает, имеет ли смысл повторить чтение
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrAlreadyVoted) {
		return false
	}
	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// withRetry повторяет операцию чтения с экспоненциальной задержкой, пока ошибка временная
func (s *reportService) withRetry(ctx context.Context, log *logrus.Entry, op func() error) error {
	var err error
	for attempt := 0; attempt <= s.cfg.BackendMaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.cfg.BackendRetryDelay * time.Duration(1<<(attempt-1))
			log.WithFields(logrus.Fields{
				"attempt": attempt,
				"delay":   delay.String(),
			}).WithError(err).Warn("Retrying backend read")

			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		err = op()
		if !isTransient(err) {
			return err
		}
	}
	return err
}
