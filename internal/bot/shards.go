package bot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Shard is a single gateway connection. *discordgo.Session satisfies it.
type Shard interface {
	Open() error
	Close() error
}

// ShardManager owns every shard of the bot and is the handle used to stop them.
type ShardManager struct {
	mu      sync.Mutex
	shards  []Shard
	opened  []Shard
	stopped bool
	err     error

	once sync.Once
	done chan struct{}
	log  *zap.Logger
}

// NewShardManager creates a manager over shards, opened in order by Run.
func NewShardManager(shards []Shard, log *zap.Logger) *ShardManager {
	return &ShardManager{
		shards: shards,
		done:   make(chan struct{}),
		log:    log,
	}
}

// Run opens every shard and blocks until ShutdownAll is called or ctx ends.
func (m *ShardManager) Run(ctx context.Context) error {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return nil
	}
	for i, s := range m.shards {
		if err := s.Open(); err != nil {
			m.mu.Unlock()
			if cerr := m.ShutdownAll(); cerr != nil {
				err = errors.Join(err, cerr)
			}
			return fmt.Errorf("Discord 세션 열기 오류 (shard %d): %w", i, err)
		}
		m.opened = append(m.opened, s)
	}
	m.mu.Unlock()

	m.log.Info("봇이 실행 중입니다. 종료하려면 CTRL-C를 누르세요.", zap.Int("shards", len(m.shards)))

	select {
	case <-ctx.Done():
		return m.ShutdownAll()
	case <-m.done:
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// ShutdownAll closes every opened shard. Only the first call does any work;
// later calls return the same result.
func (m *ShardManager) ShutdownAll() error {
	m.once.Do(func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		m.log.Info("Shutting down all shards", zap.Int("opened", len(m.opened)))

		var errs []error
		for i, s := range m.opened {
			if err := s.Close(); err != nil {
				errs = append(errs, fmt.Errorf("Discord 세션 닫기 오류 (shard %d): %w", i, err))
			}
		}
		m.opened = nil
		m.stopped = true
		m.err = errors.Join(errs...)
		close(m.done)
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Done is closed once ShutdownAll has finished.
func (m *ShardManager) Done() <-chan struct{} {
	return m.done
}
