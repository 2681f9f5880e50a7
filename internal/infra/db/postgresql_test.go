package db

import (
	"testing"
	"time"

	"github.com/trackbill/backend/config"
)

type recordedPool struct {
	maxOpen  int
	maxIdle  int
	lifetime time.Duration
}

func (p *recordedPool) SetMaxOpenConns(n int)             { p.maxOpen = n }
func (p *recordedPool) SetMaxIdleConns(n int)             { p.maxIdle = n }
func (p *recordedPool) SetConnMaxLifetime(d time.Duration) { p.lifetime = d }

func TestConfigurePool(t *testing.T) {
	cfg := &config.DatabaseConfig{
		MaxOpenConns:    30,
		MaxIdleConns:    10,
		ConnMaxLifetime: 15 * time.Minute,
	}

	pool := &recordedPool{}
	configurePool(pool, cfg)

	if pool.maxOpen != 30 {
		t.Errorf("max open conns = %d, want 30", pool.maxOpen)
	}
	if pool.maxIdle != 10 {
		t.Errorf("max idle conns = %d, want 10", pool.maxIdle)
	}
	if pool.lifetime != 15*time.Minute {
		t.Errorf("conn max lifetime = %s, want 15m", pool.lifetime)
	}
}
