package database

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// statementTimeout 限制每一條查詢的執行時間，逾時由資料庫端中止，
// 呼叫端收到的錯誤視為 store unavailable。
const statementTimeout = 2 * time.Second

var (
	pgxpoolParseConfig   = pgxpool.ParseConfig
	pgxpoolNewWithConfig = pgxpool.NewWithConfig
)

// NewPgxPool 建立連線池，並在連線參數設定 statement_timeout。
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	cfg, err := pgxpoolParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(statementTimeout.Milliseconds(), 10)

	pool, err := pgxpoolNewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
