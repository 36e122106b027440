package database

import (
	"context"
	"database/sql"
	"errors"

	"xorm.io/xorm"
)

// ErrAlreadyInTransaction is returned by WithTx when ctx already carries a
// transaction.
var ErrAlreadyInTransaction = errors.New("database connection has already been in a transaction")

// Engine is the query surface shared by *xorm.Engine and *xorm.Session.
type Engine interface {
	Table(tableNameOrBean any) *xorm.Session
	Count(beans ...any) (int64, error)
	Delete(beans ...any) (int64, error)
	Exec(sqlOrArgs ...any) (sql.Result, error)
	Find(rowsSlicePtr any, condiBean ...any) error
	Get(beans ...any) (bool, error)
	ID(id any) *xorm.Session
	In(column string, args ...any) *xorm.Session
	Insert(beans ...any) (int64, error)
	SQL(query any, args ...any) *xorm.Session
	Where(query any, args ...any) *xorm.Session
	Cols(columns ...string) *xorm.Session
	Asc(colNames ...string) *xorm.Session
	Desc(colNames ...string) *xorm.Session
	Select(str string) *xorm.Session
	GroupBy(keys string) *xorm.Session
	Exist(bean ...any) (bool, error)
	Update(bean any, condiBean ...any) (int64, error)
}

var (
	_ Engine = (*xorm.Engine)(nil)
	_ Engine = (*xorm.Session)(nil)
)

type txKey struct{}

// GetEngine returns the transaction carried by ctx, or an engine session
// bound to ctx when there is none.
func (db *DB) GetEngine(ctx context.Context) Engine {
	if sess, ok := ctx.Value(txKey{}).(*xorm.Session); ok {
		return sess
	}
	return db.engine.Context(ctx)
}

// InTransaction reports whether ctx carries a transaction.
func InTransaction(ctx context.Context) bool {
	sess, ok := ctx.Value(txKey{}).(*xorm.Session)
	return ok && sess.IsInTx()
}

// WithTx runs f inside a new transaction. The transaction commits when f
// returns nil and rolls back otherwise. Nesting is an error; use AutoTx to
// join an existing transaction.
func (db *DB) WithTx(ctx context.Context, f func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return ErrAlreadyInTransaction
	}
	return db.txWithNoCheck(ctx, f)
}

// AutoTx runs f in the transaction carried by ctx, or in a new one.
func (db *DB) AutoTx(ctx context.Context, f func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return f(ctx)
	}
	return db.txWithNoCheck(ctx, f)
}

func (db *DB) txWithNoCheck(ctx context.Context, f func(ctx context.Context) error) error {
	sess := db.engine.NewSession().Context(ctx)
	defer sess.Close()

	if err := sess.Begin(); err != nil {
		return err
	}

	if err := f(context.WithValue(ctx, txKey{}, sess)); err != nil {
		// Close rolls back an uncommitted transaction.
		return err
	}

	return sess.Commit()
}
