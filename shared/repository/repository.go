package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"kmc/infras/otel"
	"kmc/infras/postgres"
	"kmc/shared/constant"
	"kmc/shared/dto"
	"kmc/shared/logger"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

// ErrRequiredFilter guards DELETE, UPDATE and EXISTS against running over a whole table.
var ErrRequiredFilter = errors.New("required filter")

// MaxBindParams is the PostgreSQL limit on parameters in one statement.
const MaxBindParams = 65535

// Joiner is implemented by read models that select across tables. The returned clause is
// appended after FROM.
type Joiner interface {
	GetJoinQuery() string
}

type column struct {
	name  string
	table string
	alias string
}

func (c column) selectExpr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return c.table + "." + c.name
	}
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// Repository is the table gateway shared by the kmc_* and ncm_* domains. Columns come from the
// db tags of T; a "table" tag marks a joined column and a "column" tag selects a differently
// named source column into the tagged field.
type Repository[T any] struct {
	db          *postgres.Connection
	otel        otel.Otel
	table       string
	entity      string
	key         string
	columns     []column
	join        string
	insertQuery string

	insertColumns int
}

func NewRepository[T any](entityName, tableName, keyColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := ""
	if joiner, ok := any(zero).(Joiner); ok {
		join = joiner.GetJoinQuery()
	}

	placeholders := make([]string, 0, len(insertColumns))
	for _, col := range insertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	return Repository[T]{
		db:      dbConnection,
		otel:    otl,
		table:   tableName,
		entity:  entityName,
		key:     keyColumn,
		columns: columns,
		join:    join,

		insertColumns: len(insertColumns),
		insertQuery: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			tableName, strings.Join(insertColumns, ", "), strings.Join(placeholders, ", ")),
	}
}

func (repo *Repository[T]) newScope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

// read prepares query on the replica and scans into dest, a single row when one is true.
func (repo *Repository[T]) read(ctx context.Context, scope otel.Scope, query string, args map[string]any, dest any, one bool) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	if one {
		err = stmt.GetContext(ctx, dest, args)
	} else {
		err = stmt.SelectContext(ctx, dest, args)
	}

	return err //nolint:wrapcheck
}

func (repo *Repository[T]) exec(ctx context.Context, scope otel.Scope, exec execer, action, query string, arg any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, arg); err != nil {
		return repo.fail(scope, action, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.newScope(ctx, "Insert")
	defer scope.End()

	return repo.exec(ctx, scope, repo.db.Write, "insert data", repo.insertQuery, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	ctx, scope := repo.newScope(ctx, "InsertTx")
	defer scope.End()

	return repo.exec(ctx, scope, sqltx, "insert data", repo.insertQuery, model)
}

func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	return repo.insertBulk(ctx, repo.db.Write, models)
}

func (repo *Repository[T]) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	return repo.insertBulk(ctx, sqltx, models)
}

// insertBulk sends multi-row INSERTs of at most BulkChunkSize rows each, keeping every
// statement under the PostgreSQL bind parameter limit.
func (repo *Repository[T]) insertBulk(ctx context.Context, exec execer, models []T) error {
	if len(models) == 0 {
		return nil
	}

	ctx, scope := repo.newScope(ctx, "InsertBulk")
	defer scope.End()

	scope.SetAttribute("db.rows", len(models))

	for chunk := range slices.Chunk(models, repo.BulkChunkSize()) {
		if err := repo.exec(ctx, scope, exec, "bulk insert data", repo.insertQuery, chunk); err != nil {
			return err
		}
	}

	return nil
}

// BulkChunkSize is the largest row count one INSERT of T can bind.
func (repo *Repository[T]) BulkChunkSize() int {
	return max(1, MaxBindParams/max(1, repo.insertColumns))
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.newScope(ctx, "Exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, ErrRequiredFilter
	}

	var exist bool

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	if err := repo.read(ctx, scope, query, args, &exist, true); err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

// Get returns the zero T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.newScope(ctx, "Get")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectList(columns), repo.table, repo.join, where)

	var model T

	err := repo.read(ctx, scope, query, args, &model, true)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.newScope(ctx, "GetAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	var ordering, pagination string

	if params.SortBy != "" {
		ordering = "ORDER BY " + orderClause(params.SortBy, params.SortDir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		pagination = "LIMIT :limit"

		if params.Page > 0 {
			args["offset"] = (params.Page - 1) * params.Limit
			pagination += " OFFSET :offset"
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s", repo.selectList(columns), repo.table, repo.join, where, ordering, pagination)

	var models []T

	if err := repo.read(ctx, scope, query, args, &models, false); err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

// Count counts distinct key values, so a fan-out join does not inflate the total.
func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.newScope(ctx, "Count")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT COUNT(DISTINCT %s.%s) FROM %s %s %s", repo.table, repo.key, repo.table, repo.join, where)

	var count int

	if err := repo.read(ctx, scope, query, args, &count, true); err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	return repo.delete(ctx, repo.db.Write, filter)
}

func (repo *Repository[T]) DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) error {
	return repo.delete(ctx, sqltx, filter)
}

func (repo *Repository[T]) delete(ctx context.Context, exec execer, filter dto.FilterGroup) error {
	ctx, scope := repo.newScope(ctx, "Delete")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return ErrRequiredFilter
	}

	return repo.exec(ctx, scope, exec, "delete data", fmt.Sprintf("DELETE FROM %s %s", repo.table, where), args)
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, repo.db.Write, mod, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, sqltx, mod, filter)
}

// update binds mod by column name, so a column may not also appear as a filter parameter.
func (repo *Repository[T]) update(ctx context.Context, exec execer, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.newScope(ctx, "Update")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return ErrRequiredFilter
	}

	assignments := make([]string, 0, len(mod))
	for _, col := range slices.Sorted(maps.Keys(mod)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	maps.Copy(args, mod)

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)

	return repo.exec(ctx, scope, exec, "update data", query, args)
}

// WithTransaction runs fn inside a write transaction, committing only when fn returns nil.
func (repo *Repository[T]) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return WithTransaction(ctx, repo.db, fn)
}

func WithTransaction(ctx context.Context, db *postgres.Connection, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (repo *Repository[T]) BuildWhereClause(_ context.Context, filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where + " ", args
}

// selectList narrows the select to the named db columns when any are given.
func (repo *Repository[T]) selectList(only []string) string {
	exprs := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		exprs = append(exprs, col.selectExpr())
	}

	return strings.Join(exprs, ", ")
}

// orderClause applies the sort direction to every comma separated column.
func orderClause(sortBy, sortDir string) string {
	if sortDir == "" {
		sortDir = dto.SortDirAsc
	}

	parts := strings.Split(sortBy, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part) + " " + sortDir
	}

	return strings.Join(parts, ", ")
}

// getColumns walks T's fields, descending into embedded structs. Only columns of the owning
// table are inserted.
func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for _, field := range reflect.VisibleFields(reflectType) {
		if field.Anonymous || !field.IsExported() {
			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
		}

		if owner == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if source := field.Tag.Get("column"); source != "" {
			columns = append(columns, column{name: source, table: owner, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: owner})
		}
	}

	return columns, insertColumns
}
