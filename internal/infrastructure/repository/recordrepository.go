package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"modcms/internal/domain/record"
	"modcms/internal/shared/constants"
	"modcms/internal/shared/db"
	apperrors "modcms/internal/shared/errors"
	"modcms/internal/shared/logger"
)

// RecordRepository implements record.Repository over arbitrary tables.
// Identifiers are always quoted by the dialect and values always bound.
type RecordRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewRecordRepository(db *gorm.DB, logger logger.Interface) record.Repository {
	return &RecordRepository{db: db, logger: logger}
}

// Insert writes values and reads the stored row back inside one transaction
func (r *RecordRepository) Insert(ctx context.Context, table string, values map[string]any) (record.Record, error) {
	var stored record.Record

	err := db.Conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		id, err := r.insertRow(tx, table, values)
		if err != nil {
			return err
		}

		rows, err := r.selectRows(tx.Table(table).Where(idEquals(id)).Limit(1))
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return apperrors.NewInvariantError("inserted row not readable", table)
		}
		stored = rows[0]
		return nil
	})
	if err != nil {
		return nil, r.translateWriteError("insert record", table, err)
	}

	return stored, nil
}

// insertRow runs the INSERT and returns the generated id for the dialect.
func (r *RecordRepository) insertRow(tx *gorm.DB, table string, values map[string]any) (int64, error) {
	columns := sortedKeys(values)
	quotedTable := tx.Statement.Quote(table)

	var stmt string
	args := make([]any, 0, len(columns))
	if len(columns) == 0 {
		if tx.Dialector.Name() == "mysql" {
			stmt = fmt.Sprintf("INSERT INTO %s () VALUES ()", quotedTable)
		} else {
			stmt = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES", quotedTable)
		}
	} else {
		quoted := make([]string, len(columns))
		marks := make([]string, len(columns))
		for i, c := range columns {
			quoted[i] = tx.Statement.Quote(c)
			marks[i] = "?"
			args = append(args, values[c])
		}
		stmt = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", quotedTable, strings.Join(quoted, ", "), strings.Join(marks, ", "))
	}

	var id int64
	switch tx.Dialector.Name() {
	case "postgres":
		stmt += " RETURNING " + tx.Statement.Quote(constants.ColumnID)
		if err := tx.Raw(stmt, args...).Scan(&id).Error; err != nil {
			return 0, err
		}
	case "sqlite":
		if err := tx.Exec(stmt, args...).Error; err != nil {
			return 0, err
		}
		if err := tx.Raw("SELECT last_insert_rowid()").Scan(&id).Error; err != nil {
			return 0, err
		}
	default:
		if err := tx.Exec(stmt, args...).Error; err != nil {
			return 0, err
		}
		if err := tx.Raw("SELECT LAST_INSERT_ID()").Scan(&id).Error; err != nil {
			return 0, err
		}
	}
	return id, nil
}

// Update writes values to row id
func (r *RecordRepository) Update(ctx context.Context, table string, id any, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}

	err := db.Conn(ctx, r.db).Table(table).Where(idEquals(id)).Updates(values).Error
	if err != nil {
		return r.translateWriteError("update record", table, err)
	}
	return nil
}

// Delete removes row id
func (r *RecordRepository) Delete(ctx context.Context, table string, id any) (bool, error) {
	conn := db.Conn(ctx, r.db)
	stmt := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", conn.Statement.Quote(table), conn.Statement.Quote(constants.ColumnID))

	result := conn.Exec(stmt, id)
	if result.Error != nil {
		return false, r.translateWriteError("delete record", table, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Find returns row id or nil
func (r *RecordRepository) Find(ctx context.Context, table string, id any) (record.Record, error) {
	rows, err := r.selectRows(db.Conn(ctx, r.db).Table(table).Where(idEquals(id)).Limit(1))
	if err != nil {
		r.logger.Errorw("failed to find record", "table", table, "id", id, "error", err)
		return nil, apperrors.NewStorageError("find record", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// List returns one page of rows ordered by id and the total match count
func (r *RecordRepository) List(ctx context.Context, table string, q record.ListQuery) ([]record.Record, int64, error) {
	conn := db.Conn(ctx, r.db)

	var total int64
	if err := conn.Table(table).Scopes(db.WhereEquals(q.Filters)).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count records", "table", table, "error", err)
		return nil, 0, apperrors.NewStorageError("count records", err)
	}

	rows, err := r.selectRows(conn.Table(table).
		Scopes(
			db.WhereEquals(q.Filters),
			db.OrderBy(constants.ColumnID, false),
			db.Paginate(q.Page.Page, q.Page.PageSize),
		))
	if err != nil {
		r.logger.Errorw("failed to list records", "table", table, "error", err)
		return nil, 0, apperrors.NewStorageError("list records", err)
	}

	return rows, total, nil
}

// ValueExists reports whether a row other than excludeID holds value in column
func (r *RecordRepository) ValueExists(ctx context.Context, table, column string, value any, excludeID any) (bool, error) {
	query := db.Conn(ctx, r.db).Table(table).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if excludeID != nil {
		query = query.Where(clause.Neq{Column: clause.Column{Name: constants.ColumnID}, Value: excludeID})
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check value", "table", table, "column", column, "error", err)
		return false, apperrors.NewStorageError("check value", err)
	}
	return count > 0, nil
}

// FindByColumn returns rows whose column is in values
func (r *RecordRepository) FindByColumn(ctx context.Context, table, column string, values []any) ([]record.Record, error) {
	if len(values) == 0 {
		return nil, nil
	}

	rows, err := r.selectRows(db.Conn(ctx, r.db).Table(table).
		Where(clause.IN{Column: clause.Column{Name: column}, Values: values}).
		Scopes(db.OrderBy(constants.ColumnID, false)))
	if err != nil {
		r.logger.Errorw("failed to load related records", "table", table, "column", column, "error", err)
		return nil, apperrors.NewStorageError("find related records", err)
	}
	return rows, nil
}

func (r *RecordRepository) selectRows(query *gorm.DB) ([]record.Record, error) {
	var raw []map[string]any
	if err := query.Find(&raw).Error; err != nil {
		return nil, err
	}

	out := make([]record.Record, 0, len(raw))
	for _, row := range raw {
		out = append(out, normalizeRow(row))
	}
	return out, nil
}

// translateWriteError maps constraint failures to engine kinds and everything
// else to StorageUnavailableError.
func (r *RecordRepository) translateWriteError(op, table string, err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	switch {
	case apperrors.IsDuplicateError(err):
		return apperrors.New(apperrors.KindUniqueViolation, "value already exists", table).WithCause(err)
	case apperrors.IsForeignKeyError(err):
		return apperrors.New(apperrors.KindDanglingForeignKey, "referenced row does not exist", table).WithCause(err)
	}
	r.logger.Errorw("record write failed", "operation", op, "table", table, "error", err)
	return apperrors.NewStorageError(op, err)
}

// normalizeRow turns driver byte slices into strings so records serialize as text.
func normalizeRow(row map[string]any) record.Record {
	out := make(record.Record, len(row))
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			out[k] = string(b)
			continue
		}
		out[k] = v
	}
	return out
}

func idEquals(id any) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: constants.ColumnID}, Value: id}
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
