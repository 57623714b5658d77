package database

import (
	"fmt"
	"sort"
	"strings"

	"jsonplaceholder/core/utils"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

// TableReport compares a model with the table backing it.
type TableReport struct {
	Model   string   `json:"model" yaml:"model"`
	Table   string   `json:"table" yaml:"table"`
	Exists  bool     `json:"exists" yaml:"exists"`
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Extra   []string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// OK reports whether the table matches the model.
func (r TableReport) OK() bool {
	return r.Exists && len(r.Missing) == 0
}

// GetTableColumns retrieves the column definitions for a given table.
// A table that does not exist yields no columns and no error.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	if db.Dialector.Name() == "sqlite" {
		var rows []map[string]any
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, row := range rows {
			info := ColumnInfo{
				Field:   strings.ToLower(utils.ToString(row["name"])),
				Type:    strings.ToLower(utils.ToString(row["type"])),
				Null:    "YES",
				Default: utils.ToStringPtr(row["dflt_value"]),
			}
			if utils.ToInt(row["notnull"]) != 0 {
				info.Null = "NO"
			}
			// pk is the 1-based position in the primary key, 0 otherwise.
			if utils.ToInt(row["pk"]) != 0 {
				info.Key = "PRI"
			}
			columns = append(columns, info)
		}
		return columns, nil
	}

	if !db.Migrator().HasTable(tableName) {
		return nil, nil
	}
	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// Inspect compares every model's fields with the columns of its table.
func Inspect(db *gorm.DB, models ...any) ([]TableReport, error) {
	reports := make([]TableReport, 0, len(models))
	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}

		columns, err := GetTableColumns(db, stmt.Schema.Table)
		if err != nil {
			return nil, err
		}

		report := TableReport{
			Model:  stmt.Schema.Name,
			Table:  stmt.Schema.Table,
			Exists: len(columns) > 0,
		}

		actual := make(map[string]bool, len(columns))
		for _, col := range columns {
			actual[col.Field] = true
		}
		expected := make(map[string]bool, len(stmt.Schema.DBNames))
		for _, name := range stmt.Schema.DBNames {
			name = strings.ToLower(name)
			expected[name] = true
			if report.Exists && !actual[name] {
				report.Missing = append(report.Missing, name)
			}
		}
		if !report.Exists {
			report.Missing = append(report.Missing, stmt.Schema.DBNames...)
		}
		for name := range actual {
			if !expected[name] {
				report.Extra = append(report.Extra, name)
			}
		}
		sort.Strings(report.Missing)
		sort.Strings(report.Extra)

		reports = append(reports, report)
	}
	return reports, nil
}
