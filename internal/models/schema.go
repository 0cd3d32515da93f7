package models

import (
	"fmt"
	"strings"
)

// Generation says where a column value comes from.
type Generation string

const (
	GeneratedByClient   Generation = ""
	GeneratedBySequence Generation = "sequence"
)

// Column describes one persisted column. Name is the logical upper-case
// name; the SQL identifier is its lower-case form.
type Column struct {
	Name       string
	SQLType    string
	Nullable   bool
	PrimaryKey bool
	Generated  Generation
	Check      string
}

func (c Column) Identifier() string {
	return strings.ToLower(c.Name)
}

// TableSchema is the mapping metadata for one entity.
type TableSchema struct {
	Table    string
	Sequence string
	Columns  []Column
}

var ConsoleAppConfigSchema = TableSchema{
	Table:    "console_app_config",
	Sequence: "shared_id_seq",
	Columns: []Column{
		{Name: "ID", SQLType: "BIGINT", PrimaryKey: true, Generated: GeneratedBySequence},
		{Name: "REALM", SQLType: "VARCHAR(255)"},
		{Name: "INITIAL_URL", SQLType: "VARCHAR(255)"},
		{Name: "URL", SQLType: "VARCHAR(255)"},
		{Name: "MENU_ENABLED", SQLType: "BOOLEAN"},
		{Name: "MENU_POSITION", SQLType: "VARCHAR(32)", Check: menuPositionCheck()},
		{Name: "MENU_IMAGE", SQLType: "VARCHAR(255)"},
		{Name: "PRIMARY_COLOR", SQLType: "VARCHAR(255)"},
		{Name: "SECONDARY_COLOR", SQLType: "VARCHAR(255)"},
		{Name: "LINKS", SQLType: "JSONB", Nullable: true},
	},
}

func menuPositionCheck() string {
	names := make([]string, 0, 4)
	for _, p := range MenuPositions() {
		names = append(names, "'"+p.String()+"'")
	}
	return "menu_position IN (" + strings.Join(names, ", ") + ")"
}

// Identifiers returns the SQL column identifiers in declaration order.
func (s TableSchema) Identifiers() []string {
	ids := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		ids = append(ids, c.Identifier())
	}
	return ids
}

// RequiredColumns lists the columns a caller must fill before an insert or
// update. Generated columns are excluded.
func (s TableSchema) RequiredColumns() []string {
	var req []string
	for _, c := range s.Columns {
		if c.Nullable || c.Generated != GeneratedByClient {
			continue
		}
		req = append(req, c.Identifier())
	}
	return req
}

func (s TableSchema) CreateSequenceSQL(sequence string) string {
	if sequence == "" {
		sequence = s.Sequence
	}
	return fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s", sequence)
}

func (s TableSchema) CreateTableSQL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", s.Table)
	for i, c := range s.Columns {
		b.WriteString("    ")
		b.WriteString(c.Identifier())
		b.WriteString(" ")
		b.WriteString(c.SQLType)
		if c.PrimaryKey {
			b.WriteString(" PRIMARY KEY")
		} else if !c.Nullable {
			b.WriteString(" NOT NULL")
		}
		if c.Check != "" {
			b.WriteString(" CHECK (" + c.Check + ")")
		}
		if i < len(s.Columns)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String()
}

// CreateIndexSQL indexes realm, the usual lookup key. The index is not unique.
func (s TableSchema) CreateIndexSQL() string {
	return fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_realm ON %s (realm)", s.Table, s.Table)
}
