// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString, Unique: true},
		{Name: "vendor_name", Type: field.TypeString, Nullable: true},
		{Name: "vendor_gstin", Type: field.TypeString, Nullable: true, Size: 15},
		{Name: "customer_gstin", Type: field.TypeString, Nullable: true, Size: 15},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true, Size: 24},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "line_items", Type: field.TypeJSON, Nullable: true},
		{Name: "tier", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_status",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[10]},
			},
			{
				Name:    "invoice_vendor_name",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvoicesTable,
	}
)

func init() {
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
}
