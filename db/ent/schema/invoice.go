package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// The stable document identifier; upserts overwrite per path.
		field.String("file_path").NotEmpty().Unique(),
		field.String("vendor_name").Optional(),
		field.String("vendor_gstin").Optional().Nillable().MaxLen(15),
		field.String("customer_gstin").Optional().Nillable().MaxLen(15),
		field.String("invoice_number").Optional().MaxLen(24),
		field.Time("invoice_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("total_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.JSON("line_items", json.RawMessage{}).Optional(),
		field.String("tier").NotEmpty(),
		field.String("status").NotEmpty(),
		field.Time("extracted_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("vendor_name"),
	}
}
